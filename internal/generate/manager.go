package generate

import (
	"context"
	"fmt"
	"image"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/handiism/playlist-poster/internal/applemusic"
	"github.com/handiism/playlist-poster/internal/artcache"
	"github.com/handiism/playlist-poster/internal/config"
	"github.com/handiism/playlist-poster/internal/http"
	ioutils "github.com/handiism/playlist-poster/internal/io"
	"github.com/handiism/playlist-poster/internal/legend"
	"github.com/handiism/playlist-poster/internal/model"
	"github.com/handiism/playlist-poster/internal/poster"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a poster generation progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Manager coordinates poster generation.
type Manager struct {
	settings     *config.Settings
	httpClient   *http.Client
	parser       *applemusic.Parser
	cache        *artcache.Cache
	composer     *poster.Composer
	legend       *legend.Writer
	imageService *ioutils.ImageService

	albums   []model.Album
	artPaths []string

	totalArtwork int32
	doneArtwork  int32

	onProgress func(ProgressEvent)
	mu         sync.RWMutex
}

// NewManager creates a new poster Manager.
//
// The cache is owned by the caller. Fonts are loaded here, so a bad font
// path fails before anything is fetched.
func NewManager(settings *config.Settings, cache *artcache.Cache, onProgress func(ProgressEvent)) (*Manager, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	fonts, err := poster.LoadFonts(settings.ArtistFontPath, settings.TitleFontPath, settings.FontSize)
	if err != nil {
		return nil, err
	}

	return &Manager{
		settings:     settings,
		httpClient:   http.NewClient(settings.UserAgent),
		parser:       applemusic.NewParser(),
		cache:        cache,
		composer:     poster.NewComposer(settings.ToLayout(), fonts),
		legend:       legend.NewWriter(settings.ToLegendFormat(), settings.ShareURLFormat),
		imageService: ioutils.NewImageService(),
		onProgress:   onProgress,
	}, nil
}

// Initialize fetches the playlist page and collates its songs into albums.
func (m *Manager) Initialize(ctx context.Context, playlistURL string) error {
	playlistURL = strings.TrimSpace(playlistURL)
	if !strings.HasPrefix(playlistURL, "http://") && !strings.HasPrefix(playlistURL, "https://") {
		return fmt.Errorf("playlist URL must start with http:// or https://, got %q", playlistURL)
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching playlist: %s", playlistURL), Level: LevelVerbose})

	html, err := m.httpClient.GetString(ctx, playlistURL)
	if err != nil {
		return fmt.Errorf("fetch playlist %s: %w", playlistURL, err)
	}

	songs, err := m.parser.ParsePlaylistPage(html)
	if err != nil {
		return fmt.Errorf("parse playlist %s: %w", playlistURL, err)
	}

	albums := model.CollateAlbums(songs)
	m.SetAlbums(albums)

	if len(albums) == 0 {
		m.progress(ProgressEvent{Message: "Playlist has no songs", Level: LevelWarning})
		return nil
	}

	for _, album := range albums {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Found album: %s - %s", album.Artist, album.Name), Level: LevelVerbose})
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d songs across %d albums", len(songs), len(albums)), Level: LevelInfo})

	return nil
}

// Albums returns a copy of the current album selection, in poster order.
func (m *Manager) Albums() []model.Album {
	m.mu.RLock()
	defer m.mu.RUnlock()

	albums := make([]model.Album, len(m.albums))
	copy(albums, m.albums)
	return albums
}

// SetAlbums replaces the album selection. Previously fetched artwork paths
// are discarded; cached files stay on disk.
func (m *Manager) SetAlbums(albums []model.Album) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.albums = append([]model.Album(nil), albums...)
	m.artPaths = nil
	atomic.StoreInt32(&m.totalArtwork, int32(len(albums)))
	atomic.StoreInt32(&m.doneArtwork, 0)
}

// FetchArtwork makes sure every album's artwork is in the cache.
//
// Downloads run concurrently, at most MaxConcurrentDownloads at a time.
// The first failure cancels the rest and is returned.
func (m *Manager) FetchArtwork(ctx context.Context) error {
	albums := m.Albums()
	paths := make([]string, len(albums))

	atomic.StoreInt32(&m.totalArtwork, int32(len(albums)))
	atomic.StoreInt32(&m.doneArtwork, 0)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrentDownloads)

	for i, album := range albums {
		g.Go(func() error {
			cached := m.cache.Has(album)

			path, err := m.cache.Path(ctx, album)
			if err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error fetching artwork for %s: %v", album.Name, err), Level: LevelError})
				return err
			}
			paths[i] = path
			atomic.AddInt32(&m.doneArtwork, 1)

			if cached {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Using cached artwork: %s", album.Name), Level: LevelVerbose})
			} else {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Downloaded artwork: %s", album.Name), Level: LevelVerbose})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	m.mu.Lock()
	m.artPaths = paths
	m.mu.Unlock()

	m.progress(ProgressEvent{Message: fmt.Sprintf("Artwork ready for %d albums", len(albums)), Level: LevelInfo})
	return nil
}

// Render composes the poster and writes it to the configured output path,
// fetching artwork first if needed. The legend is written next to it when
// enabled.
func (m *Manager) Render(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	albums, paths := m.snapshot()
	if len(albums) == 0 {
		return poster.ErrNoAlbums
	}
	if len(paths) != len(albums) {
		if err := m.FetchArtwork(ctx); err != nil {
			return err
		}
		albums, paths = m.snapshot()
	}

	cells := make([]poster.Cell, len(albums))
	for i, album := range albums {
		if err := ctx.Err(); err != nil {
			return err
		}
		art, err := m.imageService.DecodeFile(paths[i])
		if err != nil {
			return fmt.Errorf("artwork for %q: %w", album.Name, err)
		}
		cells[i] = poster.Cell{Album: album, Art: art}
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Composing poster from %d albums", len(cells)), Level: LevelVerbose})

	img, err := m.composer.Compose(cells, m.settings.Columns)
	if err != nil {
		return fmt.Errorf("compose poster: %w", err)
	}

	if err := m.writePoster(img); err != nil {
		return err
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Saved poster to %s", m.settings.OutputPath), Level: LevelSuccess})

	if m.settings.WriteLegend {
		path := legend.PathFor(m.settings.OutputPath, m.legend.Format())
		if err := m.writeLegend(path, albums); err != nil {
			return err
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Saved legend to %s", path), Level: LevelSuccess})
	}

	return nil
}

// GetProgress returns how many albums have their artwork ready.
func (m *Manager) GetProgress() (done, total int) {
	return int(atomic.LoadInt32(&m.doneArtwork)), int(atomic.LoadInt32(&m.totalArtwork))
}

// OutputPath returns where Render writes the poster.
func (m *Manager) OutputPath() string {
	return m.settings.OutputPath
}

func (m *Manager) snapshot() ([]model.Album, []string) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.albums, m.artPaths
}

func (m *Manager) writePoster(img image.Image) error {
	err := ioutils.WriteFileAtomic(m.settings.OutputPath, func(w io.Writer) error {
		return m.imageService.EncodePNG(w, img)
	})
	if err != nil {
		return fmt.Errorf("write poster %s: %w", m.settings.OutputPath, err)
	}
	return nil
}

func (m *Manager) writeLegend(path string, albums []model.Album) error {
	content := m.legend.Render(albums)
	err := ioutils.WriteFileAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, content)
		return err
	})
	if err != nil {
		return fmt.Errorf("write legend %s: %w", path, err)
	}
	return nil
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
