// Package artcache keeps downloaded cover art on disk.
//
// A Cache is an explicit handle owned by the caller: it is created once at
// startup for a directory of the caller's choosing, and entries are never
// expired or removed. Entries are keyed by a path segment of the formatted
// artwork URL, which for Apple Music artwork is unique per image.
package artcache

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	ioutils "github.com/handiism/playlist-poster/internal/io"
	"github.com/handiism/playlist-poster/internal/model"
)

// Downloader fetches a URL into a local file.
type Downloader interface {
	DownloadFile(ctx context.Context, url, destPath string, onProgress func(written, total int64)) error
}

// Options controls the size and format of cached art and the retry policy.
type Options struct {
	Width  int
	Height int
	Format string

	// MaxRetries is the number of download attempts before giving up.
	MaxRetries int

	// RetryCooldown is the wait in seconds before the second attempt.
	// Each later attempt multiplies it by RetryExponent.
	RetryCooldown float64
	RetryExponent float64

	// OnProgress, if set, receives byte counts for every download.
	OnProgress func(written, total int64)
}

// DefaultOptions returns 600x600 JPEG art with three download attempts.
func DefaultOptions() Options {
	return Options{
		Width:         600,
		Height:        600,
		Format:        "jpg",
		MaxRetries:    3,
		RetryCooldown: 0.2,
		RetryExponent: 4.0,
	}
}

// Cache stores album artwork in a directory.
type Cache struct {
	dir    string
	client Downloader
	opts   Options
}

// New creates a Cache in dir, creating the directory if needed.
func New(dir string, client Downloader, opts Options) (*Cache, error) {
	if err := ioutils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("create artwork cache dir %s: %w", dir, err)
	}
	if opts.MaxRetries < 1 {
		opts.MaxRetries = 1
	}
	return &Cache{dir: dir, client: client, opts: opts}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

// URL returns the artwork URL the cache downloads for an album.
func (c *Cache) URL(album model.Album) string {
	return album.Art.FormatURL(c.opts.Width, c.opts.Height, c.opts.Format)
}

// Has reports whether the album's artwork is already cached.
func (c *Cache) Has(album model.Album) bool {
	return ioutils.FileExists(c.filePath(album))
}

// Path returns the local path of the album's artwork, downloading it on a miss.
//
// Downloads go to a temporary file that is renamed into place only on
// success, so a failed or cancelled download never leaves a partial entry.
func (c *Cache) Path(ctx context.Context, album model.Album) (string, error) {
	path := c.filePath(album)
	if ioutils.FileExists(path) {
		return path, nil
	}

	artURL := c.URL(album)

	tmp, err := os.CreateTemp(c.dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return "", fmt.Errorf("create temporary artwork file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	for tries := 0; tries < c.opts.MaxRetries; tries++ {
		if tries > 0 {
			if werr := c.waitForRetry(ctx, tries-1); werr != nil {
				err = werr
				break
			}
		}
		err = c.client.DownloadFile(ctx, artURL, tmpPath, c.opts.OnProgress)
		if err == nil {
			break
		}
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("download artwork for %q: %w", album.Name, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("store artwork for %q: %w", album.Name, err)
	}
	return path, nil
}

func (c *Cache) filePath(album model.Album) string {
	return filepath.Join(c.dir, Key(c.URL(album), c.opts.Format))
}

func (c *Cache) waitForRetry(ctx context.Context, tries int) error {
	cooldown := c.opts.RetryCooldown * math.Pow(c.opts.RetryExponent, float64(tries))
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(time.Duration(cooldown * float64(time.Second))):
		return nil
	}
}

// Key returns the cache file name for a formatted artwork URL.
//
// Apple Music artwork URLs end in <image-id>/<source-file>/<size>.<format>,
// so the third-from-last path segment identifies the image. URLs with fewer
// segments use their last segment.
func Key(artURL, format string) string {
	path := artURL
	if u, err := url.Parse(artURL); err == nil {
		path = u.Path
	}

	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	name := "artwork"
	switch {
	case len(segments) >= 3:
		name = segments[len(segments)-3]
	case len(segments) > 0:
		name = segments[len(segments)-1]
	}

	return ioutils.SanitizeFileName(name) + "." + format
}
