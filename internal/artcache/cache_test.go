package artcache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/playlist-poster/internal/model"
)

type fakeDownloader struct {
	calls    []string
	failures int
	content  string
	onCall   func()
}

func (f *fakeDownloader) DownloadFile(ctx context.Context, url, destPath string, onProgress func(written, total int64)) error {
	f.calls = append(f.calls, url)
	if f.onCall != nil {
		f.onCall()
	}
	if f.failures > 0 {
		f.failures--
		return errors.New("connection reset")
	}
	if onProgress != nil {
		onProgress(int64(len(f.content)), int64(len(f.content)))
	}
	return os.WriteFile(destPath, []byte(f.content), 0644)
}

func testAlbum() model.Album {
	return model.Album{
		Name:   "Album",
		Artist: "Artist",
		Art: model.Artwork{
			URL: "https://is1-ssl.mzstatic.com/image/thumb/Music/v4/aa/bb/0c1d2e3f/cover.jpg/{w}x{h}bb.{f}",
		},
		Song: "https://music.apple.com/gb/song/1",
	}
}

func fastOptions() Options {
	opts := DefaultOptions()
	opts.RetryCooldown = 0
	return opts
}

func TestKey(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		format string
		want   string
	}{
		{
			name:   "apple music artwork",
			url:    "https://is1-ssl.mzstatic.com/image/thumb/Music/v4/aa/bb/0c1d2e3f/cover.jpg/600x600bb.jpg",
			format: "jpg",
			want:   "0c1d2e3f.jpg",
		},
		{
			name:   "short path",
			url:    "https://example.com/cover",
			format: "png",
			want:   "cover.png",
		},
		{
			name:   "no path",
			url:    "https://example.com",
			format: "jpg",
			want:   "artwork.jpg",
		},
		{
			name:   "query string ignored",
			url:    "https://example.com/a/b/c/d?x=1/2/3",
			format: "jpg",
			want:   "b.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.url, tt.format); got != tt.want {
				t.Errorf("Key(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestCache_MissThenHit(t *testing.T) {
	dl := &fakeDownloader{content: "jpegdata"}
	cache, err := New(t.TempDir(), dl, fastOptions())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	album := testAlbum()

	if cache.Has(album) {
		t.Fatal("Has() = true before download")
	}

	path, err := cache.Path(context.Background(), album)
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if filepath.Base(path) != "0c1d2e3f.jpg" {
		t.Errorf("cached file = %q, want %q", filepath.Base(path), "0c1d2e3f.jpg")
	}
	if len(dl.calls) != 1 {
		t.Fatalf("download calls = %d, want 1", len(dl.calls))
	}
	if !strings.HasSuffix(dl.calls[0], "/600x600bb.jpg") {
		t.Errorf("downloaded %q, want 600x600 jpg", dl.calls[0])
	}

	again, err := cache.Path(context.Background(), album)
	if err != nil {
		t.Fatalf("second Path failed: %v", err)
	}
	if again != path {
		t.Errorf("second Path = %q, want %q", again, path)
	}
	if len(dl.calls) != 1 {
		t.Errorf("download calls after hit = %d, want 1", len(dl.calls))
	}
	if !cache.Has(album) {
		t.Error("Has() = false after download")
	}
}

func TestCache_RetriesThenSucceeds(t *testing.T) {
	dl := &fakeDownloader{content: "jpegdata", failures: 2}
	cache, err := New(t.TempDir(), dl, fastOptions())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := cache.Path(context.Background(), testAlbum()); err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if len(dl.calls) != 3 {
		t.Errorf("download calls = %d, want 3", len(dl.calls))
	}
}

func TestCache_FailureLeavesNoEntry(t *testing.T) {
	dir := t.TempDir()
	dl := &fakeDownloader{failures: 10}
	cache, err := New(dir, dl, fastOptions())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := cache.Path(context.Background(), testAlbum()); err == nil {
		t.Fatal("expected error but got none")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("cache dir has %d entries after failure, want 0", len(entries))
	}
}

func TestCache_CancelledDuringRetryWait(t *testing.T) {
	dir := t.TempDir()
	dl := &fakeDownloader{failures: 10}
	opts := DefaultOptions()
	opts.RetryCooldown = 60

	cache, err := New(dir, dl, opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	dl.onCall = cancel

	_, err = cache.Path(ctx, testAlbum())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Path err = %v, want %v", err, context.Canceled)
	}
	if len(dl.calls) != 1 {
		t.Errorf("download calls = %d, want 1", len(dl.calls))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("cache dir has %d entries after cancel, want 0", len(entries))
	}
}

func TestNew_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", ".cache")
	cache, err := New(dir, &fakeDownloader{}, DefaultOptions())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if cache.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", cache.Dir(), dir)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("cache dir not created: %v", err)
	}
}
