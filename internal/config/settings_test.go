package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/playlist-poster/internal/legend"
)

func TestDefaultSettings_Valid(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("DefaultSettings().Validate() = %v", err)
	}

	if s.OutputPath != "output.png" {
		t.Errorf("OutputPath = %q, want %q", s.OutputPath, "output.png")
	}
	if s.CacheDir != ".cache" {
		t.Errorf("CacheDir = %q, want %q", s.CacheDir, ".cache")
	}
	if s.MaxConcurrentDownloads != 4 {
		t.Errorf("MaxConcurrentDownloads = %d, want 4", s.MaxConcurrentDownloads)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.ArtSize != DefaultSettings().ArtSize {
		t.Errorf("ArtSize = %d, want default", s.ArtSize)
	}
}

func TestLoad_YAMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poster.yaml")
	content := "columns: 3\nwrite_legend: true\nlegend_format: md\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.Columns != 3 {
		t.Errorf("Columns = %d, want 3", s.Columns)
	}
	if !s.WriteLegend {
		t.Error("WriteLegend = false, want true")
	}
	if s.ToLegendFormat() != legend.FormatMarkdown {
		t.Errorf("ToLegendFormat() = %v, want md", s.ToLegendFormat())
	}
	if s.PanelWidth != 900 {
		t.Errorf("PanelWidth = %d, want default 900", s.PanelWidth)
	}
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poster.json")
	if err := os.WriteFile(path, []byte(`{"art_size": 300, "cache_dir": "art"}`), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.ArtSize != 300 {
		t.Errorf("ArtSize = %d, want 300", s.ArtSize)
	}
	if s.CacheDir != "art" {
		t.Errorf("CacheDir = %q, want %q", s.CacheDir, "art")
	}
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"json", "bad.json", "{not json"},
		{"yaml", "bad.yml", "columns: [1, 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error but got none")
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	for _, name := range []string{"poster.json", "poster.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			s := DefaultSettings()
			s.Columns = 5
			s.ShareURLFormat = "https://odesli.co/?url={url}"
			if err := s.Save(path); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			loaded, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if *loaded != *s {
				t.Errorf("loaded = %+v, want %+v", loaded, s)
			}
		})
	}
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *Settings)
		errMsg string
	}{
		{"empty output", func(s *Settings) { s.OutputPath = "" }, "output_path"},
		{"negative columns", func(s *Settings) { s.Columns = -1 }, "columns"},
		{"zero art size", func(s *Settings) { s.ArtSize = 0 }, "art size"},
		{"share url without placeholder", func(s *Settings) { s.ShareURLFormat = "https://song.link/" }, "{url}"},
		{"bad artwork format", func(s *Settings) { s.ArtworkFormat = "gif" }, "artwork format"},
		{"no concurrency", func(s *Settings) { s.MaxConcurrentDownloads = 0 }, "max_concurrent_downloads"},
		{"bad legend format", func(s *Settings) { s.LegendFormat = "pdf" }, "legend format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(s)

			err := s.Validate()
			if err == nil {
				t.Fatal("expected error but got none")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error = %q, want it to mention %q", err, tt.errMsg)
			}
		})
	}
}

func TestSettings_ToLayoutAndCacheOptions(t *testing.T) {
	s := DefaultSettings()
	s.ArtSize = 300
	s.QRAlpha = 0x80

	layout := s.ToLayout()
	if layout.ArtSize != 300 || layout.QRAlpha != 0x80 {
		t.Errorf("ToLayout() = %+v", layout)
	}
	if layout.CellWidth() != 300+s.PanelWidth {
		t.Errorf("CellWidth() = %d, want %d", layout.CellWidth(), 300+s.PanelWidth)
	}

	opts := s.ToCacheOptions()
	if opts.Width != 300 || opts.Height != 300 {
		t.Errorf("cache size = %dx%d, want 300x300", opts.Width, opts.Height)
	}
	if opts.Format != "jpg" {
		t.Errorf("cache format = %q, want %q", opts.Format, "jpg")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := ExpandHome("~/x.png"); got != filepath.Join(home, "x.png") {
		t.Errorf("ExpandHome(~/x.png) = %q", got)
	}
	if got := ExpandHome("/abs/x.png"); got != "/abs/x.png" {
		t.Errorf("ExpandHome(/abs/x.png) = %q", got)
	}
}
