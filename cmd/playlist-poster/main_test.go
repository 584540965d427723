package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/playlist-poster/internal/model"
)

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs([]string{"--cols", "3", "--legend", "-v", "https://music.apple.com/gb/playlist/x/pl.1"})
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}

	if opts.url != "https://music.apple.com/gb/playlist/x/pl.1" {
		t.Errorf("url = %q", opts.url)
	}
	if opts.cols != 3 || !opts.legend || !opts.verbose {
		t.Errorf("opts = %+v", opts)
	}
}

func TestParseArgs_ColsHelpMentionsCap(t *testing.T) {
	opts, err := parseArgs([]string{"u"})
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}

	f := opts.flags.Lookup("cols")
	if f == nil {
		t.Fatal("cols flag not registered")
	}
	if !strings.Contains(f.Usage, "capped at the album count") {
		t.Errorf("cols usage = %q, want it to mention the cap", f.Usage)
	}
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no url", nil},
		{"two urls", []string{"a", "b"}},
		{"negative cols", []string{"--cols", "-1", "u"}},
		{"unknown flag", []string{"--nope", "u"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseArgs(tt.args); err == nil {
				t.Error("expected error but got none")
			}
		})
	}

	if _, err := parseArgs(nil); !errors.Is(err, errUsage) {
		t.Errorf("err = %v, want %v", err, errUsage)
	}
}

func TestOptions_SettingsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "poster.yaml")
	if err := os.WriteFile(path, []byte("columns: 5\noutput_path: from-config.png\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	opts, err := parseArgs([]string{"--config", path, "--cols", "0", "--cache-dir", "art", "u"})
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	s, err := opts.settings()
	if err != nil {
		t.Fatalf("settings failed: %v", err)
	}

	if s.Columns != 0 {
		t.Errorf("Columns = %d, want explicit flag value 0", s.Columns)
	}
	if s.OutputPath != "from-config.png" {
		t.Errorf("OutputPath = %q, want value from config", s.OutputPath)
	}
	if s.CacheDir != "art" {
		t.Errorf("CacheDir = %q, want %q", s.CacheDir, "art")
	}
}

func TestOptions_SettingsKeepConfigColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poster.json")
	if err := os.WriteFile(path, []byte(`{"columns": 4}`), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	opts, err := parseArgs([]string{"--config", path, "u"})
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	s, err := opts.settings()
	if err != nil {
		t.Fatalf("settings failed: %v", err)
	}
	if s.Columns != 4 {
		t.Errorf("Columns = %d, want 4", s.Columns)
	}
}

func TestOptions_SettingsWarnOnMissingConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	opts, err := parseArgs([]string{"--config", missing, "u"})
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	s, err := opts.settings()
	if err != nil {
		t.Fatalf("settings failed: %v", err)
	}

	if len(opts.warnings) != 1 || !strings.Contains(opts.warnings[0], missing) {
		t.Errorf("warnings = %q, want one naming %s", opts.warnings, missing)
	}
	if s.OutputPath != "output.png" {
		t.Errorf("OutputPath = %q, want default", s.OutputPath)
	}
}

func TestOptions_SettingsNoWarningForExistingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poster.json")
	if err := os.WriteFile(path, []byte(`{}`), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	opts, err := parseArgs([]string{"--config", path, "u"})
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	if _, err := opts.settings(); err != nil {
		t.Fatalf("settings failed: %v", err)
	}
	if len(opts.warnings) != 0 {
		t.Errorf("warnings = %q, want none", opts.warnings)
	}
}

func TestSelectAlbums(t *testing.T) {
	albums := []model.Album{{Name: "A"}, {Name: "B"}, {Name: "C"}}

	got := selectAlbums(albums, []int{2, 0, 2, 9, -1})
	if len(got) != 2 || got[0].Name != "A" || got[1].Name != "C" {
		t.Errorf("selectAlbums = %+v, want A, C", got)
	}
}

func TestPrintAlbumTable(t *testing.T) {
	var buf bytes.Buffer
	albums := []model.Album{
		{Name: "First", Artist: "Artist One", Song: "https://music.apple.com/gb/song/1"},
	}

	printAlbumTable(&buf, albums, "")

	out := buf.String()
	for _, want := range []string{"ARTIST", "Artist One", "First", "https://song.link/https://music.apple.com/gb/song/1"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
