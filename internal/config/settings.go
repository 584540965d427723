package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/handiism/playlist-poster/internal/artcache"
	"github.com/handiism/playlist-poster/internal/legend"
	"github.com/handiism/playlist-poster/internal/model"
	"github.com/handiism/playlist-poster/internal/poster"
)

// Settings holds all configuration options.
type Settings struct {
	// Output settings
	OutputPath string `json:"output_path" yaml:"output_path"`
	CacheDir   string `json:"cache_dir" yaml:"cache_dir"`
	Columns    int    `json:"columns" yaml:"columns"` // 0 = ceil(sqrt(albums))

	// Layout settings, in pixels
	ArtSize      int     `json:"art_size" yaml:"art_size"`
	PanelWidth   int     `json:"panel_width" yaml:"panel_width"`
	Margin       int     `json:"margin" yaml:"margin"`
	LineHeight   int     `json:"line_height" yaml:"line_height"`
	CharsPerLine int     `json:"chars_per_line" yaml:"chars_per_line"`
	FontSize     float64 `json:"font_size" yaml:"font_size"`

	// Font files; empty uses the embedded Go fonts
	ArtistFontPath string `json:"artist_font_path" yaml:"artist_font_path"`
	TitleFontPath  string `json:"title_font_path" yaml:"title_font_path"`

	// QR code settings
	ShareURLFormat string `json:"share_url_format" yaml:"share_url_format"`
	QRBoxSize      int    `json:"qr_box_size" yaml:"qr_box_size"`
	QRBorder       int    `json:"qr_border" yaml:"qr_border"`
	QRAlpha        uint8  `json:"qr_alpha" yaml:"qr_alpha"`

	// Download settings
	ArtworkFormat          string  `json:"artwork_format" yaml:"artwork_format"` // jpg, png
	MaxConcurrentDownloads int     `json:"max_concurrent_downloads" yaml:"max_concurrent_downloads"`
	DownloadMaxRetries     int     `json:"download_max_retries" yaml:"download_max_retries"`
	DownloadRetryCooldown  float64 `json:"download_retry_cooldown" yaml:"download_retry_cooldown"`
	DownloadRetryExponent  float64 `json:"download_retry_exponent" yaml:"download_retry_exponent"`
	UserAgent              string  `json:"user_agent" yaml:"user_agent"`

	// Legend settings
	WriteLegend  bool   `json:"write_legend" yaml:"write_legend"`
	LegendFormat string `json:"legend_format" yaml:"legend_format"` // txt, md, html
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	layout := poster.DefaultLayout()
	cache := artcache.DefaultOptions()

	return &Settings{
		OutputPath: "output.png",
		CacheDir:   ".cache",
		Columns:    0,

		ArtSize:      layout.ArtSize,
		PanelWidth:   layout.PanelWidth,
		Margin:       layout.Margin,
		LineHeight:   layout.LineHeight,
		CharsPerLine: layout.CharsPerLine,
		FontSize:     layout.FontSize,

		ShareURLFormat: model.DefaultShareURLFormat,
		QRBoxSize:      layout.QRBoxSize,
		QRBorder:       layout.QRBorder,
		QRAlpha:        layout.QRAlpha,

		ArtworkFormat:          cache.Format,
		MaxConcurrentDownloads: 4,
		DownloadMaxRetries:     cache.MaxRetries,
		DownloadRetryCooldown:  cache.RetryCooldown,
		DownloadRetryExponent:  cache.RetryExponent,

		WriteLegend:  false,
		LegendFormat: "txt",
	}
}

// Load reads settings from a JSON or YAML file, chosen by extension.
//
// Fields missing from the file keep their defaults. A missing file yields
// DefaultSettings.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	settings.OutputPath = ExpandHome(settings.OutputPath)
	settings.CacheDir = ExpandHome(settings.CacheDir)
	settings.ArtistFontPath = ExpandHome(settings.ArtistFontPath)
	settings.TitleFontPath = ExpandHome(settings.TitleFontPath)

	return settings, nil
}

// Save writes settings to a JSON or YAML file, chosen by extension.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks that the settings can produce a poster.
func (s *Settings) Validate() error {
	if s.OutputPath == "" {
		return fmt.Errorf("output_path cannot be empty")
	}
	if s.CacheDir == "" {
		return fmt.Errorf("cache_dir cannot be empty")
	}
	if s.Columns < 0 {
		return fmt.Errorf("columns cannot be negative, got %d", s.Columns)
	}
	if err := s.ToLayout().Validate(); err != nil {
		return err
	}
	if !strings.Contains(s.ShareURLFormat, "{url}") {
		return fmt.Errorf("share_url_format must contain {url}, got %q", s.ShareURLFormat)
	}
	if s.ArtworkFormat != "jpg" && s.ArtworkFormat != "png" {
		return fmt.Errorf("unsupported artwork format %q, valid formats: jpg, png", s.ArtworkFormat)
	}
	if s.MaxConcurrentDownloads < 1 {
		return fmt.Errorf("max_concurrent_downloads must be at least 1, got %d", s.MaxConcurrentDownloads)
	}
	if s.DownloadMaxRetries < 1 {
		return fmt.Errorf("download_max_retries must be at least 1, got %d", s.DownloadMaxRetries)
	}
	if _, err := legend.ParseFormat(s.LegendFormat); err != nil {
		return err
	}
	return nil
}

// ToLayout converts settings to a poster Layout.
func (s *Settings) ToLayout() poster.Layout {
	return poster.Layout{
		ArtSize:        s.ArtSize,
		PanelWidth:     s.PanelWidth,
		Margin:         s.Margin,
		LineHeight:     s.LineHeight,
		CharsPerLine:   s.CharsPerLine,
		FontSize:       s.FontSize,
		QRBoxSize:      s.QRBoxSize,
		QRBorder:       s.QRBorder,
		QRAlpha:        s.QRAlpha,
		ShareURLFormat: s.ShareURLFormat,
	}
}

// ToCacheOptions converts settings to artwork cache Options. Art is
// fetched at the cell's art size.
func (s *Settings) ToCacheOptions() artcache.Options {
	return artcache.Options{
		Width:         s.ArtSize,
		Height:        s.ArtSize,
		Format:        s.ArtworkFormat,
		MaxRetries:    s.DownloadMaxRetries,
		RetryCooldown: s.DownloadRetryCooldown,
		RetryExponent: s.DownloadRetryExponent,
	}
}

// ToLegendFormat converts the legend format name. Unknown names map to
// plain text; Validate reports them.
func (s *Settings) ToLegendFormat() legend.Format {
	f, _ := legend.ParseFormat(s.LegendFormat)
	return f
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
