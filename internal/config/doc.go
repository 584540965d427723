// Package config provides configuration management for playlist-poster.
//
// This package handles:
//   - Loading and saving settings from JSON or YAML files
//   - Default configuration values
//   - Conversion to poster.Layout and artcache.Options for other packages
//
// # Default Settings
//
// Use DefaultSettings() to get the stock poster:
//
//	settings := config.DefaultSettings()
//	// 600px art beside a 900px panel per album
//	// Columns chosen automatically
//	// Art cached in ./.cache, poster written to ./output.png
//
// # Loading from File
//
// The format follows the file extension: .yaml and .yml are read as YAML,
// anything else as JSON.
//
//	settings, err := config.Load("poster.yaml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// A YAML file only needs the keys it changes:
//
//	columns: 3
//	output_path: ~/Pictures/playlist.png
//	write_legend: true
//	legend_format: md
//
// # Saving Settings
//
//	settings.Columns = 4
//	err := settings.Save("poster.json")
package config
