package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/handiism/playlist-poster/internal/config"
	ioutils "github.com/handiism/playlist-poster/internal/io"
)

var errUsage = errors.New("usage")

type options struct {
	url        string
	configPath string

	cols     int
	output   string
	cacheDir string
	legend   bool

	dryRun  bool
	choose  bool
	verbose bool

	flags *pflag.FlagSet

	// warnings collects non-fatal problems found while building settings.
	warnings []string
}

func parseArgs(args []string) (*options, error) {
	opts := &options{}

	flags := pflag.NewFlagSet("playlist-poster", pflag.ContinueOnError)
	flags.IntVar(&opts.cols, "cols", 0, "Number of poster columns (0 = ceil(sqrt(albums)), capped at the album count)")
	flags.StringVar(&opts.configPath, "config", "", "Path to a JSON or YAML config file")
	flags.StringVarP(&opts.output, "output", "o", "", "Poster output path (overrides config)")
	flags.StringVar(&opts.cacheDir, "cache-dir", "", "Artwork cache directory (overrides config)")
	flags.BoolVar(&opts.legend, "legend", false, "Write a legend file next to the poster")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "List albums without rendering")
	flags.BoolVar(&opts.choose, "choose", false, "Pick which albums go on the poster")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Show verbose output")

	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Playlist Poster - Turn an Apple Music playlist into an album art poster")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  playlist-poster <URL> [options]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "For interactive mode, use: playlist-poster-tui")
		fmt.Fprintln(os.Stderr)
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, errUsage
		}
		return nil, err
	}

	if flags.NArg() != 1 {
		flags.Usage()
		return nil, errUsage
	}
	if opts.cols < 0 {
		return nil, fmt.Errorf("--cols cannot be negative, got %d", opts.cols)
	}

	opts.url = flags.Arg(0)
	opts.flags = flags
	return opts, nil
}

// settings loads the config file, if any, and applies explicitly set flags.
func (o *options) settings() (*config.Settings, error) {
	settings := config.DefaultSettings()
	if o.configPath != "" {
		if !ioutils.FileExists(config.ExpandHome(o.configPath)) {
			o.warnings = append(o.warnings, fmt.Sprintf("config file %s not found, using defaults", o.configPath))
		}
		var err error
		settings, err = config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
	}

	if o.flags.Changed("cols") {
		settings.Columns = o.cols
	}
	if o.output != "" {
		settings.OutputPath = config.ExpandHome(o.output)
	}
	if o.cacheDir != "" {
		settings.CacheDir = config.ExpandHome(o.cacheDir)
	}
	if o.legend {
		settings.WriteLegend = true
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}
