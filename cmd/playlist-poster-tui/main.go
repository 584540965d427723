package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/handiism/playlist-poster/internal/config"
	"github.com/handiism/playlist-poster/internal/tui"
)

func main() {
	configPath := pflag.String("config", "", "Path to a JSON or YAML config file")
	pflag.Parse()

	settings := config.DefaultSettings()
	if *configPath != "" {
		var err error
		settings, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
