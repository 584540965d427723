package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/playlist-poster/internal/artcache"
	"github.com/handiism/playlist-poster/internal/generate"
	"github.com/handiism/playlist-poster/internal/http"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FA586A"))
	ruleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A8DADC"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
)

const rule = "────────────────────────────────────────"

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}

	settings, err := opts.settings()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error loading config: %v", err)))
		os.Exit(1)
	}
	for _, w := range opts.warnings {
		fmt.Fprintln(os.Stderr, warningStyle.Render("! "+w))
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	cache, err := artcache.New(settings.CacheDir, http.NewClient(settings.UserAgent), settings.ToCacheOptions())
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}

	manager, err := generate.NewManager(settings, cache, func(event generate.ProgressEvent) {
		printEvent(event, opts.verbose)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}

	fmt.Println(titleStyle.Render("♫ Playlist Poster"))
	fmt.Println(ruleStyle.Render(rule))
	fmt.Println()

	if err := manager.Initialize(ctx, opts.url); err != nil {
		exit(ctx, "Error fetching playlist", err)
	}

	if opts.dryRun {
		fmt.Println()
		printAlbumTable(os.Stdout, manager.Albums(), settings.ShareURLFormat)
		fmt.Println(dimStyle.Render("\n[Dry run - no poster written]"))
		return
	}

	if opts.choose {
		selected, err := chooseAlbums(manager.Albums())
		if err != nil {
			exit(ctx, "Error selecting albums", err)
		}
		manager.SetAlbums(selected)
	}

	fmt.Println()
	fmt.Println(infoStyle.Render("Rendering poster..."))
	fmt.Println()

	if err := manager.Render(ctx); err != nil {
		exit(ctx, "Error rendering poster", err)
	}

	done, total := manager.GetProgress()
	fmt.Println()
	fmt.Println(ruleStyle.Render(rule))
	fmt.Println(successStyle.Render(fmt.Sprintf("✨ Complete! %d/%d albums on %s", done, total, manager.OutputPath())))
}

// exit reports err and terminates, with status 130 if ctx was cancelled.
func exit(ctx context.Context, what string, err error) {
	if ctx.Err() != nil {
		fmt.Println("\nCancelled.")
		os.Exit(130)
	}
	fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("%s: %v", what, err)))
	os.Exit(1)
}

func printEvent(event generate.ProgressEvent, verbose bool) {
	if event.Level == generate.LevelVerbose && !verbose {
		return
	}

	var (
		prefix string
		style  lipgloss.Style
	)
	switch event.Level {
	case generate.LevelError:
		prefix, style = "✗ ", errorStyle
	case generate.LevelWarning:
		prefix, style = "! ", warningStyle
	case generate.LevelSuccess:
		prefix, style = "✓ ", successStyle
	case generate.LevelInfo:
		prefix, style = "› ", infoStyle
	default:
		prefix, style = "  ", dimStyle
	}

	fmt.Println(style.Render(prefix + event.Message))
}
