package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/olekukonko/tablewriter"

	"github.com/handiism/playlist-poster/internal/model"
)

// printAlbumTable lists albums in poster order with their share links.
func printAlbumTable(w io.Writer, albums []model.Album, shareURLFormat string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Artist", "Album", "Link"})
	table.SetRowLine(false)
	table.SetAutoWrapText(false)

	for i, a := range albums {
		table.Append([]string{fmt.Sprint(i + 1), a.Artist, a.Name, a.ShareURL(shareURLFormat)})
	}
	table.Render()
}

// chooseAlbums asks which albums to keep. Selected albums keep their
// playlist order.
func chooseAlbums(albums []model.Album) ([]model.Album, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return nil, fmt.Errorf("inspect stdin: %w", err)
	}
	if stat.Mode()&os.ModeCharDevice == 0 {
		return nil, fmt.Errorf("interactive selection requires a terminal")
	}

	options := make([]huh.Option[int], len(albums))
	for i, a := range albums {
		options[i] = huh.NewOption(albumLabel(a), i).Selected(true)
	}

	var picked []int
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("Select albums for the poster").
				Description("Use x/space to toggle. Press / to filter.").
				Options(options...).
				Value(&picked).
				Validate(func(v []int) error {
					if len(v) == 0 {
						return fmt.Errorf("select at least one album")
					}
					return nil
				}),
		),
	).Run()
	if err != nil {
		return nil, fmt.Errorf("run album selector: %w", err)
	}

	return selectAlbums(albums, picked), nil
}

// selectAlbums returns the albums at the given indexes, in album order.
// Out-of-range and repeated indexes are ignored.
func selectAlbums(albums []model.Album, indexes []int) []model.Album {
	keep := make([]bool, len(albums))
	for _, i := range indexes {
		if i >= 0 && i < len(albums) {
			keep[i] = true
		}
	}

	selected := make([]model.Album, 0, len(indexes))
	for i, a := range albums {
		if keep[i] {
			selected = append(selected, a)
		}
	}
	return selected
}

func albumLabel(a model.Album) string {
	return strings.TrimSpace(a.Artist + " - " + a.Name)
}
