package applemusic

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"

	"github.com/handiism/playlist-poster/internal/applemusic/dto"
	"github.com/handiism/playlist-poster/internal/model"
)

const (
	serverDataSelector = "#serialized-server-data"
	songsPath          = "0.data.seoData.ogSongs"
)

var (
	// ErrNoServerData is returned when the page has no serialized server data element.
	ErrNoServerData = errors.New("no serialized server data on page")

	// ErrNoSongs is returned when the server data has no song list.
	ErrNoSongs = errors.New("no song list in server data")

	// ErrMissingField is returned when a song lacks a required attribute.
	ErrMissingField = dto.ErrMissingField
)

// Parser extracts playlist songs from Apple Music HTML pages.
//
// Apple Music embeds the page state as JSON inside a script element with the
// id "serialized-server-data". The Parser selects that element, locates the
// song list inside the JSON and converts every entry into a model.Song.
//
// Example usage:
//
//	parser := NewParser()
//
//	html, _ := client.GetString(ctx, "https://music.apple.com/gb/playlist/name/pl.u-abc")
//
//	songs, err := parser.ParsePlaylistPage(html)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range songs {
//	    fmt.Printf("%s - %s (%s)\n", s.ArtistName, s.Name, s.AlbumName)
//	}
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParsePlaylistPage extracts songs from an Apple Music playlist page HTML.
//
// This method performs the following steps:
//  1. Selects the serialized-server-data script element
//  2. Locates the ogSongs array inside its JSON
//  3. Deserializes the array into song data
//  4. Validates and converts each song, preserving playlist order
//
// Returns an error if:
//   - The server data element cannot be found (ErrNoServerData)
//   - The server data is not valid JSON
//   - The song list is absent (ErrNoSongs)
//   - Any song lacks a required attribute (ErrMissingField)
func (p *Parser) ParsePlaylistPage(htmlContent string) ([]model.Song, error) {
	serverData, err := extractServerData(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("could not retrieve server data: %w", err)
	}

	songsJSON, err := extractSongsJSON(serverData)
	if err != nil {
		return nil, err
	}

	var jsonSongs []dto.JSONSong
	if err := json.Unmarshal([]byte(songsJSON), &jsonSongs); err != nil {
		return nil, fmt.Errorf("failed to parse songs JSON: %w", err)
	}

	songs := make([]model.Song, 0, len(jsonSongs))
	for i := range jsonSongs {
		song, err := jsonSongs[i].ToSong()
		if err != nil {
			return nil, fmt.Errorf("song %d: %w", i, err)
		}
		songs = append(songs, song)
	}

	return songs, nil
}

// extractServerData returns the text content of the serialized-server-data element.
//
// The element is a <script>, so its content is raw JSON and needs no HTML
// unescaping.
func extractServerData(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	sel := doc.Find(serverDataSelector).First()
	if sel.Length() == 0 {
		return "", ErrNoServerData
	}

	data := strings.TrimSpace(sel.Text())
	if data == "" {
		return "", ErrNoServerData
	}
	return data, nil
}

// extractSongsJSON returns the raw JSON array of songs from the server data.
func extractSongsJSON(serverData string) (string, error) {
	if !gjson.Valid(serverData) {
		return "", errors.New("server data is not valid JSON")
	}

	result := gjson.Get(serverData, songsPath)
	if !result.Exists() || !result.IsArray() {
		return "", ErrNoSongs
	}
	return result.Raw, nil
}
