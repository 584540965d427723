package dto

import (
	"errors"
	"fmt"

	"github.com/handiism/playlist-poster/internal/model"
)

// ErrMissingField is returned when a required song attribute is absent or empty.
var ErrMissingField = errors.New("missing required field")

// JSONSong represents one entry of the ogSongs array.
type JSONSong struct {
	ID         string              `json:"id"`
	Type       string              `json:"type"`
	Href       string              `json:"href"`
	Attributes *JSONSongAttributes `json:"attributes"`
}

// JSONSongAttributes contains song metadata.
type JSONSongAttributes struct {
	URL              string          `json:"url"`
	Name             string          `json:"name"`
	AlbumName        string          `json:"albumName"`
	ArtistName       string          `json:"artistName"`
	ComposerName     string          `json:"composerName"`
	Artwork          *JSONArtwork    `json:"artwork"`
	PlayParams       *JSONPlayParams `json:"playParams"`
	ContentRating    string          `json:"contentRating"`
	AudioTraits      []string        `json:"audioTraits"`
	DurationInMillis int64           `json:"durationInMillis"`
}

// JSONArtwork represents the artwork descriptor.
type JSONArtwork struct {
	URL        string `json:"url"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	TextColor1 string `json:"textColor1"`
	TextColor2 string `json:"textColor2"`
	TextColor3 string `json:"textColor3"`
	TextColor4 string `json:"textColor4"`
	BGColor    string `json:"bgColor"`
	HasP3      bool   `json:"hasP3"`
}

// JSONPlayParams identifies the playable item.
type JSONPlayParams struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
}

// ToSong validates the song and converts it to a model.Song.
func (js *JSONSong) ToSong() (model.Song, error) {
	attrs := js.Attributes
	if attrs == nil {
		return model.Song{}, fmt.Errorf("%w: attributes", ErrMissingField)
	}

	switch {
	case attrs.AlbumName == "":
		return model.Song{}, fmt.Errorf("%w: attributes.albumName", ErrMissingField)
	case attrs.ArtistName == "":
		return model.Song{}, fmt.Errorf("%w: attributes.artistName", ErrMissingField)
	case attrs.URL == "":
		return model.Song{}, fmt.Errorf("%w: attributes.url", ErrMissingField)
	case attrs.Artwork == nil:
		return model.Song{}, fmt.Errorf("%w: attributes.artwork", ErrMissingField)
	case attrs.Artwork.URL == "":
		return model.Song{}, fmt.Errorf("%w: attributes.artwork.url", ErrMissingField)
	}

	id := js.ID
	if id == "" && attrs.PlayParams != nil {
		id = attrs.PlayParams.ID
	}

	return model.Song{
		ID:               id,
		Name:             attrs.Name,
		AlbumName:        attrs.AlbumName,
		ArtistName:       attrs.ArtistName,
		ComposerName:     attrs.ComposerName,
		DurationInMillis: attrs.DurationInMillis,
		ContentRating:    attrs.ContentRating,
		Artwork:          attrs.Artwork.toArtwork(),
		URL:              attrs.URL,
	}, nil
}

func (ja *JSONArtwork) toArtwork() model.Artwork {
	return model.Artwork{
		URL:        ja.URL,
		Width:      ja.Width,
		Height:     ja.Height,
		TextColor1: ja.TextColor1,
		TextColor2: ja.TextColor2,
		TextColor3: ja.TextColor3,
		TextColor4: ja.TextColor4,
		BGColor:    ja.BGColor,
	}
}
