package model

import "strings"

// DefaultShareURLFormat links a song through song.link, which resolves it
// for every streaming service.
const DefaultShareURLFormat = "https://song.link/{url}"

// Album is the poster-facing view of one album in a playlist.
//
// Albums are created once per run by CollateAlbums and are never mutated.
type Album struct {
	// Name is the album title shared by every song in the group.
	Name string

	// Artist is the canonical artist, the most common credit in the group.
	Artist string

	// Art is the artwork of the first song seen for this album.
	Art Artwork

	// Song is the URL of the first song seen for this album.
	Song string
}

// ShareURL returns the sharable link for the album's song.
//
// The format must contain a {url} placeholder, which is replaced with the
// song URL. An empty format uses DefaultShareURLFormat.
func (a Album) ShareURL(format string) string {
	if format == "" {
		format = DefaultShareURLFormat
	}
	return strings.ReplaceAll(format, "{url}", a.Song)
}

// PrimaryArtist returns the artist credit up to the first " & ".
func (a Album) PrimaryArtist() string {
	lead, _, _ := strings.Cut(a.Artist, " & ")
	return lead
}

// CollateAlbums groups songs by album name and returns one Album per name.
//
// Albums are returned in the order their name was first seen. Each album
// takes its artwork and song URL from the first song in its group, and its
// artist from MostCommon over the group's artist credits.
//
// CollateAlbums is total: an empty input returns an empty, non-nil slice.
func CollateAlbums(songs []Song) []Album {
	var order []string
	groups := make(map[string][]Song)

	for _, s := range songs {
		if _, ok := groups[s.AlbumName]; !ok {
			order = append(order, s.AlbumName)
		}
		groups[s.AlbumName] = append(groups[s.AlbumName], s)
	}

	albums := make([]Album, 0, len(order))
	for _, name := range order {
		group := groups[name]

		artists := make([]string, len(group))
		for i, s := range group {
			artists[i] = s.ArtistName
		}

		albums = append(albums, Album{
			Name:   name,
			Artist: MostCommon(artists),
			Art:    group[0].Artwork,
			Song:   group[0].URL,
		})
	}

	return albums
}

// MostCommon returns the most frequent value in names.
//
// Ties go to the value that appears first. An empty input returns "".
func MostCommon(names []string) string {
	counts := make(map[string]int, len(names))
	for _, n := range names {
		counts[n]++
	}

	var best string
	bestCount := 0
	for _, n := range names {
		if c := counts[n]; c > bestCount {
			best, bestCount = n, c
		}
	}
	return best
}
