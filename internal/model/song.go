package model

// Song represents a single playlist entry as scraped from the playlist page.
//
// AlbumName, ArtistName, Artwork and URL are always set on a Song returned by
// the parser. Every other field is optional and may be zero.
type Song struct {
	// ID is the catalog identifier of the song.
	ID string

	// Name is the track title.
	Name string

	// AlbumName is the title of the album the song belongs to.
	// It is the grouping key used by CollateAlbums.
	AlbumName string

	// ArtistName is the artist credit of this particular song.
	ArtistName string

	// ComposerName is the composer credit, if any.
	ComposerName string

	// DurationInMillis is the track length in milliseconds.
	DurationInMillis int64

	// ContentRating is "explicit", "clean" or empty.
	ContentRating string

	// Artwork describes the cover image of the song's album.
	Artwork Artwork

	// URL is the public page of the song. It identifies the song when
	// building sharable links.
	URL string
}
