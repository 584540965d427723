// Package applemusic extracts playlist songs from Apple Music web pages.
//
// # Playlist Page Parsing
//
// Use the Parser to turn a playlist page into songs:
//
//	parser := applemusic.NewParser()
//	songs, err := parser.ParsePlaylistPage(htmlContent)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	albums := model.CollateAlbums(songs)
//
// # Apple Music Data Format
//
// Public playlist pages embed their server state as JSON inside a
// <script id="serialized-server-data"> element. The songs live at
// [0].data.seoData.ogSongs, each with an "attributes" object holding the
// album name, artist name, artwork descriptor and song URL.
//
// Every song is validated on conversion: a song missing its album name,
// artist name, artwork URL or song URL fails the whole page with an error
// wrapping ErrMissingField.
package applemusic
