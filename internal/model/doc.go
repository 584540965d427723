// Package model defines the core data structures used throughout
// playlist-poster.
//
// # Song
//
// Song is one entry of a scraped playlist. Songs are produced by the
// applemusic parser and are never mutated afterwards.
//
// # Album
//
// Album is the collated view of one or more songs sharing an album name:
//
//	albums := model.CollateAlbums(songs)
//	for _, a := range albums {
//	    fmt.Printf("%s by %s\n", a.Name, a.Artist)
//	}
//
// # Artwork
//
// Artwork describes a cover image as a URL template plus theme colors:
//
//	url := album.Art.FormatURL(600, 600, "jpg")
//
// Available URL placeholders: {w}, {h}, {f}
package model
