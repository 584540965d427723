// Package poster composes the playlist poster image.
//
// A poster is a grid of cells, one per album. Each cell holds the album
// artwork on the left and an info panel on the right: the panel is filled
// with the artwork's background color, shows the artist and album title in
// the artwork's text colors, and carries a translucent QR code linking to
// one of the album's songs in its bottom-right corner.
//
//	fonts, _ := poster.LoadFonts("", "", layout.FontSize)
//	composer := poster.NewComposer(layout, fonts)
//	img, err := composer.Compose(cells, 0) // 0 = ceil(sqrt(n)) columns
package poster
