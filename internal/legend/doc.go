// Package legend renders a text companion to a poster.
//
// The legend lists every album on the poster, in poster order, with the
// share link its QR code encodes. It is useful when the poster is viewed
// somewhere a QR code cannot be scanned.
//
//	w := legend.NewWriter(legend.FormatMarkdown, model.DefaultShareURLFormat)
//	content := w.Render(albums)
//	os.WriteFile(legend.PathFor("output.png", legend.FormatMarkdown), []byte(content), 0644)
//
// Supported formats:
//   - txt: one "Artist - Album <link>" line per album
//   - md: a Markdown table
//   - html: a standalone HTML list
package legend
