package legend

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/handiism/playlist-poster/internal/model"
)

// Format represents a supported legend file format.
type Format int

const (
	// FormatText creates plain .txt files.
	FormatText Format = iota

	// FormatMarkdown creates .md files holding a table.
	FormatMarkdown

	// FormatHTML creates .html files holding an ordered list.
	FormatHTML
)

// ParseFormat returns the Format named by s ("txt", "md" or "html").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "txt", "text", "":
		return FormatText, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "html", "htm":
		return FormatHTML, nil
	default:
		return FormatText, fmt.Errorf("unknown legend format %q", s)
	}
}

// Extension returns the file extension for the format, dot included.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatHTML:
		return ".html"
	default:
		return ".txt"
	}
}

func (f Format) String() string {
	return strings.TrimPrefix(f.Extension(), ".")
}

// PathFor returns the legend path that sits next to posterPath.
//
// Example:
//
//	PathFor("out/poster.png", FormatHTML) // "out/poster.html"
func PathFor(posterPath string, f Format) string {
	return strings.TrimSuffix(posterPath, filepath.Ext(posterPath)) + f.Extension()
}

// Writer renders album legends.
type Writer struct {
	format         Format
	shareURLFormat string
}

// NewWriter creates a Writer. shareURLFormat is passed to
// model.Album.ShareURL; empty selects the default.
func NewWriter(format Format, shareURLFormat string) *Writer {
	return &Writer{
		format:         format,
		shareURLFormat: shareURLFormat,
	}
}

// Format returns the writer's output format.
func (w *Writer) Format() Format {
	return w.format
}

// Render generates legend content for albums, in the order given.
func (w *Writer) Render(albums []model.Album) string {
	switch w.format {
	case FormatMarkdown:
		return w.renderMarkdown(albums)
	case FormatHTML:
		return w.renderHTML(albums)
	default:
		return w.renderText(albums)
	}
}

// renderText generates:
//
//	Artist - Album <https://song.link/...>
func (w *Writer) renderText(albums []model.Album) string {
	var sb strings.Builder

	for _, a := range albums {
		sb.WriteString(fmt.Sprintf("%s - %s <%s>\n", a.Artist, a.Name, a.ShareURL(w.shareURLFormat)))
	}

	return sb.String()
}

// renderMarkdown generates a table with one row per album. Pipes in names
// are escaped so they do not split cells.
func (w *Writer) renderMarkdown(albums []model.Album) string {
	var sb strings.Builder

	sb.WriteString("| # | Artist | Album | Link |\n")
	sb.WriteString("|---|--------|-------|------|\n")

	for i, a := range albums {
		sb.WriteString(fmt.Sprintf("| %d | %s | %s | [listen](%s) |\n",
			i+1,
			escapeMarkdown(a.Artist),
			escapeMarkdown(a.Name),
			a.ShareURL(w.shareURLFormat)))
	}

	return sb.String()
}

func (w *Writer) renderHTML(albums []model.Album) string {
	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html>\n")
	sb.WriteString("  <head>\n")
	sb.WriteString("    <meta charset=\"utf-8\"/>\n")
	sb.WriteString("    <title>Playlist Poster</title>\n")
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <ol>\n")

	for _, a := range albums {
		sb.WriteString(fmt.Sprintf("      <li><a href=\"%s\">%s - %s</a></li>\n",
			escapeXML(a.ShareURL(w.shareURLFormat)),
			escapeXML(a.Artist),
			escapeXML(a.Name)))
	}

	sb.WriteString("    </ol>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</html>\n")

	return sb.String()
}

// escapeXML escapes special XML characters in a string.
//
// Replaces: & < > " '
// With:     &amp; &lt; &gt; &quot; &apos;
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}

func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
