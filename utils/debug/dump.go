package debug

import (
	"fmt"
	"strings"

	"vlwgen/discography"
	"vlwgen/lyrics"
	"vlwgen/markup"
	"vlwgen/model"
	"vlwgen/page"
)

// LyricsTable dumps parsed lyrics table, headers label row cells. Every
// lyric cell is followed by the HTML it would show in the editor preview.
func LyricsTable(name string, t lyrics.Table) string {
	tw := NewTreeWriter()
	tw.Line(0, "table %s rows=%d", name, len(t.Rows))
	labels := []string{"colour", t.Headers[0], t.Headers[1], t.Headers[2]}
	for i, r := range t.Rows {
		tw.Line(1, "row %d", i+1)
		tw.Cells(2, labels, r[:])
		colour := model.ColourHex(r[0])
		for j, cell := range r[1:] {
			if cell == "" {
				continue
			}
			tw.TextBlock(2, "preview "+labels[j+1]+emphasis(cell), markup.PreviewHTML(cell, colour))
		}
	}
	return tw.String()
}

// emphasis marks cells wrapped in bold or italic quotes as a whole.
func emphasis(cell string) string {
	var marks []string
	if markup.IsFullyBold(cell) {
		marks = append(marks, "bold")
	}
	if markup.IsFullyItalic(cell) {
		marks = append(marks, "italic")
	}
	if len(marks) == 0 {
		return ""
	}
	return " [" + strings.Join(marks, " ") + "]"
}

// Outcome dumps result of a generate action without the page itself.
func Outcome(o *page.Outcome) string {
	tw := NewTreeWriter()
	tw.Line(0, "%s %s state=%s", o.Kind, o.ID, o.State)
	if o.RecommendCategories {
		tw.Line(1, "categories need review")
	}
	for _, f := range o.Findings {
		tw.TextBlock(1, fmt.Sprintf("%s [%s]", f.Severity, f.Field), f.Message)
	}
	tw.Line(1, "output size=%d", len(o.Output))
	return tw.String()
}

// Discography dumps merged discography grids.
func Discography(prodcat string, d *discography.Discography) string {
	tw := NewTreeWriter()
	tw.Line(0, "discography %s", prodcat)
	for _, part := range []struct {
		label string
		rows  [][]any
	}{{"songs", d.Songs}, {"albums", d.Albums}} {
		tw.Line(1, "%s count=%d", part.label, len(part.rows))
		for _, row := range part.rows {
			if len(row) == 0 {
				continue
			}
			tw.TextBlock(2, "title", fmt.Sprint(row[0]))
		}
	}
	return tw.String()
}
