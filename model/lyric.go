package model

import (
	"strconv"
	"strings"

	"vlwgen/grid"
)

// LyricLine is one row of the lyrics grid: colour, original text and,
// depending on the language options, romanization and English translation.
type LyricLine struct {
	Colour    string
	Original  string
	Romanized string
	English   string
}

// NewLyricLine normalizes a lyrics grid row (colour, original, romanized,
// english). Romanized and English are only kept when needed.
func NewLyricLine(row grid.Row, needsRomanization, needsEnglish bool) LyricLine {
	l := LyricLine{
		Colour:   row.Trimmed(0),
		Original: row.Trimmed(1),
	}
	if needsRomanization {
		l.Romanized = row.Trimmed(2)
	}
	if needsEnglish {
		l.English = row.Trimmed(3)
	}
	return l
}

// NewLyricLines converts the whole lyrics grid. Trailing blank rows (spare
// rows of the grid widget) are dropped, blank rows in between are kept since
// they separate stanzas.
func NewLyricLines(rows grid.Rows, needsRomanization, needsEnglish bool) []LyricLine {
	end := len(rows)
	for end > 0 && rows[end-1].Empty() {
		end--
	}
	lines := make([]LyricLine, 0, end)
	for _, row := range rows[:end] {
		lines = append(lines, NewLyricLine(row, needsRomanization, needsEnglish))
	}
	return lines
}

// Cells returns line as a four cell grid row.
func (l LyricLine) Cells() [4]string {
	return [4]string{l.Colour, l.Original, l.Romanized, l.English}
}

// Blank reports whether the line has no original text, such lines render as
// line breaks.
func (l LyricLine) Blank() bool {
	return l.Original == ""
}

// SharesColumns reports whether the row collapses into a single shared cell.
func (l LyricLine) SharesColumns(printEnglish bool) bool {
	if l.Romanized != "" && l.Romanized != l.Original {
		return false
	}
	if printEnglish && l.English != "" && l.English != l.Original {
		return false
	}
	return true
}

// Markup renders the line as a wikitable row. When printEnglish is set the
// English column is always emitted, even if empty.
func (l LyricLine) Markup(printEnglish bool) string {
	var b strings.Builder

	b.WriteString("|-")
	if l.Colour == "" {
		b.WriteString(" ")
	} else {
		b.WriteString(" style='color:" + l.Colour + "'")
	}
	b.WriteByte('\n')

	if !l.SharesColumns(printEnglish) {
		b.WriteString("|" + l.Original + "\n")
		if l.Romanized != "" {
			b.WriteString("|" + l.Romanized + "\n")
		}
		if printEnglish {
			b.WriteString("|" + l.English + "\n")
		}
		return b.String()
	}

	if l.Original == "" {
		b.WriteString("|<br />\n")
		return b.String()
	}

	span := 0
	for _, s := range []string{l.Original, l.Romanized, l.English} {
		if s != "" {
			span++
		}
	}
	if printEnglish && l.English == "" {
		span++
	}
	b.WriteString("| {{shared|" + strconv.Itoa(span) + "}} " + l.Original + "\n")
	return b.String()
}
