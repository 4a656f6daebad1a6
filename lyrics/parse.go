package lyrics

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"vlwgen/css"
	"vlwgen/model"
)

// DefaultHeaders are used for columns without a recognizable header cell.
var DefaultHeaders = [3]string{"Original", "Romanized", "English"}

// Table is a parsed lyrics table.
type Table struct {
	Headers [3]string
	// Rows hold colour, original, romanized and English cells.
	Rows [][4]string
}

// Lines converts parsed rows to lyric lines with every column kept.
func (t Table) Lines() []model.LyricLine {
	lines := make([]model.LyricLine, 0, len(t.Rows))
	for _, r := range t.Rows {
		lines = append(lines, model.LyricLine{Colour: r[0], Original: r[1], Romanized: r[2], English: r[3]})
	}
	return lines
}

var (
	reTable       = regexp.MustCompile(`(?s)\{\|\s*style\s*=.*?\|\}`)
	reHeaderCell  = regexp.MustCompile(`^\|'{2,}([^'\n]+)'{2,}\s*$`)
	reStyleAttr   = regexp.MustCompile(`(?i)style\s*=\s*(?:"([^"]*)"|'([^']*)')`)
	reLineBreak   = regexp.MustCompile(`^\s*<br\s*/?\s*>\s*$`)
	reSharedCells = regexp.MustCompile(`(?i)^\s*(\{\{shared[^}]*\}\}|colspan=["']\d+["']\s*\|)`)
)

// FindTables locates styled tables ("{| style=... |}") in page source.
func FindTables(source string) []string {
	return reTable.FindAllString(source, -1)
}

// Parser turns lyrics table markup back into rows.
type Parser struct {
	log *zap.Logger
	css *css.Parser
}

// NewParser creates lyrics table parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("lyrics"), css: css.NewParser(log)}
}

// Parse extracts headers and rows from a single table as returned by
// FindTables. It is a best effort inverse of Render: table mode output parses
// back to the same rows, poem mode and custom colour spans inside cells are
// not recognized.
func (p *Parser) Parse(table string) Table {
	res := Table{Headers: DefaultHeaders}

	lines := strings.Split(strings.ReplaceAll(table, "\r\n", "\n"), "\n")
	if len(lines) == 0 {
		return res
	}

	// header cells directly follow the opening line
	i := 1
	for h := 0; h < len(res.Headers) && i < len(lines); h, i = h+1, i+1 {
		m := reHeaderCell.FindStringSubmatch(lines[i])
		if m == nil {
			break
		}
		res.Headers[h] = strings.TrimSpace(m[1])
	}

	var (
		inRow   bool
		style   string
		content []string
	)
	flush := func() {
		if inRow {
			res.Rows = append(res.Rows, p.parseRow(style, content))
		}
		inRow, style, content = false, "", nil
	}
	for ; i < len(lines); i++ {
		line := lines[i]
		switch {
		case strings.HasPrefix(line, "|-"):
			flush()
			inRow, style = true, line[2:]
		case strings.HasPrefix(line, "|}"):
			flush()
			p.log.Debug("Parsed lyrics table", zap.Strings("headers", res.Headers[:]), zap.Int("rows", len(res.Rows)))
			return res
		case inRow:
			content = append(content, line)
		}
	}
	flush()
	p.log.Debug("Parsed lyrics table", zap.Strings("headers", res.Headers[:]), zap.Int("rows", len(res.Rows)))
	return res
}

// Parse parses a single table with a default parser.
func Parse(table string) Table {
	return NewParser(nil).Parse(table)
}

func (p *Parser) parseRow(attrs string, content []string) [4]string {
	row := [4]string{p.rowColour(attrs)}

	cells := splitCells(content)
	if len(cells) == 1 {
		cell := cells[0]
		switch {
		case reLineBreak.MatchString(cell):
		case reSharedCells.MatchString(cell):
			v := strings.TrimSpace(reSharedCells.ReplaceAllString(cell, ""))
			row[1], row[2], row[3] = v, v, v
		default:
			row[1] = strings.TrimSpace(cell)
		}
		return row
	}
	for j := 0; j < len(cells) && j < 3; j++ {
		row[j+1] = strings.TrimSpace(cells[j])
	}
	return row
}

// rowColour returns colour declared in the row style attribute.
func (p *Parser) rowColour(attrs string) string {
	m := reStyleAttr.FindStringSubmatch(attrs)
	if m == nil {
		return ""
	}
	style := m[1]
	if style == "" {
		style = m[2]
	}
	if v, ok := p.css.ParseInline(style).Get("color"); ok {
		return v.Raw
	}
	return ""
}

// splitCells groups row lines into cells. A line starting with "|" opens a
// new cell, other lines continue the previous one.
func splitCells(content []string) []string {
	var cells []string
	for _, line := range content {
		if strings.HasPrefix(line, "|") {
			cells = append(cells, line[1:])
			continue
		}
		if len(cells) > 0 {
			cells[len(cells)-1] += "\n" + line
		}
	}
	return cells
}
