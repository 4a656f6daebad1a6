// Package lyrics converts lyric grids to wikitext lyrics tables and back.
//
// Render produces either a multi-column table (when romanization or
// translation is needed) or a single-column <poem> block. Parse is a best
// effort inverse of the table form only: poem blocks and colour spans inside
// cells are not recognized.
package lyrics

import (
	"strings"

	"github.com/samber/lo"

	"vlwgen/markup"
	"vlwgen/model"
)

// Options control lyrics rendering.
type Options struct {
	// Headers are the labels of original, romanized and English columns.
	// Empty labels are not printed.
	Headers             [3]string
	NeedsRomanization   bool
	NeedsEnglish        bool
	Translator          string
	OfficialTranslation bool
	// BgColour and FgColour style the singer legend header.
	BgColour string
	FgColour string
	// ForceEnglishColumn prints English column even when nothing is
	// translated.
	ForceEnglishColumn bool
}

// OptionsFor builds rendering options from page language options.
func OptionsFor(lang model.LanguageOptions) Options {
	return Options{
		Headers:           lang.ContentHeaders(),
		NeedsRomanization: lang.NeedsRomanization,
		NeedsEnglish:      lang.NeedsEnglish,
	}
}

const legendHeader = `{| border="1" cellpadding="4" style="border-collapse:collapse; border:1px groove; line-height:1.5"` + "\n"

// Render produces lyrics markup for the lines.
func Render(lines []model.LyricLine, opts Options) string {
	var (
		asTable     = opts.NeedsRomanization || opts.NeedsEnglish
		hasEnglish  = lo.SomeBy(lines, func(l model.LyricLine) bool { return l.English != "" })
		showEnglish = opts.ForceEnglishColumn || (opts.NeedsEnglish && hasEnglish)

		showNotes        bool
		translationNotes bool
		colours          []string
	)
	for _, l := range lines {
		colours = append(colours, l.Colour)
		if markup.HasRef(l.Original) || markup.HasRef(l.Romanized) {
			showNotes = true
		} else if hasEnglish && markup.HasRef(l.English) {
			showNotes = true
			translationNotes = true
		}
	}
	colours = lo.Uniq(colours)

	var b strings.Builder

	if lic, ok := model.FindTranslatorLicense(opts.Translator); ok {
		b.WriteString("{{TranslatorLicense|" + lic.IDs[0] + "|" + lic.License + "}}\n")
	}

	if len(colours) > 1 {
		writeLegend(&b, colours, opts)
	}

	if asTable {
		writeTable(&b, lines, opts, hasEnglish, showEnglish)
	} else {
		writePoem(&b, lines)
	}

	if showNotes {
		b.WriteString("\n==")
		if translationNotes {
			b.WriteString("Translation ")
		}
		b.WriteString("Notes==\n<references />\n")
	}
	return b.String()
}

// writeLegend prints a table explaining which colour belongs to which
// singer. Uncoloured lines are sung by everybody.
func writeLegend(b *strings.Builder, colours []string, opts Options) {
	all := lo.Contains(colours, "")
	b.WriteString(legendHeader)
	b.WriteString(`!style="background-color:` + opts.BgColour + `; color:` + opts.FgColour + `"|Singer` + "\n")
	for _, c := range lo.Without(colours, "") {
		b.WriteString(`|<span style="color:` + c + `">Singer</span>` + "\n")
	}
	if all {
		b.WriteString("|All")
	}
	b.WriteString("\n|}\n")
}

func writeTable(b *strings.Builder, lines []model.LyricLine, opts Options, hasEnglish, showEnglish bool) {
	b.WriteString(`{| style="width:100%"` + "\n")
	official := hasEnglish && opts.OfficialTranslation
	for i, label := range opts.Headers {
		if label == "" {
			continue
		}
		isEnglish := i == len(opts.Headers)-1
		switch {
		case isEnglish && official:
			b.WriteString("|{{OfficialEnglish}}\n")
		case isEnglish && !official && !showEnglish:
		default:
			b.WriteString("|'''''" + label + "'''''\n")
		}
	}
	for _, l := range lines {
		b.WriteString(l.Markup(showEnglish))
	}
	b.WriteString("|}")

	if hasEnglish && (!opts.OfficialTranslation || opts.Translator != "") {
		translator := opts.Translator
		if translator == "" {
			translator = "Anonymous"
		}
		b.WriteString("\n{{Translator|" + translator + "}}\n")
	}
}

// writePoem prints original text only, consecutive lines of the same colour
// share one span.
func writePoem(b *strings.Builder, lines []model.LyricLine) {
	type span struct {
		contents strings.Builder
		colour   string
	}
	var (
		spans = []*span{{}}
		prev  *model.LyricLine
	)
	for i := range lines {
		l := &lines[i]
		cur := spans[len(spans)-1]
		if l.Blank() {
			cur.contents.WriteByte('\n')
			continue
		}
		if prev != nil && l.Colour != prev.Colour {
			cur = &span{}
			spans = append(spans, cur)
		}
		if l.Colour != "" {
			cur.colour = l.Colour
		}
		cur.contents.WriteString(l.Original + "\n")
		prev = l
	}

	b.WriteString("<poem>")
	for i, s := range spans {
		if i > 0 {
			b.WriteByte('\n')
		}
		contents := strings.TrimSuffix(s.contents.String(), "\n")
		if s.colour != "" {
			contents = `<span style="color:` + s.colour + `;">` + contents + "</span>"
		}
		b.WriteString(contents)
	}
	b.WriteString("</poem>")
}
