package lyrics

import (
	"vlwgen/grid"
	"vlwgen/model"
)

// EditorForm is a snapshot of the standalone lyrics editor: a lyrics grid
// with just enough song details to render it.
type EditorForm struct {
	LanguageIDs           []int  `yaml:"languageIds" json:"languageIds"`
	BgColour              string `yaml:"bgColour" json:"bgColour"`
	FgColour              string `yaml:"fgColour" json:"fgColour"`
	Translator            string `yaml:"translator" json:"translator"`
	IsOfficialTranslation bool   `yaml:"isOfficialTranslation" json:"isOfficialTranslation"`
	ForceEnglishColumn    bool   `yaml:"forceEnglishColumn" json:"forceEnglishColumn"`

	// colour, original, romanized, english
	Lyrics [][]any `yaml:"lyrics" json:"lyrics"`
}

// Options returns rendering options for the editor settings.
func (f EditorForm) Options() Options {
	opts := OptionsFor(model.ParseLanguageOptions(f.LanguageIDs))
	opts.Translator = f.Translator
	opts.OfficialTranslation = f.IsOfficialTranslation
	opts.BgColour, opts.FgColour = f.BgColour, f.FgColour
	opts.ForceEnglishColumn = f.ForceEnglishColumn
	if f.ForceEnglishColumn {
		opts.NeedsEnglish = true
	}
	return opts
}

// Lines normalizes the grid for rendering.
func (f EditorForm) Lines() []model.LyricLine {
	opts := f.Options()
	return model.NewLyricLines(grid.FromCells(f.Lyrics), opts.NeedsRomanization, opts.NeedsEnglish)
}

// Render renders the editor grid as page lyrics section.
func (f EditorForm) Render() string {
	return Render(f.Lines(), f.Options())
}

// Load replaces editor grid with a parsed table. Headers are not kept, they
// follow from selected languages.
func (f *EditorForm) Load(t Table) {
	f.Lyrics = make([][]any, 0, len(t.Rows))
	for _, r := range t.Rows {
		f.Lyrics = append(f.Lyrics, []any{r[0], r[1], r[2], r[3]})
	}
}
