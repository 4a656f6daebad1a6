package page

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"vlwgen/categories"
	"vlwgen/grid"
	"vlwgen/lyrics"
	"vlwgen/markup"
	"vlwgen/model"
)

// SongForm is a snapshot of the song page form and its grids.
type SongForm struct {
	CWState                     CWState  `yaml:"cwState" json:"cwState"`
	CWText                      string   `yaml:"cwText" json:"cwText"`
	HasEpilepsyWarning          bool     `yaml:"hasEpilepsyWarning" json:"hasEpilepsyWarning"`
	OrigTitle                   string   `yaml:"origTitle" json:"origTitle"`
	AltChTitle                  string   `yaml:"altChTitle" json:"altChTitle"`
	AltChIsTraditional          bool     `yaml:"altChIsTraditional" json:"altChIsTraditional"`
	RomTitle                    string   `yaml:"romTitle" json:"romTitle"`
	EngTitle                    string   `yaml:"engTitle" json:"engTitle"`
	TitleIsOfficiallyTranslated bool     `yaml:"titleIsOfficiallyTranslated" json:"titleIsOfficiallyTranslated"`
	LanguageIDs                 []int    `yaml:"languageIds" json:"languageIds"`
	BgColour                    string   `yaml:"bgColour" json:"bgColour"`
	FgColour                    string   `yaml:"fgColour" json:"fgColour"`
	UploadDate                  string   `yaml:"uploadDate" json:"uploadDate"`
	IsAlbumOnly                 bool     `yaml:"isAlbumOnly" json:"isAlbumOnly"`
	IsUnavailable               bool     `yaml:"isUnavailable" json:"isUnavailable"`
	Engines                     []string `yaml:"usedEngines" json:"usedEngines"`
	Singers                     string   `yaml:"singers" json:"singers"`
	Producers                   string   `yaml:"producers" json:"producers"`
	Description                 string   `yaml:"description" json:"description"`
	Translator                  string   `yaml:"translator" json:"translator"`
	IsOfficialTranslation       bool     `yaml:"isOfficialTranslation" json:"isOfficialTranslation"`
	CategoriesRaw               string   `yaml:"categoriesRaw" json:"categoriesRaw"`

	// grids: site, url, reprint, autogen, deleted, views
	PlayLinks [][]any `yaml:"playLinks" json:"playLinks"`
	// colour, original, romanized, english
	Lyrics [][]any `yaml:"lyrics" json:"lyrics"`
	// url, description, official
	ExtLinks [][]any `yaml:"extLinks" json:"extLinks"`
}

// CategoriesInput collects form values used to infer song categories.
func (f SongForm) CategoriesInput() categories.SongInput {
	opts := model.ParseLanguageOptions(f.LanguageIDs)
	return categories.SongInput{
		LanguageIDs:  f.LanguageIDs,
		Engines:      f.Engines,
		Singers:      f.Singers,
		Producers:    f.Producers,
		IsAlbumOnly:  f.IsAlbumOnly,
		NeedsEnglish: opts.NeedsEnglish,
		Lyrics:       model.NewLyricLines(grid.FromCells(f.Lyrics), opts.NeedsRomanization, opts.NeedsEnglish),
	}
}

// Accepted upload date formats, the first one is what the form produces.
var dateLayouts = []string{
	time.DateOnly,
	"2006/01/02",
	"2006-1-2",
	time.RFC3339,
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

func parseDate(s string) *time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

type parsedSong struct {
	SongForm
	lang       model.LanguageOptions
	uploadDate *time.Time
	categories []string
	playLinks  []model.PlayLink
	lyrics     []model.LyricLine
	extLinks   []model.ExternalLink
}

// Song assembles a song page.
type Song struct {
	gate
	form SongForm
	p    *parsedSong
}

// NewSong creates song page assembler for the snapshot.
func NewSong(form SongForm) *Song {
	return &Song{form: form}
}

func (s *Song) Kind() string { return "song" }

func (s *Song) Parse() {
	p := &parsedSong{SongForm: s.form}
	p.CWText = strings.TrimSpace(p.CWText)
	p.OrigTitle = strings.TrimSpace(p.OrigTitle)
	p.AltChTitle = strings.TrimSpace(p.AltChTitle)
	p.RomTitle = strings.TrimSpace(p.RomTitle)
	p.EngTitle = strings.TrimSpace(p.EngTitle)
	p.BgColour = strings.TrimSpace(p.BgColour)
	p.FgColour = strings.TrimSpace(p.FgColour)
	p.Translator = strings.TrimSpace(p.Translator)
	p.UploadDate = strings.TrimSpace(p.UploadDate)
	p.Singers = textArea(p.Singers)
	p.Producers = textArea(p.Producers)
	p.Description = textArea(p.Description)

	if p.UploadDate != "" {
		p.uploadDate = parseDate(p.UploadDate)
	}
	p.lang = model.ParseLanguageOptions(p.LanguageIDs)
	p.categories = categories.Split(p.CategoriesRaw)
	p.playLinks = model.NewPlayLinks(grid.FromCells(p.PlayLinks))
	p.extLinks = model.NewExternalLinks(grid.FromCells(p.ExtLinks))
	p.lyrics = model.NewLyricLines(grid.FromCells(p.Lyrics), p.lang.NeedsRomanization, p.lang.NeedsEnglish)
	s.p = p
	s.parsed()
}

func (s *Song) Validate() (Findings, bool) {
	if s.p == nil {
		s.Parse()
	}
	p := s.p

	var (
		res       Findings
		recommend bool
	)

	if p.CWState != CWStateNoWarnings && p.CWText == "" {
		res.fatal("cwText", "You must add a reason for wanting to add a content warning onto the page, e.g. violent content, sexual content, etc.")
	}
	if len(p.LanguageIDs) == 0 {
		res.fatal("languageIds", "You haven't chosen a language.")
		recommend = true
	}
	if p.OrigTitle == "" {
		res.fatal("origTitle", "You haven't entered a song title.")
	}
	switch {
	case p.UploadDate == "":
		res.fatal("uploadDate", "You haven't entered the date of publication.")
	case p.uploadDate == nil:
		res.fatal("uploadDate", "The date of publication is not a valid date.")
	}

	validateColours(&res, p.BgColour, p.FgColour)
	if lo.SomeBy(p.lyrics, func(l model.LyricLine) bool { return !model.ValidColour(l.Colour) }) {
		res.fatal("lyrics", "One of the lyrics row colours is invalid.")
	}

	if p.Singers == "" {
		res.fatal("singers", "You haven't listed any singers.")
		recommend = true
	}
	if !markup.HasInternalLink(p.Singers) {
		res.fatal("singers", "You need to list at least one singer in markup, e.g. [[Kagamine Rin]].")
		recommend = true
	}
	if len(p.Engines) == 0 {
		res.fatal("engines", noEngineMessage)
		recommend = true
	}
	if p.Producers == "" {
		res.fatal("producers", "You haven't listed any producers. For well-known producers, it is recommended that the producer's name is listed in markup, e.g. [[wowaka]], before you generate the song page.")
		recommend = true
	} else if !markup.HasInternalLink(p.Producers) {
		res.warn("producers", `If the producer already has a page on Vocaloid Lyrics wiki, then you should add the name of that producer in markup, e.g. "[[wowaka]] (music)" or "[[nagimiso]] (illustration)". Clicking the "Autoload Categories" button again in this case will automatically generate the category for that producer.`)
		recommend = true
	}
	if len(p.categories) == 0 {
		res.fatal("categoriesRaw", noCategoriesMessage)
		recommend = true
	}

	if !p.IsUnavailable && !p.IsAlbumOnly && len(p.playLinks) == 0 {
		res.fatal("playLinks", `No music videos or play links are detected. Please check the "Song is publically unavailable" if official releases are no longer available, or check the "Song is an album-only release" option if the song is released on albums only`)
		recommend = true
	}
	if lo.SomeBy(p.playLinks, func(l model.PlayLink) bool {
		_, counted := model.ViewCountAbbreviation(l.Site)
		return l.OfficiallyAvailable() && counted && l.ViewCount == ""
	}) {
		res.warn("playLinks", "Did you forget to add the view counts?")
	}

	if lo.EveryBy(p.lyrics, func(l model.LyricLine) bool { return l.Original == "" }) {
		res.fatal("lyrics", "Original lyrics column is empty.")
	}
	if p.lang.NeedsRomanization && !lo.SomeBy(p.lyrics, func(l model.LyricLine) bool { return l.Romanized != "" }) {
		res.fatal("lyrics", "Romanized/transliterated lyrics column is empty.")
	}
	hasEnglish := p.lang.NeedsEnglish && lo.SomeBy(p.lyrics, func(l model.LyricLine) bool { return l.English != "" })
	if hasEnglish && p.Translator == "" && !p.IsOfficialTranslation {
		res.warn("translator", "A translation exists, but the translator is uncredited. Is it made by an anonymous contributor?")
	}

	s.validated(res)
	return res, recommend
}

// Messages shared by several page types.
const (
	noEngineMessage     = `Please list at least one vocal synth engine, e.g. VOCALOID. Choose "Other/Unlisted" if not on the list.`
	noCategoriesMessage = "Did you forget to add categories?"
)

func validateColours(res *Findings, bg, fg string) {
	if bg == "" {
		res.fatal("bgColour", "Please add a background colour.")
	}
	if fg == "" {
		res.fatal("fgColour", "Please add a foreground colour.")
	}
	if !model.ValidColour(bg) {
		res.fatal("bgColour", "The background colour is invalid.")
	}
	if !model.ValidColour(fg) {
		res.fatal("fgColour", "The foreground colour is invalid.")
	}
}

type songValues struct {
	Directives    string
	Titles        string
	BgColour      string
	FgColour      string
	UploadDate    *time.Time
	Singers       string
	Producers     string
	Views         []string
	PlayLinks     []string
	Description   string
	Lyrics        string
	ExternalLinks string
	Categories    string
}

func (s *Song) Render() (string, error) {
	if err := s.renderable(); err != nil {
		return "", err
	}
	p := s.p

	var directives strings.Builder
	directives.WriteString(displayTitle(p.OrigTitle))
	if p.lang.NeedsRomanization && p.RomTitle != "" {
		directives.WriteString("{{sort")
		if key := lyrics.DetonePinyin(p.RomTitle, false); model.HasNonPrintable(key) {
			directives.WriteString("|" + key)
		}
		directives.WriteString("}}")
	}
	if p.IsUnavailable {
		directives.WriteString("{{Unavailable}}")
	}
	if p.HasEpilepsyWarning {
		directives.WriteString("{{Epilepsy}}")
	}
	if m := p.CWState.macro(); m != "" {
		directives.WriteString("{{" + m)
		if p.CWText != "" {
			directives.WriteString("|" + p.CWText)
		}
		directives.WriteString("}}")
	}

	titles := "\"'''" + p.OrigTitle + "'''\""
	if p.AltChTitle != "" {
		variant := "Simplified"
		if p.AltChIsTraditional {
			variant = "Traditional"
		}
		titles += "<br />" + variant + " Chinese: " + p.AltChTitle
	}
	if p.lang.NeedsRomanization && p.RomTitle != "" {
		titles += "<br />" + p.lang.Headers[2] + ": " + p.RomTitle
	}
	if p.lang.NeedsEnglish && p.EngTitle != "" {
		official := ""
		if p.TitleIsOfficiallyTranslated {
			official = "Official "
		}
		titles += "<br />" + official + "English: " + p.EngTitle
	}

	opts := lyrics.OptionsFor(p.lang)
	opts.Translator = p.Translator
	opts.OfficialTranslation = p.IsOfficialTranslation
	opts.BgColour, opts.FgColour = p.BgColour, p.FgColour

	return expand("song.tmpl", songValues{
		Directives:    directives.String(),
		Titles:        titles,
		BgColour:      p.BgColour,
		FgColour:      p.FgColour,
		UploadDate:    p.uploadDate,
		Singers:       p.Singers,
		Producers:     p.Producers,
		Views:         viewCounts(p.playLinks),
		PlayLinks:     lo.Map(p.playLinks, func(l model.PlayLink, _ int) string { return l.Markup() }),
		Description:   p.Description,
		Lyrics:        lyrics.Render(p.lyrics, opts),
		ExternalLinks: model.LinksSection(p.extLinks),
		Categories:    categories.Markup(p.categories),
	})
}

// viewCounts lists rounded view counts of original uploads on services
// keeping them. Service abbreviations are only added when there is more than
// one count.
func viewCounts(links []model.PlayLink) []string {
	type count struct{ views, abbr string }
	var counts []count
	for _, l := range links {
		abbr, ok := model.ViewCountAbbreviation(l.Site)
		if l.IsReprint || !ok {
			continue
		}
		counts = append(counts, count{l.FormattedViewCount(), abbr})
	}
	return lo.Map(counts, func(c count, _ int) string {
		if len(counts) > 1 {
			return c.views + " (" + c.abbr + ")"
		}
		return c.views
	})
}
