package page

import (
	"regexp"
	"strings"

	"github.com/samber/lo"

	"vlwgen/categories"
	"vlwgen/grid"
	"vlwgen/lyrics"
	"vlwgen/model"
)

// AlbumForm is a snapshot of the album page form and its grids.
type AlbumForm struct {
	OrigTitle     string   `yaml:"origTitle" json:"origTitle"`
	RomTitle      string   `yaml:"romTitle" json:"romTitle"`
	BgColour      string   `yaml:"bgColour" json:"bgColour"`
	FgColour      string   `yaml:"fgColour" json:"fgColour"`
	Label         string   `yaml:"label" json:"label"`
	Description   string   `yaml:"description" json:"description"`
	Engines       []string `yaml:"engines" json:"engines"`
	VDBAlbumID    string   `yaml:"vdbAlbumId" json:"vdbAlbumId"`
	VocaWikiPage  string   `yaml:"vocaWikiPage" json:"vocaWikiPage"`
	CategoriesRaw string   `yaml:"categoriesRaw" json:"categoriesRaw"`

	// disc, track, title, producers, singers
	Tracklist [][]any `yaml:"tracklist" json:"tracklist"`
	// url, description, official
	ExtLinks [][]any `yaml:"extLinks" json:"extLinks"`
}

// CategoriesInput collects form values used to infer album categories.
func (f AlbumForm) CategoriesInput() categories.AlbumInput {
	return categories.AlbumInput{
		Description: f.Description,
		Engines:     f.Engines,
		Tracks:      model.NewTrackItems(grid.FromCells(f.Tracklist)),
	}
}

var reAlbumID = regexp.MustCompile(`^(\d+)\D*$`)

type parsedAlbum struct {
	AlbumForm
	categories []string
	// entered holds every non blank tracklist row, tracks only the ones
	// with a page title.
	entered  []model.TrackItem
	tracks   []model.TrackItem
	extLinks []model.ExternalLink
}

// Album assembles an album page.
type Album struct {
	gate
	form AlbumForm
	p    *parsedAlbum
}

// NewAlbum creates album page assembler for the snapshot.
func NewAlbum(form AlbumForm) *Album {
	return &Album{form: form}
}

func (a *Album) Kind() string { return "album" }

func (a *Album) Parse() {
	p := &parsedAlbum{AlbumForm: a.form}
	p.OrigTitle = strings.TrimSpace(p.OrigTitle)
	p.RomTitle = strings.TrimSpace(p.RomTitle)
	p.BgColour = strings.TrimSpace(p.BgColour)
	p.FgColour = strings.TrimSpace(p.FgColour)
	p.Label = strings.TrimSpace(p.Label)
	p.Description = strings.TrimSpace(p.Description)
	p.VDBAlbumID = reAlbumID.ReplaceAllString(strings.TrimSpace(p.VDBAlbumID), "$1")
	p.VocaWikiPage = strings.TrimSpace(p.VocaWikiPage)
	p.categories = categories.Split(p.CategoriesRaw)

	rows := grid.FromCells(p.Tracklist)
	for _, row := range rows {
		if !row.Empty() {
			p.entered = append(p.entered, model.NewTrackItem(row))
		}
	}
	p.tracks = model.NewTrackItems(rows)
	p.extLinks = model.NewExternalLinks(grid.FromCells(p.ExtLinks))
	a.p = p
	a.parsed()
}

func (a *Album) Validate() (Findings, bool) {
	if a.p == nil {
		a.Parse()
	}
	p := a.p

	var (
		res       Findings
		recommend bool
	)

	if p.OrigTitle == "" {
		res.fatal("origTitle", "You haven't entered an album name.")
	}
	validateColours(&res, p.BgColour, p.FgColour)
	if p.Description == "" {
		res.fatal("description", "You must add a short description about the album.")
	}
	if p.VDBAlbumID == "" {
		res.fatal("vdbAlbumId", "You must add a numeric page ID for the VocaDB link.")
	}

	if len(p.tracks) == 0 {
		res.fatal("tracklist", "You must add at least one song to the tracklist.")
	} else {
		if lo.SomeBy(p.entered, func(t model.TrackItem) bool { return strings.TrimSpace(t.TrackNo) == "" }) {
			res.fatal("tracklist", "You must add the track listing number to all tracks.")
		}
		if lo.SomeBy(p.entered, func(t model.TrackItem) bool { return !grid.IsNumeric(t.DiscNo) }) {
			res.fatal("tracklist", "The disc number must be numeric.")
		}
		if lo.SomeBy(p.entered, func(t model.TrackItem) bool { return !grid.IsNumeric(t.TrackNo) }) {
			res.fatal("tracklist", "The track number must be numeric.")
		}
		if lo.SomeBy(p.entered, func(t model.TrackItem) bool { return t.PageTitle == "" }) {
			res.fatal("tracklist", "You must add a track name to all tracks.")
		}
		if lo.SomeBy(p.entered, func(t model.TrackItem) bool { return t.SingerCredit == "" && t.ProducerCredit == "" }) {
			res.fatal("tracklist", "You must add featured producers/singers to all tracks, or specify that the song is an instrumental if there are no singers.")
		}
	}

	if len(p.Engines) == 0 {
		res.fatal("engines", noEngineMessage)
		recommend = true
	}
	if len(p.categories) == 0 {
		res.fatal("categoriesRaw", noCategoriesMessage)
		recommend = true
	}
	a.validated(res)
	return res, recommend
}

type albumValues struct {
	DisplayTitle  string
	Title         string
	OrgTitle      string
	Label         string
	Description   string
	VDBAlbumID    string
	VocaWikiPage  string
	BgColour      string
	FgColour      string
	Tracks        []string
	ExternalLinks string
	Sort          string
	Categories    string
}

func (a *Album) Render() (string, error) {
	if err := a.renderable(); err != nil {
		return "", err
	}
	p := a.p

	v := albumValues{
		DisplayTitle:  displayTitle(p.OrigTitle),
		Title:         p.OrigTitle,
		Label:         p.Label,
		Description:   p.Description,
		VDBAlbumID:    p.VDBAlbumID,
		VocaWikiPage:  p.VocaWikiPage,
		BgColour:      p.BgColour,
		FgColour:      p.FgColour,
		Tracks:        lo.Map(p.tracks, func(t model.TrackItem, _ int) string { return t.Markup() }),
		ExternalLinks: model.LinksSection(p.extLinks),
		Categories:    categories.Markup(p.categories),
	}
	if p.RomTitle != "" {
		v.Title, v.OrgTitle = p.RomTitle, p.OrigTitle
	}
	if p.RomTitle != p.OrigTitle && p.OrigTitle != "" {
		v.Sort = "{{sort-album}}"
		if key := lyrics.DetonePinyin(p.RomTitle, false); model.HasNonPrintable(key) {
			v.Sort = "{{sort-album|" + key + "}}"
		}
	}
	return expand("album.tmpl", v)
}
