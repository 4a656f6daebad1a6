package page

import (
	"regexp"
	"strings"

	"github.com/samber/lo"

	"vlwgen/categories"
	"vlwgen/grid"
	"vlwgen/model"
)

// ProducerForm is a snapshot of the producer page form and its grids.
type ProducerForm struct {
	ProdCategory  string              `yaml:"prodCategory" json:"prodCategory"`
	ProdAliases   string              `yaml:"prodAliases" json:"prodAliases"`
	ProducerRoles model.ProducerRoles `yaml:"producerRoles" json:"producerRoles"`
	Affiliations  string              `yaml:"affiliations" json:"affiliations"`
	Label         string              `yaml:"label" json:"label"`
	LanguageIDs   []int               `yaml:"languageIds" json:"languageIds"`
	Engines       []string            `yaml:"engines" json:"engines"`
	Description   string              `yaml:"description" json:"description"`

	// page, additional parameters
	SongList  [][]any `yaml:"songList" json:"songList"`
	AlbumList [][]any `yaml:"albumList" json:"albumList"`
	// url, description, official, media, inactive
	ExtLinks [][]any `yaml:"extLinks" json:"extLinks"`
}

// CategoriesInput collects form values used to infer producer categories.
func (f ProducerForm) CategoriesInput() categories.ProducerInput {
	return categories.ProducerInput{
		Roles:       f.ProducerRoles,
		LanguageIDs: f.LanguageIDs,
		Engines:     f.Engines,
	}
}

type parsedProducer struct {
	ProducerForm
	songs    []model.DiscogItem
	albums   []model.DiscogItem
	extLinks []model.ExternalLink
}

// Producer assembles a producer page.
type Producer struct {
	gate
	form ProducerForm
	p    *parsedProducer
}

// NewProducer creates producer page assembler for the snapshot.
func NewProducer(form ProducerForm) *Producer {
	return &Producer{form: form}
}

func (pr *Producer) Kind() string { return "producer" }

// bulletList turns every line of a text area into a list item.
func bulletList(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.Join(lo.Map(reTextAreaLines.Split(s, -1), func(l string, _ int) string { return "* " + l }), "\n")
}

func (pr *Producer) Parse() {
	p := &parsedProducer{ProducerForm: pr.form}
	p.ProdCategory = strings.TrimSpace(p.ProdCategory)
	p.ProdAliases = strings.TrimSpace(p.ProdAliases)
	p.Affiliations = bulletList(p.Affiliations)
	p.Label = bulletList(p.Label)
	p.Description = strings.TrimSpace(p.Description)

	p.songs = model.NewDiscogItems(grid.FromCells(p.SongList), false)
	p.albums = model.NewDiscogItems(grid.FromCells(p.AlbumList), true)
	p.extLinks = model.NewExternalLinks(grid.FromCells(p.ExtLinks))
	pr.p = p
	pr.parsed()
}

func (pr *Producer) Validate() (Findings, bool) {
	if pr.p == nil {
		pr.Parse()
	}
	p := pr.p

	var res Findings

	if p.ProdCategory == "" {
		res.fatal("prodCategory", "You must add the producer category page name for the producer. (This will be used as the parameter of {{ProdLinks}})")
	}
	if len(p.LanguageIDs) == 0 {
		res.fatal("languageIds", "You haven't chosen a language.")
	}
	if len(p.Engines) == 0 {
		res.fatal("engines", noEngineMessage)
	}
	if p.ProducerRoles.None() {
		res.fatal("producerRoles", "You must specify at least one role for the producer, e.g. Do they compose their own songs? Are they an illustrator/PV maker for other producers?")
	}
	if p.Description == "" {
		res.fatal("description", `You must add a description for the producer. Even a short description, e.g. "[PRODUCER] is a VOCALOID producer.", will do.`)
	}
	switch {
	case len(p.extLinks) == 0:
		res.fatal("extLinks", "You must add at least one external link.")
	case !lo.SomeBy(p.extLinks, func(l model.ExternalLink) bool { return l.IsOfficial }):
		res.fatal("extLinks", "You must add at least one official external link, e.g. the producer's social media.")
	}
	if len(p.songs) == 0 {
		res.fatal("pwtDiscog", "No song page has been added.")
	}
	pr.validated(res)
	return res, false
}

// Unofficial sites folded into the {{links}} macro, in macro parameter
// order.
var linkMacroParams = []struct {
	name string
	re   *regexp.Regexp
}{
	{"atmiku", regexp.MustCompile(`^https?://(?:w|www5)\.atwiki\.jp/hmiku/pages/(\d*)\.html`)},
	{"atutau", regexp.MustCompile(`^https?://w\.atwiki\.jp/utauuuta/pages/(\d*)\.html`)},
	{"nico", regexp.MustCompile(`^https?://dic\.nicovideo\.jp/id/(.*)$`)},
	{"vocadb", regexp.MustCompile(`^https?://vocadb\.net/Ar/(\d*)`)},
	{"tag", regexp.MustCompile(`^https?://www\.nicovideo\.jp/tag/(.*)$`)},
	{"mgp", regexp.MustCompile(`^https?://zh\.moegirl\.org\.cn/(.*)$`)},
}

// unofficialLinks renders the {{links}} macro for recognized sites followed
// by a list of the other links.
func unofficialLinks(links []model.ExternalLink) string {
	params := make([]string, len(linkMacroParams))
	var rest strings.Builder
	for _, l := range links {
		found := false
		for i, p := range linkMacroParams {
			if m := p.re.FindStringSubmatch(l.URL); m != nil {
				params[i], found = m[1], true
				break
			}
		}
		if !found {
			rest.WriteString("* " + l.Markup() + "\n")
		}
	}

	var b strings.Builder
	b.WriteString("{{links |p=yes\n")
	for i, p := range linkMacroParams {
		b.WriteString("  |" + p.name + strings.Repeat(" ", 6-len(p.name)) + " = " + params[i] + "\n")
	}
	b.WriteString("}}\n")
	b.WriteString(rest.String())
	return b.String()
}

func producerLinksSection(links []model.ExternalLink) string {
	var official, media strings.Builder
	var others []model.ExternalLink
	for _, l := range links {
		switch {
		case l.IsOfficial && !l.IsMedia:
			official.WriteString("* " + l.Description + ": [" + l.URL + " ]\n")
		case l.IsOfficial:
			media.WriteString("* " + l.Markup() + "\n")
		default:
			others = append(others, l)
		}
	}

	var b strings.Builder
	b.WriteString("==External links==\n")
	if official.Len() > 0 {
		b.WriteString(official.String() + "\n")
	}
	if media.Len() > 0 {
		b.WriteString("===Media===\n" + media.String() + "\n")
	}
	b.WriteString("===Unofficial===\n" + unofficialLinks(others))
	return b.String()
}

type producerValues struct {
	Category      string
	Labels        string
	Affiliations  string
	ExternalLinks string
	Description   string
	Aliases       string
	Songs         []string
	Albums        []string
	Categories    string
}

func (pr *Producer) Render() (string, error) {
	if err := pr.renderable(); err != nil {
		return "", err
	}
	p := pr.p

	markupOf := func(d model.DiscogItem, _ int) string { return d.Markup() }
	return expand("producer.tmpl", producerValues{
		Category:      p.ProdCategory,
		Labels:        p.Label,
		Affiliations:  p.Affiliations,
		ExternalLinks: producerLinksSection(p.extLinks),
		Description:   p.Description,
		Aliases:       p.ProdAliases,
		Songs:         lo.Map(p.songs, markupOf),
		Albums:        lo.Map(p.albums, markupOf),
		Categories:    categories.Markup(categories.Producer(p.CategoriesInput())),
	})
}
