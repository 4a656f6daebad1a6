// Package categories infers wiki categories from page form data.
//
// Inference is deterministic: the same input always yields the same list in
// the same order.
package categories

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"vlwgen/markup"
	"vlwgen/model"
)

// SongInput is the subset of the song form used for inference.
type SongInput struct {
	LanguageIDs  []int
	Engines      []string
	Singers      string
	Producers    string
	IsAlbumOnly  bool
	NeedsEnglish bool
	Lyrics       []model.LyricLine
}

var reSingerLines = regexp.MustCompile(`\n|<br\s*/?>`)

// Song infers categories of a song page.
func Song(in SongInput) []string {
	var res []string

	for _, id := range in.LanguageIDs {
		res = append(res, model.LanguageName(id)+" songs")
	}
	for _, engine := range in.Engines {
		res = append(res, engine+" original songs")
	}

	singers, mainLinks := linkedSingers(in.Singers)
	for _, s := range singers {
		res = append(res, "Songs featuring "+s)
	}
	switch n := mainLinks; {
	case n == 2:
		res = append(res, "Duet songs")
	case n == 3:
		res = append(res, "Trio songs")
	case n > 3:
		res = append(res, "Group rendition songs")
	}

	res = append(res, producerTags(in.Producers)...)

	if in.IsAlbumOnly {
		res = append(res, "Album Only songs")
	}
	if in.NeedsEnglish && lo.EveryBy(in.Lyrics, func(l model.LyricLine) bool { return strings.TrimSpace(l.English) == "" }) {
		res = append(res, "Pages in need of English translation")
	}
	return res
}

// linkedSingers returns distinct linked singers in order of appearance and
// the number of links on lines not marked as small (supporting vocals).
// Every link counts, so two voicebanks of the same singer make a duet.
func linkedSingers(text string) (all []string, main int) {
	for _, line := range reSingerLines.Split(text, -1) {
		small := markup.IsSmallLine(line)
		for _, l := range markup.Links(line) {
			name := strings.TrimSpace(l.Target)
			if name == "" {
				continue
			}
			all = append(all, name)
			if !small {
				main++
			}
		}
	}
	return lo.Uniq(all), main
}

// producerTags derives producer list categories from the circle credit and
// every "[[Name]] (roles)" credit.
func producerTags(producers string) []string {
	var res []string
	if circle, ok := markup.FirstCircle(producers); ok {
		if tag, ok := markup.ProducerCategory(circle.Target); ok {
			res = append(res, tag)
		}
	}
	for _, credit := range markup.RoleCredits(producers) {
		tag, ok := markup.ProducerCategory(credit.Target)
		if !ok {
			continue
		}
		suffixes := roleSuffixes(credit.Roles)
		if lo.Contains(suffixes, "") {
			res = append(res, tag)
		}
		for _, s := range lo.Without(suffixes, "") {
			res = append(res, tag+s)
		}
	}
	return lo.Uniq(res)
}

// roleSuffixes maps credited roles to producer subcategory suffixes. An
// empty suffix stands for the producer category itself. Composing overrides
// everything else.
func roleSuffixes(roles []string) []string {
	var res []string
	for _, role := range roles {
		switch role {
		case "music", "compose", "composition":
			return []string{""}
		case "lyrics":
			res = append(res, "/Lyrics")
		case "tuning":
			res = append(res, "/Tuning")
		case "arrange", "arrangement":
			res = append(res, "/Arrangement")
		case "illust", "illustration", "pv", "movie", "video", "animation":
			res = append(res, "/Visuals")
		case "mix", "master", "mastering", "instruments", "other":
			res = append(res, "/Other")
		default:
			res = append(res, "")
		}
	}
	return lo.Uniq(res)
}

// AlbumInput is the subset of the album form used for inference.
type AlbumInput struct {
	Description string
	Engines     []string
	Tracks      []model.TrackItem
}

// Album infers categories of an album page. Producers linked in the
// description come first, producers found only in the tracklist follow.
func Album(in AlbumInput) []string {
	var res []string

	described := lo.Uniq(markup.ExtractLinkedEntities(in.Description))
	var listed, singers []string
	for _, t := range in.Tracks {
		listed = append(listed, markup.ExtractLinkedEntities(t.ProducerCredit)...)
		singers = append(singers, markup.ExtractLinkedEntities(t.SingerCredit)...)
	}
	listed = lo.Without(lo.Uniq(listed), described...)

	for _, engine := range in.Engines {
		res = append(res, "Albums featuring "+engine)
	}
	for _, s := range lo.Uniq(singers) {
		res = append(res, "Albums featuring "+s)
	}
	for _, p := range append(described, listed...) {
		res = append(res, p+" songs list/Albums")
	}
	return res
}

// ProducerInput is the subset of the producer form used for inference.
type ProducerInput struct {
	Roles       model.ProducerRoles
	LanguageIDs []int
	Engines     []string
}

// Producer infers categories of a producer page.
func Producer(in ProducerInput) []string {
	res := []string{"Producers"}
	title := cases.Title(language.English)
	for _, role := range in.Roles.Checked() {
		res = append(res, title.String(role)+"s")
	}
	for _, id := range in.LanguageIDs {
		lang := model.LanguageName(id)
		if lang == "Mandarin" {
			lang = "Chinese"
		}
		res = append(res, lang+" original producers")
	}
	for _, engine := range in.Engines {
		res = append(res, "Producers using "+engine)
	}
	return res
}

// Markup renders categories as category links, one per line.
func Markup(cats []string) string {
	return strings.Join(lo.Map(cats, func(c string, _ int) string { return "[[Category:" + c + "]]" }), "\n")
}

var reCategoryLines = regexp.MustCompile(`[\r\s]*\n+[\r\s]*`)

// Split turns the categories text area into a list, dropping blank lines.
func Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return lo.Filter(reCategoryLines.Split(text, -1), func(c string, _ int) bool { return c != "" })
}
