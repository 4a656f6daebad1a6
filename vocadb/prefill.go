package vocadb

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"vlwgen/model"
	"vlwgen/page"
	"vlwgen/synths"
)

var serviceNames = map[string]string{
	ServiceYoutube:    "YouTube",
	ServiceNiconico:   "Niconico",
	ServiceBilibili:   "bilibili",
	ServicePiapro:     "piapro",
	ServiceSoundCloud: "SoundCloud",
	ServiceBandcamp:   "Bandcamp",
	ServiceVimeo:      "Vimeo",
}

var roleNames = map[string]string{
	"Default":          "music, lyrics",
	"Composer":         "music",
	"Lyricist":         "lyrics",
	"Arranger":         "arrangement",
	"Mixer":            "mix",
	"Mastering":        "mastering",
	"VoiceManipulator": "tuning",
	"Instrumentalist":  "instruments",
	"Illustrator":      "illustration",
	"Animator":         "PV",
	"Encoder":          "encoding",
	"Vocalist":         "vocalist",
	"Chorus":           "chorus",
	"Other":            "other",
	"Distributor":      "publisher",
	"Publisher":        "publisher",
}

var rolePriority = []string{
	"music", "lyrics", "arrangement", "mix", "mastering", "tuning",
	"instruments", "illustration", "PV", "encoding",
	"vocalist", "chorus", "publisher", "other",
}

var (
	rePublishDate = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}).*$`)
	reVocaWiki    = regexp.MustCompile(`^https?://vocaloid\.fandom\.com/wiki/([^?]+)`)
)

// Mapper fills page forms from VocaDB entries. Singers are resolved through
// optional synth lookup.
type Mapper struct {
	synths synths.Lookup
	log    *zap.Logger
}

// NewMapper creates mapper, lookup may be nil.
func NewMapper(lookup synths.Lookup, log *zap.Logger) *Mapper {
	if log == nil {
		log = zap.NewNop()
	}
	return &Mapper{synths: lookup, log: log.Named("prefill")}
}

// commaList joins names as "a, b and c".
func commaList(list []string) string {
	if len(list) <= 1 {
		return strings.Join(list, "")
	}
	return strings.Join(list[:len(list)-1], ", ") + " and " + list[len(list)-1]
}

// roleCredit converts comma separated artist roles into ordered wiki role
// names.
func roleCredit(roles string) string {
	var names []string
	for r := range strings.SplitSeq(roles, ", ") {
		name, ok := roleNames[r]
		if !ok {
			name = "other"
		}
		names = append(names, name)
	}
	names = lo.Uniq(names)
	slices.SortStableFunc(names, func(a, b string) int {
		return slices.Index(rolePriority, a) - slices.Index(rolePriority, b)
	})
	return strings.Join(names, ", ")
}

func (m *Mapper) findSynth(id int) (synths.Synth, bool) {
	if m.synths == nil {
		return synths.Synth{}, false
	}
	s, ok := m.synths.FindSynthByExternalID(id)
	if !ok {
		m.log.Debug("Synth not found", zap.Int("id", id))
	}
	return s, ok
}

func pvURL(pv PV) string {
	if pv.Service == ServiceYoutube {
		return "https://www.youtube.com/watch?v=" + pv.PvID
	}
	return pv.URL
}

func linkDescription(l WebLink) string {
	if l.Description == "MikuWiki" {
		return "Hatsune Miku Wiki"
	}
	return l.Description
}

func isOfficial(l WebLink) bool {
	return l.Category == LinkOfficial || l.Category == LinkCommercial
}

// Song overwrites fetched fields of the song form.
func (m *Mapper) Song(form *page.SongForm, rec Song) {
	var (
		mainSingers, minorSingers []string
		engines                   []string
		circles                   []string
		producers                 []string
		playLinks                 [][]any
		extLinks                  = [][]any{{PageURL(KindSong, strconv.Itoa(rec.ID)), "VocaDB", false}}
	)

	for _, a := range rec.Artists {
		name := a.Name
		switch a.Categories {
		case CategoryVocalist:
			if a.Artist != nil && synthArtistTypes[a.Artist.ArtistType] {
				if s, ok := m.findSynth(a.Artist.ID); ok {
					name = s.Markup()
					engines = append(engines, s.Engine)
				}
			}
			if a.IsSupport {
				minorSingers = append(minorSingers, name)
			} else {
				mainSingers = append(mainSingers, name)
			}
		case CategoryCircle, CategoryLabel:
			circles = append(circles, name)
		default:
			producers = append(producers, name+" ("+roleCredit(a.Roles)+")")
		}
	}

	var prod strings.Builder
	if len(circles) > 0 {
		prod.WriteString("'''" + strings.Join(circles, ", ") + "''':\n")
	}
	prod.WriteString(strings.Join(producers, "\n"))

	singers := commaList(mainSingers)
	if len(minorSingers) > 0 {
		singers += "\n<small>" + commaList(minorSingers) + "</small>"
	}

	for _, pv := range rec.PVs {
		reprint := pv.PvType != PvTypeOriginal
		site, known := serviceNames[pv.Service]
		if !known {
			extLinks = append(extLinks, []any{pvURL(pv), pv.Service, !reprint})
			continue
		}
		playLinks = append(playLinks, []any{site, pvURL(pv), reprint, false, pv.Disabled, ""})
	}
	for _, l := range rec.WebLinks {
		extLinks = append(extLinks, []any{l.URL, linkDescription(l), isOfficial(l)})
	}

	form.LanguageIDs = lo.Filter(
		lo.Map(rec.CultureCodes, func(c string, _ int) int { return model.LanguageIDByCode(c) }),
		func(id int, _ int) bool { return id > -1 })
	form.OrigTitle = rec.DefaultName
	form.RomTitle = localizedName(rec.Names, NameRomaji)
	form.EngTitle = localizedName(rec.Names, NameEnglish)
	form.UploadDate = rePublishDate.ReplaceAllString(rec.PublishDate, "$1")
	form.Singers = singers
	form.Engines = lo.Uniq(engines)
	form.Producers = prod.String()
	form.PlayLinks = playLinks
	form.ExtLinks = extLinks

	m.log.Debug("Song prefilled", zap.Int("id", rec.ID), zap.Int("playLinks", len(playLinks)), zap.Int("extLinks", len(extLinks)))
}

func albumDescription(discType string, circles, mainProducers []string) string {
	switch {
	case discType == DiscCompilation:
		if len(circles) == 0 {
			return "a compilation album"
		}
		return "a compilation album, by the circle " + commaList(circles)
	case len(mainProducers) > 3:
		if len(circles) == 0 {
			return "an album by several producers"
		}
		return "an album by " + commaList(circles)
	}
	res := "an album by " + commaList(mainProducers)
	if len(circles) > 0 {
		res += ", under the circle " + commaList(circles)
	}
	return res
}

// Album overwrites fetched fields of the album form.
func (m *Mapper) Album(form *page.AlbumForm, rec Album) {
	var circles, mainProducers, labels, engines []string
	for _, a := range rec.Artists {
		switch a.Categories {
		case CategoryLabel:
			labels = append(labels, a.Name)
		case CategoryCircle:
			circles = append(circles, a.Name)
		case CategoryProducer:
			if !a.IsSupport {
				mainProducers = append(mainProducers, a.Name)
			}
		}
	}

	// repeated singers are linked only once, then referred to by name
	linked := make(map[int]string)
	tracklist := make([][]any, 0, len(rec.Tracks))
	for _, t := range rec.Tracks {
		var songProducers, songSingers []string
		for _, a := range t.Song.Artists {
			if a.IsSupport {
				continue
			}
			if a.Categories != CategoryVocalist {
				roles := strings.Split(a.EffectiveRoles, ", ")
				if slices.Contains(roles, "Default") || slices.Contains(roles, "Composer") {
					songProducers = append(songProducers, a.Name)
				}
				continue
			}
			if a.Artist == nil {
				songSingers = append(songSingers, a.Name)
				continue
			}
			if base, ok := linked[a.Artist.ID]; ok {
				songSingers = append(songSingers, base)
				continue
			}
			s, ok := m.findSynth(a.Artist.ID)
			if !ok {
				songSingers = append(songSingers, a.Artist.Name)
				continue
			}
			songSingers = append(songSingers, s.Markup())
			engines = append(engines, s.Engine)
			linked[a.Artist.ID] = s.BaseName
		}
		tracklist = append(tracklist, []any{
			t.DiscNumber, t.TrackNumber, t.Song.DefaultName,
			commaList(songProducers), commaList(songSingers),
		})
	}

	var (
		extLinks     [][]any
		vocaWikiPage string
	)
	for _, pv := range rec.PVs {
		desc := "Album crossfade"
		if site, ok := serviceNames[pv.Service]; ok {
			desc += " - " + site
		}
		extLinks = append(extLinks, []any{pvURL(pv), desc, true})
	}
	for _, l := range rec.WebLinks {
		if match := reVocaWiki.FindStringSubmatch(l.URL); match != nil {
			vocaWikiPage = match[1]
		}
		extLinks = append(extLinks, []any{l.URL, linkDescription(l), isOfficial(l)})
	}

	form.OrigTitle = rec.DefaultName
	form.RomTitle = localizedName(rec.Names, NameRomaji)
	form.Label = commaList(labels)
	form.Description = albumDescription(rec.DiscType, circles, mainProducers)
	form.Engines = lo.Uniq(engines)
	form.VDBAlbumID = strconv.Itoa(rec.ID)
	form.VocaWikiPage = vocaWikiPage
	form.Tracklist = tracklist
	form.ExtLinks = extLinks

	m.log.Debug("Album prefilled", zap.Int("id", rec.ID), zap.Int("tracks", len(tracklist)))
}

// Producer overwrites fetched fields of the producer form.
func (m *Mapper) Producer(form *page.ProducerForm, rec Artist) {
	var labels, affiliations []string
	for _, l := range rec.ArtistLinks {
		if l.Artist.ArtistType == ArtistTypeLabel {
			labels = append(labels, l.Artist.Name)
		} else {
			affiliations = append(affiliations, l.Artist.Name)
		}
	}

	extLinks := [][]any{{PageURL(KindArtist, strconv.Itoa(rec.ID)), "VocaDB", false, false, false}}
	for _, l := range rec.WebLinks {
		official := isOfficial(l)
		extLinks = append(extLinks, []any{
			l.URL, linkDescription(l), official, official && model.IsMediaURL(l.URL), l.Disabled,
		})
	}

	form.ProdCategory = rec.Name
	form.Affiliations = strings.Join(affiliations, "\n")
	form.Label = strings.Join(labels, "\n")
	form.Description = "'''" + rec.Name + "''' is a vocal synth producer."
	form.ExtLinks = extLinks

	m.log.Debug("Producer prefilled", zap.Int("id", rec.ID), zap.Int("extLinks", len(extLinks)))
}
