// Package vocadb maps VocaDB entries onto page form snapshots.
package vocadb

import (
	"fmt"
	"regexp"
)

// Artist categories as reported in artist credits.
const (
	CategoryProducer = "Producer"
	CategoryVocalist = "Vocalist"
	CategoryLabel    = "Label"
	CategoryCircle   = "Circle"
)

// ArtistTypeLabel marks linked artists which are record labels.
const ArtistTypeLabel = "Label"

// Synth engine artist types, singers of these types are looked up in synth
// database.
var synthArtistTypes = map[string]bool{
	"Vocaloid":              true,
	"UTAU":                  true,
	"CeVIO":                 true,
	"SynthesizerV":          true,
	"ACEVirtualSinger":      true,
	"NEUTRINO":              true,
	"VoiSona":               true,
	"NewType":               true,
	"Voiceroid":             true,
	"OtherVoiceSynthesizer": true,
}

// PV services.
const (
	ServiceNiconico   = "NicoNicoDouga"
	ServiceYoutube    = "Youtube"
	ServiceSoundCloud = "SoundCloud"
	ServiceVimeo      = "Vimeo"
	ServicePiapro     = "Piapro"
	ServiceBilibili   = "Bilibili"
	ServiceBandcamp   = "Bandcamp"
)

// PvTypeOriginal marks original uploads, everything else is a reprint.
const PvTypeOriginal = "Original"

// Web link categories counted as official.
const (
	LinkOfficial   = "Official"
	LinkCommercial = "Commercial"
)

// Name languages.
const (
	NameRomaji  = "Romaji"
	NameEnglish = "English"
)

// DiscCompilation is the album disc type of compilations.
const DiscCompilation = "Compilation"

// ArtistEntry is a single entry of the linked artist.
type ArtistEntry struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	ArtistType string `json:"artistType"`
}

// ArtistCredit is an artist credited on a song or album.
type ArtistCredit struct {
	Artist         *ArtistEntry `json:"artist"`
	Categories     string       `json:"categories"`
	EffectiveRoles string       `json:"effectiveRoles"`
	Roles          string       `json:"roles"`
	IsSupport      bool         `json:"isSupport"`
	Name           string       `json:"name"`
}

// PV is a media upload of the entry.
type PV struct {
	Service  string `json:"service"`
	PvType   string `json:"pvType"`
	PvID     string `json:"pvId"`
	URL      string `json:"url"`
	Disabled bool   `json:"disabled"`
	ThumbURL string `json:"thumbUrl"`
}

// WebLink is an external link of the entry.
type WebLink struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Disabled    bool   `json:"disabled"`
}

// LocalizedName is an entry name in one of the name languages.
type LocalizedName struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

// Picture holds entry image locations.
type Picture struct {
	URLOriginal string `json:"urlOriginal"`
}

// Song is the subset of the song entry used for prefill.
type Song struct {
	ID           int             `json:"id"`
	DefaultName  string          `json:"defaultName"`
	Names        []LocalizedName `json:"names"`
	PublishDate  string          `json:"publishDate"`
	CultureCodes []string        `json:"cultureCodes"`
	Artists      []ArtistCredit  `json:"artists"`
	PVs          []PV            `json:"pvs"`
	WebLinks     []WebLink       `json:"webLinks"`
}

// Track is a single album track.
type Track struct {
	DiscNumber  int `json:"discNumber"`
	TrackNumber int `json:"trackNumber"`
	Song        struct {
		DefaultName string         `json:"defaultName"`
		Artists     []ArtistCredit `json:"artists"`
	} `json:"song"`
}

// Album is the subset of the album entry used for prefill.
type Album struct {
	ID          int             `json:"id"`
	DefaultName string          `json:"defaultName"`
	Names       []LocalizedName `json:"names"`
	DiscType    string          `json:"discType"`
	MainPicture Picture         `json:"mainPicture"`
	Artists     []ArtistCredit  `json:"artists"`
	Tracks      []Track         `json:"tracks"`
	PVs         []PV            `json:"pvs"`
	WebLinks    []WebLink       `json:"webLinks"`
}

// ArtistLink is an artist related to the producer (group, label).
type ArtistLink struct {
	Artist   ArtistEntry `json:"artist"`
	LinkType string      `json:"linkType"`
}

// Artist is the subset of the artist entry used for prefill.
type Artist struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	MainPicture Picture      `json:"mainPicture"`
	ArtistLinks []ArtistLink `json:"artistLinks"`
	WebLinks    []WebLink    `json:"webLinks"`
}

// Kind of the entry page.
type Kind string

const (
	KindSong   Kind = "S"
	KindAlbum  Kind = "Al"
	KindArtist Kind = "Ar"
)

var rePageURL = regexp.MustCompile(`^https?://vocadb\.net/(S|Al|Ar)/(\d+)`)

// PageID extracts entry id from the entry page URL.
func PageID(url string, kind Kind) (string, error) {
	m := rePageURL.FindStringSubmatch(url)
	if m == nil || Kind(m[1]) != kind {
		return "", fmt.Errorf("VocaDB page ID is empty or invalid: '%s'", url)
	}
	return m[2], nil
}

// PageURL returns entry page URL.
func PageURL(kind Kind, id string) string {
	return "https://vocadb.net/" + string(kind) + "/" + id
}

func localizedName(names []LocalizedName, lang string) string {
	for _, n := range names {
		if n.Language == lang {
			return n.Value
		}
	}
	return ""
}
