package model

import (
	"regexp"
	"strings"
)

// TranslatorLicense ties translator aliases to the page describing terms of
// reuse. Only the first alias triggers the licence macro.
type TranslatorLicense struct {
	IDs     []string
	License string
}

var TranslatorLicenses = []TranslatorLicense{
	{IDs: []string{"aWhimsicalStar☆"}, License: "https://awhimsicalstar.dreamwidth.org"},
	{IDs: []string{"Azayaka"}, License: "https://echoesofblue.tumblr.com/terms|her website"},
	{IDs: []string{"a bunny's translations"}, License: "http://bunnyword.tumblr.com/about|her tumblr"},
	{IDs: []string{"BambooXZX"}, License: "https://bambooxzx.wordpress.com/about/"},
	{IDs: []string{"Bluepenguin", "EJ Translations"}, License: "https://ejtranslations.wordpress.com/"},
	{IDs: []string{"CoolMikeHatsune22"}, License: "https://coolmikehatsune22.wordpress.com/about-me/"},
	{IDs: []string{"Kazabana"}, License: "https://kazabana.wordpress.com/about/"},
	{IDs: []string{"ElectricRaichu", "Len's Lyrics", "Raichu"}, License: "https://vocaloidlyrics.fandom.com/wiki/Talk:ElectricRaichu/Translator_Licence|his website"},
	{IDs: []string{"Magenetra", "Kagamine_Neko", "aquariantwin", "Mellifera_x3"}, License: "https://magenetratranslations.tumblr.com/Terms|their tumblr"},
	{IDs: []string{"Matchakame"}, License: "http://matchakame.tumblr.com/about|her tumblr"},
	{IDs: []string{"PeanutSub"}, License: "https://peanut-sub.tumblr.com/about|their blog"},
	{IDs: []string{"poppochan28"}, License: "https://poppochan.dreamwidth.org/438.html|their blog"},
	{IDs: []string{"Pricecheck Translations"}, License: "http://pricechecktranslations.tumblr.com/about|her tumblr"},
	{IDs: []string{"Releska"}, License: "https://releska.com/|his blog"},
	{IDs: []string{"Tackmyn Y."}, License: "https://tackmyn.livedoor.blog/about_me.html|his blog"},
	{IDs: []string{"TsunaguSubs"}, License: "https://tsunagusubs.github.io/#faq|her website"},
	{IDs: []string{"shiyuki332", "Shiyuki", "Shiyuki332"}, License: "https://twitter.com/shiyuki332/status/1256815663663837184|their twitter"},
	{IDs: []string{"Yumemiru Sekai"}, License: "https://yumemirusekai.wordpress.com/faq/|their blog"},
}

// FindTranslatorLicense looks translator up by primary alias.
func FindTranslatorLicense(translator string) (TranslatorLicense, bool) {
	for _, l := range TranslatorLicenses {
		if len(l.IDs) > 0 && l.IDs[0] == translator {
			return l, true
		}
	}
	return TranslatorLicense{}, false
}

// Media services which keep view counts, with abbreviations used in the
// song infobox.
var viewCountServices = map[string]string{
	"Niconico":   "NN",
	"YouTube":    "YT",
	"bilibili":   "BB",
	"piapro":     "PP",
	"SoundCloud": "SC",
	"Vimeo":      "VM",
}

// ViewCountAbbreviation returns infobox abbreviation for a play link site.
func ViewCountAbbreviation(site string) (string, bool) {
	abbr, ok := viewCountServices[site]
	return abbr, ok
}

// RecognizedLink is a known site with the URL pattern identifying it.
type RecognizedLink struct {
	Site    string
	Pattern *regexp.Regexp
	IsMedia bool
}

func recognized(site, pattern string, media bool) RecognizedLink {
	return RecognizedLink{Site: site, Pattern: regexp.MustCompile(pattern), IsMedia: media}
}

// PlayServices are the sites accepted in the play links grid.
var PlayServices = []RecognizedLink{
	recognized("Niconico", `^https?://www\.nicovideo\.jp`, true),
	recognized("YouTube", `^https?://(?:(?:|www\.)youtube\.com/(?:watch\?v=|shorts)|youtu\.be)`, true),
	recognized("bilibili", `^https?://www\.bilibili\.com`, true),
	recognized("piapro", `^https?://piapro\.jp`, true),
	recognized("SoundCloud", `^https?://soundcloud\.com`, true),
	recognized("Bandcamp", `^https?://[^.]*\.?bandcamp\.com`, true),
	recognized("Vimeo", `^https?://vimeo\.com`, true),
	recognized("Netease Music", `^https?://music\.163\.com`, true),
	recognized("Spotify", `^https?://[^.]+\.spotify\.com`, true),
	recognized("5Sing", `^https?://5sing\.kugou\.com`, true),
}

// RecognizedLinks extends PlayServices with other well known sites.
var RecognizedLinks = append(append([]RecognizedLink{}, PlayServices...),
	recognized("YouTube Channel", `^https?://www\.youtube\.com/user/.*`, true),
	recognized("YouTube Channel", `^https?://www\.youtube\.com/channel/.*`, true),
	recognized("bilibili Space", `^https?://space\.bilibili\.com/.*`, true),
	recognized("VocaDB", `^https?://vocadb\.net/.*`, false),
	recognized("TuneCore Japan", `^https?://www\.tunecore\.co\.jp/.*`, true),
	recognized("VOCALOID Lyrics Wiki", `^https?://vocaloidlyrics\.fandom\.com/*`, false),
	recognized("VOCALOID Wiki", `^https?://vocaloid\.fandom\.com/.*`, false),
	recognized("Hatsune Miku Wiki", `^https?://www5\.atwiki\.jp/hmiku/.*`, false),
	recognized("Hatsune Miku Wiki", `^https?://w\.atwiki\.jp/hmiku/.*`, false),
	recognized("Anime Lyrics", `^https?://www\.animelyrics\.com/.*`, false),
	recognized("Niconico Pedia", `^https?://dic\.nicovideo\.jp/.*`, false),
	recognized("Blomaga", `^https?://ch\.nicovideo\.jp/.*`, false),
	recognized("Niconico Commons", `^https?://commons\.nicovideo\.jp/.*`, false),
	recognized("pixiv", `^https?://www\.pixiv\.net/.*`, true),
	recognized("UtaiteDB", `^https?://utaitedb\.net/.*`, false),
	recognized("Project DIVA Wiki", `^https?://project-diva\.fandom\.com/.*`, false),
	recognized("Project DIVA Wiki", `^https?://projectdiva\.wiki/.*`, false),
	recognized("The Evillious Chronicles Wiki", `^https?://theevilliouschronicles\.fandom\.com/.*`, false),
	recognized("Vocaloid English & Romaji Lyrics @wiki", `^https?://w\.atwiki\.jp/vocaloidenglishlyric/.*`, false),
	recognized("ChordWiki", `^https?://ja\.chordwiki\.org/.*`, false),
	recognized("Pixiv Encyclopedia", `^https?://dic\.pixiv\.net/.*`, false),
	recognized("Pixiv Encyclopedia (English)", `^https?://en-dic\.pixiv\.net/.*`, false),
	recognized("J-Lyrics.net", `^https?://j-lyric\.net/.*`, false),
	recognized("KARENT", `^https?://karent\.jp/.*`, true),
	recognized("Wikipedia", `^https?://en\.wikipedia\.org/.*`, false),
	recognized("Wikipedia (Japanese)", `^https?://ja\.wikipedia\.org/.*`, false),
	recognized("X (Twitter)", `^https?://(twitter|x)\.com/.*`, false),
	recognized("UtaTen", `^https?://utaten\.com/.*`, false),
	recognized("KKBOX", `^https?://www\.kkbox\.com/.*`, false),
	recognized("Lyrical Nonsense", `^https?://www\.lyrical-nonsense\.com/.*`, false),
	recognized("KashiGET", `^https?://www\.kget\.jp/.*`, false),
	recognized("Dropbox", `^https?://www\.dropbox\.com/.*`, false),
	recognized("Google Drive", `^https?://drive\.google\.com/.*`, false),
	recognized("Google Docs", `^https?://docs\.google\.com/.*`, false),
	recognized("DeviantArt", `^https?://[^.]+\.deviantart\.com/.*`, false),
	recognized("DeviantArt", `^https?://fav\.me/.*`, false),
	recognized("Len's Lyrics", `^https?://lenslyrics\.ml/.*`, false),
	recognized("Baidu", `^https?://pan\.baidu\.com/.*`, false),
	recognized("BOOTH", `^https?://[^.]+\.booth\.pm/.*`, true),
	recognized("Pixiv Fanbox", `^https?://www\.pixiv\.net/fanbox/.*`, true),
)

// RecognizeLink returns the first known site matching url.
func RecognizeLink(url string) (RecognizedLink, bool) {
	for _, l := range RecognizedLinks {
		if l.Pattern.MatchString(url) {
			return l, true
		}
	}
	return RecognizedLink{}, false
}

// IsMediaURL reports whether url points to a known media (music, video or
// art) site.
func IsMediaURL(url string) bool {
	for _, l := range RecognizedLinks {
		if l.IsMedia && l.Pattern.MatchString(url) {
			return true
		}
	}
	return false
}

// ProducerRoles are the role checkboxes of the producer form, in category
// order.
type ProducerRoles struct {
	Composer        bool `yaml:"composer" json:"composer"`
	Lyricist        bool `yaml:"lyricist" json:"lyricist"`
	Tuner           bool `yaml:"tuner" json:"tuner"`
	Illustrator     bool `yaml:"illustrator" json:"illustrator"`
	Animator        bool `yaml:"animator" json:"animator"`
	Arranger        bool `yaml:"arranger" json:"arranger"`
	Instrumentalist bool `yaml:"instrumentalist" json:"instrumentalist"`
	Mixer           bool `yaml:"mixer" json:"mixer"`
	Masterer        bool `yaml:"masterer" json:"masterer"`
}

// Checked returns names of selected roles in fixed order.
func (r ProducerRoles) Checked() []string {
	var res []string
	for _, role := range []struct {
		name string
		on   bool
	}{
		{"composer", r.Composer},
		{"lyricist", r.Lyricist},
		{"tuner", r.Tuner},
		{"illustrator", r.Illustrator},
		{"animator", r.Animator},
		{"arranger", r.Arranger},
		{"instrumentalist", r.Instrumentalist},
		{"mixer", r.Mixer},
		{"masterer", r.Masterer},
	} {
		if role.on {
			res = append(res, role.name)
		}
	}
	return res
}

// None reports whether no role is selected.
func (r ProducerRoles) None() bool {
	return len(r.Checked()) == 0
}

// HasNonPrintable reports whether s contains anything outside printable
// ASCII, such titles need an explicit sort key.
func HasNonPrintable(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r < ' ' || r > '~' }) >= 0
}
