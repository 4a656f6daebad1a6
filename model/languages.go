package model

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is an entry of the fixed language list. Identifiers used by forms
// are indexes into Languages.
type Language struct {
	Name            string
	Transliteration string
	Code            string
}

// Languages is ordered, do not reorder: forms refer to languages by index.
var Languages = []Language{
	{Name: "English", Code: "en"},
	{Name: "Japanese", Transliteration: "Romaji", Code: "ja"},
	{Name: "Mandarin", Transliteration: "Pinyin", Code: "zh"},
	{Name: "Korean", Transliteration: "Romaja", Code: "ko"},
	{Name: "Spanish", Code: "es"},
	{Name: "Acehnese"},
	{Name: "Catalan"},
	{Name: "Cantonese", Transliteration: "Jyutping", Code: "yue"},
	{Name: "Dutch"},
	{Name: "Esperanto"},
	{Name: "Filipino", Code: "tg"},
	{Name: "Finnish"},
	{Name: "French", Code: "fr"},
	{Name: "German", Code: "de"},
	{Name: "Greek", Transliteration: "Romanization"},
	{Name: "Indonesian", Code: "id"},
	{Name: "Irish"},
	{Name: "Italian"},
	{Name: "Latin"},
	{Name: "Malay"},
	{Name: "Polish"},
	{Name: "Portuguese", Code: "pt"},
	{Name: "Romanian"},
	{Name: "Russian", Transliteration: "Romanization", Code: "ru"},
	{Name: "Sundanese"},
	{Name: "Swedish"},
	{Name: "Thai", Transliteration: "Romanization", Code: "th"},
	{Name: "Turkish"},
	{Name: "Vietnamese"},
	{Name: "Welsh"},
}

// LanguageByID returns language for the form identifier.
func LanguageByID(id int) (Language, bool) {
	if id < 0 || id >= len(Languages) {
		return Language{}, false
	}
	return Languages[id], true
}

// LanguageName returns language name or empty string for unknown identifier.
func LanguageName(id int) string {
	l, _ := LanguageByID(id)
	return l.Name
}

// LanguageIDByName returns identifier of the language with given name
// (case-insensitive) or -1.
func LanguageIDByName(name string) int {
	for i, l := range Languages {
		if strings.EqualFold(l.Name, strings.TrimSpace(name)) {
			return i
		}
	}
	return -1
}

// LanguageIDByCode maps a culture code as used by the metadata database to
// a language identifier, or -1. Exact codes win, otherwise base languages
// are compared ("ja-JP" is Japanese).
func LanguageIDByCode(code string) int {
	code = strings.TrimSpace(code)
	if code == "" {
		return -1
	}
	for i, l := range Languages {
		if l.Code != "" && l.Code == code {
			return i
		}
	}
	tag, err := language.Parse(code)
	if err != nil {
		return -1
	}
	base, _ := tag.Base()
	for i, l := range Languages {
		if l.Code == "" {
			continue
		}
		if lb, _ := language.Make(l.Code).Base(); lb == base {
			return i
		}
	}
	return -1
}

// LanguageOptions describes which lyrics columns a song needs.
type LanguageOptions struct {
	NeedsRomanization bool
	NeedsEnglish      bool
	IsChinese         bool
	// Headers are the labels of colour, original, romanized and English
	// columns. Romanized label is empty when romanization is not needed.
	Headers [4]string
}

// ContentHeaders returns labels of the three text columns.
func (o LanguageOptions) ContentHeaders() [3]string {
	return [3]string{o.Headers[1], o.Headers[2], o.Headers[3]}
}

// ParseLanguageOptions derives lyrics columns from selected languages. When
// nothing is selected every column is required.
func ParseLanguageOptions(ids []int) LanguageOptions {
	opts := LanguageOptions{
		Headers: [4]string{"Colour", "Original", "Romanized", "English"},
	}
	if len(ids) == 0 {
		opts.NeedsRomanization = true
		opts.NeedsEnglish = true
		return opts
	}

	var original, romanized []string
	for _, id := range ids {
		l, _ := LanguageByID(id)
		if l.Name != "English" {
			opts.NeedsEnglish = true
		}
		switch l.Name {
		case "Mandarin":
			opts.IsChinese = true
			original = append(original, "Chinese")
		case "Cantonese":
			opts.IsChinese = true
			original = append(original, l.Name)
		default:
			original = append(original, l.Name)
		}
		if l.Transliteration != "" {
			opts.NeedsRomanization = true
			romanized = append(romanized, l.Transliteration)
		}
	}
	opts.Headers[1] = strings.Join(original, "/")
	opts.Headers[2] = ""
	if opts.NeedsRomanization {
		opts.Headers[2] = strings.Join(romanized, "/")
	}
	return opts
}
