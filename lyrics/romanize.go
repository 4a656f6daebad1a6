package lyrics

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	detoneBase = []string{
		"ā", "a", "á", "a", "ǎ", "a", "à", "a",
		"Ā", "A", "Á", "A", "Ǎ", "A", "À", "A",
		"ī", "i", "í", "i", "ǐ", "i", "ì", "i",
		"Ī", "I", "Í", "I", "Ǐ", "I", "Ì", "I",
		"ū", "u", "ú", "u", "ǔ", "u", "ù", "u",
		"Ū", "U", "Ú", "U", "Ǔ", "U", "Ù", "U",
		"ē", "e", "é", "e", "ě", "e", "è", "e",
		"Ē", "E", "É", "E", "Ě", "E", "È", "E",
		"ō", "o", "ó", "o", "ǒ", "o", "ò", "o",
		"Ō", "O", "Ó", "O", "Ǒ", "O", "Ò", "O",
	}
	detoneUmlaut = strings.NewReplacer(append(detoneBase,
		"ǖ", "ü", "ǘ", "ü", "ǚ", "ü", "ǜ", "ü",
		"Ǖ", "Ü", "Ǘ", "Ü", "Ǚ", "Ü", "Ǜ", "Ü",
	)...)
	detoneV = strings.NewReplacer(append(detoneBase,
		"ǖ", "v", "ǘ", "v", "ǚ", "v", "ǜ", "v",
		"Ǖ", "V", "Ǘ", "V", "Ǚ", "V", "Ǜ", "V",
	)...)
)

// DetonePinyin strips tone marks from pinyin. Toned ü is kept as ü when
// keepUmlaut is set, otherwise it becomes v.
func DetonePinyin(s string, keepUmlaut bool) string {
	if keepUmlaut {
		return detoneUmlaut.Replace(s)
	}
	return detoneV.Replace(s)
}

// Row helpers below return modified copies and only touch the romanized
// column.

// DetonePinyinRows strips tone marks from romanized column keeping ü.
func DetonePinyinRows(rows [][4]string) [][4]string {
	return mapRomanized(rows, func(s string) string {
		return DetonePinyin(s, true)
	})
}

var reSentenceStart = regexp.MustCompile(`\.\s*(\w)`)

// DecapitalizeRomanization lowercases the first letter of the romanized
// column and of every sentence in it.
func DecapitalizeRomanization(rows [][4]string) [][4]string {
	return mapRomanized(rows, func(s string) string {
		if r, size := utf8.DecodeRuneInString(s); size > 0 && isWord(r) {
			s = string(unicode.ToLower(r)) + s[size:]
		}
		return reSentenceStart.ReplaceAllStringFunc(s, func(m string) string {
			return ". " + strings.ToLower(m[len(m)-1:])
		})
	})
}

var (
	reHepburnParticle = regexp.MustCompile(`(?i)\b(?:wo|he)\b`)
	reDzu             = regexp.MustCompile(`(?i)dzu`)
)

// StandardizeHepburn rewrites particles "wo" and "he" as "o" and "e" and
// "dzu" as "zu".
func StandardizeHepburn(rows [][4]string) [][4]string {
	return mapRomanized(rows, func(s string) string {
		s = reHepburnParticle.ReplaceAllStringFunc(s, func(m string) string {
			// drop the first letter, keep capitalization of the word
			rest := m[1:]
			if unicode.IsUpper(rune(m[0])) {
				return strings.ToUpper(rest)
			}
			return strings.ToLower(rest)
		})
		return reDzu.ReplaceAllString(s, "zu")
	})
}

func mapRomanized(rows [][4]string, fn func(string) string) [][4]string {
	res := make([][4]string, len(rows))
	for i, r := range rows {
		r[2] = fn(strings.TrimSpace(r[2]))
		res[i] = r
	}
	return res
}

func isWord(r rune) bool {
	return r == '_' || r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r))
}
