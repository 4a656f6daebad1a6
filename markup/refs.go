package markup

import (
	"regexp"
	"strings"
)

var (
	reRefTag        = regexp.MustCompile(`<ref(?:[^>]*)>`)
	reRefSelfClosed = regexp.MustCompile(`(?i)<ref\s*[^>]*/>`)
	reRefPaired     = regexp.MustCompile(`(?i)<ref\s*[^>]*>(.*)</ref>`)
	reBold          = regexp.MustCompile(`'{3}([^']*)'{3}`)
	reItalic        = regexp.MustCompile(`'{2}([^']*)'{2}`)
)

// RefPlaceholder is what footnotes turn into in HTML previews.
const RefPlaceholder = `<i class="asterisk tiny icon"></i>`

// HasRef reports whether text contains a footnote tag.
func HasRef(text string) bool {
	return reRefTag.MatchString(text)
}

// ReplaceRefs replaces self-closing and paired footnote tags with
// placeholder.
func ReplaceRefs(text, placeholder string) string {
	text = reRefSelfClosed.ReplaceAllLiteralString(text, placeholder)
	return reRefPaired.ReplaceAllLiteralString(text, placeholder)
}

var allowedTags = map[string]bool{
	"b": true, "i": true, "u": true, "span": true, "div": true, "s": true,
	"sub": true, "sup": true, "strong": true, "em": true, "mark": true,
}

// PreviewHTML renders a lyrics cell for preview: footnotes become an icon,
// bold and italic quotes become tags, the value is coloured when colour is
// set and every angle bracket not belonging to an allowed inline tag is
// escaped.
func PreviewHTML(value, colour string) string {
	value = ReplaceRefs(value, RefPlaceholder)
	value = reBold.ReplaceAllString(value, "<b>$1</b>")
	value = reItalic.ReplaceAllString(value, "<i>$1</i>")
	if colour != "" {
		value = `<span style="color:` + colour + `">` + value + `</span>`
	}
	return escapeTags(value)
}

// escapeTags escapes '<' unless it starts an allowed tag and '>' unless it
// closes one.
func escapeTags(s string) string {
	var b strings.Builder
	inTag := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '<':
			if name := tagName(s[i+1:]); allowedTags[name] {
				inTag = true
				b.WriteByte(c)
			} else {
				b.WriteString("&lt;")
			}
		case '>':
			if inTag {
				inTag = false
				b.WriteByte(c)
			} else {
				b.WriteString("&gt;")
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func tagName(s string) string {
	s = strings.TrimPrefix(s, "/")
	end := 0
	for end < len(s) && (s[end] >= 'a' && s[end] <= 'z' || s[end] >= 'A' && s[end] <= 'Z' || s[end] >= '0' && s[end] <= '9') {
		end++
	}
	return s[:end]
}
