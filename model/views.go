package model

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	reViewCount = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
	printer     = message.NewPrinter(language.AmericanEnglish)
)

// FormatViewCount rounds a view count down to one significant digit below
// 1000 and to two significant digits from 1000 up, adds thousands separators
// and a trailing "+". Values which are not numbers are returned unchanged.
func FormatViewCount(raw string) string {
	s := stripSeparators(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "+", "")
	s = strings.TrimSpace(s)
	if !reViewCount.MatchString(s) {
		return raw
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return raw
	}
	if n > 0 {
		digits := len(strconv.FormatInt(n, 10))
		keep := 1
		if n >= 1000 {
			keep = 2
		}
		div := int64(1)
		for range digits - keep {
			div *= 10
		}
		n = n / div * div
	}
	return printer.Sprintf("%d", n) + "+"
}

// stripSeparators removes "," and "." (optionally followed by a single space)
// when they are followed by a group of three digits.
func stripSeparators(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ',' || c == '.' {
			j := i + 1
			if j < len(s) && s[j] == ' ' {
				j++
			}
			if j+3 <= len(s) && isDigits(s[j:j+3]) {
				i = j - 1
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
