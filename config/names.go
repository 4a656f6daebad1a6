package config

import "strings"

const badFileName = "_bad_file_name_"

func cleanName(in, invalid string) string {
	out := strings.Map(func(sym rune) rune {
		if sym < ' ' || strings.ContainsRune(invalid, sym) {
			return '_'
		}
		return sym
	}, in)
	// hidden files and names Windows silently truncates
	out = strings.TrimRight(strings.TrimLeft(out, ". "), ". ")
	if len(strings.Trim(out, "_")) == 0 {
		return badFileName
	}
	return out
}
