//go:build !windows

package config

import (
	"os"

	"golang.org/x/term"
)

const invalidNameChars = string(os.PathSeparator) + string(os.PathListSeparator) + "\x00"

// CleanFileName makes file name out of a page title: characters not allowed
// in file names become underscores.
func CleanFileName(in string) string {
	return cleanName(in, invalidNameChars)
}

// EnableColorOutput checks if colorized output is possible.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
