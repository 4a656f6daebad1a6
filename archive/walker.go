// Package archive walks page source entries stored in zip archives.
package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"
)

// Entry is a regular file inside archive.
type Entry struct {
	// Archive is the path of the archive passed to Walk.
	Archive string
	// Name is entry path inside archive as stored.
	Name string
	// NonUTF8 is set when entry name is not in UTF-8.
	NonUTF8 bool

	file *zip.File
}

// Open returns reader for entry content.
func (e Entry) Open() (io.ReadCloser, error) {
	return e.file.Open()
}

// WalkFunc is called for each entry visited by Walk. If an error is returned,
// processing stops.
type WalkFunc func(e Entry) error

// Walk calls walkFn for every regular file in the archive which has one of
// the extensions (case insensitive, all files when exts is empty), in
// archive order. Archives with absolute entry paths or paths containing ".."
// are rejected.
func Walk(ctx context.Context, archive string, exts []string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return err
		}
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || !HasExt(name, exts) {
			continue
		}
		if err := walkFn(Entry{Archive: archive, Name: name, NonUTF8: f.FileHeader.NonUTF8, file: f}); err != nil {
			return err
		}
	}
	return nil
}

// HasExt reports whether name has one of the extensions.
func HasExt(name string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	ext := strings.ToLower(path.Ext(name))
	return slices.ContainsFunc(exts, func(e string) bool { return strings.EqualFold(e, ext) })
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	return !slices.Contains(strings.Split(name, "/"), "..")
}
