package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	yaml "gopkg.in/yaml.v3"

	"vlwgen/categories"
	"vlwgen/page"
)

// Kinds of pages subcommands work with.
const (
	kindSong     = "song"
	kindAlbum    = "album"
	kindProducer = "producer"
)

var pageKinds = []string{kindSong, kindAlbum, kindProducer}

func kindFlag() cli.Flag {
	return &cli.StringFlag{Name: "kind", Aliases: []string{"k"}, Value: kindSong,
		Usage: "page `KIND` (supported kinds: " + strings.Join(pageKinds, ", ") + ")",
		Validator: func(s string) error {
			if _, err := parseKind(s); err != nil {
				return err
			}
			return nil
		},
	}
}

func parseKind(s string) (string, error) {
	k := strings.ToLower(strings.TrimSpace(s))
	for _, known := range pageKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown page kind '%s'", s)
}

// readSnapshot decodes form snapshot. JSON is accepted as well since it is a
// subset of YAML. Unknown fields are errors so typos in hand edited
// snapshots do not go unnoticed.
func readSnapshot[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read snapshot: %w", err)
	}
	return decodeSnapshot[T](data)
}

func decodeSnapshot[T any](data []byte) (*T, error) {
	var v T
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &v, nil
}

func encodeYAML(v any) ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("unable to encode result: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("unable to encode result: %w", err)
	}
	return buf.Bytes(), nil
}

func destinationName(fname string) string {
	if len(fname) == 0 {
		return "STDOUT"
	}
	return fname
}

// writeDestination writes data to a file, empty name means STDOUT.
func writeDestination(fname string, data []byte) error {
	if len(fname) == 0 {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("unable to write result: %w", err)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(fname), 0755); err != nil {
		return fmt.Errorf("unable to create destination directory: %w", err)
	}
	if err := os.WriteFile(fname, data, 0644); err != nil {
		return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
	}
	return nil
}

// pageSnapshot is a loaded form of any kind, title is used to name output
// files.
type pageSnapshot struct {
	title string
	form  any
}

func loadPage(kind, path string) (*pageSnapshot, error) {
	switch kind {
	case kindSong:
		f, err := readSnapshot[page.SongForm](path)
		if err != nil {
			return nil, err
		}
		return &pageSnapshot{title: f.OrigTitle, form: f}, nil
	case kindAlbum:
		f, err := readSnapshot[page.AlbumForm](path)
		if err != nil {
			return nil, err
		}
		return &pageSnapshot{title: f.OrigTitle, form: f}, nil
	case kindProducer:
		f, err := readSnapshot[page.ProducerForm](path)
		if err != nil {
			return nil, err
		}
		return &pageSnapshot{title: f.ProdCategory, form: f}, nil
	}
	return nil, fmt.Errorf("unknown page kind '%s'", kind)
}

func (s *pageSnapshot) assembler() page.Assembler {
	switch f := s.form.(type) {
	case *page.SongForm:
		return page.NewSong(*f)
	case *page.AlbumForm:
		return page.NewAlbum(*f)
	case *page.ProducerForm:
		return page.NewProducer(*f)
	}
	// this should never happen
	panic("unexpected snapshot form")
}

func (s *pageSnapshot) categories() []string {
	switch f := s.form.(type) {
	case *page.SongForm:
		return categories.Song(f.CategoriesInput())
	case *page.AlbumForm:
		return categories.Album(f.CategoriesInput())
	case *page.ProducerForm:
		return categories.Producer(f.CategoriesInput())
	}
	// this should never happen
	panic("unexpected snapshot form")
}

var errNoCategories = errors.New("producer pages do not carry category list")

// setCategories replaces raw category list kept in the snapshot.
func (s *pageSnapshot) setCategories(cats []string) error {
	raw := strings.Join(cats, "\n")
	switch f := s.form.(type) {
	case *page.SongForm:
		f.CategoriesRaw = raw
	case *page.AlbumForm:
		f.CategoriesRaw = raw
	default:
		return errNoCategories
	}
	return nil
}
