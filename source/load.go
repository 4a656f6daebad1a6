// Package source loads wiki page source text for lyrics extraction.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/beevik/etree"
	"github.com/h2non/filetype"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"vlwgen/archive"
)

// DefaultExtensions are archive entries considered page sources.
var DefaultExtensions = []string{".txt", ".wiki", ".wikitext", ".mediawiki", ".xml"}

// Page is page source text.
type Page struct {
	// Origin is file path, archive entries are "archive/entry".
	Origin string
	// Title is page title from XML export or base file name.
	Title string
	Text  string
}

// Loader reads page sources from files.
type Loader struct {
	codePage   encoding.Encoding
	extensions []string
	log        *zap.Logger
}

// NewLoader creates loader. When cp is not nil it is used for input without
// BOM which is not valid UTF-8 and for non UTF-8 archive entry names,
// otherwise encoding is guessed.
func NewLoader(cp encoding.Encoding, exts []string, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	return &Loader{codePage: cp, extensions: exts, log: log.Named("source")}
}

// Detect returns kind of input by looking at its beginning.
func Detect(head []byte) Kind {
	if filetype.Is(head, "zip") {
		return KindZip
	}
	trimmed := bytes.TrimLeft(trimBOM(head), " \t\r\n")
	if bytes.HasPrefix(trimmed, []byte("<?xml")) || bytes.HasPrefix(trimmed, []byte("<mediawiki")) {
		return KindXml
	}
	return KindText
}

var boms = [][]byte{
	{0xEF, 0xBB, 0xBF},
	{0xFE, 0xFF},
	{0xFF, 0xFE},
}

func trimBOM(b []byte) []byte {
	for _, bom := range boms {
		if bytes.HasPrefix(b, bom) {
			return b[len(bom):]
		}
	}
	return b
}

func hasBOM(b []byte) bool {
	return len(trimBOM(b)) != len(b)
}

// Load reads all page sources from path.
func (l *Loader) Load(ctx context.Context, path string) ([]Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to read '%s': %w", path, err)
	}
	if Detect(head[:n]) == KindZip {
		return l.loadArchive(ctx, path)
	}

	data, err := io.ReadAll(io.MultiReader(bytes.NewReader(head[:n]), f))
	if err != nil {
		return nil, fmt.Errorf("unable to read '%s': %w", path, err)
	}
	return l.Decode(path, data)
}

func (l *Loader) loadArchive(ctx context.Context, path string) ([]Page, error) {
	var pages []Page
	err := archive.Walk(ctx, path, l.extensions, func(e archive.Entry) error {
		name := e.Name
		if l.codePage != nil && e.NonUTF8 {
			if n, err := l.codePage.NewDecoder().String(name); err == nil {
				name = n
			} else {
				cs, _ := ianaindex.IANA.Name(l.codePage)
				l.log.Warn("Unable to convert archive name from specified encoding",
					zap.String("charset", cs), zap.String("path", name), zap.Error(err))
			}
		}

		r, err := e.Open()
		if err != nil {
			return fmt.Errorf("unable to open '%s' in archive: %w", name, err)
		}
		defer r.Close()

		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("unable to read '%s' in archive: %w", name, err)
		}
		res, err := l.Decode(path+"/"+name, data)
		if err != nil {
			l.log.Warn("Skipping archive entry", zap.String("archive", path), zap.String("entry", name), zap.Error(err))
			return nil
		}
		pages = append(pages, res...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to process archive '%s': %w", path, err)
	}
	return pages, nil
}

// Decode converts raw content into pages. MediaWiki XML exports produce a
// page for every exported page with text, anything else is a single page.
func (l *Loader) Decode(origin string, data []byte) ([]Page, error) {
	switch Detect(data) {
	case KindXml:
		return l.parseExport(origin, data)
	case KindZip:
		return nil, errors.New("nested archives are not supported")
	}
	text, err := l.toUTF8(data)
	if err != nil {
		return nil, fmt.Errorf("unable to decode '%s': %w", origin, err)
	}
	base := filepath.Base(origin)
	return []Page{{
		Origin: origin,
		Title:  strings.TrimSuffix(base, filepath.Ext(base)),
		Text:   text,
	}}, nil
}

func (l *Loader) toUTF8(data []byte) (string, error) {
	var dec transform.Transformer
	switch {
	case hasBOM(data):
		dec = unicode.BOMOverride(encoding.Nop.NewDecoder())
	case utf8.Valid(data):
		return string(data), nil
	case l.codePage != nil:
		dec = l.codePage.NewDecoder()
	default:
		enc, name, _ := charset.DetermineEncoding(data, "text/plain")
		l.log.Debug("Guessed source encoding", zap.String("charset", name))
		dec = enc.NewDecoder()
	}
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// parseExport reads the latest revision of every page in MediaWiki export.
func (l *Loader) parseExport(origin string, data []byte) ([]Page, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		Permissive:    true,
	}
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("unable to read XML export '%s': %w", origin, err)
	}
	root := doc.SelectElement("mediawiki")
	if root == nil {
		return nil, fmt.Errorf("'%s' is not a MediaWiki export", origin)
	}

	var pages []Page
	for _, p := range root.SelectElements("page") {
		title := ""
		if t := p.SelectElement("title"); t != nil {
			title = t.Text()
		}
		revs := p.SelectElements("revision")
		if len(revs) == 0 {
			l.log.Debug("Page without revisions", zap.String("title", title))
			continue
		}
		text := revs[len(revs)-1].SelectElement("text")
		if text == nil || text.Text() == "" {
			l.log.Debug("Page without text", zap.String("title", title))
			continue
		}
		pages = append(pages, Page{Origin: origin, Title: title, Text: text.Text()})
	}
	return pages, nil
}
