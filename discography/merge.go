// Package discography builds producer works and discography grids from wiki
// category listings.
package discography

import (
	"errors"
	"slices"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// Namespaces of category members.
const (
	NamespaceMain     = 0
	NamespaceCategory = 14
)

// Member is a single entry of a category listing.
type Member struct {
	Title         string `json:"title"`
	SortKeyPrefix string `json:"sortkeyprefix"`
	Namespace     int    `json:"ns"`
}

// SortKey is the explicit sort key or page title.
func (m Member) SortKey() string {
	if m.SortKeyPrefix != "" {
		return m.SortKeyPrefix
	}
	return m.Title
}

// Discography holds producer page grids, one row per page with empty
// additional parameters.
type Discography struct {
	Songs  [][]any `yaml:"songList" json:"songList"`
	Albums [][]any `yaml:"albumList" json:"albumList"`
}

// ErrNoPages is returned when the producer category is empty or missing.
var ErrNoPages = errors.New("no pages found - please recheck the category name")

// SongsCategory is the name of the main producer category.
func SongsCategory(prodcat string) string {
	return "Category:" + strings.ReplaceAll(strings.TrimSpace(prodcat), " ", "_") + "_songs_list"
}

// Subcategories returns subcategory titles of the listing in natural order.
func Subcategories(members []Member) []string {
	var res []string
	for _, m := range members {
		if m.Namespace != NamespaceMain && !slices.Contains(res, m.Title) {
			res = append(res, m.Title)
		}
	}
	sort.Sort(natural.StringSlice(res))
	return res
}

// AlbumsSubcategory finds the "/Albums" subcategory.
func AlbumsSubcategory(subcats []string) (string, bool) {
	for _, s := range subcats {
		if strings.HasSuffix(s, "/Albums") {
			return s, true
		}
	}
	return "", false
}

// Merge combines main category listing with listings of its subcategories.
// Nested subcategories are not followed. Pages sharing a sort key collapse
// into one, later ones win. Songs are
// ordered by case insensitive sort key, albums keep listing order.
func Merge(main []Member, subs map[string][]Member) (*Discography, error) {
	songs := make(map[string]string)
	for _, m := range main {
		if m.Namespace == NamespaceMain {
			songs[m.SortKey()] = m.Title
		}
	}
	subcats := Subcategories(main)
	if len(songs) == 0 && len(subcats) == 0 {
		return nil, ErrNoPages
	}

	res := &Discography{Songs: [][]any{}, Albums: [][]any{}}
	albums, hasAlbums := AlbumsSubcategory(subcats)
	if hasAlbums {
		for _, m := range subs[albums] {
			if m.Namespace != NamespaceMain {
				continue
			}
			res.Albums = append(res.Albums, []any{m.Title, ""})
		}
	}
	for _, s := range subcats {
		if hasAlbums && s == albums {
			continue
		}
		for _, m := range subs[s] {
			if m.Namespace == NamespaceMain {
				songs[m.SortKey()] = m.Title
			}
		}
	}

	keys := make([]string, 0, len(songs))
	for k := range songs {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	for _, k := range keys {
		res.Songs = append(res.Songs, []any{songs[k], ""})
	}
	return res, nil
}
