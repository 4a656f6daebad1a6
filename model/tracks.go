package model

import (
	"strings"

	"vlwgen/grid"
)

// TrackItem is a row of the album tracklist grid.
type TrackItem struct {
	DiscNo         string
	TrackNo        string
	PageTitle      string
	ProducerCredit string
	SingerCredit   string
}

// NewTrackItem normalizes a tracklist row (disc, track, title, producers,
// singers). Disc and track numbers are kept as entered.
func NewTrackItem(row grid.Row) TrackItem {
	return TrackItem{
		DiscNo:         row.String(0),
		TrackNo:        row.String(1),
		PageTitle:      row.Trimmed(2),
		ProducerCredit: row.Trimmed(3),
		SingerCredit:   row.Trimmed(4),
	}
}

// NewTrackItems converts the grid dropping rows without page title.
func NewTrackItems(rows grid.Rows) []TrackItem {
	var tracks []TrackItem
	for _, row := range rows {
		if t := NewTrackItem(row); t.PageTitle != "" {
			tracks = append(tracks, t)
		}
	}
	return tracks
}

// Credits returns "producer ft. singer" or just the singer credit.
func (t TrackItem) Credits() string {
	if t.ProducerCredit != "" {
		return t.ProducerCredit + " ft. " + t.SingerCredit
	}
	return t.SingerCredit
}

// Markup renders the pair of album infobox parameters for the track. Disc 1
// is implied and has no prefix.
func (t TrackItem) Markup() string {
	disc := t.DiscNo
	if disc == "1" {
		disc = ""
	}
	key := disc + "tr" + t.TrackNo
	return "|" + key + " = " + t.PageTitle + "\n|" + key + "s = " + t.Credits()
}

// DiscogItem is a row of the producer works or discography grid.
type DiscogItem struct {
	Page                 string
	AdditionalParameters string
	ForAlbum             bool
}

// NewDiscogItem normalizes a discography row (page, extra parameters).
func NewDiscogItem(row grid.Row, forAlbum bool) DiscogItem {
	return DiscogItem{
		Page:                 row.Trimmed(0),
		AdditionalParameters: row.Trimmed(1),
		ForAlbum:             forAlbum,
	}
}

// NewDiscogItems converts the grid dropping rows without page.
func NewDiscogItems(rows grid.Rows, forAlbum bool) []DiscogItem {
	var items []DiscogItem
	for _, row := range rows {
		if d := NewDiscogItem(row, forAlbum); d.Page != "" {
			items = append(items, d)
		}
	}
	return items
}

// Markup renders the item as "{{pwt row|...}}" or "{{awt row|...}}".
func (d DiscogItem) Markup() string {
	params := d.AdditionalParameters
	if params != "" && !strings.HasPrefix(params, "|") {
		params = "|" + params
	}
	name := "pwt"
	if d.ForAlbum {
		name = "awt"
	}
	return "{{" + name + " row|" + d.Page + params + "}}"
}
