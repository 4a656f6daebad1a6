package model

import (
	"regexp"
	"strings"

	"vlwgen/grid"
)

// CanonicalWiki is the fandom subdomain of the lyrics wiki itself, links into
// it become plain internal links.
const CanonicalWiki = "vocaloidlyrics"

// PlayLink is a row of the play links grid.
type PlayLink struct {
	Site      string
	URL       string
	IsReprint bool
	IsAutogen bool
	IsDeleted bool
	ViewCount string
}

// NewPlayLink normalizes a play links row (site, url, reprint, autogen,
// deleted, views).
func NewPlayLink(row grid.Row) PlayLink {
	return PlayLink{
		Site:      row.Trimmed(0),
		URL:       row.Trimmed(1),
		IsReprint: row.Bool(2),
		IsAutogen: row.Bool(3),
		IsDeleted: row.Bool(4),
		ViewCount: row.Trimmed(5),
	}
}

// NewPlayLinks converts the grid dropping rows without URL.
func NewPlayLinks(rows grid.Rows) []PlayLink {
	var links []PlayLink
	for _, row := range rows {
		if l := NewPlayLink(row); l.URL != "" {
			links = append(links, l)
		}
	}
	return links
}

// OfficiallyAvailable reports whether the upload is an original which is
// still online.
func (p PlayLink) OfficiallyAvailable() bool {
	return !p.IsReprint && !p.IsDeleted
}

// Markup renders link as "[url Site Broadcast]" with an optional annotation.
func (p PlayLink) Markup() string {
	var notes []string
	if p.IsReprint {
		notes = append(notes, "reprint")
	} else if p.IsAutogen {
		notes = append(notes, "auto-generated by YouTube")
	}
	if p.IsDeleted {
		notes = append(notes, "deleted")
	}
	res := "[" + p.URL + " " + p.Site + " Broadcast]"
	if len(notes) > 0 {
		res += " <small>(" + strings.Join(notes, ", ") + ")</small>"
	}
	return res
}

// FormattedViewCount returns rounded view count, see FormatViewCount.
func (p PlayLink) FormattedViewCount() string {
	return FormatViewCount(p.ViewCount)
}

// ExternalLink is a row of the external links grid.
type ExternalLink struct {
	URL         string
	Description string
	IsOfficial  bool
	IsMedia     bool
	IsInactive  bool
}

// NewExternalLink normalizes an external links row (url, description,
// official, media, inactive). Song and album grids only have the first three
// columns.
func NewExternalLink(row grid.Row) ExternalLink {
	return ExternalLink{
		URL:         row.Trimmed(0),
		Description: row.Trimmed(1),
		IsOfficial:  row.Bool(2),
		IsMedia:     row.Bool(3),
		IsInactive:  row.Bool(4),
	}
}

// NewExternalLinks converts the grid dropping rows without URL.
func NewExternalLinks(rows grid.Rows) []ExternalLink {
	var links []ExternalLink
	for _, row := range rows {
		if l := NewExternalLink(row); l.URL != "" {
			links = append(links, l)
		}
	}
	return links
}

var (
	reVocaDBLink = regexp.MustCompile(`^https?://vocadb\.net/([^?]*)`)
	reFandomLink = regexp.MustCompile(`^https?://([^.]*)\.fandom\.com/wiki/(.*)`)
)

// Markup renders the link. VocaDB entries become citation macro, pages on
// fandom wikis become internal (or interwiki) links.
func (e ExternalLink) Markup() string {
	var res string
	if m := reVocaDBLink.FindStringSubmatch(e.URL); m != nil {
		res = "{{VDB|" + m[1] + "}}"
		if e.Description != "VocaDB" {
			res += " - " + e.Description
		}
	} else if m := reFandomLink.FindStringSubmatch(e.URL); m != nil {
		if strings.EqualFold(m[1], CanonicalWiki) {
			res = "[[" + m[2] + "|" + e.Description + "]]"
		} else {
			res = "[[w:c:" + m[1] + ":" + m[2] + "|" + e.Description + "]]"
		}
	} else {
		res = "[" + e.URL + " " + e.Description + "]"
	}
	if e.IsInactive {
		res = "<s>" + res + "</s>"
	}
	return res
}

// LinksSection renders the "External Links" section used by song and album
// pages: official links first, unofficial ones under their own heading.
func LinksSection(links []ExternalLink) string {
	var official, unofficial []string
	for _, l := range links {
		if l.IsOfficial {
			official = append(official, "* "+l.Markup())
		} else {
			unofficial = append(unofficial, "* "+l.Markup())
		}
	}
	if len(official) == 0 && len(unofficial) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("==External Links==\n")
	if len(official) > 0 {
		b.WriteString(strings.Join(official, "\n"))
		b.WriteByte('\n')
	}
	if len(unofficial) > 0 {
		b.WriteString("===Unofficial===\n")
		b.WriteString(strings.Join(unofficial, "\n"))
		b.WriteString("\n\n")
	}
	return b.String()
}
