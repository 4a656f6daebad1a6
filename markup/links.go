// Package markup mines semantic tokens out of free-form wikitext fields:
// internal links, circle markup, role credits, emphasis and footnotes.
package markup

import (
	"regexp"
	"strings"
)

// Link is a single [[target|caption]] token.
type Link struct {
	Target  string
	Caption string
}

var (
	reLink       = regexp.MustCompile(`\[\[([^|\n\]]*)(?:\|([^\]]*))?\]\]`)
	reCircle     = regexp.MustCompile(`'{2,}\[\[([^|\n\]]*)(?:\|([^|\n\]]*))?\]\]'{2,}`)
	reRoleCredit = regexp.MustCompile(`\[\[([^|\n\]]*)(?:\|([^|\n\]]*))?\]\]\s*\(([^)\n]*)\)`)
	reInterwiki  = regexp.MustCompile(`(?i)^w:c:`)
	reSongsList  = regexp.MustCompile(`^:[Cc]ategory:(.*) songs list$`)
	reCategoryNS = regexp.MustCompile(`(?i)^:Category:\s*`)
	reSongsListI = regexp.MustCompile(`(?i)^:Category:.* songs list`)
	reSmallLine  = regexp.MustCompile(`(?i)^\s*<small>.*</small>\s*$`)
)

// Links returns all internal links in text in source order. Targets are not
// trimmed.
func Links(text string) []Link {
	var res []Link
	for _, m := range reLink.FindAllStringSubmatch(text, -1) {
		res = append(res, Link{Target: m[1], Caption: m[2]})
	}
	return res
}

// HasInternalLink reports whether text contains any [[...]] link.
func HasInternalLink(text string) bool {
	return reLink.MatchString(text)
}

// ExtractLinkedEntities returns trimmed link targets in source order,
// duplicates included. Interwiki links are skipped and producer list
// category links are unwrapped to the producer name.
func ExtractLinkedEntities(text string) []string {
	var res []string
	for _, l := range Links(text) {
		name := strings.TrimSpace(l.Target)
		if name == "" || reInterwiki.MatchString(name) {
			continue
		}
		if m := reSongsList.FindStringSubmatch(name); m != nil {
			name = m[1]
		}
		res = append(res, name)
	}
	return res
}

// ProducerCategory turns a link target into producer songs list category
// name. Interwiki and empty targets are not producers.
func ProducerCategory(target string) (string, bool) {
	target = strings.TrimSpace(target)
	if target == "" || reInterwiki.MatchString(target) {
		return "", false
	}
	if reSongsListI.MatchString(target) {
		return reCategoryNS.ReplaceAllString(target, ""), true
	}
	return target + " songs list", true
}

// FirstCircle returns the first link wrapped in two or more quotes on both
// sides, which is how circles (groups) are credited.
func FirstCircle(text string) (Link, bool) {
	m := reCircle.FindStringSubmatch(text)
	if m == nil {
		return Link{}, false
	}
	return Link{Target: m[1], Caption: m[2]}, true
}

// RoleCredit is a "[[Name]] (roles)" occurrence.
type RoleCredit struct {
	Link
	Roles []string
}

// RoleCredits returns every linked credit followed by parenthesized roles.
// Roles are lowercased and split on commas.
func RoleCredits(text string) []RoleCredit {
	var res []RoleCredit
	for _, m := range reRoleCredit.FindAllStringSubmatch(text, -1) {
		var roles []string
		for r := range strings.SplitSeq(strings.ToLower(m[3]), ",") {
			roles = append(roles, strings.TrimSpace(r))
		}
		res = append(res, RoleCredit{Link: Link{Target: m[1], Caption: m[2]}, Roles: roles})
	}
	return res
}

// IsSmallLine reports whether the whole line is wrapped in <small> tags.
func IsSmallLine(line string) bool {
	return reSmallLine.MatchString(line)
}
