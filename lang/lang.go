// Package lang provides the language and region identifiers used for
// localized element names, plus best-match lookup over per-kind name tables.
// The tables themselves are owned by the element definitions; this package
// only performs tag handling and matching.
package lang

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Lang is a lowercase ISO 639-1 language code, e.g. "en".
type Lang string

// Region is an uppercase ISO 3166-1 alpha-2 region code, e.g. "BR".
// The empty region means "no region preference".
type Region string

// Common languages used by the built-in element set.
const (
	English    Lang = "en"
	German     Lang = "de"
	French     Lang = "fr"
	Portuguese Lang = "pt"
)

// Parse splits a BCP 47 tag like "pt-BR" into language and region.
func Parse(tag string) (Lang, Region, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return "", "", fmt.Errorf("invalid language tag %q: %w", tag, err)
	}
	base, _ := t.Base()
	region, _ := t.Region()
	out := Region("")
	if region.IsCountry() {
		out = Region(region.String())
	}
	return Lang(strings.ToLower(base.String())), out, nil
}

// tag assembles a language.Tag from a language and optional region.
func tag(l Lang, r Region) language.Tag {
	s := string(l)
	if r != "" {
		s += "-" + string(r)
	}
	t, err := language.Parse(s)
	if err != nil {
		return language.Und
	}
	return t
}

// Names is an immutable table of localized names keyed by BCP 47 tag.
// Lookup picks the best match for a requested language and region, so a
// table with "pt" and "pt-BR" entries answers a plain "pt" request with
// the unregionalized entry.
type Names struct {
	tags    []language.Tag
	names   []string
	matcher language.Matcher
}

// NewNames builds a name table from tag → localized name entries.
// Invalid tags panic: the tables are static, declared at element
// registration time, and a bad tag is a programmer error.
func NewNames(entries map[string]string) *Names {
	n := &Names{}
	for _, t := range sortedKeys(entries) {
		parsed := language.MustParse(t)
		n.tags = append(n.tags, parsed)
		n.names = append(n.names, entries[t])
	}
	n.matcher = language.NewMatcher(n.tags)
	return n
}

// Lookup returns the localized name best matching the language and region.
// The second result is false when nothing in the table is an acceptable
// match for the requested language.
func (n *Names) Lookup(l Lang, r Region) (string, bool) {
	if n == nil || len(n.tags) == 0 {
		return "", false
	}
	_, index, conf := n.matcher.Match(tag(l, r))
	if conf == language.No {
		return "", false
	}
	return n.names[index], true
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Sort for deterministic matcher construction
	sort.Strings(keys)
	return keys
}
