// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lore

import (
	"fmt"
	"html"
	"strings"

	"github.com/MKhiriev/char-archive/models"
)

// Repair describes a legacy fragment that did not follow the
// "<b>Name:</b> description" shape and was kept as a name-less entry.
type Repair struct {
	Index    int
	Fragment string
}

func (r Repair) String() string {
	return fmt.Sprintf("fragment #%d has no \"name:\" prefix, kept as plain text: %q", r.Index, r.Fragment)
}

// ParseLegacyEntries splits legacy lore markup into entries.
//
// The markup is unescaped, split on [Separator] and stripped of <b> and
// <strong> tags; each fragment is split at its first colon. Fragments
// without a colon are kept with an empty name and reported as repairs.
func ParseLegacyEntries(markup string) (models.LoreEntries, []Repair) {
	var (
		out     models.LoreEntries
		repairs []Repair
	)
	for i, part := range legacyFragments(markup) {
		clean := strings.TrimSpace(boldTags.ReplaceAllString(part, ""))
		if clean == "" {
			continue
		}
		entry := splitEntry(clean)
		if !strings.Contains(clean, ":") {
			repairs = append(repairs, Repair{Index: i, Fragment: clean})
		}
		out = append(out, entry)
	}
	return out, repairs
}

// ParseLegacyTrivias splits legacy trivia markup into items, dropping the
// leading bullets.
func ParseLegacyTrivias(markup string) models.StringList {
	var out models.StringList
	for _, part := range legacyFragments(markup) {
		item := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(part), bullet+" \t"))
		item = strings.TrimSpace(boldTags.ReplaceAllString(item, ""))
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func legacyFragments(markup string) []string {
	markup = html.UnescapeString(markup)
	if strings.TrimSpace(markup) == "" {
		return nil
	}
	return strings.Split(markup, Separator)
}
