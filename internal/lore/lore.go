// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package lore converts between structured lore lists and the markup used
// to display them.
//
// Lore is persisted as ordered lists ([models.LoreEntries], [models.StringList]).
// Rendering to markup is a presentation step only. Parsing exists for the
// one-off import of legacy exports, where lore was stored as a single
// "<b>Name:</b> description<br><br>..." string.
package lore

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/MKhiriev/char-archive/models"
)

// Separator joins rendered entries.
const Separator = "<br><br>"

const bullet = "•"

// DefaultLabel is assigned to characters created without labels.
const DefaultLabel = "BASE"

var boldTags = regexp.MustCompile(`(?i)</?(b|strong)>`)

// RenderEntries renders entries as "<b>Name:</b> description" joined by
// [Separator]. Name-less entries render as their description alone.
// Names and descriptions are HTML-escaped.
func RenderEntries(entries models.LoreEntries) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		desc := html.EscapeString(e.Description)
		if e.Name == "" {
			parts = append(parts, desc)
			continue
		}
		parts = append(parts, fmt.Sprintf("<b>%s:</b> %s", html.EscapeString(e.Name), desc))
	}
	return strings.Join(parts, Separator)
}

// RenderTrivias renders each item as "• item" joined by [Separator].
func RenderTrivias(items models.StringList) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, bullet+" "+html.EscapeString(item))
	}
	return strings.Join(parts, Separator)
}

// PlainEntries renders entries as "Name: description" lines for terminal
// output and for the editor textarea. [ParseLines] reverses it.
func PlainEntries(entries models.LoreEntries) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			lines = append(lines, e.Description)
			continue
		}
		lines = append(lines, e.Name+": "+e.Description)
	}
	return strings.Join(lines, "\n")
}

// ParseLines reads one "Name: description" entry per non-blank line.
// Lines without a colon become name-less entries.
func ParseLines(text string) models.LoreEntries {
	var out models.LoreEntries
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, splitEntry(line))
	}
	return out
}

// ParseList reads one item per non-blank line, trimming a leading bullet.
func ParseList(text string) models.StringList {
	var out models.StringList
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), bullet))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// NormalizeLabels upper-cases and de-duplicates labels, keeping the first
// occurrence order. An empty result yields [DefaultLabel].
func NormalizeLabels(labels []string) models.StringList {
	seen := make(map[string]struct{}, len(labels))
	out := make(models.StringList, 0, len(labels))
	for _, l := range labels {
		l = strings.ToUpper(strings.TrimSpace(l))
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	if len(out) == 0 {
		return models.StringList{DefaultLabel}
	}
	return out
}

func splitEntry(s string) models.LoreEntry {
	idx := strings.Index(s, ":")
	if idx < 0 {
		return models.LoreEntry{Description: strings.TrimSpace(s)}
	}
	return models.LoreEntry{
		Name:        strings.TrimSpace(s[:idx]),
		Description: strings.TrimSpace(s[idx+1:]),
	}
}
