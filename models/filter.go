// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Category is a gallery filter tab.
type Category string

const (
	CategoryAll          Category = "all"
	CategoryUnclassified Category = "unclassified"
	CategoryProtagonist  Category = "protagonist"
	CategoryAntagonist   Category = "antagonist"
)

// Categories lists the gallery tabs in display order.
var Categories = []Category{
	CategoryAll, CategoryUnclassified, CategoryProtagonist, CategoryAntagonist,
}

// Title is the tab caption.
func (c Category) Title() string {
	switch c {
	case CategoryUnclassified:
		return "UNCLASSIFIED"
	case CategoryProtagonist:
		return "PROTAGONISTS"
	case CategoryAntagonist:
		return "ANTAGONISTS"
	default:
		return "ALL"
	}
}

// Matches reports whether a character with role r belongs to the tab.
// Unknown categories match everything.
func (c Category) Matches(r Role) bool {
	switch c {
	case CategoryUnclassified:
		return r == RoleUnclassified
	case CategoryProtagonist:
		return r == RoleProtagonist
	case CategoryAntagonist:
		return r == RoleAntagonist
	default:
		return true
	}
}

// FilterCharacters returns the characters of list that belong to category
// and whose name, slug or one of the labels contains query, ignoring case.
// The input order is preserved and list itself is never modified.
func FilterCharacters(list []Character, category Category, query string) []Character {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]Character, 0, len(list))
	for _, c := range list {
		if !category.Matches(c.Role) {
			continue
		}
		if query != "" && !matchesQuery(c, query) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesQuery(c Character, query string) bool {
	if strings.Contains(strings.ToLower(c.Name), query) ||
		strings.Contains(strings.ToLower(c.Slug), query) {
		return true
	}
	for _, label := range c.Labels {
		if strings.Contains(strings.ToLower(label), query) {
			return true
		}
	}
	return false
}

// FindBySlug returns the first character with the given slug.
func FindBySlug(list []Character, slug string) (Character, bool) {
	for _, c := range list {
		if c.Slug == slug {
			return c, true
		}
	}
	return Character{}, false
}
