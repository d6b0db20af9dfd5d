// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"time"
)

// Character is a single archive profile together with its joined stats row.
//
// Lore lists (abilities, relationships, trivias) are stored as ordered
// structured values; their markup form is produced by the lore package
// at render time only.
type Character struct {
	// ID is assigned by the database on insert.
	// Optimistic client-side records carry a temporary unix-millis value
	// until the next full fetch replaces them.
	ID int64 `json:"id"`

	// Slug is the first word of the name, lowercased. It names the
	// character's storage folder and never changes after creation.
	Slug string `json:"slug"`

	Name  string `json:"name"`
	Role  Role   `json:"role"`
	Quote string `json:"quote"`
	Bio   string `json:"bio"`

	Abilities     LoreEntries `json:"abilities"`
	Relationships LoreEntries `json:"relationships"`
	Trivias       StringList  `json:"trivias"`
	Labels        StringList  `json:"labels"`

	// Gallery is the ordered list of public gallery image URLs.
	Gallery StringList `json:"gallery"`

	// IconURL and ImageURL are public object URLs; empty means "no image".
	IconURL  string `json:"icon_url"`
	ImageURL string `json:"image_url"`

	// Stats is nil when the character has no stats row yet.
	Stats *Stats `json:"stats,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Character model.
func (c Character) TableName() string {
	return "characters"
}

// Clone returns a deep copy of c so that optimistic projections never
// alias slices owned by the cached list.
func (c Character) Clone() Character {
	out := c
	out.Abilities = append(LoreEntries(nil), c.Abilities...)
	out.Relationships = append(LoreEntries(nil), c.Relationships...)
	out.Trivias = append(StringList(nil), c.Trivias...)
	out.Labels = append(StringList(nil), c.Labels...)
	out.Gallery = append(StringList(nil), c.Gallery...)
	if c.Stats != nil {
		s := c.Stats.Clone()
		out.Stats = &s
	}
	return out
}

// Stats is the 1:1 child row of a Character. Every field is optional.
type Stats struct {
	CharacterID int64 `json:"character_id"`

	// Age is free text ("17", "around 300", "unknown").
	Age *string `json:"age,omitempty"`

	Gender  *Gender `json:"gender,omitempty"`
	Species *string `json:"species,omitempty"`

	// Height is measured in centimetres.
	Height *int `json:"height,omitempty"`

	// Birthday is formatted as "2000-MM-DD"; the year carries no meaning.
	Birthday *string `json:"birthday,omitempty"`

	Status *VitalStatus `json:"status,omitempty"`
}

// TableName returns the name of the database table
// associated with the Stats model.
func (s Stats) TableName() string {
	return "stats"
}

// Clone returns a copy of s with every pointer field re-allocated.
func (s Stats) Clone() Stats {
	return Stats{
		CharacterID: s.CharacterID,
		Age:         clonePtr(s.Age),
		Gender:      clonePtr(s.Gender),
		Species:     clonePtr(s.Species),
		Height:      clonePtr(s.Height),
		Birthday:    clonePtr(s.Birthday),
		Status:      clonePtr(s.Status),
	}
}

// BirthdayLabel renders the stored birthday as "JUL 4".
// An unset or malformed value yields "UNKNOWN".
func (s *Stats) BirthdayLabel() string {
	if s == nil || s.Birthday == nil {
		return "UNKNOWN"
	}
	t, err := time.Parse(time.DateOnly, *s.Birthday)
	if err != nil {
		return "UNKNOWN"
	}
	return monthAbbreviations[t.Month()-1] + " " + strconv.Itoa(t.Day())
}

var monthAbbreviations = [...]string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Ptr returns a pointer to v. Handy for building partial field sets.
func Ptr[T any](v T) *T {
	return &v
}
