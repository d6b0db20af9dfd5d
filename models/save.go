// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CharacterFields is a partial write of the characters table.
// Only non-nil fields are written; a pointer to an empty string
// explicitly clears a column (e.g. a removed icon).
type CharacterFields struct {
	Slug          *string      `json:"slug,omitempty"`
	Name          *string      `json:"name,omitempty"`
	Role          *Role        `json:"role,omitempty"`
	Quote         *string      `json:"quote,omitempty"`
	Bio           *string      `json:"bio,omitempty"`
	Abilities     *LoreEntries `json:"abilities,omitempty"`
	Relationships *LoreEntries `json:"relationships,omitempty"`
	Trivias       *StringList  `json:"trivias,omitempty"`
	Labels        *StringList  `json:"labels,omitempty"`
	Gallery       *StringList  `json:"gallery,omitempty"`
	IconURL       *string      `json:"icon_url,omitempty"`
	ImageURL      *string      `json:"image_url,omitempty"`
}

// IsEmpty reports whether no field is set.
func (f CharacterFields) IsEmpty() bool {
	return f.Slug == nil && f.Name == nil && f.Role == nil && f.Quote == nil &&
		f.Bio == nil && f.Abilities == nil && f.Relationships == nil &&
		f.Trivias == nil && f.Labels == nil && f.Gallery == nil &&
		f.IconURL == nil && f.ImageURL == nil
}

// StatsFields is a partial write of the stats table.
// Absent fields are omitted so they never overwrite stored values.
type StatsFields struct {
	Age      *string      `json:"age,omitempty"`
	Gender   *Gender      `json:"gender,omitempty"`
	Species  *string      `json:"species,omitempty"`
	Height   *int         `json:"height,omitempty"`
	Birthday *string      `json:"birthday,omitempty"`
	Status   *VitalStatus `json:"status,omitempty"`
}

// IsEmpty reports whether no field is set.
func (f StatsFields) IsEmpty() bool {
	return f.Age == nil && f.Gender == nil && f.Species == nil &&
		f.Height == nil && f.Birthday == nil && f.Status == nil
}

// SaveRequest is the body of PUT /api/characters.
// A nil ID inserts a new character; otherwise the existing row is updated.
type SaveRequest struct {
	ID        *int64          `json:"id,omitempty"`
	Character CharacterFields `json:"character"`
	Stats     StatsFields     `json:"stats"`
}

// IsNew reports whether the request creates a character.
func (r SaveRequest) IsNew() bool {
	return r.ID == nil
}

// SaveResponse carries the id of the written character.
type SaveResponse struct {
	ID      int64 `json:"id"`
	Created bool  `json:"created"`
}

// CharacterForm holds the raw text submitted from the edit form.
// Everything is a string at this stage; the save workflow
// validates and normalizes it into CharacterFields and StatsFields.
type CharacterForm struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Quote      string `json:"quote"`
	Bio        string `json:"bio"`
	Age        string `json:"age"`
	Gender     string `json:"gender"`
	Species    string `json:"species"`
	Height     string `json:"height"`
	BirthMonth string `json:"birth_month"`
	BirthDay   string `json:"birth_day"`
	Status     string `json:"status"`
}

// LoreExtras carries the structured lore lists and gallery choices
// edited outside the plain form fields.
type LoreExtras struct {
	Abilities     LoreEntries
	Relationships LoreEntries
	Trivias       StringList
	Labels        StringList

	// GalleryFiles are newly attached gallery images.
	GalleryFiles []ImageFile

	// RetainedGallery lists existing gallery URLs the user kept.
	// Nil means "keep the whole current gallery".
	RetainedGallery StringList
}

// SaveInput is one submission of the edit form.
type SaveInput struct {
	Form CharacterForm

	// Editing is the record being edited, nil when creating.
	Editing *Character

	// MainFile and IconFile are newly selected images, nil when unchanged.
	MainFile *ImageFile
	IconFile *ImageFile

	// ClearMain and ClearIcon empty a slot without a replacement.
	ClearMain bool
	ClearIcon bool

	Extra LoreExtras
}

// SaveReport summarizes a finished save.
type SaveReport struct {
	ID             int64
	Created        bool
	Persisted      bool
	UploadWarnings []string
}
