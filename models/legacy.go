// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// LegacyArchive is the pre-database export: a JSON object keyed by slug.
type LegacyArchive map[string]LegacyCharacter

// LegacyCharacter is one record of the legacy JSON export. Lore fields hold
// the old "<b>name:</b> description" markup strings.
type LegacyCharacter struct {
	Name          string      `json:"name"`
	Role          FlexString  `json:"role"`
	Subrole       FlexString  `json:"subrole"`
	Quote         string      `json:"quote"`
	Bio           string      `json:"bio"`
	Abilities     string      `json:"abilities"`
	Relationships string      `json:"relationships"`
	Trivias       string      `json:"trivias"`
	Icon          string      `json:"icon"`
	Gallery       []string    `json:"gallery"`
	Labels        []string    `json:"labels"`
	Stats         LegacyStats `json:"stats"`
}

// LegacyStats mirrors the loose stats object of the export, where numbers
// sometimes arrive as strings and vice versa.
type LegacyStats struct {
	Age      FlexString `json:"age"`
	Gender   FlexString `json:"gender"`
	Species  FlexString `json:"species"`
	Height   FlexString `json:"height"`
	Birthday FlexString `json:"birthday"`
	Status   FlexString `json:"status"`
}

// FlexString accepts a JSON string, number, boolean or null and keeps
// its textual form.
type FlexString string

// UnmarshalJSON implements [json.Unmarshaler].
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	*f = FlexString(strconv.FormatBool(b))
	return nil
}

// String returns the raw text.
func (f FlexString) String() string {
	return string(f)
}

// ImportReport summarizes a legacy import run.
type ImportReport struct {
	// Total is the number of records found in the archive.
	Total int `json:"total"`

	// Written is the number of characters upserted; zero on a dry run.
	Written int `json:"written"`

	DryRun   bool     `json:"dry_run"`
	Warnings []string `json:"warnings,omitempty"`
}
