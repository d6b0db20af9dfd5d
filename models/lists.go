// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
)

// LoreEntry is one named item of an abilities or relationships list.
// Name may be empty for entries repaired from malformed legacy markup.
type LoreEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LoreEntries is an ordered list of lore entries persisted as a JSONB array.
type LoreEntries []LoreEntry

// Value implements [driver.Valuer]. A nil list is stored as an empty array.
func (l LoreEntries) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]LoreEntry(l))
}

// Scan implements [sql.Scanner].
func (l *LoreEntries) Scan(src any) error {
	return scanJSONList(src, (*[]LoreEntry)(l))
}

// StringList is an ordered list of strings persisted as a JSONB array.
type StringList []string

// Value implements [driver.Valuer]. A nil list is stored as an empty array.
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

// Scan implements [sql.Scanner].
func (s *StringList) Scan(src any) error {
	return scanJSONList(src, (*[]string)(s))
}

// Contains reports whether v is an element of s.
func (s StringList) Contains(v string) bool {
	return slices.Contains(s, v)
}

func scanJSONList[T any](src any, dst *[]T) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*dst = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for json list", src)
	}

	if len(raw) == 0 {
		*dst = nil
		return nil
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("error decoding json list: %w", err)
	}
	*dst = out
	return nil
}
