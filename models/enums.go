// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role classifies a character's narrative function.
type Role int

const (
	RoleUnclassified  Role = 0
	RoleProtagonist   Role = 1
	RoleAntagonist    Role = 2
	RoleDeuteragonist Role = 3
	RoleSupporting    Role = 4
	RoleTritagonist   Role = 5
	RoleMinor         Role = 6
)

// Roles lists every known role in ascending order.
var Roles = []Role{
	RoleUnclassified, RoleProtagonist, RoleAntagonist, RoleDeuteragonist,
	RoleSupporting, RoleTritagonist, RoleMinor,
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r >= RoleUnclassified && r <= RoleMinor
}

// Label is the short card label. Only the three headline roles have one;
// everything else is shown as UNCLASSIFIED.
func (r Role) Label() string {
	switch r {
	case RoleProtagonist:
		return "PROTAGONIST"
	case RoleAntagonist:
		return "ANTAGONIST"
	default:
		return "UNCLASSIFIED"
	}
}

// SubLabel is the profile-page label covering every role.
func (r Role) SubLabel() string {
	switch r {
	case RoleProtagonist:
		return "Protagonist"
	case RoleAntagonist:
		return "Antagonist"
	case RoleDeuteragonist:
		return "Deuteragonist"
	case RoleSupporting:
		return "Supporting"
	case RoleTritagonist:
		return "Tritagonist"
	case RoleMinor:
		return "Minor Character"
	default:
		return "Unclassified"
	}
}

// Gender is stored as a small integer; 0 means unknown.
type Gender int

const (
	GenderUnknown   Gender = 0
	GenderMale      Gender = 1
	GenderFemale    Gender = 2
	GenderNonBinary Gender = 3
	GenderOther     Gender = 4
)

// Valid reports whether g is in the 0..4 range.
func (g Gender) Valid() bool {
	return g >= GenderUnknown && g <= GenderOther
}

func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "MALE"
	case GenderFemale:
		return "FEMALE"
	case GenderNonBinary:
		return "NON-BINARY"
	case GenderOther:
		return "OTHER"
	default:
		return "UNKNOWN"
	}
}

// VitalStatus tells whether a character is alive.
type VitalStatus int

const (
	StatusUnknown      VitalStatus = 0
	StatusAlive        VitalStatus = 1
	StatusDeceased     VitalStatus = 2
	StatusReincarnated VitalStatus = 3
)

// Valid reports whether s is in the 0..3 range.
func (s VitalStatus) Valid() bool {
	return s >= StatusUnknown && s <= StatusReincarnated
}

func (s VitalStatus) Label() string {
	switch s {
	case StatusAlive:
		return "ALIVE"
	case StatusDeceased:
		return "DECEASED"
	case StatusReincarnated:
		return "REINCARNATED"
	default:
		return "UNKNOWN"
	}
}
