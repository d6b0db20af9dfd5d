package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/char-archive/internal/lore"
	"github.com/MKhiriev/char-archive/models"
)

// slugFromName returns the first whitespace-separated word of name, lowercased.
func slugFromName(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}
	return strings.ToLower(words[0])
}

// normalizeForm converts the validated raw form into typed field sets.
// Image and gallery URLs are filled in by the caller once uploads finish.
func normalizeForm(form models.CharacterForm, extra models.LoreExtras) (models.CharacterFields, models.StatsFields) {
	role := models.Role(atoiOr(form.Role, int(models.RoleUnclassified)))

	fields := models.CharacterFields{
		Name:          models.Ptr(strings.TrimSpace(form.Name)),
		Role:          &role,
		Quote:         models.Ptr(strings.TrimSpace(form.Quote)),
		Bio:           models.Ptr(strings.TrimSpace(form.Bio)),
		Abilities:     models.Ptr(nonNilEntries(extra.Abilities)),
		Relationships: models.Ptr(nonNilEntries(extra.Relationships)),
		Trivias:       models.Ptr(nonNilList(extra.Trivias)),
	}
	if extra.Labels != nil {
		fields.Labels = models.Ptr(lore.NormalizeLabels(extra.Labels))
	}

	return fields, normalizeStats(form)
}

// normalizeStats keeps only the stats fields the form actually filled in.
func normalizeStats(form models.CharacterForm) models.StatsFields {
	var stats models.StatsFields

	if v := strings.TrimSpace(form.Age); v != "" {
		stats.Age = &v
	}
	if v := strings.TrimSpace(form.Species); v != "" {
		stats.Species = &v
	}
	if v := strings.TrimSpace(form.Gender); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			stats.Gender = models.Ptr(models.Gender(n))
		}
	}
	if v := strings.TrimSpace(form.Status); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			stats.Status = models.Ptr(models.VitalStatus(n))
		}
	}
	if v := strings.TrimSpace(form.Height); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			stats.Height = &n
		}
	}

	month, monthErr := strconv.Atoi(strings.TrimSpace(form.BirthMonth))
	day, dayErr := strconv.Atoi(strings.TrimSpace(form.BirthDay))
	if monthErr == nil && dayErr == nil {
		stats.Birthday = models.Ptr(fmt.Sprintf("2000-%02d-%02d", month, day))
	}

	return stats
}

// applyStats overlays the written fields onto base, mirroring the upsert.
func applyStats(base *models.Stats, fields models.StatsFields) *models.Stats {
	if base == nil && fields.IsEmpty() {
		return nil
	}

	var out models.Stats
	if base != nil {
		out = base.Clone()
	}
	if fields.Age != nil {
		out.Age = fields.Age
	}
	if fields.Gender != nil {
		out.Gender = fields.Gender
	}
	if fields.Species != nil {
		out.Species = fields.Species
	}
	if fields.Height != nil {
		out.Height = fields.Height
	}
	if fields.Birthday != nil {
		out.Birthday = fields.Birthday
	}
	if fields.Status != nil {
		out.Status = fields.Status
	}
	return &out
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}

func nonNilEntries(l models.LoreEntries) models.LoreEntries {
	if l == nil {
		return models.LoreEntries{}
	}
	return l
}

func nonNilList(l models.StringList) models.StringList {
	if l == nil {
		return models.StringList{}
	}
	return l
}
