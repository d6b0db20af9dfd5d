// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/internal/lore"
	"github.com/MKhiriev/char-archive/internal/store"
	"github.com/MKhiriev/char-archive/internal/validators"
	"github.com/MKhiriev/char-archive/models"
)

type importService struct {
	characterRepository store.CharacterRepository

	logger *logger.Logger
}

// NewImportService returns the ImportService used by archivectl.
func NewImportService(characters store.CharacterRepository, logger *logger.Logger) ImportService {
	return &importService{
		characterRepository: characters,
		logger:              logger,
	}
}

// Import converts archive and upserts every character with its stats in a
// single transaction. Records are written in slug order.
func (s *importService) Import(ctx context.Context, archive models.LegacyArchive, dryRun bool) (models.ImportReport, error) {
	log := logger.FromContext(ctx)

	characters, warnings := s.Convert(archive)
	report := models.ImportReport{
		Total:    len(archive),
		DryRun:   dryRun,
		Warnings: warnings,
	}

	for _, w := range warnings {
		log.Warn().Str("func", "*importService.Import").Msg(w)
	}

	if dryRun || len(characters) == 0 {
		return report, nil
	}

	written, err := s.characterRepository.Import(ctx, characters)
	if err != nil {
		log.Err(err).Str("func", "*importService.Import").Msg("import failed")
		return report, fmt.Errorf("import failed: %w", err)
	}
	report.Written = written

	return report, nil
}

// Convert maps legacy records onto characters. Records with an unusable
// slug or an empty name are skipped with a warning; every other oddity is
// repaired and reported.
func (s *importService) Convert(archive models.LegacyArchive) ([]models.Character, []string) {
	slugs := make([]string, 0, len(archive))
	for slug := range archive {
		slugs = append(slugs, slug)
	}
	slices.Sort(slugs)

	var (
		out      []models.Character
		warnings []string
	)
	for _, slug := range slugs {
		c, w, ok := convertLegacy(slug, archive[slug])
		warnings = append(warnings, w...)
		if ok {
			out = append(out, c)
		}
	}
	return out, warnings
}

func convertLegacy(slug string, legacy models.LegacyCharacter) (models.Character, []string, bool) {
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, slug+": "+fmt.Sprintf(format, args...))
	}

	if err := validators.ValidateSlug(slug); err != nil {
		warn("skipped: %v", err)
		return models.Character{}, warnings, false
	}
	name := strings.TrimSpace(legacy.Name)
	if name == "" {
		warn("skipped: record has no name")
		return models.Character{}, warnings, false
	}

	abilities, repairs := lore.ParseLegacyEntries(legacy.Abilities)
	for _, r := range repairs {
		warn("abilities %s", r)
	}
	relationships, repairs := lore.ParseLegacyEntries(legacy.Relationships)
	for _, r := range repairs {
		warn("relationships %s", r)
	}

	gallery := make(models.StringList, 0, len(legacy.Gallery))
	for _, u := range legacy.Gallery {
		if u = strings.TrimSpace(u); u != "" {
			gallery = append(gallery, u)
		}
	}

	c := models.Character{
		Slug:          slug,
		Name:          name,
		Role:          legacyRole(legacy, warn),
		Quote:         strings.TrimSpace(legacy.Quote),
		Bio:           strings.TrimSpace(legacy.Bio),
		Abilities:     abilities,
		Relationships: relationships,
		Trivias:       lore.ParseLegacyTrivias(legacy.Trivias),
		Labels:        lore.NormalizeLabels(legacy.Labels),
		Gallery:       gallery,
		IconURL:       strings.TrimSpace(legacy.Icon),
	}
	if len(gallery) > 0 {
		c.ImageURL = gallery[0]
	}
	if stats := legacyStats(legacy.Stats, warn); stats != nil {
		c.Stats = stats
	}

	return c, warnings, true
}

// legacyRole prefers the finer-grained subrole and falls back to role.
func legacyRole(legacy models.LegacyCharacter, warn func(string, ...any)) models.Role {
	for _, raw := range []models.FlexString{legacy.Subrole, legacy.Role} {
		text := strings.TrimSpace(raw.String())
		if text == "" {
			continue
		}
		if role, ok := parseRole(text); ok {
			return role
		}
		warn("unknown role %q, using Unclassified", text)
	}
	return models.RoleUnclassified
}

func parseRole(text string) (models.Role, bool) {
	if n, err := strconv.Atoi(text); err == nil {
		r := models.Role(n)
		return r, r.Valid()
	}
	for _, r := range models.Roles {
		if strings.EqualFold(text, r.SubLabel()) || strings.EqualFold(text, r.Label()) {
			return r, true
		}
	}
	if strings.EqualFold(text, "minor") {
		return models.RoleMinor, true
	}
	return models.RoleUnclassified, false
}

func legacyStats(legacy models.LegacyStats, warn func(string, ...any)) *models.Stats {
	var stats models.Stats
	set := false

	if age := strings.TrimSpace(legacy.Age.String()); age != "" {
		stats.Age, set = &age, true
	}
	if species := strings.TrimSpace(legacy.Species.String()); species != "" {
		stats.Species, set = &species, true
	}

	if text := strings.TrimSpace(legacy.Gender.String()); text != "" {
		if g, ok := parseGender(text); ok {
			stats.Gender, set = &g, true
		} else {
			warn("unknown gender %q dropped", text)
		}
	}
	if text := strings.TrimSpace(legacy.Status.String()); text != "" {
		if st, ok := parseStatus(text); ok {
			stats.Status, set = &st, true
		} else {
			warn("unknown status %q dropped", text)
		}
	}

	if text := strings.TrimSpace(legacy.Height.String()); text != "" {
		h, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(strings.ToLower(text), "cm")))
		if err == nil && h >= 0 && h <= validators.MaxHeight {
			stats.Height, set = &h, true
		} else {
			warn("height %q is not a number of centimetres, dropped", text)
		}
	}

	if text := strings.TrimSpace(legacy.Birthday.String()); text != "" {
		if b, ok := parseBirthday(text); ok {
			stats.Birthday, set = &b, true
		} else {
			warn("birthday %q not understood, dropped", text)
		}
	}

	if !set {
		return nil
	}
	return &stats
}

func parseGender(text string) (models.Gender, bool) {
	if n, err := strconv.Atoi(text); err == nil {
		g := models.Gender(n)
		return g, g.Valid()
	}
	for g := models.GenderUnknown; g <= models.GenderOther; g++ {
		if strings.EqualFold(text, g.Label()) {
			return g, true
		}
	}
	return models.GenderUnknown, false
}

func parseStatus(text string) (models.VitalStatus, bool) {
	if n, err := strconv.Atoi(text); err == nil {
		s := models.VitalStatus(n)
		return s, s.Valid()
	}
	for s := models.StatusUnknown; s <= models.StatusReincarnated; s++ {
		if strings.EqualFold(text, s.Label()) {
			return s, true
		}
	}
	return models.StatusUnknown, false
}

// parseBirthday accepts "YYYY-MM-DD", "MM-DD" and "January 2" forms and
// returns the stored "2000-MM-DD" form.
func parseBirthday(text string) (string, bool) {
	for _, layout := range []string{time.DateOnly, "01-02", "January 2", "Jan 2"} {
		t, err := time.Parse(layout, text)
		if err == nil {
			return fmt.Sprintf("2000-%02d-%02d", int(t.Month()), t.Day()), true
		}
	}
	return "", false
}
