// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/internal/validators"
	"github.com/MKhiriev/char-archive/models"
	"golang.org/x/sync/errgroup"
)

// localURLPrefix marks optimistic image URLs that point at a staged file.
const localURLPrefix = "local:"

type clientArchiveService struct {
	characters ClientCharacterService
	notifier   Notifier
	validator  validators.Validator

	mu   sync.RWMutex
	list []models.Character

	saving     atomic.Bool
	background sync.WaitGroup

	now    func() time.Time
	logger *logger.Logger
}

func NewClientArchiveService(characters ClientCharacterService, notifier Notifier, logger *logger.Logger) ClientArchiveService {
	return &clientArchiveService{
		characters: characters,
		notifier:   notifier,
		validator:  validators.NewCharacterValidator(),
		now:        time.Now,
		logger:     logger,
	}
}

func (s *clientArchiveService) Characters() []models.Character {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Character, len(s.list))
	for i, c := range s.list {
		out[i] = c.Clone()
	}
	return out
}

func (s *clientArchiveService) Refresh(ctx context.Context) error {
	list, err := s.characters.FetchAll(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.list = list
	s.mu.Unlock()
	return nil
}

func (s *clientArchiveService) Saving() bool {
	return s.saving.Load()
}

func (s *clientArchiveService) Wait() {
	s.background.Wait()
}

// Save runs the save workflow. See ClientArchiveService.
//
// Optimistic changes are never rolled back; the refetch that ends every
// persisted or failed save replaces them.
func (s *clientArchiveService) Save(ctx context.Context, input models.SaveInput, onDone func()) (models.SaveReport, error) {
	if !s.saving.CompareAndSwap(false, true) {
		return models.SaveReport{}, ErrSaveInProgress
	}
	defer func() {
		s.saving.Store(false)
		if onDone != nil {
			onDone()
		}
	}()

	if err := s.validator.Validate(ctx, input.Form); err != nil {
		s.notifier.Alert("Invalid character data: " + err.Error())
		return models.SaveReport{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	isNew := input.Editing == nil
	var previous models.Character
	slug := slugFromName(input.Form.Name)
	if !isNew {
		previous = input.Editing.Clone()
		slug = previous.Slug
	}
	if err := validators.ValidateSlug(slug); err != nil {
		s.notifier.Alert("Invalid character data: " + err.Error())
		return models.SaveReport{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	fields, stats := normalizeForm(input.Form, input.Extra)
	s.project(input, previous, slug, fields, stats)

	report := models.SaveReport{Created: isNew}

	mainURL := s.uploadSlot(ctx, input.MainFile, input.ClearMain, previous.ImageURL, slug, models.ImageMain, &report)
	iconURL := s.uploadSlot(ctx, input.IconFile, input.ClearIcon, previous.IconURL, slug, models.ImageIcon, &report)

	baseGallery := input.Extra.RetainedGallery
	if baseGallery == nil {
		baseGallery = previous.Gallery
	}
	gallery := append(slices.Clone(nonNilList(baseGallery)), s.uploadGallery(ctx, input.Extra.GalleryFiles, slug, &report)...)

	if !isNew {
		s.cleanupStale(ctx, previous, mainURL, iconURL, input.Extra.RetainedGallery)
	}

	fields.ImageURL = &mainURL
	fields.IconURL = &iconURL
	fields.Gallery = &gallery

	var id *int64
	if isNew {
		fields.Slug = &slug
	} else {
		id = &previous.ID
	}

	savedID, persistErr := s.characters.Save(ctx, fields, stats, id)
	switch {
	case persistErr != nil:
		s.logger.Err(persistErr).Str("slug", slug).Msg("saving character failed")
		s.notifier.Alert("Failed to save character data: " + persistErr.Error())
	case len(report.UploadWarnings) > 0:
		s.notifier.Alert(fmt.Sprintf(
			"Character saved, BUT these images failed to upload: %s. Please try uploading them again.",
			strings.Join(report.UploadWarnings, ", "),
		))
	default:
		s.notifier.Alert("Character saved successfully!")
	}
	if persistErr == nil {
		report.ID = savedID
		report.Persisted = true
	}

	// The list is refetched even after a failed persist so the projection
	// is replaced by what the server holds.
	if err := s.Refresh(ctx); err != nil {
		s.logger.Err(err).Msg("refetch after save failed")
		s.notifier.Alert(fmt.Sprintf("Critical Sync Error: %s. The page will reload.", err.Error()))
		s.notifier.Reload()
		return report, errors.Join(persistErr, fmt.Errorf("%w: %w", ErrSyncFailed, err))
	}

	return report, persistErr
}

// project applies the submission to the cached list before any network call.
func (s *clientArchiveService) project(input models.SaveInput, previous models.Character, slug string, fields models.CharacterFields, stats models.StatsFields) {
	projected := previous.Clone()
	if input.Editing == nil {
		projected = models.Character{ID: s.now().UnixMilli(), Slug: slug, CreatedAt: s.now()}
	}

	projected.Name = *fields.Name
	projected.Role = *fields.Role
	projected.Quote = *fields.Quote
	projected.Bio = *fields.Bio
	projected.Abilities = *fields.Abilities
	projected.Relationships = *fields.Relationships
	projected.Trivias = *fields.Trivias
	if fields.Labels != nil {
		projected.Labels = *fields.Labels
	}
	projected.Stats = applyStats(previous.Stats, stats)
	projected.ImageURL = projectedURL(input.MainFile, input.ClearMain, previous.ImageURL)
	projected.IconURL = projectedURL(input.IconFile, input.ClearIcon, previous.IconURL)

	gallery := input.Extra.RetainedGallery
	if gallery == nil {
		gallery = previous.Gallery
	}
	projected.Gallery = slices.Clone(nonNilList(gallery))
	for _, f := range input.Extra.GalleryFiles {
		projected.Gallery = append(projected.Gallery, localURLPrefix+f.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Editing == nil {
		s.list = append([]models.Character{projected}, s.list...)
		return
	}
	for i := range s.list {
		if s.list[i].ID == projected.ID {
			s.list[i] = projected
			return
		}
	}
	s.list = append([]models.Character{projected}, s.list...)
}

func projectedURL(file *models.ImageFile, clear bool, previous string) string {
	switch {
	case file != nil:
		return localURLPrefix + file.Name
	case clear:
		return ""
	default:
		return previous
	}
}

// uploadSlot uploads a main or icon file. On failure the warning is recorded
// and the previous URL is kept.
func (s *clientArchiveService) uploadSlot(ctx context.Context, file *models.ImageFile, clear bool, previous, slug string, kind models.ImageKind, report *models.SaveReport) string {
	if file == nil {
		if clear {
			return ""
		}
		return previous
	}

	url, err := s.characters.UploadImage(ctx, *file, slug, kind)
	if err != nil {
		s.logger.Warn().Err(err).Str("file", file.Name).Str("kind", string(kind)).Msg("image upload failed")
		report.UploadWarnings = append(report.UploadWarnings, kind.WarningLabel())
		return previous
	}
	return url
}

// uploadGallery uploads gallery files concurrently and returns the new URLs
// in submission order, skipping failed uploads.
func (s *clientArchiveService) uploadGallery(ctx context.Context, files []models.ImageFile, slug string, report *models.SaveReport) []string {
	if len(files) == 0 {
		return nil
	}

	urls := make([]string, len(files))
	errs := make([]error, len(files))

	var g errgroup.Group
	for i, f := range files {
		g.Go(func() error {
			urls[i], errs[i] = s.characters.UploadImage(ctx, f, slug, models.ImageGallery)
			return nil
		})
	}
	_ = g.Wait()

	out := make([]string, 0, len(files))
	for i, f := range files {
		if errs[i] != nil {
			s.logger.Warn().Err(errs[i]).Str("file", f.Name).Msg("gallery upload failed")
			report.UploadWarnings = append(report.UploadWarnings, fmt.Sprintf("%s (%s)", models.ImageGallery.WarningLabel(), f.Name))
			continue
		}
		out = append(out, urls[i])
	}
	return out
}

// cleanupStale deletes images the edit replaced or dropped. Deletions run in
// the background and only log failures.
func (s *clientArchiveService) cleanupStale(ctx context.Context, previous models.Character, mainURL, iconURL string, retained models.StringList) {
	var stale []string
	if previous.ImageURL != "" && previous.ImageURL != mainURL {
		stale = append(stale, previous.ImageURL)
	}
	if previous.IconURL != "" && previous.IconURL != iconURL {
		stale = append(stale, previous.IconURL)
	}
	if retained != nil {
		for _, u := range previous.Gallery {
			if !retained.Contains(u) {
				stale = append(stale, u)
			}
		}
	}

	bg := context.WithoutCancel(ctx)
	for _, u := range stale {
		s.background.Add(1)
		go func() {
			defer s.background.Done()
			if err := s.characters.DeleteImage(bg, u); err != nil {
				s.logger.Warn().Err(err).Str("url", u).Msg("stale image cleanup failed")
			}
		}()
	}
}

// Delete asks for confirmation, removes the character optimistically and
// restores the exact previous list when the delete fails.
func (s *clientArchiveService) Delete(ctx context.Context, id int64, slug string) error {
	if !s.notifier.Confirm(fmt.Sprintf("CONFIRM PERMANENT DELETION OF %s?", strings.ToUpper(slug))) {
		return nil
	}

	s.mu.Lock()
	snapshot := slices.Clone(s.list)
	s.list = slices.DeleteFunc(slices.Clone(s.list), func(c models.Character) bool { return c.ID == id })
	s.mu.Unlock()

	if err := s.characters.Delete(ctx, id, slug); err != nil {
		s.logger.Err(err).Int64("character_id", id).Msg("deleting character failed")

		s.mu.Lock()
		s.list = snapshot
		s.mu.Unlock()

		s.notifier.Alert("Deletion Error: " + err.Error())
		return err
	}

	s.notifier.Alert("Character deleted successfully.")
	return nil
}
