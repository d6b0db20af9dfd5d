package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/internal/lore"
	"github.com/MKhiriev/char-archive/internal/store"
	"github.com/MKhiriev/char-archive/models"
)

type characterService struct {
	characterRepository store.CharacterRepository

	logger *logger.Logger
}

// NewCharacterService returns the CharacterService backed by the character
// table. Validation is layered on top with CharacterServiceWrapper.
func NewCharacterService(characters store.CharacterRepository, logger *logger.Logger) CharacterService {
	logger.Debug().Str("func", "NewCharacterService").Msg("character service created")
	return &characterService{
		characterRepository: characters,
		logger:              logger,
	}
}

// ListCharacters returns every character with its stats, ordered by name.
func (s *characterService) ListCharacters(ctx context.Context) ([]models.Character, error) {
	list, err := s.characterRepository.FetchAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*characterService.ListCharacters").Msg("fetching characters failed")
		return nil, fmt.Errorf("fetching characters failed: %w", err)
	}
	if list == nil {
		list = []models.Character{}
	}
	return list, nil
}

// SaveCharacter inserts or updates a character and its stats in one
// transaction. New characters without labels receive the default label.
func (s *characterService) SaveCharacter(ctx context.Context, req models.SaveRequest) (models.SaveResponse, error) {
	log := logger.FromContext(ctx)

	if req.Character.Labels != nil {
		req.Character.Labels = models.Ptr(lore.NormalizeLabels(*req.Character.Labels))
	} else if req.IsNew() {
		req.Character.Labels = models.Ptr(models.StringList{lore.DefaultLabel})
	}

	resp, err := s.characterRepository.Save(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*characterService.SaveCharacter").Bool("new", req.IsNew()).Msg("saving character failed")
		return models.SaveResponse{}, fmt.Errorf("saving character failed: %w", err)
	}

	log.Info().Int64("character_id", resp.ID).Bool("created", resp.Created).Msg("character saved")
	return resp, nil
}

// DeleteCharacter removes the character row; its stats cascade.
func (s *characterService) DeleteCharacter(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if id <= 0 {
		return ErrInvalidDataProvided
	}

	if err := s.characterRepository.Delete(ctx, id); err != nil {
		log.Err(err).Str("func", "*characterService.DeleteCharacter").Int64("character_id", id).Msg("deleting character failed")
		return fmt.Errorf("deleting character failed: %w", err)
	}

	log.Info().Int64("character_id", id).Msg("character deleted")
	return nil
}
