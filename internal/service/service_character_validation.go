package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/internal/validators"
	"github.com/MKhiriev/char-archive/models"
)

// CharacterValidationService is a CharacterService decorator that validates
// save requests before forwarding them to the wrapped service.
type CharacterValidationService struct {
	inner     CharacterService
	validator validators.Validator
	logger    *logger.Logger
}

// NewCharacterValidationService returns the validation wrapper.
// Call Wrap to attach it to a concrete service.
func NewCharacterValidationService(logger *logger.Logger) CharacterServiceWrapper {
	return &CharacterValidationService{
		validator: validators.NewCharacterValidator(),
		logger:    logger,
	}
}

func (v *CharacterValidationService) Wrap(service CharacterService) CharacterService {
	v.inner = service
	return v
}

func (v *CharacterValidationService) ListCharacters(ctx context.Context) ([]models.Character, error) {
	return v.inner.ListCharacters(ctx)
}

func (v *CharacterValidationService) SaveCharacter(ctx context.Context, req models.SaveRequest) (models.SaveResponse, error) {
	var fields []string
	if req.IsNew() {
		fields = append(fields, validators.FieldNew)
	}

	if err := v.validator.Validate(ctx, req, fields...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*CharacterValidationService.SaveCharacter").Msg("save request rejected")
		return models.SaveResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SaveCharacter(ctx, req)
}

func (v *CharacterValidationService) DeleteCharacter(ctx context.Context, id int64) error {
	return v.inner.DeleteCharacter(ctx, id)
}
