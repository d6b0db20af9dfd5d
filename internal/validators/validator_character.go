package validators

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/MKhiriev/char-archive/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	// FieldNew tells the SaveRequest rules that the request creates a
	// character, so slug and name become mandatory.
	FieldNew = "new"

	MaxNameLength  = 120
	MaxSlugLength  = 64
	MaxQuoteLength = 1000
	MaxBioLength   = 20000
	MaxURLLength   = 2048
	MaxHeight      = 100000

	// MaxImageSize caps a single uploaded image.
	MaxImageSize = 10 << 20
)

// CharacterValidator validates every archive input type: the client edit
// form, server save requests, login credentials and image files.
type CharacterValidator struct{}

func NewCharacterValidator() Validator {
	return &CharacterValidator{}
}

// Validate dispatches on the dynamic type of obj. Values and pointers are
// both accepted.
func (v *CharacterValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CharacterForm:
		return wrap(ErrInvalidCharacterForm, v.validateForm(value))
	case *models.CharacterForm:
		return wrap(ErrInvalidCharacterForm, v.validateForm(deref(value)))
	case models.SaveRequest:
		return wrap(ErrInvalidSaveRequest, v.validateSaveRequest(value, slices.Contains(fields, FieldNew)))
	case *models.SaveRequest:
		return wrap(ErrInvalidSaveRequest, v.validateSaveRequest(deref(value), slices.Contains(fields, FieldNew)))
	case models.Credentials:
		return wrap(ErrInvalidCredentials, v.validateCredentials(value))
	case *models.Credentials:
		return wrap(ErrInvalidCredentials, v.validateCredentials(deref(value)))
	case models.ImageFile:
		return wrap(ErrInvalidImage, v.validateImage(value))
	case *models.ImageFile:
		return wrap(ErrInvalidImage, v.validateImage(deref(value)))
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *CharacterValidator) validateForm(form models.CharacterForm) error {
	err := validation.ValidateStruct(&form,
		validation.Field(&form.Name,
			validation.Required,
			validation.By(notBlank),
			validation.RuneLength(1, MaxNameLength)),
		validation.Field(&form.Role, validation.By(enumString(func(n int) bool { return models.Role(n).Valid() }))),
		validation.Field(&form.Quote, validation.RuneLength(0, MaxQuoteLength)),
		validation.Field(&form.Bio, validation.RuneLength(0, MaxBioLength)),
		validation.Field(&form.Gender, validation.By(enumString(func(n int) bool { return models.Gender(n).Valid() }))),
		validation.Field(&form.Status, validation.By(enumString(func(n int) bool { return models.VitalStatus(n).Valid() }))),
		validation.Field(&form.Height, validation.By(intString(0, MaxHeight))),
		validation.Field(&form.BirthMonth, validation.By(intString(1, 12))),
		validation.Field(&form.BirthDay, validation.By(intString(1, 31))),
	)
	if err != nil {
		return err
	}

	month, day := strings.TrimSpace(form.BirthMonth), strings.TrimSpace(form.BirthDay)
	if month != "" && day != "" {
		m, _ := strconv.Atoi(month)
		d, _ := strconv.Atoi(day)
		if _, parseErr := time.Parse(time.DateOnly, fmt.Sprintf("2000-%02d-%02d", m, d)); parseErr != nil {
			return validation.Errors{"birthday": errors.New("is not a calendar date")}
		}
	}

	return nil
}

func (v *CharacterValidator) validateSaveRequest(req models.SaveRequest, isNew bool) error {
	if req.Character.IsEmpty() && req.Stats.IsEmpty() {
		return errors.New("nothing to save")
	}
	if req.ID != nil && *req.ID <= 0 {
		return validation.Errors{"id": errors.New("must be positive")}
	}

	c := req.Character
	charErr := validation.Errors{
		"slug":      validatePtr(c.Slug, isNew, validation.By(slugRule)),
		"name":      validatePtr(c.Name, isNew, validation.Required, validation.By(notBlank), validation.RuneLength(1, MaxNameLength)),
		"role":      validatePtr(c.Role, false, validation.By(validEnum)),
		"quote":     validatePtr(c.Quote, false, validation.RuneLength(0, MaxQuoteLength)),
		"bio":       validatePtr(c.Bio, false, validation.RuneLength(0, MaxBioLength)),
		"icon_url":  validatePtr(c.IconURL, false, validation.RuneLength(0, MaxURLLength)),
		"image_url": validatePtr(c.ImageURL, false, validation.RuneLength(0, MaxURLLength)),
		"labels":    validatePtr(c.Labels, false, validation.Each(validation.Required)),
		"gallery":   validatePtr(c.Gallery, false, validation.Each(validation.Required, validation.RuneLength(1, MaxURLLength))),
	}.Filter()

	s := req.Stats
	statsErr := validation.Errors{
		"gender":   validatePtr(s.Gender, false, validation.By(validEnum)),
		"status":   validatePtr(s.Status, false, validation.By(validEnum)),
		"height":   validatePtr(s.Height, false, validation.Min(0), validation.Max(MaxHeight)),
		"birthday": validatePtr(s.Birthday, false, validation.Date(time.DateOnly)),
	}.Filter()

	return errors.Join(charErr, statsErr)
}

func (v *CharacterValidator) validateCredentials(c models.Credentials) error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, validation.Required, is.EmailFormat),
		validation.Field(&c.Password, validation.Required),
	)
}

func (v *CharacterValidator) validateImage(f models.ImageFile) error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required, validation.By(notBlank)),
		validation.Field(&f.Data, validation.Required, validation.Length(1, MaxImageSize)),
		validation.Field(&f.ContentType, validation.By(imageContentType)),
	)
}

// ValidateSlug checks a slug used as an object folder and a lookup key.
func ValidateSlug(slug string) error {
	if err := slugRule(slug); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSlug, err)
	}
	return nil
}

func slugRule(value any) error {
	s, _ := value.(string)
	if s == "" {
		return errors.New("cannot be blank")
	}
	if len(s) > MaxSlugLength {
		return fmt.Errorf("must be at most %d bytes", MaxSlugLength)
	}
	if s == "." || s == ".." {
		return errors.New("is reserved")
	}
	if strings.ContainsAny(s, `/\?#%`) || strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return errors.New("must not contain whitespace, slashes or URL reserved characters")
	}
	if strings.ToLower(s) != s {
		return errors.New("must be lower case")
	}
	return nil
}

func notBlank(value any) error {
	s, _ := value.(string)
	if s != "" && strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

// intString accepts an empty string or a decimal integer within [lo, hi].
func intString(lo, hi int) validation.RuleFunc {
	return func(value any) error {
		s := strings.TrimSpace(value.(string))
		if s == "" {
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return errors.New("must be an integer")
		}
		if n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

// enumString accepts an empty string or an integer that valid accepts.
func enumString(valid func(int) bool) validation.RuleFunc {
	return func(value any) error {
		s := strings.TrimSpace(value.(string))
		if s == "" {
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return errors.New("must be an integer")
		}
		if !valid(n) {
			return errors.New("is not a known value")
		}
		return nil
	}
}

type enum interface {
	Valid() bool
}

func validEnum(value any) error {
	e, ok := value.(enum)
	if !ok || !e.Valid() {
		return errors.New("is not a known value")
	}
	return nil
}

func imageContentType(value any) error {
	s, _ := value.(string)
	if s == "" || strings.HasPrefix(s, "image/") {
		return nil
	}
	return errors.New("must be an image type")
}

// validatePtr applies rules to *p when p is set. A nil p fails only when required.
func validatePtr[T any](p *T, required bool, rules ...validation.Rule) error {
	if p == nil {
		if required {
			return errors.New("is required")
		}
		return nil
	}
	return validation.Validate(*p, rules...)
}

func wrap(sentinel, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
