package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidCharacterForm = errors.New("invalid character form")
	ErrInvalidSaveRequest   = errors.New("invalid save request")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidImage         = errors.New("invalid image")
	ErrInvalidSlug          = errors.New("invalid slug")
)
