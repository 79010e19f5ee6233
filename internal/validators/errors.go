package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNameRequired     = errors.New("name is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")

	ErrInvalidUserID        = errors.New("invalid user ID")
	ErrAgeOutOfRange        = errors.New("age must be between 1 and 120")
	ErrBPOutOfRange         = errors.New("blood pressure must be between 70 and 250")
	ErrSugarOutOfRange      = errors.New("sugar level must be between 50 and 500")
	ErrInvalidSmoking       = errors.New("smoking must be yes or no")
	ErrInvalidFamilyHistory = errors.New("family history must be yes or no")
)
