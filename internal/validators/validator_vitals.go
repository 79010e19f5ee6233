package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-vitals-keeper/models"
)

const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"

	FieldUserID        = "user_id"
	FieldAge           = "age"
	FieldBP            = "bp"
	FieldSugar         = "sugar"
	FieldSmoking       = "smoking"
	FieldFamilyHistory = "family_history"
)

// Clinically plausible bounds for a submitted reading. Values outside these
// ranges are rejected before classification.
const (
	MinAge   = 1
	MaxAge   = 120
	MinBP    = 70
	MaxBP    = 250
	MinSugar = 50
	MaxSugar = 500
)

type VitalsValidator struct {
}

// NewVitalsValidator returns a Validator for registration input
// (models.User) and submitted readings (models.HealthRecord).
func NewVitalsValidator() Validator {
	return &VitalsValidator{}
}

func (v *VitalsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.HealthRecord:
		return v.validateHealthRecord(ctx, value, fields...)
	case *models.HealthRecord:
		return v.validateHealthRecord(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isYesNo(answer string) bool {
	return answer == models.AnswerYes || answer == models.AnswerNo
}

func (v *VitalsValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(user.Name) == "" {
				return ErrNameRequired
			}
		case FieldEmail:
			if strings.TrimSpace(user.Email) == "" {
				return ErrEmailRequired
			}
		case FieldPassword:
			if strings.TrimSpace(user.Password) == "" {
				return ErrPasswordRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VitalsValidator) validateHealthRecord(ctx context.Context, record models.HealthRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldAge, FieldBP, FieldSugar, FieldSmoking, FieldFamilyHistory}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if record.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldAge:
			if record.Age < MinAge || record.Age > MaxAge {
				return ErrAgeOutOfRange
			}
		case FieldBP:
			if record.BP < MinBP || record.BP > MaxBP {
				return ErrBPOutOfRange
			}
		case FieldSugar:
			if record.Sugar < MinSugar || record.Sugar > MaxSugar {
				return ErrSugarOutOfRange
			}
		case FieldSmoking:
			if !isYesNo(record.Smoking) {
				return ErrInvalidSmoking
			}
		case FieldFamilyHistory:
			if !isYesNo(record.FamilyHistory) {
				return ErrInvalidFamilyHistory
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
