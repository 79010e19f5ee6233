package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vitals-keeper/internal/config"
	"github.com/MKhiriev/go-vitals-keeper/internal/logger"
	"github.com/MKhiriev/go-vitals-keeper/internal/risk"
	"github.com/MKhiriev/go-vitals-keeper/internal/store"
	"github.com/MKhiriev/go-vitals-keeper/internal/validators"
	"github.com/MKhiriev/go-vitals-keeper/models"
)

// healthService is the concrete implementation of HealthService.
// It validates submitted readings, classifies them under the configured risk
// policy and persists the result via a HealthRecordRepository.
type healthService struct {
	// recordRepository is the data-access layer for health records.
	recordRepository store.HealthRecordRepository

	// validator enforces the reading input rules (ranges, yes/no answers)
	// before classification.
	validator validators.Validator

	// policy is the risk scoring policy applied to every submitted reading.
	// Fixed at construction from configuration.
	policy risk.Policy

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// recordFields are the reading inputs checked one by one so that every
// rejected value gets its own message in the resulting ValidationErrors.
var recordFields = []string{
	validators.FieldAge,
	validators.FieldBP,
	validators.FieldSugar,
	validators.FieldSmoking,
	validators.FieldFamilyHistory,
}

// NewHealthService constructs a HealthService applying the risk policy named
// in cfg. An unknown policy name is a configuration error.
func NewHealthService(recordRepository store.HealthRecordRepository, cfg config.App, logger *logger.Logger) (HealthService, error) {
	policy, err := risk.ParsePolicy(cfg.RiskPolicy)
	if err != nil {
		return nil, fmt.Errorf("error parsing risk policy: %w", err)
	}

	return &healthService{
		recordRepository: recordRepository,
		validator:        validators.NewVitalsValidator(),
		policy:           policy,
		logger:           logger,
	}, nil
}

// SubmitReading validates one reading, computes its risk category and
// persists it.
//
// Nothing is persisted when validation fails: the returned ValidationErrors
// carries one message per rejected field. The record's owner (UserID) must be
// set by the caller from the authenticated session.
func (s *healthService) SubmitReading(ctx context.Context, record models.HealthRecord) (models.HealthRecord, error) {
	log := logger.FromContext(ctx)

	if record.UserID <= 0 {
		log.Error().Msg("submitted reading has no owner")
		return models.HealthRecord{}, ErrInvalidDataProvided
	}

	validationErrors := ValidationErrors{}
	for _, field := range recordFields {
		if err := s.validator.Validate(ctx, record, field); err != nil {
			validationErrors[field] = err.Error()
		}
	}
	if len(validationErrors) > 0 {
		log.Error().Int64("user_id", record.UserID).Msg("invalid reading data provided")
		return models.HealthRecord{}, validationErrors
	}

	category := risk.Classify(s.policy, risk.Factors{
		Age:           record.Age,
		BP:            record.BP,
		Sugar:         record.Sugar,
		Smoking:       record.Smoking == models.AnswerYes,
		FamilyHistory: record.FamilyHistory == models.AnswerYes,
	})
	record.Risk = string(category)

	savedRecord, err := s.recordRepository.SaveRecord(ctx, record)
	if err != nil {
		log.Err(err).Int64("user_id", record.UserID).Msg("saving health record ended with error")
		return models.HealthRecord{}, fmt.Errorf("saving health record ended with error: %w", err)
	}

	return savedRecord, nil
}

// Dashboard returns every reading owned by userID, most recent first,
// together with a flag reporting whether any of them was classified High.
func (s *healthService) Dashboard(ctx context.Context, userID int64) (models.Dashboard, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return models.Dashboard{}, ErrInvalidDataProvided
	}

	records, err := s.recordRepository.GetRecordsByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing health records ended with error")
		return models.Dashboard{}, fmt.Errorf("listing health records ended with error: %w", err)
	}

	dashboard := models.Dashboard{Records: records}
	for _, record := range records {
		if record.Risk == string(risk.High) {
			dashboard.HasHighRisk = true
			break
		}
	}

	return dashboard, nil
}
