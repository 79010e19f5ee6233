package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vitals-keeper/internal/logger"
	"github.com/MKhiriev/go-vitals-keeper/internal/mock"
	"github.com/MKhiriev/go-vitals-keeper/internal/validators"
	"github.com/MKhiriev/go-vitals-keeper/models"
)

func newTestHealthSvc(t *testing.T, ctrl *gomock.Controller, policy string) (*healthService, *mock.MockHealthRecordRepository) {
	t.Helper()

	mockRecords := mock.NewMockHealthRecordRepository(ctrl)

	cfg := testAppConfig()
	cfg.RiskPolicy = policy

	svc, err := NewHealthService(mockRecords, cfg, logger.NewLogger("test"))
	require.NoError(t, err)

	return svc.(*healthService), mockRecords
}

func validReading() models.HealthRecord {
	return models.HealthRecord{
		UserID:        1,
		Age:           45,
		BP:            118,
		Sugar:         95,
		Smoking:       models.AnswerNo,
		FamilyHistory: models.AnswerNo,
	}
}

// ── NewHealthService ─────────────────────────────────────────────────────────

func TestNewHealthService_UnknownPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecords := mock.NewMockHealthRecordRepository(ctrl)

	cfg := testAppConfig()
	cfg.RiskPolicy = "astrology"

	_, err := NewHealthService(mockRecords, cfg, logger.NewLogger("test"))
	require.Error(t, err)
}

// ── SubmitReading ────────────────────────────────────────────────────────────

func TestHealthService_SubmitReading_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRecords := newTestHealthSvc(t, ctrl, "weighted")
	ctx := context.Background()

	reading := validReading()

	mockRecords.EXPECT().SaveRecord(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.HealthRecord) (models.HealthRecord, error) {
			assert.Equal(t, "Low", r.Risk, "risk category must be computed before persistence")

			r.RecordID = 11
			return r, nil
		},
	)

	saved, err := svc.SubmitReading(ctx, reading)
	require.NoError(t, err)
	assert.Equal(t, int64(11), saved.RecordID)
	assert.Equal(t, "Low", saved.Risk)
}

func TestHealthService_SubmitReading_HighRiskWeighted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRecords := newTestHealthSvc(t, ctrl, "weighted")
	ctx := context.Background()

	reading := validReading()
	reading.BP = 190
	reading.Sugar = 240
	reading.Smoking = models.AnswerYes

	mockRecords.EXPECT().SaveRecord(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.HealthRecord) (models.HealthRecord, error) {
			assert.Equal(t, "High", r.Risk)
			return r, nil
		},
	)

	_, err := svc.SubmitReading(ctx, reading)
	require.NoError(t, err)
}

func TestHealthService_SubmitReading_ThresholdPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRecords := newTestHealthSvc(t, ctrl, "threshold")
	ctx := context.Background()

	// a single severe factor is enough under the threshold policy
	reading := validReading()
	reading.Sugar = 210

	mockRecords.EXPECT().SaveRecord(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.HealthRecord) (models.HealthRecord, error) {
			assert.Equal(t, "High", r.Risk)
			return r, nil
		},
	)

	_, err := svc.SubmitReading(ctx, reading)
	require.NoError(t, err)
}

func TestHealthService_SubmitReading_ValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestHealthSvc(t, ctrl, "weighted")
	ctx := context.Background()

	// no repository call expected: nothing may be persisted
	reading := validReading()
	reading.Age = 121
	reading.BP = 69
	reading.Smoking = "maybe"

	_, err := svc.SubmitReading(ctx, reading)
	require.Error(t, err)

	var validationErrors ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	assert.Len(t, validationErrors, 3)
	assert.Contains(t, validationErrors, validators.FieldAge)
	assert.Contains(t, validationErrors, validators.FieldBP)
	assert.Contains(t, validationErrors, validators.FieldSmoking)
}

func TestHealthService_SubmitReading_NoOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestHealthSvc(t, ctrl, "weighted")
	ctx := context.Background()

	reading := validReading()
	reading.UserID = 0

	_, err := svc.SubmitReading(ctx, reading)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestHealthService_SubmitReading_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRecords := newTestHealthSvc(t, ctrl, "weighted")
	ctx := context.Background()

	mockRecords.EXPECT().SaveRecord(ctx, gomock.Any()).
		Return(models.HealthRecord{}, errors.New("disk full"))

	_, err := svc.SubmitReading(ctx, validReading())
	require.Error(t, err)
}

// ── Dashboard ────────────────────────────────────────────────────────────────

func TestHealthService_Dashboard_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRecords := newTestHealthSvc(t, ctrl, "weighted")
	ctx := context.Background()

	records := []models.HealthRecord{
		{RecordID: 2, UserID: 1, Risk: "Medium"},
		{RecordID: 1, UserID: 1, Risk: "Low"},
	}

	mockRecords.EXPECT().GetRecordsByUser(ctx, int64(1)).Return(records, nil)

	dashboard, err := svc.Dashboard(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, dashboard.Records, 2)
	assert.False(t, dashboard.HasHighRisk)
}

func TestHealthService_Dashboard_HighRiskFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRecords := newTestHealthSvc(t, ctrl, "weighted")
	ctx := context.Background()

	records := []models.HealthRecord{
		{RecordID: 3, UserID: 1, Risk: "Low"},
		{RecordID: 2, UserID: 1, Risk: "High"},
	}

	mockRecords.EXPECT().GetRecordsByUser(ctx, int64(1)).Return(records, nil)

	dashboard, err := svc.Dashboard(ctx, 1)
	require.NoError(t, err)
	assert.True(t, dashboard.HasHighRisk)
}

func TestHealthService_Dashboard_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRecords := newTestHealthSvc(t, ctrl, "weighted")
	ctx := context.Background()

	mockRecords.EXPECT().GetRecordsByUser(ctx, int64(1)).Return([]models.HealthRecord{}, nil)

	dashboard, err := svc.Dashboard(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, dashboard.Records)
	assert.False(t, dashboard.HasHighRisk)
}

func TestHealthService_Dashboard_InvalidUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestHealthSvc(t, ctrl, "weighted")
	ctx := context.Background()

	_, err := svc.Dashboard(ctx, 0)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestHealthService_Dashboard_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRecords := newTestHealthSvc(t, ctrl, "weighted")
	ctx := context.Background()

	mockRecords.EXPECT().GetRecordsByUser(ctx, int64(1)).
		Return(nil, errors.New("connection reset"))

	_, err := svc.Dashboard(ctx, 1)
	require.Error(t, err)
}
