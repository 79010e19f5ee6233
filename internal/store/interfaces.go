package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-vitals-keeper/models"
)

// UserRepository persists and looks up registered accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with
	// server-assigned fields populated. A duplicate email yields
	// [ErrEmailAlreadyRegistered].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves the account registered under email.
	// Returns [ErrNoUserWasFound] when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID retrieves the account with the given identifier.
	// Returns [ErrNoUserWasFound] when no such account exists.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// HealthRecordRepository persists and lists submitted vitals readings.
type HealthRecordRepository interface {
	// SaveRecord persists one health record and returns it with
	// server-assigned fields (RecordID, CreatedAt) populated.
	SaveRecord(ctx context.Context, record models.HealthRecord) (models.HealthRecord, error)

	// GetRecordsByUser returns all records owned by userID ordered most
	// recent first. An account with no records yields an empty slice.
	GetRecordsByUser(ctx context.Context, userID int64) ([]models.HealthRecord, error)
}

// AdminRepository serves the aggregate administrative summary.
type AdminRepository interface {
	// ListUsers returns the name/email projection of every account.
	ListUsers(ctx context.Context) ([]models.UserInfo, error)

	// CountRecordsByRisk returns the number of health records per risk
	// category plus the overall total.
	CountRecordsByRisk(ctx context.Context) (models.RiskTotals, error)
}
