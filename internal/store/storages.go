package store

import (
	"context"

	"github.com/MKhiriev/go-vitals-keeper/internal/config"
	"github.com/MKhiriev/go-vitals-keeper/internal/logger"
)

// Storages aggregates every repository backed by the shared database
// connection pool.
type Storages struct {
	UserRepository         UserRepository
	HealthRecordRepository HealthRecordRepository
	AdminRepository        AdminRepository
}

// NewStorages opens the configured database backend, migrates the schema,
// and wires all repositories to the resulting connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:         NewUserRepository(db, logger),
		HealthRecordRepository: NewHealthRecordRepository(db, logger),
		AdminRepository:        NewAdminRepository(db, logger),
	}, nil
}
