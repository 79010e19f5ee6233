package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vitals-keeper/internal/logger"
	"github.com/MKhiriev/go-vitals-keeper/internal/store"
	"github.com/MKhiriev/go-vitals-keeper/models"
)

// adminService is the concrete implementation of AdminService backing the
// administrative summary view.
type adminService struct {
	adminRepository store.AdminRepository

	logger *logger.Logger
}

// NewAdminService constructs an AdminService wired to the given AdminRepository.
func NewAdminService(adminRepository store.AdminRepository, logger *logger.Logger) AdminService {
	return &adminService{
		adminRepository: adminRepository,
		logger:          logger,
	}
}

// Summary collects the registered-user listing and the per-category record
// totals into one administrative report. Callers are responsible for the
// admin role check; the service itself performs no authorisation.
func (s *adminService) Summary(ctx context.Context) (models.AdminSummary, error) {
	log := logger.FromContext(ctx)

	users, err := s.adminRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users ended with error")
		return models.AdminSummary{}, fmt.Errorf("listing users ended with error: %w", err)
	}

	totals, err := s.adminRepository.CountRecordsByRisk(ctx)
	if err != nil {
		log.Err(err).Msg("counting records by risk ended with error")
		return models.AdminSummary{}, fmt.Errorf("counting records by risk ended with error: %w", err)
	}

	return models.AdminSummary{
		Users:  users,
		Totals: totals,
	}, nil
}
