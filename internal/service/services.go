package service

import (
	"github.com/MKhiriev/go-vitals-keeper/internal/config"
	"github.com/MKhiriev/go-vitals-keeper/internal/logger"
	"github.com/MKhiriev/go-vitals-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	HealthService  HealthService
	AdminService   AdminService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	healthService, err := NewHealthService(storages.HealthRecordRepository, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		HealthService:  healthService,
		AdminService:   NewAdminService(storages.AdminRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
