package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-vitals-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, email string, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}

type HealthService interface {
	SubmitReading(ctx context.Context, record models.HealthRecord) (models.HealthRecord, error)
	Dashboard(ctx context.Context, userID int64) (models.Dashboard, error)
}

type AdminService interface {
	Summary(ctx context.Context) (models.AdminSummary, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
