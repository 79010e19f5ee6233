package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vitals-keeper/internal/logger"
	"github.com/MKhiriev/go-vitals-keeper/models"
)

// adminRepository is the SQL-backed implementation of [AdminRepository].
// It serves the aggregate queries behind the administrative summary view.
type adminRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAdminRepository constructs an [AdminRepository] backed by the provided
// database connection and logger.
func NewAdminRepository(db *DB, logger *logger.Logger) AdminRepository {
	logger.Debug().Msg("creating admin repository")
	return &adminRepository{
		db:     db,
		logger: logger,
	}
}

// ListUsers returns the non-sensitive projection (name, email) of every
// registered account, ordered by registration time.
func (r *adminRepository) ListUsers(ctx context.Context) ([]models.UserInfo, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("name", "email").
		From(models.User{}.TableName()).
		OrderBy("user_id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.ListUsers").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.ListUsers").Msg("failed to execute user listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.UserInfo, 0, 16)

	for rows.Next() {
		var item models.UserInfo
		if scanErr := rows.Scan(&item.Name, &item.Email); scanErr != nil {
			log.Err(scanErr).Str("func", "*adminRepository.ListUsers").Msg("error scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		users = append(users, item)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*adminRepository.ListUsers").Msg("iteration error after reading result set")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// CountRecordsByRisk aggregates health records per risk category in a single
// GROUP BY query and derives the overall total from the per-category counts.
func (r *adminRepository) CountRecordsByRisk(ctx context.Context) (models.RiskTotals, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("risk", "COUNT(*)").
		From(models.HealthRecord{}.TableName()).
		GroupBy("risk").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.CountRecordsByRisk").Msg("error building aggregate query")
		return models.RiskTotals{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.CountRecordsByRisk").Msg("failed to execute aggregate query")
		return models.RiskTotals{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var totals models.RiskTotals

	for rows.Next() {
		var category string
		var count int64

		if scanErr := rows.Scan(&category, &count); scanErr != nil {
			log.Err(scanErr).Str("func", "*adminRepository.CountRecordsByRisk").Msg("error scanning aggregate row")
			return models.RiskTotals{}, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		totals.Total += count
		switch category {
		case "High":
			totals.High = count
		case "Medium":
			totals.Medium = count
		case "Low":
			totals.Low = count
		}
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*adminRepository.CountRecordsByRisk").Msg("iteration error after reading result set")
		return models.RiskTotals{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return totals, nil
}
