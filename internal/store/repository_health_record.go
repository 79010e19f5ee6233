package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vitals-keeper/internal/logger"
	"github.com/MKhiriev/go-vitals-keeper/models"
)

// healthRecordRepository is the SQL-backed implementation of
// [HealthRecordRepository]. It executes all reading CRUD operations against
// the "health_records" table using the embedded [*DB] connection.
//
// Records are write-once: the repository exposes no update or delete path,
// matching the immutability of a submitted reading.
type healthRecordRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewHealthRecordRepository constructs a [HealthRecordRepository] backed by
// the provided database connection and logger.
func NewHealthRecordRepository(db *DB, logger *logger.Logger) HealthRecordRepository {
	logger.Debug().Msg("creating health record repository")
	return &healthRecordRepository{
		db:     db,
		logger: logger,
	}
}

// SaveRecord persists one submitted reading together with its computed risk
// category and returns the stored row with server-assigned fields
// (RecordID, CreatedAt) populated.
func (r *healthRecordRepository) SaveRecord(ctx context.Context, record models.HealthRecord) (models.HealthRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(record.TableName()).
		Columns("user_id", "age", "bp", "sugar", "smoking", "family_history", "risk").
		Values(record.UserID, record.Age, record.BP, record.Sugar, record.Smoking, record.FamilyHistory, record.Risk).
		Suffix("RETURNING record_id, created_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*healthRecordRepository.SaveRecord").Msg("error building insert query")
		return models.HealthRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// transient failures (lock contention, serialization rollbacks) are
	// retried by withRetry before the error reaches the service layer
	insertErr := r.db.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, query, args...)
		if err := row.Err(); err != nil {
			log.Err(err).
				Str("func", "*healthRecordRepository.SaveRecord").
				Int64("user_id", record.UserID).
				Msg("error inserting health record")
			return fmt.Errorf("unexpected DB error: %w", err)
		}

		if err := row.Scan(&record.RecordID, &record.CreatedAt); err != nil {
			log.Err(err).Str("func", "*healthRecordRepository.SaveRecord").Msg("error: scanning error")
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		return nil
	})
	if insertErr != nil {
		return models.HealthRecord{}, insertErr
	}

	if record.RecordID == 0 {
		return models.HealthRecord{}, ErrRecordNotSaved
	}

	return record, nil
}

// GetRecordsByUser returns every reading owned by userID, most recent first.
// The record id breaks ties between readings submitted within the same
// timestamp granularity.
func (r *healthRecordRepository) GetRecordsByUser(ctx context.Context, userID int64) ([]models.HealthRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("record_id", "user_id", "age", "bp", "sugar", "smoking", "family_history", "risk", "created_at").
		From(models.HealthRecord{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "record_id DESC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*healthRecordRepository.GetRecordsByUser").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*healthRecordRepository.GetRecordsByUser").
			Int64("user_id", userID).
			Msg("failed to execute query for listing health records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.HealthRecord, 0, 16)

	for rows.Next() {
		var item models.HealthRecord

		scanErr := rows.Scan(
			&item.RecordID,
			&item.UserID,
			&item.Age,
			&item.BP,
			&item.Sugar,
			&item.Smoking,
			&item.FamilyHistory,
			&item.Risk,
			&item.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*healthRecordRepository.GetRecordsByUser").Msg("error scanning health record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		records = append(records, item)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*healthRecordRepository.GetRecordsByUser").Msg("iteration error after reading result set")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
