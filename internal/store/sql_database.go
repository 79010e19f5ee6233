package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vitals-keeper/internal/config"
	"github.com/MKhiriev/go-vitals-keeper/internal/logger"
	"github.com/MKhiriev/go-vitals-keeper/migrations"
)

// Driver names accepted by [NewConnect].
const (
	driverPostgres = "pgx"
	driverSQLite   = "sqlite3"
)

// DB wraps a [sql.DB] connection pool together with the SQL dialect
// information the repositories need: a squirrel statement builder
// configured with the backend's placeholder format and an error
// classifier for the backend's driver errors.
type DB struct {
	*sql.DB

	// driver is the database/sql driver name the pool was opened with.
	driver string

	// builder produces SQL with the placeholder format of the active
	// backend ($1 for PostgreSQL, ? for SQLite). All repository queries
	// are built through it so they run unchanged on either backend.
	builder sq.StatementBuilderType

	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a database connection pool for the configured DSN.
//
// A DSN starting with "postgres://" or "postgresql://" selects the
// PostgreSQL backend (pgx driver); any other value is treated as a SQLite
// database file path. The schema is migrated idempotently before the
// connection is handed to repositories.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var db *DB
	var err error

	if isPostgresDSN(cfg.DSN) {
		db, err = NewConnectPostgres(ctx, cfg, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg, log)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate brings the database schema up to date for the active backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Retry policy for write statements. SQLite raises SQLITE_BUSY under lock
// contention and PostgreSQL rolls back on serialization failures and
// deadlocks; both clear up on their own, so a short pause and a re-run is
// enough.
const (
	writeAttempts   = 3
	writeRetryPause = 100 * time.Millisecond
)

// withRetry runs op and re-runs it while the backend's classifier reports
// the failure as [Retryable], up to writeAttempts attempts in total. The
// error of the last attempt is returned unchanged, so callers keep their
// sentinel mapping. Wrapped errors classify fine: the classifiers unwrap
// with errors.As.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	for attempt := 1; ; attempt++ {
		err := op()
		if err == nil || db.errorClassificator.Classify(err) == NonRetryable || attempt == writeAttempts {
			return err
		}

		db.logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Msg("transient database error, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(writeRetryPause):
		}
	}
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
