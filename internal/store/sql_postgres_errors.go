package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification reports whether a failed database operation is worth
// attempting again. [DB.withRetry] consults it before re-running a
// statement.
type ErrorClassification int

const (
	// NonRetryable is the default: constraint violations, data exceptions,
	// syntax errors and anything unrecognised. Retrying these would fail
	// the same way.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures. The statement may succeed once
	// the lock is released, the transaction conflict is resolved, or the
	// connection is re-established.
	Retryable
)

// ErrorClassificator maps backend driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx
// driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError and delegates to
// [ClassifyPgError]. A nil or non-PostgreSQL error is [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}

	return ClassifyPgError(pgErr)
}

// ClassifyPgError classifies by PostgreSQL error class: connection
// exceptions (class 08), transaction rollbacks including serialization
// failures and deadlocks (class 40), and 57P03 "cannot connect now" are
// [Retryable]. Every other code is [NonRetryable].
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgErr.Code == pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}
