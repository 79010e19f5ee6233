package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-vitals-keeper/internal/logger"
	"github.com/MKhiriev/go-vitals-keeper/models"
)

// classifyFunc adapts a plain function to the ErrorClassificator interface.
type classifyFunc func(err error) ErrorClassification

func (f classifyFunc) Classify(err error) ErrorClassification {
	return f(err)
}

func newRetryTestDB(classify classifyFunc) *DB {
	return &DB{
		logger:             logger.NewLogger("test"),
		errorClassificator: classify,
	}
}

func TestWithRetry_SuccessOnFirstAttempt(t *testing.T) {
	db := newRetryTestDB(func(err error) ErrorClassification {
		t.Fatal("classifier should not be consulted on success")
		return NonRetryable
	})

	calls := 0
	err := db.withRetry(context.Background(), func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 attempt, got %d", calls)
	}
}

func TestWithRetry_TransientErrorRecovers(t *testing.T) {
	transient := errors.New("database is locked")
	db := newRetryTestDB(func(err error) ErrorClassification {
		if errors.Is(err, transient) {
			return Retryable
		}
		return NonRetryable
	})

	calls := 0
	err := db.withRetry(context.Background(), func() error {
		calls++
		if calls == 1 {
			return transient
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 attempts, got %d", calls)
	}
}

func TestWithRetry_AttemptsExhausted(t *testing.T) {
	transient := errors.New("serialization failure")
	db := newRetryTestDB(func(err error) ErrorClassification {
		return Retryable
	})

	calls := 0
	err := db.withRetry(context.Background(), func() error {
		calls++
		return transient
	})
	if !errors.Is(err, transient) {
		t.Fatalf("expected the last attempt's error, got %v", err)
	}
	if calls != writeAttempts {
		t.Errorf("expected %d attempts, got %d", writeAttempts, calls)
	}
}

func TestWithRetry_NonRetryableFailsImmediately(t *testing.T) {
	permanent := errors.New("constraint violation")
	db := newRetryTestDB(func(err error) ErrorClassification {
		return NonRetryable
	})

	calls := 0
	err := db.withRetry(context.Background(), func() error {
		calls++
		return permanent
	})
	if !errors.Is(err, permanent) {
		t.Fatalf("expected the operation's error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 attempt, got %d", calls)
	}
}

func TestWithRetry_ContextCancelledDuringPause(t *testing.T) {
	db := newRetryTestDB(func(err error) ErrorClassification {
		return Retryable
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := db.withRetry(ctx, func() error {
		calls++
		return errors.New("database is locked")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 attempt before cancellation, got %d", calls)
	}
}

// ---- retry behaviour through the repositories ----

func TestCreateUser_RetriesDeadlockThenSucceeds(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Name:         "John",
		Email:        "john@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         models.RoleUser,
	}

	// first attempt rolls back on a deadlock, second attempt lands
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Name, user.Email, user.PasswordHash, user.Role).
		WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Name, user.Email, user.PasswordHash, user.Role).
		WillReturnRows(sqlmock.
			NewRows([]string{"user_id", "name", "email", "password_hash", "role", "created_at"}).
			AddRow(1, user.Name, user.Email, user.PasswordHash, user.Role, time.Now()))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaveRecord_RetryExhaustedReturnsLastError(t *testing.T) {
	repo, mock, db := newTestHealthRecordRepo(t)
	defer db.Close()

	ctx := context.Background()
	record := models.HealthRecord{
		UserID:        1,
		Age:           45,
		BP:            150,
		Sugar:         210,
		Smoking:       models.AnswerYes,
		FamilyHistory: models.AnswerNo,
		Risk:          "High",
	}

	for range writeAttempts {
		mock.ExpectQuery("INSERT INTO health_records").
			WithArgs(record.UserID, record.Age, record.BP, record.Sugar, record.Smoking, record.FamilyHistory, record.Risk).
			WillReturnError(pgError(pgerrcode.SerializationFailure))
	}

	_, err := repo.SaveRecord(ctx, record)
	if err == nil {
		t.Fatal("expected an error after exhausting retries")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_UniqueViolationIsNotRetried(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "john@example.com"}

	// a single expectation: a second attempt would fail ExpectationsWereMet
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
