package database

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// ErrNotFound is returned when an update or delete targets an id the store
// does not hold. Reads report absence with a nil entity instead.
var ErrNotFound = errors.New("record not found")

// IntegrityError reports a delete the store rejected because other rows still
// reference the entity.
type IntegrityError struct {
	Message string
	Err     error
}

func (e *IntegrityError) Error() string {
	return "integrity violation: " + e.Message
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

// ConcurrencyError reports an update made from a stale copy of the entity.
type ConcurrencyError struct {
	Message string
}

func (e *ConcurrencyError) Error() string {
	return "concurrency conflict: " + e.Message
}

// ErrorKind is the outcome class of a repository operation.
type ErrorKind int

const (
	KindOK ErrorKind = iota
	KindNotFound
	KindIntegrity
	KindConcurrency
	KindOther
)

func (k ErrorKind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindNotFound:
		return "not_found"
	case KindIntegrity:
		return "integrity_violation"
	case KindConcurrency:
		return "concurrency_conflict"
	default:
		return "other"
	}
}

// KindOf classifies an error returned by a repository operation.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindOK
	}
	var integrityErr *IntegrityError
	var concurrencyErr *ConcurrencyError
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.As(err, &integrityErr):
		return KindIntegrity
	case errors.As(err, &concurrencyErr):
		return KindConcurrency
	default:
		return KindOther
	}
}

// Message returns the text carried by a classified error, or err.Error().
func Message(err error) string {
	var integrityErr *IntegrityError
	if errors.As(err, &integrityErr) {
		return integrityErr.Message
	}
	var concurrencyErr *ConcurrencyError
	if errors.As(err, &concurrencyErr) {
		return concurrencyErr.Message
	}
	return err.Error()
}

// NotFound wraps ErrNotFound with the entity and id that were missing.
func NotFound(entity string, id uint) error {
	return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
}

// ClassifyDelete turns a constraint failure raised by a delete into an
// IntegrityError. Other errors are returned unchanged.
func ClassifyDelete(err error) error {
	if err == nil {
		return nil
	}
	if isConstraintViolation(err) {
		return &IntegrityError{Message: err.Error(), Err: err}
	}
	return err
}

// CheckVersion inspects the result of a version-guarded update. Zero affected
// rows on an existing entity means another writer got there first.
func CheckVersion(result *gorm.DB, entity string, id uint) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &ConcurrencyError{Message: fmt.Sprintf(
			"%s %d was modified by another request after it was loaded; expected 1 row affected, got 0", entity, id)}
	}
	return nil
}

func isConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}
