package store

import (
	"errors"
	"strings"
)

// Code classifies a StorageError.
type Code int

const (
	CodeOpen Code = iota + 1
	CodeSchema
	CodeDuplicateTime
	CodeQuery
)

func (c Code) String() string {
	switch c {
	case CodeOpen:
		return "open"
	case CodeSchema:
		return "schema"
	case CodeDuplicateTime:
		return "duplicate_time"
	case CodeQuery:
		return "query"
	default:
		return "unknown"
	}
}

// ErrDuplicateTime matches, via errors.Is, a StorageError raised because an
// alarm with the same time already exists.
var ErrDuplicateTime = errors.New("store: duplicate alarm time")

// StorageError is the only error kind returned by SQLiteStore. Its message is
// the storage engine's own.
type StorageError struct {
	Code Code
	Op   string
	Err  error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrDuplicateTime && e.Code == CodeDuplicateTime
}

func wrap(op string, code Code, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Code: code, Op: op, Err: err}
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
