package infra

import (
	"errors"
	"fmt"
	"log/slog"

	"hotel-folio/internal/pkg/errs"
)

type StoreErrorKind string

const (
	KindNotFound     StoreErrorKind = "NOT_FOUND"
	KindDuplicateKey StoreErrorKind = "DUPLICATE_KEY"
	KindCanceled     StoreErrorKind = "CANCELED"
)

// StoreError reports why a folio store operation failed. Entity and Key name the record involved.
type StoreError struct {
	Kind   StoreErrorKind
	Entity string
	Key    string
	err    error
}

func (e StoreError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Entity)
	if e.Key != "" {
		msg += " " + e.Key
	}
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	return msg
}

func (e StoreError) Unwrap() error {
	return e.err
}

func NotFound(entity string, key fmt.Stringer) error {
	return StoreError{Kind: KindNotFound, Entity: entity, Key: key.String()}
}

func Duplicate(entity string, key fmt.Stringer) error {
	return StoreError{Kind: KindDuplicateKey, Entity: entity, Key: key.String()}
}

// Canceled logs and wraps a context error that stopped a unit of work before it committed.
func Canceled(logger *slog.Logger, err error) error {
	logger.Warn("store transaction canceled", slog.String("error", err.Error()))
	return StoreError{Kind: KindCanceled, Entity: "transaction", err: errs.Wrap(err, "unit of work")}
}

func IsKind(err error, kind StoreErrorKind) bool {
	var e StoreError
	return errors.As(err, &e) && e.Kind == kind
}
