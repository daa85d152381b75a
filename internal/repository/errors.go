// Package repository defines error types that are reused across both store
// backends.  These sentinel values allow higher layers such as handlers to
// distinguish between different failure scenarios without knowing which
// backend produced them.
package repository

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/iliyamo/hbnb-api/internal/model"
)

// ErrNotFound is returned when a record lookup fails.  Handlers should
// translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write would duplicate a unique value of
// another record of the same kind.  Handlers should translate this into an
// HTTP 409 response.
var ErrConflict = errors.New("conflict")

// NotFoundError names the missing record.  It matches ErrNotFound with
// errors.Is.
type NotFoundError struct {
	Kind model.Kind
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ConflictError names the constraint that was violated.  It matches
// ErrConflict with errors.Is.
type ConflictError struct {
	Kind       model.Kind
	Constraint model.Constraint
}

func (e *ConflictError) Error() string {
	keys := make([]string, 0, len(e.Constraint))
	for k := range e.Constraint {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	vals := make([]string, 0, len(keys))
	for _, k := range keys {
		vals = append(vals, e.Constraint[k])
	}
	return fmt.Sprintf("%s '%s' already exists", e.Kind, strings.Join(vals, "/"))
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

func notFound(kind model.Kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// invalidReference is reported when a foreign key points at nothing.  It is
// a validation failure of the record being written, not a missing resource.
func invalidReference(ref model.Reference) error {
	return &model.ValidationError{
		Field:   ref.Field,
		Message: fmt.Sprintf("Invalid %s specified: %s", ref.Field, ref.ID),
	}
}
