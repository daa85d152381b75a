package model

import "fmt"

// ValidationError reports a field value rejected by a record.  Handlers
// translate it into an HTTP 400 response using Message as the body.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
