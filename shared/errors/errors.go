package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var NotFound = &ErrorWithStatusCode{Message: "Not found", StatusCode: http.StatusNotFound}

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// RecordKind names the record family a RecordError belongs to.
type RecordKind string

const (
	KindPost    RecordKind = "post"
	KindMessage RecordKind = "message"
)

// RecordError describes one malformed input record. It is counted and logged,
// never returned from a batch operation.
type RecordError struct {
	Kind   RecordKind
	Line   int // 1-based source line, 0 when unknown
	Id     string
	Reason string
}

func (e *RecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed %s at line %d: %s", e.Kind, e.Line, e.Reason)
	}
	if e.Id != "" {
		return fmt.Sprintf("malformed %s %q: %s", e.Kind, e.Id, e.Reason)
	}
	return fmt.Sprintf("malformed %s: %s", e.Kind, e.Reason)
}

// IsRecordError reports whether err wraps a *RecordError.
func IsRecordError(err error) bool {
	var re *RecordError
	return errors.As(err, &re)
}
