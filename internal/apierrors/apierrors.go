// Package apierrors defines the closed set of error kinds the API can emit
// and their translation to HTTP responses. Every error response is produced
// here so clients see one envelope shape regardless of which layer failed.
package apierrors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind tags an API error with its taxonomy entry.
type Kind int

const (
	// KindRequest is malformed or invalid client input.
	KindRequest Kind = iota
	// KindAuthentication is a missing/invalid credential or insufficient privilege.
	KindAuthentication
	// KindDatabase is a persistence-layer invariant violation or write failure.
	KindDatabase
	// KindInternal is an unexpected failure inside a handler body.
	KindInternal
	// KindFileManager is a filesystem-side media operation failure.
	KindFileManager
)

// Error is the single error type crossing the handler boundary. Operation and
// ChildError are only populated for the database/internal kinds; ChildError
// carries the original failure text as an opaque diagnostic, never a stack.
type Error struct {
	Kind       Kind
	Message    string
	Operation  string
	ChildError string
}

func (e *Error) Error() string {
	if e.Operation != "" {
		return e.Operation + ": " + e.Message
	}
	return e.Message
}

// Status maps the error kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindRequest:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusForbidden
	case KindDatabase:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// errorType returns the wire label for the kind.
func (e *Error) errorType() string {
	switch e.Kind {
	case KindRequest:
		return "Request Error"
	case KindAuthentication:
		return "Authentication Error"
	case KindDatabase:
		return "Database Error"
	case KindFileManager:
		return "File Manager Error"
	default:
		return "Internal Server Error"
	}
}

// Payload builds the flat response envelope for the error.
func (e *Error) Payload() gin.H {
	payload := gin.H{
		"message":    e.Message,
		"error_type": e.errorType(),
	}
	if e.Kind == KindDatabase || e.Kind == KindInternal {
		op := e.Operation
		if op == "" {
			op = "Unknown"
		}
		payload["operation"] = op
		if e.ChildError != "" {
			payload["child_error"] = e.ChildError
		}
	}
	return payload
}

// NewRequest creates a 400 request error.
func NewRequest(message string) *Error {
	return &Error{Kind: KindRequest, Message: message}
}

// NewAuthentication creates a 403 authentication error.
func NewAuthentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

// NewDatabase creates a 502 database error. cause may be nil.
func NewDatabase(message, operation string, cause error) *Error {
	e := &Error{Kind: KindDatabase, Message: message, Operation: operation}
	if cause != nil {
		e.ChildError = cause.Error()
	}
	return e
}

// NewInternal creates a 500 internal error. cause may be nil.
func NewInternal(message, operation string, cause error) *Error {
	e := &Error{Kind: KindInternal, Message: message, Operation: operation}
	if cause != nil {
		e.ChildError = cause.Error()
	}
	return e
}

// NewFileManager creates a 500 file manager error.
func NewFileManager(message string) *Error {
	return &Error{Kind: KindFileManager, Message: message}
}

// Respond writes err as the single response for this request. Errors that are
// not already part of the taxonomy are wrapped as internal errors so nothing
// unvetted leaks to the client.
func Respond(c *gin.Context, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = NewInternal("Unhandled internal error", "respond", err)
	}
	c.AbortWithStatusJSON(apiErr.Status(), apiErr.Payload())
}
