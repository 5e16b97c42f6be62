// Package apperr defines the error vocabulary shared by the briefing
// pipeline and the HTTP layer. Every stage failure is classified into one
// of four kinds so handlers can map it to a status code without inspecting
// stage internals.
package apperr

import (
	"errors"
	"fmt"
)

// ErrKind classifies a pipeline failure.
type ErrKind string

const (
	// KindValidation covers user-correctable request problems: missing
	// upload, non-PDF file, unknown language code.
	KindValidation ErrKind = "validation"
	// KindExtraction covers unreadable PDF content: encrypted, corrupted,
	// or without a text layer.
	KindExtraction ErrKind = "extraction"
	// KindService covers any external API failure: network, auth, quota,
	// malformed or empty response.
	KindService ErrKind = "service"
	// KindUnsupportedLanguage covers languages the TTS backend rejects.
	KindUnsupportedLanguage ErrKind = "unsupported_language"
)

// Error carries a kind, a user-facing message and the underlying cause.
// The cause is for logs only and is never exposed to clients.
type Error struct {
	ErrKind ErrKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.ErrKind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.ErrKind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an error of the given kind with no cause.
func New(kind ErrKind, message string) *Error {
	return &Error{ErrKind: kind, Message: message}
}

// Wrap creates an error of the given kind around a cause.
func Wrap(kind ErrKind, message string, cause error) *Error {
	return &Error{ErrKind: kind, Message: message, Cause: cause}
}

// Validationf creates a validation error with a formatted message.
func Validationf(format string, args ...interface{}) *Error {
	return New(KindValidation, fmt.Sprintf(format, args...))
}

// Kind reports the classification of err, or KindService when err is not
// an *Error. Unknown failures are treated as service failures so they are
// never mistaken for user mistakes.
func Kind(err error) ErrKind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.ErrKind
	}
	return KindService
}

// IsKind reports whether err is classified as kind.
func IsKind(err error, kind ErrKind) bool {
	return err != nil && Kind(err) == kind
}
