// Package errors defines the structured error taxonomy used across drill.
//
// Every failure surfaced by a drill or by the tool itself carries a Kind
// that distinguishes rejected input (invalid_argument) from rejected
// transitions on otherwise valid objects (invalid_state) and from detected
// structural races during iteration (concurrent_modification). Callers
// branch on Kind and Code, never on message text.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind categorizes an error.
type Kind string

const (
	KindInvalidArgument        Kind = "invalid_argument"
	KindInvalidState           Kind = "invalid_state"
	KindConcurrentModification Kind = "concurrent_modification"
	KindIO                     Kind = "io"
	KindConfig                 Kind = "config"
	KindInternal               Kind = "internal"
)

// DrillError is a structured error with kind, code and optional cause.
type DrillError struct {
	Kind        Kind
	Code        string
	Message     string
	Cause       error
	Context     map[string]interface{}
	Recoverable bool
}

// Error implements the error interface.
func (e *DrillError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	parts = append(parts, string(e.Kind)+":", e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *DrillError) Unwrap() error {
	return e.Cause
}

// Is matches on Kind and Code so sentinel-style comparisons work through
// wrapping.
func (e *DrillError) Is(target error) bool {
	var t *DrillError
	if errors.As(target, &t) {
		return e.Kind == t.Kind && e.Code == t.Code
	}

	return false
}

// WithContext attaches a key/value pair to the error.
func (e *DrillError) WithContext(key string, value interface{}) *DrillError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// Error creation functions

// NewInvalidArgument reports input rejected before any state changed.
func NewInvalidArgument(code, message string) *DrillError {
	return &DrillError{
		Kind:        KindInvalidArgument,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewInvalidState reports a transition rejected on an otherwise valid object.
func NewInvalidState(code, message string) *DrillError {
	return &DrillError{
		Kind:        KindInvalidState,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewConcurrentModification reports structural change detected under a
// live iterator.
func NewConcurrentModification(code, message string) *DrillError {
	return &DrillError{
		Kind:        KindConcurrentModification,
		Code:        code,
		Message:     message,
		Recoverable: false,
	}
}

// NewIO creates an I/O error.
func NewIO(code, message string, cause error) *DrillError {
	return &DrillError{
		Kind:        KindIO,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// NewConfig creates a configuration error.
func NewConfig(code, message string) *DrillError {
	return &DrillError{
		Kind:        KindConfig,
		Code:        code,
		Message:     message,
		Recoverable: false,
	}
}

// NewInternal creates an internal error.
func NewInternal(code, message string, cause error) *DrillError {
	return &DrillError{
		Kind:        KindInternal,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// KindOf returns the Kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var de *DrillError
	if errors.As(err, &de) {
		return de.Kind
	}

	return KindInternal
}

// IsInvalidArgument checks whether err is an invalid-argument error.
func IsInvalidArgument(err error) bool {
	return KindOf(err) == KindInvalidArgument
}

// IsInvalidState checks whether err is an invalid-state error.
func IsInvalidState(err error) bool {
	return KindOf(err) == KindInvalidState
}

// IsConcurrentModification checks whether err reports a fail-fast trip.
func IsConcurrentModification(err error) bool {
	return KindOf(err) == KindConcurrentModification
}

// IsRecoverable checks if an error is recoverable.
func IsRecoverable(err error) bool {
	var de *DrillError
	if errors.As(err, &de) {
		return de.Recoverable
	}

	return false
}

// Common error codes.
const (
	ErrCodeBlankOwner       = "ERR_BLANK_OWNER"
	ErrCodeNegativeOpening  = "ERR_NEGATIVE_OPENING"
	ErrCodeNonPositive      = "ERR_NON_POSITIVE_AMOUNT"
	ErrCodeOverdraft        = "ERR_OVERDRAFT"
	ErrCodeStaleIterator    = "ERR_STALE_ITERATOR"
	ErrCodeExhaustedCursor  = "ERR_EXHAUSTED_CURSOR"
	ErrCodeDrillNotFound    = "ERR_DRILL_NOT_FOUND"
	ErrCodeNoteNotFound     = "ERR_NOTE_NOT_FOUND"
	ErrCodeTranscriptDrift  = "ERR_TRANSCRIPT_DRIFT"
	ErrCodeConfigInvalid    = "ERR_CONFIG_INVALID"
	ErrCodeFileNotFound     = "ERR_FILE_NOT_FOUND"
	ErrCodeInternal         = "ERR_INTERNAL"
	ErrCodeValidationFailed = "ERR_VALIDATION_FAILED"
)

// Helper constructors for common failures

// ErrDrillNotFound reports a lookup for an unregistered drill.
func ErrDrillNotFound(name string) *DrillError {
	return NewInvalidArgument(ErrCodeDrillNotFound, "drill not found: "+name)
}

// ErrNoteNotFound reports a lookup for an unknown study note.
func ErrNoteNotFound(name string) *DrillError {
	return NewInvalidArgument(ErrCodeNoteNotFound, "note not found: "+name)
}
