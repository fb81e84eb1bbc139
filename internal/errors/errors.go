package errors

import (
	"errors"
	"fmt"
)

// DictError is the structured error type for wordlook.
// It provides rich context for error handling, logging, and user presentation.
type DictError struct {
	// Code is the unique error code (e.g., "ERR_201_DICTIONARY_NOT_FOUND").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Validation, Internal).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *DictError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *DictError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with DictError.
func (e *DictError) Is(target error) bool {
	if t, ok := target.(*DictError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *DictError) WithDetail(key, value string) *DictError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
// Returns the error for method chaining.
func (e *DictError) WithSuggestion(suggestion string) *DictError {
	e.Suggestion = suggestion
	return e
}

// New creates a new DictError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *DictError {
	return &DictError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a DictError from an existing error.
// The error's message becomes the DictError message.
func Wrap(code string, err error) *DictError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *DictError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// MalformedError creates an error for dictionary data that cannot be decoded.
func MalformedError(message string, cause error) *DictError {
	return New(ErrCodeDictionaryMalformed, message, cause)
}

// ValidationError creates a validation-related error.
func ValidationError(message string, cause error) *DictError {
	return New(ErrCodeInvalidInput, message, cause)
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *DictError {
	return New(ErrCodeInternal, message, cause)
}

// IsFatal checks if an error has fatal severity anywhere in its chain.
// Fatal errors abort startup.
func IsFatal(err error) bool {
	var de *DictError
	if errors.As(err, &de) {
		return de.Severity == SeverityFatal
	}
	return false
}

// GetCode extracts the error code from a DictError in the chain.
// Returns empty string if there is none.
func GetCode(err error) string {
	var de *DictError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// GetCategory extracts the category from a DictError in the chain.
// Returns empty string if there is none.
func GetCategory(err error) Category {
	var de *DictError
	if errors.As(err, &de) {
		return de.Category
	}
	return ""
}
