// Package errors provides structured error handling for wordlook.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: IO errors (dictionary files, databases)
//   - 4XX: Validation errors
//   - 5XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryIO indicates file and database I/O errors.
	CategoryIO Category = "IO"
	// CategoryValidation indicates input and data validation errors.
	CategoryValidation Category = "VALIDATION"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal indicates unrecoverable error, must abort startup.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates operation failed but can continue.
	SeverityError Severity = "ERROR"
	// SeverityWarning indicates degraded operation, continuing.
	SeverityWarning Severity = "WARNING"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigNotFound = "ERR_101_CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "ERR_102_CONFIG_INVALID"

	// IO errors (200-299)
	ErrCodeDictionaryNotFound  = "ERR_201_DICTIONARY_NOT_FOUND"
	ErrCodeFilePermission      = "ERR_202_FILE_PERMISSION"
	ErrCodeDictionaryMalformed = "ERR_206_DICTIONARY_MALFORMED"
	ErrCodeDictionaryWrite     = "ERR_207_DICTIONARY_WRITE"

	// Validation errors (400-499)
	ErrCodeInvalidInput  = "ERR_401_INVALID_INPUT"
	ErrCodeDuplicateWord = "ERR_402_DUPLICATE_WORD"
	ErrCodeEmptyWord     = "ERR_403_EMPTY_WORD"
	ErrCodeQueryEmpty    = "ERR_404_QUERY_EMPTY"
	ErrCodeUnknownFormat = "ERR_405_UNKNOWN_FORMAT"

	// Internal errors (500-599)
	ErrCodeInternal = "ERR_501_INTERNAL"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	// Extract numeric portion (e.g., "101" from "ERR_101_CONFIG_NOT_FOUND")
	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryIO
	case '4':
		return CategoryValidation
	default:
		return CategoryInternal
	}
}

// severityFromCode determines severity based on error code.
// Anything that leaves the dictionary unbuildable is fatal.
func severityFromCode(code string) Severity {
	switch code {
	case ErrCodeDictionaryMalformed, ErrCodeDuplicateWord, ErrCodeEmptyWord:
		return SeverityFatal
	case ErrCodeQueryEmpty:
		return SeverityWarning
	}
	return SeverityError
}
