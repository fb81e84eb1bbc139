package errors

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatJSON_BasicError(t *testing.T) {
	// Given: a DictError with details
	err := New(ErrCodeDictionaryNotFound, "dictionary not found", nil).
		WithDetail("path", "/foo/words.json").
		WithSuggestion("Check the file path")

	// When: formatting as JSON
	data, jsonErr := FormatJSON(err)

	// Then: valid JSON
	require.NoError(t, jsonErr)

	var result map[string]any
	require.NoError(t, json.Unmarshal(data, &result))

	// And: contains expected fields
	assert.Equal(t, ErrCodeDictionaryNotFound, result["code"])
	assert.Equal(t, "dictionary not found", result["message"])
	assert.Equal(t, string(CategoryIO), result["category"])
	assert.Equal(t, string(SeverityError), result["severity"])
	assert.Equal(t, "Check the file path", result["suggestion"])

	details, ok := result["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/foo/words.json", details["path"])
}

func TestFormatJSON_StandardError(t *testing.T) {
	data, jsonErr := FormatJSON(errors.New("generic error"))

	require.NoError(t, jsonErr)

	var result map[string]any
	require.NoError(t, json.Unmarshal(data, &result))

	assert.Equal(t, ErrCodeInternal, result["code"])
	assert.Equal(t, "generic error", result["message"])
}

func TestFormatJSON_NilError(t *testing.T) {
	data, err := FormatJSON(nil)

	assert.NoError(t, err)
	assert.Equal(t, "null", strings.TrimSpace(string(data)))
}

func TestFormatJSON_WithCause(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := MalformedError("words.json is malformed", cause)

	data, jsonErr := FormatJSON(err)

	require.NoError(t, jsonErr)

	var result map[string]any
	require.NoError(t, json.Unmarshal(data, &result))

	assert.Equal(t, "unexpected end of JSON input", result["cause"])
	assert.Equal(t, string(SeverityFatal), result["severity"])
}

func TestFormatForCLI_IncludesHintAndCode(t *testing.T) {
	// Given: a fatal error with a suggestion
	err := MalformedError("words.json is malformed", nil).
		WithSuggestion("Validate the file with a JSON linter")

	// When: formatting for CLI
	result := FormatForCLI(err)

	// Then: contains message, hint and code
	assert.Contains(t, result, "words.json is malformed")
	assert.Contains(t, result, "Hint: Validate the file")
	assert.Contains(t, result, "ERR_206_DICTIONARY_MALFORMED")
}

func TestFormatForCLI_ShortFormat(t *testing.T) {
	err := New(ErrCodeDictionaryNotFound, "file not found", nil)

	result := FormatForCLI(err)

	lines := strings.Split(strings.TrimSpace(result), "\n")
	assert.LessOrEqual(t, len(lines), 3, "Should be concise")
}

func TestFormatForCLI_NilError(t *testing.T) {
	assert.Empty(t, FormatForCLI(nil))
}

func TestLogAttrs_DictError(t *testing.T) {
	err := New(ErrCodeDuplicateWord, "duplicate word", errors.New("cause")).
		WithDetail("word", "cat").
		WithDetail("source", "a.json")

	attrs := LogAttrs(err)

	require.Len(t, attrs, 7)
	assert.Equal(t, slog.String("error_code", ErrCodeDuplicateWord), attrs[0])
	assert.Equal(t, slog.String("cause", "cause"), attrs[4])
	// Details are sorted by key.
	assert.Equal(t, slog.String("detail_source", "a.json"), attrs[5])
	assert.Equal(t, slog.String("detail_word", "cat"), attrs[6])
}

func TestLogAttrs_StandardError(t *testing.T) {
	attrs := LogAttrs(errors.New("plain"))

	require.Len(t, attrs, 1)
	assert.Equal(t, slog.String("error", "plain"), attrs[0])
	assert.Nil(t, LogAttrs(nil))
}
