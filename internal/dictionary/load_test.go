package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dicterrors "github.com/Aman-CERP/wordlook/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"sqlite", FormatSQLite, false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, dicterrors.ErrCodeUnknownFormat, dicterrors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"words.json":         FormatJSON,
		"words.YAML":         FormatYAML,
		"dir/words.yml":      FormatYAML,
		"words.db":           FormatSQLite,
		"words.sqlite3":      FormatSQLite,
		"/abs/path/x.sqlite": FormatSQLite,
	}
	for path, want := range tests {
		got, err := DetectFormat(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := DetectFormat("words.txt")
	require.Error(t, err)
	assert.Equal(t, dicterrors.ErrCodeUnknownFormat, dicterrors.GetCode(err))
}

func TestDecode_JSON(t *testing.T) {
	entries, err := Decode(strings.NewReader(`{"cat": ["a", "b"], "void": null}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, entries["cat"])
	assert.Contains(t, entries, "void")
	assert.Empty(t, entries["void"])
}

func TestDecode_YAML(t *testing.T) {
	doc := "cat:\n  - a small feline\ndog:\n  - a canine\n  - a scoundrel\n"
	entries, err := Decode(strings.NewReader(doc), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []string{"a canine", "a scoundrel"}, entries["dog"])
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"cat": "not a list"}`), FormatJSON)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(`[1, 2]`), FormatJSON)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("cat: [unterminated"), FormatYAML)
	assert.Error(t, err)
}

func TestDecode_RejectsSQLite(t *testing.T) {
	_, err := Decode(strings.NewReader(""), FormatSQLite)
	assert.Error(t, err)
}

func TestLoad_NoPathsUsesSample(t *testing.T) {
	d, err := Load(context.Background(), nil, FormatAuto)
	require.NoError(t, err)

	assert.Greater(t, d.Len(), 0)
	defs, ok := d.LookupExact("cat")
	require.True(t, ok)
	assert.Len(t, defs, 2)
}

func TestLoad_MergesFilesOfDifferentFormats(t *testing.T) {
	// Given: one JSON and one YAML source
	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", `{"Cat": ["feline"]}`)
	b := writeFile(t, dir, "b.yaml", "dog:\n  - canine\n")

	// When: loading both with auto detection
	d, err := Load(context.Background(), []string{a, b}, FormatAuto)

	// Then: every word is present and normalized
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog"}, d.Words())
}

func TestLoad_ExplicitFormatOverridesExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "words.txt", "cat:\n  - feline\n")

	d, err := Load(context.Background(), []string{path}, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Len())
}

func TestLoad_DuplicateAcrossFilesReportsLaterPath(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", `{"cat": ["one"]}`)
	b := writeFile(t, dir, "b.json", `{"CAT": ["two"]}`)

	_, err := Load(context.Background(), []string{a, b}, FormatAuto)
	require.Error(t, err)

	var de *dicterrors.DictError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, dicterrors.ErrCodeDuplicateWord, de.Code)
	assert.Equal(t, b, de.Details["source"])
	assert.Equal(t, a, de.Details["first_source"])
}

func TestLoad_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.json")

	_, err := Load(context.Background(), []string{missing}, FormatAuto)
	require.Error(t, err)
	assert.Equal(t, dicterrors.ErrCodeDictionaryNotFound, dicterrors.GetCode(err))
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.json", `{"cat": [`)

	_, err := Load(context.Background(), []string{path}, FormatAuto)
	require.Error(t, err)
	assert.Equal(t, dicterrors.ErrCodeDictionaryMalformed, dicterrors.GetCode(err))
	assert.True(t, dicterrors.IsFatal(err))
}

func TestLoad_UnknownExtension(t *testing.T) {
	path := writeFile(t, t.TempDir(), "words.csv", "cat,feline")

	_, err := Load(context.Background(), []string{path}, FormatAuto)
	require.Error(t, err)
	assert.Equal(t, dicterrors.ErrCodeUnknownFormat, dicterrors.GetCode(err))
}

func TestLoad_PassesOptions(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.json", `{"cat": ["feline"]}`)

	d, err := Load(context.Background(), []string{path}, FormatAuto, WithThreshold(0.6))
	require.NoError(t, err)
	assert.Equal(t, 0.6, d.Threshold())

	got, ok := d.ClosestCandidate("kat")
	require.True(t, ok)
	assert.Equal(t, "cat", got)
}

func TestLoad_ManyFiles(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, w := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		paths = append(paths, writeFile(t, dir, w+".json", `{"`+w+`word": ["def"]}`))
	}

	d, err := Load(context.Background(), paths, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 7, d.Len())
}
