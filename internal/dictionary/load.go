package dictionary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/Aman-CERP/wordlook/configs"
	dicterrors "github.com/Aman-CERP/wordlook/internal/errors"
)

// Format is the encoding of a dictionary source.
type Format string

const (
	FormatAuto   Format = "auto"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"
)

// maxParallelLoads bounds how many sources are read at once.
const maxParallelLoads = 4

// ParseFormat converts a configuration string to a Format.
// The empty string means FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatJSON, FormatYAML, FormatSQLite:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", dicterrors.New(dicterrors.ErrCodeUnknownFormat,
			fmt.Sprintf("unknown dictionary format %q (use: auto, json, yaml, sqlite)", s), nil)
	}
}

// DetectFormat infers the format of path from its extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", dicterrors.New(dicterrors.ErrCodeUnknownFormat,
			fmt.Sprintf("cannot detect dictionary format of %s", path), nil).
			WithDetail("path", path).
			WithSuggestion("Use a .json, .yaml or .db extension, or pass --format")
	}
}

// Decode reads a JSON or YAML document mapping words to definition lists.
func Decode(r io.Reader, f Format) (map[string][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	entries := map[string][]string{}
	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, &entries)
	case FormatYAML:
		err = yaml.Unmarshal(data, &entries)
	default:
		return nil, fmt.Errorf("format %q cannot be decoded from a stream", f)
	}
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ReadSource reads one dictionary source. FormatAuto detects the format
// from the path.
func ReadSource(ctx context.Context, path string, f Format) (Source, error) {
	if f == FormatAuto || f == "" {
		detected, err := DetectFormat(path)
		if err != nil {
			return Source{}, err
		}
		f = detected
	}

	if f == FormatSQLite {
		entries, err := ReadSQLite(ctx, path)
		if err != nil {
			return Source{}, err
		}
		return Source{Name: path, Entries: entries}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return Source{}, openError(path, err)
	}
	defer file.Close()

	entries, err := Decode(file, f)
	if err != nil {
		return Source{}, dicterrors.MalformedError(
			fmt.Sprintf("%s is not a valid %s dictionary: %v", path, f, err), err).
			WithDetail("path", path).
			WithDetail("format", string(f))
	}
	return Source{Name: path, Entries: entries}, nil
}

// SampleSource returns the dictionary compiled into the binary.
func SampleSource() (Source, error) {
	entries, err := Decode(bytes.NewReader(configs.SampleDictionary), FormatJSON)
	if err != nil {
		return Source{}, dicterrors.MalformedError("embedded sample dictionary is invalid", err)
	}
	return Source{Name: configs.SampleDictionaryName, Entries: entries}, nil
}

// Load reads every path concurrently and builds one Dictionary from them,
// merged in the order given. With no paths the sample dictionary is used.
// Any failure here is a construction-time failure.
func Load(ctx context.Context, paths []string, f Format, opts ...Option) (*Dictionary, error) {
	if len(paths) == 0 {
		src, err := SampleSource()
		if err != nil {
			return nil, err
		}
		slog.Debug("dictionary_source", slog.String("name", src.Name), slog.Int("words", len(src.Entries)))
		return FromSources([]Source{src}, opts...)
	}

	sources := make([]Source, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)
	for i, p := range paths {
		g.Go(func() error {
			src, err := ReadSource(gctx, p, f)
			if err != nil {
				return err
			}
			sources[i] = src
			slog.Debug("dictionary_source", slog.String("name", p), slog.Int("words", len(src.Entries)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return FromSources(sources, opts...)
}

func openError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return dicterrors.New(dicterrors.ErrCodeDictionaryNotFound,
			fmt.Sprintf("dictionary not found: %s", path), err).
			WithDetail("path", path).
			WithSuggestion("Check the path passed with --dict or set in dictionary.paths")
	case errors.Is(err, fs.ErrPermission):
		return dicterrors.New(dicterrors.ErrCodeFilePermission,
			fmt.Sprintf("cannot read dictionary %s", path), err).
			WithDetail("path", path)
	default:
		return dicterrors.Wrap(dicterrors.ErrCodeInternal, err)
	}
}
