package dictionary

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	dicterrors "github.com/Aman-CERP/wordlook/internal/errors"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// requiredTables must exist for a file to be read as a dictionary.
var requiredTables = []string{"words", "definitions"}

// WriteSQLite stores every entry of d in a new SQLite database at path.
// An existing file is replaced only when overwrite is set.
func WriteSQLite(ctx context.Context, path string, d *Dictionary, overwrite bool) error {
	if _, err := os.Stat(path); err == nil {
		if !overwrite {
			return dicterrors.New(dicterrors.ErrCodeDictionaryWrite,
				fmt.Sprintf("%s already exists", path), nil).
				WithDetail("path", path).
				WithSuggestion("Pass --force to replace it")
		}
		for _, p := range []string{path, path + "-wal", path + "-shm"} {
			if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return writeError(path, err)
			}
		}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return writeError(path, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return writeError(path, err)
	}
	defer db.Close()

	if err := migrate(ctx, db); err != nil {
		return writeError(path, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return writeError(path, err)
	}
	defer func() { _ = tx.Rollback() }()

	wordStmt, err := tx.PrepareContext(ctx, `INSERT INTO words (word) VALUES (?)`)
	if err != nil {
		return writeError(path, err)
	}
	defer wordStmt.Close()

	defStmt, err := tx.PrepareContext(ctx, `INSERT INTO definitions (word, position, text) VALUES (?, ?, ?)`)
	if err != nil {
		return writeError(path, err)
	}
	defer defStmt.Close()

	for _, word := range d.words {
		if _, err := wordStmt.ExecContext(ctx, word); err != nil {
			return writeError(path, err)
		}
		for i, text := range d.entries[word] {
			if _, err := defStmt.ExecContext(ctx, word, i, text); err != nil {
				return writeError(path, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return writeError(path, err)
	}

	slog.Debug("dictionary_written",
		slog.String("path", path),
		slog.Int("words", len(d.words)))
	return nil
}

// ReadSQLite reads the entries of a database written by WriteSQLite.
// The file is opened read-only and its schema checked before querying.
func ReadSQLite(ctx context.Context, path string) (map[string][]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, openError(path, err)
	}

	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, malformedSQLite(path, err)
	}
	defer db.Close()

	for _, table := range requiredTables {
		var count int
		err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sqlite_master
			WHERE type='table' AND name=?`, table).Scan(&count)
		if err != nil {
			return nil, malformedSQLite(path, err)
		}
		if count == 0 {
			return nil, malformedSQLite(path, fmt.Errorf("table %q missing", table))
		}
	}

	rows, err := db.QueryContext(ctx, `SELECT w.word, d.text
		FROM words w
		LEFT JOIN definitions d ON d.word = w.word
		ORDER BY w.word, d.position`)
	if err != nil {
		return nil, malformedSQLite(path, err)
	}
	defer rows.Close()

	entries := map[string][]string{}
	for rows.Next() {
		var word string
		var text sql.NullString
		if err := rows.Scan(&word, &text); err != nil {
			return nil, malformedSQLite(path, err)
		}
		defs := entries[word]
		if text.Valid {
			defs = append(defs, text.String)
		}
		entries[word] = defs
	}
	if err := rows.Err(); err != nil {
		return nil, malformedSQLite(path, err)
	}
	return entries, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return err
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

func writeError(path string, err error) error {
	return dicterrors.New(dicterrors.ErrCodeDictionaryWrite,
		fmt.Sprintf("cannot write dictionary %s: %v", path, err), err).
		WithDetail("path", path)
}

func malformedSQLite(path string, err error) error {
	return dicterrors.MalformedError(
		fmt.Sprintf("%s is not a valid sqlite dictionary: %v", path, err), err).
		WithDetail("path", path).
		WithDetail("format", string(FormatSQLite))
}
