// internal/words/sqlite.go
//
// SQLite word source.
// The database is opened read-only; the list is read from a single table
// with a TEXT column named "word". Rows go through the same normalisation as
// text files.

package words

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultTable is the table LoadDB reads when none is given.
const DefaultTable = "words"

// LoadDB reads every row of table.word from the SQLite database at path.
// A missing file is reported as a LoadError rather than creating a new db.
func LoadDB(ctx context.Context, path, table string) ([]string, error) {
	if table == "" {
		table = DefaultTable
	}
	if !isIdent(table) {
		return nil, &LoadError{Source: path, Err: fmt.Errorf("invalid table name %q", table)}
	}
	if _, err := os.Stat(path); err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}

	db, err := openDB(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT word FROM `+table)
	if err != nil {
		return nil, &LoadError{Source: path, Err: fmt.Errorf("query %s: %w", table, err)}
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w sql.NullString
		if err := rows.Scan(&w); err != nil {
			return nil, &LoadError{Source: path, Err: err}
		}
		if !w.Valid {
			continue
		}
		if n, ok := normalize(w.String); ok {
			out = append(out, n)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	if len(out) == 0 {
		return nil, &LoadError{Source: path, Err: ErrEmpty}
	}
	return out, nil
}

// openDB opens path read-only with a busy timeout, so a list shared with
// another writer does not fail immediately on a lock.
func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", fileURI(path)+"?mode=ro&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open: %w", err)
	}
	return db, nil
}

// uriEscaper percent-encodes the characters that would end or corrupt the
// path part of an SQLite "file:" URI.
var uriEscaper = strings.NewReplacer("%", "%25", "?", "%3F", "#", "%23")

// fileURI turns a filesystem path into an SQLite "file:" URI without a query.
func fileURI(path string) string {
	return "file:" + uriEscaper.Replace(path)
}

// isIdent reports whether s is a plain SQL identifier.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
