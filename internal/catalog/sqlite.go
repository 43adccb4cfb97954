// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteSource reads identifiers from one column of a table in a SQLite
// database. The database is opened read-only and never created.
type SQLiteSource struct {
	Path   string
	Table  string
	Column string
}

// ReadCatalog returns every value of the column, cast to text, in table
// order. NULL values become the empty string.
func (s *SQLiteSource) ReadCatalog(ctx context.Context) ([]string, error) {
	if _, err := os.Stat(s.Path); err != nil {
		return nil, fmt.Errorf("opening catalog %s: %w", s.Path, err)
	}

	db, err := sql.Open("sqlite3", readOnlyDSN(s.Path))
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", s.Path, err)
	}
	defer db.Close()

	query := fmt.Sprintf("SELECT CAST(%s AS TEXT) FROM %s",
		quoteIdent(s.Column), quoteIdent(s.Table))
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying %s.%s in %s: %w", s.Table, s.Column, s.Path, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v sql.NullString
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		values = append(values, v.String)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return values, nil
}

// readOnlyDSN builds a SQLite URI for path opened with mode=ro. The path is
// percent-escaped so '?' and '#' in file names are not read as URI syntax.
func readOnlyDSN(path string) string {
	return "file:" + (&url.URL{Path: path}).EscapedPath() + "?mode=ro"
}

// quoteIdent quotes a SQLite identifier so table and column names from
// configuration cannot alter the query. Backticks are used because SQLite
// falls back to a string literal for unknown double-quoted identifiers.
func quoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
