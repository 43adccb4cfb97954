// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog reads the PDF filename identifiers recorded in a metadata
// catalog. Catalogs are CSV files with a header row, or SQLite databases
// holding the same rows in a table.
package catalog

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
)

// Set holds distinct catalog identifiers.
type Set map[string]struct{}

// NewSet returns a Set containing values. Duplicates collapse.
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v into the set.
func (s Set) Add(v string) {
	s[v] = struct{}{}
}

// Has reports whether v is a member. Comparison is exact.
func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of distinct identifiers.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the identifiers in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Source yields the raw values of the identifier column, one per row.
type Source interface {
	ReadCatalog(ctx context.Context) ([]string, error)
}

// sqliteExts lists file extensions treated as SQLite catalogs.
var sqliteExts = map[string]bool{
	".db":      true,
	".sqlite":  true,
	".sqlite3": true,
}

// Open picks a Source for path by extension: SQLite databases read column
// from table, anything else is parsed as CSV.
func Open(path, column, table string) Source {
	if sqliteExts[strings.ToLower(filepath.Ext(path))] {
		return &SQLiteSource{Path: path, Table: table, Column: column}
	}
	return &CSVSource{Path: path, Column: column}
}
