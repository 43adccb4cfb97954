// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package listing enumerates the candidate PDF files of a directory.
package listing

import (
	"context"
	"fmt"
	"os"
	"strings"
)

const pdfSuffix = ".pdf"

// IsPDF reports whether name ends with ".pdf", ignoring case.
func IsPDF(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), pdfSuffix)
}

// Dir lists the PDF entries of a single directory. Subdirectories are not
// descended into.
type Dir struct {
	Path string
}

// ListPDFs returns the names of the directory's entries that pass IsPDF, in
// the order os.ReadDir returns them. Entries are matched by name alone.
func (d *Dir) ListPDFs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(d.Path)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", d.Path, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if IsPDF(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
