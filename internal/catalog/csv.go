// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVSource reads identifiers from a named column of a CSV file with a
// header row. Other columns are ignored.
type CSVSource struct {
	Path   string
	Column string
}

// ReadCatalog opens the file and returns every value of the column in row
// order. Rows shorter than the header contribute an empty value.
func (c *CSVSource) ReadCatalog(ctx context.Context) ([]string, error) {
	f, err := os.Open(c.Path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog %s: %w", c.Path, err)
	}
	defer f.Close()

	values, err := ReadColumn(ctx, f, c.Column)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", c.Path, err)
	}
	return values, nil
}

// ReadColumn parses CSV from r and returns the values of column. The first
// record is the header; a leading UTF-8 byte order mark is ignored. Records
// wider than the header are an error; shorter ones yield an empty value.
func ReadColumn(ctx context.Context, r io.Reader, column string) ([]string, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	idx := -1
	for i, name := range header {
		if name == column {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("column %q not found in header", column)
	}

	var values []string
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}
		if len(record) > len(header) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: expected %d fields, saw %d", line, len(header), len(record))
		}
		if idx < len(record) {
			values = append(values, record[idx])
		} else {
			values = append(values, "")
		}
	}
	return values, nil
}
