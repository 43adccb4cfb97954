// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package listing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPDF(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a.pdf", true},
		{"Report.PDF", true},
		{"mixed.PdF", true},
		{".pdf", true},
		{"a.pdf.bak", false},
		{"notes.txt", false},
		{"pdf", false},
		{"archive.pdfx", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPDF(tt.name))
		})
	}
}

func TestListPDFs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pdf", "a.pdf", "Report.PDF", "notes.txt", "c.pdf.bak"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "deep.pdf"), []byte("%PDF"), 0o644))

	d := &Dir{Path: dir}
	got, err := d.ListPDFs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Report.PDF", "a.pdf", "b.pdf"}, got)
}

func TestListPDFsMatchesDirectoriesByName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "bundle.pdf"), 0o755))

	got, err := (&Dir{Path: dir}).ListPDFs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"bundle.pdf"}, got)
}

func TestListPDFsEmpty(t *testing.T) {
	got, err := (&Dir{Path: t.TempDir()}).ListPDFs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestListPDFsErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing directory", func(t *testing.T) {
		missing := filepath.Join(dir, "pdfx")
		_, err := (&Dir{Path: missing}).ListPDFs(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), "pdfx")
	})

	t.Run("path is a file", func(t *testing.T) {
		file := filepath.Join(dir, "plain.pdf")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
		_, err := (&Dir{Path: file}).ListPDFs(context.Background())
		require.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := (&Dir{Path: dir}).ListPDFs(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
