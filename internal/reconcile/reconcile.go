// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reconcile checks the PDF files of a directory against a metadata
// catalog and reports the files the catalog does not list.
//
// The suffix filter on directory entries ignores case, but membership in the
// catalog is an exact string comparison: "Report.PDF" is a candidate and is
// reported missing when the catalog only holds "report.pdf".
package reconcile

import (
	"context"

	"github.com/pdiddy/pdf-reconcile/internal/catalog"
	"github.com/pdiddy/pdf-reconcile/internal/listing"
	"github.com/pdiddy/pdf-reconcile/internal/logging"
	"github.com/pdiddy/pdf-reconcile/pkg/types"
)

// CatalogSource yields the raw identifier values of a catalog, one per row.
type CatalogSource interface {
	ReadCatalog(ctx context.Context) ([]string, error)
}

// DirectoryLister yields the candidate PDF filenames of a directory.
type DirectoryLister interface {
	ListPDFs(ctx context.Context) ([]string, error)
}

// Result holds the three artifacts of a reconciliation run.
type Result struct {
	// Catalog is the set of distinct catalog identifiers.
	Catalog catalog.Set
	// Listing is the filtered directory listing in enumeration order.
	Listing []string
	// Missing is the subsequence of Listing absent from Catalog.
	Missing []string
}

// AllListed reports whether every listed PDF is in the catalog.
func (r *Result) AllListed() bool {
	return len(r.Missing) == 0
}

// FindMissing returns the entries of pdfs that are not members of set,
// preserving their order. The result is never nil.
func FindMissing(set catalog.Set, pdfs []string) []string {
	missing := make([]string, 0)
	for _, name := range pdfs {
		if !set.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Reconcile reads the catalog, lists the directory, and computes the missing
// files. Catalog failures are returned as *CatalogReadError and listing
// failures as *DirectoryReadError; nothing is returned on partial success.
// catalogName and dirName label the inputs in errors and logs.
func Reconcile(ctx context.Context, src CatalogSource, catalogName string, lister DirectoryLister, dirName string) (*Result, error) {
	log := logging.FromContext(ctx)

	values, err := src.ReadCatalog(ctx)
	if err != nil {
		return nil, &CatalogReadError{Source: catalogName, Err: err}
	}
	set := catalog.NewSet(values...)
	log.Debug().Str("catalog", catalogName).Int("rows", len(values)).Int("identifiers", set.Len()).Msg("catalog loaded")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdfs, err := lister.ListPDFs(ctx)
	if err != nil {
		return nil, &DirectoryReadError{Path: dirName, Err: err}
	}
	log.Debug().Str("dir", dirName).Int("pdfs", len(pdfs)).Msg("directory listed")

	missing := FindMissing(set, pdfs)
	log.Debug().Int("missing", len(missing)).Msg("reconciled")

	return &Result{
		Catalog: set,
		Listing: pdfs,
		Missing: missing,
	}, nil
}

// Run reconciles the catalog at cfg.CatalogPath against the PDFs in
// cfg.PDFDir. Empty config fields take their defaults.
func Run(ctx context.Context, cfg types.ReconcileConfig) (*Result, error) {
	cfg = cfg.WithDefaults()
	src := catalog.Open(cfg.CatalogPath, cfg.Column, cfg.Table)
	return Reconcile(ctx, src, cfg.CatalogPath, &listing.Dir{Path: cfg.PDFDir}, cfg.PDFDir)
}
