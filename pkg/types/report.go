// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for pdf-reconcile.
package types

// Report is the serializable outcome of a reconciliation run.
type Report struct {
	// CatalogPath and PDFDir record where the inputs were read from.
	CatalogPath string `json:"catalog" yaml:"catalog"`
	PDFDir      string `json:"pdf_dir" yaml:"pdf_dir"`

	// Column is the catalog column the identifiers came from.
	Column string `json:"column" yaml:"column"`

	// CatalogCount is the number of distinct catalog identifiers.
	CatalogCount int `json:"catalog_count" yaml:"catalog_count"`

	// Catalog lists the distinct catalog identifiers in lexical order.
	Catalog []string `json:"catalog_identifiers" yaml:"catalog_identifiers"`

	// PDFCount is the number of PDF files found in the directory.
	PDFCount int `json:"pdf_count" yaml:"pdf_count"`

	// PDFs lists the PDF files in directory order.
	PDFs []string `json:"pdf_files" yaml:"pdf_files"`

	// Missing lists the PDF files absent from the catalog, in directory order.
	Missing []string `json:"missing" yaml:"missing"`
}

// AllListed reports whether every PDF file appears in the catalog.
func (r Report) AllListed() bool {
	return len(r.Missing) == 0
}
