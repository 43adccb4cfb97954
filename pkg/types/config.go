// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Default locations used when no flag, environment variable, or config file
// overrides them.
const (
	DefaultCatalogPath   = "./output/test.csv"
	DefaultPDFDir        = "./pdfx"
	DefaultCatalogColumn = "metadata"
	DefaultCatalogTable  = "documents"
)

// OutputFormat selects how the reconciliation report is written.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputYAML OutputFormat = "yaml"
	OutputJSON OutputFormat = "json"
)

// ParseOutputFormat maps a flag value to an OutputFormat. The empty string
// selects text.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case "", OutputText:
		return OutputText, nil
	case OutputYAML, OutputJSON:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("unsupported format %q: use text, yaml, or json", s)
	}
}

// ReconcileConfig holds the settings for one reconciliation run.
type ReconcileConfig struct {
	// CatalogPath is the CSV (or SQLite) file holding the catalog.
	CatalogPath string `json:"catalog" yaml:"catalog"`

	// PDFDir is the directory whose PDF files are checked against the catalog.
	PDFDir string `json:"pdf_dir" yaml:"pdf_dir"`

	// Column names the catalog column holding PDF filenames (default "metadata").
	Column string `json:"column" yaml:"column"`

	// Table names the SQLite table read when the catalog is a database
	// (default "documents"). Ignored for CSV catalogs.
	Table string `json:"table" yaml:"table"`

	// Format selects the report format: text, yaml, or json.
	Format OutputFormat `json:"format" yaml:"format"`
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c ReconcileConfig) WithDefaults() ReconcileConfig {
	if c.CatalogPath == "" {
		c.CatalogPath = DefaultCatalogPath
	}
	if c.PDFDir == "" {
		c.PDFDir = DefaultPDFDir
	}
	if c.Column == "" {
		c.Column = DefaultCatalogColumn
	}
	if c.Table == "" {
		c.Table = DefaultCatalogTable
	}
	if c.Format == "" {
		c.Format = OutputText
	}
	return c
}

// Validate reports the first setting that cannot be used.
func (c ReconcileConfig) Validate() error {
	if c.CatalogPath == "" {
		return fmt.Errorf("catalog path is required")
	}
	if c.PDFDir == "" {
		return fmt.Errorf("pdf directory is required")
	}
	if c.Column == "" {
		return fmt.Errorf("catalog column is required")
	}
	if _, err := ParseOutputFormat(string(c.Format)); err != nil {
		return err
	}
	return nil
}
