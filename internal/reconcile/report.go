// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reconcile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdf-reconcile/pkg/types"
)

// NewReport builds the serializable report for res. Catalog identifiers are
// sorted; the listing and missing files keep directory order.
func NewReport(res *Result, cfg types.ReconcileConfig) types.Report {
	cfg = cfg.WithDefaults()
	return types.Report{
		CatalogPath:  cfg.CatalogPath,
		PDFDir:       cfg.PDFDir,
		Column:       cfg.Column,
		CatalogCount: res.Catalog.Len(),
		Catalog:      res.Catalog.Sorted(),
		PDFCount:     len(res.Listing),
		PDFs:         nonNil(res.Listing),
		Missing:      nonNil(res.Missing),
	}
}

// Render writes report to w in the given format.
func Render(w io.Writer, report types.Report, format types.OutputFormat) error {
	switch format {
	case types.OutputText, "":
		return renderText(w, report)
	case types.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use text, yaml, or json", format)
	}
}

func renderText(w io.Writer, r types.Report) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%d distinct values in the %s column of %s\n", r.CatalogCount, r.Column, r.CatalogPath)
	fmt.Fprintf(&b, "%q\n", r.Catalog)
	fmt.Fprintf(&b, "%d PDF files in %s\n", r.PDFCount, r.PDFDir)
	fmt.Fprintf(&b, "%q\n", r.PDFs)

	if r.AllListed() {
		fmt.Fprintf(&b, "All PDF files are listed in the %s column.\n", r.Column)
	} else {
		fmt.Fprintf(&b, "The following PDF files are not listed in the %s column:\n", r.Column)
		for _, name := range r.Missing {
			fmt.Fprintln(&b, name)
		}
	}

	if _, err := b.WriteTo(w); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
