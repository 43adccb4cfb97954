// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf-reconcile/internal/reconcile"
	"github.com/pdiddy/pdf-reconcile/pkg/types"
)

var checkCmd = &cobra.Command{
	Use:   "check [catalog] [pdf-dir]",
	Short: "Report PDF files that the catalog does not list",
	Long: `Check reads the catalog's metadata column, lists the PDF files in the
directory, and prints the catalog identifiers, the PDF files, and the files
missing from the catalog.

File names ending in .pdf are matched regardless of case, but a file only
counts as listed when its exact name appears in the catalog. Catalogs ending
in .db, .sqlite, or .sqlite3 are read as SQLite databases from --table.

Positional arguments override --catalog and --pdf-dir.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := checkConfig(args)
	if err != nil {
		return err
	}

	res, err := reconcile.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	return reconcile.Render(cmd.OutOrStdout(), reconcile.NewReport(res, cfg), cfg.Format)
}

// checkConfig merges flags, environment, and config file through viper, then
// applies positional arguments.
func checkConfig(args []string) (types.ReconcileConfig, error) {
	format, err := types.ParseOutputFormat(viper.GetString("format"))
	if err != nil {
		return types.ReconcileConfig{}, err
	}

	cfg := types.ReconcileConfig{
		CatalogPath: viper.GetString("catalog"),
		PDFDir:      viper.GetString("pdf_dir"),
		Column:      viper.GetString("column"),
		Table:       viper.GetString("table"),
		Format:      format,
	}
	if len(args) > 0 {
		cfg.CatalogPath = args[0]
	}
	if len(args) > 1 {
		cfg.PDFDir = args[1]
	}

	cfg = cfg.WithDefaults()
	return cfg, cfg.Validate()
}

func init() {
	checkCmd.Flags().String("catalog", types.DefaultCatalogPath, "catalog file: CSV with a header row, or a SQLite database")
	checkCmd.Flags().String("pdf-dir", types.DefaultPDFDir, "directory holding the PDF files")
	checkCmd.Flags().String("column", types.DefaultCatalogColumn, "catalog column holding PDF filenames")
	checkCmd.Flags().String("table", types.DefaultCatalogTable, "table to read when the catalog is a SQLite database")
	checkCmd.Flags().String("format", string(types.OutputText), "report format: text, yaml, or json")

	for key, flag := range map[string]string{
		"catalog": "catalog",
		"pdf_dir": "pdf-dir",
		"column":  "column",
		"table":   "table",
		"format":  "format",
	} {
		_ = viper.BindPFlag(key, checkCmd.Flags().Lookup(flag))
	}

	rootCmd.AddCommand(checkCmd)
}
