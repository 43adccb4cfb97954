// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf-reconcile CLI, which reports
// the PDF files of a directory that a metadata catalog does not list.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf-reconcile/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// configErr holds the config file error from initConfig, which cannot
// return one itself.
var configErr error

// rootCmd is the base command for the pdf-reconcile CLI.
var rootCmd = &cobra.Command{
	Use:   "pdf-reconcile",
	Short: "Find PDF files missing from a metadata catalog",
	Long: `pdf-reconcile compares the PDF files in a directory with the filenames
recorded in the metadata column of a catalog (a CSV file, or a SQLite table
holding the same rows) and reports the files the catalog does not list.

Paths default to ./output/test.csv and ./pdfx and can be set with flags,
a pdf-reconcile.yaml config file, or PDF_RECONCILE_* environment variables.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		logging.Configure(cmd.ErrOrStderr(), viper.GetString("log_level"))
		log := logging.Default()
		cmd.SetContext(logging.WithLogger(cmd.Context(), *log))
		if used := viper.ConfigFileUsed(); used != "" {
			log.Info().Str("file", used).Msg("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdf-reconcile.yaml or ~/.config/pdf-reconcile/pdf-reconcile.yaml)")
	rootCmd.PersistentFlags().String("log-level", logging.DefaultLevel, "diagnostic log level: debug, info, warn, error, or off")
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf-reconcile")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf-reconcile"))
		}
	}

	viper.SetEnvPrefix("PDF_RECONCILE")
	viper.AutomaticEnv()

	// Without --config a missing file is fine; everything has a default.
	configErr = nil
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			configErr = fmt.Errorf("reading config: %w", err)
		}
	}
}

func main() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
