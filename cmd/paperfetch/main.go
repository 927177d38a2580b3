// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paperfetch CLI: a batch tool that
// searches arXiv by keyword query, downloads matching PDFs, and optionally
// converts them to markdown.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the single paperfetch command; there are no subcommands.
var rootCmd = &cobra.Command{
	Use:   "paperfetch",
	Short: "Download arXiv papers by keyword query",
	Long: `paperfetch walks each query's arXiv result set, downloads each paper's PDF
to ./pdfs/<query>/, and with --markdown converts each PDF to a markdown file
under ./mds/<query>/. Individual paper failures are logged and skipped; the
batch always runs to completion.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return viper.BindPFlags(cmd.Flags())
	},
	RunE: runRoot,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringArray("query_list", nil, "search queries to fetch papers for (repeatable)")
	rootCmd.Flags().String("query_file", "", "YAML file with additional queries")
	rootCmd.Flags().Bool("markdown", false, "convert downloaded PDFs to markdown")
	rootCmd.Flags().Int("page_size", 100, "results fetched per API page")
	rootCmd.Flags().Int("delay_seconds", 10, "delay in seconds between page requests")
	rootCmd.Flags().Int("num_retries", 5, "retries for a failed page request")
	rootCmd.Flags().Int("max_results", 10, "maximum results per query")
	rootCmd.Flags().String("sort_by", "relevance", "sort order: relevance, last_updated_date, or submitted_date")
	rootCmd.Flags().String("output_dir", defaultOutputDir, "accepted for compatibility; output always goes under ./pdfs and ./mds")
	rootCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
	rootCmd.Flags().String("config", "", "config file (default: ./paperfetch.yaml or ~/.config/paperfetch/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.Flags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paperfetch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paperfetch"))
		}
	}

	viper.SetEnvPrefix("PAPERFETCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
