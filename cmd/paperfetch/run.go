// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperfetch/internal/harvest"
	"github.com/pdiddy/paperfetch/internal/markdown"
	"github.com/pdiddy/paperfetch/internal/pdftext"
	"github.com/pdiddy/paperfetch/internal/report"
	"github.com/pdiddy/paperfetch/internal/search"
	"github.com/pdiddy/paperfetch/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultOutputDir = "documents"
	defaultUserAgent = "paperfetch/0.1"
)

func runRoot(cmd *cobra.Command, args []string) error {
	queries := viper.GetStringSlice("query_list")
	if qf := viper.GetString("query_file"); qf != "" {
		more, err := search.ReadQueryFile(qf)
		if err != nil {
			return err
		}
		queries = append(queries, more...)
	}
	if len(queries) == 0 {
		return fmt.Errorf("provide at least one query via --query_list or --query_file")
	}

	sortBy, err := types.ParseSortCriterion(viper.GetString("sort_by"))
	if err != nil {
		return err
	}

	cfg := types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: defaultUserAgent,
		},
		PageSize:   viper.GetInt("page_size"),
		Delay:      time.Duration(viper.GetInt("delay_seconds")) * time.Second,
		NumRetries: viper.GetInt("num_retries"),
	}

	rep := report.New(os.Stdout)
	if out := viper.GetString("output_dir"); out != defaultOutputDir {
		rep.Warningf("--output_dir %q is not used for path construction; writing under ./pdfs and ./mds", out)
	}

	client := search.NewClient(cfg)
	conv := markdown.NewConverter(pdftext.Reader{})

	opts := harvest.Options{
		MaxResults: viper.GetInt("max_results"),
		SortBy:     sortBy,
		Markdown:   viper.GetBool("markdown"),
	}
	return harvest.Run(cmd.Context(), client, conv, queries, opts, rep)
}
