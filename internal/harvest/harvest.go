// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package harvest orchestrates per-query paper downloads and optional
// markdown conversion. Each query gets its own subdirectory under ./pdfs
// and ./mds; failures of individual papers are logged and never abort the
// batch.
package harvest

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/paperfetch/internal/report"
	"github.com/pdiddy/paperfetch/pkg/types"
)

const (
	pdfRoot = "pdfs"
	mdRoot  = "mds"
)

// SearchClient is the slice of the arXiv client the orchestrator consumes.
type SearchClient interface {
	Results(ctx context.Context, req types.Request) iter.Seq2[types.PaperRecord, error]
	DownloadPDF(ctx context.Context, rec types.PaperRecord, destPath string) error
}

// Converter turns a downloaded PDF into markdown text.
type Converter interface {
	Convert(pdfPath string) (string, error)
}

// Options configures one run.
type Options struct {
	// MaxResults caps the number of results processed per query.
	MaxResults int

	// SortBy is the ordering applied by the remote index.
	SortBy types.SortCriterion

	// Markdown enables PDF-to-markdown conversion after each download.
	Markdown bool
}

// ItemResult records how one search hit was handled. A set Err means the
// download failed; a set ConvertErr means the download succeeded but the
// markdown conversion did not. Both are per-item conditions, never fatal
// to the batch.
type ItemResult struct {
	Title      string
	Err        error
	ConvertErr error
}

// Run processes each query in order: it creates the query's output
// directories, walks the client's result sequence up to MaxResults,
// downloads each paper's PDF, and converts it to markdown when enabled.
//
// Paper titles are used verbatim as base filenames; two results with the
// same title overwrite each other, and a title containing path separators
// escapes the query directory. An error from the result sequence itself
// terminates the run; everything else degrades to an error line.
func Run(ctx context.Context, client SearchClient, conv Converter, queries []string, opts Options, rep *report.Reporter) error {
	for _, query := range queries {
		rep.Infof("Searching for %s", query)

		dir := dirName(query)
		pdfDir := filepath.Join(pdfRoot, dir)
		mdDir := filepath.Join(mdRoot, dir)
		for _, d := range []string{pdfDir, mdDir} {
			if err := os.MkdirAll(d, 0o755); err != nil {
				return fmt.Errorf("creating directory %s: %w", d, err)
			}
		}

		req := types.Request{Query: query, MaxResults: opts.MaxResults, SortBy: opts.SortBy}
		index := 0
		for rec, err := range client.Results(ctx, req) {
			if err != nil {
				return fmt.Errorf("searching for %q: %w", query, err)
			}
			index++
			rep.Infof("Downloading %d/%d: %s", index, opts.MaxResults, rec.Title)

			res := processRecord(ctx, client, conv, rec, pdfDir, mdDir, opts.Markdown)
			switch {
			case res.Err != nil:
				rep.Errorf("Error downloading %s: %v", res.Title, res.Err)
			case res.ConvertErr != nil:
				rep.Successf("Downloaded %s", res.Title)
				rep.Errorf("Error converting %s to Markdown: %v", res.Title, res.ConvertErr)
			default:
				rep.Successf("Downloaded %s", res.Title)
				if opts.Markdown {
					rep.Successf("Converted %s to Markdown", res.Title)
				}
			}
		}
	}
	return nil
}

// processRecord downloads one record and, when enabled, converts it. The
// outcome is recorded in the result rather than aborting the batch. A
// failed conversion leaves the already-downloaded PDF in place.
func processRecord(ctx context.Context, client SearchClient, conv Converter, rec types.PaperRecord, pdfDir, mdDir string, markdown bool) ItemResult {
	res := ItemResult{Title: rec.Title}

	pdfPath := filepath.Join(pdfDir, rec.Title+".pdf")
	if err := client.DownloadPDF(ctx, rec, pdfPath); err != nil {
		res.Err = err
		return res
	}

	if !markdown {
		return res
	}

	text, err := conv.Convert(pdfPath)
	if err != nil {
		res.ConvertErr = err
		return res
	}
	if err := os.WriteFile(filepath.Join(mdDir, rec.Title+".md"), []byte(text), 0o644); err != nil {
		res.ConvertErr = err
	}
	return res
}

// dirName converts a query into its output subdirectory name: spaces
// become underscores.
func dirName(query string) string {
	return strings.ReplaceAll(query, " ", "_")
}
