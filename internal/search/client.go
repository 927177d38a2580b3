// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search implements a paged, rate-limited, retrying client for the
// arXiv search API. Results are exposed as a lazy sequence: pages are
// fetched on demand as the caller iterates, with the configured delay
// between page requests and the configured retry count per page.
package search

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/pdiddy/paperfetch/internal/httputil"
	"github.com/pdiddy/paperfetch/pkg/types"
)

// arxivAPIBase is the arXiv search endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

const defaultPageSize = 100

// Client queries the arXiv API. It is safe for sequential reuse across
// queries; delays and retries are enforced here, invisibly to callers.
type Client struct {
	httpClient *http.Client
	cfg        types.SearchConfig
}

// NewClient returns a Client with the given tuning parameters.
func NewClient(cfg types.SearchConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
	}
}

// Results returns a lazy, finite sequence of paper records for req, bounded
// by req.MaxResults. The sequence pages through the API as it is consumed;
// a page-fetch failure surfaces as the error element at the point of
// failure and ends the sequence. Records yielded before the failure remain
// valid. The sequence is meant to be consumed exactly once.
func (c *Client) Results(ctx context.Context, req types.Request) iter.Seq2[types.PaperRecord, error] {
	return func(yield func(types.PaperRecord, error) bool) {
		yielded := 0
		start := 0

		for yielded < req.MaxResults {
			if start > 0 && c.cfg.Delay > 0 {
				select {
				case <-ctx.Done():
					yield(types.PaperRecord{}, ctx.Err())
					return
				case <-time.After(c.cfg.Delay):
				}
			}

			pageSize := c.cfg.PageSize
			if pageSize <= 0 {
				pageSize = defaultPageSize
			}
			if remaining := req.MaxResults - yielded; remaining < pageSize {
				pageSize = remaining
			}

			feed, err := c.fetchPage(ctx, req, start, pageSize)
			if err != nil {
				yield(types.PaperRecord{}, fmt.Errorf("fetching results page at offset %d: %w", start, err))
				return
			}
			if len(feed.Entries) == 0 {
				return
			}

			for _, entry := range feed.Entries {
				if !yield(recordFromEntry(entry), nil) {
					return
				}
				yielded++
				if yielded >= req.MaxResults {
					return
				}
			}

			start += len(feed.Entries)
			if feed.TotalResults > 0 && start >= feed.TotalResults {
				return
			}
		}
	}
}

// fetchPage requests one page of the Atom feed, retrying per the client
// configuration.
func (c *Client) fetchPage(ctx context.Context, req types.Request, start, pageSize int) (*feed, error) {
	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = types.SortRelevance
	}

	params := url.Values{}
	params.Set("search_query", req.Query)
	params.Set("start", strconv.Itoa(start))
	params.Set("max_results", strconv.Itoa(pageSize))
	params.Set("sortBy", string(sortBy))
	params.Set("sortOrder", "descending")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, arxivAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(c.httpClient, httpReq, c.cfg.NumRetries, c.cfg.Delay)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var f feed
	if err := xml.NewDecoder(resp.Body).Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}
	return &f, nil
}

// DownloadPDF fetches the record's PDF to destPath. Writes are plain, not
// transactional: an interrupted download can leave a truncated file.
func (c *Client) DownloadPDF(ctx context.Context, rec types.PaperRecord, destPath string) error {
	if rec.PDFURL == "" {
		return fmt.Errorf("no PDF link for %q", rec.Title)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rec.PDFURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, rec.PDFURL)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", destPath, err)
	}

	_, copyErr := io.Copy(f, resp.Body)
	closeErr := f.Close()
	if copyErr != nil {
		return fmt.Errorf("writing %s: %w", destPath, copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing %s: %w", destPath, closeErr)
	}
	return nil
}
