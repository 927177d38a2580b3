// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paperfetch pipeline:
// the search configuration and request, the paper record yielded by the
// arXiv client, and the sort criterion enumeration.
package types

import "fmt"

// SortCriterion is the ordering applied by the remote index. The values
// are the literal sortBy parameter strings the arXiv API accepts.
type SortCriterion string

const (
	SortRelevance       SortCriterion = "relevance"
	SortLastUpdatedDate SortCriterion = "lastUpdatedDate"
	SortSubmittedDate   SortCriterion = "submittedDate"
)

// ParseSortCriterion maps the CLI spelling of a sort order to its arXiv
// sortBy value.
func ParseSortCriterion(s string) (SortCriterion, error) {
	switch s {
	case "relevance":
		return SortRelevance, nil
	case "last_updated_date":
		return SortLastUpdatedDate, nil
	case "submitted_date":
		return SortSubmittedDate, nil
	}
	return "", fmt.Errorf("invalid sort_by %q: use relevance, last_updated_date, or submitted_date", s)
}

// Request describes one query against the paper index.
type Request struct {
	// Query is the operator-supplied search string.
	Query string `json:"query" yaml:"query"`

	// MaxResults caps the number of records the result sequence yields.
	MaxResults int `json:"max_results" yaml:"max_results"`

	// SortBy is the ordering applied by the remote index.
	SortBy SortCriterion `json:"sort_by" yaml:"sort_by"`
}
