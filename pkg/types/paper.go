// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// PaperRecord holds the metadata for one search hit. Records are owned
// transiently by the orchestrator while it processes a result; nothing is
// persisted beyond the files the run produces.
type PaperRecord struct {
	// ID is the arXiv identifier (e.g. "2301.07041").
	ID string `json:"id" yaml:"id"`

	// Title is the paper title with internal whitespace normalized. It is
	// also the base filename for the downloaded PDF and markdown output.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Summary is the paper abstract.
	Summary string `json:"summary" yaml:"summary"`

	// Published is the submission date; Updated is the latest revision date.
	Published time.Time `json:"published" yaml:"published"`
	Updated   time.Time `json:"updated" yaml:"updated"`

	// PDFURL is the download location for the paper's PDF.
	PDFURL string `json:"pdf_url" yaml:"pdf_url"`
}
