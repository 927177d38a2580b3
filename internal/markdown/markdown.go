// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown renders extracted PDF text as a page-sectioned markdown
// document.
package markdown

import (
	"fmt"
	"strings"

	"github.com/pdiddy/paperfetch/internal/pdftext"
)

// Converter turns a PDF file into markdown text using a pluggable page
// extractor.
type Converter struct {
	extractor pdftext.Extractor
}

// NewConverter returns a Converter backed by the given extractor.
func NewConverter(e pdftext.Extractor) *Converter {
	return &Converter{extractor: e}
}

// Convert reads the PDF at pdfPath and returns its markdown rendering.
// The output is a pure function of the extracted page text; converting the
// same PDF twice yields identical output. Extraction failures propagate to
// the caller.
func (c *Converter) Convert(pdfPath string) (string, error) {
	pages, err := c.extractor.Pages(pdfPath)
	if err != nil {
		return "", err
	}
	return FromPages(pages), nil
}

// FromPages builds the markdown document: one "## Page N" heading per page
// (N starting at 1), followed by the page's text split on blank-line
// boundaries into paragraphs. Each paragraph has internal line breaks
// collapsed to single spaces and surrounding whitespace trimmed; paragraphs
// that collapse to nothing are dropped.
func FromPages(pages []string) string {
	var b strings.Builder
	for i, text := range pages {
		fmt.Fprintf(&b, "\n## Page %d\n\n", i+1)
		for _, paragraph := range strings.Split(text, "\n\n") {
			clean := strings.TrimSpace(strings.ReplaceAll(paragraph, "\n", " "))
			if clean != "" {
				b.WriteString(clean)
				b.WriteString("\n\n")
			}
		}
	}
	return b.String()
}
