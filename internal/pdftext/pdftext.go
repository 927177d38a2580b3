// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext extracts per-page plain text from PDF files.
package pdftext

import (
	"errors"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// ErrNotFound reports that the source PDF does not exist on disk.
var ErrNotFound = errors.New("pdf not found")

// Extractor yields the plain text of each page of a PDF, in page order.
type Extractor interface {
	Pages(path string) ([]string, error)
}

// Reader is the default Extractor, backed by the ledongthuc/pdf parser.
type Reader struct{}

// Pages reads the PDF at path and returns one string per page. A missing
// file yields ErrNotFound; a structurally unreadable file yields a read
// error.
func (Reader) Pages(path string) (pages []string, err error) {
	if _, statErr := os.Stat(path); statErr != nil {
		if os.IsNotExist(statErr) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, statErr)
	}

	// The parser panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("reading %s: %v", path, r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, textErr := page.GetPlainText(nil)
		if textErr != nil {
			return nil, fmt.Errorf("extracting page %d of %s: %w", i, path, textErr)
		}
		pages = append(pages, text)
	}
	return pages, nil
}
