// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// fakeExtractor implements pdftext.Extractor for testing. It returns canned
// pages or an error, depending on configuration.
type fakeExtractor struct {
	pages []string
	err   error
}

func (f *fakeExtractor) Pages(path string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pages, nil
}

func TestFromPagesParagraphCollapsing(t *testing.T) {
	got := FromPages([]string{"Hello\nworld\n\nSecond  paragraph"})
	want := "\n## Page 1\n\nHello world\n\nSecond  paragraph\n\n"
	if got != want {
		t.Errorf("FromPages() = %q, want %q", got, want)
	}
}

func TestFromPagesHeadingPerPage(t *testing.T) {
	pages := []string{"one", "two", "three"}
	got := FromPages(pages)

	for i := range pages {
		heading := fmt.Sprintf("## Page %d", i+1)
		if !strings.Contains(got, heading) {
			t.Errorf("output missing %q", heading)
		}
	}
	if n := strings.Count(got, "## Page "); n != len(pages) {
		t.Errorf("heading count = %d, want %d", n, len(pages))
	}
	// Headings appear in page order.
	if strings.Index(got, "## Page 1") > strings.Index(got, "## Page 2") {
		t.Error("page headings out of order")
	}
}

func TestFromPagesDropsWhitespaceParagraphs(t *testing.T) {
	got := FromPages([]string{"  \n \n\n   \t\n\nReal content"})
	want := "\n## Page 1\n\nReal content\n\n"
	if got != want {
		t.Errorf("FromPages() = %q, want whitespace paragraphs dropped", got)
	}
}

func TestFromPagesEmptyPageKeepsHeading(t *testing.T) {
	got := FromPages([]string{""})
	want := "\n## Page 1\n\n"
	if got != want {
		t.Errorf("FromPages() = %q, want %q", got, want)
	}
}

func TestConvertDeterministic(t *testing.T) {
	c := NewConverter(&fakeExtractor{pages: []string{"First\npage", "Second page\n\nwith two paragraphs"}})

	first, err := c.Convert("paper.pdf")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	second, err := c.Convert("paper.pdf")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if first != second {
		t.Error("Convert() output differs between identical runs")
	}
}

func TestConvertPropagatesExtractionError(t *testing.T) {
	wantErr := errors.New("broken xref table")
	c := NewConverter(&fakeExtractor{err: wantErr})

	_, err := c.Convert("paper.pdf")
	if !errors.Is(err, wantErr) {
		t.Errorf("Convert() error = %v, want %v", err, wantErr)
	}
}
