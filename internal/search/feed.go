// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/paperfetch/pkg/types"
)

// arXiv Atom feed XML structures.
type feed struct {
	TotalResults int     `xml:"totalResults"`
	Entries      []entry `xml:"entry"`
}

type entry struct {
	ID        string   `xml:"id"`
	Title     string   `xml:"title"`
	Summary   string   `xml:"summary"`
	Published string   `xml:"published"`
	Updated   string   `xml:"updated"`
	Authors   []author `xml:"author"`
	Links     []link   `xml:"link"`
}

type author struct {
	Name string `xml:"name"`
}

type link struct {
	Href  string `xml:"href,attr"`
	Rel   string `xml:"rel,attr"`
	Type  string `xml:"type,attr"`
	Title string `xml:"title,attr"`
}

// recordFromEntry converts one feed entry into a PaperRecord. Titles in the
// feed wrap across lines; internal whitespace is collapsed so the title can
// serve as a filename base.
func recordFromEntry(e entry) types.PaperRecord {
	rec := types.PaperRecord{
		ID:      extractArxivID(e.ID),
		Title:   strings.Join(strings.Fields(e.Title), " "),
		Summary: strings.TrimSpace(e.Summary),
		PDFURL:  pdfLink(e),
	}

	for _, a := range e.Authors {
		rec.Authors = append(rec.Authors, strings.TrimSpace(a.Name))
	}

	if t, err := time.Parse(time.RFC3339, e.Published); err == nil {
		rec.Published = t
	}
	if t, err := time.Parse(time.RFC3339, e.Updated); err == nil {
		rec.Updated = t
	}
	return rec
}

// pdfLink returns the entry's PDF link. The feed marks it with
// title="pdf"; if absent, the abstract URL is rewritten to the PDF
// endpoint.
func pdfLink(e entry) string {
	for _, l := range e.Links {
		if l.Title == "pdf" || l.Type == "application/pdf" {
			return l.Href
		}
	}
	if strings.Contains(e.ID, "/abs/") {
		return strings.Replace(e.ID, "/abs/", "/pdf/", 1)
	}
	return ""
}

// extractArxivID pulls the arXiv ID from the entry's <id> URL
// (e.g. "http://arxiv.org/abs/2301.07041v1" → "2301.07041").
func extractArxivID(idURL string) string {
	const prefix = "/abs/"
	idx := strings.Index(idURL, prefix)
	if idx < 0 {
		return ""
	}
	id := idURL[idx+len(prefix):]

	// Strip version suffix (e.g. "v1", "v2").
	if vIdx := strings.LastIndex(id, "v"); vIdx > 0 {
		if _, err := strconv.Atoi(id[vIdx+1:]); err == nil {
			id = id[:vIdx]
		}
	}
	return id
}
