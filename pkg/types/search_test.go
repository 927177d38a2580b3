// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "testing"

func TestParseSortCriterion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    SortCriterion
		wantErr bool
	}{
		{"relevance", "relevance", SortRelevance, false},
		{"last updated", "last_updated_date", SortLastUpdatedDate, false},
		{"submitted", "submitted_date", SortSubmittedDate, false},
		{"arxiv spelling rejected", "submittedDate", "", true},
		{"unknown", "newest", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSortCriterion(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSortCriterion(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSortCriterion(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
