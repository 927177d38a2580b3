// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// QueryFile is the on-disk form of a saved query list. The operator can
// keep recurring searches in a file instead of repeating --query_list.
type QueryFile struct {
	Queries []string `yaml:"queries"`
}

// ReadQueryFile loads a YAML query list from path. Blank entries are
// dropped.
func ReadQueryFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}

	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file %s: %w", path, err)
	}

	var queries []string
	for _, q := range qf.Queries {
		if q = strings.TrimSpace(q); q != "" {
			queries = append(queries, q)
		}
	}
	return queries, nil
}
