// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadQueryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queries.yaml")
	content := "queries:\n  - quantum computing\n  - \"  \"\n  - machine learning\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	queries, err := ReadQueryFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"quantum computing", "machine learning"}, queries)
}

func TestReadQueryFileMissing(t *testing.T) {
	_, err := ReadQueryFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestReadQueryFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("queries: {not: [a, list"), 0o644))

	_, err := ReadQueryFile(path)
	assert.Error(t, err)
}
