// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	// Plain output so assertions see the text, not escape codes.
	color.NoColor = true
}

func fixedClock() time.Time {
	return time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
}

func TestReporterLineFormat(t *testing.T) {
	var buf bytes.Buffer
	r := NewWithClock(&buf, fixedClock)

	r.Infof("Searching for %s", "quantum computing")

	assert.Equal(t, "2026-03-14 15:09:26 - Searching for quantum computing\n", buf.String())
}

func TestReporterAllLevels(t *testing.T) {
	var buf bytes.Buffer
	r := NewWithClock(&buf, fixedClock)

	r.Infof("info line")
	r.Successf("success line")
	r.Warningf("warning line")
	r.Errorf("error line")

	want := "2026-03-14 15:09:26 - info line\n" +
		"2026-03-14 15:09:26 - success line\n" +
		"2026-03-14 15:09:26 - warning line\n" +
		"2026-03-14 15:09:26 - error line\n"
	assert.Equal(t, want, buf.String())
}

func TestStyleForDistinctPerLevel(t *testing.T) {
	color.NoColor = false
	defer func() { color.NoColor = true }()

	seen := map[string]Level{}
	for _, level := range []Level{Info, Success, Warning, Error} {
		seq := styleFor(level).Sprint("x")
		if prev, ok := seen[seq]; ok {
			t.Errorf("levels %v and %v share a style", prev, level)
		}
		seen[seq] = level
	}
}
