// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report prints timestamped, severity-colored status lines to a
// console stream. It is a pure observer: no state, no filtering, no
// persistence.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// Level classifies a status line.
type Level int

const (
	Info Level = iota
	Success
	Warning
	Error
)

// styleFor maps a level to its fixed console style. The mapping is
// stateless and not configurable.
func styleFor(level Level) *color.Color {
	switch level {
	case Success:
		return color.New(color.Bold, color.FgBlack, color.BgGreen)
	case Warning:
		return color.New(color.Bold, color.FgBlack, color.BgYellow)
	case Error:
		return color.New(color.Bold, color.FgWhite, color.BgRed)
	default:
		return color.New(color.Bold, color.FgBlack, color.BgCyan)
	}
}

const timestampLayout = "2006-01-02 15:04:05"

// Reporter writes status lines of the form
// "YYYY-MM-DD HH:MM:SS - <message>". Construct with New.
type Reporter struct {
	w   io.Writer
	now func() time.Time
}

// New returns a Reporter writing to w with the wall clock.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w, now: time.Now}
}

// NewWithClock returns a Reporter with a caller-supplied clock, for tests.
func NewWithClock(w io.Writer, now func() time.Time) *Reporter {
	return &Reporter{w: w, now: now}
}

func (r *Reporter) emit(level Level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	styleFor(level).Fprintf(r.w, "%s - %s\n", r.now().Format(timestampLayout), msg)
}

// Infof reports progress milestones.
func (r *Reporter) Infof(format string, args ...any) { r.emit(Info, format, args...) }

// Successf reports a completed download or conversion.
func (r *Reporter) Successf(format string, args ...any) { r.emit(Success, format, args...) }

// Warningf reports conditions the operator should notice but that do not
// fail an item.
func (r *Reporter) Warningf(format string, args ...any) { r.emit(Warning, format, args...) }

// Errorf reports a per-item failure.
func (r *Reporter) Errorf(format string, args ...any) { r.emit(Error, format, args...) }
