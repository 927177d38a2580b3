// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paperfetch/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds the tuning parameters for the arXiv client. It is
// constructed once from CLI input and read-only for the run's duration.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// PageSize is the number of results fetched per API page (default 100).
	PageSize int `json:"page_size" yaml:"page_size"`

	// Delay is the pause between consecutive page requests.
	Delay time.Duration `json:"delay" yaml:"delay"`

	// NumRetries is the number of retries for a failed page request.
	NumRetries int `json:"num_retries" yaml:"num_retries"`
}
