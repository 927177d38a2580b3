// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across components.
package httputil

import (
	"io"
	"net/http"
	"time"
)

// DoWithRetry executes an HTTP request and retries transport errors and
// retryable statuses (429 and 5xx) up to retries additional attempts,
// sleeping delay between attempts.
//
// On each retryable response the body is drained and closed before the
// wait. If the request's context is cancelled during a wait the function
// returns the context error. After exhausting retries the last response
// (or transport error) is returned so the caller can inspect it.
func DoWithRetry(client *http.Client, req *http.Request, retries int, delay time.Duration) (*http.Response, error) {
	ctx := req.Context()

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err == nil && !retryable(resp.StatusCode) {
			return resp, nil
		}

		if attempt >= retries {
			return resp, err
		}

		if resp != nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
}

// retryable reports whether a status code is worth retrying: rate limiting
// and server-side failures, but not client errors.
func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}
