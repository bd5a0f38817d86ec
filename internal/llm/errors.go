package llm

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for completion backends.
// Use errors.Is() to check for these in calling code.
var (
	// ErrMissingCredentials indicates the selected provider has no API key
	// configured. Checked at construction time, before any network call.
	ErrMissingCredentials = errors.New("missing provider credentials")

	// ErrRateLimited indicates the provider rejected the call due to rate
	// limiting or quota exhaustion. Surfaced to clients as HTTP 429.
	ErrRateLimited = errors.New("completion provider rate limited")

	// ErrEmptyCompletion indicates the provider answered 2xx but the decoded
	// response carried no usable text.
	ErrEmptyCompletion = errors.New("completion response contained no content")
)

// rateLimitMarkers are substrings of provider error messages that indicate
// throttling rather than a transient network failure.
var rateLimitMarkers = []string{
	"rate limit",
	"too many requests",
	"quota exceeded",
	"resource exhausted",
	"429",
}

// isRateLimitError reports whether err looks like provider throttling.
func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range rateLimitMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// wrapProviderError tags rate-limit errors with ErrRateLimited so the HTTP
// layer can map them to 429. Other errors pass through unchanged.
func wrapProviderError(err error) error {
	if err == nil {
		return nil
	}
	if isRateLimitError(err) && !errors.Is(err, ErrRateLimited) {
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	}
	return err
}
