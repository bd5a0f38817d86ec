// Package service contains the request orchestrators: chat, smart web
// search, and the PDF finder.
package service

import (
	"errors"
	"fmt"

	"github.com/optivex/lumexa-go/internal/llm"
	"github.com/optivex/lumexa-go/internal/search"
)

// Sentinel errors forming the service error taxonomy. The HTTP layer maps
// these to status codes with errors.Is().
var (
	// ErrEmptyPrompt rejects blank chat prompts before any network call.
	ErrEmptyPrompt = errors.New("prompt is required")

	// ErrEmptyQuery rejects blank search queries before any network call.
	ErrEmptyQuery = errors.New("query is required")

	// ErrNotConfigured indicates missing credentials or an unconfigured
	// backend. The wrapped message names what is missing.
	ErrNotConfigured = errors.New("missing configuration")

	// ErrUpstream indicates a search or completion provider failed. The
	// original provider error stays attached for diagnostics.
	ErrUpstream = errors.New("upstream service failed")
)

// classify maps provider-level errors onto the service taxonomy.
// Rate-limit errors pass through untouched so the HTTP layer can answer 429.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, llm.ErrRateLimited):
		return err
	case errors.Is(err, search.ErrMissingAPIKey), errors.Is(err, llm.ErrMissingCredentials):
		return fmt.Errorf("%w: %v", ErrNotConfigured, err)
	default:
		return fmt.Errorf("%w: %w", ErrUpstream, err)
	}
}
