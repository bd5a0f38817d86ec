// Package search provides the Serper web-search client.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/optivex/lumexa-go/internal/config"
	"github.com/optivex/lumexa-go/internal/metrics"
	"github.com/optivex/lumexa-go/internal/models"
)

// ErrMissingAPIKey indicates no Serper key is configured. Returned before
// any network call is attempted.
var ErrMissingAPIKey = errors.New("search API key not configured")

// Client is a Serper HTTP API client.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	metrics *metrics.Collector
}

// NewClient creates a Serper client from configuration. A missing API key is
// reported per call, not at construction, so the server can still start and
// surface the problem on the affected endpoints.
func NewClient(cfg config.Config, mc *metrics.Collector) *Client {
	return &Client{
		apiKey:  cfg.SerperAPIKey,
		baseURL: cfg.SerperBaseURL,
		client:  &http.Client{Timeout: cfg.RequestTimeout},
		metrics: mc,
	}
}

// serperRequest is the request payload for both search endpoints.
type serperRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num,omitempty"`
}

// serperResponse is the subset of the Serper response the service uses.
type serperResponse struct {
	Organic []models.SearchResult `json:"organic"`
	Images  []struct {
		ImageURL string `json:"imageUrl"`
	} `json:"images"`
}

// Search runs an organic web search. num <= 0 uses Serper's default page size.
// Timing is recorded by the calling service; both the web search and the PDF
// finder come through here and must land in separate stats buckets.
func (c *Client) Search(ctx context.Context, query string, num int) ([]models.SearchResult, error) {
	resp, err := c.post(ctx, "/search", serperRequest{Q: query, Num: num})
	if err != nil {
		return nil, err
	}

	if resp.Organic == nil {
		return []models.SearchResult{}, nil
	}
	return resp.Organic, nil
}

// Images runs an image search and returns the raw image URLs.
func (c *Client) Images(ctx context.Context, query string, num int) ([]string, error) {
	start := time.Now()
	resp, err := c.post(ctx, "/images", serperRequest{Q: query, Num: num})
	if err != nil {
		return nil, err
	}
	c.metrics.RecordTiming(metrics.OpImageSearch, time.Since(start))

	urls := make([]string, 0, len(resp.Images))
	for _, img := range resp.Images {
		urls = append(urls, img.ImageURL)
	}
	return urls, nil
}

func (c *Client) post(ctx context.Context, path string, payload serperRequest) (*serperResponse, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: SERPER_API_KEY", ErrMissingAPIKey)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serper request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serper API error %d: %s", resp.StatusCode, string(respBody))
	}

	var decoded serperResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &decoded, nil
}
