// Package client provides a REST client for the Lumexa server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/optivex/lumexa-go/internal/metrics"
	"github.com/optivex/lumexa-go/internal/models"
)

// Client talks to the Lumexa HTTP API. Each client carries its own session
// ID so one terminal session maps to one conversation on the server.
type Client struct {
	baseURL    string
	sessionID  string
	httpClient *http.Client
}

// New creates a client. If baseURL is empty, uses the LUMEXA_SERVER_URL env
// var or defaults to localhost:3000. Timeout can be configured via
// LUMEXA_CLIENT_TIMEOUT (default 2m; generation calls are slow).
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("LUMEXA_SERVER_URL")
	}
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	timeout := 2 * time.Minute
	if t := os.Getenv("LUMEXA_CLIENT_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			timeout = d
		}
	}

	return &Client{
		baseURL:   baseURL,
		sessionID: uuid.NewString(),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SessionID returns the conversation session this client is bound to.
func (c *Client) SessionID() string {
	return c.sessionID
}

// apiError is the error body returned by the server on failure.
type apiError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// post sends a JSON request and decodes the JSON response into result.
func (c *Client) post(ctx context.Context, path string, payload, result any) error {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", c.sessionID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("server error: %s - %s", resp.Status, string(body))
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}

// GenerateResult is the outcome of a chat exchange.
type GenerateResult struct {
	Model    string        `json:"model"`
	Response string        `json:"response"`
	Memory   []models.Turn `json:"memory"`
}

// Generate sends a chat prompt. mode may be empty (server defaults to chat).
func (c *Client) Generate(ctx context.Context, prompt, mode string) (*GenerateResult, error) {
	payload := map[string]string{"prompt": prompt}
	if mode != "" {
		payload["mode"] = mode
	}

	var result GenerateResult
	if err := c.post(ctx, "/api/generate", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SmartSearchResult is the outcome of a smart web search.
type SmartSearchResult struct {
	Query        string             `json:"query"`
	AIResponse   string             `json:"aiResponse"`
	References   []models.Reference `json:"references"`
	Images       []string           `json:"images"`
	TotalResults int                `json:"totalResults"`
	AnalyzedBy   string             `json:"analyzedBy"`
}

// SmartSearch runs the web-search pipeline for a query.
func (c *Client) SmartSearch(ctx context.Context, query string) (*SmartSearchResult, error) {
	var result SmartSearchResult
	if err := c.post(ctx, "/api/smart-search", map[string]string{"query": query}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PDFSearchResult lists PDFs found for a query.
type PDFSearchResult struct {
	Query      string             `json:"query"`
	TotalPDFs  int                `json:"totalPDFs"`
	PDFs       []models.Reference `json:"pdfs"`
	AnalyzedBy string             `json:"analyzedBy"`
}

// PDFSearch runs the PDF finder for a query.
func (c *Client) PDFSearch(ctx context.Context, query string) (*PDFSearchResult, error) {
	var result PDFSearchResult
	if err := c.post(ctx, "/api/pdf-search", map[string]string{"query": query}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// statsEnvelope wraps the stats payload.
type statsEnvelope struct {
	Stats metrics.Snapshot `json:"stats"`
}

// Stats fetches server runtime statistics.
func (c *Client) Stats(ctx context.Context) (*metrics.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/stats", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server error: %s - %s", resp.Status, string(body))
	}

	var envelope statsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &envelope.Stats, nil
}
