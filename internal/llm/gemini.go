package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/optivex/lumexa-go/internal/config"
	"github.com/optivex/lumexa-go/internal/metrics"
)

// GeminiClient implements Generator against the Gemini REST API directly.
// langchaingo's googleai backend drags in the full Google Cloud SDK for what
// is a single JSON endpoint here, so the client is hand-rolled.
type GeminiClient struct {
	apiKey    string
	baseURL   string
	modelName string

	temperature float64
	maxTokens   int

	client  *http.Client
	metrics *metrics.Collector
}

// Compile-time check that GeminiClient implements Generator.
var _ Generator = (*GeminiClient)(nil)

// NewGeminiClient creates a Gemini completion client.
func NewGeminiClient(cfg config.Config, mc *metrics.Collector) (*GeminiClient, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY", ErrMissingCredentials)
	}

	modelName := cfg.LLMModel
	if modelName == "" {
		modelName = DefaultGeminiModel
	}

	return &GeminiClient{
		apiKey:      cfg.GeminiAPIKey,
		baseURL:     cfg.GeminiBaseURL,
		modelName:   modelName,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		client:      &http.Client{Timeout: cfg.RequestTimeout},
		metrics:     mc,
	}, nil
}

// geminiRequest is the generateContent request payload.
type geminiRequest struct {
	SystemInstruction *geminiContent   `json:"system_instruction,omitempty"`
	Contents          []geminiContent  `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// geminiResponse is the generateContent response payload.
type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GenerateWithSystem calls models/<model>:generateContent with the system
// instruction and user prompt. Fails closed when the response carries no
// candidate text.
func (c *GeminiClient) GenerateWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	payload := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: systemPrompt}}},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: userPrompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     c.temperature,
			MaxOutputTokens: c.maxTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.modelName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", fmt.Errorf("%w: %s", ErrRateLimited, string(respBody))
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error %d: %s", resp.StatusCode, string(respBody))
	}
	c.metrics.RecordTiming(metrics.OpLLMGenerate, time.Since(start))

	var decoded geminiResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyCompletion
	}
	text := decoded.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

// Model returns the Gemini model name.
func (c *GeminiClient) Model() string {
	return c.modelName
}
