package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/tmc/langchaingo/llms"

	"github.com/optivex/lumexa-go/internal/config"
)

// hangingModel blocks until the context is done, like an upstream that
// accepted the connection and never answers.
type hangingModel struct{}

func (hangingModel) GenerateContent(ctx context.Context, _ []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (hangingModel) Call(ctx context.Context, _ string, _ ...llms.CallOption) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestIsRateLimitError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		limited bool
	}{
		{"nil error", nil, false},
		{"generic error", errors.New("connection reset"), false},
		{"rate limit", errors.New("rate limit exceeded"), true},
		{"too many requests", errors.New("HTTP 429: Too Many Requests"), true},
		{"quota", errors.New("quota exceeded for model"), true},
		{"resource exhausted", errors.New("RESOURCE EXHAUSTED"), true},
		{"wrapped error", fmt.Errorf("generate: %w", errors.New("rate limit hit")), true},
		{"timeout not limited", errors.New("context deadline exceeded"), false},
		{"404 not limited", errors.New("HTTP 404: not found"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isRateLimitError(tt.err)
			if got != tt.limited {
				t.Errorf("isRateLimitError(%v) = %v, want %v", tt.err, got, tt.limited)
			}
		})
	}
}

func TestWrapProviderError(t *testing.T) {
	t.Run("wraps rate limit error", func(t *testing.T) {
		err := errors.New("too many requests")
		wrapped := wrapProviderError(err)
		if !errors.Is(wrapped, ErrRateLimited) {
			t.Error("expected wrapped error to match ErrRateLimited")
		}
	})

	t.Run("passes through other errors", func(t *testing.T) {
		err := errors.New("network timeout")
		result := wrapProviderError(err)
		if errors.Is(result, ErrRateLimited) {
			t.Error("plain error should not be tagged as rate limited")
		}
		if result != err {
			t.Errorf("expected original error returned, got %v", result)
		}
	})

	t.Run("does not double-wrap", func(t *testing.T) {
		err := fmt.Errorf("%w: try later", ErrRateLimited)
		if got := wrapProviderError(err); got != err {
			t.Errorf("already-tagged error was rewrapped: %v", got)
		}
	})

	t.Run("nil error", func(t *testing.T) {
		if got := wrapProviderError(nil); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}

func TestNewGeneratorMissingCredentials(t *testing.T) {
	tests := []struct {
		name     string
		provider config.Provider
	}{
		{"cerebras without key", config.ProviderCerebras},
		{"gemini without key", config.ProviderGemini},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Config{LLMProvider: tt.provider}
			_, err := NewGenerator(context.Background(), cfg, nil)
			if !errors.Is(err, ErrMissingCredentials) {
				t.Errorf("err = %v, want ErrMissingCredentials", err)
			}
		})
	}
}

func TestNewGeneratorUnknownProvider(t *testing.T) {
	cfg := config.Config{LLMProvider: config.Provider("hal9000")}
	_, err := NewGenerator(context.Background(), cfg, nil)
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestGenerateWithSystemBoundsHungUpstream(t *testing.T) {
	m := &Model{
		llm:       hangingModel{},
		modelName: "hung",
		timeout:   50 * time.Millisecond,
	}

	start := time.Now()
	_, err := m.GenerateWithSystem(context.Background(), "system", "user")
	elapsed := time.Since(start)

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want context.DeadlineExceeded", err)
	}
	if elapsed > 2*time.Second {
		t.Errorf("returned after %v, want within the configured bound", elapsed)
	}
}

func TestGenerateWithSystemNoTimeoutKeepsCallerContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := &Model{llm: hangingModel{}, modelName: "hung"}
	_, err := m.GenerateWithSystem(ctx, "system", "user")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestNewGeneratorCerebrasDefaults(t *testing.T) {
	cfg := config.Config{
		LLMProvider:     config.ProviderCerebras,
		CerebrasAPIKey:  "test-key",
		CerebrasBaseURL: "https://api.cerebras.ai/v1",
	}

	gen, err := NewGenerator(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	if gen.Model() != DefaultCerebrasModel {
		t.Errorf("Model = %q, want %q", gen.Model(), DefaultCerebrasModel)
	}
}
