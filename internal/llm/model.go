// Package llm provides completion backends behind a single Generator
// contract. Cerebras (OpenAI-compatible), Ollama, and Bedrock go through
// langchaingo; Gemini uses its REST API directly.
package llm

import (
	"context"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/bedrock"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/optivex/lumexa-go/internal/config"
	"github.com/optivex/lumexa-go/internal/metrics"
)

// Default model per provider, used when no model is configured.
const (
	DefaultCerebrasModel = "gpt-oss-120b"
	DefaultGeminiModel   = "gemini-2.0-flash"
	DefaultOllamaModel   = "llama3.2"
	DefaultBedrockModel  = "anthropic.claude-3-5-haiku-20241022-v1:0"
)

// Generator is the completion contract consumed by the orchestrators:
// one system instruction, one user instruction, one text back.
type Generator interface {
	GenerateWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Model() string
}

// Model wraps a langchaingo LLM for text generation.
type Model struct {
	llm         llms.Model
	modelName   string
	temperature float64
	maxTokens   int
	timeout     time.Duration
	metrics     *metrics.Collector
}

// Compile-time check that Model implements Generator.
var _ Generator = (*Model)(nil)

// NewGenerator creates a completion backend based on configuration.
// The context is only used for provider setup (AWS credential resolution).
func NewGenerator(ctx context.Context, cfg config.Config, mc *metrics.Collector) (Generator, error) {
	var model llms.Model
	var err error
	modelName := cfg.LLMModel

	switch cfg.LLMProvider {
	case config.ProviderCerebras:
		if cfg.CerebrasAPIKey == "" {
			return nil, fmt.Errorf("%w: CEREBRAS_API_KEY", ErrMissingCredentials)
		}
		if modelName == "" {
			modelName = DefaultCerebrasModel
		}
		model, err = openai.New(
			openai.WithToken(cfg.CerebrasAPIKey),
			openai.WithModel(modelName),
			openai.WithBaseURL(cfg.CerebrasBaseURL),
		)
		if err != nil {
			return nil, fmt.Errorf("create cerebras model: %w", err)
		}

	case config.ProviderGemini:
		return NewGeminiClient(cfg, mc)

	case config.ProviderOllama:
		if modelName == "" {
			modelName = DefaultOllamaModel
		}
		model, err = ollama.New(
			ollama.WithModel(modelName),
			ollama.WithServerURL(cfg.OllamaHost),
		)
		if err != nil {
			return nil, fmt.Errorf("create ollama model: %w", err)
		}

	case config.ProviderBedrock:
		if modelName == "" {
			modelName = DefaultBedrockModel
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		client := bedrockruntime.NewFromConfig(awsCfg)
		model, err = bedrock.New(
			bedrock.WithClient(client),
			bedrock.WithModel(modelName),
		)
		if err != nil {
			return nil, fmt.Errorf("create bedrock model: %w", err)
		}

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLMProvider)
	}

	return &Model{
		llm:         model,
		modelName:   modelName,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		timeout:     cfg.RequestTimeout,
		metrics:     mc,
	}, nil
}

// GenerateWithSystem generates text from a system prompt plus user prompt.
// A response with no content is an upstream failure, not a silent fallback.
func (m *Model) GenerateWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	// The langchaingo clients carry no HTTP timeout of their own; a hung
	// upstream would otherwise hold the request open until the connection dies.
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, userPrompt),
	}

	start := time.Now()
	response, err := m.llm.GenerateContent(ctx, messages,
		llms.WithTemperature(m.temperature),
		llms.WithMaxTokens(m.maxTokens),
	)
	if err != nil {
		return "", wrapProviderError(fmt.Errorf("generate: %w", err))
	}
	m.metrics.RecordTiming(metrics.OpLLMGenerate, time.Since(start))

	if len(response.Choices) == 0 || response.Choices[0].Content == "" {
		return "", ErrEmptyCompletion
	}

	return response.Choices[0].Content, nil
}

// Model returns the LLM model name.
func (m *Model) Model() string {
	return m.modelName
}
