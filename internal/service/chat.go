package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/optivex/lumexa-go/internal/llm"
	"github.com/optivex/lumexa-go/internal/memory"
	"github.com/optivex/lumexa-go/internal/models"
	"github.com/optivex/lumexa-go/internal/prompt"
)

// Generator is the completion contract the orchestrators depend on.
// Satisfied by the llm package backends.
type Generator interface {
	GenerateWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Model() string
}

// ChatService handles conversational generation with session memory.
type ChatService struct {
	model        Generator // nil when no provider is configured
	store        *memory.Store
	historyLimit int
	logger       *slog.Logger
}

// NewChatService creates a chat service. model may be nil; requests then
// fail with ErrNotConfigured instead of the server refusing to start.
func NewChatService(model Generator, store *memory.Store, historyLimit int, logger *slog.Logger) *ChatService {
	if historyLimit <= 0 {
		historyLimit = memory.DefaultLimit
	}
	return &ChatService{
		model:        model,
		store:        store,
		historyLimit: historyLimit,
		logger:       logger,
	}
}

// ChatResult is the outcome of one chat exchange.
type ChatResult struct {
	Model    string
	Response string
	Memory   []models.Turn
}

// Generate appends the user turn, composes the persona prompt from the
// session's history, calls the completion backend, and appends the reply.
//
// On upstream failure the user turn stays in the store: a later retry should
// still see the message that failed to get an answer.
func (s *ChatService) Generate(ctx context.Context, sessionID, userPrompt, mode string) (*ChatResult, error) {
	if strings.TrimSpace(userPrompt) == "" {
		return nil, ErrEmptyPrompt
	}
	if mode == "" {
		mode = models.ModeChat
	}
	if s.model == nil {
		return nil, fmt.Errorf("%w: completion provider", ErrNotConfigured)
	}

	s.store.Append(sessionID, models.Turn{Role: models.RoleUser, Content: userPrompt})

	history := s.store.Recent(sessionID, s.historyLimit)
	systemPrompt := prompt.Chat(mode, history, userPrompt)

	reply, err := s.model.GenerateWithSystem(ctx, systemPrompt, userPrompt)
	if err != nil {
		s.logger.Error("chat generation failed", "session", sessionID, "mode", mode, "error", err)
		return nil, classify(err)
	}

	s.store.Append(sessionID, models.Turn{Role: models.RoleAssistant, Content: reply})

	return &ChatResult{
		Model:    s.model.Model(),
		Response: reply,
		Memory:   s.store.Recent(sessionID, s.historyLimit),
	}, nil
}

// Ensure the llm backends satisfy the local contract.
var _ Generator = (llm.Generator)(nil)
