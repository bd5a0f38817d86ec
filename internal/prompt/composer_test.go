package prompt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/optivex/lumexa-go/internal/models"
)

func TestRenderHistory(t *testing.T) {
	turns := []models.Turn{
		{Role: models.RoleUser, Content: "hello"},
		{Role: models.RoleAssistant, Content: "hi there"},
	}

	got := RenderHistory(turns)
	want := "USER: hello\nASSISTANT: hi there"
	if got != want {
		t.Errorf("RenderHistory = %q, want %q", got, want)
	}
}

func TestRenderHistoryEmpty(t *testing.T) {
	if got := RenderHistory(nil); got != "" {
		t.Errorf("RenderHistory(nil) = %q, want empty", got)
	}
}

func TestRenderWebContextCapsResults(t *testing.T) {
	var results []models.SearchResult
	for i := 0; i < 15; i++ {
		results = append(results, models.SearchResult{
			Title:   fmt.Sprintf("title-%d", i),
			Link:    fmt.Sprintf("https://example.com/%d", i),
			Snippet: fmt.Sprintf("snippet-%d", i),
		})
	}

	got := RenderWebContext(results)

	if !strings.Contains(got, "(1) title-0") {
		t.Errorf("context missing first result:\n%s", got)
	}
	if !strings.Contains(got, fmt.Sprintf("(%d) title-%d", MaxContextResults, MaxContextResults-1)) {
		t.Errorf("context missing result %d:\n%s", MaxContextResults, got)
	}
	if strings.Contains(got, fmt.Sprintf("title-%d", MaxContextResults)) {
		t.Errorf("context contains result beyond cap:\n%s", got)
	}
	if blocks := strings.Split(got, "\n\n"); len(blocks) != MaxContextResults {
		t.Errorf("context has %d blocks, want %d", len(blocks), MaxContextResults)
	}
}

func TestRenderWebContextBlockShape(t *testing.T) {
	got := RenderWebContext([]models.SearchResult{
		{Title: "Go", Link: "https://go.dev", Snippet: "The Go programming language"},
	})
	want := "(1) Go\nThe Go programming language\nSource: https://go.dev"
	if got != want {
		t.Errorf("block = %q, want %q", got, want)
	}
}

func TestChatPrompt(t *testing.T) {
	history := []models.Turn{
		{Role: models.RoleUser, Content: "what is go?"},
	}

	got := Chat("code", history, "show me an example")

	for _, want := range []string{
		"Adapt tone and depth to CODE mode.",
		"--- CONTEXT ---\nUSER: what is go?",
		"--- USER QUERY ---\nshow me an example",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("chat prompt missing %q:\n%s", want, got)
		}
	}
}

func TestChatPromptDefaultsMode(t *testing.T) {
	got := Chat("", nil, "hi")
	if !strings.Contains(got, "Adapt tone and depth to CHAT mode.") {
		t.Errorf("empty mode did not default to chat:\n%s", got)
	}
}

func TestResearchPrompt(t *testing.T) {
	got := Research("latest go release", []models.SearchResult{
		{Title: "Go Blog", Link: "https://go.dev/blog", Snippet: "Go 1.25 released"},
	})

	for _, want := range []string{
		`USER QUERY
"latest go release"`,
		"VERIFIED WEB CONTEXT\n(1) Go Blog",
		"FINAL INSTRUCTION",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("research prompt missing %q:\n%s", want, got)
		}
	}
}
