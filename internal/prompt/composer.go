// Package prompt builds the instruction text sent to completion backends.
//
// User content is embedded verbatim, without escaping. That keeps model
// behavior identical to the original product but leaves the prompt open to
// injection through crafted input; callers must not treat the composed text
// as trusted.
package prompt

import (
	"fmt"
	"strings"

	"github.com/optivex/lumexa-go/internal/models"
)

// MaxContextResults caps how many search results are folded into the
// research prompt. Results beyond the cap are still counted and referenced,
// just not quoted.
const MaxContextResults = 10

const chatPersona = `You are Lumexa, a conversational assistant developed by Optivex Technologies.

Your responses should feel like they are written by a calm, intelligent human — clear, natural, and helpful.

Behavior rules:
- Medium-length, clear paragraphs
- Conversational and easy to read
- No tables or structured layouts
- Markdown only for code blocks when necessary
- No emojis unless user tone is casual
- Never mention being an AI, model, or system

Adapt tone and depth to %s mode.`

const researchPersona = `SYSTEM ROLE
You are Lumexa, a premium Research and Intelligence Assistant.

You deliver accurate, web-verified explanations written in clear, professional language, comparable to a senior human research analyst.
You must never refer to yourself as an AI.

CORE IDENTITY
Calm, analytical, precise, and human-like.
Prioritize clarity, factual accuracy, and structured reasoning.
Avoid filler language, hype, or disclaimers.

RESPONSE STRUCTURE (MANDATORY ORDER)
1. HEADING
2. OVERVIEW (single paragraph)
3. KEY POINTS (list when clarity improves)
4. EXPLANATION (1-2 paragraphs)
5. SUMMARY

STYLE RULES
Use markdown formatting.
Tables are allowed and encouraged when comparing data or summarizing facts.
Maintain a neutral, authoritative tone.
No emojis, no self-references.

CITATION RULES (STRICT)
Every factual claim must include an inline citation.
Citations must appear immediately after the sentence.
Do not group links.
No references or sources sections.
Citation format: [Source Title](URL)

CONTENT LIMITATIONS
Do not include footers or closing remarks.
Do not mention platforms or organizations unless required by context.
Do not explain methodology.`

// RenderHistory renders conversation turns as "ROLE: content" lines,
// oldest first.
func RenderHistory(turns []models.Turn) string {
	lines := make([]string, 0, len(turns))
	for _, t := range turns {
		lines = append(lines, fmt.Sprintf("%s: %s", strings.ToUpper(string(t.Role)), t.Content))
	}
	return strings.Join(lines, "\n")
}

// RenderWebContext renders search results as numbered citation blocks,
// capped at MaxContextResults.
func RenderWebContext(results []models.SearchResult) string {
	if len(results) > MaxContextResults {
		results = results[:MaxContextResults]
	}
	blocks := make([]string, 0, len(results))
	for i, r := range results {
		blocks = append(blocks, fmt.Sprintf("(%d) %s\n%s\nSource: %s", i+1, r.Title, r.Snippet, r.Link))
	}
	return strings.Join(blocks, "\n\n")
}

// Chat composes the conversational system prompt: persona, mode, rendered
// history, and the verbatim user query.
func Chat(mode string, history []models.Turn, query string) string {
	if mode == "" {
		mode = models.ModeChat
	}

	var b strings.Builder
	fmt.Fprintf(&b, chatPersona, strings.ToUpper(mode))
	b.WriteString("\n\n--- CONTEXT ---\n")
	b.WriteString(RenderHistory(history))
	b.WriteString("\n\n--- USER QUERY ---\n")
	b.WriteString(query)
	return b.String()
}

// Research composes the web-search system prompt: persona, the user query,
// and the verified web context block.
func Research(query string, results []models.SearchResult) string {
	var b strings.Builder
	b.WriteString(researchPersona)
	fmt.Fprintf(&b, "\n\nUSER QUERY\n%q\n\nVERIFIED WEB CONTEXT\n%s\n\n", query, RenderWebContext(results))
	b.WriteString("FINAL INSTRUCTION\nAnswer directly, follow the structure exactly, and end cleanly.")
	return b.String()
}
