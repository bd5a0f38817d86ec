package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/optivex/lumexa-go/internal/metrics"
	"github.com/optivex/lumexa-go/internal/models"
	"github.com/optivex/lumexa-go/internal/prompt"
)

// Searcher is the web-search contract the orchestrators depend on.
// Satisfied by the search.Client.
type Searcher interface {
	Search(ctx context.Context, query string, num int) ([]models.SearchResult, error)
	Images(ctx context.Context, query string, num int) ([]string, error)
}

// NoResultsMessage is the defined answer for a search that returned nothing.
// Zero results are a success path, not an error.
const NoResultsMessage = "No relevant verified information was found for this query."

// imageSearchCount is how many image results are requested per enrichment.
const imageSearchCount = 10

// imageExtensions are the URL suffixes accepted during image enrichment.
// Filtering is by suffix only; content types are not verified.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// WebSearchService runs the smart web search pipeline:
// search, compose, generate, enrich, respond.
type WebSearchService struct {
	search  Searcher
	model   Generator // nil when no provider is configured
	metrics *metrics.Collector
	logger  *slog.Logger
}

// NewWebSearchService creates the smart search orchestrator.
func NewWebSearchService(search Searcher, model Generator, mc *metrics.Collector, logger *slog.Logger) *WebSearchService {
	return &WebSearchService{
		search:  search,
		model:   model,
		metrics: mc,
		logger:  logger,
	}
}

// WebSearchResponse is the assembled result of one smart search.
type WebSearchResponse struct {
	Query        string
	AIResponse   string
	References   []models.Reference
	Images       []string
	TotalResults int
}

// Search executes the pipeline for one query.
func (s *WebSearchService) Search(ctx context.Context, query string) (*WebSearchResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if s.model == nil {
		// Checked up front so a misconfigured server fails before spending
		// a search call.
		return nil, fmt.Errorf("%w: completion provider", ErrNotConfigured)
	}

	searchStart := time.Now()
	results, err := s.search.Search(ctx, query, 0)
	if err != nil {
		s.logger.Error("web search failed", "query", query, "error", err)
		return nil, classify(err)
	}
	s.metrics.RecordTiming(metrics.OpWebSearch, time.Since(searchStart))

	if len(results) == 0 {
		return &WebSearchResponse{
			Query:      query,
			AIResponse: NoResultsMessage,
			References: []models.Reference{},
			Images:     []string{},
		}, nil
	}

	top := results
	if len(top) > prompt.MaxContextResults {
		top = top[:prompt.MaxContextResults]
	}

	systemPrompt := prompt.Research(query, top)
	answer, err := s.model.GenerateWithSystem(ctx, systemPrompt, query)
	if err != nil {
		s.logger.Error("answer generation failed", "query", query, "error", err)
		return nil, classify(err)
	}

	return &WebSearchResponse{
		Query:        query,
		AIResponse:   answer,
		References:   models.NewReferences(top),
		Images:       s.enrichImages(ctx, query),
		TotalResults: len(results),
	}, nil
}

// enrichImages fetches and filters image URLs for the query. Enrichment is
// best effort: any failure degrades to an empty list.
func (s *WebSearchService) enrichImages(ctx context.Context, query string) []string {
	urls, err := s.search.Images(ctx, query, imageSearchCount)
	if err != nil {
		s.logger.Warn("image enrichment failed", "query", query, "error", err)
		return []string{}
	}

	filtered := make([]string, 0, len(urls))
	for _, u := range urls {
		if hasImageExtension(u) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

func hasImageExtension(url string) bool {
	lower := strings.ToLower(url)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// timeOp is a small helper to record pipeline timings.
func timeOp(mc *metrics.Collector, op string, start time.Time) {
	mc.RecordTiming(op, time.Since(start))
}
