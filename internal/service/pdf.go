package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/optivex/lumexa-go/internal/metrics"
	"github.com/optivex/lumexa-go/internal/models"
)

// pdfQuerySuffix biases the search engine toward PDF documents.
const pdfQuerySuffix = " filetype:pdf"

// pdfResultCount asks for a larger page since suffix filtering discards
// many hits.
const pdfResultCount = 20

// PDFService finds PDF documents on the web. Search-and-filter only;
// no generation step.
type PDFService struct {
	search  Searcher
	metrics *metrics.Collector
	logger  *slog.Logger
}

// NewPDFService creates the PDF finder.
func NewPDFService(search Searcher, mc *metrics.Collector, logger *slog.Logger) *PDFService {
	return &PDFService{
		search:  search,
		metrics: mc,
		logger:  logger,
	}
}

// PDFSearchResponse lists the PDFs found for a query.
type PDFSearchResponse struct {
	Query     string
	TotalPDFs int
	PDFs      []models.Reference
}

// Search augments the query with a filetype token, then strictly filters to
// links whose URL ends in ".pdf" (case-insensitive). A link that merely
// claims the suffix still passes; content types are not verified.
func (s *PDFService) Search(ctx context.Context, query string) (*PDFSearchResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	defer timeOp(s.metrics, metrics.OpPDFSearch, time.Now())

	results, err := s.search.Search(ctx, query+pdfQuerySuffix, pdfResultCount)
	if err != nil {
		s.logger.Error("pdf search failed", "query", query, "error", err)
		return nil, classify(err)
	}

	pdfs := make([]models.Reference, 0, len(results))
	for _, r := range results {
		if !strings.HasSuffix(strings.ToLower(r.Link), ".pdf") {
			continue
		}
		title := r.Title
		if title == "" {
			title = "Untitled PDF"
		}
		pdfs = append(pdfs, models.Reference{
			ID:      len(pdfs) + 1,
			Title:   title,
			Link:    r.Link,
			Snippet: r.Snippet,
		})
	}

	return &PDFSearchResponse{
		Query:     query,
		TotalPDFs: len(pdfs),
		PDFs:      pdfs,
	}, nil
}
