package server

import (
	"encoding/json"
	"net/http"

	"github.com/optivex/lumexa-go/internal/metrics"
	"github.com/optivex/lumexa-go/internal/models"
	"github.com/optivex/lumexa-go/internal/service"
)

// analyzedBy is the product signature included in search responses; the
// frontend displays it as the attribution line.
const analyzedBy = "Lumexa"

type generateRequest struct {
	Prompt string `json:"prompt"`
	Mode   string `json:"mode"`
}

type generateResponse struct {
	Success  bool          `json:"success"`
	Model    string        `json:"model"`
	Response string        `json:"response"`
	Memory   []models.Turn `json:"memory"`
}

func (s *Server) handleGenerate(chat *service.ChatService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, s.logger, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
			return
		}

		result, err := chat.Generate(r.Context(), sessionID(r), req.Prompt, req.Mode)
		if err != nil {
			writeError(w, s.logger, err)
			return
		}

		writeJSON(w, s.logger, http.StatusOK, generateResponse{
			Success:  true,
			Model:    result.Model,
			Response: result.Response,
			Memory:   result.Memory,
		})
	}
}

type queryRequest struct {
	Query string `json:"query"`
}

type smartSearchResponse struct {
	Success      bool               `json:"success"`
	Query        string             `json:"query"`
	AIResponse   string             `json:"aiResponse"`
	References   []models.Reference `json:"references"`
	Images       []string           `json:"images"`
	TotalResults int                `json:"totalResults"`
	AnalyzedBy   string             `json:"analyzedBy"`
}

func (s *Server) handleSmartSearch(webSearch *service.WebSearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req queryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, s.logger, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
			return
		}

		result, err := webSearch.Search(r.Context(), req.Query)
		if err != nil {
			writeError(w, s.logger, err)
			return
		}

		writeJSON(w, s.logger, http.StatusOK, smartSearchResponse{
			Success:      true,
			Query:        result.Query,
			AIResponse:   result.AIResponse,
			References:   result.References,
			Images:       result.Images,
			TotalResults: result.TotalResults,
			AnalyzedBy:   analyzedBy,
		})
	}
}

type pdfSearchResponse struct {
	Success    bool               `json:"success"`
	Query      string             `json:"query"`
	TotalPDFs  int                `json:"totalPDFs"`
	PDFs       []models.Reference `json:"pdfs"`
	AnalyzedBy string             `json:"analyzedBy"`
}

func (s *Server) handlePDFSearch(pdf *service.PDFService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req queryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, s.logger, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
			return
		}

		result, err := pdf.Search(r.Context(), req.Query)
		if err != nil {
			writeError(w, s.logger, err)
			return
		}

		writeJSON(w, s.logger, http.StatusOK, pdfSearchResponse{
			Success:    true,
			Query:      result.Query,
			TotalPDFs:  result.TotalPDFs,
			PDFs:       result.PDFs,
			AnalyzedBy: analyzedBy,
		})
	}
}

type statsResponse struct {
	Success bool             `json:"success"`
	Stats   metrics.Snapshot `json:"stats"`
}

func (s *Server) handleStats(mc *metrics.Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, s.logger, http.StatusOK, statsResponse{
			Success: true,
			Stats:   mc.Snapshot(),
		})
	}
}

// sessionID extracts the conversation session from the request. Requests
// without the header share the default session, matching the original
// frontend's behavior.
func sessionID(r *http.Request) string {
	return r.Header.Get("X-Session-ID")
}
