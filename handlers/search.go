package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"bookscout/models"
	searchpkg "bookscout/services/search"
)

// searchService is the boundary the handler depends on.
type searchService interface {
	Search(ctx context.Context, query string) ([]models.Book, error)
}

var _ searchService = (*searchpkg.Service)(nil)

type SearchHandler struct {
	Service searchService
}

func NewSearchHandler(s searchService) *SearchHandler {
	return &SearchHandler{Service: s}
}

// SearchResponse wraps the grouped result list.
type SearchResponse struct {
	Results []models.Book `json:"results"`
}

func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if strings.TrimSpace(query) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "search query is required"})
		return
	}

	// The query is passed through verbatim; the cache keys on the literal
	// string, untrimmed.
	results, err := h.Service.Search(r.Context(), query)
	if err != nil {
		log.Printf("[api] search %q failed: %v", query, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if results == nil {
		results = []models.Book{}
	}
	writeJSON(w, http.StatusOK, SearchResponse{Results: results})
}

// Download acknowledges the request without delivering anything; file
// delivery is not implemented, but the route shape is part of the public API.
func (h *SearchHandler) Download(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "download is not implemented yet",
		"id":      id,
	})
}

// Health reports liveness. It touches neither the cache nor any external
// site.
func (h *SearchHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// RegisterRoutes attaches the handler's routes under /api. OPTIONS is
// registered alongside GET because mux only runs middleware on matched
// routes; without it a CORS preflight would 405 before reaching the
// middleware chain.
func (h *SearchHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/search", h.Search).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/download/{id}", h.Download).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/health", h.Health).Methods(http.MethodGet, http.MethodOptions)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
