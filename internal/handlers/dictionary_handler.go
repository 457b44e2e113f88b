package handlers

import (
	"net/http"
	"strings"

	"zonosign/internal/repository"
)

// DictionaryHandler serves the sign catalog
type DictionaryHandler struct {
	signRepo *repository.SignRepository
}

// NewDictionaryHandler creates a new dictionary handler
func NewDictionaryHandler(signRepo *repository.SignRepository) *DictionaryHandler {
	return &DictionaryHandler{signRepo: signRepo}
}

// Categories handles GET /api/dictionary/categories
func (h *DictionaryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.signRepo.ListCategories()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load categories", "Category listing error", err)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

// Signs handles GET /api/dictionary/categories/{categoryID}/signs
func (h *DictionaryHandler) Signs(w http.ResponseWriter, r *http.Request) {
	categoryID := r.PathValue("categoryID")

	category, err := h.signRepo.GetCategory(categoryID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load category", "Category lookup error", err)
		return
	}
	if category == nil {
		respondWithError(w, http.StatusNotFound, "category not found", "", nil)
		return
	}

	signs, err := h.signRepo.ListByCategory(categoryID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load signs", "Sign listing error", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"category": category,
		"signs":    signs,
	})
}

// Search handles GET /api/dictionary/search?q=...
func (h *DictionaryHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		respondWithError(w, http.StatusBadRequest, "missing search query", "", nil)
		return
	}

	signs, err := h.signRepo.Search(query)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "search failed", "Sign search error", err)
		return
	}

	respondJSON(w, http.StatusOK, signs)
}
