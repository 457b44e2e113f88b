package handlers

import (
	"net/http"

	"zonosign/internal/service"
)

// NavigationHandler persists the client's active tab
type NavigationHandler struct {
	lessonService *service.LessonService
	navService    *service.NavigationService
}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler(lessonService *service.LessonService, navService *service.NavigationService) *NavigationHandler {
	return &NavigationHandler{
		lessonService: lessonService,
		navService:    navService,
	}
}

type tabRequest struct {
	Tab string `json:"tab"`
}

// Get handles GET /api/navigation
func (h *NavigationHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	respondJSON(w, http.StatusOK, map[string]string{"activeTab": h.navService.CurrentTab(user.ID)})
}

// SetTab handles PUT /api/navigation/tab
func (h *NavigationHandler) SetTab(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req tabRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", "", err)
		return
	}

	if !h.lessonService.SetTab(user.ID, req.Tab) {
		respondWithError(w, http.StatusBadRequest, "unknown tab", "", nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"activeTab": req.Tab})
}
