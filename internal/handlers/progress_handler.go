package handlers

import (
	"net/http"

	"zonosign/internal/service"
)

// ProgressHandler serves progress ledger reads
type ProgressHandler struct {
	progressService *service.ProgressService
	xpService       *service.XPService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressService *service.ProgressService, xpService *service.XPService) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
		xpService:       xpService,
	}
}

// Get handles GET /api/progress
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	ledger := h.progressService.Ledger(user.ID)
	xp := h.xpService.Ledger(user.ID)

	respondJSON(w, http.StatusOK, map[string]any{
		"points":           ledger.Points,
		"streaks":          ledger.Streak,
		"completedLessons": ledger.CompletedLessons,
		"totalXP":          xp.TotalXP,
		"weeklyXP":         xp.WeeklyXP,
		"level":            xp.Level(),
	})
}
