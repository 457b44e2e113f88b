package handlers

import (
	"net/http"

	"zonosign/internal/service"
)

// AchievementHandler serves the achievement catalog and notifications
type AchievementHandler struct {
	achievementService *service.AchievementService
}

// NewAchievementHandler creates a new achievement handler
func NewAchievementHandler(achievementService *service.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievementService: achievementService}
}

type achievementView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	XPReward    int    `json:"xpReward"`
	Unlocked    bool   `json:"unlocked"`
	Progress    int    `json:"progress"`
}

// List handles GET /api/achievements
func (h *AchievementHandler) List(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	state := h.achievementService.State(user.ID)

	var views []achievementView
	for _, def := range h.achievementService.Definitions() {
		views = append(views, achievementView{
			ID:          def.ID,
			Title:       def.Title,
			Description: def.Description,
			Icon:        def.Icon,
			XPReward:    def.XPReward,
			Unlocked:    state.IsUnlocked(def.ID),
			Progress:    h.achievementService.ProgressPercent(user.ID, def),
		})
	}

	respondJSON(w, http.StatusOK, views)
}

// Notifications handles POST /api/achievements/notifications. Each pending
// unlock is delivered once; the drain empties the queue.
func (h *AchievementHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	ids := h.achievementService.DrainNotifications(user.ID)

	var views []achievementView
	for _, id := range ids {
		def := h.achievementService.Definition(id)
		if def == nil {
			continue
		}
		views = append(views, achievementView{
			ID:          def.ID,
			Title:       def.Title,
			Description: def.Description,
			Icon:        def.Icon,
			XPReward:    def.XPReward,
			Unlocked:    true,
			Progress:    100,
		})
	}

	respondJSON(w, http.StatusOK, views)
}
