package handlers

import (
	"errors"
	"net/http"

	"zonosign/internal/models"
	"zonosign/internal/service"
	"zonosign/internal/validation"
)

// OnboardingHandler handles the first-launch profile flow
type OnboardingHandler struct {
	authService   *service.AuthService
	lessonService *service.LessonService
}

// NewOnboardingHandler creates a new onboarding handler
func NewOnboardingHandler(authService *service.AuthService, lessonService *service.LessonService) *OnboardingHandler {
	return &OnboardingHandler{
		authService:   authService,
		lessonService: lessonService,
	}
}

type onboardingRequest struct {
	Name              string `json:"name"`
	SignLanguageLevel string `json:"signLanguageLevel"`
	HoursPerDay       string `json:"hoursPerDay"`
}

// Complete handles POST /api/onboarding. Saving the profile also pushes
// every ledger remotely so a fresh account has its documents from day one.
func (h *OnboardingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req onboardingRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", "", err)
		return
	}

	profile := models.OnboardingProfile{
		Name:              req.Name,
		SignLanguageLevel: req.SignLanguageLevel,
		HoursPerDay:       req.HoursPerDay,
	}

	if err := h.authService.CompleteOnboarding(user.ID, profile); err != nil {
		var vErr validation.ValidationError
		if errors.As(err, &vErr) {
			respondWithError(w, http.StatusBadRequest, vErr.Error(), "", nil)
		} else {
			respondWithError(w, http.StatusInternalServerError, "failed to save profile", "Onboarding error", err)
		}
		return
	}

	h.lessonService.PushAll(user.ID)

	respondJSON(w, http.StatusOK, map[string]bool{"onboardingCompleted": true})
}
