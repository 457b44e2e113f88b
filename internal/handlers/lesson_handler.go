package handlers

import (
	"errors"
	"net/http"

	"zonosign/internal/service"
)

// LessonHandler handles quiz session HTTP requests
type LessonHandler struct {
	lessonService *service.LessonService
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(lessonService *service.LessonService) *LessonHandler {
	return &LessonHandler{lessonService: lessonService}
}

type answerRequest struct {
	Answer string `json:"answer"`
}

// Start handles POST /api/lessons/{lessonID}/start
func (h *LessonHandler) Start(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	lessonID := r.PathValue("lessonID")

	session, err := h.lessonService.StartLesson(user.ID, lessonID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLessonNotFound):
			respondWithError(w, http.StatusNotFound, "lesson not found", "", nil)
		case errors.Is(err, service.ErrTooFewSigns):
			respondWithError(w, http.StatusUnprocessableEntity, "lesson has too few signs for a quiz", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "failed to start lesson", "Lesson start error", err)
		}
		return
	}

	respondJSON(w, http.StatusOK, session)
}

// Current handles GET /api/lessons/session
func (h *LessonHandler) Current(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	session, ok := h.lessonService.Session(user.ID)
	if !ok {
		respondWithError(w, http.StatusNotFound, "no active session", "", nil)
		return
	}

	respondJSON(w, http.StatusOK, session)
}

// Answer handles POST /api/lessons/session/answer
func (h *LessonHandler) Answer(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req answerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", "", err)
		return
	}

	session, ok := h.lessonService.SelectAnswer(user.ID, req.Answer)
	if !ok {
		respondWithError(w, http.StatusNotFound, "no active session", "", nil)
		return
	}

	respondJSON(w, http.StatusOK, session)
}

// Advance handles POST /api/lessons/session/advance
func (h *LessonHandler) Advance(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	result, ok := h.lessonService.Advance(user.ID)
	if !ok {
		respondWithError(w, http.StatusNotFound, "no active session", "", nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"session":        result.Session,
		"completed":      result.Completed,
		"firstCompleted": result.FirstCompleted,
		"progress":       result.Progress,
		"newlyUnlocked":  result.NewlyUnlocked,
	})
}

// Abandon handles POST /api/lessons/session/abandon
func (h *LessonHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	h.lessonService.ReturnToDashboard(user.ID)
	respondJSON(w, http.StatusOK, map[string]bool{"abandoned": true})
}
