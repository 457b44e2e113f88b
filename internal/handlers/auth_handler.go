package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"zonosign/internal/models"
	"zonosign/internal/security"
	"zonosign/internal/service"
	"zonosign/internal/validation"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService   *service.AuthService
	lessonService *service.LessonService
	emailService  *service.EmailService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, lessonService *service.LessonService, emailService *service.EmailService) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		lessonService: lessonService,
		emailService:  emailService,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID                  int64  `json:"id"`
	Email               string `json:"email"`
	Name                string `json:"name"`
	SignLanguageLevel   string `json:"signLanguageLevel,omitempty"`
	HoursPerDay         string `json:"hoursPerDay,omitempty"`
	OnboardingCompleted bool   `json:"onboardingCompleted"`
}

func toUserResponse(user *models.User) userResponse {
	return userResponse{
		ID:                  user.ID,
		Email:               user.Email,
		Name:                user.Name,
		SignLanguageLevel:   user.SignLanguageLevel,
		HoursPerDay:         user.HoursPerDay,
		OnboardingCompleted: user.OnboardingCompleted,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", "", err)
		return
	}

	user, err := h.authService.Register(req.Email, req.Password, req.Name)
	if err != nil {
		var vErr validation.ValidationError
		switch {
		case errors.As(err, &vErr):
			respondWithError(w, http.StatusBadRequest, vErr.Error(), "", nil)
		case errors.Is(err, service.ErrEmailTaken):
			respondWithError(w, http.StatusConflict, "email already taken", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "registration failed", "Registration error", err)
		}
		return
	}

	session, _, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "registration failed", "Post-registration login error", err)
		return
	}

	// Welcome email is best effort, never blocks registration
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := h.emailService.SendWelcomeEmail(ctx, user.Email, user.Name); err != nil {
			log.Printf("Failed to send welcome email to %s: %v", user.Email, err)
		}
	}()

	http.SetCookie(w, security.CreateSessionCookie(r, "session_id", session.ID, session.ExpiresAt))
	respondJSON(w, http.StatusCreated, toUserResponse(user))
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", "", err)
		return
	}

	session, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondWithError(w, http.StatusUnauthorized, "invalid email or password", "", nil)
		} else {
			respondWithError(w, http.StatusInternalServerError, "login failed", "Login error", err)
		}
		return
	}

	h.lessonService.Hydrate(r.Context(), user.ID)

	http.SetCookie(w, security.CreateSessionCookie(r, "session_id", session.ID, session.ExpiresAt))
	respondJSON(w, http.StatusOK, toUserResponse(user))
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	respondJSON(w, http.StatusOK, toUserResponse(user))
}

// SignOut handles POST /api/auth/signout. Sign-out wipes the account's
// learning state everywhere, matching the product's fresh-start behavior.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	h.lessonService.ResetAll(r.Context(), user.ID)

	if cookie, err := r.Cookie("session_id"); err == nil {
		if err := h.authService.Logout(cookie.Value); err != nil {
			log.Printf("Failed to delete session for user %d: %v", user.ID, err)
		}
	}

	http.SetCookie(w, security.CreateDeleteCookie(r, "session_id"))
	respondJSON(w, http.StatusOK, map[string]bool{"signedOut": true})
}
