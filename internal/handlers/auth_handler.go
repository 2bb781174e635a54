package handlers

import (
	"context"
	"log"
	"net/http"

	"golang.org/x/oauth2"

	"sportclash/internal/service"
)

// AuthHandler handles registration, login and OAuth sign-in
type AuthHandler struct {
	authService  *service.AuthService
	emailService *service.EmailService
	googleOAuth  *oauth2.Config
}

// NewAuthHandler creates a new auth handler. googleOAuth may be nil when
// Google sign-in is not configured.
func NewAuthHandler(authService *service.AuthService, emailService *service.EmailService, googleOAuth *oauth2.Config) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		emailService: emailService,
		googleOAuth:  googleOAuth,
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"user"`
}

// Register creates a teacher account
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithDomainError(w, err)
		return
	}

	user, err := h.authService.Register(req.Email, req.Password, req.Name)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	if h.emailService != nil && h.emailService.IsEnabled() {
		go func() {
			if err := h.emailService.SendWelcomeEmail(context.Background(), user.Email, user.Name); err != nil {
				log.Printf("welcome email to %s failed: %v", user.Email, err)
			}
		}()
	}

	token, _, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, newAuthResponse(token, user.ID, user.Email, user.Name))
}

// Login authenticates a teacher and returns a bearer token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithDomainError(w, err)
		return
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newAuthResponse(token, user.ID, user.Email, user.Name))
}

func newAuthResponse(token string, id int64, email, name string) authResponse {
	resp := authResponse{Token: token}
	resp.User.ID = id
	resp.User.Email = email
	resp.User.Name = name
	return resp
}
