package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"sportclash/internal/security"
)

const oauthStateCookie = "oauth_state"

type googleUserInfo struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

// StartGoogleOAuth begins the Google sign-in flow. The state token round
// trips through a short-lived cookie so the callback can reject forged
// requests.
func (h *AuthHandler) StartGoogleOAuth(w http.ResponseWriter, r *http.Request) {
	if h.googleOAuth == nil || h.googleOAuth.ClientID == "" {
		respondWithError(w, http.StatusBadRequest, "Google sign-in not configured", "", nil)
		return
	}

	state := security.GenerateStateToken()
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	authURL := h.googleOAuth.AuthCodeURL(state, oauth2.AccessTypeOnline)
	http.Redirect(w, r, authURL, http.StatusSeeOther)
}

// GoogleOAuthCallback completes the Google sign-in flow and returns a
// bearer token for the matched or newly created account
func (h *AuthHandler) GoogleOAuthCallback(w http.ResponseWriter, r *http.Request) {
	if h.googleOAuth == nil || h.googleOAuth.ClientID == "" {
		respondWithError(w, http.StatusBadRequest, "Google sign-in not configured", "", nil)
		return
	}

	cookie, err := r.Cookie(oauthStateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		respondWithError(w, http.StatusBadRequest, "state mismatch", "", nil)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	code := r.URL.Query().Get("code")
	if code == "" {
		respondWithError(w, http.StatusBadRequest, "missing authorization code", "", nil)
		return
	}

	token, err := h.googleOAuth.Exchange(r.Context(), code)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "token exchange failed", "google oauth exchange", err)
		return
	}

	info, err := h.fetchGoogleUserInfo(r, token)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "failed to fetch user info", "google userinfo", err)
		return
	}
	if info.Subject == "" || info.Email == "" {
		respondWithError(w, http.StatusBadGateway, "incomplete user info from provider", "", nil)
		return
	}

	apiToken, user, err := h.authService.OAuthLogin("google", info.Subject, info.Email, info.Name)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newAuthResponse(apiToken, user.ID, user.Email, user.Name))
}

func (h *AuthHandler) fetchGoogleUserInfo(r *http.Request, token *oauth2.Token) (*googleUserInfo, error) {
	client := h.googleOAuth.Client(r.Context(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v3/userinfo")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}
