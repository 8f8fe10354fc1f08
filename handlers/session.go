package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/andrewpaige1/galaxymap-api/auth"
	"github.com/andrewpaige1/galaxymap-api/config"
)

// POST /api/auth/token
// Development-only sign-in: issues the local session cookie so the app is
// usable without an Auth0 tenant. Hidden in production.
func (h *Handler) CreateDevToken(w http.ResponseWriter, r *http.Request) {
	if !config.Env.IsDevelopment {
		http.NotFound(w, r)
		return
	}

	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" {
		http.Error(w, "Email is required", http.StatusBadRequest)
		return
	}

	token, err := auth.CreateToken("dev|"+req.Email, req.Name, req.Email)
	if err != nil {
		h.Log.Error("CreateDevToken: failed to create token", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		Domain:   config.Env.Domain,
		Secure:   config.Env.CookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
