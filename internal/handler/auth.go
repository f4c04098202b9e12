package handler

import (
	"encoding/json"
	"net/http"

	"github.com/complytrack/complytrack/internal/service"
	"github.com/complytrack/complytrack/internal/ui"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, "login.html", nil)
}

type loginRequest struct {
	AccessCode string `json:"accessCode"`
}

// Login exchanges the shared access code for the session cookie.
// 400 on a missing code, 401 on a mismatch. No rate limiting and no
// lockout; the gate is deliberately that simple.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.AccessCode == "" {
		writeJSONError(w, "Access code is required", http.StatusBadRequest)
		return
	}

	if !h.authService.VerifyCode(req.AccessCode) {
		writeJSONError(w, "Invalid access code", http.StatusUnauthorized)
		return
	}

	h.authService.SetSessionCookie(w)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func writeJSONError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
