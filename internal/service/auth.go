package service

import (
	"crypto/subtle"
	"net/http"
	"time"
)

const (
	// SessionCookieName is the marker cookie the whole gate hangs on.
	SessionCookieName = "compliance-auth"

	// sessionCookieValue is the single recognized session value. The
	// cookie is not signed and not tied to an identity: whoever presents
	// it is "the user". Hardening would mean per-session random values.
	sessionCookieValue = "authenticated"
)

// AuthService is the access gate: one shared code in, one marker cookie
// out. No users, no rate limiting, no lockout.
type AuthService struct {
	accessCode    string
	sessionExpiry time.Duration
	isProduction  bool
}

func NewAuthService(accessCode string, sessionExpiry time.Duration, isProduction bool) *AuthService {
	return &AuthService{
		accessCode:    accessCode,
		sessionExpiry: sessionExpiry,
		isProduction:  isProduction,
	}
}

// VerifyCode reports whether code matches the configured shared secret.
func (s *AuthService) VerifyCode(code string) bool {
	return subtle.ConstantTimeCompare([]byte(code), []byte(s.accessCode)) == 1
}

// IsAuthenticated reports whether the request presents the marker cookie
// with exactly the recognized value.
func (s *AuthService) IsAuthenticated(r *http.Request) bool {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return false
	}
	return cookie.Value == sessionCookieValue
}

// SetSessionCookie issues the session marker: HttpOnly, SameSite=Lax,
// Secure in production, one week by default.
func (s *AuthService) SetSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionCookieValue,
		MaxAge:   int(s.sessionExpiry.Seconds()),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie removes the marker.
func (s *AuthService) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}
