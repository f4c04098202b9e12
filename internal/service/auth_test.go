package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyCode(t *testing.T) {
	svc := NewAuthService("demo-123", time.Hour, false)

	assert.True(t, svc.VerifyCode("demo-123"))
	assert.False(t, svc.VerifyCode("demo-124"))
	assert.False(t, svc.VerifyCode("demo-123 "))
	assert.False(t, svc.VerifyCode(""))
}

func TestSessionCookieRoundTrip(t *testing.T) {
	svc := NewAuthService("demo-123", 7*24*time.Hour, false)

	rec := httptest.NewRecorder()
	svc.SetSessionCookie(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), cookie.MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	assert.True(t, svc.IsAuthenticated(req))
}

func TestSessionCookieSecureInProduction(t *testing.T) {
	svc := NewAuthService("demo-123", time.Hour, true)

	rec := httptest.NewRecorder()
	svc.SetSessionCookie(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
}

func TestIsAuthenticatedRejectsBadCookie(t *testing.T) {
	svc := NewAuthService("demo-123", time.Hour, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, svc.IsAuthenticated(req), "no cookie at all")

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "forged"})
	assert.False(t, svc.IsAuthenticated(req), "wrong cookie value")
}

func TestClearSessionCookie(t *testing.T) {
	svc := NewAuthService("demo-123", time.Hour, false)

	rec := httptest.NewRecorder()
	svc.ClearSessionCookie(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.Expires.Before(time.Now()))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	assert.False(t, svc.IsAuthenticated(req))
}
