package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestAppendToken(t *testing.T) {
	got, err := appendToken("https://app.example.com/auth", "abc123")
	if err != nil {
		t.Fatalf("appendToken: %v", err)
	}
	if got != "https://app.example.com/auth?token=abc123" {
		t.Fatalf("unexpected url %q", got)
	}

	got, err = appendToken("https://app.example.com/auth?next=%2Fdashboard", "abc")
	if err != nil {
		t.Fatalf("appendToken with query: %v", err)
	}
	if !strings.Contains(got, "token=abc") || !strings.Contains(got, "next=%2Fdashboard") {
		t.Fatalf("existing query dropped: %q", got)
	}

	if _, err := appendToken("", "abc"); err == nil {
		t.Fatal("expected error for empty redirect url")
	}
}

func TestStateStoreConsumeOnce(t *testing.T) {
	store := newStateStore()
	store.put("state-1", time.Now().Add(time.Minute))

	if !store.consume("state-1") {
		t.Fatal("first consume must succeed")
	}
	if store.consume("state-1") {
		t.Fatal("second consume must fail")
	}
	if store.consume("never-issued") {
		t.Fatal("unknown state must fail")
	}
}

func TestStateStoreExpiry(t *testing.T) {
	store := newStateStore()
	store.put("state-1", time.Now().Add(-time.Second))

	if store.consume("state-1") {
		t.Fatal("expired state must fail")
	}
}

func TestStartRedirectsToGoogle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	svc := NewGoogleService("client-id", "client-secret", "https://api.example.com/callback", "https://app.example.com", nil)
	api := router.Group("/api/v1")
	svc.RegisterRoutes(api)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/start", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", resp.Code)
	}
	location := resp.Header().Get("Location")
	if !strings.Contains(location, "accounts.google.com") {
		t.Fatalf("unexpected redirect %q", location)
	}
	if !strings.Contains(location, "state=") {
		t.Fatal("redirect missing state parameter")
	}
}

func TestStartUnconfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	svc := NewGoogleService("", "", "", "", nil)
	api := router.Group("/api/v1")
	svc.RegisterRoutes(api)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/start", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}

func TestCallbackRejectsUnknownState(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	svc := NewGoogleService("client-id", "client-secret", "https://api.example.com/callback", "https://app.example.com", nil)
	api := router.Group("/api/v1")
	svc.RegisterRoutes(api)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?state=forged&code=abc", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown state, got %d", resp.Code)
	}
}
