package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/RameshKadariya/AISolutionProject/internal/config"
	"github.com/RameshKadariya/AISolutionProject/internal/services"
	"github.com/RameshKadariya/AISolutionProject/internal/store"
)

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	cfg := config.Config{
		JWTSecret:         "test-secret",
		JWTIssuer:         "test",
		SessionTTLSeconds: 14400,
		IdleTTLSeconds:    14400,
		AdminCredentials:  map[string]string{"admin": "admin123"},
	}
	hub := services.NewEventHub()
	server := NewServer(store.NewMemory(), cfg, hub)
	if err := server.Bootstrap(context.Background()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	return server, server.Router(context.Background())
}

func doJSON(t *testing.T, handler http.Handler, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func loginToken(t *testing.T, handler http.Handler) string {
	t.Helper()
	rec := doJSON(t, handler, http.MethodPost, "/api/admin/login", "", map[string]string{
		"user": "admin", "password": "admin123",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	var result struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if result.AccessToken == "" {
		t.Fatal("empty access token")
	}
	return result.AccessToken
}

func TestHealthEndpoint(t *testing.T) {
	_, handler := newTestServer(t)
	rec := doJSON(t, handler, http.MethodGet, "/api/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestPublicArticlesOnlyPublished(t *testing.T) {
	_, handler := newTestServer(t)
	rec := doJSON(t, handler, http.MethodGet, "/api/public/articles", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var items []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatal(err)
	}
	for _, item := range items {
		if item["status"] != "published" {
			t.Fatalf("public feed leaked %v", item["status"])
		}
	}
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	_, handler := newTestServer(t)
	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/inquiries/"},
		{http.MethodGet, "/api/admin/content/articles"},
		{http.MethodPost, "/api/admin/ping"},
		{http.MethodGet, "/api/admin/metrics/history"},
	}
	for _, p := range paths {
		rec := doJSON(t, handler, p.method, p.path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: status = %d, want 401", p.method, p.path, rec.Code)
		}
	}
}

func TestLoginLogoutFlow(t *testing.T) {
	_, handler := newTestServer(t)
	token := loginToken(t, handler)

	rec := doJSON(t, handler, http.MethodPost, "/api/admin/ping", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("ping: %d %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, handler, http.MethodPost, "/api/admin/logout", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout: %d", rec.Code)
	}

	// The token still parses but the session is gone.
	rec = doJSON(t, handler, http.MethodPost, "/api/admin/ping", token, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("ping after logout: %d, want 401", rec.Code)
	}
}

func TestLoginLockoutOverHTTP(t *testing.T) {
	_, handler := newTestServer(t)
	for i := 0; i < 2; i++ {
		rec := doJSON(t, handler, http.MethodPost, "/api/admin/login", "", map[string]string{
			"user": "admin", "password": "wrong",
		})
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: %d, want 401", i+1, rec.Code)
		}
	}
	rec := doJSON(t, handler, http.MethodPost, "/api/admin/login", "", map[string]string{
		"user": "admin", "password": "wrong",
	})
	if rec.Code != http.StatusLocked {
		t.Fatalf("third failure: %d, want 423", rec.Code)
	}
	rec = doJSON(t, handler, http.MethodPost, "/api/admin/login", "", map[string]string{
		"user": "admin", "password": "admin123",
	})
	if rec.Code != http.StatusLocked {
		t.Fatalf("login while locked: %d, want 423", rec.Code)
	}
}

func TestAdminContentCRUD(t *testing.T) {
	_, handler := newTestServer(t)
	token := loginToken(t, handler)

	rec := doJSON(t, handler, http.MethodPost, "/api/admin/content/articles", token, map[string]interface{}{
		"title": "Created", "excerpt": "x", "content": "y", "author": "z",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID     int    `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.ID == 0 || created.Status != "draft" {
		t.Fatalf("unexpected created article: %+v", created)
	}

	rec = doJSON(t, handler, http.MethodPut, "/api/admin/content/articles/9999", token, map[string]interface{}{
		"title": "Nope", "excerpt": "x", "content": "y", "author": "z",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("update missing: %d, want 404", rec.Code)
	}

	rec = doJSON(t, handler, http.MethodDelete, "/api/admin/content/articles/"+strconv.Itoa(created.ID), token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: %d", rec.Code)
	}
}

func TestInquiryEndpoints(t *testing.T) {
	_, handler := newTestServer(t)
	token := loginToken(t, handler)

	rec := doJSON(t, handler, http.MethodGet, "/api/admin/inquiries/?page=1", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: %d", rec.Code)
	}
	var page struct {
		Total    int `json:"total"`
		PageSize int `json:"pageSize"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatal(err)
	}
	if page.Total != 12 || page.PageSize != 10 {
		t.Fatalf("unexpected page: %+v", page)
	}

	rec = doJSON(t, handler, http.MethodGet, "/api/admin/inquiries/stats", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("stats: %d", rec.Code)
	}
	var stats struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatal(err)
	}
	if stats.Total != 12 {
		t.Fatalf("stats total = %d", stats.Total)
	}

	rec = doJSON(t, handler, http.MethodPut, "/api/admin/inquiries/1/status", token, map[string]string{"status": "Closed"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status update: %d %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, handler, http.MethodPut, "/api/admin/inquiries/1/status", token, map[string]string{"status": "Bogus"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad status: %d, want 400", rec.Code)
	}
}
