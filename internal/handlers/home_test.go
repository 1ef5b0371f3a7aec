package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHomeRendersSite(t *testing.T) {
	withTestSite(t, immediateSender())
	sm, cleanup := withTestSessionManager(t)
	t.Cleanup(cleanup)

	req := sessionRequest(t, sm, http.MethodGet, "/")
	w := httptest.NewRecorder()
	Home(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if w.Header().Get("Accept-CH") != colorSchemeHintHeader {
		t.Fatal("expected colour scheme client hint to be requested")
	}
	body := w.Body.String()
	for _, token := range []string{"Ocean Bistro", `data-theme="light"`, "Switch to dark mode", "Citrus Ceviche", "Environment: test", "© 2026"} {
		if !strings.Contains(body, token) {
			t.Fatalf("expected %q in home page", token)
		}
	}
}

func TestHomeHonoursSystemPreference(t *testing.T) {
	withTestSite(t, immediateSender())
	sm, cleanup := withTestSessionManager(t)
	t.Cleanup(cleanup)

	req := sessionRequest(t, sm, http.MethodGet, "/")
	req.Header.Set(colorSchemeHintHeader, `"dark"`)
	w := httptest.NewRecorder()
	Home(w, req)

	if !strings.Contains(w.Body.String(), `data-theme="dark"`) {
		t.Fatal("expected dark theme from client hint")
	}
}

func TestHomeRendersWithoutSession(t *testing.T) {
	withTestSite(t, immediateSender())
	original := sessionManager
	sessionManager = nil
	t.Cleanup(func() { sessionManager = original })

	w := httptest.NewRecorder()
	Home(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected page to render without sessions, got %d", w.Code)
	}
}

func TestHomeRejectsUnknownPathsAndMethods(t *testing.T) {
	withTestSite(t, immediateSender())

	w := httptest.NewRecorder()
	Home(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	Home(w, httptest.NewRequest(http.MethodDelete, "/", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}

// roundTrip serves req through the session middleware, carrying cookies from prev.
func roundTrip(h http.Handler, req *http.Request, prev *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	if prev != nil {
		for _, c := range prev.Result().Cookies() {
			req.AddCookie(c)
		}
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func themeMux() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", Home)
	mux.HandleFunc("/theme", CurrentTheme)
	mux.HandleFunc("/theme/toggle", ToggleTheme)
	return sessionManager.LoadAndSave(mux)
}

func currentMode(t *testing.T, h http.Handler, prev *httptest.ResponseRecorder) string {
	t.Helper()
	w := roundTrip(h, httptest.NewRequest(http.MethodGet, "/theme", nil), prev)
	var resp themeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode theme response: %v", err)
	}
	return resp.Mode
}

func TestToggleThemePersistsInSession(t *testing.T) {
	withTestSite(t, immediateSender())
	_, cleanup := withTestSessionManager(t)
	t.Cleanup(cleanup)
	h := themeMux()

	first := roundTrip(h, httptest.NewRequest(http.MethodPost, "/theme/toggle", nil), nil)
	if first.Code != http.StatusSeeOther || first.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect to /, got %d %q", first.Code, first.Header().Get("Location"))
	}
	if mode := currentMode(t, h, first); mode != "dark" {
		t.Fatalf("mode after first toggle = %q, want dark", mode)
	}

	second := roundTrip(h, httptest.NewRequest(http.MethodPost, "/theme/toggle", nil), first)
	if mode := currentMode(t, h, second); mode != "light" {
		t.Fatalf("mode after second toggle = %q, want light", mode)
	}
}

func TestToggleThemeHTMXReturnsControlAndEvent(t *testing.T) {
	withTestSite(t, immediateSender())
	_, cleanup := withTestSessionManager(t)
	t.Cleanup(cleanup)

	req := httptest.NewRequest(http.MethodPost, "/theme/toggle", nil)
	req.Header.Set("HX-Request", "true")
	w := roundTrip(themeMux(), req, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Switch to light mode") {
		t.Fatalf("expected dark-mode toggle in response: %s", w.Body.String())
	}
	var trigger map[string]themeResponse
	if err := json.Unmarshal([]byte(w.Header().Get("HX-Trigger")), &trigger); err != nil {
		t.Fatalf("decode HX-Trigger: %v", err)
	}
	event := trigger["themeChanged"]
	if event.Mode != "dark" || event.Variables["--bg"] != "#0B1220" {
		t.Fatalf("unexpected themeChanged event %+v", event)
	}
}

func TestToggleThemeJSON(t *testing.T) {
	withTestSite(t, immediateSender())
	_, cleanup := withTestSessionManager(t)
	t.Cleanup(cleanup)

	req := httptest.NewRequest(http.MethodPost, "/theme/toggle", nil)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(colorSchemeHintHeader, "dark")
	w := roundTrip(themeMux(), req, nil)

	var resp themeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Mode != "light" {
		t.Fatalf("toggle from system dark = %q, want light", resp.Mode)
	}
	if len(resp.Variables) != 12 {
		t.Fatalf("expected 12 variables, got %d", len(resp.Variables))
	}
}

func TestToggleThemeRejectsGet(t *testing.T) {
	w := httptest.NewRecorder()
	ToggleTheme(w, httptest.NewRequest(http.MethodGet, "/theme/toggle", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}

func TestToggleThemePersistsInDatabase(t *testing.T) {
	withTestSite(t, immediateSender())
	_, cleanupSessions := withTestSessionManager(t)
	t.Cleanup(cleanupSessions)
	testDB, cleanupDB := withTestDatabase(t)
	t.Cleanup(cleanupDB)
	h := themeMux()

	first := roundTrip(h, httptest.NewRequest(http.MethodPost, "/theme/toggle", nil), nil)
	if mode := currentMode(t, h, first); mode != "dark" {
		t.Fatalf("mode after toggle = %q, want dark", mode)
	}

	var count int64
	if err := testDB.Table("theme_preferences").Count(&count).Error; err != nil {
		t.Fatalf("count preferences: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one stored preference, got %d", count)
	}
}
