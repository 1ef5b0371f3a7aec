package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	templpkg "github.com/a-h/templ"

	applog "oceanbistro/internal/log"
)

const colorSchemeHintHeader = "Sec-CH-Prefers-Color-Scheme"

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" || r.Header.Get("HX-Boosted") == "true"
}

// triggerEvent sets an HX-Trigger header carrying a single named event.
func triggerEvent(w http.ResponseWriter, name string, detail any) error {
	payload, err := json.Marshal(map[string]any{name: detail})
	if err != nil {
		return err
	}
	w.Header().Set("HX-Trigger", string(payload))
	return nil
}

func renderComponent(w http.ResponseWriter, r *http.Request, component templpkg.Component) {
	renderComponentStatus(w, r, http.StatusOK, component)
}

// renderComponentStatus buffers the component so a render failure can still
// produce a 500 instead of a truncated page.
func renderComponentStatus(w http.ResponseWriter, r *http.Request, status int, component templpkg.Component) {
	var buf bytes.Buffer
	if err := component.Render(r.Context(), &buf); err != nil {
		applog.Error(r.Context(), "failed to render component", "error", err)
		http.Error(w, "unable to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := buf.WriteTo(w); err != nil {
		applog.Debug(r.Context(), "failed to write response", "error", err)
	}
}
