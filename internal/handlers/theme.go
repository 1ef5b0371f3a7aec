package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	applog "oceanbistro/internal/log"
	"oceanbistro/internal/views/components"
	"oceanbistro/internal/views/theme"
)

type themeResponse struct {
	Mode      string            `json:"mode"`
	Variables map[string]string `json:"variables"`
}

// ToggleTheme flips the visitor's display mode and persists the new choice.
func ToggleTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		applog.Debug(r.Context(), "theme toggle with unsupported method", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	manager := newThemeManager(r)
	previous := manager.Mode()
	next := manager.Toggle(r.Context())
	applog.Debug(r.Context(), "theme toggled", "from", previous, "to", next)

	pres := manager.Presentation()
	response := themeResponse{Mode: pres.Mode.String(), Variables: pres.VariableMap()}

	switch {
	case isHTMX(r):
		if err := triggerEvent(w, "themeChanged", response); err != nil {
			applog.Error(r.Context(), "failed to encode theme event", "error", err)
		}
		renderComponent(w, r, components.ThemeToggle(next))
	case wantsJSON(r):
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			applog.Error(r.Context(), "failed to encode theme response", "error", err)
		}
	default:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// CurrentTheme reports the mode and variables the visitor would be served.
func CurrentTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	advertiseColorSchemeHint(w)
	pres := theme.Apply(newThemeManager(r).Mode())
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(themeResponse{Mode: pres.Mode.String(), Variables: pres.VariableMap()}); err != nil {
		applog.Error(r.Context(), "failed to encode theme response", "error", err)
	}
}
