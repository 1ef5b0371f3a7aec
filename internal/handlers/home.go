package handlers

import (
	"net/http"

	"oceanbistro/internal/contact"
	applog "oceanbistro/internal/log"
	"oceanbistro/internal/views/pages"
)

// Home renders the single-page site.
func Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet, http.MethodHead:
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	advertiseColorSchemeHint(w)
	data := homeData(r, contact.NewController(contactSender).State())
	applog.Debug(r.Context(), "rendering home page", "mode", data.Presentation.Mode)
	renderComponent(w, r, pages.Home(data))
}

func homeData(r *http.Request, form contact.State) pages.HomeData {
	manager := newThemeManager(r)
	return pages.HomeData{
		Presentation: manager.Presentation(),
		Menu:         siteMenu,
		Contact:      form,
		Year:         now().Year(),
		Environment:  environment,
	}
}

// advertiseColorSchemeHint asks browsers to send their colour scheme preference
// on subsequent requests.
func advertiseColorSchemeHint(w http.ResponseWriter) {
	w.Header().Set("Accept-CH", colorSchemeHintHeader)
	w.Header().Add("Vary", colorSchemeHintHeader)
}
