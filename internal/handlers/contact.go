package handlers

import (
	"errors"
	"net/http"

	"oceanbistro/internal/contact"
	applog "oceanbistro/internal/log"
	"oceanbistro/internal/views/pages"
)

// Contact validates a contact form post and runs the simulated submission.
func Contact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		applog.Debug(r.Context(), "failed to parse contact form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	controller := contact.NewController(contactSender)
	for _, field := range contact.Fields() {
		if err := controller.UpdateField(field, r.PostFormValue(string(field))); err != nil {
			applog.Error(r.Context(), "failed to update contact field", "field", field, "error", err)
		}
	}

	status := http.StatusOK
	err := controller.Submit(r.Context())
	switch {
	case err == nil:
	case errors.Is(err, contact.ErrInvalid):
		status = http.StatusUnprocessableEntity
	default:
		status = http.StatusServiceUnavailable
	}

	state := controller.State()
	applog.Debug(r.Context(), "contact form handled", "status", state.Status, "invalidFields", len(state.Errors))

	if isHTMX(r) {
		// htmx only swaps 2xx responses.
		renderComponent(w, r, pages.ContactForm(state))
		return
	}
	renderComponentStatus(w, r, status, pages.Home(homeData(r, state)))
}
