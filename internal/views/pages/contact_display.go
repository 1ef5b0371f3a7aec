package pages

import (
	"strings"

	"oceanbistro/internal/contact"
)

type fieldView struct {
	Field        contact.Field
	Label        string
	Type         string
	Placeholder  string
	Autocomplete string
	Helper       string
}

var contactFields = []fieldView{
	{Field: contact.FieldName, Label: "Name", Type: "text", Placeholder: "Your full name", Autocomplete: "name", Helper: "Please enter your name."},
	{Field: contact.FieldEmail, Label: "Email", Type: "email", Placeholder: "you@example.com", Autocomplete: "email", Helper: "We will never share your email."},
	{Field: contact.FieldMessage, Label: "Message", Type: "textarea", Placeholder: "How can we help?", Helper: "Tell us about your request."},
}

// InputClass returns the CSS class for a form control, flagging invalid fields.
func InputClass(base string, invalid bool) string {
	if invalid {
		return base + " error"
	}
	return base
}

// SubmitLabel returns the submit button text for status.
func SubmitLabel(status contact.Status) string {
	if status == contact.StatusSending {
		return "Sending…"
	}
	return "Send message"
}

// StatusMessage returns the banner text shown after a submission attempt.
func StatusMessage(status contact.Status) string {
	switch status {
	case contact.StatusSuccess:
		return "Your message has been sent. We will get back to you shortly."
	case contact.StatusError:
		return "Something went wrong. Please try again."
	default:
		return ""
	}
}

func errorID(field contact.Field) string {
	return string(field) + "-error"
}

// DefaultText returns fallback when value is blank.
func DefaultText(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
