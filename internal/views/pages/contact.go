package pages

import (
	"github.com/a-h/templ"

	"oceanbistro/internal/contact"
	"oceanbistro/internal/views/components"
	"oceanbistro/internal/views/markup"
)

// Contact renders the contact section: the form and the visit card.
func Contact(state contact.State) templ.Component {
	return markup.Func(func(hw *markup.Writer) {
		hw.Raw(`<section id="contact" class="section" aria-labelledby="contact-heading"><div class="container">`)
		hw.Component(components.SectionTitle("contact-heading", "Contact", "We would love to hear from you"))
		hw.Raw(`<div class="grid cols-2">`)
		hw.Component(ContactForm(state))
		hw.Component(visitCard())
		hw.Raw("</div></div></section>")
	})
}

// ContactForm renders the form for state. htmx swaps it in place after a post.
func ContactForm(state contact.State) templ.Component {
	sending := state.Status == contact.StatusSending
	return markup.Func(func(hw *markup.Writer) {
		hw.Raw(`<form id="contact-form" class="card" method="post" action="/contact#contact" hx-post="/contact" hx-target="this" hx-swap="outerHTML" hx-disabled-elt="find button" aria-describedby="contact-helper" novalidate`)
		hw.Attr("data-status", state.Status.String())
		hw.Raw(`><div class="form">`)
		for _, fv := range contactFields {
			writeField(hw, fv, state)
		}
		hw.Raw(`<div><button type="submit" class="btn primary"`)
		hw.AttrIf(sending, "disabled", "disabled")
		if sending {
			hw.Attr("aria-busy", "true")
		} else {
			hw.Attr("aria-busy", "false")
		}
		hw.Raw(">")
		hw.Text(SubmitLabel(state.Status))
		hw.Raw("</button></div>")

		switch state.Status {
		case contact.StatusSuccess:
			hw.Raw(`<div role="status" class="helper success">`)
			hw.Text(StatusMessage(state.Status))
			hw.Raw("</div>")
		case contact.StatusError:
			hw.Raw(`<div role="alert" class="helper error">`)
			hw.Text(StatusMessage(state.Status))
			hw.Raw("</div>")
		}
		hw.Raw(`<p id="contact-helper" class="helper">This form performs basic validation. No data is transmitted.</p>`)
		hw.Raw("</div></form>")
	})
}

func writeField(hw *markup.Writer, fv fieldView, state contact.State) {
	name := string(fv.Field)
	message, invalid := state.Errors[fv.Field]
	value := state.Values.Get(fv.Field)

	hw.Raw("<label")
	hw.Attr("for", name)
	hw.Raw(">")
	hw.Text(fv.Label)
	hw.Raw("</label>")

	if fv.Type == "textarea" {
		hw.Raw("<textarea")
		hw.Attr("class", InputClass("textarea", invalid))
	} else {
		hw.Raw("<input")
		hw.Attr("class", InputClass("input", invalid))
		hw.Attr("type", fv.Type)
		hw.Attr("value", value)
	}
	hw.Attr("id", name)
	hw.Attr("name", name)
	hw.Attr("placeholder", fv.Placeholder)
	hw.AttrIf(fv.Autocomplete != "", "autocomplete", fv.Autocomplete)
	if invalid {
		hw.Attr("aria-invalid", "true")
		hw.Attr("aria-describedby", errorID(fv.Field))
	} else {
		hw.Attr("aria-invalid", "false")
	}
	hw.Raw(" required>")
	if fv.Type == "textarea" {
		hw.Text(value)
		hw.Raw("</textarea>")
	}

	if invalid {
		hw.Raw(`<span class="helper error" role="alert"`)
		hw.Attr("id", errorID(fv.Field))
		hw.Raw(">")
		hw.Text(DefaultText(message, "Invalid value"))
		hw.Raw("</span>")
		return
	}
	hw.Raw(`<span class="helper">`)
	hw.Text(fv.Helper)
	hw.Raw("</span>")
}

func visitCard() templ.Component {
	return markup.Func(func(hw *markup.Writer) {
		hw.Raw(`<div class="card visit-card"><h3>Visit Us</h3>`)
		hw.Raw(`<p class="subtitle">100 Ocean Avenue, Suite 12<br>Seaside City, CA</p><hr class="divider">`)
		hw.Raw(`<p>Hours:<br>Mon–Thu 11:00–21:00<br>Fri–Sat 11:00–23:00<br>Sun 11:00–20:00</p><hr class="divider">`)
		hw.Raw(`<p>Phone: <a href="tel:+15551234567" aria-label="Call +1 555 123 4567">+1 (555) 123‑4567</a><br>`)
		hw.Raw(`Email: <a href="mailto:hello@oceanbistro.example">hello@oceanbistro.example</a></p></div>`)
	})
}
