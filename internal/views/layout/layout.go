package layout

import (
	"github.com/a-h/templ"

	"oceanbistro/internal/views/markup"
	"oceanbistro/internal/views/theme"
)

const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

// Document renders the HTML shell. The presentation is written to the root
// element so the page paints in the right mode before any script runs.
func Document(title string, pres theme.Presentation, content templ.Component) templ.Component {
	return markup.Func(func(hw *markup.Writer) {
		hw.Raw("<!DOCTYPE html>\n<html lang=\"en\"")
		hw.Attr("data-theme", pres.Mode.String())
		hw.Attr("style", pres.Style())
		hw.Raw("><head><meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		hw.Raw("<meta name=\"color-scheme\" content=\"light dark\">")
		hw.Raw("<title>")
		hw.Text(title)
		hw.Raw("</title>")
		hw.Raw(`<link rel="stylesheet" href="/assets/site.css">`)
		hw.Raw("<script")
		hw.Attr("src", htmxScript)
		hw.Raw(" defer></script>")
		hw.Raw(`<script src="/assets/theme.js" defer></script>`)
		hw.Raw("</head><body")
		hw.Attr("class", bodyClass(pres.Mode))
		hw.Raw(">")
		hw.Component(content)
		hw.Raw("</body></html>")
	})
}

func bodyClass(mode theme.Mode) string {
	if mode == theme.Dark {
		return "site site-dark"
	}
	return "site site-light"
}
