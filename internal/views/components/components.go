package components

import (
	"strconv"

	"github.com/a-h/templ"

	"oceanbistro/internal/menu"
	"oceanbistro/internal/views/markup"
	"oceanbistro/internal/views/theme"
)

// BrandName is shown in the header and footer.
const BrandName = "Ocean Bistro"

// NavLink is an in-page anchor in the primary navigation.
type NavLink struct {
	Label string
	Href  string
}

// PrimaryNav lists the section anchors in page order.
func PrimaryNav() []NavLink {
	return []NavLink{
		{Label: "Menu", Href: "#menu"},
		{Label: "About", Href: "#about"},
		{Label: "Contact", Href: "#contact"},
	}
}

// ThemeToggle renders the control that switches away from mode. Without
// htmx it falls back to a plain form post.
func ThemeToggle(mode theme.Mode) templ.Component {
	opt := theme.ToggleOption(mode)
	return markup.Func(func(hw *markup.Writer) {
		hw.Raw(`<form class="theme-toggle" method="post" action="/theme/toggle" hx-post="/theme/toggle" hx-target="this" hx-swap="outerHTML"`)
		hw.Attr("data-mode", opt.Mode.String())
		hw.Raw(`><button type="submit" class="btn ghost"`)
		hw.Attr("aria-label", opt.Title)
		hw.Attr("title", opt.Title)
		hw.Raw(">")
		hw.Text(opt.Label)
		hw.Raw("</button></form>")
	})
}

// Header renders the sticky site header with navigation and the theme toggle.
func Header(mode theme.Mode) templ.Component {
	return markup.Func(func(hw *markup.Writer) {
		hw.Raw(`<header class="header" role="banner"><div class="container header-inner">`)
		hw.Raw(`<a class="brand" href="#home"><span class="brand-badge" aria-hidden="true"></span>`)
		hw.Text(BrandName)
		hw.Raw(`</a><nav class="nav" aria-label="Primary">`)
		for _, link := range PrimaryNav() {
			hw.Raw("<a")
			hw.Attr("href", link.Href)
			hw.Raw(">")
			hw.Text(link.Label)
			hw.Raw("</a>")
		}
		hw.Component(ThemeToggle(mode))
		hw.Raw("</nav></div></header>")
	})
}

// Footer renders the copyright line and the deployment environment.
func Footer(year int, environment string) templ.Component {
	return markup.Func(func(hw *markup.Writer) {
		hw.Raw(`<footer class="footer" role="contentinfo"><div class="container footer-inner"><div>© `)
		hw.Text(strconv.Itoa(year))
		hw.Raw(" ")
		hw.Text(BrandName)
		hw.Raw(`</div><div class="muted">Environment: `)
		hw.Text(environment)
		hw.Raw("</div></div></footer>")
	})
}

// MenuCard renders one dish.
func MenuCard(item menu.Item) templ.Component {
	return markup.Func(func(hw *markup.Writer) {
		hw.Raw(`<article class="card menu-card"`)
		hw.Attr("data-item", item.ID)
		hw.Raw(">")
		if item.Image != "" {
			hw.Raw(`<img class="menu-thumb" loading="lazy"`)
			hw.Attr("src", item.Image)
			hw.Attr("alt", item.Name)
			hw.Raw(">")
		}
		hw.Raw(`<div class="menu-body"><div class="menu-topline"><h4>`)
		hw.Text(item.Name)
		hw.Raw(`</h4><span class="price">`)
		hw.Text(menu.FormatPrice(item.Price))
		hw.Raw(`</span></div><p class="subtitle">`)
		hw.Text(item.Description)
		hw.Raw("</p>")
		if len(item.Tags) > 0 {
			hw.Raw(`<div class="tags" aria-label="Tags">`)
			for _, tag := range item.Tags {
				hw.Raw(`<span class="tag">`)
				hw.Text(tag)
				hw.Raw("</span>")
			}
			hw.Raw("</div>")
		}
		hw.Raw("</div></article>")
	})
}

// SectionTitle renders a section heading with its subtitle.
func SectionTitle(id, heading, subtitle string) templ.Component {
	return markup.Func(func(hw *markup.Writer) {
		hw.Raw(`<div class="section-title"><h2`)
		hw.Attr("id", id)
		hw.Raw(">")
		hw.Text(heading)
		hw.Raw("</h2><small>")
		hw.Text(subtitle)
		hw.Raw("</small></div>")
	})
}
