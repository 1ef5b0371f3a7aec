package pages

import (
	"github.com/a-h/templ"

	"oceanbistro/internal/contact"
	"oceanbistro/internal/menu"
	"oceanbistro/internal/views/components"
	"oceanbistro/internal/views/layout"
	"oceanbistro/internal/views/markup"
	"oceanbistro/internal/views/theme"
)

const (
	heroImage  = "https://images.unsplash.com/photo-1544025162-d76694265947?q=80&w=1600&auto=format&fit=crop"
	aboutImage = "https://images.unsplash.com/photo-1559339352-11d035aa65de?q=80&w=1600&auto=format&fit=crop"
)

// HomeData is everything the landing page renders.
type HomeData struct {
	Presentation theme.Presentation
	Menu         menu.Menu
	Contact      contact.State
	Year         int
	Environment  string
}

// Home renders the full single-page site.
func Home(data HomeData) templ.Component {
	body := markup.Func(func(hw *markup.Writer) {
		hw.Component(components.Header(data.Presentation.Mode))
		hw.Raw("<main>")
		hw.Component(Hero())
		hw.Component(MenuSection(data.Menu))
		hw.Component(About())
		hw.Component(Contact(data.Contact))
		hw.Raw("</main>")
		hw.Component(components.Footer(data.Year, data.Environment))
	})
	return layout.Document(components.BrandName, data.Presentation, body)
}

// Hero renders the welcome banner.
func Hero() templ.Component {
	return markup.Func(func(hw *markup.Writer) {
		hw.Raw(`<section id="home" class="hero section" aria-label="Welcome"><div class="container hero-inner"><div>`)
		hw.Raw(`<h1>Coastal flavors. <span>Modern</span> craft.</h1>`)
		hw.Raw(`<p class="lead">A refined dining experience inspired by the ocean. Seasonal ingredients, elegant plates, and a warm, contemporary atmosphere.</p>`)
		hw.Raw(`<div class="hero-cta"><a class="btn primary" href="#menu">Explore Menu</a><a class="btn" href="#contact">Reserve a Table</a></div>`)
		hw.Raw(`</div><div class="hero-art"><div class="card hero-card" aria-hidden="true"><img class="hero-image" alt="Gourmet seafood dish"`)
		hw.Attr("src", heroImage)
		hw.Raw("></div></div></div></section>")
	})
}

// MenuSection renders every category of m.
func MenuSection(m menu.Menu) templ.Component {
	return markup.Func(func(hw *markup.Writer) {
		hw.Raw(`<section id="menu" class="section" aria-labelledby="menu-heading"><div class="container">`)
		hw.Component(components.SectionTitle("menu-heading", "Menu", "Crafted with seasonal ingredients"))
		for _, category := range m.Categories {
			hw.Raw(`<div class="section"`)
			hw.Attr("aria-label", category.Name)
			hw.Raw("><h3>")
			hw.Text(category.Name)
			hw.Raw(`</h3><div class="menu-grid">`)
			for _, item := range category.Items {
				hw.Component(components.MenuCard(item))
			}
			hw.Raw("</div></div>")
		}
		hw.Raw("</div></section>")
	})
}

// About renders the restaurant story.
func About() templ.Component {
	return markup.Func(func(hw *markup.Writer) {
		hw.Raw(`<section id="about" class="section" aria-labelledby="about-heading"><div class="container about"><div>`)
		hw.Raw(`<h2 id="about-heading">About Ocean Bistro</h2>`)
		hw.Raw(`<p class="subtitle">We blend classic coastal cuisine with modern technique, focusing on sustainability and the finest ingredients.</p>`)
		hw.Raw(`<div class="card" role="note" aria-label="Our Philosophy"><p>From the first bite to the last sip, our team brings passion to every detail. Expect attentive service, a curated wine list, and a menu that evolves with the seasons.</p></div>`)
		hw.Raw(`</div><figure class="about-figure"><img alt="Restaurant interior with modern decor"`)
		hw.Attr("src", aboutImage)
		hw.Raw("></figure></div></section>")
	})
}
