package main

import (
	"github.com/styletkit/stylet"
	"github.com/styletkit/stylet/pkg/render"
	"github.com/styletkit/stylet/pkg/theme"
)

// The sample catalog exercises the whole fluent chain: stacked defaults,
// aliases, theme tokens, transforms, raw CSS, animation, and wrapping.
var (
	box = stylet.New("div").With(stylet.Props{
		"display": "flex",
		"p":       2,
	})

	button = stylet.New("button").With(stylet.Props{
		"px":           3,
		"py":           2,
		"bg":           "primary",
		"color":        "surface",
		"border":       "none",
		"borderRadius": 6,
		"cursor":       "pointer",
		":hover":       stylet.Props{"opacity": 0.9},
	})

	primaryButton = button.With(stylet.Props{"fontWeight": "bold"})

	ghostButton = button.
			With(stylet.Props{"bg": "surface", "color": "primary"}).
			With(stylet.Transform(outlined))

	card = box.As("section").
		With(stylet.Props{
			"bg":           "surface",
			"border":       "solid",
			"borderColor":  "border",
			"borderRadius": 8,
			"p":            4,
		}).
		CSS("box-shadow: 0 1px 2px rgba(0, 0, 0, 0.08);")

	spinner = stylet.New("span").
		Animate("1s linear infinite", "spin").
		With(stylet.Props{"size": 16, "display": "inline-block"})

	externalLink = stylet.New("a").
			With(stylet.Props{"color": "primary", "textDecoration": "underline"}).
			Wrap(func(markup string) string {
			return markup + `<span aria-hidden="true">&#8599;</span>`
		})
)

// outlined swaps a filled look for a bordered one.
func outlined(p stylet.Props, _ *theme.Theme) stylet.Props {
	p["border"] = "solid"
	p["borderColor"] = "primary"
	p["borderWidth"] = 1
	return p
}

type sample struct {
	name     string
	def      stylet.Definition
	props    stylet.Props
	children []string
}

func catalog() []sample {
	return []sample{
		{name: "box", def: box, props: stylet.Props{"id": "demo-box"}, children: []string{"box"}},
		{name: "button", def: button, children: []string{"Click me"}},
		{name: "primary button", def: primaryButton, children: []string{"Save"}},
		{name: "ghost button", def: ghostButton, children: []string{"Cancel"}},
		{name: "card", def: card, children: []string{"Card content"}},
		{name: "spinner", def: spinner},
		{name: "external link", def: externalLink, props: stylet.Props{"href": "https://example.com"}, children: []string{"Docs"}},
	}
}

// renderCatalog renders every sample once through an HTML renderer and
// returns the deduplicated stylesheet plus the markup blocks.
func renderCatalog(th *theme.Theme) (stylesheet string, blocks []string) {
	r := render.NewHTML(th)
	for _, s := range catalog() {
		markup := r.Render(s.def, s.props, s.children...)
		blocks = append(blocks, "<!-- "+s.name+" -->\n"+markup)
	}
	return r.Sheet.String(), blocks
}

// renderSwatches renders the catalog through the terminal backend for the
// interactive preview.
func renderSwatches(th *theme.Theme, width int) []string {
	t := render.NewTerminal(th, width)
	out := make([]string, 0, len(catalog()))
	for _, s := range catalog() {
		label := s.name
		content := label
		if len(s.children) > 0 {
			content = s.children[0]
		}
		out = append(out, render.PadRight(label, 16)+t.Render(s.def, s.props, content))
	}
	return out
}
