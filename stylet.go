// Package stylet implements prop-to-style resolution for component-style
// UIs. A styled component is an immutable Definition built through a fluent
// chain (With, As, CSS, Wrap, Animate); at render time the definition, the
// caller's literal props, and an optional theme resolve into one flat
// property map, which is then partitioned into style properties for the CSS
// engine and plain attributes for the rendered element.
//
// Resolution is a pure function of its inputs: the same definition, props,
// and theme always produce the same result, and nothing is mutated along
// the way.
package stylet

import "github.com/styletkit/stylet/pkg/theme"

// Theme aliases theme.Theme so call sites passing transform literals do not
// need a second import.
type Theme = theme.Theme

// Props is the property mapping used throughout the pipeline. It is a type
// alias so nested blocks (Props{":hover": Props{…}}) stay plain
// map[string]any values for the CSS engine.
type Props = map[string]any

// Transform is a prop-transforming function. It receives a copy of the
// props accumulated so far plus the active theme and returns the full
// replacement mapping; it may delete, rename, or compute keys. Returning
// nil keeps the input unchanged. Transforms must not retain the map they
// receive.
type Transform func(Props, *theme.Theme) Props

// Wrapper wraps the rendered markup of a component in higher-order output.
type Wrapper func(markup string) string

// New creates the root definition for a styled component rendering the
// given element tag.
func New(tag string) Definition {
	return Definition{tag: tag}
}

// clone returns a shallow copy of p. Resolution hands each Transform its
// own copy so a misbehaving transform cannot alias pipeline state.
func clone(p Props) Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// merge copies src into dst, later keys overwriting earlier ones.
func merge(dst, src Props) {
	for k, v := range src {
		dst[k] = v
	}
}
