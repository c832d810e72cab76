// Package styleprop classifies the property keys that flow through a styled
// component. Every key is classified exactly once against static tables:
// shorthand aliases expand to canonical property names, canonical style
// properties feed the CSS engine, selector keys pass through as nested style
// blocks, and everything else is forwarded to the rendered element as a
// plain attribute.
package styleprop

import "strings"

// Kind is the classification of a single property key.
type Kind int

const (
	// Attr keys are forwarded to the underlying element untouched.
	Attr Kind = iota
	// Style keys are canonical style properties handed to the CSS engine.
	Style
	// Alias keys are shorthands that expand to one or more Style keys.
	Alias
	// Selector keys (":hover", "&.active", "@media …") carry nested style
	// blocks and pass through the pipeline untouched.
	Selector
	// Reserved keys are consumed by the pipeline itself.
	Reserved
)

// Reserved key names.
const (
	// KeyAs selects the rendered element tag.
	KeyAs = "as"
	// KeyRawCSS accumulates raw CSS text appended after object-form styles.
	KeyRawCSS = "css"
)

// aliases maps shorthand prop names to their canonical targets. Axis
// shorthands ("mx", "py") expand to both longhands with the same value.
// Fixed at init, never mutated.
var aliases = map[string][]string{
	"m":  {"margin"},
	"mt": {"marginTop"},
	"mr": {"marginRight"},
	"mb": {"marginBottom"},
	"ml": {"marginLeft"},
	"mx": {"marginLeft", "marginRight"},
	"my": {"marginTop", "marginBottom"},

	"p":  {"padding"},
	"pt": {"paddingTop"},
	"pr": {"paddingRight"},
	"pb": {"paddingBottom"},
	"pl": {"paddingLeft"},
	"px": {"paddingLeft", "paddingRight"},
	"py": {"paddingTop", "paddingBottom"},

	"bg":   {"backgroundColor"},
	"size": {"width", "height"},
	"font": {"fontFamily"},
}

// styleProperties is the closed set of recognized style property names,
// in the camelCase form used throughout the resolve pipeline.
var styleProperties = map[string]struct{}{
	"margin":        {},
	"marginTop":     {},
	"marginRight":   {},
	"marginBottom":  {},
	"marginLeft":    {},
	"padding":       {},
	"paddingTop":    {},
	"paddingRight":  {},
	"paddingBottom": {},
	"paddingLeft":   {},

	"width":     {},
	"height":    {},
	"minWidth":  {},
	"minHeight": {},
	"maxWidth":  {},
	"maxHeight": {},

	"color":           {},
	"background":      {},
	"backgroundColor": {},
	"opacity":         {},

	"border":       {},
	"borderTop":    {},
	"borderRight":  {},
	"borderBottom": {},
	"borderLeft":   {},
	"borderColor":  {},
	"borderStyle":  {},
	"borderWidth":  {},
	"borderRadius": {},
	"outline":      {},
	"outlineColor": {},
	"boxShadow":    {},

	"display":        {},
	"position":       {},
	"top":            {},
	"right":          {},
	"bottom":         {},
	"left":           {},
	"zIndex":         {},
	"overflow":       {},
	"overflowX":      {},
	"overflowY":      {},
	"visibility":     {},
	"flex":           {},
	"flexDirection":  {},
	"flexWrap":       {},
	"flexGrow":       {},
	"flexShrink":     {},
	"alignItems":     {},
	"alignSelf":      {},
	"justifyContent": {},
	"gap":            {},
	"order":          {},

	"fontFamily":     {},
	"fontSize":       {},
	"fontWeight":     {},
	"fontStyle":      {},
	"lineHeight":     {},
	"letterSpacing":  {},
	"textAlign":      {},
	"textDecoration": {},
	"textTransform":  {},
	"whiteSpace":     {},
	"wordBreak":      {},
	"verticalAlign":  {},

	"cursor":     {},
	"transition": {},
	"transform":  {},
	"animation":  {},
	"content":    {},
}

// colorProperties take theme color-token substitution.
var colorProperties = map[string]struct{}{
	"color":           {},
	"backgroundColor": {},
	"borderColor":     {},
	"outlineColor":    {},
}

// KindOf classifies a property key. The classification is closed: a key is
// a selector, a reserved key, an alias, a recognized style property, or an
// attribute, in that order of precedence.
func KindOf(key string) Kind {
	switch {
	case IsSelector(key):
		return Selector
	case key == KeyAs || key == KeyRawCSS:
		return Reserved
	}
	if _, ok := aliases[key]; ok {
		return Alias
	}
	if _, ok := styleProperties[key]; ok {
		return Style
	}
	return Attr
}

// Expand returns the canonical target property names for a shorthand alias.
// The second result is false when key is not an alias.
func Expand(key string) ([]string, bool) {
	targets, ok := aliases[key]
	return targets, ok
}

// IsStyle reports whether key is a recognized canonical style property.
func IsStyle(key string) bool {
	_, ok := styleProperties[key]
	return ok
}

// IsSelector reports whether key names a pseudo-selector, a nested selector
// referencing the generated class ("&…"), or an at-rule block.
func IsSelector(key string) bool {
	return strings.HasPrefix(key, ":") ||
		strings.HasPrefix(key, "&") ||
		strings.HasPrefix(key, "@")
}

// IsSpacing reports whether key belongs to the margin/padding family, whose
// integer values are multiplied by the theme spacing scale.
func IsSpacing(key string) bool {
	return strings.HasPrefix(key, "margin") || strings.HasPrefix(key, "padding")
}

// IsColor reports whether key takes theme color-token substitution.
func IsColor(key string) bool {
	_, ok := colorProperties[key]
	return ok
}

// IsFontFamily reports whether key is resolved through the theme fonts map.
func IsFontFamily(key string) bool { return key == "fontFamily" }

// IsFontSize reports whether key is resolved through the theme sizes map.
func IsFontSize(key string) bool { return key == "fontSize" }
