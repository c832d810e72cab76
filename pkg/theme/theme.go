// Package theme defines the token maps consulted during prop resolution:
// a spacing scale for the margin/padding family and named tokens for
// colors, font families, and font sizes. Lookups are permissive; a value
// with no matching token resolves to itself.
package theme

// Theme is an externally supplied token descriptor. The zero value (and a
// nil *Theme) is valid and resolves every value literally.
type Theme struct {
	Name    string            `yaml:"name"`
	Spacing int               `yaml:"spacing" validate:"gte=0"`
	Colors  map[string]string `yaml:"colors" validate:"omitempty,dive,required"`
	Fonts   map[string]string `yaml:"fonts" validate:"omitempty,dive,required"`
	Sizes   map[string]string `yaml:"sizes" validate:"omitempty,dive,required"`
}

// SpacingScale returns the multiplier applied to integer values on
// margin/padding properties. A nil theme or an unset spacing means 1.
func (t *Theme) SpacingScale() int {
	if t == nil || t.Spacing == 0 {
		return 1
	}
	return t.Spacing
}

// Color resolves a color token. The second result is false when the token
// is unknown, in which case callers keep the literal value.
func (t *Theme) Color(token string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.Colors[token]
	return v, ok
}

// Font resolves a font-family token.
func (t *Theme) Font(token string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.Fonts[token]
	return v, ok
}

// Size resolves a font-size token.
func (t *Theme) Size(token string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.Sizes[token]
	return v, ok
}

// Default returns the stock theme: a 4px spacing scale and a vibrant
// semantic palette.
func Default() *Theme {
	return &Theme{
		Name:    "default",
		Spacing: 4,
		Colors: map[string]string{
			"primary":   "#3b82f6",
			"secondary": "#8b5cf6",
			"success":   "#22c55e",
			"warning":   "#f59e0b",
			"danger":    "#ef4444",
			"text":      "#1f2937",
			"muted":     "#6b7280",
			"surface":   "#ffffff",
			"border":    "#e5e7eb",
		},
		Fonts: map[string]string{
			"body": "system-ui, sans-serif",
			"mono": "ui-monospace, monospace",
		},
		Sizes: map[string]string{
			"xs": "12px",
			"sm": "14px",
			"md": "16px",
			"lg": "20px",
			"xl": "24px",
		},
	}
}

// Muted returns a desaturated, professional palette on the same scale.
func Muted() *Theme {
	return &Theme{
		Name:    "muted",
		Spacing: 4,
		Colors: map[string]string{
			"primary":   "#5f87af",
			"secondary": "#87afaf",
			"success":   "#87af87",
			"warning":   "#d7af5f",
			"danger":    "#d75f5f",
			"text":      "#303030",
			"muted":     "#8a8a8a",
			"surface":   "#fafafa",
			"border":    "#d0d0d0",
		},
		Fonts: map[string]string{
			"body": "Georgia, serif",
			"mono": "ui-monospace, monospace",
		},
		Sizes: map[string]string{
			"xs": "12px",
			"sm": "14px",
			"md": "16px",
			"lg": "19px",
			"xl": "23px",
		},
	}
}

// Monochrome returns a theme with no color tokens at all: color values
// resolve literally and only the spacing scale applies.
func Monochrome() *Theme {
	return &Theme{
		Name:    "monochrome",
		Spacing: 4,
	}
}

// builtins lists the stock themes by name, in display order.
var builtins = []*Theme{Default(), Muted(), Monochrome()}

// Builtin returns a stock theme by name.
func Builtin(name string) (*Theme, bool) {
	for _, t := range builtins {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Names returns the stock theme names in display order.
func Names() []string {
	names := make([]string, len(builtins))
	for i, t := range builtins {
		names[i] = t.Name
	}
	return names
}
