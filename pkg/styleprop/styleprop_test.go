package styleprop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected Kind
	}{
		{name: "canonical style property", key: "marginLeft", expected: Style},
		{name: "shorthand alias", key: "mx", expected: Alias},
		{name: "pseudo selector", key: ":hover", expected: Selector},
		{name: "class selector", key: "&.active", expected: Selector},
		{name: "at-rule", key: "@media (max-width: 600px)", expected: Selector},
		{name: "reserved as", key: "as", expected: Reserved},
		{name: "reserved raw css", key: "css", expected: Reserved},
		{name: "plain attribute", key: "href", expected: Attr},
		{name: "data attribute", key: "data-kind", expected: Attr},
		{name: "unknown key", key: "frobnicate", expected: Attr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.key); got != tt.expected {
				t.Errorf("KindOf(%q) = %v, want %v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestExpand(t *testing.T) {
	tests := []struct {
		key     string
		targets []string
	}{
		{key: "m", targets: []string{"margin"}},
		{key: "mx", targets: []string{"marginLeft", "marginRight"}},
		{key: "my", targets: []string{"marginTop", "marginBottom"}},
		{key: "px", targets: []string{"paddingLeft", "paddingRight"}},
		{key: "bg", targets: []string{"backgroundColor"}},
		{key: "size", targets: []string{"width", "height"}},
		{key: "font", targets: []string{"fontFamily"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			targets, ok := Expand(tt.key)
			assert.True(t, ok)
			assert.Equal(t, tt.targets, targets)
		})
	}

	_, ok := Expand("marginLeft")
	assert.False(t, ok, "canonical properties are not aliases")
}

func TestFamilyPredicates(t *testing.T) {
	assert.True(t, IsSpacing("marginTop"))
	assert.True(t, IsSpacing("padding"))
	assert.False(t, IsSpacing("width"))

	assert.True(t, IsColor("backgroundColor"))
	assert.False(t, IsColor("fontFamily"))

	assert.True(t, IsFontFamily("fontFamily"))
	assert.True(t, IsFontSize("fontSize"))
	assert.False(t, IsFontSize("fontWeight"))

	assert.True(t, IsStyle("boxShadow"))
	assert.False(t, IsStyle("mx"), "aliases are not style properties until expanded")
}
