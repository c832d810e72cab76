package stylet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/styletkit/stylet/pkg/theme"
)

func TestResolve_MergesDefaultsRightBiased_When_WithCallsStack(t *testing.T) {
	t.Parallel()

	d := New("div").
		With(Props{"color": "red", "width": 10}).
		With(Props{"color": "blue", "height": 20}).
		With(Props{"height": 30})

	resolved := d.Resolve(nil, nil)

	assert.Equal(t, "blue", resolved["color"])
	assert.Equal(t, 10, resolved["width"])
	assert.Equal(t, 30, resolved["height"])
}

func TestResolve_RunsTransformsInReverseRegistrationOrder(t *testing.T) {
	t.Parallel()

	// first registers before second, so first must observe what second
	// produced, and never the other way around.
	first := Transform(func(p Props, _ *theme.Theme) Props {
		if p["disabled"] == true {
			p["opacity"] = 0.5
		}
		return p
	})
	second := Transform(func(p Props, _ *theme.Theme) Props {
		p["disabled"] = true
		return p
	})

	resolved := New("button").With(first).With(second).Resolve(nil, nil)
	assert.Equal(t, 0.5, resolved["opacity"], "first transform should see keys set by the later-registered one")

	reversed := New("button").With(second).With(first).Resolve(nil, nil)
	_, ok := reversed["opacity"]
	assert.False(t, ok, "second transform must not see keys set by the earlier-registered one")
	assert.Equal(t, true, reversed["disabled"])
}

func TestResolve_LiteralPropsWin_When_DefaultsCollide(t *testing.T) {
	t.Parallel()

	d := New("div").With(Props{"width": 100})
	resolved := d.Resolve(Props{"width": 200}, nil)

	assert.Equal(t, 200, resolved["width"])
}

func TestResolve_ExpandsAxisAliases(t *testing.T) {
	t.Parallel()

	resolved := New("div").Resolve(Props{"mx": 8}, nil)

	assert.Equal(t, 8, resolved["marginLeft"])
	assert.Equal(t, 8, resolved["marginRight"])
	_, ok := resolved["mx"]
	assert.False(t, ok, "shorthand key must be replaced by its targets")
}

func TestResolve_ScalesSpacingIntegers_When_ThemeHasSpacing(t *testing.T) {
	t.Parallel()

	th := &theme.Theme{Spacing: 8}
	resolved := New("div").Resolve(Props{"mx": 2, "padding": 1, "width": 2}, th)

	assert.Equal(t, 16, resolved["marginLeft"])
	assert.Equal(t, 16, resolved["marginRight"])
	assert.Equal(t, 8, resolved["padding"])
	assert.Equal(t, 2, resolved["width"], "spacing scale only applies to the margin/padding family")
}

func TestResolve_KeepsStringSpacingValues_When_NotIntegers(t *testing.T) {
	t.Parallel()

	th := &theme.Theme{Spacing: 8}
	resolved := New("div").Resolve(Props{"margin": "1em"}, th)

	assert.Equal(t, "1em", resolved["margin"])
}

func TestResolve_PrefersLonghand_When_ShorthandCollides(t *testing.T) {
	t.Parallel()

	resolved := New("div").Resolve(Props{"mx": 2, "marginLeft": 7}, nil)

	assert.Equal(t, 7, resolved["marginLeft"], "longhand is more specific and wins")
	assert.Equal(t, 2, resolved["marginRight"])
}

func TestResolve_PrefersSpecificShorthand_When_AliasesCollide(t *testing.T) {
	t.Parallel()

	// ml targets marginLeft alone, so it beats the axis shorthand mx on
	// that property; mx still fills marginRight. Repeated runs pin the
	// result: alias precedence must not depend on map iteration order.
	for i := 0; i < 20; i++ {
		resolved := New("div").Resolve(Props{"mx": 2, "ml": 5}, nil)

		assert.Equal(t, 5, resolved["marginLeft"], "run %d", i)
		assert.Equal(t, 2, resolved["marginRight"], "run %d", i)
	}
}

func TestResolve_SubstitutesThemeTokens(t *testing.T) {
	t.Parallel()

	th := &theme.Theme{
		Colors: map[string]string{"primary": "red"},
		Fonts:  map[string]string{"body": "Inter, sans-serif"},
		Sizes:  map[string]string{"md": "16px"},
	}

	tests := []struct {
		name     string
		props    Props
		key      string
		expected any
	}{
		{name: "color token", props: Props{"color": "primary"}, key: "color", expected: "red"},
		{name: "color literal kept", props: Props{"color": "rebeccapurple"}, key: "color", expected: "rebeccapurple"},
		{name: "background via bg alias", props: Props{"bg": "primary"}, key: "backgroundColor", expected: "red"},
		{name: "font token", props: Props{"fontFamily": "body"}, key: "fontFamily", expected: "Inter, sans-serif"},
		{name: "size token", props: Props{"fontSize": "md"}, key: "fontSize", expected: "16px"},
		{name: "size literal kept", props: Props{"fontSize": "13px"}, key: "fontSize", expected: "13px"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			resolved := New("div").Resolve(tc.props, th)
			assert.Equal(t, tc.expected, resolved[tc.key])
		})
	}
}

func TestResolve_IsDeterministic_When_CalledTwice(t *testing.T) {
	t.Parallel()

	d := New("div").
		With(Props{"p": 2, "bg": "primary"}).
		With(Transform(func(p Props, _ *theme.Theme) Props {
			p["borderRadius"] = 4
			return p
		}))
	th := theme.Default()
	props := Props{"mx": 2, "id": "x"}

	first := d.Resolve(props, th)
	second := d.Resolve(props, th)

	require.Equal(t, first, second)
}

func TestResolve_PropagatesPanic_When_TransformThrows(t *testing.T) {
	t.Parallel()

	d := New("div").With(Transform(func(Props, *theme.Theme) Props {
		panic("boom")
	}))

	assert.PanicsWithValue(t, "boom", func() {
		d.Resolve(nil, nil)
	})
}

func TestResolve_KeepsGoing_When_TransformReturnsNil(t *testing.T) {
	t.Parallel()

	d := New("div").
		With(Props{"color": "red"}).
		With(Transform(func(Props, *theme.Theme) Props { return nil }))

	resolved := d.Resolve(nil, nil)
	assert.Equal(t, "red", resolved["color"])
}

func TestPartition_SplitsStyleSelectorAndAttributeKeys(t *testing.T) {
	t.Parallel()

	resolved := Props{
		"color":     "red",
		":hover":    Props{"opacity": 0.9},
		"css":       "content: '';",
		"id":        "demo",
		"data-kind": "primary",
		"as":        "span",
	}

	styles, attrs := Partition(resolved)

	assert.Equal(t, "red", styles["color"])
	assert.Contains(t, styles, ":hover")
	assert.Contains(t, styles, "css")
	assert.Equal(t, "demo", attrs["id"])
	assert.Equal(t, "primary", attrs["data-kind"])
	assert.NotContains(t, styles, "as")
	assert.NotContains(t, attrs, "as")
}
