package stylet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/styletkit/stylet/pkg/theme"
)

func TestWith_NeverMutatesSource_When_Branched(t *testing.T) {
	t.Parallel()

	base := New("div").With(Props{"color": "red"})
	blue := base.With(Props{"color": "blue"})
	green := base.With(Props{"color": "green"})

	assert.Equal(t, "red", base.Resolve(nil, nil)["color"])
	assert.Equal(t, "blue", blue.Resolve(nil, nil)["color"])
	assert.Equal(t, "green", green.Resolve(nil, nil)["color"])
}

func TestWith_CopiesDefaultProps_When_CallerMutatesAfterward(t *testing.T) {
	t.Parallel()

	defaults := Props{"color": "red"}
	d := New("div").With(defaults)
	defaults["color"] = "blue"

	assert.Equal(t, "red", d.Resolve(nil, nil)["color"])
}

func TestWith_AppliesVariadicItemsLeftToRight(t *testing.T) {
	t.Parallel()

	d := New("div").With(
		Props{"width": 1},
		Props{"width": 2},
		Transform(func(p Props, _ *theme.Theme) Props {
			p["seen"] = p["width"]
			return p
		}),
	)

	resolved := d.Resolve(nil, nil)
	assert.Equal(t, 2, resolved["width"])
	assert.Equal(t, 2, resolved["seen"])
}

func TestWith_IgnoresUnsupportedArguments(t *testing.T) {
	t.Parallel()

	d := New("div").With(42, "not a transform", nil, Props{"color": "red"})

	resolved := d.Resolve(nil, nil)
	assert.Equal(t, "red", resolved["color"])
	assert.Len(t, resolved, 1)
}

func TestWith_AcceptsPlainTransformLiterals(t *testing.T) {
	t.Parallel()

	d := New("div").With(func(p Props, _ *Theme) Props {
		p["color"] = "red"
		return p
	})

	assert.Equal(t, "red", d.Resolve(nil, nil)["color"])
}

func TestAs_SetsRenderedTagDefault(t *testing.T) {
	t.Parallel()

	d := New("div").As("section")

	assert.Equal(t, "div", d.Tag())
	assert.Equal(t, "section", d.Resolve(nil, nil)["as"])
}

func TestAnimate_InjectsAnimationDefault(t *testing.T) {
	t.Parallel()

	d := New("span").Animate("2s linear infinite", "spin")

	assert.Equal(t, "spin 2s linear infinite", d.Resolve(nil, nil)["animation"])
}

func TestWrap_RecordsWrappersInCallOrder(t *testing.T) {
	t.Parallel()

	inner := Wrapper(func(s string) string { return "A(" + s + ")" })
	outer := Wrapper(func(s string) string { return "B(" + s + ")" })
	d := New("div").Wrap(inner).Wrap(outer)

	out := "base"
	for _, w := range d.Wrappers() {
		out = w(out)
	}

	assert.Equal(t, "B(A(base))", out, "a later Wrap call wraps the result of earlier ones")
}

func TestWrap_IgnoresNilWrapper(t *testing.T) {
	t.Parallel()

	d := New("div").Wrap(nil)
	assert.Empty(t, d.Wrappers())
}
