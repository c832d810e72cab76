package stylet

import "github.com/styletkit/stylet/pkg/styleprop"

// Definition is the immutable record behind a styled component: the element
// tag, the ordered default-prop objects, the ordered transforms, and the
// wrapper chain. Every fluent call returns a derived definition; the
// receiver is never mutated, so definitions are safe to share and branch.
type Definition struct {
	tag        string
	defaults   []Props
	transforms []Transform
	wrappers   []Wrapper
}

// Tag returns the element tag the definition renders by default. The "as"
// prop overrides it at resolve time.
func (d Definition) Tag() string { return d.tag }

// Wrappers returns the wrapper chain in registration order. A later
// wrapper wraps the output of the earlier ones, so the last registered
// wrapper is outermost.
func (d Definition) Wrappers() []Wrapper {
	out := make([]Wrapper, len(d.wrappers))
	copy(out, d.wrappers)
	return out
}

// With derives a definition with additional defaults and transforms. Each
// item may be a Props object or a Transform; items are appended in call
// order, exactly as if chained one call at a time. Anything else is
// ignored.
func (d Definition) With(items ...any) Definition {
	for _, item := range items {
		switch v := item.(type) {
		case Props:
			d.defaults = appended(d.defaults, clone(v))
		case Transform:
			d.transforms = appended(d.transforms, v)
		case func(Props, *Theme) Props:
			d.transforms = appended(d.transforms, Transform(v))
		}
	}
	return d
}

// As derives a definition rendering a different element tag. It is sugar
// for stacking an "as" default.
func (d Definition) As(tag string) Definition {
	return d.With(Props{styleprop.KeyAs: tag})
}

// Wrap derives a definition whose rendered markup passes through w. Later
// Wrap calls wrap the result of earlier ones.
func (d Definition) Wrap(w Wrapper) Definition {
	if w == nil {
		return d
	}
	d.wrappers = appended(d.wrappers, w)
	return d
}

// Animate derives a definition with an animation default referencing a
// keyframes name, e.g. Animate("2s linear infinite", "spin").
func (d Definition) Animate(timing, keyframes string) Definition {
	return d.With(Props{"animation": keyframes + " " + timing})
}

// appended returns a fresh slice with v appended. The backing array is
// always copied so definitions branched from a shared ancestor can never
// observe each other's appends.
func appended[T any](s []T, v T) []T {
	out := make([]T, len(s)+1)
	copy(out, s)
	out[len(s)] = v
	return out
}
