package stylet

import (
	"sort"

	"github.com/styletkit/stylet/pkg/styleprop"
	"github.com/styletkit/stylet/pkg/theme"
)

// Resolve produces the final flat property map for one render. The order
// is fixed and callers rely on it:
//
//  1. default-prop objects merge in registration order, later wins;
//  2. transforms run in reverse registration order, so a transform only
//     observes keys produced by transforms registered after it;
//  3. the caller's literal props merge last and win;
//  4. shorthand aliases expand to their canonical properties, with an
//     already-present longhand beating its shorthand;
//  5. theme tokens substitute for spacing, color, font, and size values.
//
// Resolve never fails: unknown aliases, missing tokens, and malformed
// values fall back to the literal input. A panicking transform is the one
// exception; the panic propagates to the render caller.
func (d Definition) Resolve(props Props, th *theme.Theme) Props {
	acc := Props{}
	for _, dp := range d.defaults {
		merge(acc, dp)
	}
	for i := len(d.transforms) - 1; i >= 0; i-- {
		if next := d.transforms[i](clone(acc), th); next != nil {
			acc = next
		}
	}
	merge(acc, props)
	acc = expandAliases(acc)
	applyTheme(acc, th)
	return acc
}

// Partition splits a resolved map into style properties (including nested
// selector blocks and raw CSS, which pass through untouched) and the
// attributes forwarded to the rendered element. Reserved keys land in
// neither map.
func Partition(resolved Props) (styles, attrs Props) {
	styles = Props{}
	attrs = Props{}
	for k, v := range resolved {
		switch styleprop.KindOf(k) {
		case styleprop.Style, styleprop.Selector:
			styles[k] = v
		case styleprop.Reserved:
			if k == styleprop.KeyRawCSS {
				styles[k] = v
			}
		default:
			attrs[k] = v
		}
	}
	return styles, attrs
}

// expandAliases replaces every shorthand key with its canonical target
// properties. When both a shorthand and its longhand target are present,
// the longhand value wins and the shorthand is dropped. When two
// shorthands share a target ("ml" and "mx" both feed marginLeft), the
// shorthand with fewer targets is more specific and claims the property
// first; remaining ties break on the key name, so expansion never depends
// on map iteration order.
func expandAliases(p Props) Props {
	out := make(Props, len(p))
	var shorthands []string
	for k, v := range p {
		if _, ok := styleprop.Expand(k); ok {
			shorthands = append(shorthands, k)
			continue
		}
		out[k] = v
	}
	sort.Slice(shorthands, func(i, j int) bool {
		ti, _ := styleprop.Expand(shorthands[i])
		tj, _ := styleprop.Expand(shorthands[j])
		if len(ti) != len(tj) {
			return len(ti) < len(tj)
		}
		return shorthands[i] < shorthands[j]
	})
	for _, k := range shorthands {
		targets, _ := styleprop.Expand(k)
		for _, target := range targets {
			if _, present := out[target]; present {
				continue
			}
			out[target] = p[k]
		}
	}
	return out
}

// applyTheme substitutes theme tokens in place. Integer values on the
// margin/padding family scale by the spacing multiplier; string values on
// color, font-family, and font-size properties resolve through the
// corresponding token map when a token matches, and stay literal otherwise.
func applyTheme(p Props, th *theme.Theme) {
	scale := th.SpacingScale()
	for k, v := range p {
		switch {
		case styleprop.IsSpacing(k):
			if n, ok := v.(int); ok {
				p[k] = n * scale
			}
		case styleprop.IsColor(k):
			if tok, ok := v.(string); ok {
				if resolved, found := th.Color(tok); found {
					p[k] = resolved
				}
			}
		case styleprop.IsFontFamily(k):
			if tok, ok := v.(string); ok {
				if resolved, found := th.Font(tok); found {
					p[k] = resolved
				}
			}
		case styleprop.IsFontSize(k):
			if tok, ok := v.(string); ok {
				if resolved, found := th.Size(tok); found {
					p[k] = resolved
				}
			}
		}
	}
}
