package stylet

import (
	"fmt"
	"strings"

	"github.com/styletkit/stylet/pkg/styleprop"
	"github.com/styletkit/stylet/pkg/theme"
)

// CSS derives a definition with a raw CSS block. String parts are
// concatenated as-is; parts of type func(Props) string or
// func(Props, *Theme) string are invoked with the props accumulated at
// this position in the transform order and their result is substituted.
// Any other part is formatted with the fmt default verb.
//
// The whole template registers as a single transform, so it follows the
// reverse-registration ordering: an interpolation sees the keys produced
// by transforms registered after this CSS call, and none produced by
// transforms registered before it. The assembled text is appended to the
// definition's raw CSS, after any object-form styles.
func (d Definition) CSS(parts ...any) Definition {
	segments := make([]any, len(parts))
	copy(segments, parts)

	t := Transform(func(p Props, th *theme.Theme) Props {
		var sb strings.Builder
		for _, part := range segments {
			switch v := part.(type) {
			case string:
				sb.WriteString(v)
			case func(Props) string:
				sb.WriteString(v(clone(p)))
			case func(Props, *theme.Theme) string:
				sb.WriteString(v(clone(p), th))
			default:
				fmt.Fprintf(&sb, "%v", v)
			}
		}
		block := strings.TrimSpace(sb.String())
		if block == "" {
			return p
		}
		if prev, ok := p[styleprop.KeyRawCSS].(string); ok && prev != "" {
			p[styleprop.KeyRawCSS] = prev + " " + block
		} else {
			p[styleprop.KeyRawCSS] = block
		}
		return p
	})
	return d.With(t)
}
