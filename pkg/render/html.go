// Package render materializes styled components through concrete backends:
// an HTML backend that pairs generated markup with a deduplicating CSS
// sheet, and a terminal backend that compiles the same resolved properties
// into lipgloss styles.
package render

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/styletkit/stylet"
	"github.com/styletkit/stylet/pkg/css"
	"github.com/styletkit/stylet/pkg/styleprop"
	"github.com/styletkit/stylet/pkg/theme"
)

// voidTags render without a closing tag.
var voidTags = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
	"img": {}, "input": {}, "link": {}, "meta": {}, "source": {},
	"track": {}, "wbr": {},
}

// HTML renders styled components as markup, collecting each distinct style
// rule once in its sheet. One HTML renderer corresponds to one emitted
// stylesheet.
type HTML struct {
	Theme *theme.Theme
	Sheet *css.Sheet
}

// NewHTML creates an HTML renderer for the given theme. A nil theme
// resolves every value literally.
func NewHTML(th *theme.Theme) *HTML {
	return &HTML{Theme: th, Sheet: css.NewSheet()}
}

// Render resolves the definition against the caller's props and produces
// the element markup. Style properties become a class backed by a rule in
// the sheet, remaining keys become attributes, and the definition's
// wrapper chain is applied last, later wrappers outermost.
func (r *HTML) Render(d stylet.Definition, props stylet.Props, children ...string) string {
	resolved := d.Resolve(props, r.Theme)
	styles, attrs := stylet.Partition(resolved)

	tag := d.Tag()
	if as, ok := resolved[styleprop.KeyAs].(string); ok && as != "" {
		tag = as
	}

	var sb strings.Builder
	sb.WriteString("<" + tag)
	if class := r.Sheet.Insert(styles); class != "" {
		sb.WriteString(fmt.Sprintf(" class=%q", class))
	}
	for _, k := range sortedAttrKeys(attrs) {
		sb.WriteString(fmt.Sprintf(" %s=%q", k, html.EscapeString(fmt.Sprintf("%v", attrs[k]))))
	}

	if _, void := voidTags[tag]; void {
		sb.WriteString(" />")
	} else {
		sb.WriteString(">")
		for _, child := range children {
			sb.WriteString(child)
		}
		sb.WriteString("</" + tag + ">")
	}

	out := sb.String()
	for _, w := range d.Wrappers() {
		out = w(out)
	}
	return out
}

func sortedAttrKeys(attrs stylet.Props) []string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
