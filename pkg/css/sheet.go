// Package css turns resolved style property maps into deduplicated CSS
// rules behind stable, content-derived class names. It is the in-process
// stand-in for a CSS-in-JS engine: structurally identical style maps yield
// the same class, and each rule is emitted at most once per sheet.
package css

import (
	"fmt"
	"hash/fnv"
	"io"
	"sort"
	"strings"

	"github.com/styletkit/stylet/pkg/styleprop"
)

// ClassPrefix is prepended to every generated class name.
const ClassPrefix = "st-"

// unitless properties keep bare numeric values; everything else numeric
// gets a px suffix.
var unitless = map[string]struct{}{
	"opacity":    {},
	"zIndex":     {},
	"fontWeight": {},
	"lineHeight": {},
	"flex":       {},
	"flexGrow":   {},
	"flexShrink": {},
	"order":      {},
}

// ClassName derives the stable identity of a style map: properties are
// serialized in sorted key order (recursing into nested selector blocks)
// and FNV-1a hashed. Structurally equal maps always produce the same name.
func ClassName(styles map[string]any) string {
	h := fnv.New64a()
	writeStyles(h, styles)
	return fmt.Sprintf("%s%x", ClassPrefix, h.Sum64())
}

func writeStyles(w io.Writer, styles map[string]any) {
	keys := sortedKeys(styles)
	for _, k := range keys {
		fmt.Fprintf(w, "%s:", k)
		if nested, ok := styles[k].(map[string]any); ok {
			fmt.Fprint(w, "{")
			writeStyles(w, nested)
			fmt.Fprint(w, "}")
		} else {
			fmt.Fprintf(w, "%v", styles[k])
		}
		fmt.Fprint(w, ";")
	}
}

// Rule renders the CSS rule set for a class: the base declaration block,
// any raw CSS text appended after the object-form declarations, and one
// derived rule per nested selector block.
func Rule(class string, styles map[string]any) string {
	var base []string
	var raw string
	type derived struct {
		selector string
		styles   map[string]any
	}
	var nested []derived

	for _, k := range sortedKeys(styles) {
		v := styles[k]
		switch {
		case k == styleprop.KeyRawCSS:
			raw, _ = v.(string)
		case styleprop.IsSelector(k):
			if sub, ok := v.(map[string]any); ok {
				nested = append(nested, derived{selector: k, styles: sub})
			}
		default:
			base = append(base, fmt.Sprintf("%s: %s;", Kebab(k), Value(k, v)))
		}
	}

	var sb strings.Builder
	sb.WriteString("." + class + " {")
	for _, decl := range base {
		sb.WriteString(" " + decl)
	}
	if raw = strings.TrimSpace(raw); raw != "" {
		sb.WriteString(" " + raw)
		if !strings.HasSuffix(raw, ";") && !strings.HasSuffix(raw, "}") {
			sb.WriteString(";")
		}
	}
	sb.WriteString(" }")

	for _, d := range nested {
		sb.WriteString("\n")
		sb.WriteString(derivedRule(class, d.selector, d.styles))
	}
	return sb.String()
}

// derivedRule emits the rule for one nested selector block. Pseudo
// selectors attach to the class, "&" substitutes the class, and at-rules
// wrap the base rule.
func derivedRule(class, selector string, styles map[string]any) string {
	decls := make([]string, 0, len(styles))
	for _, k := range sortedKeys(styles) {
		decls = append(decls, fmt.Sprintf("%s: %s;", Kebab(k), Value(k, styles[k])))
	}
	body := strings.Join(decls, " ")

	switch {
	case strings.HasPrefix(selector, ":"):
		return fmt.Sprintf(".%s%s { %s }", class, selector, body)
	case strings.HasPrefix(selector, "&"):
		return fmt.Sprintf("%s { %s }", strings.Replace(selector, "&", "."+class, 1), body)
	case strings.HasPrefix(selector, "@"):
		return fmt.Sprintf("%s { .%s { %s } }", selector, class, body)
	default:
		return fmt.Sprintf(".%s %s { %s }", class, selector, body)
	}
}

// Value formats a single declaration value. Numeric values are treated as
// pixel lengths except for the unitless property set.
func Value(key string, v any) string {
	switch n := v.(type) {
	case int:
		return numeric(key, fmt.Sprintf("%d", n))
	case int64:
		return numeric(key, fmt.Sprintf("%d", n))
	case float64:
		s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", n), "0"), ".")
		if s == "" || s == "-" || s == "-0" {
			s = "0"
		}
		return numeric(key, s)
	case string:
		return n
	default:
		return fmt.Sprintf("%v", v)
	}
}

func numeric(key, s string) string {
	if _, ok := unitless[key]; ok {
		return s
	}
	if s == "0" {
		return s
	}
	return s + "px"
}

// Kebab converts a camelCase property name to its CSS form.
func Kebab(key string) string {
	var sb strings.Builder
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			sb.WriteByte('-')
			sb.WriteRune(r - 'A' + 'a')
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Sheet is an insert-once rule registry. Rendering the same style map
// repeatedly records its rule a single time; rules are emitted in first
// insertion order. Sheets are not safe for concurrent use.
type Sheet struct {
	seen  map[string]struct{}
	rules []string
}

// NewSheet returns an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{seen: make(map[string]struct{})}
}

// Insert registers the rule for a style map and returns its class name.
// An empty style map yields no class and no rule.
func (s *Sheet) Insert(styles map[string]any) string {
	if len(styles) == 0 {
		return ""
	}
	class := ClassName(styles)
	if _, ok := s.seen[class]; ok {
		return class
	}
	s.seen[class] = struct{}{}
	s.rules = append(s.rules, Rule(class, styles))
	return class
}

// Len returns the number of distinct rules recorded.
func (s *Sheet) Len() int { return len(s.rules) }

// String emits the stylesheet in insertion order.
func (s *Sheet) String() string {
	return strings.Join(s.rules, "\n")
}
