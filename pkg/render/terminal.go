package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/styletkit/stylet"
	"github.com/styletkit/stylet/pkg/styleprop"
	"github.com/styletkit/stylet/pkg/theme"
)

// DefaultTerminalWidth is the fallback width when detection fails.
const DefaultTerminalWidth = 80

// Terminal renders styled components as lipgloss-styled terminal output.
// The same resolved property map that feeds the CSS backend compiles here
// into a lipgloss.Style; properties with no terminal equivalent (cursor,
// transitions, nested selectors) are skipped.
type Terminal struct {
	Theme *theme.Theme
	Width int
}

// NewTerminal creates a terminal renderer with the given theme and width.
func NewTerminal(th *theme.Theme, width int) *Terminal {
	if width <= 0 {
		width = DefaultTerminalWidth
	}
	return &Terminal{Theme: th, Width: width}
}

// Render resolves the definition and renders content through the compiled
// style. The wrapper chain applies to the styled output, later wrappers
// outermost.
func (t *Terminal) Render(d stylet.Definition, props stylet.Props, content string) string {
	resolved := d.Resolve(props, t.Theme)
	styles, _ := stylet.Partition(resolved)

	out := CompileStyle(styles).MaxWidth(t.Width).Render(content)
	for _, w := range d.Wrappers() {
		out = w(out)
	}
	return out
}

// CompileStyle maps resolved style properties onto a lipgloss.Style.
func CompileStyle(styles stylet.Props) lipgloss.Style {
	s := lipgloss.NewStyle()
	for k, v := range styles {
		if styleprop.IsSelector(k) || k == styleprop.KeyRawCSS {
			continue
		}
		switch k {
		case "padding":
			if n, ok := cells(v); ok {
				s = s.Padding(0, n)
			}
		case "paddingTop":
			if n, ok := cells(v); ok {
				s = s.PaddingTop(n)
			}
		case "paddingRight":
			if n, ok := cells(v); ok {
				s = s.PaddingRight(n)
			}
		case "paddingBottom":
			if n, ok := cells(v); ok {
				s = s.PaddingBottom(n)
			}
		case "paddingLeft":
			if n, ok := cells(v); ok {
				s = s.PaddingLeft(n)
			}
		case "margin":
			if n, ok := cells(v); ok {
				s = s.Margin(0, n)
			}
		case "marginTop":
			if n, ok := cells(v); ok {
				s = s.MarginTop(n)
			}
		case "marginRight":
			if n, ok := cells(v); ok {
				s = s.MarginRight(n)
			}
		case "marginBottom":
			if n, ok := cells(v); ok {
				s = s.MarginBottom(n)
			}
		case "marginLeft":
			if n, ok := cells(v); ok {
				s = s.MarginLeft(n)
			}
		case "width":
			if n, ok := cells(v); ok {
				s = s.Width(n)
			}
		case "height":
			if n, ok := cells(v); ok {
				s = s.Height(n)
			}
		case "color":
			s = s.Foreground(lipgloss.Color(fmt.Sprintf("%v", v)))
		case "backgroundColor":
			s = s.Background(lipgloss.Color(fmt.Sprintf("%v", v)))
		case "borderColor":
			s = s.BorderForeground(lipgloss.Color(fmt.Sprintf("%v", v)))
		case "border", "borderStyle":
			if fmt.Sprintf("%v", v) != "none" {
				s = s.Border(lipgloss.RoundedBorder())
			}
		case "fontWeight":
			s = s.Bold(isBold(v))
		case "fontStyle":
			s = s.Italic(fmt.Sprintf("%v", v) == "italic")
		case "textDecoration":
			deco := fmt.Sprintf("%v", v)
			s = s.Underline(strings.Contains(deco, "underline")).
				Strikethrough(strings.Contains(deco, "line-through"))
		case "textAlign":
			switch fmt.Sprintf("%v", v) {
			case "center":
				s = s.Align(lipgloss.Center)
			case "right":
				s = s.Align(lipgloss.Right)
			}
		}
	}
	return s
}

// PadRight pads a string to the given visual width in terminal cells,
// handling wide characters and emoji correctly.
func PadRight(s string, width int) string {
	vw := runewidth.StringWidth(s)
	if vw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vw)
}

// cells converts a numeric style value to terminal cells. Values are used
// as-is; the spacing scale has already been applied during resolve.
func cells(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// isBold interprets CSS font-weight values, keyword or numeric.
func isBold(v any) bool {
	switch w := v.(type) {
	case int:
		return w >= 600
	case string:
		return w == "bold" || w == "bolder" || w == "600" || w == "700" || w == "800" || w == "900"
	default:
		return false
	}
}
