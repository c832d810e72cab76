// Command stylet previews the styled-component catalog. It renders the
// sample components for a theme as a stylesheet and markup, lists the
// built-in themes, or opens an interactive terminal preview.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/styletkit/stylet/internal/version"
	"github.com/styletkit/stylet/pkg/render"
	"github.com/styletkit/stylet/pkg/theme"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI and returns the exit code, so tests can invoke the
// logic without os.Exit terminating the runner.
func run(args []string) int {
	command := "css"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet("stylet", flag.ContinueOnError)
	themeName := fs.String("theme", "default", "built-in theme name")
	themeFile := fs.String("theme-file", "", "YAML theme file (overrides -theme)")
	debug := fs.Bool("debug", false, "verbose diagnostics on stderr")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintf(os.Stdout, "stylet version %s\n", version.Version)
		fmt.Fprintf(os.Stdout, "Commit: %s\n", version.CommitHash)
		fmt.Fprintf(os.Stdout, "Built: %s\n", version.BuildDate)
		return 0
	}

	logger := newLogger(*debug)
	th := loadTheme(logger, *themeName, *themeFile)

	switch command {
	case "css":
		return runCSS(th)
	case "themes":
		return runThemes()
	case "preview":
		return runPreview(logger)
	default:
		fmt.Fprintf(os.Stderr, "stylet: unknown command %q (want css, themes, or preview)\n", command)
		return 2
	}
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// loadTheme resolves the active theme. Theme problems degrade rather than
// abort: a rejected file still contributes whatever tokens it parsed, and
// an unknown name falls back to the default theme.
func loadTheme(logger zerolog.Logger, name, file string) *theme.Theme {
	if file != "" {
		t, err := theme.Load(file)
		if err != nil {
			logger.Warn().Err(err).Str("file", file).Msg("theme file rejected")
			if t != nil {
				return t
			}
			return theme.Default()
		}
		logger.Debug().Str("theme", t.Name).Msg("loaded theme file")
		return t
	}
	if t, ok := theme.Builtin(name); ok {
		return t
	}
	logger.Warn().Str("theme", name).Msg("unknown theme, using default")
	return theme.Default()
}

// runCSS emits the stylesheet and markup for the sample catalog.
func runCSS(th *theme.Theme) int {
	sheet, blocks := renderCatalog(th)
	fmt.Println("/* stylet: generated stylesheet (" + th.Name + " theme) */")
	fmt.Println(sheet)
	fmt.Println()
	for _, b := range blocks {
		fmt.Println(b)
	}
	return 0
}

// runThemes lists the built-in themes with a primary-color swatch.
func runThemes() int {
	for _, name := range theme.Names() {
		t, _ := theme.Builtin(name)
		chip := "  "
		if primary, ok := t.Color("primary"); ok {
			chip = lipgloss.NewStyle().Background(lipgloss.Color(primary)).Render("  ")
		}
		fmt.Printf("%s %s (spacing %d, %d colors)\n",
			chip, render.PadRight(name, 12), t.SpacingScale(), len(t.Colors))
	}
	return 0
}

// terminalSize returns the current terminal dimensions, falling back to
// 80x24 when stdout is not a terminal.
func terminalSize() (int, int) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return render.DefaultTerminalWidth, 24
	}
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return render.DefaultTerminalWidth, 24
	}
	return w, h
}
