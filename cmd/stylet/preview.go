package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/styletkit/stylet/pkg/theme"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	listBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// runPreview opens the interactive theme preview: built-in themes on the
// left, the generated stylesheet and terminal swatches for the selection
// on the right.
func runPreview(logger zerolog.Logger) int {
	logger.Debug().Msg("starting preview")
	w, h := terminalSize()
	p := tea.NewProgram(newPreviewModel(w, h))
	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("preview failed")
		return 1
	}
	return 0
}

type previewModel struct {
	themes   []string
	selected int
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

func newPreviewModel(width, height int) previewModel {
	vp := viewport.New(0, 0)
	m := previewModel{themes: theme.Names(), width: width, height: height, viewport: vp}
	m.layout()
	m.refresh()
	return m
}

func (m previewModel) Init() tea.Cmd { return nil }

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.refresh()
			}
		case "down", "j":
			if m.selected < len(m.themes)-1 {
				m.selected++
				m.refresh()
			}
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.refresh()
	}
	return m, nil
}

const previewListWidth = 20

func (m *previewModel) layout() {
	m.viewport.Width = m.width - previewListWidth - 6
	if m.viewport.Width < 20 {
		m.viewport.Width = 20
	}
	m.viewport.Height = m.height - 6
	if m.viewport.Height < 5 {
		m.viewport.Height = 5
	}
	m.ready = true
}

func (m *previewModel) refresh() {
	t, ok := theme.Builtin(m.themes[m.selected])
	if !ok {
		t = theme.Default()
	}
	sheet, _ := renderCatalog(t)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Swatches") + "\n")
	for _, line := range renderSwatches(t, m.viewport.Width) {
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\n" + titleStyle.Render("Stylesheet") + "\n")
	sb.WriteString(sheet)
	m.viewport.SetContent(sb.String())
}

func (m previewModel) View() string {
	if !m.ready {
		return "Loading preview..."
	}

	title := titleStyle.Render(cases.Title(language.English).String("stylet theme preview"))

	var list []string
	for i, name := range m.themes {
		if i == m.selected {
			list = append(list, selectedStyle.Render("> "+name))
			continue
		}
		list = append(list, "  "+name)
	}
	listPanel := listBoxStyle.Width(previewListWidth).Render(strings.Join(list, "\n"))

	detail := listBoxStyle.Render(m.viewport.View())
	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detail)

	help := statusStyle.Render(fmt.Sprintf("%d themes • ↑/↓ select • q quit", len(m.themes)))
	return lipgloss.JoinVertical(lipgloss.Left, title, panels, help)
}
