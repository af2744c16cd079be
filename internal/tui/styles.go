package tui

import (
	"strings"

	"pet-activity-log/internal/domain/acts"

	"github.com/charmbracelet/lipgloss"
)

// Nombres CSS de la tabla de categorías que la terminal no entiende.
var cssColors = map[string]string{
	"black":       "#000000",
	"white":       "#ffffff",
	"yellow":      "#ffff00",
	"skyblue":     "#87ceeb",
	"yellowgreen": "#9acd32",
}

func termColor(css string) lipgloss.Color {
	if strings.HasPrefix(css, "#") {
		return lipgloss.Color(css)
	}
	if hex, ok := cssColors[strings.ToLower(css)]; ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color("7")
}

type Styles struct {
	Title    lipgloss.Style
	Clock    lipgloss.Style
	Label    lipgloss.Style
	HourMark lipgloss.Style
	Since    lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
	Modal    lipgloss.Style
	Cursor   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Clock:    lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.NormalBorder(), false, false, true, false),
		Label:    lipgloss.NewStyle().Width(6).Foreground(lipgloss.Color("245")),
		HourMark: lipgloss.NewStyle().Width(6).Bold(true),
		Since:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Modal:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2),
		Cursor:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
	}
}

// chip pinta un registro con el color de su categoría.
func chip(a acts.Act) string {
	c, ok := a.Type.Category()
	if !ok {
		return a.Text
	}
	return lipgloss.NewStyle().
		Background(termColor(c.Color)).
		Foreground(termColor(c.Contrast)).
		Padding(0, 1).
		Render(a.Text)
}
