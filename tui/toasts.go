// ABOUTME: Toast rendering: stacked notifications under the active view
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imocrm/imocrm/toast"
)

var (
	toastInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 1)

	toastSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("42")).
				Padding(0, 1)

	toastErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("124")).
			Padding(0, 1)
)

func (m Model) renderToasts() string {
	active := m.toasts.Active()
	if len(active) == 0 {
		return ""
	}

	lines := make([]string, 0, len(active))
	for _, t := range active {
		switch t.Kind {
		case toast.Success:
			lines = append(lines, toastSuccessStyle.Render(t.Message))
		case toast.Error:
			lines = append(lines, toastErrorStyle.Render(t.Message))
		default:
			lines = append(lines, toastInfoStyle.Render(t.Message))
		}
	}
	return strings.Join(lines, "\n")
}
