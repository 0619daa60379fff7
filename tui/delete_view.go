// ABOUTME: Destructive-action confirmation view
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) renderConfirmDeleteView() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Apagar registo"))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("Tem a certeza que quer apagar %q?\n", m.deleteLabel))
	s.WriteString(errorListStyle.Render("Esta ação não pode ser revertida."))
	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("s: Confirmar • n/Esc: Cancelar"))
	return s.String()
}

func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s", "y":
		id := m.deleteID
		return m, m.deleteEntity(m.entityType, id)
	case "n", "esc":
		m.viewMode = ViewList
		m.deleteID = 0
		m.deleteLabel = ""
	}
	return m, nil
}
