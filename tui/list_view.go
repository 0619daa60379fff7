package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/imocrm/imocrm/lists"
	"github.com/imocrm/imocrm/models"
	"github.com/imocrm/imocrm/toast"
)

func (m Model) renderListView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("IMOCRM BACKOFFICE"))
	s.WriteString("\n\n")

	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	if m.searching {
		s.WriteString("Pesquisa: " + m.searchInput.View())
		s.WriteString("\n\n")
	} else if m.searchText() != "" || m.currentStatus() != lists.StatusAll {
		s.WriteString(helpStyle.Render(fmt.Sprintf("filtro: %q  estado: %s", m.searchText(), m.currentStatus())))
		s.WriteString("\n\n")
	}

	s.WriteString(m.renderTable())
	s.WriteString("\n\n")

	s.WriteString(m.renderListHelp())

	return s.String()
}

func (m Model) renderTabs() string {
	tabs := []string{"Imóveis", "Leads", "Equipas", "Agentes"}
	var rendered []string

	for i, tab := range tabs {
		if EntityType(i) == m.entityType {
			rendered = append(rendered, tabActiveStyle.Render(tab))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderTable() string {
	switch m.entityType {
	case EntityProperties:
		return m.renderPropertiesTable()
	case EntityLeads:
		return m.renderLeadsTable()
	case EntityTeams:
		return m.renderTeamsTable()
	case EntityAgents:
		return m.renderAgentsTable()
	}
	return ""
}

func (m Model) renderPropertiesTable() string {
	columns := []table.Column{
		{Title: "Referência", Width: 12},
		{Title: "Título", Width: 30},
		{Title: "Localização", Width: 28},
		{Title: "Preço", Width: 12},
		{Title: "Estado", Width: 10},
	}

	var rows []table.Row
	for _, p := range m.properties.View() {
		price := "-"
		if p.Price != nil {
			price = fmt.Sprintf("%.0f €", *p.Price)
		}
		rows = append(rows, table.Row{p.Reference, p.Title, p.DisplayAddress(), price, p.Status})
	}

	return m.buildTable(columns, rows)
}

func (m Model) renderLeadsTable() string {
	columns := []table.Column{
		{Title: "Nome", Width: 24},
		{Title: "Email", Width: 28},
		{Title: "Telefone", Width: 14},
		{Title: "Origem", Width: 10},
		{Title: "Estado", Width: 14},
	}

	var rows []table.Row
	for _, l := range m.leads.View() {
		rows = append(rows, table.Row{l.Name, l.Email, l.Phone, l.Source, l.Status})
	}

	return m.buildTable(columns, rows)
}

func (m Model) renderTeamsTable() string {
	columns := []table.Column{
		{Title: "Nome", Width: 24},
		{Title: "Descrição", Width: 40},
		{Title: "Responsável", Width: 12},
	}

	var rows []table.Row
	for _, t := range m.teams.View() {
		manager := "-"
		if t.ManagerID != nil {
			manager = strconv.FormatInt(*t.ManagerID, 10)
		}
		rows = append(rows, table.Row{t.Name, t.Description, manager})
	}

	return m.buildTable(columns, rows)
}

func (m Model) renderAgentsTable() string {
	columns := []table.Column{
		{Title: "Nome", Width: 24},
		{Title: "Email", Width: 28},
		{Title: "Telefone", Width: 14},
		{Title: "Função", Width: 10},
	}

	var rows []table.Row
	for _, a := range m.agents.View() {
		rows = append(rows, table.Row{a.Name, a.Email, a.Phone, a.Role})
	}

	return m.buildTable(columns, rows)
}

func (m Model) buildTable(columns []table.Column, rows []table.Row) string {
	if len(rows) == 0 {
		return notFoundStyle.Render("Nenhum registo encontrado")
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(m.height-12),
	)

	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}

	return t.View()
}

func (m Model) renderListHelp() string {
	help := []string{
		"↑/↓: Navegar",
		"Tab: Mudar separador",
		"/: Pesquisar",
		"f: Estado",
		"v: Detalhe",
		"n: Novo",
		"e: Editar",
		"d: Apagar",
		"r: Recarregar",
		"q: Sair",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the search input is focused every keystroke refilters.
	if m.searching {
		switch msg.String() {
		case "enter", "esc":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.setSearch(m.searchInput.Value())
		m.selectedRow = 0
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "down", "j":
		if m.selectedRow < m.currentLen()-1 {
			m.selectedRow++
		}
	case "tab":
		m.entityType = (m.entityType + 1) % entityCount
		m.selectedRow = 0
		m.statusIndex = 0
		return m, m.loadCurrent()
	case "/":
		m.searching = true
		m.searchInput.SetValue(m.searchText())
		m.searchInput.Focus()
	case "f":
		m.cycleStatus()
		m.selectedRow = 0
	case "r":
		return m, m.loadCurrent()
	case "n":
		if !m.canCreate() {
			return m, nil
		}
		m.openEditor(0)
	case "enter", "v":
		if id := m.selectedID(); id != 0 {
			m.viewMode = ViewDetail
			m.detailID = id
		}
	case "e":
		if !m.canEdit() {
			return m, nil
		}
		if id := m.selectedID(); id != 0 {
			m.openEditor(id)
		}
	case "d":
		if !m.canDelete() {
			return m, nil
		}
		if id := m.selectedID(); id != 0 {
			m.viewMode = ViewConfirmDelete
			m.deleteID = id
			m.deleteLabel = m.selectedLabel()
		}
	}

	return m, nil
}

// Permission gating: the booleans decide which actions exist at all.
func (m Model) canCreate() bool {
	switch m.entityType {
	case EntityTeams:
		return m.perms.CanManageTeams
	case EntityAgents:
		return false // agents are provisioned server-side
	}
	return true
}

func (m Model) canEdit() bool {
	switch m.entityType {
	case EntityTeams:
		return m.perms.CanManageTeams
	case EntityAgents:
		return m.perms.CanManageAgents
	}
	return true
}

func (m Model) canDelete() bool {
	if m.entityType == EntityAgents {
		return false
	}
	if m.entityType == EntityTeams {
		return m.perms.CanManageTeams && m.perms.CanDeleteRecords
	}
	return m.perms.CanDeleteRecords
}

func (m Model) currentLen() int {
	switch m.entityType {
	case EntityProperties:
		return m.properties.Len()
	case EntityLeads:
		return m.leads.Len()
	case EntityTeams:
		return m.teams.Len()
	case EntityAgents:
		return m.agents.Len()
	}
	return 0
}

func (m Model) searchText() string {
	switch m.entityType {
	case EntityProperties:
		return m.properties.Search()
	case EntityLeads:
		return m.leads.Search()
	case EntityTeams:
		return m.teams.Search()
	case EntityAgents:
		return m.agents.Search()
	}
	return ""
}

func (m *Model) setSearch(text string) {
	switch m.entityType {
	case EntityProperties:
		m.properties.SetSearch(text)
	case EntityLeads:
		m.leads.SetSearch(text)
	case EntityTeams:
		m.teams.SetSearch(text)
	case EntityAgents:
		m.agents.SetSearch(text)
	}
}

// statusOptions returns the status filter cycle for the active tab,
// starting with "all". Teams and agents have no status enum.
func (m Model) statusOptions() []string {
	switch m.entityType {
	case EntityProperties:
		return append([]string{lists.StatusAll}, models.PropertyStatuses...)
	case EntityLeads:
		return append([]string{lists.StatusAll}, models.LeadStatuses...)
	}
	return nil
}

func (m Model) currentStatus() string {
	options := m.statusOptions()
	if len(options) == 0 {
		return lists.StatusAll
	}
	return options[m.statusIndex%len(options)]
}

func (m *Model) cycleStatus() {
	options := m.statusOptions()
	if len(options) == 0 {
		return
	}
	m.statusIndex = (m.statusIndex + 1) % len(options)
	status := options[m.statusIndex]
	switch m.entityType {
	case EntityProperties:
		m.properties.SetStatus(status)
	case EntityLeads:
		m.leads.SetStatus(status)
	}
}

func (m Model) selectedID() int64 {
	switch m.entityType {
	case EntityProperties:
		if view := m.properties.View(); m.selectedRow < len(view) {
			return view[m.selectedRow].ID
		}
	case EntityLeads:
		if view := m.leads.View(); m.selectedRow < len(view) {
			return view[m.selectedRow].ID
		}
	case EntityTeams:
		if view := m.teams.View(); m.selectedRow < len(view) {
			return view[m.selectedRow].ID
		}
	case EntityAgents:
		if view := m.agents.View(); m.selectedRow < len(view) {
			return view[m.selectedRow].ID
		}
	}
	return 0
}

func (m Model) selectedLabel() string {
	switch m.entityType {
	case EntityProperties:
		if view := m.properties.View(); m.selectedRow < len(view) {
			return view[m.selectedRow].Reference
		}
	case EntityLeads:
		if view := m.leads.View(); m.selectedRow < len(view) {
			return view[m.selectedRow].Name
		}
	case EntityTeams:
		if view := m.teams.View(); m.selectedRow < len(view) {
			return view[m.selectedRow].Name
		}
	case EntityAgents:
		if view := m.agents.View(); m.selectedRow < len(view) {
			return view[m.selectedRow].Name
		}
	}
	return ""
}

// handleListLoaded stores a fetch result. A failed load clears the
// list and toasts; the user reloads explicitly, nothing retries.
func (m Model) handleListLoaded(msg listLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		switch msg.entity {
		case EntityProperties:
			m.properties.Clear()
		case EntityLeads:
			m.leads.Clear()
		case EntityTeams:
			m.teams.Clear()
		case EntityAgents:
			m.agents.Clear()
		}
		m.toasts.Push("Erro ao carregar: "+msg.err.Error(), toast.Error)
		return m, nil
	}

	switch msg.entity {
	case EntityProperties:
		m.properties.Reset(msg.properties)
	case EntityLeads:
		m.leads.Reset(msg.leads)
	case EntityTeams:
		m.teams.Reset(msg.teams)
	case EntityAgents:
		m.agents.Reset(msg.agents)
	}
	if m.selectedRow >= m.currentLen() {
		m.selectedRow = 0
	}
	return m, nil
}

// handleSaved closes the drawer and reloads on success; a failure
// keeps the drawer open with the draft intact.
func (m Model) handleSaved(msg savedMsg) (tea.Model, tea.Cmd) {
	m.saving = false

	if msg.err != nil {
		m.toasts.Push("Erro ao guardar: "+msg.err.Error(), toast.Error)
		return m, nil
	}

	if msg.create {
		m.toasts.Push("Registo criado", toast.Success)
	} else {
		m.toasts.Push("Registo atualizado", toast.Success)
	}
	m.closeEditor()
	return m, m.loadCurrent()
}

// handleDeleted reloads on success; a failure leaves the rendered list
// untouched and shows one error toast.
func (m Model) handleDeleted(msg deletedMsg) (tea.Model, tea.Cmd) {
	m.viewMode = ViewList
	m.deleteID = 0

	if msg.err != nil {
		m.toasts.Push("Erro ao apagar: "+msg.err.Error(), toast.Error)
		return m, nil
	}

	m.toasts.Push("Registo apagado", toast.Success)
	return m, m.loadCurrent()
}
