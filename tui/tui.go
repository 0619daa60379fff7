// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Full-screen backoffice: entity tabs, search, edit drawer, toasts
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/imocrm/imocrm/api"
	"github.com/imocrm/imocrm/forms"
	"github.com/imocrm/imocrm/lists"
	"github.com/imocrm/imocrm/models"
	"github.com/imocrm/imocrm/toast"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
	ViewEdit
	ViewConfirmDelete
)

// EntityType represents the type of entity being viewed
type EntityType int

const (
	EntityProperties EntityType = iota
	EntityLeads
	EntityTeams
	EntityAgents
)

const entityCount = 4

// Model is the main bubbletea model
type Model struct {
	client *api.Client
	perms  models.Permissions

	viewMode   ViewMode
	entityType EntityType

	// List view state
	properties  *lists.Controller[models.Property]
	leads       *lists.Controller[models.Lead]
	teams       *lists.Controller[models.Team]
	agents      *lists.Controller[models.Agent]
	selectedRow int
	searching   bool
	searchInput textinput.Model
	statusIndex int

	// Edit view state. editID zero means create mode.
	editID        int64
	propertyDraft *forms.PropertyDraft
	leadDraft     *forms.LeadDraft
	teamDraft     *forms.TeamDraft
	agentDraft    *forms.AgentDraft
	formInputs    []textinput.Model
	focusIndex    int
	formErrors    forms.Errors
	saving        bool

	// Detail view state
	detailID int64

	// Delete confirmation state
	deleteID    int64
	deleteLabel string

	toasts *toast.Queue

	width  int
	height int
}

// NewModel creates a new TUI model
func NewModel(client *api.Client, perms models.Permissions) Model {
	search := textinput.New()
	search.Placeholder = "Pesquisar"
	search.CharLimit = 100

	return Model{
		client:     client,
		perms:      perms,
		viewMode:   ViewList,
		entityType: EntityProperties,
		properties: lists.NewController(propertySchema()),
		leads:      lists.NewController(leadSchema()),
		teams:      lists.NewController(teamSchema()),
		agents:     lists.NewController(agentSchema()),
		searchInput: search,
		toasts:     toast.NewQueue(),
		width:      80,
		height:     24,
	}
}

func propertySchema() lists.Schema[models.Property] {
	return lists.Schema[models.Property]{
		SearchFields: func(p models.Property) []string {
			return []string{p.Reference, p.Title, p.DisplayAddress()}
		},
		Status: func(p models.Property) string { return p.Status },
	}
}

func leadSchema() lists.Schema[models.Lead] {
	return lists.Schema[models.Lead]{
		SearchFields: func(l models.Lead) []string {
			return []string{l.Name, l.Email, l.Phone}
		},
		Status: func(l models.Lead) string { return l.Status },
	}
}

func teamSchema() lists.Schema[models.Team] {
	return lists.Schema[models.Team]{
		SearchFields: func(t models.Team) []string {
			return []string{t.Name, t.Description}
		},
	}
}

func agentSchema() lists.Schema[models.Agent] {
	return lists.Schema[models.Agent]{
		SearchFields: func(a models.Agent) []string {
			return []string{a.Name, a.Email, a.Phone}
		},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCurrent(), toastTick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case listLoadedMsg:
		return m.handleListLoaded(msg)
	case savedMsg:
		return m.handleSaved(msg)
	case deletedMsg:
		return m.handleDeleted(msg)
	case toastTickMsg:
		m.toasts.Expire()
		return m, toastTick()
	}
	return m, nil
}

func (m Model) View() string {
	var body string
	switch m.viewMode {
	case ViewList:
		body = m.renderListView()
	case ViewDetail:
		body = m.renderDetailView()
	case ViewEdit:
		body = m.renderEditView()
	case ViewConfirmDelete:
		body = m.renderConfirmDeleteView()
	}
	if toasts := m.renderToasts(); toasts != "" {
		body += "\n" + toasts
	}
	return body
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Delegate to view-specific handlers
	switch m.viewMode {
	case ViewList:
		return m.handleListKeys(msg)
	case ViewDetail:
		return m.handleDetailKeys(msg)
	case ViewEdit:
		return m.handleEditKeys(msg)
	case ViewConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	}

	return m, nil
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	errorListStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	notFoundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)
