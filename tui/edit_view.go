// ABOUTME: Edit drawer: one form per entity, create and edit share it
// ABOUTME: Esc discards the draft; enter validates before any request fires
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/imocrm/imocrm/forms"
	"github.com/imocrm/imocrm/models"
)

var propertyFieldLabels = []string{
	"Referência",
	"Título",
	"Tipo de negócio",
	"Tipo de imóvel",
	"Tipologia",
	"Preço",
	"Área útil (m²)",
	"Área de terreno (m²)",
	"Distrito",
	"Concelho",
	"Freguesia",
	"Rua",
	"Condição",
	"Certificado energético",
	"Latitude",
	"Longitude",
	"Quartos",
	"Casas de banho",
	"Estacionamento",
	"Estado",
	"Novas imagens (separadas por vírgula)",
}

const (
	propFieldReference = iota
	propFieldTitle
	propFieldBusinessType
	propFieldPropertyType
	propFieldTypology
	propFieldPrice
	propFieldUsableArea
	propFieldLandArea
	propFieldDistrict
	propFieldMunicipality
	propFieldParish
	propFieldStreet
	propFieldCondition
	propFieldEnergy
	propFieldLatitude
	propFieldLongitude
	propFieldBedrooms
	propFieldBathrooms
	propFieldParking
	propFieldStatus
	propFieldNewImages
)

var leadFieldLabels = []string{
	"Nome",
	"Email",
	"Telefone",
	"Origem",
	"Estado",
	"Agente (ID)",
	"Notas",
	"Orçamento mínimo",
	"Orçamento máximo",
}

const (
	leadFieldName = iota
	leadFieldEmail
	leadFieldPhone
	leadFieldSource
	leadFieldStatus
	leadFieldAgent
	leadFieldNotes
	leadFieldBudgetMin
	leadFieldBudgetMax
)

var teamFieldLabels = []string{
	"Nome",
	"Descrição",
	"Responsável (ID)",
}

var agentFieldLabels = []string{
	"Nome",
	"Email",
	"Telefone",
	"Bio",
	"Cédula profissional",
	"Website",
	"Facebook",
	"Instagram",
	"LinkedIn",
}

const (
	agentFieldName = iota
	agentFieldEmail
	agentFieldPhone
	agentFieldBio
	agentFieldLicense
	agentFieldWebsite
	agentFieldFacebook
	agentFieldInstagram
	agentFieldLinkedIn
)

// openEditor switches to the drawer. A zero id seeds a blank create
// draft; otherwise the draft is seeded from the already fetched record,
// so untouched fields submit with their original values.
func (m *Model) openEditor(id int64) {
	m.editID = id
	m.formErrors = nil
	m.focusIndex = 0
	m.saving = false

	switch m.entityType {
	case EntityProperties:
		if id == 0 {
			m.propertyDraft = forms.NewPropertyDraft()
		} else if p := m.findProperty(id); p != nil {
			m.propertyDraft = forms.PropertyDraftFrom(p)
		} else {
			return
		}
		m.formInputs = buildInputs(propertyFieldLabels, m.propertyValues())
	case EntityLeads:
		if id == 0 {
			m.leadDraft = forms.NewLeadDraft()
		} else if l := m.findLead(id); l != nil {
			m.leadDraft = forms.LeadDraftFrom(l)
		} else {
			return
		}
		m.formInputs = buildInputs(leadFieldLabels, m.leadValues())
	case EntityTeams:
		if id == 0 {
			m.teamDraft = forms.NewTeamDraft()
		} else if t := m.findTeam(id); t != nil {
			m.teamDraft = forms.TeamDraftFrom(t)
		} else {
			return
		}
		m.formInputs = buildInputs(teamFieldLabels, m.teamValues())
	case EntityAgents:
		a := m.findAgent(id)
		if a == nil {
			return
		}
		m.agentDraft = forms.AgentDraftFrom(a)
		m.formInputs = buildInputs(agentFieldLabels, m.agentValues())
	}

	m.viewMode = ViewEdit
	if len(m.formInputs) > 0 {
		m.formInputs[0].Focus()
	}
}

// closeEditor discards the working draft entirely.
func (m *Model) closeEditor() {
	m.viewMode = ViewList
	m.editID = 0
	m.propertyDraft = nil
	m.leadDraft = nil
	m.teamDraft = nil
	m.agentDraft = nil
	m.formInputs = nil
	m.formErrors = nil
	m.saving = false
}

func (m Model) findProperty(id int64) *models.Property {
	for i, p := range m.properties.All() {
		if p.ID == id {
			return &m.properties.All()[i]
		}
	}
	return nil
}

func (m Model) findLead(id int64) *models.Lead {
	for i, l := range m.leads.All() {
		if l.ID == id {
			return &m.leads.All()[i]
		}
	}
	return nil
}

func (m Model) findTeam(id int64) *models.Team {
	for i, t := range m.teams.All() {
		if t.ID == id {
			return &m.teams.All()[i]
		}
	}
	return nil
}

func (m Model) findAgent(id int64) *models.Agent {
	for i, a := range m.agents.All() {
		if a.ID == id {
			return &m.agents.All()[i]
		}
	}
	return nil
}

func buildInputs(labels []string, values []string) []textinput.Model {
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		in := textinput.New()
		in.Placeholder = label
		in.CharLimit = 200
		in.Width = 50
		if i < len(values) {
			in.SetValue(values[i])
		}
		inputs[i] = in
	}
	return inputs
}

func (m Model) propertyValues() []string {
	d := m.propertyDraft
	return []string{
		d.Reference, d.Title, d.BusinessType, d.PropertyType, d.Typology,
		d.Price, d.UsableArea, d.LandArea,
		d.Location.District, d.Location.Municipality, d.Location.Parish,
		d.Street, d.Condition, d.EnergyCertificate,
		d.Latitude, d.Longitude,
		d.Bedrooms, d.Bathrooms, d.ParkingSpaces,
		d.Status, strings.Join(d.NewFiles, ","),
	}
}

func (m Model) leadValues() []string {
	d := m.leadDraft
	return []string{
		d.Name, d.Email, d.Phone, d.Source, d.Status,
		d.AssignedAgent, d.Notes,
		d.Criteria.BudgetMin, d.Criteria.BudgetMax,
	}
}

func (m Model) teamValues() []string {
	d := m.teamDraft
	return []string{d.Name, d.Description, d.Manager}
}

func (m Model) agentValues() []string {
	d := m.agentDraft
	return []string{
		d.Name, d.Email, d.Phone, d.Bio, d.LicenseNumber,
		d.Website, d.Facebook, d.Instagram, d.LinkedIn,
	}
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeEditor()
		return m, nil
	case "tab", "down":
		m.moveFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, nil
	case "enter":
		if m.saving {
			return m, nil
		}
		return m.submitForm()
	case "ctrl+p":
		if m.entityType == EntityProperties && m.propertyDraft != nil {
			m.propertyDraft.Published = !m.propertyDraft.Published
		}
		return m, nil
	case "ctrl+f":
		if m.entityType == EntityProperties && m.propertyDraft != nil {
			m.propertyDraft.Featured = !m.propertyDraft.Featured
		}
		return m, nil
	case "ctrl+x":
		if m.entityType == EntityProperties && m.propertyDraft != nil {
			if n := len(m.propertyDraft.KeptImages); n > 0 {
				m.propertyDraft.RemoveImage(m.propertyDraft.KeptImages[n-1])
			}
		}
		return m, nil
	case "ctrl+b":
		if m.entityType == EntityLeads && m.leadDraft != nil {
			m.leadDraft.Buyer = !m.leadDraft.Buyer
		}
		return m, nil
	}

	if m.focusIndex >= len(m.formInputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.formInputs[m.focusIndex], cmd = m.formInputs[m.focusIndex].Update(msg)
	m.applyFocusedField()
	return m, cmd
}

func (m *Model) moveFocus(delta int) {
	if len(m.formInputs) == 0 {
		return
	}
	m.formInputs[m.focusIndex].Blur()
	m.focusIndex = (m.focusIndex + delta + len(m.formInputs)) % len(m.formInputs)
	m.formInputs[m.focusIndex].Focus()
}

// applyFocusedField writes the focused input back into the draft.
// District and municipality edits route through the cascade so stale
// downstream selections are dropped immediately.
func (m *Model) applyFocusedField() {
	v := m.formInputs[m.focusIndex].Value()

	switch m.entityType {
	case EntityProperties:
		d := m.propertyDraft
		switch m.focusIndex {
		case propFieldReference:
			d.Reference = v
		case propFieldTitle:
			d.Title = v
		case propFieldBusinessType:
			d.BusinessType = v
		case propFieldPropertyType:
			d.PropertyType = v
		case propFieldTypology:
			d.Typology = v
		case propFieldPrice:
			d.Price = v
		case propFieldUsableArea:
			d.UsableArea = v
		case propFieldLandArea:
			d.LandArea = v
		case propFieldDistrict:
			if v != d.Location.District {
				d.Location.SelectDistrict(v)
				m.formInputs[propFieldMunicipality].SetValue("")
				m.formInputs[propFieldParish].SetValue("")
			}
		case propFieldMunicipality:
			if v != d.Location.Municipality {
				d.Location.SelectMunicipality(v)
				m.formInputs[propFieldParish].SetValue("")
			}
		case propFieldParish:
			d.Location.SelectParish(v)
		case propFieldStreet:
			d.Street = v
		case propFieldCondition:
			d.Condition = v
		case propFieldEnergy:
			d.EnergyCertificate = v
		case propFieldLatitude:
			d.Latitude = v
		case propFieldLongitude:
			d.Longitude = v
		case propFieldBedrooms:
			d.Bedrooms = v
		case propFieldBathrooms:
			d.Bathrooms = v
		case propFieldParking:
			d.ParkingSpaces = v
		case propFieldStatus:
			d.Status = v
		case propFieldNewImages:
			d.NewFiles = splitPaths(v)
		}
	case EntityLeads:
		d := m.leadDraft
		switch m.focusIndex {
		case leadFieldName:
			d.Name = v
		case leadFieldEmail:
			d.Email = v
		case leadFieldPhone:
			d.Phone = v
		case leadFieldSource:
			d.Source = v
		case leadFieldStatus:
			d.Status = v
		case leadFieldAgent:
			d.AssignedAgent = v
		case leadFieldNotes:
			d.Notes = v
		case leadFieldBudgetMin:
			d.Criteria.BudgetMin = v
		case leadFieldBudgetMax:
			d.Criteria.BudgetMax = v
		}
	case EntityTeams:
		d := m.teamDraft
		switch m.focusIndex {
		case 0:
			d.Name = v
		case 1:
			d.Description = v
		case 2:
			d.Manager = v
		}
	case EntityAgents:
		d := m.agentDraft
		switch m.focusIndex {
		case agentFieldName:
			d.Name = v
		case agentFieldEmail:
			d.Email = v
		case agentFieldPhone:
			d.Phone = v
		case agentFieldBio:
			d.Bio = v
		case agentFieldLicense:
			d.LicenseNumber = v
		case agentFieldWebsite:
			d.Website = v
		case agentFieldFacebook:
			d.Facebook = v
		case agentFieldInstagram:
			d.Instagram = v
		case agentFieldLinkedIn:
			d.LinkedIn = v
		}
	}
}

func splitPaths(v string) []string {
	var paths []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// submitForm validates the active draft. Validation failures keep the
// drawer open with the ordered messages rendered; nothing is sent.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	switch m.entityType {
	case EntityProperties:
		sub, errs := m.propertyDraft.Submission()
		if !errs.OK() {
			m.formErrors = errs
			return m, nil
		}
		m.formErrors = nil
		m.saving = true
		return m, m.saveProperty(sub)
	case EntityLeads:
		payload, errs := m.leadDraft.Submission()
		if !errs.OK() {
			m.formErrors = errs
			return m, nil
		}
		m.formErrors = nil
		m.saving = true
		return m, m.saveLead(payload)
	case EntityTeams:
		payload, errs := m.teamDraft.Submission()
		if !errs.OK() {
			m.formErrors = errs
			return m, nil
		}
		m.formErrors = nil
		m.saving = true
		return m, m.saveTeam(payload)
	case EntityAgents:
		payload, errs := m.agentDraft.Submission()
		if !errs.OK() {
			m.formErrors = errs
			return m, nil
		}
		m.formErrors = nil
		m.saving = true
		return m, m.saveAgent(payload)
	}
	return m, nil
}

func (m Model) renderEditView() string {
	var s strings.Builder

	verb := "Editar"
	if m.editID == 0 {
		verb = "Novo"
	}
	s.WriteString(titleStyle.Render(fmt.Sprintf("%s %s", verb, m.entityLabel())))
	s.WriteString("\n\n")

	if len(m.formErrors) > 0 {
		for _, e := range m.formErrors {
			s.WriteString(errorListStyle.Render("• " + e))
			s.WriteString("\n")
		}
		s.WriteString("\n")
	}

	labels := m.formLabels()
	for i, in := range m.formInputs {
		marker := "  "
		if i == m.focusIndex {
			marker = "> "
		}
		s.WriteString(fmt.Sprintf("%s%s: %s\n", marker, labels[i], in.View()))
	}

	s.WriteString("\n")
	s.WriteString(m.renderEditExtras())

	if m.saving {
		s.WriteString(helpStyle.Render("A guardar..."))
	} else {
		s.WriteString(helpStyle.Render("Enter: Guardar • Tab: Próximo campo • Esc: Cancelar"))
	}

	return s.String()
}

func (m Model) formLabels() []string {
	switch m.entityType {
	case EntityProperties:
		return propertyFieldLabels
	case EntityLeads:
		return leadFieldLabels
	case EntityTeams:
		return teamFieldLabels
	case EntityAgents:
		return agentFieldLabels
	}
	return nil
}

func (m Model) entityLabel() string {
	switch m.entityType {
	case EntityProperties:
		return "imóvel"
	case EntityLeads:
		return "lead"
	case EntityTeams:
		return "equipa"
	case EntityAgents:
		return "agente"
	}
	return ""
}

func (m Model) renderEditExtras() string {
	var s strings.Builder
	switch m.entityType {
	case EntityProperties:
		if d := m.propertyDraft; d != nil {
			s.WriteString(fmt.Sprintf("Imagens mantidas: %d  Publicado: %v  Destaque: %v\n", len(d.KeptImages), d.Published, d.Featured))
			s.WriteString(helpStyle.Render("Ctrl+P: Publicado • Ctrl+F: Destaque • Ctrl+X: Remover última imagem"))
			s.WriteString("\n\n")
		}
	case EntityLeads:
		if d := m.leadDraft; d != nil {
			s.WriteString(fmt.Sprintf("Lead comprador: %v\n", d.Buyer))
			s.WriteString(helpStyle.Render("Ctrl+B: Alternar lead comprador"))
			s.WriteString("\n\n")
		}
	}
	return s.String()
}
