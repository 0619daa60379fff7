// ABOUTME: Read-only detail view for the selected record
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.viewMode = ViewList
		m.detailID = 0
	case "e":
		if m.canEdit() {
			id := m.detailID
			m.openEditor(id)
		}
	}
	return m, nil
}

func (m Model) renderDetailView() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Detalhe"))
	s.WriteString("\n\n")

	body := m.renderDetailBody()
	if body == "" {
		// The record vanished between fetch and open, e.g. deleted by
		// another session.
		s.WriteString(notFoundStyle.Render("Registo não encontrado"))
		s.WriteString("\n")
	} else {
		s.WriteString(body)
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("e: Editar • Esc: Voltar"))
	return s.String()
}

func (m Model) renderDetailBody() string {
	var s strings.Builder
	switch m.entityType {
	case EntityProperties:
		p := m.findProperty(m.detailID)
		if p == nil {
			return ""
		}
		s.WriteString(fmt.Sprintf("%s  %s\n\n", p.Reference, p.Title))
		s.WriteString(detailLine("Negócio", p.BusinessType))
		s.WriteString(detailLine("Tipo", p.PropertyType))
		s.WriteString(detailLine("Tipologia", p.Typology))
		if p.Price != nil {
			s.WriteString(detailLine("Preço", fmt.Sprintf("%.0f €", *p.Price)))
		}
		s.WriteString(detailLine("Localização", p.DisplayAddress()))
		s.WriteString(detailLine("Condição", p.Condition))
		s.WriteString(detailLine("Certificado", p.EnergyCertificate))
		s.WriteString(detailLine("Quartos", strconv.Itoa(p.Bedrooms)))
		s.WriteString(detailLine("Casas de banho", strconv.Itoa(p.Bathrooms)))
		s.WriteString(detailLine("Estado", p.Status))
		s.WriteString(detailLine("Publicado", strconv.FormatBool(p.Published)))
		s.WriteString(detailLine("Imagens", strconv.Itoa(len(p.Images))))
		if p.VideoURL != "" {
			s.WriteString(detailLine("Vídeo", p.VideoURL))
		}
	case EntityLeads:
		l := m.findLead(m.detailID)
		if l == nil {
			return ""
		}
		s.WriteString(fmt.Sprintf("%s\n\n", l.Name))
		s.WriteString(detailLine("Email", l.Email))
		s.WriteString(detailLine("Telefone", l.Phone))
		s.WriteString(detailLine("Origem", l.Source))
		s.WriteString(detailLine("Estado", l.Status))
		if l.AssignedAgentID != nil {
			s.WriteString(detailLine("Agente", strconv.FormatInt(*l.AssignedAgentID, 10)))
		}
		s.WriteString(detailLine("Notas", l.Notes))
		if c := l.Criteria; c != nil {
			s.WriteString("\nCritérios de compra\n")
			s.WriteString(detailLine("  Distritos", strings.Join(c.Districts, ", ")))
			s.WriteString(detailLine("  Tipos", strings.Join(c.PropertyTypes, ", ")))
			if c.BudgetMin != nil || c.BudgetMax != nil {
				s.WriteString(detailLine("  Orçamento", budgetRange(c.BudgetMin, c.BudgetMax)))
			}
		}
	case EntityTeams:
		t := m.findTeam(m.detailID)
		if t == nil {
			return ""
		}
		s.WriteString(fmt.Sprintf("%s\n\n", t.Name))
		s.WriteString(detailLine("Descrição", t.Description))
		if t.ManagerID != nil {
			s.WriteString(detailLine("Responsável", strconv.FormatInt(*t.ManagerID, 10)))
		}
	case EntityAgents:
		a := m.findAgent(m.detailID)
		if a == nil {
			return ""
		}
		s.WriteString(fmt.Sprintf("%s\n\n", a.Name))
		s.WriteString(detailLine("Email", a.Email))
		s.WriteString(detailLine("Telefone", a.Phone))
		s.WriteString(detailLine("Função", a.Role))
		s.WriteString(detailLine("Cédula", a.LicenseNumber))
		s.WriteString(detailLine("Bio", a.Bio))
	}
	return s.String()
}

func detailLine(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("%s: %s\n", label, value)
}

func budgetRange(min, max *float64) string {
	low, high := "?", "?"
	if min != nil {
		low = fmt.Sprintf("%.0f", *min)
	}
	if max != nil {
		high = fmt.Sprintf("%.0f", *max)
	}
	return low + " - " + high
}
