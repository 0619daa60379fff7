// ABOUTME: Async bubbletea commands for loading, saving and deleting
// ABOUTME: Validation runs before any command fires; reload follows success
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imocrm/imocrm/api"
	"github.com/imocrm/imocrm/forms"
	"github.com/imocrm/imocrm/models"
)

const requestTimeout = 30 * time.Second

// listLoadedMsg carries one entity collection fetch result.
type listLoadedMsg struct {
	entity     EntityType
	properties []models.Property
	leads      []models.Lead
	teams      []models.Team
	agents     []models.Agent
	err        error
}

// savedMsg reports a create or update outcome.
type savedMsg struct {
	entity EntityType
	create bool
	err    error
}

// deletedMsg reports a delete outcome.
type deletedMsg struct {
	entity EntityType
	err    error
}

type toastTickMsg struct{}

func toastTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}

// loadCurrent fetches the collection for the active tab.
func (m Model) loadCurrent() tea.Cmd {
	entity := m.entityType
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		msg := listLoadedMsg{entity: entity}
		switch entity {
		case EntityProperties:
			msg.properties, msg.err = client.ListProperties(ctx, listOptions())
		case EntityLeads:
			msg.leads, msg.err = client.ListLeads(ctx, listOptions())
		case EntityTeams:
			msg.teams, msg.err = client.ListTeams(ctx, listOptions())
		case EntityAgents:
			msg.agents, msg.err = client.ListAgents(ctx, listOptions())
		}
		return msg
	}
}

func listOptions() api.ListOptions {
	return api.ListOptions{Limit: 100}
}

// saveProperty persists the record and pushes any newly attached files
// to the per-property upload endpoint. Updates upload first so the
// returned URLs land in the submitted gallery; creates need the new id
// before the upload can happen.
func (m Model) saveProperty(sub *forms.PropertySubmission) tea.Cmd {
	client := m.client
	id := m.editID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		payload := sub.Payload

		if id == 0 {
			created, err := client.CreateProperty(ctx, payload)
			if err == nil && len(sub.Files) > 0 {
				err = uploadFiles(ctx, client, created.ID, sub.Files)
			}
			return savedMsg{entity: EntityProperties, create: true, err: err}
		}

		if len(sub.Files) > 0 {
			token, err := client.UploadToken(ctx)
			if err != nil {
				return savedMsg{entity: EntityProperties, err: err}
			}
			result, err := client.UploadImages(ctx, id, token, sub.Files)
			if err != nil {
				return savedMsg{entity: EntityProperties, err: err}
			}
			payload.Images = append(payload.Images, result.URLs...)
		}

		_, err := client.UpdateProperty(ctx, id, payload)
		return savedMsg{entity: EntityProperties, err: err}
	}
}

func uploadFiles(ctx context.Context, client *api.Client, propertyID int64, files []string) error {
	token, err := client.UploadToken(ctx)
	if err != nil {
		return err
	}
	_, err = client.UploadImages(ctx, propertyID, token, files)
	return err
}

func (m Model) saveLead(payload *forms.LeadPayload) tea.Cmd {
	client := m.client
	id := m.editID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var err error
		if id == 0 {
			_, err = client.CreateLead(ctx, payload)
		} else {
			_, err = client.UpdateLead(ctx, id, payload)
		}
		return savedMsg{entity: EntityLeads, create: id == 0, err: err}
	}
}

func (m Model) saveTeam(payload *forms.TeamPayload) tea.Cmd {
	client := m.client
	id := m.editID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var err error
		if id == 0 {
			_, err = client.CreateTeam(ctx, payload)
		} else {
			_, err = client.UpdateTeam(ctx, id, payload)
		}
		return savedMsg{entity: EntityTeams, create: id == 0, err: err}
	}
}

func (m Model) saveAgent(payload *forms.AgentPayload) tea.Cmd {
	client := m.client
	id := m.editID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		_, err := client.UpdateAgent(ctx, id, payload)
		return savedMsg{entity: EntityAgents, err: err}
	}
}

func (m Model) deleteEntity(entity EntityType, id int64) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var err error
		switch entity {
		case EntityProperties:
			err = client.DeleteProperty(ctx, id)
		case EntityLeads:
			err = client.DeleteLead(ctx, id)
		case EntityTeams:
			err = client.DeleteTeam(ctx, id)
		}
		return deletedMsg{entity: entity, err: err}
	}
}
