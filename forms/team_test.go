package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imocrm/imocrm/models"
)

func TestTeamSubmissionRequiresName(t *testing.T) {
	d := NewTeamDraft()
	payload, errs := d.Submission()
	assert.Nil(t, payload)
	assert.Contains(t, errs, "Nome é obrigatório")
}

func TestTeamSubmissionWithManager(t *testing.T) {
	d := NewTeamDraft()
	d.Name = "Equipa Norte"
	d.Description = "Grande Porto"
	d.Manager = "12"

	payload, errs := d.Submission()
	require.True(t, errs.OK())
	require.NotNil(t, payload.ManagerID)
	assert.Equal(t, int64(12), *payload.ManagerID)
}

func TestTeamDraftFrom(t *testing.T) {
	managerID := int64(3)
	team := &models.Team{Name: "Equipa Sul", Description: "Algarve", ManagerID: &managerID}

	d := TeamDraftFrom(team)
	assert.Equal(t, "Equipa Sul", d.Name)
	assert.Equal(t, "3", d.Manager)

	payload, errs := d.Submission()
	require.True(t, errs.OK())
	assert.Equal(t, "Algarve", payload.Description)
}
