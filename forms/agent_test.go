package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imocrm/imocrm/models"
)

func TestAgentProfileRequiresContactFields(t *testing.T) {
	d := &AgentDraft{Bio: "Consultor imobiliário"}

	payload, errs := d.Submission()
	assert.Nil(t, payload)
	assert.Contains(t, errs, "Nome é obrigatório")
	assert.Contains(t, errs, "Email inválido")
	assert.Contains(t, errs, "Telefone é obrigatório")
}

func TestAgentProfileSubmission(t *testing.T) {
	agent := &models.Agent{
		Name:  "Pedro Silva",
		Email: "pedro@imocrm.pt",
		Phone: "912000000",
		Bio:   "15 anos de mercado",
	}

	d := AgentDraftFrom(agent)
	d.LicenseNumber = "AMI 12345"

	payload, errs := d.Submission()
	require.True(t, errs.OK(), "unexpected errors: %v", errs)
	assert.Equal(t, "Pedro Silva", payload.Name)
	assert.Equal(t, "AMI 12345", payload.LicenseNumber)
	assert.Equal(t, "15 anos de mercado", payload.Bio)
}
