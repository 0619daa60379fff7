package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imocrm/imocrm/models"
)

func TestLeadSubmissionRequiresValidEmail(t *testing.T) {
	d := NewLeadDraft()
	d.Name = "Carlos Mendes"

	for _, email := range []string{"", "carlos", "carlos@", "carlos@mail", "c @mail.pt"} {
		d.Email = email
		payload, errs := d.Submission()
		assert.Nil(t, payload, "email %q must block submission", email)
		assert.Contains(t, errs, "Email inválido")
	}

	d.Email = "carlos@mail.pt"
	payload, errs := d.Submission()
	require.True(t, errs.OK(), "unexpected errors: %v", errs)
	assert.Equal(t, models.LeadNew, payload.Status, "create mode defaults to new")
}

func TestLeadSubmissionRequiresName(t *testing.T) {
	d := NewLeadDraft()
	d.Email = "a@b.pt"

	payload, errs := d.Submission()
	assert.Nil(t, payload)
	assert.Contains(t, errs, "Nome é obrigatório")
}

func TestLeadEditPreservesUntouchedFields(t *testing.T) {
	agentID := int64(4)
	original := &models.Lead{
		ID:              7,
		Name:            "Rita Lopes",
		Email:           "rita@sapo.pt",
		Phone:           "911111111",
		Source:          models.SourcePortal,
		Status:          models.LeadQualified,
		AssignedAgentID: &agentID,
	}

	d := LeadDraftFrom(original)
	d.Phone = "933444555"

	payload, errs := d.Submission()
	require.True(t, errs.OK(), "unexpected errors: %v", errs)

	assert.Equal(t, "Rita Lopes", payload.Name)
	assert.Equal(t, "rita@sapo.pt", payload.Email)
	assert.Equal(t, models.LeadQualified, payload.Status)
	assert.Equal(t, "933444555", payload.Phone)
	require.NotNil(t, payload.AssignedAgentID)
	assert.Equal(t, int64(4), *payload.AssignedAgentID)
}

func TestBuyerLeadCarriesCriteria(t *testing.T) {
	d := NewLeadDraft()
	d.Name = "Sofia"
	d.Email = "sofia@mail.pt"
	d.Buyer = true
	d.Criteria.PropertyTypes = []string{"apartment"}
	d.Criteria.Districts = []string{"Lisboa"}
	d.Criteria.BudgetMax = "350 000"
	d.Criteria.ToggleGarage()

	payload, errs := d.Submission()
	require.True(t, errs.OK(), "unexpected errors: %v", errs)
	require.NotNil(t, payload.Criteria)

	assert.Equal(t, []string{"apartment"}, payload.Criteria.PropertyTypes)
	require.NotNil(t, payload.Criteria.BudgetMax)
	assert.InDelta(t, 350000, *payload.Criteria.BudgetMax, 1e-9)
	assert.Equal(t, models.Required, payload.Criteria.Garage)
	assert.Equal(t, models.Indifferent, payload.Criteria.Elevator)
}

func TestNonBuyerLeadOmitsCriteria(t *testing.T) {
	d := NewLeadDraft()
	d.Name = "Sofia"
	d.Email = "sofia@mail.pt"

	payload, errs := d.Submission()
	require.True(t, errs.OK())
	assert.Nil(t, payload.Criteria)
}

func TestCriteriaToggleRoundTrip(t *testing.T) {
	var c CriteriaDraft
	c.TogglePool()
	c.TogglePool()
	assert.Equal(t, models.Indifferent, c.Pool, "double toggle must land on indifferent, not excluded")
}
