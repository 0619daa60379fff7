package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imocrm/imocrm/models"
	"github.com/imocrm/imocrm/toast"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testProperties() []models.Property {
	price := 250000.0
	return []models.Property{
		{ID: 1, Reference: "REF-001", Title: "T2 em Alvalade", District: "Lisboa", Municipality: "Lisboa", Price: &price, Status: models.PropertyAvailable, Images: []string{"a.jpg"}},
		{ID: 2, Reference: "REF-002", Title: "Moradia em Cascais", District: "Lisboa", Municipality: "Cascais", Price: &price, Status: models.PropertySold, Images: []string{"b.jpg"}},
	}
}

func testLeads() []models.Lead {
	return []models.Lead{
		{ID: 7, Name: "Maria Santos", Email: "maria@example.pt", Phone: "912345678", Status: models.LeadNew},
		{ID: 8, Name: "João Pereira", Email: "joao@example.pt", Status: models.LeadContacted},
	}
}

func adminModel() Model {
	return NewModel(nil, models.PermissionsFor("admin"))
}

func loaded(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(Model)
	require.True(t, ok)
	return model
}

func TestListLoadedPopulatesView(t *testing.T) {
	m := loaded(t, adminModel(), listLoadedMsg{entity: EntityProperties, properties: testProperties()})

	assert.Equal(t, 2, m.properties.Len())
	assert.Contains(t, m.View(), "REF-001")
	assert.Contains(t, m.View(), "Moradia em Cascais")
}

func TestListLoadErrorClearsAndToasts(t *testing.T) {
	m := loaded(t, adminModel(), listLoadedMsg{entity: EntityProperties, properties: testProperties()})
	m = loaded(t, m, listLoadedMsg{entity: EntityProperties, err: errors.New("ligação recusada")})

	assert.Zero(t, m.properties.Len())
	require.Equal(t, 1, m.toasts.Len())
	assert.Equal(t, toast.Error, m.toasts.Active()[0].Kind)
}

func TestTabSwitchResetsSelectionAndReloads(t *testing.T) {
	m := loaded(t, adminModel(), listLoadedMsg{entity: EntityProperties, properties: testProperties()})
	m.selectedRow = 1

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)

	assert.Equal(t, EntityLeads, m.entityType)
	assert.Zero(t, m.selectedRow)
	assert.NotNil(t, cmd, "switching tabs triggers a reload")
}

func TestOpenCreateDrawer(t *testing.T) {
	m := loaded(t, adminModel(), keyRune('n'))

	assert.Equal(t, ViewEdit, m.viewMode)
	assert.Zero(t, m.editID)
	require.NotNil(t, m.propertyDraft)
	assert.Equal(t, models.PropertyAvailable, m.propertyDraft.Status)
}

func TestOpenEditSeedsDraftFromRecord(t *testing.T) {
	m := adminModel()
	m.entityType = EntityLeads
	m = loaded(t, m, listLoadedMsg{entity: EntityLeads, leads: testLeads()})
	m.selectedRow = 1

	m = loaded(t, m, keyRune('e'))

	assert.Equal(t, ViewEdit, m.viewMode)
	assert.Equal(t, int64(8), m.editID)
	require.NotNil(t, m.leadDraft)
	assert.Equal(t, "João Pereira", m.leadDraft.Name)
	assert.Equal(t, models.LeadContacted, m.leadDraft.Status)
}

func TestDetailViewShowsRecord(t *testing.T) {
	m := loaded(t, adminModel(), listLoadedMsg{entity: EntityProperties, properties: testProperties()})

	m = loaded(t, m, keyRune('v'))

	assert.Equal(t, ViewDetail, m.viewMode)
	view := m.View()
	assert.Contains(t, view, "REF-001")
	assert.Contains(t, view, "T2 em Alvalade")

	m = loaded(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewList, m.viewMode)
}

func TestDetailViewMissingRecordInlineMessage(t *testing.T) {
	m := loaded(t, adminModel(), listLoadedMsg{entity: EntityProperties, properties: testProperties()})
	m = loaded(t, m, keyRune('v'))

	// Record removed by another session before the next reload.
	m = loaded(t, m, listLoadedMsg{entity: EntityProperties, properties: testProperties()[1:]})

	assert.Contains(t, m.View(), "Registo não encontrado")
}

func TestSubmitInvalidDraftStaysOpen(t *testing.T) {
	m := loaded(t, adminModel(), keyRune('n'))

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	assert.Nil(t, cmd, "nothing is sent while the draft is invalid")
	assert.Equal(t, ViewEdit, m.viewMode)
	require.NotEmpty(t, m.formErrors)
	assert.Equal(t, "Referência é obrigatória", m.formErrors[0])
	assert.Contains(t, m.View(), "Referência é obrigatória")
}

func TestEscDiscardsDraft(t *testing.T) {
	m := loaded(t, adminModel(), keyRune('n'))
	m.propertyDraft.Title = "meio escrito"

	m = loaded(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, ViewList, m.viewMode)
	assert.Nil(t, m.propertyDraft)
}

func TestSavedSuccessClosesDrawerAndReloads(t *testing.T) {
	m := loaded(t, adminModel(), keyRune('n'))
	m.saving = true

	updated, cmd := m.Update(savedMsg{entity: EntityProperties, create: true})
	m = updated.(Model)

	assert.Equal(t, ViewList, m.viewMode)
	assert.NotNil(t, cmd, "a successful save refetches the list")
	require.Equal(t, 1, m.toasts.Len())
	assert.Equal(t, toast.Success, m.toasts.Active()[0].Kind)
	assert.Equal(t, "Registo criado", m.toasts.Active()[0].Message)
}

func TestSavedFailureKeepsDrawerAndDraft(t *testing.T) {
	m := loaded(t, adminModel(), keyRune('n'))
	m.propertyDraft.Title = "Apartamento"
	m.saving = true

	updated, cmd := m.Update(savedMsg{entity: EntityProperties, create: true, err: errors.New("conflito")})
	m = updated.(Model)

	assert.Nil(t, cmd)
	assert.Equal(t, ViewEdit, m.viewMode)
	assert.False(t, m.saving, "a new submit attempt is allowed")
	require.NotNil(t, m.propertyDraft)
	assert.Equal(t, "Apartamento", m.propertyDraft.Title, "draft survives the failure")
	require.Equal(t, 1, m.toasts.Len())
	assert.Equal(t, toast.Error, m.toasts.Active()[0].Kind)
}

func TestEnterWhileSavingIsIgnored(t *testing.T) {
	m := loaded(t, adminModel(), keyRune('n'))
	m.saving = true

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestDeleteConfirmFlow(t *testing.T) {
	m := loaded(t, adminModel(), listLoadedMsg{entity: EntityProperties, properties: testProperties()})

	m = loaded(t, m, keyRune('d'))
	assert.Equal(t, ViewConfirmDelete, m.viewMode)
	assert.Equal(t, int64(1), m.deleteID)
	assert.Contains(t, m.View(), "REF-001")

	updated, cmd := m.Update(keyRune('s'))
	m = updated.(Model)
	assert.NotNil(t, cmd, "confirming dispatches the delete request")
}

func TestDeleteCancelKeepsRecord(t *testing.T) {
	m := loaded(t, adminModel(), listLoadedMsg{entity: EntityProperties, properties: testProperties()})
	m = loaded(t, m, keyRune('d'))

	m = loaded(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, ViewList, m.viewMode)
	assert.Zero(t, m.deleteID)
	assert.Equal(t, 2, m.properties.Len())
}

func TestDeleteFailureLeavesListUntouched(t *testing.T) {
	m := loaded(t, adminModel(), listLoadedMsg{entity: EntityProperties, properties: testProperties()})
	m = loaded(t, m, keyRune('d'))

	updated, cmd := m.Update(deletedMsg{entity: EntityProperties, err: errors.New("em utilização")})
	m = updated.(Model)

	assert.Nil(t, cmd, "a failed delete is not retried")
	assert.Equal(t, ViewList, m.viewMode)
	assert.Equal(t, 2, m.properties.Len(), "rendered list keeps the record")
	require.Equal(t, 1, m.toasts.Len(), "exactly one error toast")
	assert.Equal(t, toast.Error, m.toasts.Active()[0].Kind)
}

func TestAgentRoleCannotDelete(t *testing.T) {
	m := NewModel(nil, models.PermissionsFor("agent"))
	m = loaded(t, m, listLoadedMsg{entity: EntityProperties, properties: testProperties()})

	m = loaded(t, m, keyRune('d'))

	assert.Equal(t, ViewList, m.viewMode, "delete is gated off for agents")
}

func TestSearchModeFiltersAsTyped(t *testing.T) {
	m := loaded(t, adminModel(), listLoadedMsg{entity: EntityProperties, properties: testProperties()})

	m = loaded(t, m, keyRune('/'))
	assert.True(t, m.searching)

	m = loaded(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("cascais")})
	assert.Equal(t, 1, m.properties.Len())

	m = loaded(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.searching)
	assert.Equal(t, 1, m.properties.Len(), "filter survives leaving search mode")
	view := m.View()
	assert.Contains(t, view, "REF-002")
	assert.NotContains(t, view, "REF-001")
}

func TestStatusCycleFiltersProperties(t *testing.T) {
	m := loaded(t, adminModel(), listLoadedMsg{entity: EntityProperties, properties: testProperties()})

	m = loaded(t, m, keyRune('f'))

	assert.Equal(t, models.PropertyAvailable, m.currentStatus())
	assert.Equal(t, 1, m.properties.Len())
}

func TestDistrictEditClearsDownstreamInputs(t *testing.T) {
	m := loaded(t, adminModel(), listLoadedMsg{entity: EntityProperties, properties: testProperties()})
	m = loaded(t, m, keyRune('e'))
	require.NotNil(t, m.propertyDraft)
	assert.Equal(t, "Lisboa", m.propertyDraft.Location.Municipality)

	m.formInputs[m.focusIndex].Blur()
	m.focusIndex = propFieldDistrict
	m.formInputs[propFieldDistrict].Focus()

	m = loaded(t, m, keyRune('X'))

	assert.Empty(t, m.propertyDraft.Location.Municipality)
	assert.Empty(t, m.propertyDraft.Location.Parish)
	assert.Empty(t, m.formInputs[propFieldMunicipality].Value())
}

func TestToastTickExpiresAndReschedules(t *testing.T) {
	m := adminModel()
	m.toasts.Push("olá", toast.Info)

	_, cmd := m.Update(toastTickMsg{})
	assert.NotNil(t, cmd, "the tick loop keeps running")
	assert.Equal(t, 1, m.toasts.Len(), "fresh toast survives the tick")
}
