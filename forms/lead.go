// ABOUTME: Lead form draft, validation and payload shaping
// ABOUTME: Buyer leads carry the multi-select criteria with tri-state amenities
package forms

import (
	"strconv"

	"github.com/imocrm/imocrm/models"
)

type LeadDraft struct {
	Name          string
	Email         string
	Phone         string
	Source        string
	Status        string
	AssignedAgent string
	Notes         string

	// Buyer marks a buyer lead; Criteria is only submitted when set.
	Buyer    bool
	Criteria CriteriaDraft
}

// CriteriaDraft mirrors models.BuyerCriteria with string budgets so
// the inputs tolerate partial typing.
type CriteriaDraft struct {
	PropertyTypes  []string
	Typologies     []string
	Districts      []string
	Municipalities []string
	Parishes       []string
	BudgetMin      string
	BudgetMax      string

	Garage   models.TriState
	Elevator models.TriState
	Balcony  models.TriState
	Garden   models.TriState
	Pool     models.TriState
}

// ToggleGarage and friends cycle the amenity flag through
// indifferent -> required -> indifferent.
func (c *CriteriaDraft) ToggleGarage()   { c.Garage = c.Garage.Toggle() }
func (c *CriteriaDraft) ToggleElevator() { c.Elevator = c.Elevator.Toggle() }
func (c *CriteriaDraft) ToggleBalcony()  { c.Balcony = c.Balcony.Toggle() }
func (c *CriteriaDraft) ToggleGarden()   { c.Garden = c.Garden.Toggle() }
func (c *CriteriaDraft) TogglePool()     { c.Pool = c.Pool.Toggle() }

// NewLeadDraft seeds an empty create-mode draft.
func NewLeadDraft() *LeadDraft {
	return &LeadDraft{Status: models.LeadNew}
}

// LeadDraftFrom seeds an edit-mode draft from a fetched record, so an
// untouched field submits with its original value.
func LeadDraftFrom(l *models.Lead) *LeadDraft {
	d := &LeadDraft{
		Name:   l.Name,
		Email:  l.Email,
		Phone:  l.Phone,
		Source: l.Source,
		Status: l.Status,
		Notes:  l.Notes,
	}
	if l.AssignedAgentID != nil {
		d.AssignedAgent = strconv.FormatInt(*l.AssignedAgentID, 10)
	}
	if l.Criteria != nil {
		d.Buyer = true
		c := l.Criteria
		d.Criteria = CriteriaDraft{
			PropertyTypes:  append([]string(nil), c.PropertyTypes...),
			Typologies:     append([]string(nil), c.Typologies...),
			Districts:      append([]string(nil), c.Districts...),
			Municipalities: append([]string(nil), c.Municipalities...),
			Parishes:       append([]string(nil), c.Parishes...),
			Garage:         c.Garage,
			Elevator:       c.Elevator,
			Balcony:        c.Balcony,
			Garden:         c.Garden,
			Pool:           c.Pool,
		}
		if c.BudgetMin != nil {
			d.Criteria.BudgetMin = formatDecimal(*c.BudgetMin)
		}
		if c.BudgetMax != nil {
			d.Criteria.BudgetMax = formatDecimal(*c.BudgetMax)
		}
	}
	return d
}

func (d *LeadDraft) Validate() Errors {
	var errs Errors
	errs.Require(d.Name, "Nome é obrigatório")
	errs.RequireEmail(d.Email, "Email inválido")
	return errs
}

// LeadPayload is the request body for lead create and update calls.
type LeadPayload struct {
	Name            string                `json:"name"`
	Email           string                `json:"email"`
	Phone           string                `json:"phone,omitempty"`
	Source          string                `json:"source,omitempty"`
	Status          string                `json:"status"`
	AssignedAgentID *int64                `json:"assigned_agent_id,omitempty"`
	Notes           string                `json:"notes,omitempty"`
	Criteria        *models.BuyerCriteria `json:"criteria,omitempty"`
}

// Submission validates the draft and assembles the payload when clean.
func (d *LeadDraft) Submission() (*LeadPayload, Errors) {
	if errs := d.Validate(); !errs.OK() {
		return nil, errs
	}

	payload := &LeadPayload{
		Name:            d.Name,
		Email:           d.Email,
		Phone:           d.Phone,
		Source:          d.Source,
		Status:          d.Status,
		AssignedAgentID: ParseID(d.AssignedAgent),
		Notes:           d.Notes,
	}
	if payload.Status == "" {
		payload.Status = models.LeadNew
	}

	if d.Buyer {
		c := d.Criteria
		payload.Criteria = &models.BuyerCriteria{
			PropertyTypes:  append([]string(nil), c.PropertyTypes...),
			Typologies:     append([]string(nil), c.Typologies...),
			Districts:      append([]string(nil), c.Districts...),
			Municipalities: append([]string(nil), c.Municipalities...),
			Parishes:       append([]string(nil), c.Parishes...),
			BudgetMin:      ParseDecimal(c.BudgetMin),
			BudgetMax:      ParseDecimal(c.BudgetMax),
			Garage:         c.Garage,
			Elevator:       c.Elevator,
			Balcony:        c.Balcony,
			Garden:         c.Garden,
			Pool:           c.Pool,
		}
	}

	return payload, nil
}
