// ABOUTME: Agent profile form draft, validation and payload shaping
package forms

import "github.com/imocrm/imocrm/models"

type AgentDraft struct {
	Name          string
	Email         string
	Phone         string
	Bio           string
	LicenseNumber string
	Website       string
	Facebook      string
	Instagram     string
	LinkedIn      string
}

func AgentDraftFrom(a *models.Agent) *AgentDraft {
	return &AgentDraft{
		Name:          a.Name,
		Email:         a.Email,
		Phone:         a.Phone,
		Bio:           a.Bio,
		LicenseNumber: a.LicenseNumber,
		Website:       a.Website,
		Facebook:      a.Facebook,
		Instagram:     a.Instagram,
		LinkedIn:      a.LinkedIn,
	}
}

// Validate checks only the three contact fields; everything else on
// the public profile is free-form.
func (d *AgentDraft) Validate() Errors {
	var errs Errors
	errs.Require(d.Name, "Nome é obrigatório")
	errs.RequireEmail(d.Email, "Email inválido")
	errs.Require(d.Phone, "Telefone é obrigatório")
	return errs
}

type AgentPayload struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Bio           string `json:"bio,omitempty"`
	LicenseNumber string `json:"license_number,omitempty"`
	Website       string `json:"website,omitempty"`
	Facebook      string `json:"facebook,omitempty"`
	Instagram     string `json:"instagram,omitempty"`
	LinkedIn      string `json:"linkedin,omitempty"`
}

func (d *AgentDraft) Submission() (*AgentPayload, Errors) {
	if errs := d.Validate(); !errs.OK() {
		return nil, errs
	}
	return &AgentPayload{
		Name:          d.Name,
		Email:         d.Email,
		Phone:         d.Phone,
		Bio:           d.Bio,
		LicenseNumber: d.LicenseNumber,
		Website:       d.Website,
		Facebook:      d.Facebook,
		Instagram:     d.Instagram,
		LinkedIn:      d.LinkedIn,
	}, nil
}
