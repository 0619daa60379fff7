// ABOUTME: Team form draft, validation and payload shaping
package forms

import (
	"strconv"

	"github.com/imocrm/imocrm/models"
)

type TeamDraft struct {
	Name        string
	Description string
	Manager     string
}

func NewTeamDraft() *TeamDraft {
	return &TeamDraft{}
}

func TeamDraftFrom(t *models.Team) *TeamDraft {
	d := &TeamDraft{
		Name:        t.Name,
		Description: t.Description,
	}
	if t.ManagerID != nil {
		d.Manager = strconv.FormatInt(*t.ManagerID, 10)
	}
	return d
}

func (d *TeamDraft) Validate() Errors {
	var errs Errors
	errs.Require(d.Name, "Nome é obrigatório")
	return errs
}

type TeamPayload struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ManagerID   *int64 `json:"manager_id,omitempty"`
}

func (d *TeamDraft) Submission() (*TeamPayload, Errors) {
	if errs := d.Validate(); !errs.OK() {
		return nil, errs
	}
	return &TeamPayload{
		Name:        d.Name,
		Description: d.Description,
		ManagerID:   ParseID(d.Manager),
	}, nil
}
