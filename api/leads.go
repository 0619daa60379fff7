// ABOUTME: Lead collection endpoints
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/imocrm/imocrm/forms"
	"github.com/imocrm/imocrm/models"
)

func (c *Client) ListLeads(ctx context.Context, opts ListOptions) ([]models.Lead, error) {
	var leads []models.Lead
	if err := c.do(ctx, http.MethodGet, "/leads/", opts.query(), nil, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

func (c *Client) GetLead(ctx context.Context, id int64) (*models.Lead, error) {
	var lead models.Lead
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/leads/%d", id), nil, nil, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

func (c *Client) CreateLead(ctx context.Context, payload *forms.LeadPayload) (*models.Lead, error) {
	var created models.Lead
	if err := c.do(ctx, http.MethodPost, "/leads/", nil, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateLead(ctx context.Context, id int64, payload *forms.LeadPayload) (*models.Lead, error) {
	var updated models.Lead
	path := fmt.Sprintf("/leads/%d", id)
	if err := c.do(ctx, http.MethodPut, path, nil, payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteLead(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/leads/%d", id), nil, nil, nil)
}
