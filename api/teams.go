// ABOUTME: Team collection endpoints
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/imocrm/imocrm/forms"
	"github.com/imocrm/imocrm/models"
)

func (c *Client) ListTeams(ctx context.Context, opts ListOptions) ([]models.Team, error) {
	var teams []models.Team
	if err := c.do(ctx, http.MethodGet, "/teams/", opts.query(), nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (c *Client) GetTeam(ctx context.Context, id int64) (*models.Team, error) {
	var team models.Team
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/teams/%d", id), nil, nil, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (c *Client) CreateTeam(ctx context.Context, payload *forms.TeamPayload) (*models.Team, error) {
	var created models.Team
	if err := c.do(ctx, http.MethodPost, "/teams/", nil, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateTeam(ctx context.Context, id int64, payload *forms.TeamPayload) (*models.Team, error) {
	var updated models.Team
	path := fmt.Sprintf("/teams/%d", id)
	if err := c.do(ctx, http.MethodPut, path, nil, payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteTeam(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/teams/%d", id), nil, nil, nil)
}
