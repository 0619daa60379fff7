// ABOUTME: Agent collection and profile endpoints
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/imocrm/imocrm/forms"
	"github.com/imocrm/imocrm/models"
)

func (c *Client) ListAgents(ctx context.Context, opts ListOptions) ([]models.Agent, error) {
	var agents []models.Agent
	if err := c.do(ctx, http.MethodGet, "/agents/", opts.query(), nil, &agents); err != nil {
		return nil, err
	}
	return agents, nil
}

// GetAgent fetches one agent profile. A 404 maps onto ErrNotFound so
// the caller can render the inline not-found message.
func (c *Client) GetAgent(ctx context.Context, id int64) (*models.Agent, error) {
	var agent models.Agent
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/agents/%d", id), nil, nil, &agent); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &agent, nil
}

func (c *Client) UpdateAgent(ctx context.Context, id int64, payload *forms.AgentPayload) (*models.Agent, error) {
	var updated models.Agent
	path := fmt.Sprintf("/agents/%d", id)
	if err := c.do(ctx, http.MethodPut, path, nil, payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
