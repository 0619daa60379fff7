// ABOUTME: Property collection endpoints
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/imocrm/imocrm/forms"
	"github.com/imocrm/imocrm/models"
)

func (c *Client) ListProperties(ctx context.Context, opts ListOptions) ([]models.Property, error) {
	var properties []models.Property
	if err := c.do(ctx, http.MethodGet, "/properties/", opts.query(), nil, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// GetProperty fetches one record. A 404 maps onto ErrNotFound.
func (c *Client) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	var property models.Property
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/properties/%d", id), nil, nil, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

func (c *Client) CreateProperty(ctx context.Context, payload forms.PropertyPayload) (*models.Property, error) {
	var created models.Property
	if err := c.do(ctx, http.MethodPost, "/properties/", nil, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProperty sends the partial payload plus the full images array
// representing the final kept-image state.
func (c *Client) UpdateProperty(ctx context.Context, id int64, payload forms.PropertyPayload) (*models.Property, error) {
	var updated models.Property
	path := fmt.Sprintf("/properties/%d", id)
	if err := c.do(ctx, http.MethodPut, path, nil, payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteProperty(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/properties/%d", id), nil, nil, nil)
}
