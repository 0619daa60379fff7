// ABOUTME: Session introspection against /auth/me
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/imocrm/imocrm/models"
)

// Me introspects the current session. A non-OK answer means "no
// session", reported as (nil, nil), never as an error the caller has
// to toast. Only transport failures surface as errors.
func (c *Client) Me(ctx context.Context) (*models.Session, error) {
	var session models.Session
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &session); err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			return nil, nil
		}
		return nil, err
	}
	if !session.Valid {
		return nil, nil
	}
	return &session, nil
}
