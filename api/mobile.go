// ABOUTME: Mobile surface endpoints for field agents
// ABOUTME: Dashboard stats, mobile lists and the visit lifecycle actions
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/imocrm/imocrm/models"
)

func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/mobile/dashboard/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) MobileLeads(ctx context.Context, opts ListOptions) ([]models.Lead, error) {
	var leads []models.Lead
	if err := c.do(ctx, http.MethodGet, "/mobile/leads", opts.query(), nil, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

func (c *Client) MobileProperties(ctx context.Context, opts ListOptions) ([]models.Property, error) {
	var properties []models.Property
	if err := c.do(ctx, http.MethodGet, "/mobile/properties", opts.query(), nil, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func (c *Client) UpcomingVisits(ctx context.Context) ([]models.Visit, error) {
	var visits []models.Visit
	if err := c.do(ctx, http.MethodGet, "/mobile/visits/upcoming", nil, nil, &visits); err != nil {
		return nil, err
	}
	return visits, nil
}

// Visit lifecycle actions. Each returns the updated visit record.

func (c *Client) CheckInVisit(ctx context.Context, id int64) (*models.Visit, error) {
	return c.visitAction(ctx, id, "check-in", nil)
}

func (c *Client) CheckOutVisit(ctx context.Context, id int64) (*models.Visit, error) {
	return c.visitAction(ctx, id, "check-out", nil)
}

func (c *Client) CancelVisit(ctx context.Context, id int64) (*models.Visit, error) {
	return c.visitAction(ctx, id, "cancel", nil)
}

func (c *Client) RescheduleVisit(ctx context.Context, id int64, at time.Time) (*models.Visit, error) {
	body := map[string]string{"scheduled_at": at.Format(time.RFC3339)}
	return c.visitAction(ctx, id, "reschedule", body)
}

func (c *Client) visitAction(ctx context.Context, id int64, action string, body any) (*models.Visit, error) {
	var visit models.Visit
	path := fmt.Sprintf("/mobile/visits/%d/%s", id, action)
	if err := c.do(ctx, http.MethodPost, path, nil, body, &visit); err != nil {
		return nil, err
	}
	return &visit, nil
}
