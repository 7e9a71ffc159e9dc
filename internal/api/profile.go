package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-shortform-client/internal/models"
)

// MyProfile — профиль текущего пользователя (требует токена).
func (c *Client) MyProfile(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := c.doJSON(ctx, http.MethodGet, "/profile", nil, nil, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

// UserProfile — публичный профиль произвольного пользователя.
func (c *Client) UserProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var p models.Profile
	if err := c.doJSON(ctx, http.MethodGet, "/users/"+userID.String()+"/profile", nil, nil, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

// Dashboard — агрегированная аналитика автора (требует токена).
func (c *Client) Dashboard(ctx context.Context) (*models.CreatorDashboard, error) {
	var d models.CreatorDashboard
	if err := c.doJSON(ctx, http.MethodGet, "/dashboard", nil, nil, &d); err != nil {
		return nil, err
	}

	return &d, nil
}
