package api

import (
	"context"
	"net/http"

	"github.com/pribylovaa/go-shortform-client/internal/models"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse — ответ login/register: токен + профиль.
type authResponse struct {
	Token string             `json:"token"`
	User  models.AccountUser `json:"user"`
}

// Login аутентифицирует пользователя и возвращает сессию.
// Сохранение сессии — забота вызывающего (session.Store).
func (c *Client) Login(ctx context.Context, username, password string) (*models.Session, error) {
	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil, loginRequest{
		Username: username,
		Password: password,
	}, &resp); err != nil {
		return nil, err
	}

	return &models.Session{Token: resp.Token, User: resp.User}, nil
}

// Register регистрирует пользователя. Бэкенд сразу возвращает токен,
// поэтому отдельный login после регистрации не нужен.
func (c *Client) Register(ctx context.Context, username, email, password string) (*models.Session, error) {
	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", nil, registerRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, &resp); err != nil {
		return nil, err
	}

	return &models.Session{Token: resp.Token, User: resp.User}, nil
}
