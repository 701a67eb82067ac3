package clients

import (
	"context"
	"net/http"

	"lab-portal/internal/dto"
	"lab-portal/pkg/config"

	"go.uber.org/zap"
)

type UsersClientInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.User, error)
	Register(ctx context.Context, payload dto.RegisterRequest) (*dto.User, error)
	ListUsers(ctx context.Context) ([]dto.User, error)
}

type UsersClient struct {
	*Client
}

func NewUsersClient(cfg config.UpstreamConfig, logger *zap.Logger) UsersClientInterface {
	return &UsersClient{Client: newClient("users", cfg, logger)}
}

// Login returns the user record on success. A 401 is a domain answer
// (wrong credentials), not a transport failure; it comes back as an
// UpstreamError for the auth service to map.
func (c *UsersClient) Login(ctx context.Context, payload dto.LoginDTO) (*dto.User, error) {
	var user dto.User
	if err := c.do(ctx, http.MethodPost, "/users/login", nil, payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *UsersClient) Register(ctx context.Context, payload dto.RegisterRequest) (*dto.User, error) {
	var user dto.User
	if err := c.do(ctx, http.MethodPost, "/users/register", nil, payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *UsersClient) ListUsers(ctx context.Context) ([]dto.User, error) {
	var users []dto.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
