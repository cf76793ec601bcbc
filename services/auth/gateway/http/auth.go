package gateway_http

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/rideflex-admin/internal/pkg/apperrors"
	httpclient "github.com/piresc/rideflex-admin/internal/pkg/http"
	"github.com/piresc/rideflex-admin/internal/pkg/models"
)

// AuthGateway calls the backend /api/auth endpoints
type AuthGateway struct {
	client *httpclient.Client
}

// NewAuthGateway creates a new auth gateway
func NewAuthGateway(client *httpclient.Client) *AuthGateway {
	return &AuthGateway{client: client}
}

// Login posts the credentials. A rejected login whose body carries a
// message is returned as an unsuccessful LoginResponse instead of an error.
func (g *AuthGateway) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	err := g.client.PostJSON(ctx, "Login failed", "/api/auth/login", req, "", &resp)
	if err == nil {
		return &resp, nil
	}

	if h, ok := apperrors.AsHTTP(err); ok && h.StatusCode < 500 {
		var rejected models.LoginResponse
		if json.Unmarshal([]byte(h.Body), &rejected) == nil && rejected.Message != "" {
			rejected.Success = false
			return &rejected, nil
		}
	}
	return nil, err
}

// Me returns the profile of the token holder
func (g *AuthGateway) Me(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := g.client.GetJSON(ctx, "Failed to fetch user", "/api/auth/me", nil, token, &user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, fmt.Errorf("Failed to fetch user: empty profile")
	}
	return &user, nil
}

// Logout notifies the backend that the token is no longer used
func (g *AuthGateway) Logout(ctx context.Context, token string) error {
	return g.client.PostJSON(ctx, "Logout failed", "/api/auth/logout", struct{}{}, token, nil)
}
