package auth

import (
	"context"

	"github.com/piresc/rideflex-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/rideflex-admin/services/auth AuthGW

// AuthGW talks to the backend session endpoints
type AuthGW interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Me(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, token string) error
}
