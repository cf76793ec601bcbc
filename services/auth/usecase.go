package auth

import (
	"context"

	"github.com/piresc/rideflex-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/rideflex-admin/services/auth SessionUC

// SessionUC is the admin session
type SessionUC interface {
	Login(ctx context.Context, email, password string) (*models.LoginResult, error)
	Logout(ctx context.Context)
	Restore(ctx context.Context) error

	IsAuthenticated() bool
	CurrentUser() *models.User
	HasRole(role string) bool
	HasClaim(claim string) bool

	// AuthenticatedRequest runs fn with the bearer token and tears the
	// session down when the backend answers 401
	AuthenticatedRequest(ctx context.Context, fn func(ctx context.Context, token string) error) error
	OnExpired(fn func())
}
