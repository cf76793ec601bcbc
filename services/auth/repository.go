package auth

import (
	"context"

	"github.com/piresc/rideflex-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/rideflex-admin/services/auth SessionRepo

// SessionRepo persists the token/user pair. Save and Clear always touch both
// entries together; Load treats a half-written pair as no session.
type SessionRepo interface {
	Save(ctx context.Context, session models.SessionData) error
	Load(ctx context.Context) (*models.SessionData, error)
	Clear(ctx context.Context) error
}
