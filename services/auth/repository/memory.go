package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/piresc/rideflex-admin/internal/pkg/models"
)

// MemorySessionRepo keeps the session for the lifetime of the process
type MemorySessionRepo struct {
	mu      sync.RWMutex
	session *models.SessionData
}

// NewMemorySessionRepo creates an empty in-process session store
func NewMemorySessionRepo() *MemorySessionRepo {
	return &MemorySessionRepo{}
}

func (r *MemorySessionRepo) Save(_ context.Context, session models.SessionData) error {
	if !session.Valid() {
		return fmt.Errorf("refusing to store incomplete session")
	}
	stored := models.SessionData{Token: session.Token, User: session.User.Clone()}

	r.mu.Lock()
	r.session = &stored
	r.mu.Unlock()
	return nil
}

func (r *MemorySessionRepo) Load(_ context.Context) (*models.SessionData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.session == nil {
		return nil, nil
	}
	return &models.SessionData{Token: r.session.Token, User: r.session.User.Clone()}, nil
}

func (r *MemorySessionRepo) Clear(_ context.Context) error {
	r.mu.Lock()
	r.session = nil
	r.mu.Unlock()
	return nil
}
