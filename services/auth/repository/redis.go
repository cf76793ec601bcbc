package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/rideflex-admin/internal/pkg/constants"
	"github.com/piresc/rideflex-admin/internal/pkg/database"
	"github.com/piresc/rideflex-admin/internal/pkg/logger"
	"github.com/piresc/rideflex-admin/internal/pkg/models"
)

// DefaultKeyPrefix is used when no session key prefix is configured
const DefaultKeyPrefix = "rideflex"

// RedisSessionRepo keeps the session pair in two redis keys written in one transaction
type RedisSessionRepo struct {
	redisClient *database.RedisClient
	tokenKey    string
	userKey     string
}

// NewRedisSessionRepo creates a redis backed session store
func NewRedisSessionRepo(redisClient *database.RedisClient, prefix string) *RedisSessionRepo {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisSessionRepo{
		redisClient: redisClient,
		tokenKey:    fmt.Sprintf(constants.KeySessionToken, prefix),
		userKey:     fmt.Sprintf(constants.KeySessionUser, prefix),
	}
}

// Save writes token and user together
func (r *RedisSessionRepo) Save(ctx context.Context, session models.SessionData) error {
	if !session.Valid() {
		return fmt.Errorf("refusing to store incomplete session")
	}

	userJSON, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("failed to marshal session user: %w", err)
	}

	err = r.redisClient.SetAll(ctx, map[string]interface{}{
		r.tokenKey: session.Token,
		r.userKey:  string(userJSON),
	}, 0)
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Load returns the stored pair, or nil when there is none. A half-present
// pair is removed and reported as no session.
func (r *RedisSessionRepo) Load(ctx context.Context) (*models.SessionData, error) {
	values, err := r.redisClient.GetAll(ctx, r.tokenKey, r.userKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	token, _ := values[0].(string)
	userJSON, _ := values[1].(string)

	if token == "" && userJSON == "" {
		return nil, nil
	}
	if token == "" || userJSON == "" {
		logger.Warn("Discarding partial session in redis",
			logger.Bool("has_token", token != ""),
			logger.Bool("has_user", userJSON != ""))
		return nil, r.Clear(ctx)
	}

	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		logger.Warn("Discarding unreadable session user", logger.Err(err))
		return nil, r.Clear(ctx)
	}

	return &models.SessionData{Token: token, User: &user}, nil
}

// Clear removes both keys in a single DEL
func (r *RedisSessionRepo) Clear(ctx context.Context) error {
	if err := r.redisClient.Delete(ctx, r.tokenKey, r.userKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
