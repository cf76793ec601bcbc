package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/rideflex-admin/internal/pkg/database"
	"github.com/piresc/rideflex-admin/internal/pkg/models"
	"github.com/piresc/rideflex-admin/services/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisRepo(t *testing.T) (*RedisSessionRepo, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisSessionRepo(&database.RedisClient{Client: client}, ""), mr
}

func testSession() models.SessionData {
	return models.SessionData{
		Token: "token-123",
		User: &models.User{
			ID:        "admin-1",
			FirstName: "Ada",
			Email:     "ada@rideflex.test",
			Roles:     []string{"Admin"},
		},
	}
}

func TestRedisSessionRepo_SaveLoadClear(t *testing.T) {
	repo, mr := setupRedisRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testSession()))

	token, err := mr.Get("rideflex_token")
	require.NoError(t, err)
	assert.Equal(t, "token-123", token)
	assert.True(t, mr.Exists("rideflex_user"))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "token-123", loaded.Token)
	assert.Equal(t, "admin-1", loaded.User.ID)
	assert.Equal(t, []string{"Admin"}, loaded.User.Roles)

	require.NoError(t, repo.Clear(ctx))
	assert.False(t, mr.Exists("rideflex_token"))
	assert.False(t, mr.Exists("rideflex_user"))

	loaded, err = repo.Load(ctx)
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisSessionRepo_PartialPairIsDiscarded(t *testing.T) {
	repo, mr := setupRedisRepo(t)
	require.NoError(t, mr.Set("rideflex_token", "orphan"))

	loaded, err := repo.Load(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, loaded)
	assert.False(t, mr.Exists("rideflex_token"))
}

func TestRedisSessionRepo_CustomPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo := NewRedisSessionRepo(&database.RedisClient{Client: client}, "staging")
	require.NoError(t, repo.Save(context.Background(), testSession()))

	assert.True(t, mr.Exists("staging_token"))
	assert.True(t, mr.Exists("staging_user"))
}

func TestSessionRepos_RejectIncompletePair(t *testing.T) {
	redisRepo, mr := setupRedisRepo(t)
	repos := map[string]auth.SessionRepo{
		"redis":  redisRepo,
		"memory": NewMemorySessionRepo(),
	}

	for name, repo := range repos {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			assert.Error(t, repo.Save(ctx, models.SessionData{Token: "only-token"}))
			assert.Error(t, repo.Save(ctx, models.SessionData{User: &models.User{ID: "u"}}))

			loaded, err := repo.Load(ctx)
			assert.NoError(t, err)
			assert.Nil(t, loaded)
		})
	}
	assert.Empty(t, mr.Keys())
}

func TestMemorySessionRepo_ReturnsCopies(t *testing.T) {
	repo := NewMemorySessionRepo()
	ctx := context.Background()
	s := testSession()
	require.NoError(t, repo.Save(ctx, s))

	s.User.Roles[0] = "Mutated"
	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Admin", loaded.User.Roles[0])

	loaded.User.FirstName = "Changed"
	again, _ := repo.Load(ctx)
	assert.Equal(t, "Ada", again.User.FirstName)

	require.NoError(t, repo.Clear(ctx))
	gone, _ := repo.Load(ctx)
	assert.Nil(t, gone)
}
