package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/piresc/rideflex-admin/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "127.0.0.1",
		Port:     1,
		PoolSize: 1,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_SetGetDelete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}
	ctx := context.Background()

	mock.ExpectSet("rideflex_token", "tok", time.Hour).SetVal("OK")
	mock.ExpectGet("rideflex_token").SetVal("tok")
	mock.ExpectDel("rideflex_token", "rideflex_user").SetVal(2)

	require.NoError(t, client.Set(ctx, "rideflex_token", "tok", time.Hour))

	value, err := client.Get(ctx, "rideflex_token")
	require.NoError(t, err)
	assert.Equal(t, "tok", value)

	require.NoError(t, client.Delete(ctx, "rideflex_token", "rideflex_user"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GetAll(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectMGet("a", "b").SetVal([]interface{}{"1", nil})

	values, err := client.GetAll(context.Background(), "a", "b")

	require.NoError(t, err)
	assert.Equal(t, []interface{}{"1", nil}, values)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_PingError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectPing().SetErr(errors.New("connection refused"))

	assert.EqualError(t, client.Ping(context.Background()), "connection refused")
}
