package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/piresc/olbiataxi/internal/pkg/models"
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

func TestRedisClient_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	ctx := context.Background()
	mock.ExpectSet("preference:theme:abc", "dark", time.Hour).SetVal("OK")

	err := client.Set(ctx, "preference:theme:abc", "dark", time.Hour)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	ctx := context.Background()
	mock.ExpectGet("preference:theme:abc").SetVal("dark")
	mock.ExpectGet("preference:theme:missing").RedisNil()

	val, err := client.Get(ctx, "preference:theme:abc")
	require.NoError(t, err)
	assert.Equal(t, "dark", val)

	_, err = client.Get(ctx, "preference:theme:missing")
	assert.True(t, errors.Is(err, redis.Nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectDel("preference:theme:abc").SetErr(errors.New("connection refused"))

	err := client.Delete(context.Background(), "preference:theme:abc")
	assert.EqualError(t, err, "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}
