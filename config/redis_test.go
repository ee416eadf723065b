package config

import (
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func resetRedis(t *testing.T) {
	t.Helper()
	freshConfig(t)
	ResetRedisClientForTest()
	t.Cleanup(ResetRedisClientForTest)
}

func TestConnectRedis_NoAddress(t *testing.T) {
	resetRedis(t)
	t.Setenv("APPENV", "development")
	t.Setenv("REDIS_ADDR", "")

	rdb, err := ConnectRedis()
	assert.NoError(t, err)
	assert.Nil(t, rdb)
	assert.Nil(t, GetRedisClient())
}

func TestConnectRedis_SkippedInTestEnv(t *testing.T) {
	resetRedis(t)
	t.Setenv("APPENV", "test")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	rdb, err := ConnectRedis()
	assert.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestConnectRedis_UnreachableAddress(t *testing.T) {
	resetRedis(t)
	t.Setenv("APPENV", "development")
	// Port 1 is reserved and refuses connections.
	t.Setenv("REDIS_ADDR", "127.0.0.1:1")

	rdb, err := ConnectRedis()
	assert.Error(t, err)
	assert.Nil(t, rdb)
	assert.Contains(t, err.Error(), "redis ping failed")
}

func TestSetRedisClientForTest(t *testing.T) {
	resetRedis(t)
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer client.Close()

	SetRedisClientForTest(client)
	assert.Same(t, client, GetRedisClient())

	ResetRedisClientForTest()
	assert.Nil(t, GetRedisClient())
}
