package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"github.com/amberpay/go-weavr-sync/internal/common"
)

func cacheTestHelper(t *testing.T) (redismock.ClientMock, CacheRepository) {
	t.Helper()
	t.Parallel()

	db, mock := redismock.NewClientMock()
	cacheRepo := NewCacheRepository(db)

	return mock, cacheRepo
}

func TestCacheRepository_SetIfNotExists(t *testing.T) {
	mock, rc := cacheTestHelper(t)

	key := WebhookDedupKey("evt-123")

	mock.ExpectSetNX(key, "1", 24*time.Hour).SetVal(true)
	ok, err := rc.SetIfNotExists(context.TODO(), key, "1", 24*time.Hour)
	assert.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectSetNX(key, "1", 24*time.Hour).SetVal(false)
	ok, err = rc.SetIfNotExists(context.TODO(), key, "1", 24*time.Hour)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheRepository_Get(t *testing.T) {
	mock, rc := cacheTestHelper(t)

	mock.ExpectGet("somekey").SetVal(" value ")
	val, err := rc.Get(context.TODO(), "somekey")
	assert.NoError(t, err)
	assert.Equal(t, "value", val)

	mock.ExpectGet("missing").RedisNil()
	_, err = rc.Get(context.TODO(), "missing")
	assert.ErrorIs(t, err, common.ErrDataNotFound)
}

func TestWebhookDedupKey(t *testing.T) {
	assert.Equal(t, "weavr-sync:webhook:evt-1", WebhookDedupKey("evt-1"))
}
