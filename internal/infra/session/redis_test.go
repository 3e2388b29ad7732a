package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CanchaBooking/internal/infra/session"
)

func TestRedisStore_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	store := session.NewRedisStore(client, "test:session:")
	defer store.Close()

	ctx := context.Background()

	assert.ErrorIs(t, store.Ping(ctx), session.ErrStore)
	assert.ErrorIs(t, store.Save(ctx, "abc", 1, time.Minute), session.ErrStore)

	_, err := store.Get(ctx, "abc")
	assert.ErrorIs(t, err, session.ErrStore)
	assert.NotErrorIs(t, err, session.ErrSessionNotFound)
}
