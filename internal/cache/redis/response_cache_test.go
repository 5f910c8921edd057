package redis_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/saucier/internal/cache/redis"
	"github.com/davidbz/saucier/internal/domain"
)

func TestNewResponseCache_Validation(t *testing.T) {
	c, err := redis.NewResponseCache(nil, "p:", time.Minute)
	require.Error(t, err)
	require.Nil(t, c)
}

func TestResponseCache_RoundTrip(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	ctx := context.Background()
	client, err := redis.NewClient(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	c, err := redis.NewResponseCache(client, "saucier:test:"+uuid.NewString()+":", time.Second)
	require.NoError(t, err)

	_, err = c.Get(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrCacheMiss)

	payload := domain.NewGeneralPayload([]domain.Recommendation{{Name: "Basil", Reason: "fresh"}})
	require.NoError(t, c.Set(ctx, "k", &domain.ChatResult{
		Message:        "try basil",
		StructuredData: payload,
		Source:         domain.SourceProvider,
	}))

	result, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "try basil", result.Message)
	require.NotNil(t, result.StructuredData)
	require.Equal(t, domain.ResponseGeneral, result.StructuredData.ResponseType)

	time.Sleep(1100 * time.Millisecond)

	_, err = c.Get(ctx, "k")
	require.ErrorIs(t, err, domain.ErrCacheMiss)
}
