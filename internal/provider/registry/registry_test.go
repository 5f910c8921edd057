package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/saucier/internal/domain"
	"github.com/davidbz/saucier/internal/provider/registry"
)

type stubProvider struct {
	name string
}

func (s *stubProvider) Complete(_ context.Context, _ *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	return &domain.CompletionResponse{}, nil
}

func (s *stubProvider) Name() string {
	return s.name
}

func TestRegistry_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("should register provider successfully", func(t *testing.T) {
		reg := registry.NewRegistry()

		require.NoError(t, reg.Register(ctx, &stubProvider{name: "openai"}))

		registered, err := reg.Get(ctx, "openai")
		require.NoError(t, err)
		require.Equal(t, "openai", registered.Name())
	})

	t.Run("should reject nil provider", func(t *testing.T) {
		err := registry.NewRegistry().Register(ctx, nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "provider cannot be nil")
	})

	t.Run("should reject empty name", func(t *testing.T) {
		err := registry.NewRegistry().Register(ctx, &stubProvider{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "provider name cannot be empty")
	})

	t.Run("should reject duplicate provider", func(t *testing.T) {
		reg := registry.NewRegistry()
		require.NoError(t, reg.Register(ctx, &stubProvider{name: "echo"}))

		err := reg.Register(ctx, &stubProvider{name: "echo"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "already registered")
	})
}

func TestRegistry_Get(t *testing.T) {
	ctx := context.Background()
	reg := registry.NewRegistry()
	require.NoError(t, reg.Register(ctx, &stubProvider{name: "echo"}))

	t.Run("should return not found for unknown name", func(t *testing.T) {
		provider, err := reg.Get(ctx, "missing")
		require.ErrorIs(t, err, registry.ErrProviderNotFound)
		require.Nil(t, provider)
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := reg.Get(ctx, "")
		require.Error(t, err)
	})
}

func TestRegistry_List(t *testing.T) {
	ctx := context.Background()
	reg := registry.NewRegistry()

	names, err := reg.List(ctx)
	require.NoError(t, err)
	require.Empty(t, names)

	require.NoError(t, reg.Register(ctx, &stubProvider{name: "openai"}))
	require.NoError(t, reg.Register(ctx, &stubProvider{name: "echo"}))

	names, err = reg.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"echo", "openai"}, names)
}
