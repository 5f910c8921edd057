package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/saucier/internal/domain"
)

func TestGenerationOptions_Merge(t *testing.T) {
	defaults := domain.GenerationOptions{
		Model:       "m",
		MaxTokens:   1000,
		Temperature: domain.Float(0.7),
		TopP:        domain.Float(0.9),
	}

	t.Run("should return defaults for nil options", func(t *testing.T) {
		var opts *domain.GenerationOptions
		require.Equal(t, defaults, opts.Merge(defaults))
	})

	t.Run("should overlay set fields only", func(t *testing.T) {
		opts := &domain.GenerationOptions{MaxTokens: 50, TopP: domain.Float(0.5)}
		require.Equal(t,
			domain.GenerationOptions{Model: "m", MaxTokens: 50, Temperature: domain.Float(0.7), TopP: domain.Float(0.5)},
			opts.Merge(defaults))
	})

	t.Run("should keep explicit zero sampling values", func(t *testing.T) {
		opts := &domain.GenerationOptions{Temperature: domain.Float(0), TopP: domain.Float(0)}
		merged := opts.Merge(defaults)

		require.NotNil(t, merged.Temperature)
		require.NotNil(t, merged.TopP)
		require.Zero(t, *merged.Temperature)
		require.Zero(t, *merged.TopP)
	})

	t.Run("should clamp out of range values", func(t *testing.T) {
		opts := &domain.GenerationOptions{Temperature: domain.Float(9), TopP: domain.Float(4)}
		merged := opts.Merge(defaults)

		require.InDelta(t, 2.0, *merged.Temperature, 1e-9)
		require.InDelta(t, 1.0, *merged.TopP, 1e-9)
	})

	t.Run("should clamp negative sampling values to zero", func(t *testing.T) {
		opts := &domain.GenerationOptions{MaxTokens: -5, Temperature: domain.Float(-1)}
		merged := opts.Merge(defaults)

		require.Equal(t, 1000, merged.MaxTokens)
		require.Zero(t, *merged.Temperature)
	})

	t.Run("should leave unset sampling values unset", func(t *testing.T) {
		merged := (&domain.GenerationOptions{}).Merge(domain.GenerationOptions{MaxTokens: 10})

		require.Nil(t, merged.Temperature)
		require.Nil(t, merged.TopP)
	})

	t.Run("should not alias the caller's values", func(t *testing.T) {
		temperature := domain.Float(0.4)
		merged := (&domain.GenerationOptions{Temperature: temperature}).Merge(defaults)

		*temperature = 1.5
		require.InDelta(t, 0.4, *merged.Temperature, 1e-9)
	})
}

func TestGenerationOptions_Request(t *testing.T) {
	opts := domain.GenerationOptions{Model: "m", MaxTokens: 10, Temperature: domain.Float(0.1), TopP: domain.Float(0.2)}
	messages := []domain.Message{{Role: domain.RoleUser, Content: "hi"}}

	req := opts.Request(messages)

	require.Equal(t, &domain.CompletionRequest{
		Model:       "m",
		Messages:    messages,
		Temperature: domain.Float(0.1),
		TopP:        domain.Float(0.2),
		MaxTokens:   10,
	}, req)
}

func TestLastUserMessage(t *testing.T) {
	messages := []domain.Message{
		{Role: domain.RoleUser, Content: "first"},
		{Role: domain.RoleAssistant, Content: "reply"},
		{Role: domain.RoleUser, Content: "second"},
		{Role: domain.RoleAssistant, Content: "reply again"},
	}

	require.Equal(t, "second", domain.LastUserMessage(messages))
	require.Empty(t, domain.LastUserMessage(nil))
}
