// Package echo provides an offline provider for development and tests. It
// answers every request with a deterministic reply built from the last user
// message, including a STRUCTURED_DATA trailer so the full extraction path
// runs without network access.
package echo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/davidbz/saucier/internal/domain"
	"github.com/davidbz/saucier/internal/observability"
)

const (
	providerName = "echo"
	modelName    = "echo4"
)

var _ domain.Provider = (*Provider)(nil)

// Provider implements the domain.Provider interface without external calls.
type Provider struct {
	name string
}

// NewProvider creates a new echo provider.
func NewProvider() *Provider {
	return &Provider{name: providerName}
}

// Complete returns the echoed reply. Any model name is accepted.
func (p *Provider) Complete(ctx context.Context, req *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	content := buildEchoContent(domain.LastUserMessage(req.Messages))

	promptTokens := countTokens(req.Messages)
	completionTokens := len(strings.Fields(content))

	observability.FromContext(observability.WithProvider(ctx, providerName)).Debug("echo completed",
		observability.Int("prompt_tokens", promptTokens),
		observability.Int("completion_tokens", completionTokens),
	)

	model := req.Model
	if model == "" {
		model = modelName
	}

	now := time.Now()

	return &domain.CompletionResponse{
		ID:       fmt.Sprintf("echo-%d", now.UnixNano()),
		Model:    model,
		Provider: p.name,
		Content:  content,
		Usage: domain.Usage{
			PromptTokens:     promptTokens,
			CompletionTokens: completionTokens,
			TotalTokens:      promptTokens + completionTokens,
		},
		FinishTime: now,
	}, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return p.name
}

// buildEchoContent quotes the user message and appends a general payload.
func buildEchoContent(message string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		message = "(empty message)"
	}

	message = strings.ReplaceAll(message, `"`, `'`)

	var builder strings.Builder
	fmt.Fprintf(&builder, "You said: %s\n\n", message)
	builder.WriteString("STRUCTURED_DATA: ")
	fmt.Fprintf(&builder,
		`{"responseType": "general", "recommendations": [{"name": "Echo", "reason": "%s"}]}`,
		jsonEscape(message))

	return builder.String()
}

func jsonEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\r", `\r`, "\t", `\t`).Replace(s)
}

// countTokens performs simple word-based token counting.
func countTokens(messages []domain.Message) int {
	total := 0
	for _, msg := range messages {
		total += len(strings.Fields(msg.Content))
	}
	return total
}
