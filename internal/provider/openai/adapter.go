// Package openai adapts any OpenAI-compatible chat completion endpoint to
// domain.Provider using the official SDK. Transport failures are mapped
// onto the domain error taxonomy so callers can tell throttling apart from
// everything else.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/davidbz/saucier/internal/domain"
	"github.com/davidbz/saucier/internal/observability"
)

const providerName = "openai"

var _ domain.Provider = (*Provider)(nil)

// Provider implements the domain.Provider interface.
type Provider struct {
	client openai.Client
	model  string
	name   string
	now    func() time.Time
}

// NewProvider creates a new provider.
func NewProvider(config Config) (*Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithMaxRetries(0),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(config.Timeout))
	}

	return &Provider{
		client: openai.NewClient(opts...),
		model:  config.Model,
		name:   providerName,
		now:    time.Now,
	}, nil
}

// Complete sends one completion request. It never retries.
func (p *Provider) Complete(ctx context.Context, req *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	params := p.toSDKParams(req)

	ctx = observability.WithModel(observability.WithProvider(ctx, providerName), string(params.Model))
	logger := observability.FromContext(ctx)
	logger.Debug("calling completion API",
		observability.Int("messages", len(req.Messages)))

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		classified := p.classify(err)
		logger.Warn("completion API call failed", observability.Error(classified))
		return nil, classified
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return nil, fmt.Errorf("%w: no content in response %q", domain.ErrProviderResponseMalformed, resp.ID)
	}

	logger.Debug("completion API call succeeded",
		observability.Int("prompt_tokens", int(resp.Usage.PromptTokens)),
		observability.Int("completion_tokens", int(resp.Usage.CompletionTokens)),
	)

	return p.toDomainResponse(resp), nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return p.name
}

// classify maps SDK and transport errors onto the domain taxonomy.
func (p *Provider) classify(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusTooManyRequests {
			return &domain.ThrottledError{
				RetryAfter: p.retryAfter(apiErr.Response),
				Err:        err,
			}
		}
		return fmt.Errorf("%w: status %d: %w", domain.ErrProviderFailed, apiErr.StatusCode, err)
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", domain.ErrProviderUnreachable, err)
	}

	return fmt.Errorf("%w: %w", domain.ErrProviderResponseMalformed, err)
}

// retryAfter reads Retry-After as delta-seconds or an HTTP date.
func (p *Provider) retryAfter(resp *http.Response) time.Duration {
	if resp == nil {
		return 0
	}

	return parseRetryAfter(resp.Header.Get("Retry-After"), p.now())
}

func parseRetryAfter(value string, now time.Time) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds <= 0 {
			return 0
		}
		return time.Duration(seconds) * time.Second
	}

	if at, err := http.ParseTime(value); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}

	return 0
}

func (p *Provider) toSDKParams(req *domain.CompletionRequest) openai.ChatCompletionNewParams {
	messages := make([]openai.ChatCompletionMessageParamUnion, len(req.Messages))
	for i, msg := range req.Messages {
		switch msg.Role {
		case domain.RoleAssistant:
			messages[i] = openai.AssistantMessage(msg.Content)
		case domain.RoleSystem:
			messages[i] = openai.SystemMessage(msg.Content)
		default:
			messages[i] = openai.UserMessage(msg.Content)
		}
	}

	model := req.Model
	if model == "" {
		model = p.model
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: messages,
	}

	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}

	if req.TopP != nil {
		params.TopP = openai.Float(*req.TopP)
	}

	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	return params
}

func (p *Provider) toDomainResponse(resp *openai.ChatCompletion) *domain.CompletionResponse {
	return &domain.CompletionResponse{
		ID:       resp.ID,
		Model:    string(resp.Model),
		Provider: p.name,
		Content:  resp.Choices[0].Message.Content,
		Usage: domain.Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
		FinishTime: p.now(),
	}
}
