package domain

import (
	"context"
	"errors"

	"github.com/davidbz/saucier/internal/observability"
)

const (
	chatNamespace = "chat"
	textNamespace = "text"
)

// ChatSettings carries the orchestrator's tunables.
type ChatSettings struct {
	Defaults     GenerationOptions
	PromptPrefix int
}

// ChatService turns conversations into ChatResults. It never returns an
// error: provider failures are answered by the fallback generator.
type ChatService struct {
	provider   Provider
	dispatcher Dispatcher
	cache      ResponseCache
	extractor  Extractor
	normalizer RecipeNormalizer
	fallback   FallbackGenerator
	settings   ChatSettings
}

// NewChatService creates a new chat service (DI constructor). A nil cache
// disables caching.
func NewChatService(
	provider Provider,
	dispatcher Dispatcher,
	cache ResponseCache,
	extractor Extractor,
	normalizer RecipeNormalizer,
	fallback FallbackGenerator,
	settings ChatSettings,
) *ChatService {
	return &ChatService{
		provider:   provider,
		dispatcher: dispatcher,
		cache:      cache,
		extractor:  extractor,
		normalizer: normalizer,
		fallback:   fallback,
		settings:   settings,
	}
}

// ProcessChat answers a conversation.
func (s *ChatService) ProcessChat(ctx context.Context, messages []Message, opts *GenerationOptions) *ChatResult {
	ctx = observability.WithOperation(ctx, "chat")
	logger := observability.FromContext(ctx)

	if len(messages) == 0 {
		return s.respondWithFallback(ctx, "empty", nil)
	}

	merged := opts.Merge(s.settings.Defaults)
	key := NewFingerprint(chatNamespace, messages, merged, s.settings.PromptPrefix).Key()

	if cached := s.lookup(ctx, key); cached != nil {
		cached.Source = SourceCache
		return cached
	}

	raw, err := s.complete(ctx, messages, merged)
	if err != nil {
		logger.Warn("provider call failed, serving fallback",
			observability.Error(err))
		return s.respondWithFallback(ctx, fallbackReason(err), messages)
	}

	result := s.interpret(raw)
	s.store(ctx, key, result)

	return result
}

// ProcessCulinaryChat runs one turn of the recipe assistant workflow.
func (s *ChatService) ProcessCulinaryChat(
	ctx context.Context,
	userInput string,
	history []Message,
	prefs *Preferences,
) *ChatResult {
	ctx = observability.WithOperation(ctx, "culinary_chat")

	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: RoleSystem, Content: CulinaryInstructions})

	if extra := preferencesPrompt(prefs); extra != "" {
		messages = append(messages, Message{Role: RoleSystem, Content: extra})
	}

	// Callers only get to replay the visible conversation.
	for _, msg := range history {
		if msg.Role == RoleUser || msg.Role == RoleAssistant {
			messages = append(messages, msg)
		}
	}

	if userInput != "" {
		messages = append(messages, Message{Role: RoleUser, Content: userInput})
	}

	if LastUserMessage(messages) == "" {
		return s.respondWithFallback(ctx, "empty", nil)
	}

	return s.ProcessChat(ctx, messages, nil)
}

// interpret splits a raw answer into prose and payload. Prose that reads
// like a recipe is promoted to a recipe payload.
func (s *ChatService) interpret(raw string) *ChatResult {
	extraction := s.extractor.Extract(raw)
	data := extraction.Data
	outcome := "structured"

	if data == nil {
		outcome = "plain"
		if candidate := s.normalizer.Scrape(extraction.Message); looksLikeRecipe(candidate) {
			data = NewRecipePayload(s.normalizer.Normalize(candidate))
			outcome = "scraped"
		}
	}

	observability.Extractions.WithLabelValues(outcome).Inc()

	return &ChatResult{
		Message:        extraction.Message,
		StructuredData: data,
		Raw:            raw,
		Source:         SourceProvider,
	}
}

// generateText runs a single-shot prompt and returns the raw answer.
func (s *ChatService) generateText(ctx context.Context, prompt string, opts GenerationOptions) (string, error) {
	messages := []Message{
		{Role: RoleSystem, Content: AssistantPersona},
		{Role: RoleUser, Content: prompt},
	}

	merged := opts.Merge(s.settings.Defaults)
	key := NewFingerprint(textNamespace, messages, merged, s.settings.PromptPrefix).Key()

	if cached := s.lookup(ctx, key); cached != nil {
		return cached.Raw, nil
	}

	raw, err := s.complete(ctx, messages, merged)
	if err != nil {
		return "", err
	}

	s.store(ctx, key, &ChatResult{Message: raw, Raw: raw, Source: SourceProvider})

	return raw, nil
}

// complete sends one request through the dispatcher.
func (s *ChatService) complete(ctx context.Context, messages []Message, opts GenerationOptions) (string, error) {
	req := opts.Request(messages)

	var resp *CompletionResponse
	err := s.dispatcher.Schedule(ctx, func(ctx context.Context) error {
		r, err := s.provider.Complete(ctx, req)
		if err != nil {
			return err
		}
		resp = r
		return nil
	})
	if err != nil {
		return "", err
	}

	observability.FromContext(ctx).Info("provider answered",
		observability.String("provider", resp.Provider),
		observability.String("model", resp.Model),
		observability.Int("total_tokens", resp.Usage.TotalTokens))

	return resp.Content, nil
}

func (s *ChatService) lookup(ctx context.Context, key string) *ChatResult {
	if s.cache == nil {
		return nil
	}

	logger := observability.FromContext(ctx)

	cached, err := s.cache.Get(ctx, key)
	switch {
	case err == nil && cached != nil:
		observability.CacheLookups.WithLabelValues("hit").Inc()
		logger.Debug("cache hit", observability.String("key", key))
		return cached
	case err == nil, errors.Is(err, ErrCacheMiss):
		observability.CacheLookups.WithLabelValues("miss").Inc()
	default:
		observability.CacheLookups.WithLabelValues("error").Inc()
		logger.Warn("cache get failed, continuing without cache",
			observability.Error(err))
	}

	return nil
}

func (s *ChatService) store(ctx context.Context, key string, result *ChatResult) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Set(ctx, key, result); err != nil {
		observability.FromContext(ctx).Warn("failed to store in cache",
			observability.Error(err))
	}
}

func (s *ChatService) respondWithFallback(ctx context.Context, reason string, messages []Message) *ChatResult {
	observability.Fallbacks.WithLabelValues(reason).Inc()
	observability.FromContext(ctx).Info("serving fallback answer",
		observability.String("reason", reason))

	result := s.fallback.Respond(LastUserMessage(messages))
	result.Source = SourceFallback

	return &result
}

// looksLikeRecipe keeps step-by-step answers that have no ingredient list
// (technique questions, for instance) out of the recipe payload.
func looksLikeRecipe(c *RecipeCandidate) bool {
	return c.HasContent() && len(c.Ingredients) > 0
}

func fallbackReason(err error) string {
	switch {
	case errors.Is(err, ErrRetriesExhausted), errors.Is(err, ErrProviderThrottled):
		return "throttled"
	case errors.Is(err, ErrProviderUnreachable):
		return "unreachable"
	case errors.Is(err, ErrProviderResponseMalformed):
		return "malformed"
	case errors.Is(err, ErrProviderFailed):
		return "failed"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}
