package domain

import "context"

// Provider represents any LLM provider.
type Provider interface {
	// Complete sends a completion request and returns the full response.
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// Name returns the provider identifier.
	Name() string
}

// ProviderRegistry manages available providers.
type ProviderRegistry interface {
	// Register adds a provider to the registry.
	Register(ctx context.Context, provider Provider) error

	// Get retrieves a provider by name.
	Get(ctx context.Context, providerName string) (Provider, error)

	// List returns all available providers.
	List(ctx context.Context) ([]string, error)
}

// Operation is a unit of provider work run by a Dispatcher.
type Operation func(ctx context.Context) error

// Dispatcher serializes and paces every outbound provider call.
type Dispatcher interface {
	// Schedule queues op and blocks until it has run, retries included.
	Schedule(ctx context.Context, op Operation) error
}

// ResponseCache memoizes chat results by fingerprint key.
type ResponseCache interface {
	// Get returns ErrCacheMiss when the key is absent or expired.
	Get(ctx context.Context, key string) (*ChatResult, error)

	// Set stores result under key.
	Set(ctx context.Context, key string, result *ChatResult) error
}

// Extraction is the outcome of splitting a raw model answer.
type Extraction struct {
	Message   string
	Data      *StructuredPayload
	Candidate *RecipeCandidate
}

// Extractor pulls structured data out of free-form model text. None of its
// methods may fail; unusable input degrades to empty results.
type Extractor interface {
	Extract(raw string) Extraction
	Intent(raw string) (*Intent, bool)
	Options(raw string) []Option
	RecipeCandidate(raw string) (*RecipeCandidate, bool)
}

// RecipeNormalizer turns loose recipe data into valid Recipe records.
type RecipeNormalizer interface {
	// Scrape builds a candidate from recipe prose.
	Scrape(text string) *RecipeCandidate

	// Normalize never fails and always returns a valid recipe.
	Normalize(candidate *RecipeCandidate) Recipe
}

// FallbackGenerator produces deterministic content when the provider
// cannot be used.
type FallbackGenerator interface {
	Respond(lastUserMessage string) ChatResult
	Recipe(dish, cuisine string) Recipe
}

// RecipeStore persists recipes on explicit request.
type RecipeStore interface {
	Save(ctx context.Context, recipe *Recipe) (*StoredRecipe, error)
	Get(ctx context.Context, id string) (*StoredRecipe, error)
	List(ctx context.Context, limit int) ([]*StoredRecipe, error)
}
