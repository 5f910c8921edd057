package domain

import (
	"context"
	"strings"

	"github.com/davidbz/saucier/internal/observability"
)

// Sampling presets of the single-shot culinary prompts.
var (
	intentOptions          = GenerationOptions{MaxTokens: 500, Temperature: Float(0.3)}
	suggestionOptions      = GenerationOptions{MaxTokens: 1000, Temperature: Float(0.7)}
	recipeOptions          = GenerationOptions{MaxTokens: 2000, Temperature: Float(0.7)}
	recommendationsOptions = GenerationOptions{MaxTokens: 800, Temperature: Float(0.7)}
)

// ParseIntent reads what a free-form request asks for. When the provider
// or the answer is unusable the whole input is treated as a dish search.
func (s *ChatService) ParseIntent(ctx context.Context, input string) *Intent {
	ctx = observability.WithOperation(ctx, "intent")

	fallback := &Intent{Intent: IntentSearchRecipe, SpecificDish: strings.TrimSpace(input)}

	raw, err := s.generateText(ctx, intentPrompt(input), intentOptions)
	if err != nil {
		s.noteFallback(ctx, err)
		return fallback
	}

	intent, ok := s.extractor.Intent(raw)
	if !ok {
		observability.Extractions.WithLabelValues("unusable").Inc()
		return fallback
	}

	return intent
}

// SuggestRecipes lists recipe ideas matching intent. The list is empty,
// never nil, when nothing usable came back.
func (s *ChatService) SuggestRecipes(ctx context.Context, intent *Intent) []Option {
	ctx = observability.WithOperation(ctx, "suggestions")

	if intent == nil {
		intent = &Intent{Intent: IntentSearchRecipe}
	}

	raw, err := s.generateText(ctx, suggestionsPrompt(intent), suggestionOptions)
	if err != nil {
		s.noteFallback(ctx, err)
		return []Option{}
	}

	options := s.extractor.Options(raw)
	if options == nil {
		return []Option{}
	}

	return options
}

// GenerateRecipe writes a full recipe for req. The result is always a
// valid recipe; when the provider fails a template recipe is returned and
// the source says so.
func (s *ChatService) GenerateRecipe(ctx context.Context, req *RecipeRequest) (Recipe, ResultSource) {
	ctx = observability.WithOperation(ctx, "recipe")

	if req == nil {
		req = &RecipeRequest{Dish: CustomDish}
	}

	raw, err := s.generateText(ctx, recipePrompt(req), recipeOptions)
	if err != nil {
		s.noteFallback(ctx, err)
		return s.fallback.Recipe(req.Dish, req.Cuisine), SourceFallback
	}

	candidate, ok := s.extractor.RecipeCandidate(raw)
	if !ok {
		candidate = s.normalizer.Scrape(raw)
	}

	if !candidate.HasContent() {
		observability.Extractions.WithLabelValues("unusable").Inc()
		return s.fallback.Recipe(req.Dish, req.Cuisine), SourceFallback
	}

	if candidate.Cuisine == "" && !strings.EqualFold(req.Cuisine, "any") {
		candidate.Cuisine = strings.TrimSpace(req.Cuisine)
	}

	return s.normalizer.Normalize(candidate), SourceProvider
}

// RecommendIngredients suggests options for category that pair with the
// current selections. The list is empty, never nil, on failure.
func (s *ChatService) RecommendIngredients(ctx context.Context, selections *CustomOptions, category string) []Option {
	ctx = observability.WithOperation(ctx, "recommendations")

	category = strings.TrimSpace(category)
	if category == "" {
		category = "ingredient"
	}

	raw, err := s.generateText(ctx, recommendationsPrompt(selections, category), recommendationsOptions)
	if err != nil {
		s.noteFallback(ctx, err)
		return []Option{}
	}

	options := s.extractor.Options(raw)
	if options == nil {
		return []Option{}
	}

	return options
}

// RecipeFromText turns a model answer the user wants to keep into a recipe.
// A structured recipe payload wins; otherwise the prose is scraped.
func (s *ChatService) RecipeFromText(text string) Recipe {
	extraction := s.extractor.Extract(text)

	if data := extraction.Data; data != nil && data.ResponseType == ResponseRecipe && data.Recipe != nil {
		return *data.Recipe
	}

	if candidate, ok := s.extractor.RecipeCandidate(extraction.Message); ok {
		return s.normalizer.Normalize(candidate)
	}

	return s.normalizer.Normalize(s.normalizer.Scrape(extraction.Message))
}

// NormalizeRecipe completes a loose recipe.
func (s *ChatService) NormalizeRecipe(candidate *RecipeCandidate) Recipe {
	return s.normalizer.Normalize(candidate)
}

// FallbackRecipe returns the template recipe for dish.
func (s *ChatService) FallbackRecipe(dish, cuisine string) Recipe {
	return s.fallback.Recipe(dish, cuisine)
}

func (s *ChatService) noteFallback(ctx context.Context, err error) {
	observability.Fallbacks.WithLabelValues(fallbackReason(err)).Inc()
	observability.FromContext(ctx).Warn("provider call failed, using fallback",
		observability.Error(err))
}
