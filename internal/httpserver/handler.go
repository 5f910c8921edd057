package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/dig"

	"github.com/davidbz/saucier/internal/domain"
	"github.com/davidbz/saucier/internal/observability"
)

// SourceHeader reports whether an answer came from the provider, the cache
// or the fallback generator.
const SourceHeader = "X-Saucier-Source"

const maxBodyBytes = 1 << 20

// ChatRequest is the body of POST /v1/chat.
type ChatRequest struct {
	Messages []domain.Message         `json:"messages"`
	Options  *domain.GenerationOptions `json:"options,omitempty"`
}

// CulinaryChatRequest is the body of POST /v1/culinary/chat.
type CulinaryChatRequest struct {
	Message             string              `json:"message"`
	ConversationHistory []domain.Message    `json:"conversationHistory,omitempty"`
	Preferences         *domain.Preferences `json:"preferences,omitempty"`
}

// IntentRequest is the body of POST /v1/intent.
type IntentRequest struct {
	Input string `json:"input"`
}

// RecommendationsRequest is the body of POST /v1/ingredients/recommendations.
type RecommendationsRequest struct {
	Selections *domain.CustomOptions `json:"selections,omitempty"`
	Category   string                `json:"category"`
}

// NormalizeRequest is the body of POST /v1/recipes/normalize. Text is a
// model answer; Recipe is a loose recipe object.
type NormalizeRequest struct {
	Text   string          `json:"text,omitempty"`
	Recipe json.RawMessage `json:"recipe,omitempty"`
}

// FallbackRequest is the body of POST /v1/recipes/fallback.
type FallbackRequest struct {
	Dish    string `json:"dish"`
	Cuisine string `json:"cuisine,omitempty"`
}

// SaveRecipeRequest is the body of POST /v1/recipes.
type SaveRecipeRequest struct {
	Recipe *domain.Recipe `json:"recipe"`
}

// RecipeResponse wraps a single recipe.
type RecipeResponse struct {
	Recipe domain.Recipe       `json:"recipe"`
	Source domain.ResultSource `json:"source,omitempty"`
}

// OptionsResponse wraps a list of options.
type OptionsResponse struct {
	Options []domain.Option `json:"options"`
}

// RecipeListResponse wraps stored recipes.
type RecipeListResponse struct {
	Recipes []*domain.StoredRecipe `json:"recipes"`
}

// HandlerParams are the handler's dependencies. The recipe store is
// optional; without it the persistence routes answer 503.
type HandlerParams struct {
	dig.In

	Chat  *domain.ChatService
	Store domain.RecipeStore `optional:"true"`
}

// Handler handles HTTP requests.
type Handler struct {
	chat  *domain.ChatService
	store domain.RecipeStore
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(p HandlerParams) *Handler {
	return &Handler{
		chat:  p.Chat,
		store: p.Store,
	}
}

// HandleChat answers a raw conversation. It always answers 200 once the
// body parses.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if len(req.Messages) == 0 {
		http.Error(w, "messages are required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if req.Options != nil && req.Options.Model != "" {
		ctx = observability.WithModel(ctx, req.Options.Model)
	}

	observability.FromContext(ctx).Info("chat request received",
		observability.Int("messages", len(req.Messages)))

	writeResult(w, r, h.chat.ProcessChat(ctx, req.Messages, req.Options))
}

// HandleCulinaryChat runs one turn of the recipe assistant.
func (h *Handler) HandleCulinaryChat(w http.ResponseWriter, r *http.Request) {
	var req CulinaryChatRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	observability.FromContext(r.Context()).Info("culinary chat request received",
		observability.Int("history", len(req.ConversationHistory)),
		observability.Bool("preferences", !req.Preferences.IsEmpty()))

	writeResult(w, r, h.chat.ProcessCulinaryChat(r.Context(), req.Message, req.ConversationHistory, req.Preferences))
}

// HandleIntent parses a free-form request.
func (h *Handler) HandleIntent(w http.ResponseWriter, r *http.Request) {
	var req IntentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Input == "" {
		http.Error(w, "input is required", http.StatusBadRequest)
		return
	}

	writeJSON(w, r, http.StatusOK, h.chat.ParseIntent(r.Context(), req.Input))
}

// HandleSuggestions lists recipe ideas for an intent.
func (h *Handler) HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	var intent domain.Intent
	if !decodeBody(w, r, &intent) {
		return
	}

	writeJSON(w, r, http.StatusOK, OptionsResponse{Options: h.chat.SuggestRecipes(r.Context(), &intent)})
}

// HandleRecipeDetails writes a full recipe.
func (h *Handler) HandleRecipeDetails(w http.ResponseWriter, r *http.Request) {
	var req domain.RecipeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Dish == "" {
		http.Error(w, "dish is required", http.StatusBadRequest)
		return
	}

	recipe, source := h.chat.GenerateRecipe(r.Context(), &req)

	w.Header().Set(SourceHeader, string(source))
	writeJSON(w, r, http.StatusOK, RecipeResponse{Recipe: recipe, Source: source})
}

// HandleRecommendations suggests ingredients for a custom recipe.
func (h *Handler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req RecommendationsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	options := h.chat.RecommendIngredients(r.Context(), req.Selections, req.Category)
	writeJSON(w, r, http.StatusOK, OptionsResponse{Options: options})
}

// HandleNormalize turns a model answer or a loose recipe object into a
// valid recipe.
func (h *Handler) HandleNormalize(w http.ResponseWriter, r *http.Request) {
	var req NormalizeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var recipe domain.Recipe
	switch {
	case len(req.Recipe) > 0:
		recipe = h.chat.RecipeFromText(string(req.Recipe))
	case req.Text != "":
		recipe = h.chat.RecipeFromText(req.Text)
	default:
		http.Error(w, "text or recipe is required", http.StatusBadRequest)
		return
	}

	writeJSON(w, r, http.StatusOK, RecipeResponse{Recipe: recipe})
}

// HandleFallbackRecipe returns the template recipe for a dish.
func (h *Handler) HandleFallbackRecipe(w http.ResponseWriter, r *http.Request) {
	var req FallbackRequest
	if !decodeBody(w, r, &req) {
		return
	}

	w.Header().Set(SourceHeader, string(domain.SourceFallback))
	writeJSON(w, r, http.StatusOK, RecipeResponse{
		Recipe: h.chat.FallbackRecipe(req.Dish, req.Cuisine),
		Source: domain.SourceFallback,
	})
}

// HandleSaveRecipe persists a recipe the user chose to keep.
func (h *Handler) HandleSaveRecipe(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeStoreError(w, r, domain.ErrStoreNotConfigured)
		return
	}

	var req SaveRecipeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := req.Recipe.Validate(); err != nil {
		http.Error(w, fmt.Sprintf("invalid recipe: %v", err), http.StatusBadRequest)
		return
	}

	stored, err := h.store.Save(r.Context(), req.Recipe)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, stored)
}

// HandleListRecipes returns saved recipes, newest first.
func (h *Handler) HandleListRecipes(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeStoreError(w, r, domain.ErrStoreNotConfigured)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	recipes, err := h.store.List(r.Context(), limit)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, RecipeListResponse{Recipes: recipes})
}

// HandleGetRecipe returns one saved recipe.
func (h *Handler) HandleGetRecipe(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeStoreError(w, r, domain.ErrStoreNotConfigured)
		return
	}

	stored, err := h.store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, stored)
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	}); err != nil {
		// Already written status, can't change it, just log.
		return
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return false
	}
	return true
}

func writeResult(w http.ResponseWriter, r *http.Request, result *domain.ChatResult) {
	w.Header().Set(SourceHeader, string(result.Source))
	writeJSON(w, r, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		observability.FromContext(r.Context()).Error("failed to encode response",
			observability.Error(err))
	}
}

func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrStoreNotConfigured):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		observability.FromContext(r.Context()).Error("recipe store failed",
			observability.Error(err))
		http.Error(w, "recipe store failed", http.StatusInternalServerError)
	}
}
