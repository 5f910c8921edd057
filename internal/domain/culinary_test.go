package domain_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/saucier/internal/cache/memory"
	"github.com/davidbz/saucier/internal/domain"
	"github.com/davidbz/saucier/internal/mocks"
)

const carbonaraJSON = "```json\n" + `{
  "name": "Spaghetti Carbonara",
  "ingredients": [
    {"ingredient": "spaghetti", "amount": "400", "unit": "g"},
    {"ingredient": "eggs", "amount": "4"},
    {"ingredient": "pecorino", "amount": "100", "unit": "g"}
  ],
  "instructions": ["Cook the pasta.", "Whisk eggs and cheese.", "Toss off the heat."],
  "nutrition": {"calories": 650, "protein": 28},
  "prepTime": 10,
  "cookTime": 15,
  "servings": 4,
  "difficulty": "easy"
}` + "\n```"

func capturePrompt(t *testing.T, provider *mocks.MockProvider, answer string, err error) *domain.CompletionRequest {
	t.Helper()

	captured := &domain.CompletionRequest{}
	call := provider.EXPECT().Complete(mock.Anything, mock.Anything).
		Run(func(_ context.Context, req *domain.CompletionRequest) { *captured = *req }).
		Once()

	if err != nil {
		call.Return(nil, err)
	} else {
		call.Return(completion(answer), nil)
	}

	return captured
}

func TestChatService_ParseIntent(t *testing.T) {
	t.Run("should decode the intent object", func(t *testing.T) {
		provider := mocks.NewMockProvider(t)
		req := capturePrompt(t, provider,
			`Sure: {"intent": "search_recipe", "cuisine": "Italian", "dishType": "pasta", "ingredients": ["basil"]}`, nil)

		service := newChatService(t, provider, inlineDispatcher(t), nil)
		intent := service.ParseIntent(context.Background(), "Italian pasta with basil")

		require.Equal(t, domain.IntentSearchRecipe, intent.Intent)
		require.Equal(t, "Italian", intent.Cuisine)
		require.Equal(t, "pasta", intent.DishType)
		require.Equal(t, []string{"basil"}, intent.Ingredients)

		require.Equal(t, 500, req.MaxTokens)
		require.NotNil(t, req.Temperature)
		require.InDelta(t, 0.3, *req.Temperature, 1e-9)
		require.Equal(t, domain.AssistantPersona, req.Messages[0].Content)
		require.Contains(t, req.Messages[1].Content, "Italian pasta with basil")
	})

	t.Run("should treat the input as a dish search on failure", func(t *testing.T) {
		provider := mocks.NewMockProvider(t)
		capturePrompt(t, provider, "", domain.ErrProviderUnreachable)

		service := newChatService(t, provider, inlineDispatcher(t), nil)
		intent := service.ParseIntent(context.Background(), " spicy ramen ")

		require.Equal(t, &domain.Intent{Intent: domain.IntentSearchRecipe, SpecificDish: "spicy ramen"}, intent)
	})

	t.Run("should treat the input as a dish search when the answer has no JSON", func(t *testing.T) {
		provider := mocks.NewMockProvider(t)
		capturePrompt(t, provider, "You want ramen.", nil)

		service := newChatService(t, provider, inlineDispatcher(t), nil)
		intent := service.ParseIntent(context.Background(), "ramen")

		require.Equal(t, domain.IntentSearchRecipe, intent.Intent)
		require.Equal(t, "ramen", intent.SpecificDish)
	})

	t.Run("should reuse cached answers", func(t *testing.T) {
		cache, err := memory.New(time.Minute)
		require.NoError(t, err)

		provider := mocks.NewMockProvider(t)
		capturePrompt(t, provider, `{"intent": "general_question"}`, nil)

		service := newChatService(t, provider, inlineDispatcher(t), cache)
		ctx := context.Background()

		first := service.ParseIntent(ctx, "how hot is a wok?")
		second := service.ParseIntent(ctx, "how hot is a wok?")

		require.Equal(t, domain.IntentGeneralQuestion, first.Intent)
		require.Equal(t, first, second)
	})
}

func TestChatService_SuggestRecipes(t *testing.T) {
	t.Run("should return the listed options", func(t *testing.T) {
		provider := mocks.NewMockProvider(t)
		req := capturePrompt(t, provider, `[
  {"name": "Margherita", "description": "Classic", "difficultyLevel": "easy", "prepTime": "20"},
  {"name": "Diavola", "description": "Spicy"}
]`, nil)

		service := newChatService(t, provider, inlineDispatcher(t), nil)
		options := service.SuggestRecipes(context.Background(),
			&domain.Intent{Intent: domain.IntentSearchRecipe, Cuisine: "Italian", DishType: "pizza"})

		require.Len(t, options, 2)
		require.Equal(t, domain.Option{Name: "Margherita", Description: "Classic", Difficulty: "easy", PrepTime: "20"}, options[0])
		require.Contains(t, req.Messages[1].Content, "Italian pizza")
	})

	t.Run("should return an empty list on failure", func(t *testing.T) {
		provider := mocks.NewMockProvider(t)
		capturePrompt(t, provider, "", errors.Join(domain.ErrRetriesExhausted, domain.ErrProviderThrottled))

		service := newChatService(t, provider, inlineDispatcher(t), nil)
		options := service.SuggestRecipes(context.Background(), nil)

		require.NotNil(t, options)
		require.Empty(t, options)
	})

	t.Run("should return an empty list for unusable answers", func(t *testing.T) {
		provider := mocks.NewMockProvider(t)
		capturePrompt(t, provider, "Pizza is great.", nil)

		service := newChatService(t, provider, inlineDispatcher(t), nil)
		options := service.SuggestRecipes(context.Background(), &domain.Intent{DishType: "pizza"})

		require.NotNil(t, options)
		require.Empty(t, options)
	})
}

func TestChatService_GenerateRecipe(t *testing.T) {
	t.Run("should normalize the returned recipe", func(t *testing.T) {
		provider := mocks.NewMockProvider(t)
		req := capturePrompt(t, provider, carbonaraJSON, nil)

		service := newChatService(t, provider, inlineDispatcher(t), nil)
		r, source := service.GenerateRecipe(context.Background(), &domain.RecipeRequest{
			Cuisine:   "Italian",
			Dish:      "carbonara",
			Allergies: []string{"shellfish"},
		})

		require.Equal(t, domain.SourceProvider, source)
		require.NoError(t, r.Validate())
		require.Equal(t, "Spaghetti Carbonara", r.Name)
		require.Equal(t, "Italian", r.Cuisine)
		require.Len(t, r.Ingredients, 3)
		require.Equal(t, domain.Ingredient{Ingredient: "eggs", Amount: "4", Unit: ""}, r.Ingredients[1])
		require.Len(t, r.Instructions, 3)
		require.InDelta(t, 650, r.Nutrition.Calories, 1e-9)
		require.Equal(t, 10, r.PrepTime)
		require.Equal(t, domain.DifficultyEasy, r.Difficulty)

		require.Equal(t, 2000, req.MaxTokens)
		require.Contains(t, req.Messages[1].Content, "carbonara in Italian cuisine")
		require.Contains(t, req.Messages[1].Content, "allergies: shellfish")
	})

	t.Run("should describe custom options in the prompt", func(t *testing.T) {
		provider := mocks.NewMockProvider(t)
		req := capturePrompt(t, provider, carbonaraJSON, nil)

		service := newChatService(t, provider, inlineDispatcher(t), nil)
		service.GenerateRecipe(context.Background(), &domain.RecipeRequest{
			Dish: domain.CustomDish,
			CustomOptions: &domain.CustomOptions{
				Base:       "rice",
				Protein:    "tofu",
				Vegetables: []string{"broccoli", "carrot"},
			},
			NutritionalTargets: map[string]float64{"protein": 30},
		})

		prompt := req.Messages[1].Content
		require.Contains(t, prompt, "Base: rice")
		require.Contains(t, prompt, "Protein: tofu")
		require.Contains(t, prompt, "Vegetables: broccoli, carrot")
		require.Contains(t, prompt, "Seasonings: any suitable seasonings")
		require.Contains(t, prompt, `"protein":30`)
	})

	t.Run("should scrape prose answers", func(t *testing.T) {
		provider := mocks.NewMockProvider(t)
		capturePrompt(t, provider, chickenPastaProse, nil)

		service := newChatService(t, provider, inlineDispatcher(t), nil)
		r, source := service.GenerateRecipe(context.Background(), &domain.RecipeRequest{Dish: "chicken pasta"})

		require.Equal(t, domain.SourceProvider, source)
		require.Equal(t, "Creamy Chicken Pasta", r.Name)
		require.Len(t, r.Ingredients, 3)
	})

	t.Run("should use the template recipe on failure", func(t *testing.T) {
		provider := mocks.NewMockProvider(t)
		capturePrompt(t, provider, "", domain.ErrProviderFailed)

		service := newChatService(t, provider, inlineDispatcher(t), nil)
		r, source := service.GenerateRecipe(context.Background(), &domain.RecipeRequest{Dish: "chicken tikka", Cuisine: "Indian"})

		require.Equal(t, domain.SourceFallback, source)
		require.NoError(t, r.Validate())
		require.Equal(t, "Chicken Tikka", r.Name)
		require.Contains(t, r.Tags, "fallback")
	})

	t.Run("should use the template recipe for empty answers", func(t *testing.T) {
		provider := mocks.NewMockProvider(t)
		capturePrompt(t, provider, "I cannot help with that.", nil)

		service := newChatService(t, provider, inlineDispatcher(t), nil)
		r, source := service.GenerateRecipe(context.Background(), &domain.RecipeRequest{Dish: "soup"})

		require.Equal(t, domain.SourceFallback, source)
		require.NoError(t, r.Validate())
	})
}

func TestChatService_RecommendIngredients(t *testing.T) {
	t.Run("should recommend options for the category", func(t *testing.T) {
		provider := mocks.NewMockProvider(t)
		req := capturePrompt(t, provider,
			`{"recommendations": [{"name": "Ginger", "description": "Warms up tofu"}]}`, nil)

		service := newChatService(t, provider, inlineDispatcher(t), nil)
		options := service.RecommendIngredients(context.Background(),
			&domain.CustomOptions{Base: "rice", Protein: "tofu"}, "seasonings")

		require.Equal(t, []domain.Option{{Name: "Ginger", Description: "Warms up tofu"}}, options)
		require.Contains(t, req.Messages[1].Content, "- protein: tofu")
		require.Contains(t, req.Messages[1].Content, "Recommend 5 seasonings options")
	})

	t.Run("should return an empty list on failure", func(t *testing.T) {
		provider := mocks.NewMockProvider(t)
		capturePrompt(t, provider, "", domain.ErrProviderUnreachable)

		service := newChatService(t, provider, inlineDispatcher(t), nil)
		options := service.RecommendIngredients(context.Background(), nil, "")

		require.NotNil(t, options)
		require.Empty(t, options)
	})
}

func TestChatService_RecipeFromText(t *testing.T) {
	service := newChatService(t, mocks.NewMockProvider(t), mocks.NewMockDispatcher(t), nil)

	t.Run("should prefer the structured recipe", func(t *testing.T) {
		text := "Enjoy!\nSTRUCTURED_DATA: " +
			`{"responseType": "recipe", "recipe": {"name": "Miso Soup", "ingredients": ["miso", "tofu"], "instructions": ["Simmer."]}}`

		r := service.RecipeFromText(text)

		require.Equal(t, "Miso Soup", r.Name)
		require.Len(t, r.Ingredients, 2)
		require.NoError(t, r.Validate())
	})

	t.Run("should scrape prose", func(t *testing.T) {
		r := service.RecipeFromText(chickenPastaProse)

		require.Equal(t, "Creamy Chicken Pasta", r.Name)
		require.Len(t, r.Instructions, 2)
	})

	t.Run("should read a bare recipe object", func(t *testing.T) {
		r := service.RecipeFromText(carbonaraJSON)

		require.Equal(t, "Spaghetti Carbonara", r.Name)
	})

	t.Run("should still return a valid recipe for nonsense", func(t *testing.T) {
		r := service.RecipeFromText("lorem ipsum")

		require.NoError(t, r.Validate())
		require.Equal(t, domain.DefaultRecipeName, r.Name)
		require.Equal(t, domain.PlaceholderItem, r.Ingredients[0].Ingredient)
	})
}

func TestChatService_FallbackRecipe(t *testing.T) {
	service := newChatService(t, mocks.NewMockProvider(t), mocks.NewMockDispatcher(t), nil)

	r := service.FallbackRecipe("lemon chicken", "greek")

	require.NoError(t, r.Validate())
	require.Equal(t, "Lemon Chicken", r.Name)
	require.Equal(t, "Greek", r.Cuisine)
	require.Contains(t, r.Tags, "greek")
}
