package extract_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/saucier/internal/domain"
	"github.com/davidbz/saucier/internal/extract"
	"github.com/davidbz/saucier/internal/recipe"
)

func newExtractor() *extract.Extractor {
	return extract.New(recipe.NewNormalizer())
}

func TestExtract_Options(t *testing.T) {
	raw := `Here are some pasta ideas for you.

STRUCTURED_DATA: {
  "responseType": "options",
  "options": [
    {"name": "Carbonara", "description": "Eggs, pecorino, guanciale"},
    {"name": "Create my own recipe", "description": "Build it step by step"}
  ]
}`

	got := newExtractor().Extract(raw)

	require.Equal(t, "Here are some pasta ideas for you.", got.Message)
	require.NotNil(t, got.Data)
	require.Equal(t, domain.ResponseOptions, got.Data.ResponseType)
	require.Equal(t, []domain.Option{
		{Name: "Carbonara", Description: "Eggs, pecorino, guanciale"},
		{Name: "Create my own recipe", Description: "Build it step by step"},
	}, got.Data.Options)
	require.Nil(t, got.Candidate)
}

func TestExtract_RecipeIsNormalized(t *testing.T) {
	raw := `Enjoy!
**STRUCTURED_DATA:** {"responseType": "recipe", "recipe": {
  "name": "Tomato Soup",
  "ingredients": ["4 tomatoes", {"ingredient": "stock", "amount": 500, "unit": "ml"}],
  "instructions": ["Simmer.", "Blend."],
  "nutrition": {"calories": "180 kcal", "protein": 4},
  "prepTime": "10 minutes",
  "cookTime": "1 hour",
  "servings": 2,
  "difficulty": "easy"
}}`

	got := newExtractor().Extract(raw)

	require.Equal(t, "Enjoy!", got.Message)
	require.NotNil(t, got.Data)
	require.Equal(t, domain.ResponseRecipe, got.Data.ResponseType)
	require.NotNil(t, got.Candidate)

	r := got.Data.Recipe
	require.NotNil(t, r)
	require.NoError(t, r.Validate())
	require.Equal(t, "Tomato Soup", r.Name)
	require.Equal(t, domain.Ingredient{Ingredient: "4 tomatoes", Amount: "1"}, r.Ingredients[0])
	require.Equal(t, domain.Ingredient{Ingredient: "stock", Amount: "500", Unit: "ml"}, r.Ingredients[1])
	require.InDelta(t, 180, r.Nutrition.Calories, 1e-9)
	require.Equal(t, 10, r.PrepTime)
	require.Equal(t, 60, r.CookTime)
	require.Equal(t, 2, r.Servings)
	require.Equal(t, domain.DifficultyEasy, r.Difficulty)
}

func TestExtract_CustomStep(t *testing.T) {
	t.Run("should keep known step", func(t *testing.T) {
		raw := `Pick a protein.
STRUCTURED_DATA: {"responseType": "custom_step", "currentStep": "protein",
  "recommendations": [{"name": "Tofu", "reason": "pairs with rice"}]}`

		got := newExtractor().Extract(raw)

		require.Equal(t, domain.ResponseCustomStep, got.Data.ResponseType)
		require.Equal(t, domain.StepProtein, got.Data.CurrentStep)
		require.Equal(t, []domain.Recommendation{{Name: "Tofu", Reason: "pairs with rice"}}, got.Data.Recommendations)
	})

	t.Run("should degrade unknown step to general", func(t *testing.T) {
		got := newExtractor().Extract(`Hmm. STRUCTURED_DATA: {"responseType": "custom_step", "currentStep": "dessert"}`)

		require.Equal(t, domain.ResponseGeneral, got.Data.ResponseType)
	})
}

func TestExtract_UnknownResponseType(t *testing.T) {
	got := newExtractor().Extract(`Sure. STRUCTURED_DATA: {"responseType": "poem", "options": [{"name": "x"}]}`)

	require.Equal(t, "Sure.", got.Message)
	require.Equal(t, domain.ResponseGeneral, got.Data.ResponseType)
	require.Empty(t, got.Data.Options)
}

func TestExtract_FencedPayload(t *testing.T) {
	t.Run("should read fence after marker", func(t *testing.T) {
		raw := "Done.\n\nSTRUCTURED_DATA:\n```json\n{\"responseType\": \"general\", \"recommendations\": [\"basil\"]}\n```"

		got := newExtractor().Extract(raw)

		require.Equal(t, "Done.", got.Message)
		require.Equal(t, []domain.Recommendation{{Name: "basil"}}, got.Data.Recommendations)
	})

	t.Run("should read trailing fence without marker", func(t *testing.T) {
		raw := "Options below.\n```json\n{\"responseType\": \"options\", \"options\": [{\"name\": \"Pho\"}]}\n```\n"

		got := newExtractor().Extract(raw)

		require.Equal(t, "Options below.", got.Message)
		require.Equal(t, domain.ResponseOptions, got.Data.ResponseType)
	})

	t.Run("should ignore trailing fence without response type", func(t *testing.T) {
		raw := "Config:\n```json\n{\"a\": 1}\n```"

		got := newExtractor().Extract(raw)

		require.Equal(t, strings.TrimSpace(raw), got.Message)
		require.Nil(t, got.Data)
	})
}

func TestExtract_RepairsPayload(t *testing.T) {
	tests := map[string]string{
		"trailing comma":  `STRUCTURED_DATA: {"responseType": "options", "options": [{"name": "Pho",},],}`,
		"truncated":       `STRUCTURED_DATA: {"responseType": "options", "options": [{"name": "Pho"`,
		"trailing prose":  `STRUCTURED_DATA: {"responseType": "options", "options": [{"name": "Pho"}]} Hope this helps!`,
		"truncated value": `STRUCTURED_DATA: {"responseType": "options", "options": [{"name": "Pho", "description":`,
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			got := newExtractor().Extract("Intro. " + raw)

			require.Equal(t, "Intro.", got.Message)
			require.NotNil(t, got.Data)
			require.Equal(t, domain.ResponseOptions, got.Data.ResponseType)
			require.Equal(t, "Pho", got.Data.Options[0].Name)
		})
	}
}

func TestExtract_Totality(t *testing.T) {
	inputs := []string{
		"",
		"plain text only",
		"STRUCTURED_DATA:",
		"STRUCTURED_DATA: not json at all",
		"before STRUCTURED_DATA: {{{{",
		"x STRUCTURED_DATA: }]",
		`x STRUCTURED_DATA: {"responseType": 42}`,
		`x STRUCTURED_DATA: ["responseType"]`,
		"a STRUCTURED_DATA: {} b STRUCTURED_DATA: {}",
		"structured_data: {\"responseType\": \"general\"}",
		"```json\n{\"responseType\":",
		`STRUCTURED_DATA: {"responseType": "recipe", "recipe": "just text"}`,
		`STRUCTURED_DATA: {"responseType": "recipe", "recipe": {}}`,
		"\x00\xff STRUCTURED_DATA: \xfe",
	}

	e := newExtractor()
	for _, raw := range inputs {
		require.NotPanics(t, func() {
			got := e.Extract(raw)
			require.NotContains(t, got.Message, "STRUCTURED_DATA:")
			if got.Data != nil && got.Data.ResponseType == domain.ResponseRecipe {
				require.NoError(t, got.Data.Recipe.Validate())
			}
		}, raw)
	}
}

func TestExtract_MalformedPayloadStillStripsMarker(t *testing.T) {
	got := newExtractor().Extract("Here you go. STRUCTURED_DATA: {nope nope")

	require.Equal(t, "Here you go.", got.Message)
	require.Nil(t, got.Data)
}

func TestExtract_MarkerNeedsUnderscore(t *testing.T) {
	t.Run("should keep prose that mentions structured data", func(t *testing.T) {
		raw := "Here is the structured data: flour, water and salt make the dough."
		got := newExtractor().Extract(raw)

		require.Equal(t, raw, got.Message)
		require.Nil(t, got.Data)
	})

	t.Run("should find the real marker after such prose", func(t *testing.T) {
		got := newExtractor().Extract(`Some structured data: none yet. structured_data: {"responseType": "options", "options": [{"name": "Pho"}]}`)

		require.Equal(t, "Some structured data: none yet.", got.Message)
		require.NotNil(t, got.Data)
		require.Equal(t, domain.ResponseOptions, got.Data.ResponseType)
	})
}

func TestExtract_NoMarker(t *testing.T) {
	got := newExtractor().Extract("  Just a chat answer.  ")

	require.Equal(t, "Just a chat answer.", got.Message)
	require.Nil(t, got.Data)
	require.Nil(t, got.Candidate)
}

func TestIntent(t *testing.T) {
	e := newExtractor()

	t.Run("should parse embedded object", func(t *testing.T) {
		intent, ok := e.Intent(`Sure! {"intent": "Search_Recipe", "cuisine": "italian",
			"dishType": "pasta", "ingredients": ["basil", "tomato"], "preferences": ["vegetarian"]} done`)

		require.True(t, ok)
		require.Equal(t, domain.IntentSearchRecipe, intent.Intent)
		require.Equal(t, "italian", intent.Cuisine)
		require.Equal(t, []string{"basil", "tomato"}, intent.Ingredients)
		require.Equal(t, "vegetarian", intent.Preferences)
	})

	t.Run("should handle nested objects", func(t *testing.T) {
		intent, ok := e.Intent(`{"intent": "create_custom", "extra": {"a": 1}, "specificDish": "bowl"}`)

		require.True(t, ok)
		require.Equal(t, "bowl", intent.SpecificDish)
	})

	t.Run("should fail without json", func(t *testing.T) {
		intent, ok := e.Intent("I could not understand.")

		require.False(t, ok)
		require.Nil(t, intent)
	})
}

func TestOptions(t *testing.T) {
	e := newExtractor()

	t.Run("should parse array", func(t *testing.T) {
		options := e.Options(`Here you go:
[
  {"name": "Margherita", "description": "Classic", "difficultyLevel": "easy", "prepTime": 20},
  {"name": "Diavola", "description": "Spicy", "difficultyLevel": "medium", "prepTime": "25 minutes"}
]`)

		require.Equal(t, []domain.Option{
			{Name: "Margherita", Description: "Classic", Difficulty: "easy", PrepTime: "20"},
			{Name: "Diavola", Description: "Spicy", Difficulty: "medium", PrepTime: "25 minutes"},
		}, options)
	})

	t.Run("should unwrap object envelope", func(t *testing.T) {
		options := e.Options(`{"suggestions": [{"name": "Pho"}]}`)

		require.Equal(t, []domain.Option{{Name: "Pho"}}, options)
	})

	t.Run("should skip numeric arrays", func(t *testing.T) {
		require.Empty(t, e.Options("pick [1] of these"))
	})

	t.Run("should return nothing for prose", func(t *testing.T) {
		require.Empty(t, e.Options("no json here"))
	})
}

func TestRecipeCandidate(t *testing.T) {
	e := newExtractor()

	t.Run("should unwrap recipe envelope", func(t *testing.T) {
		c, ok := e.RecipeCandidate("```json\n{\"recipe\": {\"name\": \"Dal\", \"instructions\": \"Rinse.\\nSimmer.\"}}\n```")

		require.True(t, ok)
		require.Equal(t, "Dal", c.Name)
		require.Equal(t, []string{"Rinse.", "Simmer."}, c.Instructions)
	})

	t.Run("should reject empty object", func(t *testing.T) {
		_, ok := e.RecipeCandidate(`{"foo": "bar"}`)
		require.False(t, ok)
	})
}
