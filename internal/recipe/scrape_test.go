package recipe_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/saucier/internal/domain"
	"github.com/davidbz/saucier/internal/recipe"
)

const chickenPastaProse = `Here's a recipe for Creamy Chicken Pasta!

Ingredients:
- 200g penne pasta
- 2 chicken breasts
- Salt to taste

Steps:
1. Boil the pasta until al dente.
2. Sear the chicken, slice it and toss with the pasta.

Enjoy your meal.`

func TestScrape_ChickenPasta(t *testing.T) {
	candidate := recipe.Scrape(chickenPastaProse)

	require.Equal(t, "Creamy Chicken Pasta", candidate.Name)
	require.Equal(t, []domain.CandidateIngredient{
		{Ingredient: "penne pasta", Amount: "200", Unit: "g"},
		{Ingredient: "chicken breasts", Amount: "2"},
		{Ingredient: "Salt to taste", Amount: "1"},
	}, candidate.Ingredients)
	require.Equal(t, []string{
		"Boil the pasta until al dente.",
		"Sear the chicken, slice it and toss with the pasta.",
	}, candidate.Instructions)
	require.Nil(t, candidate.PrepTime)
	require.Empty(t, candidate.Nutrition)
}

func TestScrape_IngredientFormats(t *testing.T) {
	tests := []struct {
		line string
		want domain.CandidateIngredient
	}{
		{line: "- 1 cup heavy cream", want: domain.CandidateIngredient{Ingredient: "heavy cream", Amount: "1", Unit: "cup"}},
		{line: "- 1 1/2 tbsp olive oil", want: domain.CandidateIngredient{Ingredient: "olive oil", Amount: "1 1/2", Unit: "tbsp"}},
		{line: "* 12 oz. spaghetti", want: domain.CandidateIngredient{Ingredient: "spaghetti", Amount: "12", Unit: "oz"}},
		{line: "- 3 cloves of garlic", want: domain.CandidateIngredient{Ingredient: "garlic", Amount: "3", Unit: "cloves"}},
		{line: "- ½ lemon", want: domain.CandidateIngredient{Ingredient: "lemon", Amount: "½"}},
		{line: "- 2 large eggs", want: domain.CandidateIngredient{Ingredient: "large eggs", Amount: "2"}},
		{line: "- **Fresh basil**", want: domain.CandidateIngredient{Ingredient: "Fresh basil", Amount: "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			candidate := recipe.Scrape("Ingredients:\n" + tt.line + "\n")
			require.Len(t, candidate.Ingredients, 1)
			require.Equal(t, tt.want, candidate.Ingredients[0])
		})
	}
}

func TestScrape_Headings(t *testing.T) {
	t.Run("should accept markdown headings", func(t *testing.T) {
		text := "## Ingredients\n\n- 1 onion\n- 2 carrots\n\n### Instructions\n\n1. Chop.\n2. Simmer.\n"
		candidate := recipe.Scrape(text)

		require.Len(t, candidate.Ingredients, 2)
		require.Equal(t, []string{"Chop.", "Simmer."}, candidate.Instructions)
	})

	t.Run("should accept bold headings and step prefixes", func(t *testing.T) {
		text := "**Ingredients:**\n- 1 onion\n**Directions:**\nStep 1: Chop the onion.\nStep 2) Fry it.\n"
		candidate := recipe.Scrape(text)

		require.Len(t, candidate.Ingredients, 1)
		require.Equal(t, []string{"Chop the onion.", "Fry it."}, candidate.Instructions)
	})

	t.Run("should stop a section at the next heading", func(t *testing.T) {
		text := "Ingredients:\n- 1 onion\nNotes:\n- keep it rustic\n"
		candidate := recipe.Scrape(text)

		require.Len(t, candidate.Ingredients, 1)
	})

	t.Run("should ignore prose without sections", func(t *testing.T) {
		candidate := recipe.Scrape("Pasta is great. You should try it with olive oil.")

		require.Empty(t, candidate.Name)
		require.False(t, candidate.HasContent())
	})
}

func TestScrape_Name(t *testing.T) {
	tests := map[string]string{
		"Recipe: Lemon Tart\nIngredients:":          "Lemon Tart",
		"Here's how to make Pad Thai.":              "Pad Thai",
		"Here is a recipe for **Shakshuka**\n":      "Shakshuka",
		"This is a recipe for a quick weeknight curry": "a quick weeknight curry",
	}

	for text, want := range tests {
		require.Equal(t, want, recipe.Scrape(text).Name, text)
	}
}
