package fallback

import "github.com/davidbz/saucier/internal/domain"

type template struct {
	keyword      string
	ingredients  []domain.CandidateIngredient
	instructions []string
	prepTime     int
	cookTime     int
	difficulty   domain.Difficulty
	tags         []string
}

// templates are matched in order against the requested dish.
var templates = []template{
	{
		keyword: "chicken",
		ingredients: []domain.CandidateIngredient{
			{Ingredient: "chicken breasts", Amount: "2"},
			{Ingredient: "olive oil", Amount: "2", Unit: "tbsp"},
			{Ingredient: "garlic", Amount: "2", Unit: "cloves"},
			{Ingredient: "salt and pepper", Amount: "1", Unit: "pinch"},
		},
		instructions: []string{
			"Season the chicken with salt and pepper.",
			"Heat the olive oil in a pan over medium-high heat.",
			"Cook the chicken with the garlic for 6 to 7 minutes per side until cooked through.",
			"Rest for 5 minutes before slicing.",
		},
		prepTime:   10,
		cookTime:   20,
		difficulty: domain.DifficultyEasy,
		tags:       []string{"chicken", "protein"},
	},
	{
		keyword: "pasta",
		ingredients: []domain.CandidateIngredient{
			{Ingredient: "pasta", Amount: "400", Unit: "g"},
			{Ingredient: "olive oil", Amount: "3", Unit: "tbsp"},
			{Ingredient: "garlic", Amount: "3", Unit: "cloves"},
			{Ingredient: "parmesan", Amount: "50", Unit: "g"},
		},
		instructions: []string{
			"Boil the pasta in salted water until al dente.",
			"Warm the olive oil and garlic in a pan.",
			"Toss the drained pasta with the garlic oil.",
			"Finish with grated parmesan.",
		},
		prepTime:   5,
		cookTime:   15,
		difficulty: domain.DifficultyEasy,
		tags:       []string{"pasta"},
	},
	{
		keyword: "soup",
		ingredients: []domain.CandidateIngredient{
			{Ingredient: "vegetable stock", Amount: "1", Unit: "l"},
			{Ingredient: "onion", Amount: "1"},
			{Ingredient: "carrots", Amount: "2"},
			{Ingredient: "celery", Amount: "2", Unit: "stalks"},
		},
		instructions: []string{
			"Dice the onion, carrots and celery.",
			"Soften the vegetables in a pot for 5 minutes.",
			"Add the stock and simmer for 25 minutes.",
			"Season to taste and serve hot.",
		},
		prepTime:   15,
		cookTime:   30,
		difficulty: domain.DifficultyEasy,
		tags:       []string{"soup"},
	},
}

var genericTemplate = template{
	ingredients: []domain.CandidateIngredient{
		{Ingredient: "main ingredient of your choice", Amount: "500", Unit: "g"},
		{Ingredient: "olive oil", Amount: "2", Unit: "tbsp"},
		{Ingredient: "onion", Amount: "1"},
		{Ingredient: "salt and pepper", Amount: "1", Unit: "pinch"},
	},
	instructions: []string{
		"Prepare and chop all ingredients.",
		"Heat the olive oil and soften the onion.",
		"Add the main ingredient and cook until done.",
		"Season to taste and serve.",
	},
	prepTime:   domain.DefaultPrepTime,
	cookTime:   domain.DefaultCookTime,
	difficulty: domain.DefaultDifficulty,
}
