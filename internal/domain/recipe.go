package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty grades a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Recipe defaults applied when the model leaves a field out.
const (
	DefaultRecipeName  = "Custom Recipe"
	DefaultAmount      = "1"
	DefaultPrepTime    = 15
	DefaultCookTime    = 30
	DefaultServings    = 4
	DefaultDifficulty  = DifficultyMedium
	PlaceholderItem    = "Main ingredient"
	PlaceholderUnit    = "serving"
	PlaceholderStep    = "Combine all ingredients and cook until done."
	placeholderMinimum = 1
)

// ParseDifficulty maps free text onto a Difficulty, defaulting to medium.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy
	case DifficultyHard:
		return DifficultyHard
	default:
		return DefaultDifficulty
	}
}

// Ingredient is a single recipe line. Amount is text so that vague
// quantities such as "a pinch" survive.
type Ingredient struct {
	Ingredient string `json:"ingredient"`
	Amount     string `json:"amount"`
	Unit       string `json:"unit"`
}

// Nutrition holds per-serving nutrition facts.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// Recipe is a fully populated recipe record.
type Recipe struct {
	Name         string       `json:"name"`
	Cuisine      string       `json:"cuisine,omitempty"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
	Nutrition    Nutrition    `json:"nutrition"`
	PrepTime     int          `json:"prepTime"`
	CookTime     int          `json:"cookTime"`
	Servings     int          `json:"servings"`
	Difficulty   Difficulty   `json:"difficulty"`
	Tags         []string     `json:"tags,omitempty"`
}

// Validate reports the first well-formedness violation of r.
func (r *Recipe) Validate() error {
	if r == nil {
		return errors.New("recipe cannot be nil")
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("recipe name cannot be empty")
	}
	if len(r.Ingredients) < placeholderMinimum {
		return errors.New("recipe must have at least one ingredient")
	}
	for i, ing := range r.Ingredients {
		if strings.TrimSpace(ing.Ingredient) == "" {
			return fmt.Errorf("ingredient %d has no name", i)
		}
		if strings.TrimSpace(ing.Amount) == "" {
			return fmt.Errorf("ingredient %d has no amount", i)
		}
	}
	if len(r.Instructions) < placeholderMinimum {
		return errors.New("recipe must have at least one instruction")
	}
	for i, step := range r.Instructions {
		if strings.TrimSpace(step) == "" {
			return fmt.Errorf("instruction %d is empty", i)
		}
	}
	if r.PrepTime < 0 || r.CookTime < 0 {
		return errors.New("recipe times cannot be negative")
	}
	if r.Servings <= 0 {
		return errors.New("recipe servings must be positive")
	}
	if ParseDifficulty(string(r.Difficulty)) != r.Difficulty {
		return fmt.Errorf("invalid difficulty %q", r.Difficulty)
	}
	return nil
}

// CandidateIngredient is an ingredient as the model (or the scraper) wrote
// it. Text is set when the entry was a bare string.
type CandidateIngredient struct {
	Text       string
	Ingredient string
	Amount     string
	Unit       string
}

// RecipeCandidate is a loosely typed recipe that may be missing anything.
// Nil pointers mean "not provided".
type RecipeCandidate struct {
	Name         string
	Cuisine      string
	Ingredients  []CandidateIngredient
	Instructions []string
	Nutrition    map[string]float64
	PrepTime     *int
	CookTime     *int
	Servings     *int
	Difficulty   string
	Tags         []string
}

// HasContent reports whether the candidate carries any recipe body.
func (c *RecipeCandidate) HasContent() bool {
	return c != nil && (len(c.Ingredients) > 0 || len(c.Instructions) > 0)
}
