package domain

import "time"

// Intent is the parsed meaning of a free-form cooking request.
type Intent struct {
	Intent        string   `json:"intent"`
	Cuisine       string   `json:"cuisine,omitempty"`
	DishType      string   `json:"dishType,omitempty"`
	SpecificDish  string   `json:"specificDish,omitempty"`
	Customization string   `json:"customization,omitempty"`
	Ingredients   []string `json:"ingredients,omitempty"`
	Preferences   string   `json:"preferences,omitempty"`
}

// Intent kinds.
const (
	IntentSearchRecipe    = "search_recipe"
	IntentCustomizeRecipe = "customize_recipe"
	IntentCreateCustom    = "create_custom"
	IntentGeneralQuestion = "general_question"
)

// Preferences are a user's dietary constraints.
type Preferences struct {
	Allergies           []string `json:"allergies,omitempty"`
	DietaryRestrictions []string `json:"dietaryRestrictions,omitempty"`
	FavoriteIngredients []string `json:"favoriteIngredients,omitempty"`
	DislikedIngredients []string `json:"dislikedIngredients,omitempty"`
}

// IsEmpty reports whether no preference is set.
func (p *Preferences) IsEmpty() bool {
	return p == nil || (len(p.Allergies) == 0 && len(p.DietaryRestrictions) == 0 &&
		len(p.FavoriteIngredients) == 0 && len(p.DislikedIngredients) == 0)
}

// CustomOptions describes a build-your-own recipe.
type CustomOptions struct {
	Base          string   `json:"base,omitempty"`
	Protein       string   `json:"protein,omitempty"`
	Vegetables    []string `json:"vegetables,omitempty"`
	Seasonings    []string `json:"seasonings,omitempty"`
	CookingMethod string   `json:"cookingMethod,omitempty"`
}

// RecipeRequest asks for a full recipe.
type RecipeRequest struct {
	Cuisine            string             `json:"cuisine,omitempty"`
	Dish               string             `json:"dish"`
	CustomOptions      *CustomOptions     `json:"customOptions,omitempty"`
	Customizations     []string           `json:"customizations,omitempty"`
	NutritionalTargets map[string]float64 `json:"nutritionalTargets,omitempty"`
	Allergies          []string           `json:"allergies,omitempty"`
}

// CustomDish marks a RecipeRequest built from CustomOptions.
const CustomDish = "custom"

// StoredRecipe is a recipe handed to the persistence collaborator.
type StoredRecipe struct {
	ID        string    `json:"id"`
	Recipe    Recipe    `json:"recipe"`
	CreatedAt time.Time `json:"createdAt"`
}
