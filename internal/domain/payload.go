package domain

import "strings"

// ResponseType discriminates StructuredPayload variants.
type ResponseType string

const (
	ResponseOptions    ResponseType = "options"
	ResponseRecipe     ResponseType = "recipe"
	ResponseCustomStep ResponseType = "custom_step"
	ResponseGeneral    ResponseType = "general"
)

// ParseResponseType maps a raw tag onto a known variant; unknown tags
// become general.
func ParseResponseType(s string) ResponseType {
	switch ResponseType(strings.ToLower(strings.TrimSpace(s))) {
	case ResponseOptions:
		return ResponseOptions
	case ResponseRecipe:
		return ResponseRecipe
	case ResponseCustomStep:
		return ResponseCustomStep
	default:
		return ResponseGeneral
	}
}

// CustomStep is a stage of the "create my own recipe" flow.
type CustomStep string

const (
	StepNutrition     CustomStep = "nutrition"
	StepBase          CustomStep = "base"
	StepProtein       CustomStep = "protein"
	StepVegetables    CustomStep = "vegetables"
	StepSeasonings    CustomStep = "seasonings"
	StepCookingMethod CustomStep = "cookingMethod"
)

var customSteps = []CustomStep{
	StepNutrition, StepBase, StepProtein, StepVegetables, StepSeasonings, StepCookingMethod,
}

// ParseCustomStep returns the matching step, or "" when s is not one.
func ParseCustomStep(s string) CustomStep {
	s = strings.TrimSpace(s)
	for _, step := range customSteps {
		if strings.EqualFold(s, string(step)) {
			return step
		}
	}
	return ""
}

// Option is a selectable choice offered to the user.
type Option struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Difficulty  string `json:"difficultyLevel,omitempty"`
	PrepTime    string `json:"prepTime,omitempty"`
}

// Recommendation is a contextual pairing suggestion.
type Recommendation struct {
	Name   string `json:"name"`
	Reason string `json:"reason,omitempty"`
}

// StructuredPayload is the machine-readable part of a model answer. Build
// it with the New*Payload constructors so the variant fields always match
// ResponseType.
type StructuredPayload struct {
	ResponseType    ResponseType     `json:"responseType"`
	Options         []Option         `json:"options,omitempty"`
	Recipe          *Recipe          `json:"recipe,omitempty"`
	CurrentStep     CustomStep       `json:"currentStep,omitempty"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
}

// NewOptionsPayload builds an options payload.
func NewOptionsPayload(options []Option) *StructuredPayload {
	return &StructuredPayload{ResponseType: ResponseOptions, Options: options}
}

// NewRecipePayload builds a recipe payload.
func NewRecipePayload(recipe Recipe) *StructuredPayload {
	return &StructuredPayload{ResponseType: ResponseRecipe, Recipe: &recipe}
}

// NewCustomStepPayload builds a custom_step payload.
func NewCustomStepPayload(step CustomStep, recommendations []Recommendation) *StructuredPayload {
	return &StructuredPayload{
		ResponseType:    ResponseCustomStep,
		CurrentStep:     step,
		Recommendations: recommendations,
	}
}

// NewGeneralPayload builds a general payload.
func NewGeneralPayload(recommendations []Recommendation) *StructuredPayload {
	return &StructuredPayload{ResponseType: ResponseGeneral, Recommendations: recommendations}
}
