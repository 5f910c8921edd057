package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AssistantPersona is the system message for single-shot prompts.
const AssistantPersona = "You are a helpful culinary assistant that helps people find recipes, " +
	"adapt them, and invent their own."

// CulinaryInstructions is the system message that drives the chat workflow
// and asks the model for a machine-readable trailer.
const CulinaryInstructions = `You are a culinary assistant. You help people find recipes, adjust them, and build their own.

Workflow:
1. When someone asks for a kind of dish, offer 4 or 5 concrete options and always include "Create my own recipe".
2. When they pick a recipe, give the full ingredient list, numbered steps and nutrition per serving.
3. When they ask for changes, apply them to the recipe you gave.
4. When they choose "Create my own recipe", go one question at a time:
   nutrition targets, then the base, then the protein, then vegetables, then seasonings, then the cooking method.
5. While building a custom recipe, suggest ingredients that go well with what they already picked.
6. Always finish a recipe with complete instructions and nutrition details.

End every answer with one line that starts with STRUCTURED_DATA: followed by a single JSON object:
{
  "responseType": "options" | "recipe" | "custom_step" | "general",
  "options": [{"name": "...", "description": "..."}],
  "recipe": {"name": "...", "ingredients": [{"ingredient": "...", "amount": "...", "unit": "..."}], "instructions": ["..."], "nutrition": {"calories": 0, "protein": 0, "carbs": 0, "fat": 0, "fiber": 0}, "prepTime": 0, "cookTime": 0, "servings": 0, "difficulty": "easy|medium|hard"},
  "currentStep": "nutrition" | "base" | "protein" | "vegetables" | "seasonings" | "cookingMethod",
  "recommendations": [{"name": "...", "reason": "..."}]
}
Only include the fields that apply to the responseType. The line is removed before the user sees the answer.`

const recipeJSONShape = `{
  "name": "Recipe Name",
  "ingredients": [{"ingredient": "Ingredient name", "amount": "amount", "unit": "unit"}],
  "instructions": ["Step 1", "Step 2"],
  "nutrition": {"calories": 0, "protein": 0, "carbs": 0, "fat": 0, "fiber": 0},
  "prepTime": 0,
  "cookTime": 0,
  "servings": 0,
  "difficulty": "easy|medium|hard"
}`

// preferencesPrompt renders dietary preferences as extra system text.
func preferencesPrompt(p *Preferences) string {
	if p.IsEmpty() {
		return ""
	}

	var b strings.Builder
	b.WriteString("The user has these dietary preferences:\n")

	write := func(label string, values []string) {
		if len(values) > 0 {
			fmt.Fprintf(&b, "- %s: %s\n", label, strings.Join(values, ", "))
		}
	}

	write("Allergies (never use these)", p.Allergies)
	write("Dietary restrictions", p.DietaryRestrictions)
	write("Favorite ingredients", p.FavoriteIngredients)
	write("Disliked ingredients (avoid these)", p.DislikedIngredients)

	return strings.TrimRight(b.String(), "\n")
}

func intentPrompt(input string) string {
	return fmt.Sprintf(`Read the following request to a cooking assistant and pull out what it asks for.

Request: %q

Answer with one JSON object:
{
  "intent": "search_recipe" | "customize_recipe" | "create_custom" | "general_question",
  "cuisine": "cuisine, if given",
  "dishType": "kind of dish, if given",
  "specificDish": "dish name, if given",
  "customization": "requested change, if any",
  "ingredients": ["ingredients mentioned"],
  "preferences": "dietary preferences mentioned"
}
Leave out any field the request does not mention or imply.`, input)
}

func suggestionsPrompt(intent *Intent) string {
	var b strings.Builder
	b.WriteString("List 5 delicious ")

	if intent.Cuisine != "" {
		b.WriteString(intent.Cuisine + " ")
	}

	if intent.DishType != "" {
		b.WriteString(intent.DishType + " ")
	} else {
		b.WriteString("recipes ")
	}

	if len(intent.Ingredients) > 0 {
		fmt.Fprintf(&b, "using %s ", strings.Join(intent.Ingredients, ", "))
	}

	if intent.Preferences != "" {
		fmt.Fprintf(&b, "that are %s ", intent.Preferences)
	}

	b.WriteString(`
Answer with a JSON array only:
[
  {"name": "Recipe name", "description": "One-line description", "difficultyLevel": "easy|medium|hard", "prepTime": "minutes"}
]`)

	return b.String()
}

func recipePrompt(req *RecipeRequest) string {
	var b strings.Builder

	if strings.EqualFold(req.Dish, CustomDish) {
		b.WriteString("Create a custom recipe with these requirements:\n")
		if o := req.CustomOptions; o != nil {
			fmt.Fprintf(&b, "- Base: %s\n", orAny(o.Base, "base"))
			fmt.Fprintf(&b, "- Protein: %s\n", orAny(o.Protein, "protein"))
			fmt.Fprintf(&b, "- Vegetables: %s\n", orAny(strings.Join(o.Vegetables, ", "), "vegetables"))
			fmt.Fprintf(&b, "- Seasonings: %s\n", orAny(strings.Join(o.Seasonings, ", "), "seasonings"))
			fmt.Fprintf(&b, "- Cooking method: %s\n", orAny(o.CookingMethod, "cooking method"))
		}
	} else {
		fmt.Fprintf(&b, "Create a detailed recipe for %s", req.Dish)
		if req.Cuisine != "" && !strings.EqualFold(req.Cuisine, "any") {
			fmt.Fprintf(&b, " in %s cuisine", req.Cuisine)
		}
		b.WriteString(".\n")
	}

	if len(req.Customizations) > 0 {
		fmt.Fprintf(&b, "\nCustomizations: %s\n", strings.Join(req.Customizations, ", "))
	}

	if len(req.NutritionalTargets) > 0 {
		targets, _ := json.Marshal(req.NutritionalTargets)
		fmt.Fprintf(&b, "\nNutritional targets: %s\n", targets)
	}

	if len(req.Allergies) > 0 {
		fmt.Fprintf(&b, "\nAvoid these ingredients due to allergies: %s\n", strings.Join(req.Allergies, ", "))
	}

	b.WriteString("\nAnswer with the recipe as one JSON object in this shape:\n")
	b.WriteString(recipeJSONShape)

	return b.String()
}

func recommendationsPrompt(selections *CustomOptions, category string) string {
	var b strings.Builder
	b.WriteString("These ingredients are already selected:\n")

	write := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "- %s: %s\n", label, value)
		}
	}

	if selections != nil {
		write("base", selections.Base)
		write("protein", selections.Protein)
		write("vegetables", strings.Join(selections.Vegetables, ", "))
		write("seasonings", strings.Join(selections.Seasonings, ", "))
		write("cookingMethod", selections.CookingMethod)
	}

	fmt.Fprintf(&b, `
Recommend 5 %[1]s options that pair well with them.
Answer with a JSON array only:
[
  {"name": "%[1]s name", "description": "Why it works with the current ingredients"}
]`, category)

	return b.String()
}

func orAny(value, what string) string {
	if strings.TrimSpace(value) == "" {
		return "any suitable " + what
	}
	return value
}
