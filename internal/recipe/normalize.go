// Package recipe turns loose recipe data into records that satisfy
// domain.Recipe.Validate. Scrape reads prose, Normalize fills the gaps; the
// two stages are independent.
package recipe

import (
	"math"
	"strings"

	"github.com/davidbz/saucier/internal/domain"
)

var nutritionKeys = map[string][]string{
	"calories": {"calories", "kcal", "energy"},
	"protein":  {"protein"},
	"carbs":    {"carbs", "carbohydrates", "carbohydrate"},
	"fat":      {"fat", "fats", "totalfat"},
	"fiber":    {"fiber", "fibre"},
}

// Normalize returns a valid recipe for any candidate, including nil.
func Normalize(c *domain.RecipeCandidate) domain.Recipe {
	if c == nil {
		c = &domain.RecipeCandidate{}
	}

	r := domain.Recipe{
		Name:         cleanItem(c.Name),
		Cuisine:      strings.TrimSpace(c.Cuisine),
		Ingredients:  normalizeIngredients(c.Ingredients),
		Instructions: normalizeInstructions(c.Instructions),
		Nutrition:    normalizeNutrition(c.Nutrition),
		PrepTime:     minutesOr(c.PrepTime, domain.DefaultPrepTime),
		CookTime:     minutesOr(c.CookTime, domain.DefaultCookTime),
		Servings:     domain.DefaultServings,
		Difficulty:   domain.ParseDifficulty(c.Difficulty),
		Tags:         normalizeTags(c.Tags),
	}

	if r.Name == "" {
		r.Name = domain.DefaultRecipeName
	}

	if c.Servings != nil && *c.Servings > 0 {
		r.Servings = *c.Servings
	}

	return r
}

func normalizeIngredients(in []domain.CandidateIngredient) []domain.Ingredient {
	out := make([]domain.Ingredient, 0, len(in))

	for _, c := range in {
		name := strings.TrimSpace(c.Ingredient)
		if name == "" {
			name = strings.TrimSpace(c.Text)
		}
		if name == "" {
			continue
		}

		amount := strings.TrimSpace(c.Amount)
		if amount == "" {
			amount = domain.DefaultAmount
		}

		out = append(out, domain.Ingredient{
			Ingredient: name,
			Amount:     amount,
			Unit:       strings.TrimSpace(c.Unit),
		})
	}

	if len(out) == 0 {
		out = append(out, domain.Ingredient{
			Ingredient: domain.PlaceholderItem,
			Amount:     domain.DefaultAmount,
			Unit:       domain.PlaceholderUnit,
		})
	}

	return out
}

func normalizeInstructions(in []string) []string {
	out := make([]string, 0, len(in))

	for _, step := range in {
		if m := numberedLine.FindStringSubmatch(step); m != nil {
			step = m[1]
		}
		if step = cleanItem(step); step != "" {
			out = append(out, step)
		}
	}

	if len(out) == 0 {
		out = append(out, domain.PlaceholderStep)
	}

	return out
}

func normalizeNutrition(in map[string]float64) domain.Nutrition {
	get := func(field string) float64 {
		for _, key := range nutritionKeys[field] {
			if v, ok := in[key]; ok && v > 0 && !math.IsInf(v, 0) {
				return v
			}
		}
		return 0
	}

	return domain.Nutrition{
		Calories: get("calories"),
		Protein:  get("protein"),
		Carbs:    get("carbs"),
		Fat:      get("fat"),
		Fiber:    get("fiber"),
	}
}

func minutesOr(v *int, fallback int) int {
	if v == nil || *v < 0 {
		return fallback
	}
	return *v
}

func normalizeTags(in []string) []string {
	if len(in) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))

	for _, tag := range in {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	return out
}
