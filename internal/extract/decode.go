package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/davidbz/saucier/internal/domain"
)

var (
	numberPattern = regexp.MustCompile(`[-+]?\d+(?:\.\d+)?`)
	hoursPattern  = regexp.MustCompile(`(?i)\bh(?:ou)?rs?\b`)
	minsPattern   = regexp.MustCompile(`(?i)\bmin`)
)

// text returns a scalar as a string. Numbers keep their literal form so
// "0.5" does not become "0.500000".
func text(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return strings.TrimSpace(r.Str)
	case gjson.Number:
		return r.Raw
	case gjson.True, gjson.False:
		return r.Raw
	default:
		return ""
	}
}

// firstOf returns the first non-empty scalar among keys.
func firstOf(r gjson.Result, keys ...string) string {
	for _, key := range keys {
		if v := text(r.Get(key)); v != "" {
			return v
		}
	}
	return ""
}

// number reads a JSON number or the leading number of a string like "20g".
func number(r gjson.Result) (float64, bool) {
	switch r.Type {
	case gjson.Number:
		return r.Num, true
	case gjson.String:
		m := numberPattern.FindString(r.Str)
		if m == "" {
			return 0, false
		}
		v, err := strconv.ParseFloat(m, 64)
		return v, err == nil
	default:
		return 0, false
	}
}

// minutes reads a duration such as 25, "25", "25 minutes" or "1 hour".
func minutes(r gjson.Result) *int {
	v, ok := number(r)
	if !ok {
		return nil
	}

	if r.Type == gjson.String && hoursPattern.MatchString(r.Str) && !minsPattern.MatchString(r.Str) {
		v *= 60
	}

	n := int(math.Round(v))
	return &n
}

func count(r gjson.Result) *int {
	v, ok := number(r)
	if !ok {
		return nil
	}
	n := int(math.Round(v))
	return &n
}

func stringList(r gjson.Result) []string {
	if r.IsArray() {
		var out []string
		for _, item := range r.Array() {
			if s := text(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	}

	if s := text(r); s != "" {
		return []string{s}
	}

	return nil
}

func decodeOptions(r gjson.Result) []domain.Option {
	var options []domain.Option

	for _, item := range r.Array() {
		if !item.IsObject() {
			if name := text(item); item.Type == gjson.String && name != "" {
				options = append(options, domain.Option{Name: name})
			}
			continue
		}

		name := firstOf(item, "name", "title")
		if name == "" {
			continue
		}

		options = append(options, domain.Option{
			Name:        name,
			Description: firstOf(item, "description", "reason"),
			Difficulty:  firstOf(item, "difficultyLevel", "difficulty"),
			PrepTime:    firstOf(item, "prepTime"),
		})
	}

	return options
}

func decodeRecommendations(r gjson.Result) []domain.Recommendation {
	var recs []domain.Recommendation

	for _, item := range r.Array() {
		if !item.IsObject() {
			if name := text(item); item.Type == gjson.String && name != "" {
				recs = append(recs, domain.Recommendation{Name: name})
			}
			continue
		}

		name := firstOf(item, "name", "title")
		if name == "" {
			continue
		}

		recs = append(recs, domain.Recommendation{
			Name:   name,
			Reason: firstOf(item, "reason", "description"),
		})
	}

	return recs
}

func decodeIngredients(r gjson.Result) []domain.CandidateIngredient {
	var out []domain.CandidateIngredient

	for _, item := range r.Array() {
		if !item.IsObject() {
			if s := text(item); s != "" {
				out = append(out, domain.CandidateIngredient{Text: s})
			}
			continue
		}

		ing := domain.CandidateIngredient{
			Ingredient: firstOf(item, "ingredient", "name", "item"),
			Amount:     firstOf(item, "amount", "quantity"),
			Unit:       firstOf(item, "unit"),
		}
		if ing.Ingredient == "" && ing.Amount == "" {
			continue
		}

		out = append(out, ing)
	}

	return out
}

func decodeInstructions(r gjson.Result) []string {
	if r.Type == gjson.String {
		var steps []string
		for _, line := range strings.Split(r.Str, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				steps = append(steps, line)
			}
		}
		return steps
	}

	var steps []string
	for _, item := range r.Array() {
		step := text(item)
		if item.IsObject() {
			step = firstOf(item, "step", "text", "instruction", "description")
		}
		if step != "" {
			steps = append(steps, step)
		}
	}

	return steps
}

func decodeNutrition(r gjson.Result) map[string]float64 {
	if !r.IsObject() {
		return nil
	}

	out := make(map[string]float64)
	r.ForEach(func(key, value gjson.Result) bool {
		if v, ok := number(value); ok {
			out[strings.ToLower(key.String())] = v
		}
		return true
	})

	return out
}

func decodeCandidate(r gjson.Result) *domain.RecipeCandidate {
	if !r.IsObject() {
		return nil
	}

	return &domain.RecipeCandidate{
		Name:         firstOf(r, "name", "title"),
		Cuisine:      firstOf(r, "cuisine"),
		Ingredients:  decodeIngredients(r.Get("ingredients")),
		Instructions: decodeInstructions(firstResult(r, "instructions", "steps", "directions")),
		Nutrition:    decodeNutrition(r.Get("nutrition")),
		PrepTime:     minutes(r.Get("prepTime")),
		CookTime:     minutes(r.Get("cookTime")),
		Servings:     count(r.Get("servings")),
		Difficulty:   firstOf(r, "difficulty", "difficultyLevel"),
		Tags:         stringList(r.Get("tags")),
	}
}

func firstResult(r gjson.Result, keys ...string) gjson.Result {
	for _, key := range keys {
		if v := r.Get(key); v.Exists() {
			return v
		}
	}
	return gjson.Result{}
}

func decodeIntent(r gjson.Result) *domain.Intent {
	intent := &domain.Intent{
		Intent:        strings.ToLower(firstOf(r, "intent")),
		Cuisine:       firstOf(r, "cuisine"),
		DishType:      firstOf(r, "dishType"),
		SpecificDish:  firstOf(r, "specificDish"),
		Customization: firstOf(r, "customization"),
		Ingredients:   stringList(r.Get("ingredients")),
		Preferences:   strings.Join(stringList(r.Get("preferences")), ", "),
	}

	if intent.Intent == "" {
		intent.Intent = domain.IntentSearchRecipe
	}

	return intent
}
