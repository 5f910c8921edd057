// Package fallback produces deterministic answers for when the provider
// cannot be used. Nothing here performs I/O.
package fallback

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/davidbz/saucier/internal/domain"
)

// Fixed texts served by Respond.
const (
	ApologyMessage   = "I'm having trouble connecting to the culinary service right now. Could you try again in a moment?"
	CustomOptionName = "Create my own recipe"
)

var (
	cookingPattern = regexp.MustCompile(`(?i)\b(recipes?|cook(?:s|ed|ing)?|make|making)\b`)

	// dishKeywords are checked in order; the first match names the dish.
	dishKeywords = []string{
		"chicken", "beef", "pork", "fish", "salmon", "shrimp", "tofu",
		"pasta", "soup", "salad", "curry", "pizza", "tacos", "risotto",
		"stir fry", "burger", "sandwich", "cake", "bread", "dessert",
	}

	dishPatterns = compileKeywords(dishKeywords)
)

var _ domain.FallbackGenerator = (*Generator)(nil)

// Generator implements domain.FallbackGenerator.
type Generator struct {
	normalizer domain.RecipeNormalizer
}

// New creates a generator. Recipes pass through normalizer.
func New(normalizer domain.RecipeNormalizer) *Generator {
	return &Generator{normalizer: normalizer}
}

// Respond answers lastUserMessage without the provider. Cooking requests
// get an options payload; anything else gets an apology.
func (g *Generator) Respond(lastUserMessage string) domain.ChatResult {
	if !cookingPattern.MatchString(lastUserMessage) {
		return domain.ChatResult{
			Message: ApologyMessage,
			Source:  domain.SourceFallback,
		}
	}

	dish := detectDish(lastUserMessage)

	var message string
	subject := "Recipe"
	if dish == "" {
		message = "I'd love to help you cook something! Which of these directions sounds good to you?"
	} else {
		subject = titleCase(dish)
		message = fmt.Sprintf("I'd love to help you make %s! Which variation would you like?", dish)
	}

	return domain.ChatResult{
		Message:        message,
		StructuredData: domain.NewOptionsPayload(variations(subject)),
		Source:         domain.SourceFallback,
	}
}

// Recipe builds a placeholder recipe for dish. Chicken, pasta and soup
// dishes get a tailored ingredient list; everything else a generic one.
func (g *Generator) Recipe(dish, cuisine string) domain.Recipe {
	dish = strings.TrimSpace(dish)
	cuisine = strings.TrimSpace(cuisine)
	if strings.EqualFold(cuisine, "any") {
		cuisine = ""
	}

	t := pickTemplate(dish)

	candidate := &domain.RecipeCandidate{
		Name:         titleCase(dish),
		Ingredients:  append([]domain.CandidateIngredient(nil), t.ingredients...),
		Instructions: append([]string(nil), t.instructions...),
		PrepTime:     &t.prepTime,
		CookTime:     &t.cookTime,
		Difficulty:   string(t.difficulty),
		Tags:         append([]string{"fallback"}, t.tags...),
	}

	if strings.EqualFold(dish, domain.CustomDish) {
		candidate.Name = ""
	}

	if cuisine != "" {
		candidate.Cuisine = titleCase(cuisine)
		candidate.Tags = append(candidate.Tags, strings.ToLower(cuisine))
	}

	return g.normalizer.Normalize(candidate)
}

func variations(subject string) []domain.Option {
	return []domain.Option{
		{Name: "Traditional " + subject, Description: "A classic version with familiar flavors."},
		{Name: "Quick " + subject, Description: "Ready in about 30 minutes.", PrepTime: "30"},
		{Name: "Healthy " + subject, Description: "Lighter ingredients and balanced nutrition."},
		{Name: CustomOptionName, Description: "Build your own recipe step by step."},
	}
}

func compileKeywords(keywords []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(keywords))
	for i, keyword := range keywords {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
	}
	return patterns
}

func detectDish(message string) string {
	for i, pattern := range dishPatterns {
		if pattern.MatchString(message) {
			return dishKeywords[i]
		}
	}
	return ""
}

// titleCase builds a Caser per call; Casers are not safe for concurrent use.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func pickTemplate(dish string) template {
	lower := strings.ToLower(dish)
	for _, t := range templates {
		if strings.Contains(lower, t.keyword) {
			return t
		}
	}
	return genericTemplate
}
