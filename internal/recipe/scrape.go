package recipe

import (
	"regexp"
	"strings"

	"github.com/davidbz/saucier/internal/domain"
)

type section int

const (
	sectionNone section = iota
	sectionIngredients
	sectionInstructions
)

const sectionWords = `ingredients?|instructions?|directions?|steps?|method|preparation`

var (
	namePattern = regexp.MustCompile(
		`(?i)(?:here(?:'s| is) a recipe for|here(?:'s| is) how to make|recipe for|recipe:)\s*([^\n.!:]*)`)

	// colonHeading matches "Ingredients:", "**Steps:**" or
	// "### Instructions (serves 4):".
	colonHeading = regexp.MustCompile(
		`(?i)^\s*(?:#{1,6}\s*)?[*_]{0,2}\s*(` + sectionWords + `)\b[^:\n]{0,40}:\s*[*_]{0,2}\s*$`)

	// hashHeading matches markdown headings without a colon.
	hashHeading = regexp.MustCompile(
		`(?i)^\s*#{1,6}\s*[*_]{0,2}\s*(` + sectionWords + `)\b[^\n]{0,40}$`)

	// otherHeading ends a section without starting a new one.
	otherHeading = regexp.MustCompile(`^\s*(?:#{1,6}\s+\S.*|[*_]{2}[^*_\n]+[*_]{2}:?|[A-Z][A-Za-z ]{0,40}:)\s*$`)

	bulletLine   = regexp.MustCompile(`^\s*[-*•+]\s+(.+)$`)
	numberedLine = regexp.MustCompile(`(?i)^\s*(?:step\s*)?\d+\s*[.):]\s+(.+)$`)

	amountPart = `(\d+\s+\d+/\d+|\d+/\d+|\d+(?:\.\d+)?(?:\s*-\s*\d+(?:\.\d+)?)?\s*[½⅓⅔¼¾⅛]?|[½⅓⅔¼¾⅛])`
	unitPart   = `(cups?|c|tablespoons?|tbsps?|tbs|teaspoons?|tsps?|grams?|g|kilograms?|kgs?|milligrams?|mg|` +
		`ounces?|oz|pounds?|lbs?|milliliters?|millilitres?|ml|liters?|litres?|l|quarts?|qt|pints?|pt|` +
		`pinch(?:es)?|dash(?:es)?|cloves?|cans?|slices?|pieces?|sticks?|bunch(?:es)?|handfuls?|` +
		`sprigs?|stalks?|heads?|packages?|pkgs?)`

	ingredientLine = regexp.MustCompile(`(?i)^` + amountPart + `\s*(?:` + unitPart + `\.?\s+)?(?:of\s+)?(.+)$`)
)

// Scrape builds a candidate from recipe prose. It is a heuristic and is
// allowed to be wrong; Normalize turns whatever it finds into a valid
// recipe.
func Scrape(text string) *domain.RecipeCandidate {
	candidate := &domain.RecipeCandidate{Name: scrapeName(text)}

	current := sectionNone
	collected := 0

	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if next, ok := headingSection(line); ok {
			current = next
			collected = 0
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			// A blank line closes a section once it has items.
			if collected > 0 {
				current = sectionNone
			}
			continue
		}

		if otherHeading.MatchString(line) {
			current = sectionNone
			continue
		}

		switch current {
		case sectionIngredients:
			if m := bulletLine.FindStringSubmatch(line); m != nil {
				if ing, ok := parseIngredient(m[1]); ok {
					candidate.Ingredients = append(candidate.Ingredients, ing)
					collected++
				}
			}

		case sectionInstructions:
			m := numberedLine.FindStringSubmatch(line)
			if m == nil {
				m = bulletLine.FindStringSubmatch(line)
			}
			if m != nil {
				if step := cleanItem(m[1]); step != "" {
					candidate.Instructions = append(candidate.Instructions, step)
					collected++
				}
			}

		case sectionNone:
		}
	}

	return candidate
}

func headingSection(line string) (section, bool) {
	m := colonHeading.FindStringSubmatch(line)
	if m == nil {
		m = hashHeading.FindStringSubmatch(line)
	}
	if m == nil {
		return sectionNone, false
	}

	if strings.HasPrefix(strings.ToLower(m[1]), "ingredient") {
		return sectionIngredients, true
	}

	return sectionInstructions, true
}

func scrapeName(text string) string {
	m := namePattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}

	return cleanItem(m[1])
}

// parseIngredient splits "2 cups flour" into amount, unit and name. Lines
// without a leading quantity keep the whole text as the name.
func parseIngredient(line string) (domain.CandidateIngredient, bool) {
	line = cleanItem(line)
	if line == "" {
		return domain.CandidateIngredient{}, false
	}

	m := ingredientLine.FindStringSubmatch(line)
	if m == nil || strings.TrimSpace(m[3]) == "" {
		return domain.CandidateIngredient{Ingredient: line, Amount: domain.DefaultAmount}, true
	}

	return domain.CandidateIngredient{
		Ingredient: strings.TrimSpace(m[3]),
		Amount:     strings.Join(strings.Fields(m[1]), " "),
		Unit:       strings.ToLower(m[2]),
	}, true
}

// cleanItem strips markdown emphasis and surrounding punctuation.
func cleanItem(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "*_`#\"")
	return strings.TrimSpace(s)
}
