// Package extract splits raw model answers into display text and the
// machine-readable payload the model was asked to append. Every function
// here is total: malformed input degrades to empty results, never errors.
package extract

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/davidbz/saucier/internal/domain"
)

var (
	// markerPattern matches STRUCTURED_DATA: in any case with optional
	// markdown emphasis around it, e.g. **STRUCTURED_DATA:**. The underscore
	// is required so prose like "the structured data:" is left alone.
	markerPattern = regexp.MustCompile(`(?i)[*_]{0,2}structured_data[*_]{0,2}\s*:[*_]{0,2}`)

	// trailingFence matches a fenced block closing the answer.
	trailingFence = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*(\\{.*\\})\\s*```\\s*$")

	fenceOpen  = regexp.MustCompile("^\\s*```[a-zA-Z]*")
	fenceClose = regexp.MustCompile("```\\s*$")
)

var _ domain.Extractor = (*Extractor)(nil)

// Extractor implements domain.Extractor. Recipe payloads are passed
// through the normalizer so that a recipe variant always carries a valid
// recipe.
type Extractor struct {
	normalizer domain.RecipeNormalizer
}

// New creates an extractor.
func New(normalizer domain.RecipeNormalizer) *Extractor {
	return &Extractor{normalizer: normalizer}
}

// Extract separates the display message from the structured payload.
// Everything from the first marker on is removed from the message, even
// when the payload after it cannot be parsed.
func (e *Extractor) Extract(raw string) domain.Extraction {
	if loc := markerPattern.FindStringIndex(raw); loc != nil {
		message := strings.TrimSpace(raw[:loc[0]])
		payload := stripFence(raw[loc[1]:])

		result, ok := parseValue(payload, "{")
		if !ok {
			return domain.Extraction{Message: message}
		}

		return e.build(message, result)
	}

	if m := trailingFence.FindStringSubmatchIndex(raw); m != nil {
		body := raw[m[2]:m[3]]
		if result, ok := parseValue(body, "{"); ok && result.Get("responseType").Exists() {
			return e.build(strings.TrimSpace(raw[:m[0]]), result)
		}
	}

	return domain.Extraction{Message: strings.TrimSpace(raw)}
}

func (e *Extractor) build(message string, r gjson.Result) domain.Extraction {
	out := domain.Extraction{Message: message}

	recs := decodeRecommendations(r.Get("recommendations"))

	switch domain.ParseResponseType(r.Get("responseType").String()) {
	case domain.ResponseOptions:
		if options := decodeOptions(r.Get("options")); len(options) > 0 {
			out.Data = domain.NewOptionsPayload(options)
			return out
		}

	case domain.ResponseRecipe:
		if candidate := decodeCandidate(r.Get("recipe")); candidate != nil {
			out.Candidate = candidate
			out.Data = domain.NewRecipePayload(e.normalizer.Normalize(candidate))
			return out
		}

	case domain.ResponseCustomStep:
		if step := domain.ParseCustomStep(r.Get("currentStep").String()); step != "" {
			out.Data = domain.NewCustomStepPayload(step, recs)
			return out
		}

	case domain.ResponseGeneral:
	}

	out.Data = domain.NewGeneralPayload(recs)
	return out
}

// Intent reads the first JSON object in raw as a parsed user intent.
func (e *Extractor) Intent(raw string) (*domain.Intent, bool) {
	r, ok := parseValue(raw, "{")
	if !ok || !r.IsObject() {
		return nil, false
	}

	return decodeIntent(r), true
}

// Options reads the first JSON array in raw as a list of options. An object
// wrapping the list under options, suggestions or recommendations is
// accepted too.
func (e *Extractor) Options(raw string) []domain.Option {
	r, ok := parseValue(raw, "[{")
	if !ok {
		return nil
	}

	if r.IsObject() {
		r = firstResult(r, "options", "suggestions", "recommendations")
	}

	return decodeOptions(r)
}

// RecipeCandidate reads the first JSON object in raw as a loose recipe,
// unwrapping a {"recipe": {...}} envelope.
func (e *Extractor) RecipeCandidate(raw string) (*domain.RecipeCandidate, bool) {
	r, ok := parseValue(stripFence(raw), "{")
	if !ok {
		return nil, false
	}

	if inner := r.Get("recipe"); inner.IsObject() {
		r = inner
	}

	candidate := decodeCandidate(r)
	if candidate == nil || (candidate.Name == "" && !candidate.HasContent()) {
		return nil, false
	}

	return candidate, true
}

func stripFence(s string) string {
	s = fenceOpen.ReplaceAllString(s, "")
	return fenceClose.ReplaceAllString(s, "")
}
