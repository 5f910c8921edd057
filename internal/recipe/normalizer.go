package recipe

import "github.com/davidbz/saucier/internal/domain"

var _ domain.RecipeNormalizer = Normalizer{}

// Normalizer exposes Scrape and Normalize as a domain.RecipeNormalizer.
type Normalizer struct{}

// NewNormalizer creates a normalizer.
func NewNormalizer() Normalizer {
	return Normalizer{}
}

// Scrape builds a candidate from recipe prose.
func (Normalizer) Scrape(text string) *domain.RecipeCandidate {
	return Scrape(text)
}

// Normalize returns a valid recipe for any candidate.
func (Normalizer) Normalize(candidate *domain.RecipeCandidate) domain.Recipe {
	return Normalize(candidate)
}
