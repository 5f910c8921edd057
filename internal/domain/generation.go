package domain

const (
	maxTemperature = 2.0
	maxTopP        = 1.0
)

// Float returns a pointer to v, for setting optional sampling fields.
func Float(v float64) *float64 {
	return &v
}

// Merge overlays the set fields of o on top of defaults and clamps the
// result into the ranges the provider accepts.
func (o *GenerationOptions) Merge(defaults GenerationOptions) GenerationOptions {
	merged := defaults
	if o != nil {
		if o.Model != "" {
			merged.Model = o.Model
		}
		if o.MaxTokens > 0 {
			merged.MaxTokens = o.MaxTokens
		}
		if o.Temperature != nil {
			merged.Temperature = o.Temperature
		}
		if o.TopP != nil {
			merged.TopP = o.TopP
		}
	}

	merged.Temperature = clamp(merged.Temperature, 0, maxTemperature)
	merged.TopP = clamp(merged.TopP, 0, maxTopP)
	if merged.MaxTokens <= 0 {
		merged.MaxTokens = defaults.MaxTokens
	}

	return merged
}

// Request builds the provider request for a conversation.
func (o GenerationOptions) Request(messages []Message) *CompletionRequest {
	return &CompletionRequest{
		Model:       o.Model,
		Messages:    messages,
		Temperature: o.Temperature,
		TopP:        o.TopP,
		MaxTokens:   o.MaxTokens,
	}
}

// clamp returns a fresh pointer so merged options never alias the caller's.
func clamp(v *float64, lo, hi float64) *float64 {
	if v == nil {
		return nil
	}

	switch {
	case *v < lo:
		return Float(lo)
	case *v > hi:
		return Float(hi)
	default:
		return Float(*v)
	}
}
