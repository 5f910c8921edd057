package openai

import "time"

// Config contains settings for any OpenAI-compatible chat completion API.
//   - APIKey: maps to option.WithAPIKey()
//   - BaseURL: maps to option.WithBaseURL(); defaults to Together AI
//   - Model: used when a request leaves the model empty
//   - Timeout: maps to option.WithRequestTimeout()
//
// SDK retries stay disabled; the dispatcher owns retry policy.
type Config struct {
	APIKey  string        `env:"OPENAI_API_KEY"`
	BaseURL string        `env:"OPENAI_BASE_URL" envDefault:"https://api.together.xyz/v1"`
	Model   string        `env:"OPENAI_MODEL"    envDefault:"meta-llama/Llama-3-70b-chat-hf"`
	Timeout time.Duration `env:"OPENAI_TIMEOUT"  envDefault:"60s"`
}
