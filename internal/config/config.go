package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/saucier/internal/cache"
	"github.com/davidbz/saucier/internal/dispatch"
	"github.com/davidbz/saucier/internal/domain"
	"github.com/davidbz/saucier/internal/observability"
	"github.com/davidbz/saucier/internal/provider/openai"
	"github.com/davidbz/saucier/internal/storage/mongodb"
)

// Provider names selectable with PROVIDER.
const (
	ProviderOpenAI = "openai"
	ProviderEcho   = "echo"
)

// Config represents the service configuration.
type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Log        observability.LogConfig
	Provider   ProviderConfig
	OpenAI     openai.Config
	Generation GenerationConfig
	Dispatcher dispatch.Config
	Cache      cache.Config
	Mongo      mongodb.Config
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"300"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// ProviderConfig selects the completion backend.
type ProviderConfig struct {
	Name string `env:"PROVIDER" envDefault:"openai"`
}

// GenerationConfig holds the sampling defaults of every chat call.
type GenerationConfig struct {
	MaxTokens   int     `env:"GENERATION_MAX_TOKENS"  envDefault:"1000"`
	Temperature float64 `env:"GENERATION_TEMPERATURE" envDefault:"0.7"`
	TopP        float64 `env:"GENERATION_TOP_P"       envDefault:"0.9"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out

	Server     *ServerConfig
	CORS       *CORSConfig
	Log        *observability.LogConfig
	Provider   *ProviderConfig
	OpenAI     *openai.Config
	Generation *GenerationConfig
	Dispatcher *dispatch.Config
	Cache      *cache.Config
	Mongo      *mongodb.Config
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		Server:     &cfg.Server,
		CORS:       &cfg.CORS,
		Log:        &cfg.Log,
		Provider:   &cfg.Provider,
		OpenAI:     &cfg.OpenAI,
		Generation: &cfg.Generation,
		Dispatcher: &cfg.Dispatcher,
		Cache:      &cfg.Cache,
		Mongo:      &cfg.Mongo,
	}
}

// ChatSettings builds the orchestrator settings. The model comes from the
// provider section so cache keys name the model that actually answers.
func ChatSettings(gen *GenerationConfig, cacheCfg *cache.Config, provider *ProviderConfig, oa *openai.Config) domain.ChatSettings {
	model := oa.Model
	if provider.Name == ProviderEcho {
		model = ""
	}

	return domain.ChatSettings{
		Defaults: domain.GenerationOptions{
			Model:       model,
			MaxTokens:   gen.MaxTokens,
			Temperature: domain.Float(gen.Temperature),
			TopP:        domain.Float(gen.TopP),
		},
		PromptPrefix: cacheCfg.PromptPrefix,
	}
}
