package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/saucier/internal/cache"
	"github.com/davidbz/saucier/internal/config"
	"github.com/davidbz/saucier/internal/dispatch"
	"github.com/davidbz/saucier/internal/domain"
	"github.com/davidbz/saucier/internal/extract"
	"github.com/davidbz/saucier/internal/fallback"
	"github.com/davidbz/saucier/internal/httpserver"
	"github.com/davidbz/saucier/internal/httpserver/middleware"
	"github.com/davidbz/saucier/internal/observability"
	"github.com/davidbz/saucier/internal/provider/echo"
	"github.com/davidbz/saucier/internal/provider/openai"
	"github.com/davidbz/saucier/internal/provider/registry"
	"github.com/davidbz/saucier/internal/recipe"
	"github.com/davidbz/saucier/internal/storage/mongodb"
)

const shutdownTimeout = 30 * time.Second

// storeParams resolves the recipe store only when one was provided.
type storeParams struct {
	dig.In

	Store *mongodb.RecipeStore `optional:"true"`
}

func main() {
	cfg := config.Load()
	container := buildContainer(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := container.Invoke(func(
		_ *zap.Logger,
		server *httpserver.Server,
		dispatcher *dispatch.Dispatcher,
		caches *cache.Result,
	) error {
		errCh := make(chan error, 1)
		go func() { errCh <- server.Start() }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := server.Shutdown(shutdownCtx)
		dispatcher.Close()
		if closeErr := caches.Close(); closeErr != nil {
			observability.FromContext(shutdownCtx).Warn("failed to close cache", observability.Error(closeErr))
		}
		closeStore(shutdownCtx, container)

		return err
	})
	if err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}

func buildContainer(cfg *config.Config) *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(func() *config.Config { return cfg }); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}
	if err := container.Provide(config.ChatSettings); err != nil {
		log.Fatalf("Failed to provide chat settings: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}

	provideProviders(container)

	// Dispatcher
	if err := container.Provide(func(c *dispatch.Config) (*dispatch.Dispatcher, error) {
		return dispatch.New(*c)
	}); err != nil {
		log.Fatalf("Failed to provide dispatcher: %v", err)
	}
	if err := container.Provide(func(d *dispatch.Dispatcher) domain.Dispatcher { return d }); err != nil {
		log.Fatalf("Failed to provide dispatcher interface: %v", err)
	}

	// Response cache; a nil domain.ResponseCache disables caching.
	if err := container.Provide(func(c *cache.Config) (*cache.Result, error) {
		return cache.New(context.Background(), c)
	}); err != nil {
		log.Fatalf("Failed to provide cache: %v", err)
	}
	if err := container.Provide(func(r *cache.Result) domain.ResponseCache { return r.Cache }); err != nil {
		log.Fatalf("Failed to provide cache interface: %v", err)
	}

	// Recipe pipeline
	if err := container.Provide(func() domain.RecipeNormalizer { return recipe.NewNormalizer() }); err != nil {
		log.Fatalf("Failed to provide normalizer: %v", err)
	}
	if err := container.Provide(func(n domain.RecipeNormalizer) domain.Extractor { return extract.New(n) }); err != nil {
		log.Fatalf("Failed to provide extractor: %v", err)
	}
	if err := container.Provide(func(n domain.RecipeNormalizer) domain.FallbackGenerator { return fallback.New(n) }); err != nil {
		log.Fatalf("Failed to provide fallback generator: %v", err)
	}

	// Recipe store (optional)
	if cfg.Mongo.Enabled() {
		if err := container.Provide(func(c *mongodb.Config) (*mongodb.RecipeStore, error) {
			return mongodb.Connect(context.Background(), *c)
		}); err != nil {
			log.Fatalf("Failed to provide recipe store: %v", err)
		}
		if err := container.Provide(func(s *mongodb.RecipeStore) domain.RecipeStore { return s }); err != nil {
			log.Fatalf("Failed to provide recipe store interface: %v", err)
		}
	}

	// Domain Services
	if err := container.Provide(domain.NewChatService); err != nil {
		log.Fatalf("Failed to provide chat service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(httpserver.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(httpserver.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

// provideProviders registers every configured provider and exposes the one
// selected with PROVIDER as domain.Provider.
func provideProviders(container *dig.Container) {
	if err := container.Provide(func() domain.ProviderRegistry {
		return registry.NewRegistry()
	}); err != nil {
		log.Fatalf("Failed to provide registry: %v", err)
	}

	if err := container.Provide(func(
		reg domain.ProviderRegistry,
		selection *config.ProviderConfig,
		openaiCfg *openai.Config,
	) (domain.Provider, error) {
		ctx := context.Background()

		if err := reg.Register(ctx, echo.NewProvider()); err != nil {
			return nil, fmt.Errorf("failed to register echo provider: %w", err)
		}

		// Register OpenAI only when a key is configured.
		if openaiCfg.APIKey != "" {
			p, err := openai.NewProvider(*openaiCfg)
			if err != nil {
				return nil, fmt.Errorf("failed to create OpenAI provider: %w", err)
			}
			if err := reg.Register(ctx, p); err != nil {
				return nil, fmt.Errorf("failed to register OpenAI provider: %w", err)
			}
		}

		provider, err := reg.Get(ctx, selection.Name)
		if err != nil {
			return nil, fmt.Errorf("provider %q unavailable (is OPENAI_API_KEY set?): %w", selection.Name, err)
		}

		observability.FromContext(ctx).Info("provider selected",
			observability.String("provider", provider.Name()))

		return provider, nil
	}); err != nil {
		log.Fatalf("Failed to provide provider: %v", err)
	}
}

func closeStore(ctx context.Context, container *dig.Container) {
	_ = container.Invoke(func(p storeParams) {
		if p.Store == nil {
			return
		}
		if err := p.Store.Close(ctx); err != nil {
			observability.FromContext(ctx).Warn("failed to close recipe store", observability.Error(err))
		}
	})
}
