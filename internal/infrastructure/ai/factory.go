package ai

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Tomas-vilte/DoraPulse/internal/domain/models"
	"github.com/Tomas-vilte/DoraPulse/internal/domain/ports"
	"github.com/Tomas-vilte/DoraPulse/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/DoraPulse/internal/infrastructure/ai/openai"
)

// ProviderBuilder construye un proveedor de completions para una familia de
// credenciales con el secreto ya resuelto.
type ProviderBuilder func(ctx context.Context, model models.Model, credential string) (ports.CompletionProvider, error)

// Factory resolves the completion provider for a model. Providers are built
// once and cached per model, so the rate limiter's token bucket persists
// across requests. Credentials are fixed at startup; the first credential
// seen for a model is the one its provider keeps.
type Factory struct {
	mu        sync.Mutex
	builders  map[models.Family]ProviderBuilder
	providers map[models.Model]*RateLimitedProvider
	limits    RateLimiterConfig
}

// NewFactory crea un factory con los builders de cada familia registrados.
func NewFactory(completionTimeout time.Duration, requestsPerMinute float64) *Factory {
	limits := DefaultRateLimiterConfig
	if completionTimeout > 0 {
		limits.Timeout = completionTimeout
	}
	if requestsPerMinute > 0 {
		limits.RequestsPerMinute = requestsPerMinute
	}

	f := &Factory{
		builders:  make(map[models.Family]ProviderBuilder),
		providers: make(map[models.Model]*RateLimitedProvider),
		limits:    limits,
	}

	f.Register(models.FamilyOpenAI, func(_ context.Context, _ models.Model, credential string) (ports.CompletionProvider, error) {
		return openai.NewOpenAIProvider(credential, limits.Timeout)
	})
	f.Register(models.FamilyFireworks, func(_ context.Context, _ models.Model, credential string) (ports.CompletionProvider, error) {
		return openai.NewFireworksProvider(credential, limits.Timeout)
	})
	f.Register(models.FamilyGemini, func(ctx context.Context, model models.Model, credential string) (ports.CompletionProvider, error) {
		return gemini.NewProvider(ctx, credential, model.String())
	})

	return f
}

// Register registra el builder de una familia. Reemplaza al existente y
// descarta los proveedores ya construidos de esa familia, lo que permite
// inyectar fakes en los tests.
func (f *Factory) Register(family models.Family, builder ProviderBuilder) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.builders[family] = builder
	for model, provider := range f.providers {
		if model.CredentialFamily() == family {
			_ = provider.Close()
			delete(f.providers, model)
		}
	}
}

// Create returns the rate-limited provider for the model, building and
// caching it on first use.
func (f *Factory) Create(ctx context.Context, model models.Model, credential string) (ports.CompletionProvider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if provider, ok := f.providers[model]; ok {
		return provider, nil
	}

	builder, exists := f.builders[model.CredentialFamily()]
	if !exists {
		return nil, fmt.Errorf("familia de proveedores '%s' no registrada", model.CredentialFamily())
	}

	inner, err := builder(ctx, model, credential)
	if err != nil {
		return nil, err
	}

	provider, err := NewRateLimitedProvider(inner, f.limits)
	if err != nil {
		return nil, err
	}

	f.providers[model] = provider
	return provider, nil
}

// Close releases every cached provider. Devuelve el primer error encontrado.
func (f *Factory) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var firstErr error
	for model, provider := range f.providers {
		if err := provider.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(f.providers, model)
	}
	return firstErr
}
