package ai

import (
	"context"
	"testing"
	"time"

	"github.com/Tomas-vilte/DoraPulse/internal/domain/models"
	"github.com/Tomas-vilte/DoraPulse/internal/domain/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	calls int
}

func (f *fakeProvider) Complete(_ context.Context, req *ports.CompletionRequest) (*ports.CompletionResponse, error) {
	f.calls++
	return &ports.CompletionResponse{Content: "ok", Model: req.Model.String()}, nil
}

func (f *fakeProvider) Name() string { return "fake" }

func TestNewRateLimitedProviderValidation(t *testing.T) {
	_, err := NewRateLimitedProvider(&fakeProvider{}, RateLimiterConfig{RequestsPerMinute: 0, Burst: 1})
	assert.Error(t, err)

	_, err = NewRateLimitedProvider(&fakeProvider{}, RateLimiterConfig{RequestsPerMinute: 60, Burst: 0})
	assert.Error(t, err)
}

func TestRateLimitedProviderDelegates(t *testing.T) {
	inner := &fakeProvider{}
	limited, err := NewRateLimitedProvider(inner, DefaultRateLimiterConfig)
	require.NoError(t, err)

	assert.Equal(t, "fake", limited.Name())

	resp, err := limited.Complete(context.Background(), &ports.CompletionRequest{Model: models.ModelGPT4o})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content)
	assert.Equal(t, 1, inner.calls)
}

func TestRateLimitedProviderRespectsCancelledContext(t *testing.T) {
	inner := &fakeProvider{}
	limited, err := NewRateLimitedProvider(inner, RateLimiterConfig{
		RequestsPerMinute: 1,
		Burst:             1,
		Timeout:           time.Second,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = limited.Complete(ctx, &ports.CompletionRequest{Model: models.ModelGPT4o})
	assert.Error(t, err)
	assert.Zero(t, inner.calls)
}

func TestFactoryCreateUsesRegisteredBuilder(t *testing.T) {
	factory := NewFactory(time.Second, 60)

	inner := &fakeProvider{}
	factory.Register(models.FamilyOpenAI, func(_ context.Context, _ models.Model, credential string) (ports.CompletionProvider, error) {
		assert.Equal(t, "sk-test", credential)
		return inner, nil
	})

	provider, err := factory.Create(context.Background(), models.ModelGPT4o, "sk-test")
	require.NoError(t, err)

	// El proveedor sale envuelto en el rate limiter.
	_, ok := provider.(*RateLimitedProvider)
	assert.True(t, ok)

	_, err = provider.Complete(context.Background(), &ports.CompletionRequest{Model: models.ModelGPT4o})
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
}

type closableProvider struct {
	fakeProvider
	closed int
}

func (c *closableProvider) Close() error {
	c.closed++
	return nil
}

func TestFactoryCachesProviderPerModel(t *testing.T) {
	factory := NewFactory(time.Second, 60)

	builds := 0
	factory.Register(models.FamilyOpenAI, func(_ context.Context, _ models.Model, _ string) (ports.CompletionProvider, error) {
		builds++
		return &fakeProvider{}, nil
	})

	first, err := factory.Create(context.Background(), models.ModelGPT4o, "sk-test")
	require.NoError(t, err)
	second, err := factory.Create(context.Background(), models.ModelGPT4o, "sk-test")
	require.NoError(t, err)

	// Mismo proveedor en ambos requests: el limiter no se reinicia.
	assert.Same(t, first, second)
	assert.Equal(t, 1, builds)
}

func TestFactoryLimiterPersistsAcrossRequests(t *testing.T) {
	factory := NewFactory(time.Second, 60)
	factory.Register(models.FamilyOpenAI, func(_ context.Context, _ models.Model, _ string) (ports.CompletionProvider, error) {
		return &fakeProvider{}, nil
	})

	// Burst de 10 tokens a 60/min: agotado el burst, el siguiente request
	// tendria que esperar ~1s y el deadline corto lo corta de inmediato.
	for i := 0; i < DefaultRateLimiterConfig.Burst; i++ {
		provider, err := factory.Create(context.Background(), models.ModelGPT4o, "sk-test")
		require.NoError(t, err)
		_, err = provider.Complete(context.Background(), &ports.CompletionRequest{Model: models.ModelGPT4o})
		require.NoError(t, err, "request %d dentro del burst", i)
	}

	provider, err := factory.Create(context.Background(), models.ModelGPT4o, "sk-test")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = provider.Complete(ctx, &ports.CompletionRequest{Model: models.ModelGPT4o})
	assert.Error(t, err)
}

func TestFactoryRegisterDropsCachedProviders(t *testing.T) {
	factory := NewFactory(time.Second, 60)

	inner := &closableProvider{}
	factory.Register(models.FamilyOpenAI, func(_ context.Context, _ models.Model, _ string) (ports.CompletionProvider, error) {
		return inner, nil
	})
	first, err := factory.Create(context.Background(), models.ModelGPT4o, "sk-test")
	require.NoError(t, err)

	replacement := &fakeProvider{}
	factory.Register(models.FamilyOpenAI, func(_ context.Context, _ models.Model, _ string) (ports.CompletionProvider, error) {
		return replacement, nil
	})

	assert.Equal(t, 1, inner.closed)

	second, err := factory.Create(context.Background(), models.ModelGPT4o, "sk-test")
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestFactoryCloseReleasesProviders(t *testing.T) {
	factory := NewFactory(time.Second, 60)

	inner := &closableProvider{}
	factory.Register(models.FamilyGemini, func(_ context.Context, _ models.Model, _ string) (ports.CompletionProvider, error) {
		return inner, nil
	})
	_, err := factory.Create(context.Background(), models.ModelGeminiFlash, "key")
	require.NoError(t, err)

	require.NoError(t, factory.Close())
	assert.Equal(t, 1, inner.closed)

	// Close es idempotente sobre el cache ya vaciado.
	require.NoError(t, factory.Close())
	assert.Equal(t, 1, inner.closed)
}

func TestFactoryHasAllFamilies(t *testing.T) {
	factory := NewFactory(0, 0)

	for _, family := range []models.Family{models.FamilyOpenAI, models.FamilyFireworks, models.FamilyGemini} {
		_, exists := factory.builders[family]
		assert.True(t, exists, "familia %s sin builder", family)
	}
}
