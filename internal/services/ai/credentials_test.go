package ai

import (
	"testing"

	"github.com/Tomas-vilte/DoraPulse/internal/config"
	"github.com/Tomas-vilte/DoraPulse/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	resolver := NewCredentialResolver(&config.Config{
		FireworksAPIKey: "fw-key",
	})

	// Ambos modelos llama comparten la credencial de Fireworks.
	key, ok := resolver.Resolve(models.ModelLlama405B)
	assert.True(t, ok)
	assert.Equal(t, "fw-key", key)

	key, ok = resolver.Resolve(models.ModelLlama70B)
	assert.True(t, ok)
	assert.Equal(t, "fw-key", key)

	_, ok = resolver.Resolve(models.ModelGPT4o)
	assert.False(t, ok)
	_, ok = resolver.Resolve(models.ModelGeminiFlash)
	assert.False(t, ok)
}

func TestAvailableModelsSubset(t *testing.T) {
	resolver := NewCredentialResolver(&config.Config{
		OpenAIAPIKey: "sk-test",
		GeminiAPIKey: "g-test",
	})

	available := resolver.AvailableModels()

	assert.Len(t, available, 2)
	assert.Equal(t, "gpt-4o", available["gpt-4o"])
	assert.Equal(t, "gemini-1.5-flash", available["gemini-1.5-flash"])
	assert.NotContains(t, available, "llama-3.1-405b")
}

func TestAvailableModelsFireworksCoversBothLlamas(t *testing.T) {
	resolver := NewCredentialResolver(&config.Config{
		FireworksAPIKey: "fw-key",
	})

	available := resolver.AvailableModels()

	assert.Len(t, available, 2)
	assert.Contains(t, available, "llama-3.1-405b")
	assert.Contains(t, available, "llama-3.1-70b")
}

func TestAvailableModelsFallbackWithoutCredentials(t *testing.T) {
	resolver := NewCredentialResolver(&config.Config{})

	available := resolver.AvailableModels()

	// Sin ninguna credencial se devuelve el set completo para que la UI
	// pueda renderizar las opciones.
	assert.Len(t, available, 4)
	for _, model := range models.AllModels() {
		assert.Equal(t, model.String(), available[model.String()])
	}
}
