package ai

import (
	"github.com/Tomas-vilte/DoraPulse/internal/config"
	"github.com/Tomas-vilte/DoraPulse/internal/domain/models"
)

// CredentialResolver resuelve la credencial de un modelo contra la
// configuración construida al inicio del proceso. Nunca falla: la ausencia
// de credencial es un estado observable, no un error.
type CredentialResolver struct {
	cfg *config.Config
}

// NewCredentialResolver crea un resolver sobre la configuración dada.
func NewCredentialResolver(cfg *config.Config) *CredentialResolver {
	return &CredentialResolver{cfg: cfg}
}

// Resolve returns the credential for the model's family and whether a
// non-empty credential is configured.
func (r *CredentialResolver) Resolve(model models.Model) (string, bool) {
	return r.cfg.Credential(model.CredentialFamily())
}

// AvailableModels returns the models whose credential family has a
// configured secret, as a name -> name mapping. When no family has a
// credential the full static set is returned so a UI can still render
// choices before secrets are configured.
func (r *CredentialResolver) AvailableModels() map[string]string {
	available := make(map[string]string)
	for _, model := range models.AllModels() {
		if _, ok := r.Resolve(model); ok {
			available[model.String()] = model.String()
		}
	}

	if len(available) == 0 {
		for _, model := range models.AllModels() {
			available[model.String()] = model.String()
		}
	}

	return available
}
