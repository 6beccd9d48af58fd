package ai

import (
	"context"

	domerrors "github.com/Tomas-vilte/DoraPulse/internal/domain/errors"
	"github.com/Tomas-vilte/DoraPulse/internal/domain/models"
	"github.com/Tomas-vilte/DoraPulse/internal/domain/ports"
	"github.com/Tomas-vilte/DoraPulse/internal/logger"
)

// ProviderFactory construye el proveedor de completions de un modelo con la
// credencial ya resuelta.
type ProviderFactory interface {
	Create(ctx context.Context, model models.Model, credential string) (ports.CompletionProvider, error)
}

// Gateway orquesta un request de IA: valida el modelo, resuelve la
// credencial, arma el prompt e invoca al proveedor exactamente una vez.
type Gateway struct {
	resolver *CredentialResolver
	factory  ProviderFactory
}

// NewGateway crea el gateway de IA.
func NewGateway(resolver *CredentialResolver, factory ProviderFactory) *Gateway {
	return &Gateway{
		resolver: resolver,
		factory:  factory,
	}
}

// Summarize runs the parameterized metric-summary flow: every data+model
// endpoint goes through here with its own SummaryKind. El orden es fijo:
// modelo, credencial y recien despues el prompt.
func (g *Gateway) Summarize(ctx context.Context, kind SummaryKind, modelName string, data map[string]interface{}) (string, error) {
	model, err := g.validateModel(modelName)
	if err != nil {
		return "", err
	}

	credential, err := g.credentialFor(ctx, model)
	if err != nil {
		return "", err
	}

	doc, err := BuildSummaryPrompt(kind, data)
	if err != nil {
		return "", err
	}

	return g.complete(ctx, model, credential, doc)
}

// Agent runs a feature-tagged agent request.
func (g *Gateway) Agent(ctx context.Context, featureTag, query, modelName string, data map[string]interface{}) (string, error) {
	model, err := g.validateModel(modelName)
	if err != nil {
		return "", err
	}

	credential, err := g.credentialFor(ctx, model)
	if err != nil {
		return "", err
	}

	feature, ok := models.ParseFeature(featureTag)
	if !ok {
		return "", domerrors.NewInvalidFeatureError(featureTag)
	}

	doc, err := BuildAgentPrompt(feature, query, data)
	if err != nil {
		return "", err
	}

	return g.complete(ctx, model, credential, doc)
}

// ContributorSummary summarizes contributor data. An empty model name falls
// back to the default model; a present but unknown name is a hard error.
func (g *Gateway) ContributorSummary(ctx context.Context, modelName string, contributorData map[string]interface{}) (string, error) {
	if modelName == "" {
		modelName = models.DefaultModel.String()
	}

	return g.Summarize(ctx, KindContributorSummary, modelName, contributorData)
}

func (g *Gateway) validateModel(modelName string) (models.Model, error) {
	model, ok := models.ParseModel(modelName)
	if !ok {
		return "", domerrors.NewInvalidModelError(modelName)
	}
	return model, nil
}

// credentialFor resolves the model's credential before any prompt work.
func (g *Gateway) credentialFor(ctx context.Context, model models.Model) (string, error) {
	credential, ok := g.resolver.Resolve(model)
	if !ok {
		logger.Warn(ctx, "credencial no configurada", "model", model.String(), "family", string(model.CredentialFamily()))
		return "", domerrors.NewMissingCredentialError(model.String(), string(model.CredentialFamily()))
	}
	return credential, nil
}

// complete builds the provider and performs the single completion call of
// the request.
func (g *Gateway) complete(ctx context.Context, model models.Model, credential string, doc Document) (string, error) {
	provider, err := g.factory.Create(ctx, model, credential)
	if err != nil {
		return "", domerrors.NewUpstreamError(string(model.CredentialFamily()), err)
	}

	resp, err := provider.Complete(ctx, &ports.CompletionRequest{
		Model: model,
		Messages: []ports.Message{
			{Role: "user", Content: doc.Render()},
		},
	})
	if err != nil {
		return "", err
	}

	logger.Debug(ctx, "completion exitosa", "provider", provider.Name(), "model", model.String())
	return resp.Content, nil
}
