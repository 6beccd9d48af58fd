package gemini

import (
	"context"
	"fmt"
	"strings"

	domerrors "github.com/Tomas-vilte/DoraPulse/internal/domain/errors"
	"github.com/Tomas-vilte/DoraPulse/internal/domain/ports"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var _ ports.CompletionProvider = (*Provider)(nil)

// Provider implements ports.CompletionProvider over the Gemini API.
type Provider struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
}

// NewProvider creates a Gemini-backed completion provider.
func NewProvider(ctx context.Context, apiKey, modelName string) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini provider: apiKey is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Provider{
		client:    client,
		model:     client.GenerativeModel(modelName),
		modelName: modelName,
	}, nil
}

// Name returns the provider name.
func (p *Provider) Name() string { return "gemini" }

// Close releases the underlying client.
func (p *Provider) Close() error {
	return p.client.Close()
}

// Complete sends the conversation as a single generation request. The
// gateway only ever sends one user turn, so turns are joined in order.
func (p *Provider) Complete(ctx context.Context, req *ports.CompletionRequest) (*ports.CompletionResponse, error) {
	var prompt strings.Builder
	for i, m := range req.Messages {
		if i > 0 {
			prompt.WriteString("\n\n")
		}
		prompt.WriteString(m.Content)
	}

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		return nil, domerrors.NewUpstreamError("gemini", err)
	}

	text := formatResponse(resp)
	if text == "" {
		return nil, domerrors.NewUpstreamError("gemini", fmt.Errorf("empty response from model"))
	}

	return &ports.CompletionResponse{
		Content: text,
		Model:   p.modelName,
	}, nil
}

func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || resp.Candidates == nil {
		return ""
	}

	var formattedContent strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				formattedContent.WriteString(fmt.Sprintf("%v", part))
			}
		}
	}
	return formattedContent.String()
}
