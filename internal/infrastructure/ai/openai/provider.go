package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	domerrors "github.com/Tomas-vilte/DoraPulse/internal/domain/errors"
	"github.com/Tomas-vilte/DoraPulse/internal/domain/models"
	"github.com/Tomas-vilte/DoraPulse/internal/domain/ports"
)

const (
	openAIBaseURL    = "https://api.openai.com/v1"
	fireworksBaseURL = "https://api.fireworks.ai/inference/v1"
)

var _ ports.CompletionProvider = (*Provider)(nil)

// Provider implements ports.CompletionProvider over any OpenAI-compatible
// chat completions API. Fireworks exposes the same wire format, so both
// families share this client and differ only in base URL and model mapping.
type Provider struct {
	client   *http.Client
	name     string
	apiKey   string
	baseURL  string
	modelIDs map[models.Model]string
}

// NewOpenAIProvider creates a Provider backed by the OpenAI API.
func NewOpenAIProvider(apiKey string, timeout time.Duration) (*Provider, error) {
	return newProvider("openai", apiKey, openAIBaseURL, timeout, map[models.Model]string{
		models.ModelGPT4o: "gpt-4o",
	})
}

// NewFireworksProvider creates a Provider backed by the Fireworks API.
func NewFireworksProvider(apiKey string, timeout time.Duration) (*Provider, error) {
	return newProvider("fireworks", apiKey, fireworksBaseURL, timeout, map[models.Model]string{
		models.ModelLlama405B: "accounts/fireworks/models/llama-v3p1-405b-instruct",
		models.ModelLlama70B:  "accounts/fireworks/models/llama-v3p1-70b-instruct",
	})
}

func newProvider(name, apiKey, baseURL string, timeout time.Duration, modelIDs map[models.Model]string) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%s provider: apiKey is required", name)
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Provider{
		client:   &http.Client{Timeout: timeout},
		name:     name,
		apiKey:   apiKey,
		baseURL:  baseURL,
		modelIDs: modelIDs,
	}, nil
}

// Name returns the provider name.
func (p *Provider) Name() string { return p.name }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete sends a chat completion request and returns the response text.
func (p *Provider) Complete(ctx context.Context, req *ports.CompletionRequest) (*ports.CompletionResponse, error) {
	wireModel, ok := p.modelIDs[req.Model]
	if !ok {
		return nil, domerrors.NewInvalidModelError(req.Model.String())
	}

	messages := make([]chatMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, chatMessage{Role: m.Role, Content: m.Content})
	}

	body, err := json.Marshal(chatRequest{
		Model:       wireModel,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%s complete: marshal: %w", p.name, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s complete: build request: %w", p.name, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, domerrors.NewUpstreamError(p.name, err)
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, domerrors.NewUpstreamError(p.name, fmt.Errorf("read response: %w", err))
	}

	var resp chatResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, domerrors.NewUpstreamError(p.name, fmt.Errorf("decode response (status %d): %w", httpResp.StatusCode, err))
	}

	if resp.Error != nil {
		return nil, domerrors.NewUpstreamError(p.name, fmt.Errorf("api error (%s): %s", resp.Error.Type, resp.Error.Message))
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, domerrors.NewUpstreamError(p.name, fmt.Errorf("unexpected status %d", httpResp.StatusCode))
	}
	if len(resp.Choices) == 0 {
		return nil, domerrors.NewUpstreamError(p.name, fmt.Errorf("empty choices in response"))
	}

	return &ports.CompletionResponse{
		Content: resp.Choices[0].Message.Content,
		Model:   resp.Model,
	}, nil
}
