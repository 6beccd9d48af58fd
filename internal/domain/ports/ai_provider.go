package ports

import (
	"context"

	"github.com/Tomas-vilte/DoraPulse/internal/domain/models"
)

// Message is a single role-tagged turn in a conversation.
type Message struct {
	Role    string
	Content string
}

// CompletionRequest holds parameters for a completion call.
type CompletionRequest struct {
	Model       models.Model
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// CompletionResponse holds the result of a completion call.
type CompletionResponse struct {
	Content string
	Model   string
}

// CompletionProvider envuelve un backend de LLM. Las implementaciones son el
// único punto de I/O de red hacia los proveedores de completions.
type CompletionProvider interface {
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)
	Name() string
}
