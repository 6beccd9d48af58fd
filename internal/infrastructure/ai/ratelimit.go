package ai

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Tomas-vilte/DoraPulse/internal/domain/ports"
	"golang.org/x/time/rate"
)

// RateLimiterConfig configures the token-bucket limiter applied to every
// outbound completion call.
type RateLimiterConfig struct {
	RequestsPerMinute float64
	Burst             int
	// Timeout bounds a single completion call. The gateway makes at most
	// one call per inbound request, so there is no retry loop here.
	Timeout time.Duration
}

// DefaultRateLimiterConfig returns sensible defaults.
var DefaultRateLimiterConfig = RateLimiterConfig{
	RequestsPerMinute: 60,
	Burst:             10,
	Timeout:           60 * time.Second,
}

var _ ports.CompletionProvider = (*RateLimitedProvider)(nil)

// RateLimitedProvider wraps a CompletionProvider with token-bucket rate
// limiting and a bounded per-call timeout.
type RateLimitedProvider struct {
	inner   ports.CompletionProvider
	limiter *rate.Limiter
	cfg     RateLimiterConfig
}

// NewRateLimitedProvider wraps inner with rate limiting using cfg.
func NewRateLimitedProvider(inner ports.CompletionProvider, cfg RateLimiterConfig) (*RateLimitedProvider, error) {
	if cfg.RequestsPerMinute <= 0 {
		return nil, fmt.Errorf("rate limiter: RequestsPerMinute must be > 0")
	}
	if cfg.Burst <= 0 {
		return nil, fmt.Errorf("rate limiter: Burst must be > 0")
	}

	perSecond := rate.Limit(cfg.RequestsPerMinute / 60.0)
	return &RateLimitedProvider{
		inner:   inner,
		limiter: rate.NewLimiter(perSecond, cfg.Burst),
		cfg:     cfg,
	}, nil
}

// Name delegates to the inner provider.
func (r *RateLimitedProvider) Name() string { return r.inner.Name() }

// Close releases the inner provider's resources when it holds any. El
// cliente de Gemini mantiene una conexion abierta; el resto no.
func (r *RateLimitedProvider) Close() error {
	if closer, ok := r.inner.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Complete waits for a rate limit token then calls the inner provider once,
// bounded by the configured timeout.
func (r *RateLimitedProvider) Complete(ctx context.Context, req *ports.CompletionRequest) (*ports.CompletionResponse, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	return r.inner.Complete(ctx, req)
}
