package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/jahboukie/inner-architect/internal/config"
)

// Client fans one Complete call out over the configured providers with
// per-call timeout and exponential-backoff retries. Providers are tried
// in order; the next one is only consulted after the previous exhausted
// its retries.
type Client struct {
	providers  []Provider
	timeout    time.Duration
	maxRetries uint64
	maxTokens  int
	log        *slog.Logger
}

// NewClient builds a Client from config. Providers without an API key are
// skipped; at least one must remain (config validation guarantees this).
func NewClient(cfg config.LLMConfig, logger *slog.Logger) *Client {
	var providers []Provider
	if cfg.AnthropicAPIKey != "" {
		providers = append(providers, NewAnthropicProvider(cfg.AnthropicAPIKey, cfg.AnthropicModel))
	}
	if cfg.OpenAIAPIKey != "" {
		providers = append(providers, NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel))
	}

	return &Client{
		providers:  providers,
		timeout:    cfg.RequestTimeout,
		maxRetries: cfg.MaxRetries,
		maxTokens:  cfg.MaxTokens,
		log:        logger.With("component", "llm"),
	}
}

// Complete runs the request against the provider chain.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	if len(c.providers) == 0 {
		return "", ErrNoProvider
	}
	// Anthropic rejects max_tokens < 1, so an unset value takes the
	// configured ceiling.
	if req.MaxTokens <= 0 {
		req.MaxTokens = c.maxTokens
	}

	var lastErr error
	for _, provider := range c.providers {
		reply, err := c.completeWithRetry(ctx, provider, req)
		if err == nil {
			return reply, nil
		}
		lastErr = err
		c.log.WarnContext(ctx, "llm provider failed, trying next",
			slog.String("provider", provider.Name()),
			slog.String("error", err.Error()))

		// Do not fall through to the next provider on caller cancellation.
		if ctx.Err() != nil {
			break
		}
	}

	return "", fmt.Errorf("all llm providers failed: %w", lastErr)
}

func (c *Client) completeWithRetry(ctx context.Context, provider Provider, req Request) (string, error) {
	backoff := retry.WithMaxRetries(c.maxRetries, retry.NewExponential(500*time.Millisecond))

	var reply string
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		out, err := provider.Complete(callCtx, req)
		if err != nil {
			return retry.RetryableError(err)
		}
		reply = out
		return nil
	})
	if err != nil {
		return "", err
	}
	return reply, nil
}
