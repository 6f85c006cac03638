package llm

import (
	"context"
	"errors"
	"log"

	"jobdeck/internal/config"
)

var ErrUnavailable = errors.New("llm provider unavailable")

// Client generates a single text completion. Both SDK-backed
// implementations satisfy it so the kit generator does not care which
// vendor is configured.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Model() string
}

// NewFromConfig picks the configured provider. A nil return means no
// provider is configured and callers should fall back to templates.
func NewFromConfig(cfg config.LLMConfig, logger *log.Logger) Client {
	if cfg.APIKey == "" {
		if logger != nil {
			logger.Printf("[LLM] No API key configured, kits fall back to templates")
		}
		return nil
	}
	switch cfg.Provider {
	case "anthropic":
		return NewAnthropic(cfg)
	case "openai":
		return NewOpenAI(cfg)
	default:
		if logger != nil {
			logger.Printf("[LLM] Unknown provider %q, kits fall back to templates", cfg.Provider)
		}
		return nil
	}
}
