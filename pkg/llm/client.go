package llm

import (
	"context"
	"time"
)

type EnhanceInput struct {
	MerchantName     string
	Notes            string
	AdditionalPrompt string
}

type EnhanceResult struct {
	Story     string
	ModelUsed string
}

type Enhancer interface {
	Enhance(ctx context.Context, input EnhanceInput) (*EnhanceResult, error)
}

// Config is shared by every provider. Zero values fall back to provider defaults.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

const defaultTimeout = 60 * time.Second

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultTimeout
	}
	return c.Timeout
}
