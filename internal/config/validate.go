package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be within [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.LLM.AnthropicAPIKey == "" && c.LLM.OpenAIAPIKey == "" {
		return fmt.Errorf("at least one LLM provider key must be configured (Anthropic or OpenAI)")
	}

	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be > 0 (got %d)", c.LLM.MaxTokens)
	}

	if c.Chat.HistoryDepth < 0 {
		return fmt.Errorf("chat.history_depth must be >= 0 (got %d)", c.Chat.HistoryDepth)
	}
	if c.Chat.MaxMessageLen <= 0 {
		return fmt.Errorf("chat.max_message_len must be > 0 (got %d)", c.Chat.MaxMessageLen)
	}

	if c.Stripe.SecretKey != "" {
		if c.Stripe.PremiumPriceID == "" || c.Stripe.ProfessionalPriceID == "" {
			return fmt.Errorf("stripe price ids are required when stripe.secret_key is set")
		}
	}

	if c.Quota.RetentionDays <= 0 {
		return fmt.Errorf("quota.retention_days must be > 0 (got %d)", c.Quota.RetentionDays)
	}

	return nil
}
