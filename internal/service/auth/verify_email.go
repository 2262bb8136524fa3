package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jahboukie/inner-architect/internal/auth"
	"github.com/jahboukie/inner-architect/internal/domain"
	"github.com/jahboukie/inner-architect/pkg/ctxutil"
)

// VerifyEmail consumes a verification token and marks the user's email as
// verified. Invalid, expired and already-used tokens all return
// ErrUnauthorized so the endpoint leaks nothing about token state.
func (s *Service) VerifyEmail(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return domain.NewValidationError("token", "required")
	}

	hash := auth.HashToken(rawToken)

	token, err := s.emailTokens.GetByHash(ctx, hash, domain.EmailTokenVerify)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("auth.VerifyEmail get token: %w", err)
	}
	if !token.IsUsable(time.Now()) {
		return domain.ErrUnauthorized
	}

	// Consume reports ErrConflict when a concurrent request won the race.
	if err := s.emailTokens.Consume(ctx, token.ID); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("auth.VerifyEmail consume token: %w", err)
	}

	if err := s.users.SetEmailVerified(ctx, token.UserID); err != nil {
		return fmt.Errorf("auth.VerifyEmail mark verified: %w", err)
	}

	s.log.InfoContext(ctx, "email verified", slog.String("user_id", token.UserID.String()))
	return nil
}

// ResendVerification issues a fresh verification token and mails it.
// No-op for already verified accounts.
func (s *Service) ResendVerification(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("auth.ResendVerification get user: %w", err)
	}
	if user.EmailVerified {
		return nil
	}

	raw, tokenHash, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return fmt.Errorf("auth.ResendVerification generate token: %w", err)
	}
	if err := s.emailTokens.Create(ctx, &domain.EmailToken{
		UserID:    user.ID,
		TokenHash: tokenHash,
		Purpose:   domain.EmailTokenVerify,
		ExpiresAt: time.Now().Add(s.cfg.VerifyTokenTTL),
	}); err != nil {
		return fmt.Errorf("auth.ResendVerification store token: %w", err)
	}

	if err := s.mail.SendVerification(ctx, user.Email, user.DisplayName, raw); err != nil {
		return fmt.Errorf("auth.ResendVerification send: %w", err)
	}
	return nil
}
