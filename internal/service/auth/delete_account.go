package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jahboukie/inner-architect/internal/domain"
	"github.com/jahboukie/inner-architect/pkg/ctxutil"
)

// DeleteAccount anonymizes the authenticated user in place: email and name
// are scrubbed, every refresh token is revoked and any paid subscription is
// canceled at Stripe. Chat rows survive for aggregate statistics.
func (s *Service) DeleteAccount(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	sub, err := s.subs.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("auth.DeleteAccount get subscription: %w", err)
	}

	// Stripe cancellation is attempted first but never blocks deletion: an
	// orphaned Stripe subscription is recoverable from the dashboard, a
	// half-deleted account is not.
	if sub != nil && sub.StripeSubscriptionID != "" && s.billing.Enabled() {
		if err := s.billing.CancelNow(ctx, sub.StripeSubscriptionID); err != nil {
			s.log.ErrorContext(ctx, "stripe cancellation during account deletion failed",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()))
		}
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.Anonymize(txCtx, userID); err != nil {
			return fmt.Errorf("anonymize user: %w", err)
		}
		if err := s.tokens.RevokeAllByUser(txCtx, userID); err != nil {
			return fmt.Errorf("revoke tokens: %w", err)
		}
		if sub != nil && sub.Status != domain.SubscriptionCanceled {
			sub.Status = domain.SubscriptionCanceled
			sub.StripeSubscriptionID = ""
			if _, err := s.subs.Update(txCtx, sub); err != nil {
				return fmt.Errorf("cancel local subscription: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("auth.DeleteAccount: %w", err)
	}

	s.log.InfoContext(ctx, "account deleted", slog.String("user_id", userID.String()))
	return nil
}
