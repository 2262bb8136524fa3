package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jahboukie/inner-architect/internal/domain"
)

// Register creates a new user with a free subscription row and mails the
// email verification link. Returns ErrAlreadyExists if the email is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.DisplayName = strings.TrimSpace(input.DisplayName)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// User, free subscription row and verification token are created in one
	// transaction. Email uniqueness is enforced by the DB constraint.
	var (
		createdUser *domain.User
		rawVerify   string
	)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.users.Create(txCtx, &domain.User{
			ID:           uuid.New(),
			Email:        input.Email,
			DisplayName:  input.DisplayName,
			PasswordHash: string(hash),
			Role:         domain.RoleUser,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		if _, err := s.subs.Create(txCtx, &domain.Subscription{
			ID:     uuid.New(),
			UserID: user.ID,
			Plan:   domain.PlanFree,
			Status: domain.SubscriptionActive,
		}); err != nil {
			return fmt.Errorf("create subscription: %w", err)
		}

		raw, tokenHash, err := s.jwt.GenerateRefreshToken()
		if err != nil {
			return fmt.Errorf("generate verification token: %w", err)
		}
		if err := s.emailTokens.Create(txCtx, &domain.EmailToken{
			ID:        uuid.New(),
			UserID:    user.ID,
			TokenHash: tokenHash,
			Purpose:   domain.EmailTokenVerify,
			ExpiresAt: time.Now().Add(s.cfg.VerifyTokenTTL),
		}); err != nil {
			return fmt.Errorf("store verification token: %w", err)
		}

		createdUser = user
		rawVerify = raw
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	// Verification mail is best effort: the account exists either way and
	// the user can request a resend.
	if err := s.mail.SendVerification(ctx, createdUser.Email, createdUser.DisplayName, rawVerify); err != nil {
		s.log.ErrorContext(ctx, "verification email failed",
			slog.String("user_id", createdUser.ID.String()),
			slog.String("error", err.Error()))
	}

	result, err := s.issueTokens(ctx, createdUser)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", createdUser.ID.String()))

	return result, nil
}
