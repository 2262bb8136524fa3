package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jahboukie/inner-architect/internal/domain"
	"github.com/jahboukie/inner-architect/pkg/ctxutil"
)

// Me returns the authenticated user's profile.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}

// UpdateProfile changes the authenticated user's display name.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.UpdateProfile(ctx, userID, strings.TrimSpace(input.DisplayName))
	if err != nil {
		return nil, fmt.Errorf("auth.UpdateProfile: %w", err)
	}
	return user, nil
}
