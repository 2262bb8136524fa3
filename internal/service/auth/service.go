// Package auth implements registration, login, token rotation, email
// verification and account deletion.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jahboukie/inner-architect/internal/config"
	"github.com/jahboukie/inner-architect/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, displayName string) (*domain.User, error)
	SetEmailVerified(ctx context.Context, id uuid.UUID) error
	Anonymize(ctx context.Context, id uuid.UUID) error
}

// tokenRepo defines the refresh token repository interface needed by auth service.
type tokenRepo interface {
	Create(ctx context.Context, t *domain.RefreshToken) error
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
}

// emailTokenRepo defines the email token repository interface needed by auth service.
type emailTokenRepo interface {
	Create(ctx context.Context, t *domain.EmailToken) error
	GetByHash(ctx context.Context, tokenHash string, purpose domain.EmailTokenPurpose) (*domain.EmailToken, error)
	Consume(ctx context.Context, id uuid.UUID) error
}

// subscriptionRepo defines the subscription repository interface needed by auth service.
type subscriptionRepo interface {
	Create(ctx context.Context, s *domain.Subscription) (*domain.Subscription, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Subscription, error)
	Update(ctx context.Context, s *domain.Subscription) (*domain.Subscription, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// mailer defines the outbound email interface needed by auth service.
type mailer interface {
	SendVerification(ctx context.Context, to, displayName, token string) error
}

// billingClient defines the Stripe operations needed for account deletion.
type billingClient interface {
	Enabled() bool
	CancelNow(ctx context.Context, stripeSubID string) error
}

// Service implements auth operations.
type Service struct {
	log         *slog.Logger
	users       userRepo
	tokens      tokenRepo
	emailTokens emailTokenRepo
	subs        subscriptionRepo
	tx          txManager
	jwt         jwtManager
	mail        mailer
	billing     billingClient
	cfg         config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenRepo,
	emailTokens emailTokenRepo,
	subs subscriptionRepo,
	tx txManager,
	jwt jwtManager,
	mail mailer,
	billing billingClient,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "auth"),
		users:       users,
		tokens:      tokens,
		emailTokens: emailTokens,
		subs:        subs,
		tx:          tx,
		jwt:         jwt,
		mail:        mail,
		billing:     billing,
		cfg:         cfg,
	}
}

// issueTokens generates access and refresh tokens for the given user, stores
// the refresh token hash in DB, and returns an AuthResult.
func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	refreshToken := &domain.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashRefresh,
		ExpiresAt: time.Now().Add(s.cfg.RefreshTokenTTL),
	}
	if err := s.tokens.Create(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		User:         user,
	}, nil
}
