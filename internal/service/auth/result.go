package auth

import "github.com/jahboukie/inner-architect/internal/domain"

// AuthResult is returned by Register, Login and Refresh operations.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	User         *domain.User
}
