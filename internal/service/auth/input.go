package auth

import (
	"net/mail"
	"strings"

	"github.com/jahboukie/inner-architect/internal/domain"
)

// RegisterInput holds parameters for the register operation.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
	} else if len(i.Email) > 255 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}

	if len(i.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	} else if len(i.Password) > 72 {
		// bcrypt trims beyond 72 bytes
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if i.DisplayName == "" {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "required"})
	} else if len(i.DisplayName) > 100 {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the login operation.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for the token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProfileInput holds parameters for the profile update operation.
type UpdateProfileInput struct {
	DisplayName string
}

// Validate validates the profile update input.
func (i UpdateProfileInput) Validate() error {
	name := strings.TrimSpace(i.DisplayName)
	if name == "" {
		return domain.NewValidationError("display_name", "required")
	}
	if len(name) > 100 {
		return domain.NewValidationError("display_name", "too long")
	}
	return nil
}
