package validators

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/MKhiriev/go-auth-service/models"
)

const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldResetToken  = "reset_token"
	FieldNewPassword = "new_password"
)

// maxPasswordLength is the bcrypt input limit: bytes beyond 72 would be
// silently ignored by the hash, so longer passwords are rejected outright.
const maxPasswordLength = 72

type AuthValidator struct {
}

func NewAuthValidator() Validator {
	return &AuthValidator{}
}

func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.PasswordResetRequest:
		return v.validateEmail(value.Email)
	case *models.PasswordResetRequest:
		return v.validateEmail(value.Email)

	case models.PasswordUpdateRequest:
		return v.validatePasswordUpdate(ctx, value, fields...)
	case *models.PasswordUpdateRequest:
		return v.validatePasswordUpdate(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *AuthValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if err := v.validateEmail(creds.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := v.validatePassword(creds.Password); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *AuthValidator) validatePasswordUpdate(_ context.Context, req models.PasswordUpdateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldResetToken, FieldNewPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if err := v.validateEmail(req.Email); err != nil {
				return err
			}
		case FieldResetToken:
			if req.ResetToken == "" {
				return ErrEmptyResetToken
			}
		case FieldNewPassword:
			if err := v.validatePassword(req.NewPassword); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *AuthValidator) validateEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}

	// mail.ParseAddress accepts "Name <addr>" forms; require the bare
	// address so the stored email equals what was submitted
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}

	return nil
}

func (v *AuthValidator) validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) > maxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}
