package service

import (
	"context"
	"crypto/hmac"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-service/internal/crypto"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the
// session/reset-token lifecycle using a UserRepository for persistence,
// a PasswordHasher for digests, and a TokenGenerator for opaque tokens.
type authService struct {
	// userRepository is the data-access layer used to create, look up,
	// and mutate users.
	userRepository store.UserRepository

	// hasher produces and verifies password digests.
	hasher crypto.PasswordHasher

	// tokens is the CSPRNG-backed source of session and reset tokens.
	tokens crypto.TokenGenerator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// repository and cryptographic capabilities.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokens crypto.TokenGenerator, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates that both email and password are non-empty, hashes the
// password, and delegates persistence to the UserRepository. The plaintext
// password never reaches storage and the returned user carries no digest.
//
// Returns:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrUserAlreadyExists if the email is already registered.
//   - A wrapped storage error on any other repository failure.
func (a *authService) Register(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	digest, err := a.hasher.Hash(password)
	if err != nil {
		log.Err(err).Str("email", email).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, email, digest)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Err(err).Str("email", email).Msg("email already registered")
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	registeredUser.PasswordDigest = ""
	return registeredUser, nil
}

// ValidLogin authenticates the supplied credentials.
//
// A missing account and a wrong password are indistinguishable to the
// caller: both produce (false, nil). This is the one deliberate
// error-as-value path of the service, so credential failures are never
// mistaken for systemic failures.
func (a *authService) ValidLogin(ctx context.Context, email, password string) (bool, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return false, nil
	}

	foundUser, err := a.userRepository.FindUserBy(ctx, map[store.UserField]any{
		store.FieldEmail: email,
	})
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return false, nil
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return false, fmt.Errorf("user search by email failed: %w", err)
	}

	return a.hasher.Verify(password, foundUser.PasswordDigest), nil
}

// CreateSession issues a fresh opaque session token for the user identified
// by email and persists it.
//
// Should only be called after ValidLogin has succeeded. A store-level
// session-token uniqueness conflict is a negligible-probability collision
// and is retried exactly once with a new token.
//
// Returns the token, or store.ErrNoUserWasFound if the email is unknown.
func (a *authService) CreateSession(ctx context.Context, email string) (string, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserBy(ctx, map[store.UserField]any{
		store.FieldEmail: email,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return "", err
	}

	token, err := a.persistFreshToken(ctx, foundUser.UserID, store.FieldSessionToken, store.ErrSessionTokenConflict)
	if err != nil {
		return "", err
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("session created")
	return token, nil
}

// UserFromSessionToken resolves a session token to its owning user.
//
// An empty or unknown token yields (zero, false, nil): being logged out is
// a normal condition, not an error. A non-nil error indicates a storage
// failure.
func (a *authService) UserFromSessionToken(ctx context.Context, sessionToken string) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	if sessionToken == "" {
		return models.User{}, false, nil
	}

	foundUser, err := a.userRepository.FindUserBy(ctx, map[store.UserField]any{
		store.FieldSessionToken: sessionToken,
	})
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, false, nil
		}
		log.Err(err).Msg("user search by session token failed")
		return models.User{}, false, fmt.Errorf("user search by session token failed: %w", err)
	}

	return foundUser, true, nil
}

// DestroySession clears the session token of the given user. The update
// writes NULL regardless of the current value, so destroying an already
// destroyed session succeeds.
//
// Returns store.ErrNoUserWasFound if no user with userID exists.
func (a *authService) DestroySession(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	err := a.userRepository.UpdateUser(ctx, userID, map[store.UserField]any{
		store.FieldSessionToken: "",
	})
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("session destruction failed")
		return err
	}

	log.Debug().Int64("id", userID).Msg("session destroyed")
	return nil
}

// ResetPasswordToken issues a fresh password-reset token for the user
// identified by email, overwriting any outstanding one: only the latest
// reset request remains valid.
//
// Unlike ValidLogin, an unknown email is a legitimate error here — the
// caller asserts the account exists from prior registration.
func (a *authService) ResetPasswordToken(ctx context.Context, email string) (string, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserBy(ctx, map[store.UserField]any{
		store.FieldEmail: email,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return "", err
	}

	token, err := a.persistFreshToken(ctx, foundUser.UserID, store.FieldResetToken, store.ErrResetTokenConflict)
	if err != nil {
		return "", err
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("reset token issued")
	return token, nil
}

// UpdatePassword consumes a reset token and replaces the user's password.
//
// On a token match the new digest is written and the reset token cleared in
// a single repository update, so no interleaving can observe a new digest
// with a stale token still set.
//
// Returns:
//   - store.ErrNoUserWasFound if the email is unknown.
//   - ErrInvalidResetToken if no token is outstanding or it does not match.
func (a *authService) UpdatePassword(ctx context.Context, email, resetToken, newPassword string) error {
	log := logger.FromContext(ctx)

	if newPassword == "" {
		return ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserBy(ctx, map[store.UserField]any{
		store.FieldEmail: email,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return err
	}

	if foundUser.ResetToken == "" || !hmac.Equal([]byte(foundUser.ResetToken), []byte(resetToken)) {
		log.Error().Int64("id", foundUser.UserID).Msg("reset token mismatch")
		return ErrInvalidResetToken
	}

	digest, err := a.hasher.Hash(newPassword)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	// single atomic update: digest replaced, token consumed
	err = a.userRepository.UpdateUser(ctx, foundUser.UserID, map[store.UserField]any{
		store.FieldPasswordDigest: digest,
		store.FieldResetToken:     "",
	})
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("password update failed")
		return err
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("password updated")
	return nil
}

// persistFreshToken generates a new opaque token and stores it in the given
// field of the user row. On a uniqueness conflict (conflictErr) a second
// token is generated and persisted once more; a repeated conflict is
// surfaced to the caller.
func (a *authService) persistFreshToken(ctx context.Context, userID int64, field store.UserField, conflictErr error) (string, error) {
	log := logger.FromContext(ctx)

	for attempt := 0; attempt < 2; attempt++ {
		token, err := a.tokens.NewToken()
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
		}

		err = a.userRepository.UpdateUser(ctx, userID, map[store.UserField]any{
			field: token,
		})
		if err == nil {
			return token, nil
		}
		if !errors.Is(err, conflictErr) {
			return "", err
		}

		log.Warn().Int64("id", userID).Str("field", string(field)).Msg("token collision detected, retrying once")
	}

	return "", conflictErr
}
