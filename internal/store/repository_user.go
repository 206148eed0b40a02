package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
)

// userRepository is the SQL-backed implementation of [UserRepository]. It
// works against both supported dialects through the [DB] wrapper, which
// carries the placeholder format and the driver-error classifier.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with the server-assigned UserID.
//
// Error handling:
//   - unique violation on users.email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, email, passwordDigest string) (models.User, error) {
	log := logger.FromContext(ctx)

	user := models.User{
		Email:          email,
		PasswordDigest: passwordDigest,
		CreatedAt:      time.Now().UTC(),
	}

	insert := r.db.buildInsertUser(email, passwordDigest, user.CreatedAt)

	if r.db.dialect == DialectPostgres {
		query, args, err := insert.Suffix("RETURNING user_id").ToSql()
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: insert failed")
			return models.User{}, r.classifyCreateError(err)
		}

		return user, nil
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: insert failed")
		return models.User{}, r.classifyCreateError(err)
	}

	// SQLite has no RETURNING on older versions; LastInsertId is the rowid
	// of the freshly inserted user.
	user.UserID, err = result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: reading last insert id")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

func (r *userRepository) classifyCreateError(err error) error {
	if r.db.errorClassifier.UniqueViolation(err) == EmailViolation {
		return ErrEmailAlreadyExists
	}
	return fmt.Errorf("unexpected DB error: %w", err)
}

// FindUserBy retrieves the single user record matching all provided
// field/value conditions.
//
// Error handling:
//   - unknown predicate field → [ErrAmbiguousQuery] (no query is issued).
//   - empty result set → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserBy(ctx context.Context, conditions map[UserField]any) (models.User, error) {
	log := logger.FromContext(ctx)

	selectUser, err := r.db.buildSelectUserBy(conditions)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserBy").Msg("error: invalid predicate")
		return models.User{}, err
	}

	query, args, err := selectUser.ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserBy").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// UpdateUser applies the given changes to the user row identified by userID
// in a single UPDATE statement, so composite changes (e.g. replacing the
// password digest while clearing the reset token) are atomic with respect
// to concurrent readers of the row.
//
// Error handling:
//   - immutable or unknown field → [ErrInvalidField] (no query is issued).
//   - zero rows affected → [ErrNoUserWasFound].
//   - unique violation on a token column → [ErrSessionTokenConflict] /
//     [ErrResetTokenConflict].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) UpdateUser(ctx context.Context, userID int64, changes map[UserField]any) error {
	log := logger.FromContext(ctx)

	update, err := r.db.buildUpdateUser(userID, changes, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: invalid update")
		return err
	}

	query, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: update failed")

		switch r.db.errorClassifier.UniqueViolation(err) {
		case SessionTokenViolation:
			return ErrSessionTokenConflict
		case ResetTokenViolation:
			return ErrResetTokenConflict
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// ClearStaleResetTokens discards reset tokens issued before olderThan and
// returns the number of affected rows. Used by the background sweeper.
func (r *userRepository) ClearStaleResetTokens(ctx context.Context, olderThan time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildClearStaleResetTokens(olderThan).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ClearStaleResetTokens").Msg("error: update failed")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return affected, nil
}

// scanUser maps one row in [userColumns] order onto a [models.User],
// normalising NULL token columns to empty strings.
func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	var sessionToken, resetToken sql.NullString
	var resetRequestedAt sql.NullTime

	err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.PasswordDigest,
		&sessionToken,
		&resetToken,
		&resetRequestedAt,
		&user.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.SessionToken = sessionToken.String
	user.ResetToken = resetToken.String
	user.ResetRequestedAt = resetRequestedAt.Time

	return user, nil
}
