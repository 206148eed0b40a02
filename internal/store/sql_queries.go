package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const usersTable = "users"

// userColumns is the canonical column order used by every SELECT and by the
// row-scanning helpers.
var userColumns = []string{
	"user_id",
	"email",
	"password_digest",
	"session_token",
	"reset_token",
	"reset_requested_at",
	"created_at",
}

// buildInsertUser builds the INSERT for a new user row. created_at is
// assigned by the caller so both dialects persist the same value.
func (db *DB) buildInsertUser(email, passwordDigest string, createdAt time.Time) sq.InsertBuilder {
	return db.builder().
		Insert(usersTable).
		Columns("email", "password_digest", "created_at").
		Values(email, passwordDigest, createdAt)
}

// buildSelectUserBy builds a SELECT constrained by the given field/value
// conditions. Every field must be a member of [lookupableFields]; an unknown
// field yields [ErrAmbiguousQuery].
func (db *DB) buildSelectUserBy(conditions map[UserField]any) (sq.SelectBuilder, error) {
	var zero sq.SelectBuilder

	if len(conditions) == 0 {
		return zero, fmt.Errorf("%w: empty predicate", ErrAmbiguousQuery)
	}

	eq := sq.Eq{}
	for field, value := range conditions {
		if _, ok := lookupableFields[field]; !ok {
			return zero, fmt.Errorf("%w: %q", ErrAmbiguousQuery, string(field))
		}
		eq[string(field)] = value
	}

	return db.builder().
		Select(userColumns...).
		From(usersTable).
		Where(eq), nil
}

// buildUpdateUser builds an UPDATE applying the given changes to a single
// user row. Every changed field must be a member of [mutableFields]; an
// unknown or immutable field yields [ErrInvalidField].
//
// Token columns are normalised so that an empty string is stored as NULL,
// keeping the per-column uniqueness constraints inert for cleared tokens.
// reset_requested_at is not part of the public field enumeration: it is
// managed here, in lockstep with reset_token.
func (db *DB) buildUpdateUser(userID int64, changes map[UserField]any, now time.Time) (sq.UpdateBuilder, error) {
	var zero sq.UpdateBuilder

	if len(changes) == 0 {
		return zero, fmt.Errorf("%w: empty update", ErrBuildingSQLQuery)
	}

	update := db.builder().Update(usersTable)
	for field, value := range changes {
		if _, ok := mutableFields[field]; !ok {
			return zero, fmt.Errorf("%w: %q", ErrInvalidField, string(field))
		}

		if _, nullable := nullableFields[field]; nullable {
			if s, ok := value.(string); ok && s == "" {
				value = nil
			}
		}

		update = update.Set(string(field), value)

		if field == FieldResetToken {
			if value == nil {
				update = update.Set("reset_requested_at", nil)
			} else {
				update = update.Set("reset_requested_at", now)
			}
		}
	}

	return update.Where(sq.Eq{"user_id": userID}), nil
}

// buildClearStaleResetTokens builds the UPDATE discarding reset tokens
// issued before olderThan.
func (db *DB) buildClearStaleResetTokens(olderThan time.Time) sq.UpdateBuilder {
	return db.builder().
		Update(usersTable).
		Set("reset_token", nil).
		Set("reset_requested_at", nil).
		Where(sq.And{
			sq.NotEq{"reset_token": nil},
			sq.Lt{"reset_requested_at": olderThan},
		})
}
