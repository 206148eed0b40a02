package store

// UserField names a column of the users table usable in lookup predicates
// and update maps. The enumeration is closed: repository methods reject any
// other value instead of reflecting over arbitrary keys.
type UserField string

const (
	FieldUserID         UserField = "user_id"
	FieldEmail          UserField = "email"
	FieldPasswordDigest UserField = "password_digest"
	FieldSessionToken   UserField = "session_token"
	FieldResetToken     UserField = "reset_token"
)

// lookupableFields are the fields accepted by FindUserBy predicates.
var lookupableFields = map[UserField]struct{}{
	FieldUserID:       {},
	FieldEmail:        {},
	FieldSessionToken: {},
	FieldResetToken:   {},
}

// mutableFields are the fields accepted by UpdateUser changes.
// Email is immutable post-creation; user_id is engine-assigned.
var mutableFields = map[UserField]struct{}{
	FieldPasswordDigest: {},
	FieldSessionToken:   {},
	FieldResetToken:     {},
}

// nullableFields are stored as NULL when their value is the empty string,
// so the per-column uniqueness constraints ignore cleared tokens.
var nullableFields = map[UserField]struct{}{
	FieldSessionToken: {},
	FieldResetToken:   {},
}
