package authstate

import (
	"time"

	"github.com/google/uuid"
)

// Account is one registered user in the local registry. The ID is assigned
// by the caller at registration time and never reassigned. The password is a
// plaintext credential compared by exact match: the registry is a local-only
// convenience, not a security boundary against a hostile client.
type Account struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Password  string     `json:"password"`
	Name      string     `json:"name"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// SessionRecord is the password-free projection of an Account representing
// who is currently logged in. It exists only while a user is logged in and
// survives restarts via the durable store in non-embedded mode.
type SessionRecord struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	LastLogin time.Time `json:"lastLogin"`
}

// Session builds the record for this account with the login stamped at.
// The registry copy of the account keeps its original LastLogin; only the
// session copy carries the fresh stamp.
func (a Account) Session(at time.Time) SessionRecord {
	return SessionRecord{
		ID:        a.ID,
		Username:  a.Username,
		Name:      a.Name,
		LastLogin: at,
	}
}

// NewID returns a fresh opaque account identifier. Callers own ID
// assignment; this is a convenience for those without their own scheme.
func NewID() string {
	return uuid.NewString()
}
