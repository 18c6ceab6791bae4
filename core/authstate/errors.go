package authstate

import "errors"

var (
	// ErrNoAuthScope is returned when the facade is requested from a context
	// that was never placed inside an auth scope. This is a programming
	// error on the consumer side and intentionally fails fast instead of
	// degrading to an empty state.
	ErrNoAuthScope = errors.New("authstate: no auth scope in context, wrap it with authstate.WithAuth first")
	// ErrNilStore is returned when a manager is constructed without a store.
	ErrNilStore = errors.New("authstate: nil store")
	// ErrCorruptRegistry marks an account registry record that could not be
	// decoded. The registry degrades to empty; the error stays in the
	// diagnostic slot.
	ErrCorruptRegistry = errors.New("authstate: corrupt account registry record")
	// ErrCorruptSession marks a current-session record that could not be
	// decoded. The session stays absent; the error stays in the diagnostic
	// slot.
	ErrCorruptSession = errors.New("authstate: corrupt session record")
	// ErrLoadFailed wraps store read failures during the initial load.
	ErrLoadFailed = errors.New("authstate: failed to load persisted state")
)
