package authstate

import "context"

// Facade is the read surface handed to UI collaborators. It derives the
// visible identity from the manager state and the embedded-context policy:
// inside a foreign container the fixed demo identity is always presented as
// authenticated, whatever the session state machine holds.
type Facade struct {
	m *Manager
}

// Facade returns the consumer-facing view of this manager.
func (m *Manager) Facade() *Facade {
	return &Facade{m: m}
}

// User returns the identity to present, or false when nobody is logged in.
func (f *Facade) User() (SessionRecord, bool) {
	if f.m.embedded {
		return f.m.demo, true
	}
	return f.m.Session()
}

// IsAuthenticated reports whether an identity should be treated as logged
// in. Forced true in embedded mode.
func (f *Facade) IsAuthenticated() bool {
	if f.m.embedded {
		return true
	}
	_, ok := f.m.Session()
	return ok
}

// Loading reports whether authentication state is not yet authoritative.
func (f *Facade) Loading() bool {
	return f.m.Loading()
}

// Err returns the sticky storage diagnostic, or nil.
func (f *Facade) Err() error {
	return f.m.Err()
}

// Login delegates to the manager.
func (f *Facade) Login(ctx context.Context, username, password string) bool {
	return f.m.Login(ctx, username, password)
}

// Register delegates to the manager.
func (f *Facade) Register(ctx context.Context, account Account) {
	f.m.Register(ctx, account)
}

// Logout delegates to the manager.
func (f *Facade) Logout(ctx context.Context) {
	f.m.Logout(ctx)
}
