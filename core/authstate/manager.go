package authstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/dmitrymomot/authstate/core/kv"
	"github.com/dmitrymomot/authstate/core/logger"
)

// Manager owns the session state: the account registry, the currently
// authenticated identity and the initialization lifecycle. It is safe for
// concurrent use.
//
// The lifecycle has two states. A manager starts initializing and becomes
// ready exactly once: immediately when the hosting frame is embedded, or
// after the one-shot background load of the persisted registry and session
// records completes. Ready is terminal; there is no re-initialization.
type Manager struct {
	store kv.Store
	log   *slog.Logger
	now   func() time.Time
	cfg   Config

	// Embedded-context policy, evaluated once at construction.
	embedded bool
	demo     SessionRecord

	mu       sync.RWMutex
	accounts []Account
	session  *SessionRecord
	ready    bool
	lastErr  error

	readyCh chan struct{}
}

// New constructs a manager and starts its one-shot initialization.
//
// In a top-level frame the persisted records are loaded in the background;
// use WaitReady or Loading to observe the transition. In an embedded frame
// the load is skipped entirely and the manager is ready on return, with the
// demo identity substituted at the facade layer.
func New(ctx context.Context, store kv.Store, opts ...Option) (*Manager, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	o := &options{
		cfg:    defaultConfig(),
		frame:  TopLevel,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}

	m := &Manager{
		store:    store,
		log:      o.logger,
		now:      o.now,
		cfg:      o.cfg,
		embedded: o.frame.Embedded(),
		readyCh:  make(chan struct{}),
	}

	if m.embedded {
		// Storage may be sandboxed inside a foreign container: skip the
		// load and substitute a fixed identity, stamped at evaluation time.
		m.demo = Account{ID: "demo", Username: "demo", Name: "Demo User"}.Session(m.now())
		m.ready = true
		close(m.readyCh)
		return m, nil
	}

	go m.load(ctx)
	return m, nil
}

// load performs the single Initializing -> Ready transition. It always
// completes, recording handled failures in the diagnostic slot instead of
// propagating them.
func (m *Manager) load(ctx context.Context) {
	accounts, accErr := m.loadAccounts(ctx)
	session, sessErr := m.loadSession(ctx)

	m.mu.Lock()
	m.accounts = accounts
	m.session = session
	if err := errors.Join(accErr, sessErr); err != nil {
		m.lastErr = err
	}
	m.ready = true
	m.mu.Unlock()

	close(m.readyCh)
}

func (m *Manager) loadAccounts(ctx context.Context) ([]Account, error) {
	data, err := m.store.Get(ctx, m.cfg.AccountsKey)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil // no prior data
	}
	if err != nil {
		err = errors.Join(ErrLoadFailed, err)
		m.log.ErrorContext(ctx, "failed to read account registry record",
			logger.Component("authstate"), logger.Key("record", m.cfg.AccountsKey), logger.Error(err))
		return nil, err
	}

	accounts, err := decodeAccounts(data)
	if err != nil {
		m.log.ErrorContext(ctx, "failed to decode account registry record",
			logger.Component("authstate"), logger.Key("record", m.cfg.AccountsKey), logger.Error(err))
		return nil, err
	}
	return accounts, nil
}

func (m *Manager) loadSession(ctx context.Context) (*SessionRecord, error) {
	data, err := m.store.Get(ctx, m.cfg.SessionKey)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil // logged out
	}
	if err != nil {
		err = errors.Join(ErrLoadFailed, err)
		m.log.ErrorContext(ctx, "failed to read session record",
			logger.Component("authstate"), logger.Key("record", m.cfg.SessionKey), logger.Error(err))
		return nil, err
	}

	rec, err := decodeSession(data)
	if err != nil {
		m.log.ErrorContext(ctx, "failed to decode session record",
			logger.Component("authstate"), logger.Key("record", m.cfg.SessionKey), logger.Error(err))
		return nil, err
	}
	return &rec, nil
}

// Login checks the supplied credentials against the registry. On a match it
// stores the password-free session projection with a fresh login stamp and
// persists it best-effort. A mismatch or unknown username returns false and
// leaves the current session untouched; wrong credentials are a normal
// outcome, not an error.
func (m *Manager) Login(ctx context.Context, username, password string) bool {
	m.mu.Lock()
	acc, ok := findByUsername(m.accounts, username)
	if !ok || acc.Password != password {
		m.mu.Unlock()
		return false
	}
	rec := acc.Session(m.now())
	m.session = &rec
	m.mu.Unlock()

	m.log.InfoContext(ctx, "login",
		logger.Component("authstate"), logger.Action("login"), logger.Username(username))
	m.persistSession(ctx, rec)
	return true
}

// Register appends the account to the registry and logs it in immediately.
// The account came from the caller, so no credential check is repeated.
// Duplicate usernames are accepted; login matches the earliest entry.
func (m *Manager) Register(ctx context.Context, account Account) {
	m.mu.Lock()
	m.accounts = append(m.accounts, account)
	snapshot := slices.Clone(m.accounts)
	rec := account.Session(m.now())
	m.session = &rec
	m.mu.Unlock()

	m.log.InfoContext(ctx, "register",
		logger.Component("authstate"), logger.Action("register"), logger.Username(account.Username))
	m.persistAccounts(ctx, snapshot)
	m.persistSession(ctx, rec)
}

// Logout clears the current session and removes the persisted record.
// The registry is untouched. Logging out twice is harmless.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.session = nil
	m.mu.Unlock()

	if m.embedded {
		return
	}
	if err := m.store.Delete(ctx, m.cfg.SessionKey); err != nil {
		m.log.WarnContext(ctx, "failed to remove session record",
			logger.Component("authstate"), logger.Key("record", m.cfg.SessionKey), logger.Error(err))
	}
}

// persistAccounts writes the registry record. Failures degrade to a log
// line: the in-memory registry stays authoritative for the process lifetime.
func (m *Manager) persistAccounts(ctx context.Context, accounts []Account) {
	if m.embedded {
		return
	}

	data, err := encodeAccounts(accounts)
	if err != nil {
		m.log.ErrorContext(ctx, "failed to encode account registry",
			logger.Component("authstate"), logger.Count("accounts", len(accounts)), logger.Error(err))
		return
	}
	if err := m.store.Set(ctx, m.cfg.AccountsKey, data); err != nil {
		m.log.WarnContext(ctx, "failed to persist account registry",
			logger.Component("authstate"), logger.Key("record", m.cfg.AccountsKey), logger.Error(err))
	}
}

// persistSession writes the current-session record, best-effort.
func (m *Manager) persistSession(ctx context.Context, rec SessionRecord) {
	if m.embedded {
		return
	}

	data, err := json.Marshal(rec)
	if err != nil {
		m.log.ErrorContext(ctx, "failed to encode session record",
			logger.Component("authstate"), logger.Username(rec.Username), logger.Error(err))
		return
	}
	if err := m.store.Set(ctx, m.cfg.SessionKey, data); err != nil {
		m.log.WarnContext(ctx, "failed to persist session record",
			logger.Component("authstate"), logger.Key("record", m.cfg.SessionKey), logger.Error(err))
	}
}

// Session returns the current session record, if any. In embedded mode the
// substituted demo identity is visible through the facade, not here.
func (m *Manager) Session() (SessionRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.session == nil {
		return SessionRecord{}, false
	}
	return *m.session, true
}

// Accounts returns a copy of the in-memory registry in insertion order.
func (m *Manager) Accounts() []Account {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.accounts)
}

// Loading reports whether the initial load is still in flight. Consumers
// must treat a loading manager as not yet authoritative. Always false in
// embedded mode.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return !m.ready
}

// Err returns the sticky diagnostic from the last storage failure observed
// during load, or nil. It is never cleared automatically.
func (m *Manager) Err() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.lastErr
}

// Embedded reports the embedded-context policy decision made at construction.
func (m *Manager) Embedded() bool {
	return m.embedded
}

// Ready returns a channel closed once the manager leaves the initializing
// state.
func (m *Manager) Ready() <-chan struct{} {
	return m.readyCh
}

// WaitReady blocks until the initial load completes or ctx is done.
func (m *Manager) WaitReady(ctx context.Context) error {
	select {
	case <-m.readyCh:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("authstate: waiting for initial load: %w", ctx.Err())
	}
}
