// Package kv defines the durable key-value contract that authstate uses to
// persist the account registry and the current-session record.
//
// The Store interface is intentionally tiny: two fixed logical records are all
// the session state machine ever reads or writes. A missing key is a normal
// outcome and is reported with ErrNotFound rather than a nil-value convention,
// so callers can distinguish "no prior data" from transport failures with
// errors.Is.
//
// # Implementations
//
// The package ships MemoryStore for tests and ephemeral use. Durable
// implementations backed by Redis, PostgreSQL and MongoDB live under
// integration/database.
//
//	store := kv.NewMemoryStore()
//	if err := store.Set(ctx, "auth:accounts", payload); err != nil {
//		log.Print(err)
//	}
//
//	data, err := store.Get(ctx, "auth:accounts")
//	if errors.Is(err, kv.ErrNotFound) {
//		// first run, nothing persisted yet
//	}
package kv
