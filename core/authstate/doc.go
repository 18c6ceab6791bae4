// Package authstate manages client-side session and authentication state
// for applications backed by a host-provided durable key-value store.
//
// The package tracks a local registry of accounts and the currently
// authenticated identity, persists both across restarts, and exposes
// login, logout and registration plus derived status to the rest of the
// application. Authentication here is a local-only credential match against
// the locally stored registry; there is no network round trip, no password
// hashing and no security boundary against a hostile client.
//
// # Core Components
//
//   - Manager: the session state machine (initializing -> ready) over a
//     kv.Store
//   - Facade: the read-only view (User, IsAuthenticated, Loading, Err) and
//     the operation set handed to UI collaborators
//   - Frame: the embedded-context policy input
//
// # Basic Usage
//
//	store := kv.NewMemoryStore() // or redis/pg/mongo from integration/database
//
//	manager, err := authstate.New(ctx, store,
//		authstate.WithFrame(hostFrame),
//		authstate.WithLogger(log),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := manager.WaitReady(ctx); err != nil {
//		log.Fatal(err)
//	}
//
//	auth := manager.Facade()
//	ctx = authstate.WithAuth(ctx, auth)
//
//	auth.Register(ctx, authstate.Account{
//		ID:       authstate.NewID(),
//		Username: "mario",
//		Password: "pw",
//		Name:     "Mario",
//	})
//	// registration auto-authenticates the new account
//	if user, ok := auth.User(); ok {
//		fmt.Println("hello,", user.Name)
//	}
//
// Downstream consumers recover the facade from the context and must be
// inside an auth scope to do so:
//
//	auth, err := authstate.FromContext(ctx)
//	if err != nil {
//		// programming error: no authstate.WithAuth upstream
//	}
//
// # Embedded Contexts
//
// When the hosting frame reports a foreign parent (Frame.Embedded), durable
// storage may be unavailable or sandboxed. The manager then skips the load
// phase entirely, reports ready immediately, and the facade presents a fixed
// always-authenticated demo identity regardless of login, register or logout
// calls. The durable store is never read or written in this mode.
//
// # Durability
//
// Persistence is best-effort: a failed write is logged and the in-memory
// state remains authoritative for the process lifetime. A corrupt persisted
// record degrades to an empty registry or absent session, with a sticky
// diagnostic exposed through Err. Neither case ever blocks the user.
package authstate
