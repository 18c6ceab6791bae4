// Package pg provides PostgreSQL connection management with migrations and
// health checking, plus a kv.Store implementation over a single key-value
// table so authstate records can live next to the rest of an application's
// relational data.
//
// Connect wraps the pgx driver with retry logic and a connectivity check;
// Migrate applies the embedded goose migration that creates the kv_records
// table.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	if err := pg.Migrate(ctx, cfg.ConnectionString); err != nil {
//		log.Fatal(err)
//	}
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pool.Close()
//
//	manager, err := authstate.New(ctx, pg.NewStore(pool))
//
// Store operations join an ambient transaction when one was placed in the
// context with WithTx, and use the pool otherwise.
package pg
