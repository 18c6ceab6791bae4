// Package mongo provides MongoDB client initialization and health checking,
// plus a document-per-record kv.Store implementation for authstate.
//
// Connect wraps the official MongoDB driver with retry logic and verifies
// connectivity with a ping before returning the client.
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	client, err := mongo.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Disconnect(ctx)
//
//	store := mongo.NewStore(client.Database(cfg.Database))
//	manager, err := authstate.New(ctx, store)
//
// Records are stored in the kv_records collection keyed by _id.
package mongo
