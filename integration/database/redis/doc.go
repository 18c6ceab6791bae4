// Package redis provides Redis client initialization plus a kv.Store
// implementation so authstate can persist its registry and session records
// in a Redis-compatible service.
//
// Connect validates the connection URL, retries transient failures with
// exponential backoff, and verifies connectivity with a ping before
// returning the client. Healthcheck returns a probe function suitable for
// readiness endpoints.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	manager, err := authstate.New(ctx, redis.NewStore(client))
//
// Both redis:// and rediss:// URL schemes are supported.
package redis
