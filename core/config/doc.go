// Package config provides type-safe environment variable loading with
// per-type caching. A .env file, when present, is loaded once on first use;
// parsing is handled by the caarlos0/env library.
//
//	type RedisConfig struct {
//		ConnectionURL string `env:"REDIS_URL,required"`
//	}
//
//	var cfg RedisConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Each configuration type is loaded only once per process; subsequent Load
// calls for the same type return the cached value. Use MustLoad during
// startup when a missing variable should abort the program.
package config
