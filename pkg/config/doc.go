// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env file) and
// github.com/caarlos0/env/v11 (struct tag parsing). Every package of the
// service owns a small Config struct annotated with env tags; the server
// binary aggregates them into one struct and loads it once at startup:
//
//	var cfg struct {
//		JWT   jwt.Config
//		Mongo mongo.Config
//	}
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Load caches the parsed value per type. Parse skips the cache and is what
// tests use when they need to observe environment changes.
package config
