package main

import (
	"github.com/dmitrymomot/ridehail/pkg/cookie"
	"github.com/dmitrymomot/ridehail/pkg/email"
	"github.com/dmitrymomot/ridehail/pkg/httpserver"
	"github.com/dmitrymomot/ridehail/pkg/jwt"
	"github.com/dmitrymomot/ridehail/pkg/logger"
	"github.com/dmitrymomot/ridehail/pkg/mongo"
	"github.com/dmitrymomot/ridehail/pkg/redis"
)

// Storage backends.
const (
	backendMongo  = "mongo"
	backendRedis  = "redis"
	backendMemory = "memory"
)

type appConfig struct {
	Logger logger.Config
	HTTP   httpserver.Config
	JWT    jwt.Config
	Mongo  mongo.Config
	Redis  redis.Config
	Cookie cookie.Config
	Email  email.Config

	// StoreBackend holds principals: mongo or memory.
	StoreBackend string `env:"STORE_BACKEND" envDefault:"mongo"`
	// RevocationBackend holds revoked tokens: mongo, redis or memory.
	RevocationBackend string `env:"REVOCATION_BACKEND" envDefault:"mongo"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
	BaseURL            string   `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`
}
