package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	driver "go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/ridehail/modules/account"
	"github.com/dmitrymomot/ridehail/pkg/cookie"
	"github.com/dmitrymomot/ridehail/pkg/email"
	"github.com/dmitrymomot/ridehail/pkg/httpserver"
	"github.com/dmitrymomot/ridehail/pkg/jwt"
	"github.com/dmitrymomot/ridehail/pkg/mongo"
	"github.com/dmitrymomot/ridehail/pkg/redis"
	"github.com/dmitrymomot/ridehail/pkg/session"
	"github.com/dmitrymomot/ridehail/svc/auth"
	"github.com/dmitrymomot/ridehail/svc/notify"
)

var errUnknownBackend = errors.New("unknown storage backend")

// app holds the wired dependencies and what must be closed on exit.
type app struct {
	riders    account.Service
	drivers   account.Service
	transport session.Transport
	checks    []httpserver.Check
	closers   []func(context.Context) error
}

func (a *app) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i](ctx))
	}
	return errors.Join(errs...)
}

func newApp(ctx context.Context, cfg appConfig, log *slog.Logger) (_ *app, err error) {
	a := &app{}
	defer func() {
		if err != nil {
			_ = a.Close(context.Background())
		}
	}()

	tokens, err := jwt.NewFromConfig(cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("jwt: %w", err)
	}

	var db *driver.Database
	if cfg.StoreBackend == backendMongo || cfg.RevocationBackend == backendMongo {
		db, err = mongo.NewWithDatabase(ctx, cfg.Mongo, mongo.WithLogger(log))
		if err != nil {
			return nil, fmt.Errorf("mongo: %w", err)
		}
		client := db.Client()
		a.closers = append(a.closers, client.Disconnect)
		a.checks = append(a.checks, httpserver.Check{Name: "mongo", Fn: mongo.Healthcheck(client)})
	}

	riderStore, driverStore, err := credentialStores(ctx, cfg.StoreBackend, db)
	if err != nil {
		return nil, err
	}
	revocations, err := a.revocationStore(ctx, cfg, db)
	if err != nil {
		return nil, err
	}

	sender, err := email.NewFromConfig(cfg.Email, log)
	if err != nil {
		return nil, fmt.Errorf("email: %w", err)
	}
	welcome := notify.NewWelcomeMailer(sender, cfg.BaseURL, notify.WithLogger(log))

	opts := []auth.Option{auth.WithLogger(log), auth.WithAfterRegister(welcome.AfterRegister)}
	if a.riders, err = auth.NewService(auth.RoleRider, riderStore, revocations, tokens, opts...); err != nil {
		return nil, err
	}
	if a.drivers, err = auth.NewService(auth.RoleDriver, driverStore, revocations, tokens, opts...); err != nil {
		return nil, err
	}

	cookies, err := cookie.NewFromConfig(cfg.Cookie)
	if err != nil {
		return nil, fmt.Errorf("cookie: %w", err)
	}
	a.transport = session.NewCompositeTransport(
		session.NewCookieTransport(cookies, session.DefaultCookieName),
		session.NewHeaderTransport(),
	)

	return a, nil
}

func credentialStores(ctx context.Context, backend string, db *driver.Database) (riders, drivers auth.CredentialStore, err error) {
	switch backend {
	case backendMemory:
		return auth.NewMemoryStore(), auth.NewMemoryStore(), nil
	case backendMongo:
		r, err := auth.NewMongoStore(ctx, db, auth.RoleRider)
		if err != nil {
			return nil, nil, err
		}
		d, err := auth.NewMongoStore(ctx, db, auth.RoleDriver)
		if err != nil {
			return nil, nil, err
		}
		return r, d, nil
	default:
		return nil, nil, fmt.Errorf("%w: STORE_BACKEND=%q", errUnknownBackend, backend)
	}
}

func (a *app) revocationStore(ctx context.Context, cfg appConfig, db *driver.Database) (auth.RevocationStore, error) {
	switch cfg.RevocationBackend {
	case backendMemory:
		return auth.NewMemoryRevocationStore(), nil
	case backendMongo:
		return auth.NewMongoRevocationStore(ctx, db)
	case backendRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
		a.closers = append(a.closers, func(context.Context) error { return client.Close() })
		a.checks = append(a.checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
		return auth.NewRedisRevocationStore(client, cfg.Redis.KeyPrefix), nil
	default:
		return nil, fmt.Errorf("%w: REVOCATION_BACKEND=%q", errUnknownBackend, cfg.RevocationBackend)
	}
}
