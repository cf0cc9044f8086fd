package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/dmitrymomot/ridehail/pkg/logger"
)

// Option configures New.
type Option func(*connectOptions)

type connectOptions struct {
	logger *slog.Logger
}

// WithLogger logs each failed connection attempt.
func WithLogger(l *slog.Logger) Option {
	return func(o *connectOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// New connects to MongoDB and pings the primary, retrying up to
// cfg.RetryAttempts times. A client whose ping failed is disconnected before
// the next attempt.
func New(ctx context.Context, cfg Config, opts ...Option) (*mongo.Client, error) {
	o := connectOptions{logger: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	clientOpts := options.Client().
		ApplyURI(cfg.ConnectionURL).
		SetAppName(cfg.AppName).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetRetryWrites(cfg.RetryWrites).
		SetRetryReads(cfg.RetryReads)

	attempts := max(cfg.RetryAttempts, 1)
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		client, err := connect(ctx, clientOpts)
		if err == nil {
			return client, nil
		}
		lastErr = err
		o.logger.WarnContext(ctx, "mongo connection attempt failed",
			slog.Int("attempt", attempt), slog.Int("max_attempts", attempts), logger.Error(err))

		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrFailedToConnectToMongo, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, errors.Join(ErrFailedToConnectToMongo, lastErr)
}

func connect(ctx context.Context, opts *options.ClientOptions) (*mongo.Client, error) {
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("ping: %w", err)
	}
	return client, nil
}

// NewWithDatabase connects and returns the database named in cfg.Database.
func NewWithDatabase(ctx context.Context, cfg Config, opts ...Option) (*mongo.Database, error) {
	if cfg.Database == "" {
		return nil, ErrMissingDatabase
	}
	client, err := New(ctx, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return client.Database(cfg.Database), nil
}
