// Command server runs the ridehail HTTP API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/ridehail/pkg/config"
	"github.com/dmitrymomot/ridehail/pkg/httpserver"
	"github.com/dmitrymomot/ridehail/pkg/logger"
	"github.com/dmitrymomot/ridehail/pkg/requestid"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log, err := logger.NewFromConfig(cfg.Logger, logger.WithContextExtractors(requestid.LoggerExtractor()))
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	defer func() {
		if err := a.Close(context.Background()); err != nil {
			log.Error("shutdown", logger.Error(err))
		}
	}()

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, newRouter(a, cfg, log))
}
