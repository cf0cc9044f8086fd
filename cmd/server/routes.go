package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/dmitrymomot/ridehail/handler"
	"github.com/dmitrymomot/ridehail/modules/account"
	"github.com/dmitrymomot/ridehail/modules/pages"
	"github.com/dmitrymomot/ridehail/pkg/httpserver"
	"github.com/dmitrymomot/ridehail/pkg/requestid"
)

func newRouter(a *app, cfg appConfig, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		middleware.RealIP,
		httpserver.RequestLogger(log),
		middleware.Recoverer,
		cors.New(cors.Options{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", "Content-Type", requestid.Header},
			ExposedHeaders:   []string{requestid.Header},
			AllowCredentials: true,
		}).Handler,
	)

	r.Get("/healthz", httpserver.LivenessHandler())
	r.Get("/readyz", httpserver.ReadinessHandler(log, a.checks...))

	errorHandler := handler.NewErrorHandler(log, account.ErrorMappings()...)
	site := account.Router(account.RouterOptions{
		Riders:  account.NewModule(a.riders, a.transport, account.WithLogger(log), account.WithErrorHandler(errorHandler)),
		Drivers: account.NewModule(a.drivers, a.transport, account.WithLogger(log), account.WithErrorHandler(errorHandler)),
	})
	site.Mount("/", pages.NewModule(errorHandler).Handle())
	r.Mount("/", site)

	return r
}
