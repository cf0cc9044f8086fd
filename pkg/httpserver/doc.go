// Package httpserver runs the API's net/http server with graceful shutdown.
//
// Run listens on the configured address, serves until the context is
// cancelled or SIGINT/SIGTERM arrives, then drains in-flight requests within
// the shutdown timeout. Start and stop hooks let callers log the bound address
// or release resources.
//
// The package also ships the two probe handlers mounted at /healthz and
// /readyz, and the access-log middleware used by the router:
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware, httpserver.RequestLogger(log))
//	r.Get("/healthz", httpserver.LivenessHandler())
//	r.Get("/readyz", httpserver.ReadinessHandler(log,
//		httpserver.Check{Name: "mongo", Fn: mongo.Healthcheck(client)},
//	))
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	err := srv.Run(ctx, r)
//
// Run wraps listen failures with ErrStart and Shutdown wraps drain failures
// with ErrShutdown.
package httpserver
