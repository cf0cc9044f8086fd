package account

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/ridehail/handler"
	"github.com/dmitrymomot/ridehail/pkg/binder"
	"github.com/dmitrymomot/ridehail/pkg/logger"
	"github.com/dmitrymomot/ridehail/pkg/password"
	"github.com/dmitrymomot/ridehail/pkg/session"
	"github.com/dmitrymomot/ridehail/pkg/validator"
	"github.com/dmitrymomot/ridehail/svc/auth"
)

// Service is the subset of auth.Service used by Module.
type Service interface {
	Authenticator
	Role() auth.Role
	Register(ctx context.Context, params auth.RegisterParams) (*auth.Principal, string, error)
	Login(ctx context.Context, email, password string) (*auth.Principal, string, time.Time, error)
	Logout(ctx context.Context, token string) error
}

// Module serves the account endpoints of one role.
type Module struct {
	svc          Service
	transport    session.Transport
	logger       *slog.Logger
	errorHandler handler.ErrorHandler
	bind         binder.Func
}

type Option func(*Module)

func WithLogger(l *slog.Logger) Option {
	return func(m *Module) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithErrorHandler replaces the default JSON error handler.
func WithErrorHandler(h handler.ErrorHandler) Option {
	return func(m *Module) {
		m.errorHandler = h
	}
}

// WithBinder replaces the request body binder.
func WithBinder(b binder.Func) Option {
	return func(m *Module) {
		if b != nil {
			m.bind = b
		}
	}
}

// ErrorMappings are the auth errors the default error handler translates.
func ErrorMappings() []handler.ErrorMapping {
	return []handler.ErrorMapping{
		{Target: auth.ErrEmailAlreadyExists, Status: http.StatusConflict, Message: "Email already registered"},
		{Target: auth.ErrInvalidCredentials, Status: http.StatusUnauthorized, Message: "Invalid email or password"},
		{Target: auth.ErrVehicleRequired, Status: http.StatusBadRequest, Message: "Vehicle details are required"},
		{Target: password.ErrPasswordTooLong, Status: http.StatusBadRequest, Message: "Password must be at most 72 characters long"},
	}
}

// NewModule creates the module for svc's role. transport carries tokens
// in and out of requests.
func NewModule(svc Service, transport session.Transport, opts ...Option) *Module {
	m := &Module{
		svc:       svc,
		transport: transport,
		logger:    logger.Discard(),
		bind:      binder.JSON(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.bind = sanitized(m.bind)
	m.logger = m.logger.With(logger.Component("account"), logger.Role(svc.Role().String()))
	if m.errorHandler == nil {
		m.errorHandler = handler.NewErrorHandler(m.logger, ErrorMappings()...)
	}
	return m
}

// Handle returns the role's router:
//
//	POST /register
//	POST /login
//	GET  /profile   (guarded)
//	POST /logout
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()

	if m.svc.Role() == auth.RoleDriver {
		r.Post("/register", handler.Wrap(m.registerDriver,
			handler.WithBinders[DriverRegisterRequest](m.bind),
			handler.WithValidator[DriverRegisterRequest](validator.Validate),
			handler.WithErrorHandler[DriverRegisterRequest](m.errorHandler),
		))
	} else {
		r.Post("/register", handler.Wrap(m.registerRider,
			handler.WithBinders[RegisterRequest](m.bind),
			handler.WithValidator[RegisterRequest](validator.Validate),
			handler.WithErrorHandler[RegisterRequest](m.errorHandler),
		))
	}

	r.Post("/login", handler.Wrap(m.login,
		handler.WithBinders[LoginRequest](m.bind),
		handler.WithValidator[LoginRequest](validator.Validate),
		handler.WithErrorHandler[LoginRequest](m.errorHandler),
	))

	r.With(m.Guard()).Get("/profile", handler.Wrap(m.profile,
		handler.WithErrorHandler[struct{}](m.errorHandler),
	))

	r.With(Identify(m.svc, m.transport)).Post("/logout", handler.Wrap(m.logout,
		handler.WithErrorHandler[struct{}](m.errorHandler),
	))

	return r
}

// Guard is the session guard for this module's role.
func (m *Module) Guard() func(http.Handler) http.Handler {
	return Guard(m.svc, m.transport, m.logger)
}

// principalKey is the response field holding the principal.
func (m *Module) principalKey() string {
	if m.svc.Role() == auth.RoleDriver {
		return "captain"
	}
	return "user"
}

func (m *Module) registerRider(ctx handler.Context, req RegisterRequest) handler.Response {
	return m.register(ctx, auth.RegisterParams{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName.toFullName(),
	})
}

func (m *Module) registerDriver(ctx handler.Context, req DriverRegisterRequest) handler.Response {
	return m.register(ctx, auth.RegisterParams{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName.toFullName(),
		Vehicle: &auth.Vehicle{
			Color:       req.Vehicle.Color,
			Plate:       req.Vehicle.Plate,
			Capacity:    req.Vehicle.Capacity,
			VehicleType: req.Vehicle.VehicleType,
		},
	})
}

func (m *Module) register(ctx handler.Context, params auth.RegisterParams) handler.Response {
	p, token, err := m.svc.Register(ctx, params)
	if err != nil {
		return errorResponse(err)
	}
	return handler.JSON(map[string]any{
		"token":          token,
		m.principalKey(): p,
	}, handler.WithStatus(http.StatusCreated))
}

func (m *Module) login(ctx handler.Context, req LoginRequest) handler.Response {
	p, token, expiresAt, err := m.svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return errorResponse(err)
	}
	if err := m.transport.SetToken(ctx.ResponseWriter(), token, time.Until(expiresAt)); err != nil {
		return errorResponse(err)
	}
	return handler.JSON(map[string]any{
		"token":          token,
		m.principalKey(): p,
	})
}

func (m *Module) profile(ctx handler.Context, _ struct{}) handler.Response {
	p := auth.GetPrincipalFromContext(ctx)
	if p == nil {
		return errorResponse(handler.NewHTTPError(http.StatusUnauthorized, msgUnauthorized))
	}
	return handler.JSON(map[string]any{m.principalKey(): p})
}

func (m *Module) logout(ctx handler.Context, _ struct{}) handler.Response {
	if err := m.transport.ClearToken(ctx.ResponseWriter()); err != nil {
		return errorResponse(err)
	}

	token, ok := session.TokenFromContext(ctx)
	if !ok {
		return handler.Message(http.StatusOK, "Logged out")
	}
	if err := m.svc.Logout(ctx, token); err != nil {
		return errorResponse(err)
	}

	if p := auth.GetPrincipalFromContext(ctx); p != nil {
		m.logger.InfoContext(ctx, "principal logged out", logger.PrincipalID(p.ID))
	}
	return handler.Message(http.StatusOK, "Logged out")
}

// errorResponse defers to the module's error handler by failing Render.
func errorResponse(err error) handler.Response {
	return handler.Func(func(http.ResponseWriter, *http.Request) error { return err })
}
