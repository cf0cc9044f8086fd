// Package pages serves the public HTML pages.
package pages

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/ridehail/handler"
	"github.com/dmitrymomot/ridehail/views"
)

// Module serves the landing, sign-up and login pages.
type Module struct {
	errorHandler handler.ErrorHandler
}

func NewModule(errorHandler handler.ErrorHandler) *Module {
	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(nil)
	}
	return &Module{errorHandler: errorHandler}
}

func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/", m.page(views.Home()))
	r.Get("/signup", m.page(views.RiderSignup()))
	r.Get("/captain-signup", m.page(views.CaptainSignup()))
	r.Get("/login", m.page(views.Login("user")))
	r.Get("/captain-login", m.page(views.Login("captain")))
	return r
}

func (m *Module) page(c templ.Component) http.HandlerFunc {
	return handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Templ(c)
	}, handler.WithErrorHandler[struct{}](m.errorHandler))
}
