// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a bound request struct and returns a Response:
//
//	type loginRequest struct {
//		Email    string `json:"email" validate:"required,email"`
//		Password string `json:"password" validate:"required,min=6"`
//	}
//
//	r.Post("/login", handler.Wrap(m.login,
//		handler.WithBinders[loginRequest](binder.JSON()),
//		handler.WithValidator[loginRequest](validator.Validate),
//		handler.WithErrorHandler[loginRequest](errHandler),
//	))
//
// Binding, validation, handler and render errors all flow to a single
// ErrorHandler. NewErrorHandler maps them to JSON bodies: validation failures
// become {"success":false,"message":"Validation errors","errors":[...]},
// HTTPError and registered ErrorMappings become {"message":...}, and anything
// else is a logged 500.
package handler
