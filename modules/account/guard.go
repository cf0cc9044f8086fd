package account

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/ridehail/handler"
	"github.com/dmitrymomot/ridehail/pkg/logger"
	"github.com/dmitrymomot/ridehail/pkg/session"
	"github.com/dmitrymomot/ridehail/svc/auth"
)

// Authenticator resolves a token to a principal. Implemented by auth.Service.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Principal, error)
}

const (
	msgUnauthorized  = "Unauthorized"
	msgTokenRevoked  = "Token is blacklisted"
	msgInternalError = "Internal server error"
)

// Guard rejects requests without a valid token for the authenticator's
// role with 401. On success the principal and the raw token are stored in
// the request context.
func Guard(authn Authenticator, transport session.Transport, log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Discard()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, err := transport.GetToken(r)
			if err != nil {
				handler.WriteJSON(w, http.StatusUnauthorized, map[string]string{"message": msgUnauthorized})
				return
			}

			p, err := authn.Authenticate(ctx, token)
			switch {
			case errors.Is(err, auth.ErrTokenRevoked):
				handler.WriteJSON(w, http.StatusUnauthorized, map[string]string{"message": msgTokenRevoked})
				return
			case errors.Is(err, auth.ErrUnauthorized):
				log.DebugContext(ctx, "token rejected", logger.Error(err))
				handler.WriteJSON(w, http.StatusUnauthorized, map[string]string{"message": msgUnauthorized})
				return
			case err != nil:
				log.ErrorContext(ctx, "authentication failed", logger.Error(err))
				handler.WriteJSON(w, http.StatusInternalServerError, map[string]string{"message": msgInternalError})
				return
			}

			ctx = auth.SetPrincipalToContext(ctx, p)
			ctx = session.WithToken(ctx, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Identify attaches the principal when the request carries a valid token
// and passes every request through.
func Identify(authn Authenticator, transport session.Transport) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := transport.GetToken(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := session.WithToken(r.Context(), token)
			if p, err := authn.Authenticate(ctx, token); err == nil {
				ctx = auth.SetPrincipalToContext(ctx, p)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
