// Package notify sends transactional emails triggered by account events.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/ridehail/pkg/email"
	"github.com/dmitrymomot/ridehail/pkg/email/templates"
	"github.com/dmitrymomot/ridehail/pkg/logger"
	"github.com/dmitrymomot/ridehail/svc/auth"
	"github.com/dmitrymomot/ridehail/views"
)

// WelcomeMailer emails newly registered principals.
type WelcomeMailer struct {
	sender  email.EmailSender
	baseURL string
	logger  *slog.Logger
}

type Option func(*WelcomeMailer)

func WithLogger(l *slog.Logger) Option {
	return func(m *WelcomeMailer) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewWelcomeMailer creates a mailer whose links point at baseURL.
func NewWelcomeMailer(sender email.EmailSender, baseURL string, opts ...Option) *WelcomeMailer {
	m := &WelcomeMailer{
		sender:  sender,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AfterRegister matches the signature expected by auth.WithAfterRegister.
func (m *WelcomeMailer) AfterRegister(ctx context.Context, p *auth.Principal) error {
	audience, loginPath := "user", "/login"
	if p.Role == auth.RoleDriver {
		audience, loginPath = "captain", "/captain-login"
	}

	body, err := templates.Render(ctx, views.WelcomeEmail(p.FullName.FirstName, audience, m.baseURL+loginPath))
	if err != nil {
		return fmt.Errorf("failed to render welcome email: %w", err)
	}

	if err := m.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   p.Email,
		Subject:  "Welcome to Ridehail",
		BodyHTML: body,
		Tag:      "welcome-" + audience,
	}); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	m.logger.DebugContext(ctx, "welcome email sent",
		logger.PrincipalID(p.ID),
		logger.Role(p.Role.String()),
	)
	return nil
}
