package email

import (
	"fmt"
	"log/slog"
	"net/mail"
)

// Config selects and configures the sender. With a Postmark token set,
// mail goes through Postmark; otherwise, when DevDir is set, messages are
// written to disk; otherwise they are only logged.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"no-reply@ridehail.local"`
	SupportEmail         string `env:"SUPPORT_EMAIL" envDefault:"support@ridehail.local"`
	DevDir               string `env:"EMAIL_DEV_DIR" envDefault:""`
}

func (c Config) usesPostmark() bool {
	return c.PostmarkServerToken != "" || c.PostmarkAccountToken != ""
}

// NewFromConfig picks the sender described by cfg.
func NewFromConfig(cfg Config, log *slog.Logger) (EmailSender, error) {
	switch {
	case cfg.usesPostmark():
		return NewPostmarkClient(cfg)
	case cfg.DevDir != "":
		return NewDevSender(cfg.DevDir), nil
	default:
		return NewLogSender(log), nil
	}
}

func validateAddress(field, addr string) error {
	if addr == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidConfig, field)
	}
	if _, err := mail.ParseAddress(addr); err != nil {
		return fmt.Errorf("%w: %s must be a valid email address", ErrInvalidConfig, field)
	}
	return nil
}
