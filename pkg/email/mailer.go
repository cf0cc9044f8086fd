package email

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/ridehail/pkg/validator"
)

// EmailSender delivers a rendered email.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams is one outgoing message.
type SendEmailParams struct {
	SendTo   string `json:"send_to" validate:"required,email"`
	Subject  string `json:"subject" validate:"required,max=998"`
	BodyHTML string `json:"body_html" validate:"required"`
	Tag      string `json:"tag,omitempty" validate:"omitempty,max=1000"`
}

// Validate reports missing or malformed fields as validator.ValidationErrors
// wrapped in ErrInvalidParams.
func (p SendEmailParams) Validate() error {
	if err := validator.Validate(p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	return nil
}
