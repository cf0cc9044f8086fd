// Package templates renders templ components to strings for email bodies.
package templates

import (
	"bytes"
	"context"

	"github.com/a-h/templ"
)

// Render renders tpl into a string.
func Render(ctx context.Context, tpl templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
