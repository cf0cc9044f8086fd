package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// WelcomeEmail is the body of the message sent after registration.
// loginURL is where the recipient signs in.
func WelcomeEmail(firstName, role, loginURL string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		greeting := "Welcome to Ridehail"
		next := "Book your first ride whenever you are ready."
		if role == "captain" {
			greeting = "Welcome aboard, captain"
			next = "Your account is inactive until you go online from the app."
		}
		_, err := io.WriteString(w,
			`<!DOCTYPE html><html><body style="font-family:sans-serif">`+
				`<h1>`+templ.EscapeString(greeting)+`</h1>`+
				`<p>Hi `+templ.EscapeString(firstName)+`,</p>`+
				`<p>`+templ.EscapeString(next)+`</p>`+
				`<p><a href="`+templ.EscapeString(loginURL)+`">Log in</a></p>`+
				`</body></html>`)
		return err
	})
}
