// Package session carries the JWT session token over HTTP.
//
// A Transport extracts the token from a request and hands it back to the
// client. CookieTransport uses the "token" cookie, HeaderTransport reads an
// "Authorization: Bearer" header, and CompositeTransport tries several in
// order. The API checks the cookie first, then the header:
//
//	tr := session.NewCompositeTransport(
//		session.NewCookieTransport(cookies, session.DefaultCookieName),
//		session.NewHeaderTransport(),
//	)
package session
