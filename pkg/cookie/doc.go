// Package cookie sets, reads and clears the session cookie.
//
// The token stored in the cookie is already a signed JWT, so values are
// written as-is. The Manager applies shared attributes (path, domain, Secure,
// HttpOnly, SameSite) taken from Config.
package cookie
