package cookie

import (
	"fmt"
	"net/http"
	"strings"
)

// Config holds the cookie attributes shared by every cookie the API writes.
type Config struct {
	Path     string `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string `env:"COOKIE_DOMAIN" envDefault:""`
	Secure   bool   `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly bool   `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite string `env:"COOKIE_SAME_SITE" envDefault:"lax"` // lax, strict or none
}

// NewFromConfig creates a Manager from cfg; opts are applied last.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	mode, err := ParseSameSite(cfg.SameSite)
	if err != nil {
		return nil, err
	}

	configOpts := []Option{
		WithSecure(cfg.Secure),
		WithHTTPOnly(cfg.HttpOnly),
		WithSameSite(mode),
	}
	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}

	return New(append(configOpts, opts...)...), nil
}

// ParseSameSite maps "lax", "strict", "none" (any case) to http.SameSite.
// An empty string yields the default mode.
func ParseSameSite(s string) (http.SameSite, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return http.SameSiteDefaultMode, nil
	case "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSameSite, s)
}
