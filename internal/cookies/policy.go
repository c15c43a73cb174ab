// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cookies provides request-scoped access to signed identity cookies.
//
// A [Jar] exposes the cookies sent with the request and stages cookie
// mutations for the response. Staged mutations are written to the response
// headers exactly once, when the response is committed, unless the jar has
// been discarded in the meantime. [Middleware] installs a jar for every
// request so no caller manages its lifetime manually.
package cookies

import (
	"net/http"
	"strings"
	"time"
)

// SameSite policy names accepted in configuration.
const (
	SameSiteLax    = "lax"
	SameSiteStrict = "strict"
	SameSiteNone   = "none"
)

// Policy describes how the identity cookie is written. It is built once at
// startup from configuration and never mutated afterwards.
type Policy struct {
	// Name is the cookie name (e.g. "auth-token").
	Name string

	// Path scopes the cookie; defaults to "/" when empty.
	Path string

	// Domain scopes the cookie to a domain; empty means host-only.
	Domain string

	// Secure restricts the cookie to HTTPS.
	Secure bool

	// SameSite is one of [SameSiteLax], [SameSiteStrict] or [SameSiteNone].
	SameSite string
}

// Cookie builds the identity cookie carrying value, expiring at expires.
// Cookies are always HttpOnly: the token is never meant to be read by scripts.
func (p Policy) Cookie(value string, expires time.Time) *http.Cookie {
	c := p.base()
	c.Value = value
	c.Expires = expires
	return c
}

// Removal builds a cookie that instructs the client to drop the identity
// cookie.
func (p Policy) Removal() *http.Cookie {
	c := p.base()
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	return c
}

func (p Policy) base() *http.Cookie {
	path := p.Path
	if path == "" {
		path = "/"
	}

	return &http.Cookie{
		Name:     p.Name,
		Path:     path,
		Domain:   p.Domain,
		Secure:   p.Secure,
		HttpOnly: true,
		SameSite: ParseSameSite(p.SameSite),
	}
}

// ParseSameSite maps a configuration value to [http.SameSite]. Unknown values
// fall back to the browser default.
func ParseSameSite(s string) http.SameSite {
	switch strings.ToLower(s) {
	case SameSiteStrict:
		return http.SameSiteStrictMode
	case SameSiteLax:
		return http.SameSiteLaxMode
	case SameSiteNone:
		return http.SameSiteNoneMode
	default:
		return http.SameSiteDefaultMode
	}
}

// IsValidSameSite reports whether s is a supported SameSite policy name.
func IsValidSameSite(s string) bool {
	switch strings.ToLower(s) {
	case SameSiteLax, SameSiteStrict, SameSiteNone:
		return true
	}
	return false
}
