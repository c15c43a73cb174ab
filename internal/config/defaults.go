package config

import "time"

// Default values applied to every field left empty by the other sources.
const (
	DefaultHTTPAddress    = "127.0.0.1:8080"
	DefaultStaticDir      = "web-folder"
	DefaultRequestTimeout = 30 * time.Second
	DefaultTokenIssuer    = "go-web-server"
	DefaultTokenDuration  = 30 * time.Minute
	DefaultCookieName     = "auth-token"
	DefaultCookiePath     = "/"
	DefaultCookieSameSite = "lax"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Cookie: Cookie{
			Name:     DefaultCookieName,
			Path:     DefaultCookiePath,
			SameSite: DefaultCookieSameSite,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			StaticDir:      DefaultStaticDir,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
