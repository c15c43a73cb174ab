package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-static-dir directory served by the static fallback
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "30m")
//	-cookie-name identity cookie name
//	-cookie-domain identity cookie domain
//	-cookie-secure mark the identity cookie Secure
//	-cookie-same-site lax, strict or none
//	-cookie-refresh-window re-issue window (e.g., "5m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-dev-seed create the demo account on startup
//	-metrics expose Prometheus metrics on /metrics
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-web-server", flag.ContinueOnError)

	var serverAddress NetAddress
	var staticDir string
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var cookieName, cookieDomain, cookieSameSite string
	var cookieSecure bool
	var cookieRefreshWindow time.Duration
	var requestTimeout time.Duration
	var devSeed bool
	var enableMetrics bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&staticDir, "static-dir", "", "Static assets directory")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 30m)")
	fs.StringVar(&cookieName, "cookie-name", "", "Identity cookie name")
	fs.StringVar(&cookieDomain, "cookie-domain", "", "Identity cookie domain")
	fs.BoolVar(&cookieSecure, "cookie-secure", false, "Mark the identity cookie Secure")
	fs.StringVar(&cookieSameSite, "cookie-same-site", "", "Identity cookie SameSite policy (lax, strict, none)")
	fs.DurationVar(&cookieRefreshWindow, "cookie-refresh-window", 0, "Re-issue the cookie when its remaining lifetime is below this value")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&devSeed, "dev-seed", false, "Create the demo account on startup")
	fs.BoolVar(&enableMetrics, "metrics", false, "Expose Prometheus metrics on /metrics")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			DevSeed:       devSeed,
		},
		Cookie: Cookie{
			Name:          cookieName,
			Domain:        cookieDomain,
			Secure:        cookieSecure,
			SameSite:      cookieSameSite,
			RefreshWindow: cookieRefreshWindow,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			StaticDir:      staticDir,
			RequestTimeout: requestTimeout,
			EnableMetrics:  enableMetrics,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the
// default address applies.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
