package gamedata

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/url"
	"strings"

	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// endpoint is a parsed GRPC_ENDPOINT_URL.
type endpoint struct {
	target string
	creds  credentials.TransportCredentials
	secure bool
}

// parseEndpoint turns the configured endpoint into a dial target.
//
// "http://host[:port]" dials without TLS (default port 80), "https://host[:port]"
// dials with TLS (default port 443) and a bare "host:port" dials without TLS.
func parseEndpoint(raw string) (endpoint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return endpoint{}, ErrEmptyEndpoint
	}

	if !strings.Contains(raw, "://") {
		if _, _, err := net.SplitHostPort(raw); err != nil {
			return endpoint{}, fmt.Errorf("%w: %q: %w", ErrInvalidEndpoint, raw, err)
		}
		return endpoint{target: raw, creds: insecure.NewCredentials()}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return endpoint{}, fmt.Errorf("%w: %q: %w", ErrInvalidEndpoint, raw, err)
	}
	var (
		defaultPort string
		ep          endpoint
	)
	switch strings.ToLower(u.Scheme) {
	case "http":
		defaultPort = "80"
		ep.creds = insecure.NewCredentials()
	case "https":
		defaultPort = "443"
		ep.creds = credentials.NewTLS(&tls.Config{
			MinVersion: tls.VersionTLS12,
			ServerName: u.Hostname(),
		})
		ep.secure = true
	default:
		return endpoint{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}

	if u.Hostname() == "" {
		return endpoint{}, fmt.Errorf("%w: %q: missing host", ErrInvalidEndpoint, raw)
	}

	port := u.Port()
	if port == "" {
		port = defaultPort
	}
	ep.target = net.JoinHostPort(u.Hostname(), port)

	return ep, nil
}
