// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"net/url"
	"time"

	"github.com/MKhiriev/game-stats/internal/envconfig"
	"github.com/rs/zerolog"
)

// Environment prefixes of the sub-configurations.
const (
	SourceDatabasePrefix  = "DB_"
	HTTPPrefix            = "HTTP_"
	GameDataServerPrefix  = "GAME_DATA_SERVER_"
	ConiferDatabasePrefix = "CONIFER_DB_"
	StatsAPIPrefix        = "STATS_API_"
)

// APIConfig is the configuration of the stats-api service.
//
// Env:
//   - DB_HOST, DB_PORT, DB_DATABASE_NAME, DB_USER, DB_PASSWORD
//   - HTTP_HOST, HTTP_PORT
//   - HTTP_RATE_LIMIT_RPS, HTTP_RATE_LIMIT_BURST (optional, default 0)
type APIConfig struct {
	// SourceDatabase is the database the statistics are read from.
	SourceDatabase DatabaseConfig

	// HTTP is the address the API listens on.
	HTTP HTTPConfig
}

// SyncerConfig is the configuration of the conifer-syncer service.
//
// Env:
//   - GAME_DATA_SERVER_GRPC_ENDPOINT_URL
//   - CONIFER_DB_HOST, CONIFER_DB_PORT, CONIFER_DB_DATABASE_NAME,
//     CONIFER_DB_USER, CONIFER_DB_PASSWORD
type SyncerConfig struct {
	// GameDataServer is the gRPC endpoint statistics are fetched from.
	GameDataServer GameDataServerConfig

	// ConiferDatabase is the database the statistics are written to.
	ConiferDatabase DatabaseConfig
}

// ClientConfig is the configuration of the statsctl command.
//
// Env:
//   - STATS_API_URL
//   - STATS_API_TIMEOUT (optional, default 10s)
type ClientConfig struct {
	StatsAPI StatsAPIConfig
}

// DatabaseConfig holds connection settings of a PostgreSQL database.
type DatabaseConfig struct {
	Host         string         `env:"HOST"`
	Port         envconfig.Port `env:"PORT"`
	DatabaseName string         `env:"DATABASE_NAME"`
	User         string         `env:"USER"`
	Password     string         `env:"PASSWORD"`
}

// HTTPConfig holds the listen address of an HTTP server and its request
// rate limit. A RateLimitRPS of zero disables limiting.
type HTTPConfig struct {
	Host           string         `env:"HOST"`
	Port           envconfig.Port `env:"PORT"`
	RateLimitRPS   float64        `env:"RATE_LIMIT_RPS" envDefault:"0"`
	RateLimitBurst int            `env:"RATE_LIMIT_BURST" envDefault:"0"`
}

// GameDataServerConfig holds the endpoint of the game data gRPC server,
// e.g. "http://game-data:50051" or "https://game-data.example.com".
type GameDataServerConfig struct {
	GRPCEndpointURL string `env:"GRPC_ENDPOINT_URL"`
}

// StatsAPIConfig locates a running stats-api, e.g. "http://localhost:8080".
type StatsAPIConfig struct {
	URL     string        `env:"URL"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// DecodePairs implements envconfig.Decoder.
func (c *APIConfig) DecodePairs(pairs envconfig.Pairs) error {
	var cfg APIConfig
	if err := envconfig.Compose(pairs,
		envconfig.Sub(SourceDatabasePrefix, &cfg.SourceDatabase),
		envconfig.Sub(HTTPPrefix, &cfg.HTTP),
	); err != nil {
		return wrapLoadError("api", err)
	}

	*c = cfg
	return nil
}

// DecodePairs implements envconfig.Decoder.
func (c *SyncerConfig) DecodePairs(pairs envconfig.Pairs) error {
	var cfg SyncerConfig
	if err := envconfig.Compose(pairs,
		envconfig.Sub(GameDataServerPrefix, &cfg.GameDataServer),
		envconfig.Sub(ConiferDatabasePrefix, &cfg.ConiferDatabase),
	); err != nil {
		return wrapLoadError("syncer", err)
	}

	*c = cfg
	return nil
}

// DecodePairs implements envconfig.Decoder.
func (c *ClientConfig) DecodePairs(pairs envconfig.Pairs) error {
	var cfg ClientConfig
	if err := envconfig.Compose(pairs,
		envconfig.Sub(StatsAPIPrefix, &cfg.StatsAPI),
	); err != nil {
		return wrapLoadError("client", err)
	}

	*c = cfg
	return nil
}

// DSN returns the PostgreSQL connection URL for the database.
func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Host, c.Port.String()),
		Path:   "/" + c.DatabaseName,
	}

	return u.String()
}

// Address returns the "host:port" listen address.
func (c HTTPConfig) Address() string {
	return net.JoinHostPort(c.Host, c.Port.String())
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler. The password is
// never written to the log.
func (c DatabaseConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Str("host", c.Host).
		Uint16("port", uint16(c.Port)).
		Str("database_name", c.DatabaseName).
		Str("user", c.User).
		Bool("password_set", c.Password != "")
}

func (c HTTPConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Str("host", c.Host).
		Uint16("port", uint16(c.Port)).
		Float64("rate_limit_rps", c.RateLimitRPS).
		Int("rate_limit_burst", c.RateLimitBurst)
}

func (c GameDataServerConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Str("grpc_endpoint_url", c.GRPCEndpointURL)
}

func (c APIConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Object("source_database", c.SourceDatabase).Object("http", c.HTTP)
}

func (c SyncerConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Object("game_data_server", c.GameDataServer).Object("conifer_database", c.ConiferDatabase)
}

func (c StatsAPIConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Str("url", c.URL).Dur("timeout", c.Timeout)
}

func (c ClientConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Object("stats_api", c.StatsAPI)
}
