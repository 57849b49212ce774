// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration of the planner server and
// client. It is populated by merging environment variables, command-line
// flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name of a scalar field.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings of the server.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts of the HTTP and gRPC
	// servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client side view of the remote authority: its URL,
	// timeouts and the credentials used to sign in.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds the timings of the background synchronization.
	Sync Sync `envPrefix:"SYNC_"`

	// Client holds settings that only the terminal client reads.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values that control token lifecycle and
// versioning.
type App struct {
	// TokenSignKey signs and verifies access tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every access token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an access token (e.g. "15m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// RefreshTokenDuration is the lifetime of a refresh token.
	// Env: APP_REFRESH_TOKEN_DURATION
	RefreshTokenDuration time.Duration `env:"REFRESH_TOKEN_DURATION"`

	// Version is reported by both binaries at startup.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the persistence settings of the server.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the database connection settings.
type DB struct {
	// DSN selects the backend: "postgres://..." opens PostgreSQL, a
	// "file:" URI or a path ending in ".db" opens SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings of the inbound transport.
type Server struct {
	// HTTPAddress is the "host:port" the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the "host:port" of the gRPC health listener.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single non-streaming request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown of both servers.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// TokenPurgeInterval is the period of the expired refresh token purge.
	// Env: SERVER_TOKEN_PURGE_INTERVAL
	TokenPurgeInterval time.Duration `env:"TOKEN_PURGE_INTERVAL"`
}

// Adapter holds the client connection to the remote authority.
type Adapter struct {
	// ServerURL is the base URL of the authority (e.g. "http://localhost:8080").
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Login and Password are the credentials the client signs in with.
	// Env: ADAPTER_LOGIN, ADAPTER_PASSWORD
	Login    string `env:"LOGIN"`
	Password string `env:"PASSWORD"`

	// SignUp registers the credentials when the authority rejects them.
	// Env: ADAPTER_SIGN_UP
	SignUp bool `env:"SIGN_UP"`
}

// Sync holds the timings of the synchronization engine and the session
// scheduler.
type Sync struct {
	// DebounceInterval is the quiet period after the last local edit before
	// a push starts.
	// Env: SYNC_DEBOUNCE_INTERVAL
	DebounceInterval time.Duration `env:"DEBOUNCE_INTERVAL"`

	// RefreshMargin is how long before expiry the session is refreshed.
	// Env: SYNC_REFRESH_MARGIN
	RefreshMargin time.Duration `env:"REFRESH_MARGIN"`

	// ReconnectDelay is the pause between realtime reconnect attempts.
	// Env: SYNC_RECONNECT_DELAY
	ReconnectDelay time.Duration `env:"RECONNECT_DELAY"`
}

// Client holds terminal client settings.
type Client struct {
	// LogFile receives the client log. Empty means next to the executable.
	// Env: CLIENT_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Defaults applied to fields no other source has set.
const (
	DefaultDebounceInterval     = time.Second
	DefaultRefreshMargin        = 5 * time.Minute
	DefaultReconnectDelay       = 2 * time.Second
	DefaultRequestTimeout       = 10 * time.Second
	DefaultTokenDuration        = 15 * time.Minute
	DefaultRefreshTokenDuration = 30 * 24 * time.Hour
	DefaultTokenIssuer          = "go-factory-planner"
	DefaultShutdownTimeout      = 10 * time.Second
	DefaultTokenPurgeInterval   = time.Hour
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:          DefaultTokenIssuer,
			TokenDuration:        DefaultTokenDuration,
			RefreshTokenDuration: DefaultRefreshTokenDuration,
		},
		Server: Server{
			RequestTimeout:     DefaultRequestTimeout,
			ShutdownTimeout:    DefaultShutdownTimeout,
			TokenPurgeInterval: DefaultTokenPurgeInterval,
		},
		Adapter: Adapter{RequestTimeout: DefaultRequestTimeout},
		Sync: Sync{
			DebounceInterval: DefaultDebounceInterval,
			RefreshMargin:    DefaultRefreshMargin,
			ReconnectDelay:   DefaultReconnectDelay,
		},
	}
}

// GetStructuredConfig loads, merges and validates the server configuration.
// For every field the first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}
	return cfg, cfg.validate()
}

func load() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		withDefaults().
		build()
}
