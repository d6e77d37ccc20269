// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the server. It is populated by merging command-line flags,
// environment variables, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds keys and credentials.
	App App `envPrefix:"APP_"`

	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address of the reference object API.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds how the client reaches the object API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds batching settings of the sync engine.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level secrets.
type App struct {
	// EncryptionKey is the passphrase object payloads are encrypted with.
	// Env: APP_ENCRYPTION_KEY
	EncryptionKey string `env:"ENCRYPTION_KEY"`

	// Token is the bearer token the client authenticates with.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// HashKey signs request bodies (HashSHA256 header) when set.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// TokenSignKey is the server secret used to sign and verify tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim issued and expected by the server.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued tokens (e.g. "720h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings of the local sqlite database.
type DB struct {
	// DSN is the sqlite database file (e.g. "objsync.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds settings of the reference object API.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// PublicURL is the externally reachable base URL used to build signed
	// blob upload URLs. Defaults to http://<HTTPAddress>.
	// Env: SERVER_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client transport settings.
type Adapter struct {
	// HTTPAddress is the object API base URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// WebSocketAddress is the live-update endpoint. Derived from
	// HTTPAddress when empty.
	// Env: ADAPTER_WS_ADDRESS
	WebSocketAddress string `env:"WS_ADDRESS"`

	// RequestTimeout bounds a single outbound API request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TransferConcurrency is the sliding window of blob transfers.
	// Env: ADAPTER_TRANSFER_CONCURRENCY
	TransferConcurrency int `env:"TRANSFER_CONCURRENCY"`

	// TransferRateLimit caps blob transfer throughput in bytes per second.
	// Zero disables the limit.
	// Env: ADAPTER_TRANSFER_RATE_LIMIT
	TransferRateLimit int `env:"TRANSFER_RATE_LIMIT"`
}

// Sync holds batching settings of the sync engine.
type Sync struct {
	// ChunkSize is the maximum number of objects per inline save.
	// Env: SYNC_CHUNK_SIZE
	ChunkSize int `env:"CHUNK_SIZE"`

	// DirectUploadChunkSize is the maximum number of objects per direct
	// upload batch.
	// Env: SYNC_DIRECT_UPLOAD_CHUNK_SIZE
	DirectUploadChunkSize int `env:"DIRECT_UPLOAD_CHUNK_SIZE"`

	// DirectUploadThreshold is the encrypted payload size in bytes from
	// which an object is uploaded directly to blob storage.
	// Env: SYNC_DIRECT_UPLOAD_THRESHOLD
	DirectUploadThreshold int64 `env:"DIRECT_UPLOAD_THRESHOLD"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the background full sync.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// LiveUpdates enables the live-update subscription.
	// Env: WORKERS_LIVE_UPDATES
	LiveUpdates bool `env:"LIVE_UPDATES"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the log file of the client. Empty logs next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Default values applied before any other source.
const (
	DefaultChunkSize             = 1000
	DefaultDirectUploadChunkSize = 100
	DefaultDirectUploadThreshold = 64 << 10
	DefaultTransferConcurrency   = 4
	DefaultRequestTimeout        = 30 * time.Second
	DefaultSyncInterval          = 5 * time.Minute
	DefaultTokenDuration         = 30 * 24 * time.Hour
	DefaultTokenIssuer           = "objsync"
	DefaultLogLevel              = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout:      DefaultRequestTimeout,
			TransferConcurrency: DefaultTransferConcurrency,
		},
		Sync: Sync{
			ChunkSize:             DefaultChunkSize,
			DirectUploadChunkSize: DefaultDirectUploadChunkSize,
			DirectUploadThreshold: DefaultDirectUploadThreshold,
		},
		Workers: Workers{
			SyncInterval: DefaultSyncInterval,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources. flags may be nil when the caller has no command line.
func GetStructuredConfig(flags *FlagValues) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withDotEnv(".env").
		withEnv().
		withJSON().
		withDefaults().
		build()
}
