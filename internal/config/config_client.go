package config

import (
	"fmt"
	"strings"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// EncryptionKey is the passphrase payloads are encrypted with.
	EncryptionKey string
	// Token is the bearer token sent with every API call.
	Token string
	// HashKey is the HMAC key used to sign request bodies.
	HashKey string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the object API base URL.
	HTTPAddress string
	// WebSocketAddress is the live-update endpoint.
	WebSocketAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// TransferConcurrency is the number of concurrent blob transfers.
	TransferConcurrency int
	// TransferRateLimit caps blob throughput in bytes per second, 0 = off.
	TransferRateLimit int
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database file.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the background full sync runs.
	SyncInterval time.Duration
	// LiveUpdates enables the live-update subscription.
	LiveUpdates bool
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Sync    Sync
	Workers ClientWorkers
	Log     Log
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(flags *FlagValues) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	httpAddress := normalizeHTTPAddress(cfg.Adapter.HTTPAddress)
	wsAddress := cfg.Adapter.WebSocketAddress
	if wsAddress == "" && httpAddress != "" {
		wsAddress = liveUpdatesURL(httpAddress)
	}

	return &ClientConfig{
		App: ClientApp{
			EncryptionKey: cfg.App.EncryptionKey,
			Token:         cfg.App.Token,
			HashKey:       cfg.App.HashKey,
		},
		Adapter: ClientAdapter{
			HTTPAddress:         httpAddress,
			WebSocketAddress:    wsAddress,
			RequestTimeout:      cfg.Adapter.RequestTimeout,
			TransferConcurrency: cfg.Adapter.TransferConcurrency,
			TransferRateLimit:   cfg.Adapter.TransferRateLimit,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Sync: cfg.Sync,
		Workers: ClientWorkers{
			SyncInterval: cfg.Workers.SyncInterval,
			LiveUpdates:  cfg.Workers.LiveUpdates,
		},
		Log: cfg.Log,
	}
}

// normalizeHTTPAddress prefixes a bare host:port with http://.
func normalizeHTTPAddress(addr string) string {
	if addr == "" || strings.Contains(addr, "://") {
		return strings.TrimRight(addr, "/")
	}
	return "http://" + strings.TrimRight(addr, "/")
}

func liveUpdatesURL(httpAddress string) string {
	switch {
	case strings.HasPrefix(httpAddress, "https://"):
		return "wss://" + strings.TrimPrefix(httpAddress, "https://") + "/api/objects/live"
	case strings.HasPrefix(httpAddress, "http://"):
		return "ws://" + strings.TrimPrefix(httpAddress, "http://") + "/api/objects/live"
	default:
		return httpAddress + "/api/objects/live"
	}
}
