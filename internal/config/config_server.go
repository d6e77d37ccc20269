package config

import (
	"fmt"
	"time"
)

// ServerApp holds the token and signing secrets of the object API.
type ServerApp struct {
	HashKey       string
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// ServerConfig is the configuration view of the reference object API.
type ServerConfig struct {
	App            ServerApp
	HTTPAddress    string
	PublicURL      string
	RequestTimeout time.Duration
	Log            Log
}

// GetServerConfig builds and validates the server config view.
func GetServerConfig(flags *FlagValues) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)

	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	publicURL := cfg.Server.PublicURL
	if publicURL == "" && cfg.Server.HTTPAddress != "" {
		publicURL = normalizeHTTPAddress(cfg.Server.HTTPAddress)
	}

	return &ServerConfig{
		App: ServerApp{
			HashKey:       cfg.App.HashKey,
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
		HTTPAddress:    cfg.Server.HTTPAddress,
		PublicURL:      normalizeHTTPAddress(publicURL),
		RequestTimeout: cfg.Server.RequestTimeout,
		Log:            cfg.Log,
	}
}
