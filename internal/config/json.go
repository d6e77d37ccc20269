package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		EncryptionKey string   `json:"encryption_key"`
		Token         string   `json:"token"`
		HashKey       string   `json:"hash_key"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		PublicURL      string   `json:"public_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress         string   `json:"http_address"`
		WebSocketAddress    string   `json:"ws_address"`
		RequestTimeout      Duration `json:"request_timeout"`
		TransferConcurrency int      `json:"transfer_concurrency"`
		TransferRateLimit   int      `json:"transfer_rate_limit"`
	} `json:"adapter,omitempty"`

	Sync struct {
		ChunkSize             int   `json:"chunk_size"`
		DirectUploadChunkSize int   `json:"direct_upload_chunk_size"`
		DirectUploadThreshold int64 `json:"direct_upload_threshold"`
	} `json:"sync,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
		LiveUpdates  bool     `json:"live_updates"`
	} `json:"workers,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			EncryptionKey: jsonCfg.App.EncryptionKey,
			Token:         jsonCfg.App.Token,
			HashKey:       jsonCfg.App.HashKey,
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			PublicURL:      jsonCfg.Server.PublicURL,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:         jsonCfg.Adapter.HTTPAddress,
			WebSocketAddress:    jsonCfg.Adapter.WebSocketAddress,
			RequestTimeout:      time.Duration(jsonCfg.Adapter.RequestTimeout),
			TransferConcurrency: jsonCfg.Adapter.TransferConcurrency,
			TransferRateLimit:   jsonCfg.Adapter.TransferRateLimit,
		},
		Sync: Sync{
			ChunkSize:             jsonCfg.Sync.ChunkSize,
			DirectUploadChunkSize: jsonCfg.Sync.DirectUploadChunkSize,
			DirectUploadThreshold: jsonCfg.Sync.DirectUploadThreshold,
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
			LiveUpdates:  jsonCfg.Workers.LiveUpdates,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
