package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── NetAddress ────────────────────────────────────────────────────────────────

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "localhost", in: "localhost:8080", want: "localhost:8080"},
		{name: "ip", in: "127.0.0.1:9000", want: "127.0.0.1:9000"},
		{name: "empty host", in: ":8080", want: ":8080"},
		{name: "no port", in: "localhost", wantErr: true},
		{name: "bad port", in: "localhost:http", wantErr: true},
		{name: "zero port", in: "localhost:0", wantErr: true},
		{name: "port too large", in: "localhost:70000", wantErr: true},
		{name: "bad host", in: "example.invalid:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var a NetAddress
	assert.Equal(t, "", a.String())
	assert.Equal(t, "address", a.Type())
}

// ── BindFlags ─────────────────────────────────────────────────────────────────

func TestBindFlags_AllValues(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	v := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"-a", "localhost:8080",
		"--listen", "127.0.0.1:9090",
		"-d", "objsync.db",
		"-c", "cfg.json",
		"-k", "passphrase",
		"-t", "tok",
		"--token-sign-key", "sign",
		"--token-duration", "2h",
		"--request-timeout", "5s",
		"--sync-interval", "1m",
		"--chunk-size", "50",
		"--transfer-concurrency", "2",
		"--log-level", "warn",
	}))

	cfg := v.Config()
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "objsync.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "passphrase", cfg.App.EncryptionKey)
	assert.Equal(t, "tok", cfg.App.Token)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 50, cfg.Sync.ChunkSize)
	assert.Equal(t, 2, cfg.Adapter.TransferConcurrency)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestBindFlags_InvalidAddress(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	assert.Error(t, fs.Parse([]string{"-a", "nowhere"}))
}

func TestBindFlags_ZeroValuesWhenUnset(t *testing.T) {
	v := parsedFlags(t)
	assert.Equal(t, &StructuredConfig{}, v.Config())
}
