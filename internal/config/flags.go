package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// FlagValues holds the destinations of the configuration flags registered
// by [BindFlags]. Call [FlagValues.Config] after the flag set is parsed.
type FlagValues struct {
	address           NetAddress
	serverAddress     NetAddress
	wsAddress         string
	databaseDSN       string
	jsonConfigPath    string
	encryptionKey     string
	token             string
	hashKey           string
	tokenSignKey      string
	tokenIssuer       string
	tokenDuration     time.Duration
	requestTimeout    time.Duration
	syncInterval      time.Duration
	chunkSize         int
	uploadConcurrency int
	rateLimit         int
	logLevel          string
	logFile           string
}

// BindFlags registers all configuration flags on fs.
//
// Flags:
//
//	-a/--address object API address (client) in format [host]:[port]
//	--listen listen address (server) in format [host]:[port]
//	--ws-address live-update websocket URL
//	-d/--dsn local database file
//	-c/--config json file path with configs
//	-k/--encryption-key payload encryption passphrase
//	-t/--token bearer token
//	--hash-key request signing key
//	--token-sign-key token signing key
//	--token-issuer token issuer name
//	--token-duration token duration (e.g., "720h")
//	--request-timeout request timeout (e.g., "30s", "1m")
//	--sync-interval background sync period
//	--chunk-size objects per save request
//	--transfer-concurrency concurrent blob transfers
//	--transfer-rate-limit blob throughput in bytes per second
//	--log-level zerolog level
//	--log-file client log file
func BindFlags(fs *pflag.FlagSet) *FlagValues {
	v := &FlagValues{}

	fs.VarP(&v.address, "address", "a", "Object API address host:port")
	fs.Var(&v.serverAddress, "listen", "Listen address host:port")
	fs.StringVar(&v.wsAddress, "ws-address", "", "Live-update websocket URL")
	fs.StringVarP(&v.databaseDSN, "dsn", "d", "", "Local database file")
	fs.StringVarP(&v.jsonConfigPath, "config", "c", "", "JSON config file path")
	fs.StringVarP(&v.encryptionKey, "encryption-key", "k", "", "Payload encryption passphrase")
	fs.StringVarP(&v.token, "token", "t", "", "Bearer token")
	fs.StringVar(&v.hashKey, "hash-key", "", "Request signing key")
	fs.StringVar(&v.tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&v.tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&v.tokenDuration, "token-duration", 0, "Token duration (e.g., 720h)")
	fs.DurationVar(&v.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&v.syncInterval, "sync-interval", 0, "Background sync period")
	fs.IntVar(&v.chunkSize, "chunk-size", 0, "Objects per save request")
	fs.IntVar(&v.uploadConcurrency, "transfer-concurrency", 0, "Concurrent blob transfers")
	fs.IntVar(&v.rateLimit, "transfer-rate-limit", 0, "Blob throughput in bytes per second")
	fs.StringVar(&v.logLevel, "log-level", "", "Log level")
	fs.StringVar(&v.logFile, "log-file", "", "Client log file")

	return v
}

// Config converts the parsed flag values into a partial [StructuredConfig].
func (v *FlagValues) Config() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			EncryptionKey: v.encryptionKey,
			Token:         v.token,
			HashKey:       v.hashKey,
			TokenSignKey:  v.tokenSignKey,
			TokenIssuer:   v.tokenIssuer,
			TokenDuration: v.tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: v.databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    v.serverAddress.String(),
			RequestTimeout: v.requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:         v.address.String(),
			WebSocketAddress:    v.wsAddress,
			RequestTimeout:      v.requestTimeout,
			TransferConcurrency: v.uploadConcurrency,
			TransferRateLimit:   v.rateLimit,
		},
		Sync: Sync{
			ChunkSize: v.chunkSize,
		},
		Workers: Workers{
			SyncInterval: v.syncInterval,
		},
		Log: Log{
			Level: v.logLevel,
			File:  v.logFile,
		},
		JSONFilePath: v.jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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
		return errors.New("port number must be in range 1..65535")
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

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "address"
}
