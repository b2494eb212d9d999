package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver ("sqlite3" or "pgx")
//	-blob-dir encrypted blob directory
//	-upload-dir transient upload directory
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-index-vectors vector store file path
//	-index-mapping position→docid mapping file path
//	-index-dim embedding dimensionality
//	-crypto-workers crypto worker pool size
//	-embedder embedding provider mode ("local" or "remote")
//	-embedder-url remote embeddings service URL
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN, databaseDriver string
	var blobDir, uploadDir string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var indexVectors, indexMapping string
	var indexDim, cryptoWorkers int
	var embedderMode, embedderURL string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (sqlite3 or pgx)")
	flag.StringVar(&blobDir, "blob-dir", "", "Encrypted blob directory")
	flag.StringVar(&uploadDir, "upload-dir", "", "Transient upload directory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&indexVectors, "index-vectors", "", "Vector store file path")
	flag.StringVar(&indexMapping, "index-mapping", "", "Index mapping file path")
	flag.IntVar(&indexDim, "index-dim", 0, "Embedding dimensionality")
	flag.IntVar(&cryptoWorkers, "crypto-workers", 0, "Crypto worker pool size")
	flag.StringVar(&embedderMode, "embedder", "", "Embedding provider mode (local or remote)")
	flag.StringVar(&embedderURL, "embedder-url", "", "Remote embeddings service URL")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
			Files: Files{
				BlobDir:   blobDir,
				UploadDir: uploadDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Index: Index{
			VectorsPath: indexVectors,
			MappingPath: indexMapping,
			Dimension:   indexDim,
		},
		Workers: Workers{
			CryptoPoolSize: cryptoWorkers,
		},
		Embedder: Embedder{
			Mode:      embedderMode,
			RemoteURL: embedderURL,
		},
		JSONFilePath: jsonConfigPath,
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
