package config

import (
	"errors"
	"flag"
	"fmt"
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

// ParseFlags parses configuration flags from args into a fresh
// [StructuredConfig]. A dedicated flag set is used, so the function may be
// called more than once per process.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-d database DSN
//	-f bucket directory
//	-bucket bucket name
//	-public-url public base URL of object links
//	-cors comma separated list of allowed CORS origins
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-server archive server base URL used by the client
//	-client-timeout client request timeout
//	-refresh-interval client list refresh interval
//	-session-file client session file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("char-archive", flag.ContinueOnError)

	var (
		serverAddress   NetAddress
		databaseDSN     string
		bucketDir       string
		bucket          string
		publicURL       string
		corsOrigins     string
		jsonConfigPath  string
		tokenSignKey    string
		tokenIssuer     string
		tokenDuration   time.Duration
		requestTimeout  time.Duration
		adapterAddress  string
		clientTimeout   time.Duration
		refreshInterval time.Duration
		sweepInterval   time.Duration
		sessionFile     string
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&bucketDir, "f", "", "Bucket directory")
	fs.StringVar(&bucket, "bucket", "", "Bucket name")
	fs.StringVar(&publicURL, "public-url", "", "Public base URL of object links")
	fs.StringVar(&corsOrigins, "cors", "", "Comma separated allowed CORS origins")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&adapterAddress, "server", "", "Archive server base URL")
	fs.DurationVar(&clientTimeout, "client-timeout", 0, "Client request timeout")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Character list refresh interval")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Expired session sweep interval")
	fs.StringVar(&sessionFile, "session-file", "", "Client session file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				BucketDir:     bucketDir,
				Bucket:        bucket,
				PublicBaseURL: publicURL,
			},
			SessionFile: sessionFile,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			CORSOrigins:    splitList(corsOrigins),
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: clientTimeout,
		},
		Workers: Workers{
			RefreshInterval:      refreshInterval,
			SessionSweepInterval: sweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
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
