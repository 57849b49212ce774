package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress holds a host and a port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// commandLineArgs returns the process arguments, or none while running under
// go test so the test binary flags are not parsed as configuration.
func commandLineArgs() []string {
	if flag.Lookup("test.v") != nil {
		return nil
	}
	return os.Args[1:]
}

// parseFlags parses the configuration flags in args.
//
// Flags:
//
//	-a                      HTTP listen address host:port
//	-grpc-address           gRPC listen address host:port
//	-d                      database DSN
//	-c, -config             JSON config file path
//	-token-sign-key         access token signing key
//	-token-issuer           access token issuer
//	-token-duration         access token lifetime (e.g. 15m)
//	-refresh-token-duration refresh token lifetime (e.g. 720h)
//	-request-timeout        server request timeout
//	-shutdown-timeout       graceful shutdown bound
//	-token-purge-interval   expired refresh token purge period
//	-server-url             authority base URL used by the client
//	-adapter-timeout        client request timeout
//	-login, -password       client credentials
//	-sign-up                register the credentials if sign-in fails
//	-debounce               quiet period before a push
//	-refresh-margin         session refresh lead time
//	-reconnect-delay        realtime reconnect pause
//	-log-file               client log file
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		cfg               StructuredConfig
		httpAddr, grpcAdr NetAddress
	)

	fs := flag.NewFlagSet("planner", flag.ContinueOnError)

	fs.Var(&httpAddr, "a", "Net address host:port")
	fs.Var(&grpcAdr, "grpc-address", "gRPC server address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Access token lifetime")
	fs.DurationVar(&cfg.App.RefreshTokenDuration, "refresh-token-duration", 0, "Refresh token lifetime")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Server request timeout")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.DurationVar(&cfg.Server.TokenPurgeInterval, "token-purge-interval", 0, "Expired refresh token purge period")
	fs.StringVar(&cfg.Adapter.ServerURL, "server-url", "", "Authority base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "adapter-timeout", 0, "Client request timeout")
	fs.StringVar(&cfg.Adapter.Login, "login", "", "Client login")
	fs.StringVar(&cfg.Adapter.Password, "password", "", "Client password")
	fs.BoolVar(&cfg.Adapter.SignUp, "sign-up", false, "Register the credentials if sign-in fails")
	fs.DurationVar(&cfg.Sync.DebounceInterval, "debounce", 0, "Quiet period before a push")
	fs.DurationVar(&cfg.Sync.RefreshMargin, "refresh-margin", 0, "Session refresh lead time")
	fs.DurationVar(&cfg.Sync.ReconnectDelay, "reconnect-delay", 0, "Realtime reconnect pause")
	fs.StringVar(&cfg.Client.LogFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = httpAddr.String()
	cfg.Server.GRPCAddress = grpcAdr.String()

	return &cfg, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost", empty or an IP.
func (a *NetAddress) Set(s string) error {
	host, portStr, ok := strings.Cut(s, ":")
	if !ok || strings.Contains(portStr, ":") {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
