package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-factory-planner/models"
)

// ClientAdapter holds the connection settings of the remote authority.
type ClientAdapter struct {
	// ServerURL is the base URL of the authority.
	ServerURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientSync holds the timings of the background synchronization.
type ClientSync struct {
	DebounceInterval time.Duration
	RefreshMargin    time.Duration
	ReconnectDelay   time.Duration
}

// ClientConfig is the configuration view of the terminal client, assembled
// from [StructuredConfig].
type ClientConfig struct {
	Adapter     ClientAdapter
	Credentials models.Credentials
	SignUp      bool
	Sync        ClientSync
	LogFile     string
	Version     string
}

// GetClientConfig loads the merged configuration and maps the fields the
// client runtime needs. Server settings are not validated here.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			ServerURL:      cfg.Adapter.ServerURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Credentials: models.Credentials{
			Login:    cfg.Adapter.Login,
			Password: cfg.Adapter.Password,
		},
		SignUp: cfg.Adapter.SignUp,
		Sync: ClientSync{
			DebounceInterval: cfg.Sync.DebounceInterval,
			RefreshMargin:    cfg.Sync.RefreshMargin,
			ReconnectDelay:   cfg.Sync.ReconnectDelay,
		},
		LogFile: cfg.Client.LogFile,
		Version: cfg.App.Version,
	}
}
