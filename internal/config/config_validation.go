// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// validate checks the settings the server cannot start without.
func (cfg *StructuredConfig) validate() error {
	var err error

	if cfg.Storage.DB.DSN == "" {
		err = errors.Join(err, ErrInvalidStorageConfigs)
	}
	if cfg.Server.HTTPAddress == "" {
		err = errors.Join(err, ErrInvalidServerConfigs)
	}
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 || cfg.App.RefreshTokenDuration <= 0 {
		err = errors.Join(err, ErrInvalidAppConfigs)
	}

	return err
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Credentials.Login == "" || cfg.Credentials.Password == "" {
		return ErrInvalidCredentials
	}

	if cfg.Sync.DebounceInterval <= 0 || cfg.Sync.RefreshMargin < 0 || cfg.Sync.ReconnectDelay <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
