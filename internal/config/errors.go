package config

import "errors"

// Validation errors returned when a configuration group is incomplete.
var (
	// ErrInvalidAdapterConfigs indicates a missing authority URL or request
	// timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates a missing token key or non-positive
	// token lifetimes.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidCredentials indicates a client without login or password.
	ErrInvalidCredentials = errors.New("invalid client credentials")
	// ErrInvalidSyncConfigs indicates non-positive synchronization timings.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
