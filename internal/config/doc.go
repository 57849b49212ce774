// Package config loads, merges and validates the configuration of the
// planner server and client.
//
// Sources are consulted in the following priority order; for every field the
// first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// [GetStructuredConfig] returns the server configuration and
// [GetClientConfig] the client view.
package config
