// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It signs the user in, loads their games and hands the terminal to the UI,
// flushing pending edits before the background services stop.
package client
