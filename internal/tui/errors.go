// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-factory-planner/internal/service"
)

var errInvalidRate = errors.New("rate must be a non-negative number")

// userMessages maps service errors to the text shown in the status line.
var userMessages = []struct {
	err error
	msg string
}{
	{service.ErrNoSession, "not signed in"},
	{service.ErrNotGameOwner, "only the owner of the game can do this"},
	{service.ErrNoGameAccess, "you have no access to this game"},
	{service.ErrGameNotPersisted, "publish the game first"},
	{service.ErrGameAlreadyPersisted, "game is already published"},
	{service.ErrGameNotFound, "game not found"},
	{service.ErrFactoryNotFound, "factory not found"},
	{service.ErrInvalidDataProvided, "invalid input"},
}

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "network is down or the server is unavailable"
	}

	return err.Error()
}
