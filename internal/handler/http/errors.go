// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the authentication middleware and the request
// decoding helpers. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of
	// the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoUserInContext means an authed route ran without the auth
	// middleware.
	ErrNoUserInContext = errors.New("no authenticated user in request context")

	// ErrInvalidQueryParam is returned for a missing or malformed numeric
	// query parameter.
	ErrInvalidQueryParam = errors.New("invalid query parameter")
)
