// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuthEvent names a transition of the authentication state.
type AuthEvent string

const (
	AuthEventSignedIn       AuthEvent = "SIGNED_IN"
	AuthEventSignedOut      AuthEvent = "SIGNED_OUT"
	AuthEventTokenRefreshed AuthEvent = "TOKEN_REFRESHED"
)

// Session is the credential session of the signed-in user. A session is
// replaced wholesale on every refresh and destroyed on sign-out.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`

	// ExpiresAt is the access token expiry in seconds since the Unix epoch.
	// Zero means the expiry is unknown.
	ExpiresAt int64 `json:"expires_at"`

	UserID int64 `json:"user_id"`
}

// Expiry returns the expiry instant and whether it is known.
func (s Session) Expiry() (time.Time, bool) {
	if s.ExpiresAt <= 0 {
		return time.Time{}, false
	}
	return time.Unix(s.ExpiresAt, 0), true
}

// Credentials are the login and password a user signs in with.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// RefreshRequest exchanges a refresh token for a new session.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshToken is the server-side record of an issued refresh token.
type RefreshToken struct {
	Token     string    `json:"-"`
	UserID    int64     `json:"-"`
	ExpiresAt time.Time `json:"-"`
}
