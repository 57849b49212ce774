package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered identifiers.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random v4 if the clock
// source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewShareToken returns an unguessable token for joining a game.
func NewShareToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NewRefreshToken returns an opaque single-use refresh token.
func NewRefreshToken() string {
	return NewShareToken() + NewShareToken()
}
