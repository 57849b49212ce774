package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrLoginAlreadyTaken   = errors.New("login already taken")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrRefreshTokenInvalid     = errors.New("refresh token is invalid or expired")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrGameNotFound   = errors.New("game not found")
	ErrNotGameOwner   = errors.New("only the owner of the game can do this")
	ErrNoGameAccess   = errors.New("game is neither owned nor joined by the user")
	ErrInvalidPayload = errors.New("invalid game payload")
)

// Client-side errors.
var (
	ErrNoSession            = errors.New("not signed in")
	ErrGameNotPersisted     = errors.New("game has no remote row")
	ErrGameAlreadyPersisted = errors.New("game already has a remote row")
	ErrFactoryNotFound      = errors.New("factory not found")
	ErrRemoteAuthority      = errors.New("remote authority error")
)
