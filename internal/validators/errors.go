package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyLogin    = errors.New("login is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrInvalidLogin  = errors.New("login is too long or contains spaces")

	ErrEmptyName       = errors.New("name is required")
	ErrNameTooLong     = errors.New("name is too long")
	ErrEmptyData       = errors.New("data is required")
	ErrMalformedData   = errors.New("data is not a game snapshot")
	ErrInvalidVersion  = errors.New("invalid version")
	ErrEmptyIDs        = errors.New("IDs list cannot be empty")
	ErrTooManyIDs      = errors.New("too many IDs requested")
	ErrDuplicateID     = errors.New("duplicate factory id")
	ErrDanglingFactory = errors.New("factory list and factories disagree")
	ErrOrphanSolver    = errors.New("solver without a factory")
	ErrNegativeRate    = errors.New("rate must not be negative")
)
