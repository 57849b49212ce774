package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-factory-planner/models"
)

type GameValidator struct {
}

func NewGameValidator() Validator {
	return &GameValidator{}
}

func (v *GameValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.CreateGameRequest:
		return v.validateCreateRequest(ctx, value, fields...)
	case *models.CreateGameRequest:
		return v.validateCreateRequest(ctx, *value, fields...)

	case models.PersistRequest:
		return v.validatePersistRequest(ctx, value, fields...)
	case *models.PersistRequest:
		return v.validatePersistRequest(ctx, *value, fields...)

	case models.FetchByIDsRequest:
		return v.validateFetchByIDsRequest(ctx, value, fields...)
	case *models.FetchByIDsRequest:
		return v.validateFetchByIDsRequest(ctx, *value, fields...)

	case models.Snapshot:
		return v.validateSnapshot(ctx, value, fields...)
	case *models.Snapshot:
		return v.validateSnapshot(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *GameValidator) validateCredentials(ctx context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if credentials.Login == "" {
				return ErrEmptyLogin
			}
			if len(credentials.Login) > maxLoginLength || strings.ContainsAny(credentials.Login, " \t\n") {
				return ErrInvalidLogin
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GameValidator) validateCreateRequest(ctx context.Context, request models.CreateGameRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldData}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validateName(request.Name); err != nil {
				return err
			}
		case FieldData:
			if err := v.validatePayload(ctx, request.Data); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GameValidator) validatePersistRequest(ctx context.Context, request models.PersistRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldData, FieldVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldData:
			if err := v.validatePayload(ctx, request.Data); err != nil {
				return err
			}
		case FieldVersion:
			if request.Version < 1 {
				return ErrInvalidVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GameValidator) validateFetchByIDsRequest(ctx context.Context, request models.FetchByIDsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldIDs:
			if len(request.IDs) == 0 {
				return ErrEmptyIDs
			}
			if len(request.IDs) > maxBatchIDs {
				return ErrTooManyIDs
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GameValidator) validatePayload(ctx context.Context, payload []byte) error {
	if len(payload) == 0 {
		return ErrEmptyData
	}

	snap, err := models.DecodeSnapshot(payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedData, err)
	}

	return v.validateSnapshot(ctx, snap)
}

// validateSnapshot checks that the snapshot is self-contained: the ordered
// factory list and the factory map name the same ids, and every solver
// belongs to one of them.
func (v *GameValidator) validateSnapshot(ctx context.Context, snap models.Snapshot, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldFactories, FieldSolvers}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validateName(snap.Game.Name); err != nil {
				return err
			}
		case FieldFactories:
			seen := make(map[string]struct{}, len(snap.Game.FactoryIDs))
			for _, id := range snap.Game.FactoryIDs {
				if _, dup := seen[id]; dup {
					return fmt.Errorf("%w: %s", ErrDuplicateID, id)
				}
				seen[id] = struct{}{}

				factory, ok := snap.Factories[id]
				if !ok {
					return fmt.Errorf("%w: %s", ErrDanglingFactory, id)
				}
				if factory.Rate < 0 {
					return fmt.Errorf("%w: factory %s", ErrNegativeRate, id)
				}
			}
			if len(snap.Factories) != len(seen) {
				return ErrDanglingFactory
			}
		case FieldSolvers:
			for id, solver := range snap.Solvers {
				if _, ok := snap.Factories[id]; !ok {
					return fmt.Errorf("%w: %s", ErrOrphanSolver, id)
				}
				if solver.TargetRate < 0 {
					return fmt.Errorf("%w: solver %s", ErrNegativeRate, id)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}
