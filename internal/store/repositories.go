package store

import "github.com/MKhiriev/go-factory-planner/internal/logger"

// Repositories groups every repository backed by one database.
type Repositories struct {
	UserRepository         UserRepository
	RefreshTokenRepository RefreshTokenRepository
	GameRepository         GameRepository
	MembershipRepository   MembershipRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db, logger),
		RefreshTokenRepository: NewRefreshTokenRepository(db, logger),
		GameRepository:         NewGameRepository(db, logger),
		MembershipRepository:   NewMembershipRepository(db, logger),
	}
}
