package service

import (
	"fmt"

	"github.com/MKhiriev/go-factory-planner/internal/clock"
	"github.com/MKhiriev/go-factory-planner/internal/config"
	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/internal/store"
	"github.com/MKhiriev/go-factory-planner/internal/utils"
	"github.com/MKhiriev/go-factory-planner/models"
)

// Services groups the server-side services.
type Services struct {
	AuthService    AuthService
	GameService    GameService
	AppInfoService AppInfoService
}

func NewServices(repositories *store.Repositories, notifier RowNotifier, cfg config.StructuredConfig,
	build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	clk := clock.Real()

	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	games := NewGameService(repositories.GameRepository, repositories.MembershipRepository, notifier,
		utils.NewUUIDGenerator(), clk, logger)

	return &Services{
		AuthService:    NewAuthService(repositories.UserRepository, repositories.RefreshTokenRepository, cfg.App, clk, logger),
		GameService:    NewGameValidationService().Wrap(games),
		AppInfoService: appInfo,
	}, nil
}
