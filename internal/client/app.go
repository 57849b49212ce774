package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-factory-planner/internal/config"
	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/internal/service"
)

// UI is the interactive front end driven by App.
type UI interface {
	// Run blocks until the user leaves. logout reports a sign-out.
	Run(ctx context.Context) (logout bool, err error)
}

type App struct {
	services *service.ClientServices
	ui       UI
	cfg      *config.ClientConfig
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, cfg *config.ClientConfig, logger *logger.Logger) *App {
	return &App{
		services: services,
		ui:       ui,
		cfg:      cfg,
		logger:   logger,
	}
}

// Run signs in, loads the games of the user and hands the terminal to the UI.
// Pending edits of the focused game are flushed before the services stop.
func (a *App) Run(ctx context.Context) error {
	a.services.Start()
	defer a.shutdown()

	if err := a.signIn(ctx); err != nil {
		return err
	}

	if err := a.services.GameService.LoadAll(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.Run").Msg("loading games failed, continuing with an empty list")
	}

	logout, err := a.ui.Run(ctx)
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	if logout {
		a.logger.Info().Str("func", "*App.Run").Msg("user signed out")
	}
	return nil
}

// signIn logs in with the configured credentials. With SignUp set, an unknown
// login is registered instead.
func (a *App) signIn(ctx context.Context) error {
	auth := a.services.AuthService

	_, err := auth.Login(ctx, a.cfg.Credentials)
	if err == nil {
		return nil
	}
	if !a.cfg.SignUp || !errors.Is(err, service.ErrWrongPassword) {
		a.logger.Err(err).Str("func", "*App.signIn").Msg("login failed")
		return fmt.Errorf("login: %w", err)
	}

	if _, err = auth.Register(ctx, a.cfg.Credentials); err != nil {
		a.logger.Err(err).Str("func", "*App.signIn").Msg("registration failed")
		return fmt.Errorf("register: %w", err)
	}
	a.logger.Info().Str("func", "*App.signIn").Str("login", a.cfg.Credentials.Login).Msg("user registered")
	return nil
}

func (a *App) shutdown() {
	sync := a.services.SyncService
	if gameID := sync.WatchedGame(); gameID != "" {
		sync.FlushSync(gameID)
	}
	sync.Unwatch()
	a.services.Close()
}
