package handler

import (
	"github.com/MKhiriev/go-factory-planner/internal/broker"
	"github.com/MKhiriev/go-factory-planner/internal/config"
	"github.com/MKhiriev/go-factory-planner/internal/handler/grpc"
	"github.com/MKhiriev/go-factory-planner/internal/handler/http"
	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/internal/metrics"
	"github.com/MKhiriev/go-factory-planner/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, hub *broker.Hub, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, hub, m, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
