package http

import (
	"github.com/MKhiriev/go-factory-planner/internal/broker"
	"github.com/MKhiriev/go-factory-planner/internal/logger"
	"github.com/MKhiriev/go-factory-planner/internal/metrics"
	"github.com/MKhiriev/go-factory-planner/internal/service"
)

type Handler struct {
	services *service.Services
	hub      *broker.Hub
	metrics  *metrics.Metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, hub *broker.Hub, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hub:      hub,
		metrics:  m,
		logger:   logger,
	}
}

// CloseRealtime ends every open realtime stream. It is meant for
// [net/http.Server.RegisterOnShutdown], which does not track hijacked
// connections.
func (h *Handler) CloseRealtime() {
	h.hub.Close()
}
