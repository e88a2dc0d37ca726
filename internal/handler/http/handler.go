package http

import (
	"github.com/clawdock/clawdock/internal/logger"
	"github.com/clawdock/clawdock/internal/service"
)

// Handler carries the admin API endpoints over the service layer.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("admin api handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
