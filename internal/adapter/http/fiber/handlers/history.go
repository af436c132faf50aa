package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/voice-hub/internal/ports"
)

// HistoryHandler exposes the executed-command log.
type HistoryHandler struct {
	controller ports.DeviceController
	log        *zap.Logger
}

func NewHistoryHandler(controller ports.DeviceController, log *zap.Logger) *HistoryHandler {
	return &HistoryHandler{
		controller: controller,
		log:        log,
	}
}

// List handles GET /api/v1/history
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.controller.History(c.Context()))
}
