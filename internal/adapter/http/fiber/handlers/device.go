package handlers

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/voice-hub/internal/domain"
	"github.com/seu-repo/voice-hub/internal/ports"
)

// DeviceHandler exposes command execution and device state queries.
type DeviceHandler struct {
	controller ports.DeviceController
	log        *zap.Logger
}

func NewDeviceHandler(controller ports.DeviceController, log *zap.Logger) *DeviceHandler {
	return &DeviceHandler{
		controller: controller,
		log:        log,
	}
}

// ExecuteRequest names the device, action and optional parameter to run.
// RawCommand, when present, is the original utterance recorded in the
// history log.
type ExecuteRequest struct {
	Device     string `json:"device"`
	Action     string `json:"action"`
	Parameter  string `json:"parameter"`
	RawCommand string `json:"raw_command"`
}

// Execute handles POST /api/v1/execute
func (h *DeviceHandler) Execute(c *fiber.Ctx) error {
	var req ExecuteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Invalid request body"))
	}

	if req.Device == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Device is required"))
	}
	if req.Action == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Action is required"))
	}

	cmd := domain.NewDeviceCommand(req.Device, req.Action, req.Parameter)
	result, snapshot, err := h.controller.Execute(c.Context(), cmd, req.RawCommand)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCommand) {
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Invalid command"))
		}
		h.log.Error("Execution failed unexpectedly", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Execution failed"))
	}

	status := fiber.StatusOK
	statusText := "success"
	if !result.Success {
		status = fiber.StatusBadRequest
		statusText = "failed"
	}
	return c.Status(status).JSON(fiber.Map{
		"status":       statusText,
		"success":      result.Success,
		"message":      result.Message,
		"timestamp":    result.Timestamp,
		"device_state": snapshot,
	})
}

// List handles GET /api/v1/devices
func (h *DeviceHandler) List(c *fiber.Ctx) error {
	devices, states := h.controller.ListDevices(c.Context())
	return c.JSON(fiber.Map{
		"devices": devices,
		"states":  states,
	})
}

// Status handles GET /api/v1/devices/:name/status
func (h *DeviceHandler) Status(c *fiber.Ctx) error {
	device, err := decodeDeviceName(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Invalid device name"))
	}

	snapshot, err := h.controller.DeviceStatus(c.Context(), device)
	if err != nil {
		if errors.Is(err, domain.ErrDeviceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(errorResponse("Device not found: " + device))
		}
		h.log.Error("Device status lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to get device status"))
	}
	return c.JSON(snapshot)
}

// decodeDeviceName unescapes a path segment; device identifiers contain
// spaces ("living room light" arrives as living%20room%20light).
func decodeDeviceName(raw string) (string, error) {
	return url.PathUnescape(raw)
}
