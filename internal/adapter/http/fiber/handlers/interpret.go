package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/voice-hub/internal/domain"
	"github.com/seu-repo/voice-hub/internal/ports"
)

// InterpretHandler exposes the interpretation pipeline over HTTP.
type InterpretHandler struct {
	interpreter ports.CommandInterpreter
	log         *zap.Logger
}

func NewInterpretHandler(interpreter ports.CommandInterpreter, log *zap.Logger) *InterpretHandler {
	return &InterpretHandler{
		interpreter: interpreter,
		log:         log,
	}
}

// InterpretRequest carries one free-text utterance.
type InterpretRequest struct {
	Command string `json:"command"`
}

// Interpret handles POST /api/v1/interpret
func (h *InterpretHandler) Interpret(c *fiber.Ctx) error {
	var req InterpretRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Invalid request body"))
	}

	command := strings.TrimSpace(req.Command)
	if command == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Command text is required"))
	}

	interpretation, err := h.interpreter.Interpret(c.Context(), command)
	if err != nil {
		var interpErr *domain.InterpretationError
		if errors.As(err, &interpErr) {
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse(interpErr.Hint))
		}
		h.log.Error("Interpretation failed unexpectedly", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Internal server error"))
	}

	return c.JSON(fiber.Map{
		"success":              true,
		"command":              interpretation.Command,
		"confidence":           interpretation.Confidence,
		"raw_command":          interpretation.RawCommand,
		"interpreted_commands": interpretation.Interpreted,
		"alternatives":         interpretation.Alternatives,
	})
}

func errorResponse(message string) fiber.Map {
	return fiber.Map{
		"success":   false,
		"error":     message,
		"timestamp": time.Now(),
	}
}
