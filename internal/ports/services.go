package ports

import (
	"context"

	"github.com/seu-repo/voice-hub/internal/domain"
)

// CommandInterpreter turns free-text utterances into device commands.
type CommandInterpreter interface {
	Interpret(ctx context.Context, rawText string) (*domain.Interpretation, error)
}

// DeviceController executes command expressions against device state and
// answers state queries.
type DeviceController interface {
	Execute(ctx context.Context, cmd domain.DeviceCommand, rawCommand string) (domain.ExecutionResult, domain.DeviceSnapshot, error)
	ExecuteExpression(ctx context.Context, expr domain.Expression, rawCommand string) domain.ExecutionResult
	ListDevices(ctx context.Context) ([]string, map[string]domain.DeviceSnapshot)
	DeviceStatus(ctx context.Context, device string) (domain.DeviceSnapshot, error)
	History(ctx context.Context) []domain.HistoryRecord
}
