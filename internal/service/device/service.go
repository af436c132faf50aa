package device

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/seu-repo/voice-hub/internal/domain"
	"github.com/seu-repo/voice-hub/internal/ports"
)

// Service executes command expressions against the shared device state
// and answers state queries. State and history are injected; the service
// itself holds nothing mutable.
type Service struct {
	store   ports.StateStore
	history ports.HistoryLog
	log     *zap.Logger
}

func NewService(store ports.StateStore, history ports.HistoryLog, log *zap.Logger) *Service {
	return &Service{
		store:   store,
		history: history,
		log:     log,
	}
}

// Execute runs a single device command and returns the result together
// with the post-mutation snapshot of the target device.
func (s *Service) Execute(ctx context.Context, cmd domain.DeviceCommand, rawCommand string) (domain.ExecutionResult, domain.DeviceSnapshot, error) {
	if !cmd.Valid() {
		return domain.NewExecutionResult(false, "Invalid command cannot be executed"),
			domain.DeviceSnapshot{}, domain.ErrInvalidCommand
	}

	result := s.executeLeaf(cmd, rawCommand)
	snapshot := s.store.GetOrCreate(cmd.Device).Snapshot(cmd.Device)
	return result, snapshot, nil
}

// ExecuteExpression dispatches over the closed expression set. Composite
// forms recurse into their members; one failing member never aborts its
// siblings, and the overall success is the AND of all member successes.
func (s *Service) ExecuteExpression(ctx context.Context, expr domain.Expression, rawCommand string) domain.ExecutionResult {
	switch e := expr.(type) {
	case domain.DeviceCommand:
		if !e.Valid() {
			return domain.NewExecutionResult(false, "Invalid command cannot be executed")
		}
		return s.executeLeaf(e, rawCommand)

	case domain.Scene:
		if len(e.Commands) == 0 {
			return domain.NewExecutionResult(false, "Empty scene cannot be executed")
		}
		allSuccess := true
		messages := make([]string, 0, len(e.Commands))
		for _, cmd := range e.Commands {
			r := s.ExecuteExpression(ctx, cmd, rawCommand)
			messages = append(messages, r.Message)
			if !r.Success {
				allSuccess = false
			}
		}
		return domain.NewExecutionResult(allSuccess,
			fmt.Sprintf("Scene '%s' executed: %s", e.Name, joinMessages(messages)))

	case domain.Routine:
		if len(e.Steps) == 0 {
			return domain.NewExecutionResult(false, "Empty routine cannot be executed")
		}
		allSuccess := true
		messages := make([]string, 0, len(e.Steps))
		for _, step := range e.Steps {
			r := s.ExecuteExpression(ctx, step, rawCommand)
			messages = append(messages, r.Message)
			if !r.Success {
				allSuccess = false
			}
		}
		return domain.NewExecutionResult(allSuccess,
			fmt.Sprintf("Routine executed: %s", joinMessages(messages)))

	default:
		return domain.NewExecutionResult(false, "Unsupported command expression")
	}
}

// ListDevices returns the known identifiers and a snapshot of every
// device's state.
func (s *Service) ListDevices(ctx context.Context) ([]string, map[string]domain.DeviceSnapshot) {
	return s.store.Devices(), s.store.Snapshot()
}

// DeviceStatus returns the snapshot for one of the fixed devices, or
// domain.ErrDeviceNotFound.
func (s *Service) DeviceStatus(ctx context.Context, device string) (domain.DeviceSnapshot, error) {
	if !domain.IsValidDevice(device) {
		return domain.DeviceSnapshot{}, fmt.Errorf("%w: %s", domain.ErrDeviceNotFound, device)
	}
	return s.store.GetOrCreate(device).Snapshot(device), nil
}

// History returns a snapshot copy of the command history log.
func (s *Service) History(ctx context.Context) []domain.HistoryRecord {
	return s.history.Records()
}

func joinMessages(messages []string) string {
	return strings.Join(messages, ", ")
}
