package mocks

import (
	"context"

	"github.com/seu-repo/voice-hub/internal/domain"
)

// MockCommandInterpreter is a mock implementation of the
// CommandInterpreter interface
type MockCommandInterpreter struct {
	InterpretFunc func(ctx context.Context, rawText string) (*domain.Interpretation, error)
}

func (m *MockCommandInterpreter) Interpret(ctx context.Context, rawText string) (*domain.Interpretation, error) {
	if m.InterpretFunc != nil {
		return m.InterpretFunc(ctx, rawText)
	}
	return &domain.Interpretation{RawCommand: rawText}, nil
}

// MockDeviceController is a mock implementation of the DeviceController
// interface
type MockDeviceController struct {
	ExecuteFunc           func(ctx context.Context, cmd domain.DeviceCommand, rawCommand string) (domain.ExecutionResult, domain.DeviceSnapshot, error)
	ExecuteExpressionFunc func(ctx context.Context, expr domain.Expression, rawCommand string) domain.ExecutionResult
	ListDevicesFunc       func(ctx context.Context) ([]string, map[string]domain.DeviceSnapshot)
	DeviceStatusFunc      func(ctx context.Context, device string) (domain.DeviceSnapshot, error)
	HistoryFunc           func(ctx context.Context) []domain.HistoryRecord
}

func (m *MockDeviceController) Execute(ctx context.Context, cmd domain.DeviceCommand, rawCommand string) (domain.ExecutionResult, domain.DeviceSnapshot, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd, rawCommand)
	}
	return domain.NewExecutionResult(true, "ok"), domain.DeviceSnapshot{Device: cmd.Device}, nil
}

func (m *MockDeviceController) ExecuteExpression(ctx context.Context, expr domain.Expression, rawCommand string) domain.ExecutionResult {
	if m.ExecuteExpressionFunc != nil {
		return m.ExecuteExpressionFunc(ctx, expr, rawCommand)
	}
	return domain.NewExecutionResult(true, "ok")
}

func (m *MockDeviceController) ListDevices(ctx context.Context) ([]string, map[string]domain.DeviceSnapshot) {
	if m.ListDevicesFunc != nil {
		return m.ListDevicesFunc(ctx)
	}
	return nil, nil
}

func (m *MockDeviceController) DeviceStatus(ctx context.Context, device string) (domain.DeviceSnapshot, error) {
	if m.DeviceStatusFunc != nil {
		return m.DeviceStatusFunc(ctx, device)
	}
	return domain.DeviceSnapshot{Device: device}, nil
}

func (m *MockDeviceController) History(ctx context.Context) []domain.HistoryRecord {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx)
	}
	return nil
}
