package device

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/voice-hub/internal/domain"
	"github.com/seu-repo/voice-hub/internal/observability/telemetry"
)

// Brightness and temperature step sizes for the relative actions.
const (
	brightnessStep  = 20
	temperatureStep = 2
	dimStep         = 30
)

// executeLeaf mutates device state for one valid command and records it
// in the history log. Any panic during mutation is converted into a
// failed result; execution never crashes the worker.
func (s *Service) executeLeaf(cmd domain.DeviceCommand, rawCommand string) (result domain.ExecutionResult) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Execution panicked",
				zap.String("device", cmd.Device),
				zap.String("action", cmd.Action),
				zap.Any("panic", r),
			)
			result = domain.NewExecutionResult(false, fmt.Sprintf("Execution failed: %v", r))
			telemetry.CommandsExecuted.WithLabelValues(cmd.Device, cmd.Action, "failed").Inc()
		}
	}()

	state := s.store.GetOrCreate(cmd.Device)
	kind := domain.KindOf(cmd.Device)

	var message string
	switch cmd.Action {
	case "ON":
		state.SetPower(true)
		message = fmt.Sprintf("%s turned ON successfully", cmd.Device)

	case "OFF":
		state.SetPower(false)
		message = fmt.Sprintf("%s turned OFF successfully", cmd.Device)

	case "LOCK":
		state.SetPower(true)
		message = fmt.Sprintf("%s locked successfully", cmd.Device)

	case "UNLOCK":
		state.SetPower(false)
		message = fmt.Sprintf("%s unlocked successfully", cmd.Device)

	case "INCREASE":
		switch kind {
		case domain.DeviceKindLight:
			message = fmt.Sprintf("%s brightness increased to %d%%",
				cmd.Device, state.AdjustBrightness(brightnessStep))
		case domain.DeviceKindThermostat:
			message = fmt.Sprintf("Thermostat temperature increased to %d°F",
				state.AdjustTemperature(temperatureStep))
		default:
			if cmd.Device == "fan" {
				message = "fan speed increased"
			} else {
				message = fmt.Sprintf("%s increased", cmd.Device)
			}
		}

	case "DECREASE":
		switch kind {
		case domain.DeviceKindLight:
			message = fmt.Sprintf("%s brightness decreased to %d%%",
				cmd.Device, state.AdjustBrightness(-brightnessStep))
		case domain.DeviceKindThermostat:
			message = fmt.Sprintf("Thermostat temperature decreased to %d°F",
				state.AdjustTemperature(-temperatureStep))
		default:
			if cmd.Device == "fan" {
				message = "fan speed decreased"
			} else {
				message = fmt.Sprintf("%s decreased", cmd.Device)
			}
		}

	case "DIM":
		message = fmt.Sprintf("%s dimmed to %d%% brightness",
			cmd.Device, state.AdjustBrightness(-dimStep))

	case "BRIGHTEN":
		message = fmt.Sprintf("%s brightened to %d%% brightness",
			cmd.Device, state.AdjustBrightness(dimStep))

	case "SET":
		message = s.applySet(cmd, state, kind)

	default:
		message = fmt.Sprintf("Command executed on %s", cmd.Device)
	}

	s.history.Append(domain.HistoryRecord{
		ID:         uuid.NewString(),
		Device:     cmd.Device,
		Action:     cmd.Action,
		Parameter:  cmd.Parameter,
		Timestamp:  time.Now(),
		Confidence: cmd.Confidence,
		RawCommand: rawCommand,
	})
	telemetry.CommandsExecuted.WithLabelValues(cmd.Device, cmd.Action, "success").Inc()

	s.log.Info("Command executed",
		zap.String("device", cmd.Device),
		zap.String("action", cmd.Action),
		zap.String("parameter", cmd.Parameter),
	)
	return domain.NewExecutionResult(true, message)
}

// applySet writes an absolute value. A non-numeric parameter is treated
// as generic configuration, not an error.
func (s *Service) applySet(cmd domain.DeviceCommand, state *domain.DeviceState, kind domain.DeviceKind) string {
	value, err := strconv.Atoi(cmd.Parameter)
	if err != nil {
		return fmt.Sprintf("%s configured", cmd.Device)
	}

	switch kind {
	case domain.DeviceKindThermostat:
		return fmt.Sprintf("Thermostat set to %d°F", state.SetTemperature(value))
	case domain.DeviceKindLight:
		return fmt.Sprintf("%s brightness set to %d%%", cmd.Device, state.SetBrightness(value))
	default:
		return fmt.Sprintf("%s set to %s", cmd.Device, cmd.Parameter)
	}
}
