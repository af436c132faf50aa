package domain

import (
	"strconv"
	"strings"
)

// Sentinel values used when a resolver cannot produce a result.
const (
	UnknownDevice = "unknown"
	UnknownAction = "UNKNOWN"
)

// ValidDevices is the fixed set of controllable device identifiers.
var ValidDevices = []string{
	"living room light",
	"bedroom light",
	"kitchen light",
	"door lock",
	"thermostat",
	"fan",
}

// ValidActions is the fixed set of action tokens the executor understands.
var ValidActions = []string{
	"ON", "OFF", "INCREASE", "DECREASE", "SET", "DIM", "BRIGHTEN", "LOCK", "UNLOCK",
}

func IsValidDevice(name string) bool {
	for _, d := range ValidDevices {
		if d == name {
			return true
		}
	}
	return false
}

func IsValidAction(action string) bool {
	for _, a := range ValidActions {
		if a == action {
			return true
		}
	}
	return false
}

// Expression is the closed set of executable command forms. The executor
// dispatches over it with a single exhaustive type switch.
type Expression interface {
	isExpression()
}

// DeviceCommand is a single fully-specified device/action/parameter
// instruction. Parameter is empty when the command carries no value.
type DeviceCommand struct {
	Device     string  `json:"device"`
	Action     string  `json:"action"`
	Parameter  string  `json:"parameter"`
	Confidence float64 `json:"confidence"`
}

func (DeviceCommand) isExpression() {}

// NewDeviceCommand trims its inputs and substitutes the sentinel values
// for missing device or action.
func NewDeviceCommand(device, action, parameter string) DeviceCommand {
	device = strings.TrimSpace(device)
	if device == "" {
		device = UnknownDevice
	}
	action = strings.TrimSpace(action)
	if action == "" {
		action = UnknownAction
	}
	return DeviceCommand{
		Device:    device,
		Action:    action,
		Parameter: strings.TrimSpace(parameter),
	}
}

// Valid reports whether both device and action resolved to non-sentinel
// values.
func (c DeviceCommand) Valid() bool {
	return c.Device != "" && c.Device != UnknownDevice &&
		c.Action != "" && c.Action != UnknownAction
}

// ScoreConfidence computes the heuristic certainty that this command
// matches user intent. availableDevices is the per-interpretation set of
// known device identifiers. The result is clamped to [0, 1].
func (c DeviceCommand) ScoreConfidence(availableDevices map[string]struct{}) float64 {
	base := 0.5

	switch {
	case IsValidDevice(c.Device):
		base += 0.35
	default:
		if _, ok := availableDevices[c.Device]; ok {
			base += 0.25
		} else {
			base -= 0.3
		}
	}

	if IsValidAction(c.Action) {
		base += 0.25
	} else {
		base -= 0.3
	}

	if c.Device != UnknownDevice && c.Action != UnknownAction {
		base += 0.15
	}

	if c.Parameter != "" {
		if value, err := strconv.Atoi(c.Parameter); err == nil {
			if strings.Contains(c.Device, "light") && value >= 0 && value <= 100 {
				base += 0.1
			} else if c.Device == "thermostat" && value >= 60 && value <= 85 {
				base += 0.1
			}
		}
	}

	// Sentinels are penalized on top of the unknown-device/-action
	// penalties above.
	if c.Device == UnknownDevice {
		base -= 0.4
	}
	if c.Action == UnknownAction {
		base -= 0.4
	}

	return clamp01(base)
}

// Scene is a named group of device commands executed together.
type Scene struct {
	Name     string          `json:"name"`
	Commands []DeviceCommand `json:"commands"`
}

func (Scene) isExpression() {}

func (s Scene) Valid() bool {
	if len(s.Commands) == 0 {
		return false
	}
	for _, cmd := range s.Commands {
		if !cmd.Valid() {
			return false
		}
	}
	return true
}

// SceneConfidence is the arithmetic mean of the member confidences, 0 for
// an empty scene.
func (s Scene) SceneConfidence() float64 {
	if len(s.Commands) == 0 {
		return 0
	}
	var sum float64
	for _, cmd := range s.Commands {
		sum += cmd.Confidence
	}
	return sum / float64(len(s.Commands))
}

// Routine is an ordered multi-step sequence. Steps may themselves be
// scenes or routines; insertion order is execution order.
type Routine struct {
	Name  string       `json:"name"`
	Steps []Expression `json:"steps"`
}

func (Routine) isExpression() {}

func (r Routine) Valid() bool {
	if len(r.Steps) == 0 {
		return false
	}
	for _, step := range r.Steps {
		if !expressionValid(step) {
			return false
		}
	}
	return true
}

// RoutineConfidence is the arithmetic mean of the step confidences, 0 for
// an empty routine.
func (r Routine) RoutineConfidence() float64 {
	if len(r.Steps) == 0 {
		return 0
	}
	var sum float64
	for _, step := range r.Steps {
		sum += expressionConfidence(step)
	}
	return sum / float64(len(r.Steps))
}

func expressionValid(expr Expression) bool {
	switch e := expr.(type) {
	case DeviceCommand:
		return e.Valid()
	case Scene:
		return e.Valid()
	case Routine:
		return e.Valid()
	default:
		return false
	}
}

func expressionConfidence(expr Expression) float64 {
	switch e := expr.(type) {
	case DeviceCommand:
		return e.Confidence
	case Scene:
		return e.SceneConfidence()
	case Routine:
		return e.RoutineConfidence()
	default:
		return 0
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
