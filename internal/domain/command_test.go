package domain

import (
	"math"
	"testing"
)

func deviceSet() map[string]struct{} {
	set := make(map[string]struct{}, len(ValidDevices))
	for _, d := range ValidDevices {
		set[d] = struct{}{}
	}
	return set
}

func TestNewDeviceCommand_SentinelDefaults(t *testing.T) {
	cmd := NewDeviceCommand("", "", "")

	if cmd.Device != UnknownDevice {
		t.Errorf("expected unknown device sentinel, got %q", cmd.Device)
	}
	if cmd.Action != UnknownAction {
		t.Errorf("expected unknown action sentinel, got %q", cmd.Action)
	}
	if cmd.Valid() {
		t.Error("expected sentinel command to be invalid")
	}
}

func TestNewDeviceCommand_TrimsInputs(t *testing.T) {
	cmd := NewDeviceCommand("  living room light ", " ON ", " 50 ")

	if cmd.Device != "living room light" {
		t.Errorf("expected trimmed device, got %q", cmd.Device)
	}
	if cmd.Action != "ON" {
		t.Errorf("expected trimmed action, got %q", cmd.Action)
	}
	if cmd.Parameter != "50" {
		t.Errorf("expected trimmed parameter, got %q", cmd.Parameter)
	}
	if !cmd.Valid() {
		t.Error("expected command to be valid")
	}
}

func TestScoreConfidence(t *testing.T) {
	devices := deviceSet()

	tests := []struct {
		name string
		cmd  DeviceCommand
		want float64
	}{
		{
			// 0.5 + 0.35 + 0.25 + 0.15 + 0.1, clamped to 1.
			name: "fully valid with in-range parameter",
			cmd:  DeviceCommand{Device: "living room light", Action: "ON", Parameter: "50"},
			want: 1.0,
		},
		{
			// 0.5 - 0.3 - 0.3 - 0.4 - 0.4, clamped to 0.
			name: "both sentinels",
			cmd:  DeviceCommand{Device: UnknownDevice, Action: UnknownAction},
			want: 0.0,
		},
		{
			// 0.5 + 0.25 - 0.3 - 0.4.
			name: "context device with unknown action",
			cmd:  DeviceCommand{Device: "garage light", Action: UnknownAction},
			want: 0.05,
		},
		{
			// 0.5 - 0.3 + 0.25 + 0.15.
			name: "unlisted device with valid action",
			cmd:  DeviceCommand{Device: "pool pump", Action: "ON"},
			want: 0.6,
		},
		{
			// Out-of-range parameter earns no bonus: 0.5 + 0.35 + 0.25 + 0.15.
			name: "thermostat with out-of-range parameter",
			cmd:  DeviceCommand{Device: "thermostat", Action: "SET", Parameter: "120"},
			want: 1.0,
		},
	}

	contextDevices := deviceSet()
	contextDevices["garage light"] = struct{}{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := devices
			if tt.cmd.Device == "garage light" {
				set = contextDevices
			}
			got := tt.cmd.ScoreConfidence(set)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ScoreConfidence() = %f, want %f", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("ScoreConfidence() = %f out of [0, 1]", got)
			}
		})
	}
}

func TestSceneValidity(t *testing.T) {
	valid := Scene{
		Name: "movie night",
		Commands: []DeviceCommand{
			{Device: "living room light", Action: "DIM"},
			{Device: "thermostat", Action: "SET", Parameter: "70"},
		},
	}
	if !valid.Valid() {
		t.Error("expected scene with valid members to be valid")
	}

	empty := Scene{Name: "empty"}
	if empty.Valid() {
		t.Error("expected empty scene to be invalid")
	}
	if empty.SceneConfidence() != 0 {
		t.Errorf("expected empty scene confidence 0, got %f", empty.SceneConfidence())
	}

	tainted := Scene{
		Name: "tainted",
		Commands: []DeviceCommand{
			{Device: "living room light", Action: "ON"},
			{Device: UnknownDevice, Action: "ON"},
		},
	}
	if tainted.Valid() {
		t.Error("expected scene with an invalid member to be invalid")
	}
}

func TestSceneConfidence_IsMeanOfMembers(t *testing.T) {
	scene := Scene{
		Name: "evening",
		Commands: []DeviceCommand{
			{Device: "living room light", Action: "ON", Confidence: 0.8},
			{Device: "thermostat", Action: "SET", Confidence: 0.4},
		},
	}
	if got := scene.SceneConfidence(); math.Abs(got-0.6) > 1e-9 {
		t.Errorf("SceneConfidence() = %f, want 0.6", got)
	}
}

func TestRoutine_NestedSteps(t *testing.T) {
	routine := Routine{
		Name: "good night",
		Steps: []Expression{
			DeviceCommand{Device: "door lock", Action: "LOCK", Confidence: 1.0},
			Scene{
				Name: "lights out",
				Commands: []DeviceCommand{
					{Device: "living room light", Action: "OFF", Confidence: 0.5},
					{Device: "bedroom light", Action: "OFF", Confidence: 0.5},
				},
			},
		},
	}

	if !routine.Valid() {
		t.Error("expected nested routine to be valid")
	}
	// Mean of 1.0 and the scene mean 0.5.
	if got := routine.RoutineConfidence(); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("RoutineConfidence() = %f, want 0.75", got)
	}

	empty := Routine{Name: "empty"}
	if empty.Valid() {
		t.Error("expected empty routine to be invalid")
	}
	if empty.RoutineConfidence() != 0 {
		t.Errorf("expected empty routine confidence 0, got %f", empty.RoutineConfidence())
	}
}
