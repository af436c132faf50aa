package domain

import "testing"

func TestKindOf(t *testing.T) {
	tests := []struct {
		device string
		want   DeviceKind
	}{
		{"living room light", DeviceKindLight},
		{"bedroom light", DeviceKindLight},
		{"kitchen light", DeviceKindLight},
		{"thermostat", DeviceKindThermostat},
		{"fan", DeviceKindOther},
		{"door lock", DeviceKindOther},
	}
	for _, tt := range tests {
		if got := KindOf(tt.device); got != tt.want {
			t.Errorf("KindOf(%q) = %q, want %q", tt.device, got, tt.want)
		}
	}
}

func TestDeviceState_Defaults(t *testing.T) {
	state := NewDeviceState()

	if state.Power() {
		t.Error("expected new device off")
	}
	if state.Status() != "OFF" {
		t.Errorf("expected status OFF, got %q", state.Status())
	}
	if state.Brightness() != 100 {
		t.Errorf("expected default brightness 100, got %d", state.Brightness())
	}
	if state.Temperature() != 72 {
		t.Errorf("expected default temperature 72, got %d", state.Temperature())
	}
}

func TestDeviceState_ClampedSetters(t *testing.T) {
	state := NewDeviceState()

	if got := state.SetBrightness(150); got != BrightnessMax {
		t.Errorf("SetBrightness(150) = %d, want %d", got, BrightnessMax)
	}
	if got := state.SetBrightness(-5); got != BrightnessMin {
		t.Errorf("SetBrightness(-5) = %d, want %d", got, BrightnessMin)
	}
	if got := state.SetTemperature(120); got != TemperatureMax {
		t.Errorf("SetTemperature(120) = %d, want %d", got, TemperatureMax)
	}
	if got := state.SetTemperature(50); got != TemperatureMin {
		t.Errorf("SetTemperature(50) = %d, want %d", got, TemperatureMin)
	}
}

func TestDeviceState_AdjustClampsAtBounds(t *testing.T) {
	state := NewDeviceState()

	// Brightness starts at 100; raising saturates, lowering steps down.
	if got := state.AdjustBrightness(20); got != 100 {
		t.Errorf("AdjustBrightness(+20) at max = %d, want 100", got)
	}
	if got := state.AdjustBrightness(-30); got != 70 {
		t.Errorf("AdjustBrightness(-30) = %d, want 70", got)
	}
	state.SetBrightness(10)
	if got := state.AdjustBrightness(-30); got != 0 {
		t.Errorf("AdjustBrightness(-30) below min = %d, want 0", got)
	}

	state.SetTemperature(84)
	if got := state.AdjustTemperature(2); got != 85 {
		t.Errorf("AdjustTemperature(+2) near max = %d, want 85", got)
	}
	state.SetTemperature(61)
	if got := state.AdjustTemperature(-2); got != 60 {
		t.Errorf("AdjustTemperature(-2) near min = %d, want 60", got)
	}
}

func TestSnapshot_FieldsPerKind(t *testing.T) {
	state := NewDeviceState()
	state.SetPower(true)

	light := state.Snapshot("living room light")
	if !light.IsOn || light.Status != "ON" {
		t.Errorf("expected light on, got %+v", light)
	}
	if light.Brightness == nil || *light.Brightness != 100 {
		t.Errorf("expected brightness 100 in light snapshot, got %+v", light.Brightness)
	}
	if light.Temperature != nil {
		t.Error("expected no temperature in light snapshot")
	}

	thermostat := NewDeviceState().Snapshot("thermostat")
	if thermostat.Temperature == nil || *thermostat.Temperature != 72 {
		t.Errorf("expected temperature 72 in thermostat snapshot, got %+v", thermostat.Temperature)
	}
	if thermostat.Brightness != nil {
		t.Error("expected no brightness in thermostat snapshot")
	}

	fan := NewDeviceState().Snapshot("fan")
	if fan.Brightness != nil || fan.Temperature != nil {
		t.Errorf("expected no numeric fields in fan snapshot, got %+v", fan)
	}
	if fan.Status != "OFF" {
		t.Errorf("expected fan snapshot status OFF, got %q", fan.Status)
	}
}
