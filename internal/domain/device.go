package domain

import (
	"strings"
	"sync"
)

// DeviceKind selects the execution behavior for a device identifier.
type DeviceKind string

const (
	DeviceKindLight      DeviceKind = "light"
	DeviceKindThermostat DeviceKind = "thermostat"
	DeviceKindOther      DeviceKind = "other"
)

// KindOf classifies a device identifier. Any identifier containing
// "light" is a light; "thermostat" is the thermostat; everything else
// (fan, door lock) has no numeric fields.
func KindOf(device string) DeviceKind {
	switch {
	case strings.Contains(device, "light"):
		return DeviceKindLight
	case device == "thermostat":
		return DeviceKindThermostat
	default:
		return DeviceKindOther
	}
}

// Brightness and temperature bounds enforced by the clamped setters.
const (
	BrightnessMin = 0
	BrightnessMax = 100
	TemperatureMin = 60
	TemperatureMax = 85

	defaultBrightness  = 100
	defaultTemperature = 72
)

// DeviceState holds the mutable state of one device. All field access
// goes through the locked accessors; two different devices never share a
// lock.
type DeviceState struct {
	mu          sync.Mutex
	power       bool
	brightness  int
	temperature int
}

func NewDeviceState() *DeviceState {
	return &DeviceState{
		brightness:  defaultBrightness,
		temperature: defaultTemperature,
	}
}

func (s *DeviceState) Power() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.power
}

func (s *DeviceState) SetPower(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.power = on
}

// Status mirrors the power flag as "ON"/"OFF".
func (s *DeviceState) Status() string {
	if s.Power() {
		return "ON"
	}
	return "OFF"
}

func (s *DeviceState) Brightness() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.brightness
}

// SetBrightness clamps to [0, 100] and returns the applied value.
func (s *DeviceState) SetBrightness(v int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brightness = clampInt(v, BrightnessMin, BrightnessMax)
	return s.brightness
}

// AdjustBrightness applies a delta under a single lock acquisition so
// concurrent adjustments never lose updates.
func (s *DeviceState) AdjustBrightness(delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brightness = clampInt(s.brightness+delta, BrightnessMin, BrightnessMax)
	return s.brightness
}

func (s *DeviceState) Temperature() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.temperature
}

// SetTemperature clamps to [60, 85] and returns the applied value.
func (s *DeviceState) SetTemperature(v int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.temperature = clampInt(v, TemperatureMin, TemperatureMax)
	return s.temperature
}

func (s *DeviceState) AdjustTemperature(delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.temperature = clampInt(s.temperature+delta, TemperatureMin, TemperatureMax)
	return s.temperature
}

// DeviceSnapshot is an immutable view of a device's state. Brightness is
// present only for lights and temperature only for the thermostat.
type DeviceSnapshot struct {
	Device      string `json:"device"`
	IsOn        bool   `json:"is_on"`
	Status      string `json:"status"`
	Brightness  *int   `json:"brightness,omitempty"`
	Temperature *int   `json:"temperature,omitempty"`
}

// Snapshot copies the current state under the device lock.
func (s *DeviceState) Snapshot(device string) DeviceSnapshot {
	s.mu.Lock()
	power, brightness, temperature := s.power, s.brightness, s.temperature
	s.mu.Unlock()

	snap := DeviceSnapshot{
		Device: device,
		IsOn:   power,
		Status: "OFF",
	}
	if power {
		snap.Status = "ON"
	}
	switch KindOf(device) {
	case DeviceKindLight:
		snap.Brightness = &brightness
	case DeviceKindThermostat:
		snap.Temperature = &temperature
	}
	return snap
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
