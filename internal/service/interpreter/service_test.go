package interpreter

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/seu-repo/voice-hub/internal/domain"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func newTestService() *Service {
	return NewService(Config{}, newTestLogger())
}

func TestInterpret_TurnOnLivingRoomLight(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service := newTestService()

	// Act
	interpretation, err := service.Interpret(ctx, "Turn on the living room light")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if interpretation.Command.Device != "living room light" {
		t.Errorf("expected device 'living room light', got %q", interpretation.Command.Device)
	}
	if interpretation.Command.Action != "ON" {
		t.Errorf("expected action ON, got %q", interpretation.Command.Action)
	}
	if interpretation.Command.Parameter != "" {
		t.Errorf("expected empty parameter, got %q", interpretation.Command.Parameter)
	}
	if interpretation.Confidence < 0.9 {
		t.Errorf("expected confidence >= 0.9, got %f", interpretation.Confidence)
	}
	if len(interpretation.Interpreted) != 1 {
		t.Errorf("expected one interpreted command, got %d", len(interpretation.Interpreted))
	}
	if len(interpretation.Alternatives) == 0 {
		t.Error("expected alternatives for an ON command, got none")
	}
	if interpretation.RawCommand != "Turn on the living room light" {
		t.Errorf("expected raw command preserved, got %q", interpretation.RawCommand)
	}
}

func TestInterpret_SetThermostatWithParameter(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	interpretation, err := service.Interpret(ctx, "Set the thermostat to 72 degrees")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if interpretation.Command.Device != "thermostat" {
		t.Errorf("expected device thermostat, got %q", interpretation.Command.Device)
	}
	if interpretation.Command.Action != "SET" {
		t.Errorf("expected action SET, got %q", interpretation.Command.Action)
	}
	if interpretation.Command.Parameter != "72" {
		t.Errorf("expected parameter 72, got %q", interpretation.Command.Parameter)
	}
}

func TestInterpret_DimKitchenLight(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	interpretation, err := service.Interpret(ctx, "Dim the kitchen light")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if interpretation.Command.Device != "kitchen light" {
		t.Errorf("expected device 'kitchen light', got %q", interpretation.Command.Device)
	}
	if interpretation.Command.Action != "DIM" {
		t.Errorf("expected action DIM, got %q", interpretation.Command.Action)
	}
}

func TestInterpret_OutOfRangeParameterDropped(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	interpretation, err := service.Interpret(ctx, "Set the thermostat to 120")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if interpretation.Command.Parameter != "" {
		t.Errorf("expected out-of-range parameter dropped, got %q", interpretation.Command.Parameter)
	}
}

func TestInterpret_Gibberish(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	interpretation, err := service.Interpret(ctx, "asdfghjkl")

	if err == nil {
		t.Fatal("expected an error for gibberish input")
	}
	if interpretation != nil {
		t.Error("expected nil interpretation on failure")
	}
	var interpErr *domain.InterpretationError
	if !errors.As(err, &interpErr) {
		t.Fatalf("expected *domain.InterpretationError, got %T", err)
	}
	if interpErr.Device != domain.UnknownDevice {
		t.Errorf("expected unknown device sentinel, got %q", interpErr.Device)
	}
	if interpErr.Action != domain.UnknownAction {
		t.Errorf("expected unknown action sentinel, got %q", interpErr.Action)
	}
	if interpErr.Hint != genericHint {
		t.Errorf("expected the generic hint, got %q", interpErr.Hint)
	}
}

func TestInterpret_GreetingGetsFriendlyHint(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	_, err := service.Interpret(ctx, "Hello")

	var interpErr *domain.InterpretationError
	if !errors.As(err, &interpErr) {
		t.Fatalf("expected *domain.InterpretationError, got %v", err)
	}
	if interpErr.Hint != greetingHint {
		t.Errorf("expected greeting hint, got %q", interpErr.Hint)
	}
}

func TestInterpret_QuestionGetsCapabilityHint(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	_, err := service.Interpret(ctx, "What can you do?")

	var interpErr *domain.InterpretationError
	if !errors.As(err, &interpErr) {
		t.Fatalf("expected *domain.InterpretationError, got %v", err)
	}
	if interpErr.Hint != questionHint {
		t.Errorf("expected question hint, got %q", interpErr.Hint)
	}
}

func TestInterpret_RejectsOverlongCommand(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	_, err := service.Interpret(ctx, strings.Repeat("a", DefaultMaxCommandLength+1))

	var interpErr *domain.InterpretationError
	if !errors.As(err, &interpErr) {
		t.Fatalf("expected *domain.InterpretationError, got %v", err)
	}
	if !strings.Contains(interpErr.Hint, "too long") {
		t.Errorf("expected a length hint, got %q", interpErr.Hint)
	}
}

func TestInterpret_ConfidenceAlwaysInUnitRange(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	inputs := []string{
		"Turn on the living room light",
		"Set thermostat to 72",
		"unlock the front door lock",
		"fan off",
	}
	for _, input := range inputs {
		interpretation, err := service.Interpret(ctx, input)
		if err != nil {
			t.Fatalf("Interpret(%q): unexpected error %v", input, err)
		}
		if interpretation.Confidence < 0 || interpretation.Confidence > 1 {
			t.Errorf("Interpret(%q): confidence %f out of [0, 1]", input, interpretation.Confidence)
		}
	}
}

func TestHintFor_Smalltalk(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain greeting", "hi", greetingHint},
		{"greeting with punctuation", "Hello!", greetingHint},
		{"greeting phrase", "good morning", greetingHint},
		{"question mark", "is the light on?", questionHint},
		{"question word prefix", "how does this work", questionHint},
		{"anything else", "zzzz", genericHint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hintFor(tt.raw); got != tt.want {
				t.Errorf("hintFor(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
