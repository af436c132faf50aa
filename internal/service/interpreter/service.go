package interpreter

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/voice-hub/internal/domain"
	"github.com/seu-repo/voice-hub/internal/observability/telemetry"
)

// DefaultMaxCommandLength bounds utterance length when none is
// configured.
const DefaultMaxCommandLength = 500

// Config holds interpreter tuning.
type Config struct {
	MaxCommandLength int
}

// Service is the interpretation pipeline: normalize, resolve device and
// action, extract a parameter, validate and score. It holds no mutable
// state and is safe for concurrent use.
type Service struct {
	maxCommandLength int
	log              *zap.Logger
}

func NewService(cfg Config, log *zap.Logger) *Service {
	maxLen := cfg.MaxCommandLength
	if maxLen <= 0 {
		maxLen = DefaultMaxCommandLength
	}
	return &Service{
		maxCommandLength: maxLen,
		log:              log,
	}
}

// Interpret resolves one utterance into a device command. A failure is
// always a *domain.InterpretationError carrying a user-facing hint; the
// pipeline itself cannot fault.
func (s *Service) Interpret(ctx context.Context, rawText string) (*domain.Interpretation, error) {
	start := time.Now()
	defer func() {
		telemetry.InterpretLatency.Observe(time.Since(start).Seconds())
	}()

	if len(rawText) > s.maxCommandLength {
		telemetry.CommandsInterpreted.WithLabelValues("rejected").Inc()
		return nil, &domain.InterpretationError{
			Device: domain.UnknownDevice,
			Action: domain.UnknownAction,
			Hint:   "Command text too long (max 500 characters)",
		}
	}

	normalized := Normalize(rawText)
	device := resolveDevice(normalized)
	action := resolveAction(normalized)
	parameter := extractParameter(normalized)

	s.log.Info("Interpreted utterance",
		zap.String("command", rawText),
		zap.String("device", device),
		zap.String("action", action),
		zap.String("parameter", parameter),
	)

	cmd := domain.NewDeviceCommand(device, action, parameter)
	if !cmd.Valid() {
		telemetry.CommandsInterpreted.WithLabelValues("invalid").Inc()
		s.log.Info("Utterance did not resolve into a valid command",
			zap.String("device", device),
			zap.String("action", action),
		)
		return nil, &domain.InterpretationError{
			Device: device,
			Action: action,
			Hint:   hintFor(rawText),
		}
	}

	ictx := domain.NewInterpretationContext(rawText, domain.ValidDevices)
	cmd.Confidence = cmd.ScoreConfidence(ictx.AvailableDevices())
	ictx.RecordCommand(cmd)

	telemetry.CommandsInterpreted.WithLabelValues("valid").Inc()
	return &domain.Interpretation{
		Command:      cmd,
		Confidence:   ictx.Confidence(),
		RawCommand:   rawText,
		Interpreted:  ictx.Interpreted(),
		Alternatives: generateAlternatives(device, action),
	}, nil
}
