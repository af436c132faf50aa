package health

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/voice-hub/internal/ports"
)

// Status represents the health status
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// CheckResult represents the result of a health check
type CheckResult struct {
	Name      string        `json:"name"`
	Status    Status        `json:"status"`
	Message   string        `json:"message,omitempty"`
	Duration  time.Duration `json:"duration_ms"`
	Timestamp time.Time     `json:"timestamp"`
}

// HealthResponse represents the overall health response
type HealthResponse struct {
	Status      Status    `json:"status"`
	Version     string    `json:"version,omitempty"`
	Uptime      string    `json:"uptime,omitempty"`
	HistorySize int       `json:"history_size"`
	Timestamp   time.Time `json:"timestamp"`
}

// ReadyResponse represents the readiness response
type ReadyResponse struct {
	Ready     bool                   `json:"ready"`
	Status    Status                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]CheckResult `json:"checks"`
}

// Checker defines a health check function
type Checker func(ctx context.Context) CheckResult

// Service handles health checks. The hub has no external dependencies,
// so readiness only verifies the in-memory state store and history log
// are wired.
type Service struct {
	store     ports.StateStore
	history   ports.HistoryLog
	startTime time.Time
	version   string
	checkers  map[string]Checker
	log       *zap.Logger
	mu        sync.RWMutex
}

// NewService creates a new health service
func NewService(version string, store ports.StateStore, history ports.HistoryLog, log *zap.Logger) *Service {
	s := &Service{
		store:     store,
		history:   history,
		startTime: time.Now(),
		version:   version,
		checkers:  make(map[string]Checker),
		log:       log,
	}
	s.RegisterChecker("state_store", s.checkStateStore)
	s.RegisterChecker("history_log", s.checkHistoryLog)
	return s
}

// RegisterChecker registers a custom health checker
func (s *Service) RegisterChecker(name string, checker Checker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkers[name] = checker
	s.log.Info("Registered health checker", zap.String("name", name))
}

// Health performs a basic liveness check
func (s *Service) Health(ctx context.Context) *HealthResponse {
	size := 0
	if s.history != nil {
		size = s.history.Size()
	}
	return &HealthResponse{
		Status:      StatusHealthy,
		Version:     s.version,
		Uptime:      time.Since(s.startTime).String(),
		HistorySize: size,
		Timestamp:   time.Now(),
	}
}

// Ready runs all registered checkers and aggregates their results.
func (s *Service) Ready(ctx context.Context) *ReadyResponse {
	s.mu.RLock()
	checkers := make(map[string]Checker, len(s.checkers))
	for name, checker := range s.checkers {
		checkers[name] = checker
	}
	s.mu.RUnlock()

	results := make(map[string]CheckResult, len(checkers))
	overall := StatusHealthy
	ready := true
	for name, checker := range checkers {
		result := checker(ctx)
		results[name] = result
		if result.Status == StatusUnhealthy {
			overall = StatusUnhealthy
			ready = false
		}
	}

	return &ReadyResponse{
		Ready:     ready,
		Status:    overall,
		Timestamp: time.Now(),
		Checks:    results,
	}
}

func (s *Service) checkStateStore(ctx context.Context) CheckResult {
	start := time.Now()
	result := CheckResult{Name: "state_store", Timestamp: start}

	if s.store == nil {
		result.Status = StatusUnhealthy
		result.Message = "state store not configured"
	} else {
		result.Status = StatusHealthy
		result.Message = "ok"
	}
	result.Duration = time.Since(start)
	return result
}

func (s *Service) checkHistoryLog(ctx context.Context) CheckResult {
	start := time.Now()
	result := CheckResult{Name: "history_log", Timestamp: start}

	if s.history == nil {
		result.Status = StatusUnhealthy
		result.Message = "history log not configured"
	} else {
		result.Status = StatusHealthy
		result.Message = "ok"
	}
	result.Duration = time.Since(start)
	return result
}
