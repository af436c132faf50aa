package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/voice-hub/internal/adapter/history"
	"github.com/seu-repo/voice-hub/internal/adapter/state"
)

func newTestLogger() *zap.Logger {
	return zap.NewNop()
}

func newTestService() *Service {
	log := newTestLogger()
	return NewService("test", state.NewStore(log), history.NewLog(10, log), log)
}

func TestHealth(t *testing.T) {
	service := newTestService()

	response := service.Health(context.Background())

	if response.Status != StatusHealthy {
		t.Errorf("expected healthy status, got %q", response.Status)
	}
	if response.Version != "test" {
		t.Errorf("expected version test, got %q", response.Version)
	}
	if response.HistorySize != 0 {
		t.Errorf("expected empty history, got %d", response.HistorySize)
	}
}

func TestReady_AllCheckersHealthy(t *testing.T) {
	service := newTestService()

	response := service.Ready(context.Background())

	if !response.Ready {
		t.Error("expected service to be ready")
	}
	for _, name := range []string{"state_store", "history_log"} {
		result, ok := response.Checks[name]
		if !ok {
			t.Errorf("expected checker %q to be registered", name)
			continue
		}
		if result.Status != StatusHealthy {
			t.Errorf("checker %q: expected healthy, got %q", name, result.Status)
		}
	}
}

func TestReady_FailingCheckerFlipsStatus(t *testing.T) {
	service := newTestService()
	service.RegisterChecker("broken", func(ctx context.Context) CheckResult {
		return CheckResult{
			Name:      "broken",
			Status:    StatusUnhealthy,
			Message:   "down",
			Timestamp: time.Now(),
		}
	})

	response := service.Ready(context.Background())

	if response.Ready {
		t.Error("expected not ready with a failing checker")
	}
	if response.Status != StatusUnhealthy {
		t.Errorf("expected unhealthy overall status, got %q", response.Status)
	}
}

func TestFiberHandler_Routes(t *testing.T) {
	app := fiber.New()
	NewFiberHandler(newTestService()).RegisterRoutes(app)

	for _, path := range []string{"/health", "/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: request failed: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, resp.StatusCode)
		}
	}
}
