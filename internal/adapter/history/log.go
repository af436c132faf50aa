package history

import (
	"sync"

	"go.uber.org/zap"

	"github.com/seu-repo/voice-hub/internal/domain"
	"github.com/seu-repo/voice-hub/internal/observability/telemetry"
	"github.com/seu-repo/voice-hub/internal/ports"
)

// DefaultCapacity bounds the log when no capacity is configured.
const DefaultCapacity = 1000

// Log implements ports.HistoryLog as a bounded in-memory append log.
// Append and eviction happen under one lock, so an overflow drops exactly
// one record regardless of concurrent appends.
type Log struct {
	mu       sync.Mutex
	records  []domain.HistoryRecord
	capacity int
	log      *zap.Logger
}

func NewLog(capacity int, log *zap.Logger) ports.HistoryLog {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	log.Info("Command history log initialized", zap.Int("capacity", capacity))
	return &Log{
		records:  make([]domain.HistoryRecord, 0, capacity),
		capacity: capacity,
		log:      log,
	}
}

func (l *Log) Append(record domain.HistoryRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append(l.records, record)
	if len(l.records) > l.capacity {
		// Shift in place so the backing array is reused.
		n := copy(l.records, l.records[1:])
		l.records = l.records[:n]
	}
	telemetry.HistorySize.Set(float64(len(l.records)))
}

// Records returns a snapshot copy in insertion order.
func (l *Log) Records() []domain.HistoryRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.HistoryRecord, len(l.records))
	copy(out, l.records)
	return out
}

func (l *Log) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
