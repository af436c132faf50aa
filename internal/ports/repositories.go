package ports

import "github.com/seu-repo/voice-hub/internal/domain"

// StateStore is the process-wide keyed store of mutable device state.
// GetOrCreate must be race-free: concurrent first access to the same
// unseen key yields exactly one surviving state object.
type StateStore interface {
	GetOrCreate(device string) *domain.DeviceState
	Snapshot() map[string]domain.DeviceSnapshot
	Devices() []string
}

// HistoryLog is the bounded, thread-safe append log of executed
// commands. Append evicts the oldest record once capacity is exceeded;
// Records returns a snapshot copy in insertion order.
type HistoryLog interface {
	Append(record domain.HistoryRecord)
	Records() []domain.HistoryRecord
	Size() int
}
