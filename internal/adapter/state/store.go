package state

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/seu-repo/voice-hub/internal/domain"
	"github.com/seu-repo/voice-hub/internal/ports"
)

// Store implements ports.StateStore with an in-memory map. The store
// mutex only guards the map itself; each DeviceState carries its own
// lock, so mutations to different devices never block each other.
type Store struct {
	mu     sync.RWMutex
	states map[string]*domain.DeviceState
	log    *zap.Logger
}

// NewStore creates a store pre-seeded with the fixed device set, all in
// their default state.
func NewStore(log *zap.Logger) ports.StateStore {
	s := &Store{
		states: make(map[string]*domain.DeviceState, len(domain.ValidDevices)),
		log:    log,
	}
	for _, device := range domain.ValidDevices {
		s.states[device] = domain.NewDeviceState()
	}
	log.Info("Device state store initialized",
		zap.Int("devices", len(s.states)),
	)
	return s
}

// GetOrCreate returns the state for a device, installing a default state
// on first access. The write-lock re-check keeps concurrent first
// accesses from installing two different instances for the same key.
func (s *Store) GetOrCreate(device string) *domain.DeviceState {
	s.mu.RLock()
	st, ok := s.states[device]
	s.mu.RUnlock()
	if ok {
		return st
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.states[device]; ok {
		return st
	}
	st = domain.NewDeviceState()
	s.states[device] = st
	s.log.Debug("Device state created lazily", zap.String("device", device))
	return st
}

// Snapshot copies the current state of every known device.
func (s *Store) Snapshot() map[string]domain.DeviceSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := make(map[string]domain.DeviceSnapshot, len(s.states))
	for device, st := range s.states {
		snap[device] = st.Snapshot(device)
	}
	return snap
}

// Devices returns the known device identifiers in sorted order.
func (s *Store) Devices() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	devices := make([]string, 0, len(s.states))
	for device := range s.states {
		devices = append(devices, device)
	}
	sort.Strings(devices)
	return devices
}
