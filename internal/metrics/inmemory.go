package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersCreated         uint64
	CarsUpdated          uint64
	UsersNotFound        uint64
	CarGenerationCount   uint64
	CarGenerationTotalNs int64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	usersCreated         uint64
	carsUpdated          uint64
	usersNotFound        uint64
	carGenerationCount   uint64
	carGenerationTotalNs int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersCreated:         atomic.LoadUint64(&m.usersCreated),
		CarsUpdated:          atomic.LoadUint64(&m.carsUpdated),
		UsersNotFound:        atomic.LoadUint64(&m.usersNotFound),
		CarGenerationCount:   atomic.LoadUint64(&m.carGenerationCount),
		CarGenerationTotalNs: atomic.LoadInt64(&m.carGenerationTotalNs),
	}
}

// IncUserCreated increments the created-users counter.
func (m *InMemoryRecorder) IncUserCreated() {
	atomic.AddUint64(&m.usersCreated, 1)
}

// IncCarUpdated increments the car-updates counter.
func (m *InMemoryRecorder) IncCarUpdated() {
	atomic.AddUint64(&m.carsUpdated, 1)
}

// IncUserNotFound increments the missed-lookup counter.
func (m *InMemoryRecorder) IncUserNotFound() {
	atomic.AddUint64(&m.usersNotFound, 1)
}

// ObserveCarGeneration records how long one vehicle generation took.
func (m *InMemoryRecorder) ObserveCarGeneration(duration time.Duration) {
	atomic.AddUint64(&m.carGenerationCount, 1)
	atomic.AddInt64(&m.carGenerationTotalNs, duration.Nanoseconds())
}
