package metrics

import "time"

// NoopRecorder discards all metric events.
type NoopRecorder struct{}

// NewNoop returns a Recorder that does nothing.
func NewNoop() *NoopRecorder {
	return &NoopRecorder{}
}

func (*NoopRecorder) IncUserCreated()                    {}
func (*NoopRecorder) IncCarUpdated()                     {}
func (*NoopRecorder) IncUserNotFound()                   {}
func (*NoopRecorder) ObserveCarGeneration(time.Duration) {}
