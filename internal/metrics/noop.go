package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserCreated is a no-op.
func (n *NoopRecorder) IncUserCreated() {}

// IncUserLookup is a no-op.
func (n *NoopRecorder) IncUserLookup(outcome string) {}

// IncStoreError is a no-op.
func (n *NoopRecorder) IncStoreError(op string) {}
