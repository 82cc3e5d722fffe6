// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Lookup outcomes passed to IncUserLookup.
const (
	LookupFound    = "found"
	LookupNotFound = "not_found"
	LookupError    = "error"
)

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// User record metrics
	IncUserCreated()
	IncUserLookup(outcome string) // outcome: LookupFound, LookupNotFound or LookupError

	// Store metrics
	IncStoreError(op string) // op: "create" or "get"
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
