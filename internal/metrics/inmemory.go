package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersCreated      uint64
	LookupsFound      uint64
	LookupsNotFound   uint64
	LookupsFailed     uint64
	StoreErrorsCreate uint64
	StoreErrorsGet    uint64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	usersCreated      atomic.Uint64
	lookupsFound      atomic.Uint64
	lookupsNotFound   atomic.Uint64
	lookupsFailed     atomic.Uint64
	storeErrorsCreate atomic.Uint64
	storeErrorsGet    atomic.Uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersCreated:      m.usersCreated.Load(),
		LookupsFound:      m.lookupsFound.Load(),
		LookupsNotFound:   m.lookupsNotFound.Load(),
		LookupsFailed:     m.lookupsFailed.Load(),
		StoreErrorsCreate: m.storeErrorsCreate.Load(),
		StoreErrorsGet:    m.storeErrorsGet.Load(),
	}
}

// IncUserCreated increments the user created counter.
func (m *InMemoryRecorder) IncUserCreated() {
	m.usersCreated.Add(1)
}

// IncUserLookup increments the lookup counter for the given outcome.
// Unknown outcomes are ignored.
func (m *InMemoryRecorder) IncUserLookup(outcome string) {
	switch outcome {
	case LookupFound:
		m.lookupsFound.Add(1)
	case LookupNotFound:
		m.lookupsNotFound.Add(1)
	case LookupError:
		m.lookupsFailed.Add(1)
	}
}

// IncStoreError increments the store error counter for the given operation.
func (m *InMemoryRecorder) IncStoreError(op string) {
	switch op {
	case "create":
		m.storeErrorsCreate.Add(1)
	case "get":
		m.storeErrorsGet.Add(1)
	}
}
