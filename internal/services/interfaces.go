// filepath: internal/services/interfaces.go
package services

import "podscope/internal/models"

// CounterService defines the interface for the visit counter. The counter is
// per-process state: every replica owns an independent count, which is the
// point of the demonstration.
type CounterService interface {
	// Increment atomically adds 1 and returns the new value. It cannot fail.
	Increment() int
	// Value atomically returns the current value without mutating it.
	Value() int
}

// ReadinessService defines the interface for the readiness gate.
type ReadinessService interface {
	// IsReady reports whether the warmup period has elapsed. It is a pure
	// function of elapsed time and is safe to call any number of times.
	IsReady() bool
	// ReadyAfterSec returns the configured warmup period in seconds.
	ReadyAfterSec() int
}

// IdentityService defines the interface for the identity reporter.
type IdentityService interface {
	// PodIdentity returns the environment-supplied identity values.
	PodIdentity() models.PodIdentity
	// Snapshot builds a fresh per-request view of identity, counter and
	// readiness state. A hostname lookup failure is returned as an error,
	// never a panic.
	Snapshot() (models.Snapshot, error)
}
