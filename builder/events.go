package builder

import "time"

// Operation names reported in Event.Op.
const (
	// OpApply records a step application attempt.
	OpApply = "apply"
	// OpBuild records a finalization attempt, successful or not.
	OpBuild = "build"
)

// Event describes one builder operation for observers. Events are plain
// values; observers may retain them.
type Event struct {
	// Op is one of the Op* constants.
	Op string `json:"op"`

	// BuildID identifies the builder the operation targeted.
	BuildID string `json:"build_id"`

	// Err is the failure, if any. Nil for successful operations.
	Err error `json:"-"`

	// At is when the operation completed.
	At time.Time `json:"at"`
}
