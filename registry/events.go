package registry

import "time"

// Operation names reported in Event.Op.
const (
	// OpRegister records a first-time registration of a key.
	OpRegister = "register"
	// OpOverwrite records a re-registration under an overwrite policy.
	OpOverwrite = "overwrite"
	// OpResolve records a resolution attempt, successful or not.
	OpResolve = "resolve"
)

// Event describes one registry operation for observers. Events are plain
// values; observers may retain them.
type Event struct {
	// Op is one of the Op* constants.
	Op string `json:"op"`

	// Key is the construction key the operation targeted.
	Key string `json:"key"`

	// Err is the failure, if any. Nil for successful operations.
	Err error `json:"-"`

	// At is when the operation completed.
	At time.Time `json:"at"`
}
