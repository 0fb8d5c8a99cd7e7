package singleton

import "time"

// Operation names reported in Event.Op.
const (
	// OpRegister records a constructor registration.
	OpRegister = "register"
	// OpGet records an instance access, successful or not.
	OpGet = "get"
	// OpReset records a slot reset. A reset of every slot reports an
	// empty Key.
	OpReset = "reset"
)

// Event describes one singleton operation for observers. Events are plain
// values; observers may retain them.
type Event struct {
	// Op is one of the Op* constants.
	Op string `json:"op"`

	// Key is the singleton key the operation targeted.
	Key string `json:"key"`

	// Hit reports whether a get was served from a populated slot.
	Hit bool `json:"hit"`

	// At is when the operation completed.
	At time.Time `json:"at"`
}
