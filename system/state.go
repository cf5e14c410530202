package system

import "errors"

var (
	ErrCompleted = errors.New("system: level already completed")
	ErrFailed    = errors.New("system: no attempts left")
)

// State is where a level attempt is in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateLaunched
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLaunched:
		return "launched"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the attempt is over.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed
}

// Action tells the shell what a confirm press did.
type Action int

const (
	ActionNone Action = iota
	ActionLaunched
	// ActionAcknowledged means the level is over and the shell should move on.
	ActionAcknowledged
)
