package fluid

// State is the lifecycle state of a Responsive value or a Theme.
type State int32

const (
	// StateLoading indicates nothing has been received from the source yet.
	StateLoading State = iota

	// StateHealthy indicates a value has been computed or applied.
	StateHealthy

	// StateDegraded indicates the last update failed. The previous value
	// remains active.
	StateDegraded

	// StateEmpty indicates no usable value has ever been obtained. Watching
	// continues.
	StateEmpty

	// StateStopped indicates the subscription has been torn down.
	StateStopped
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateHealthy:
		return "healthy"
	case StateDegraded:
		return "degraded"
	case StateEmpty:
		return "empty"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// RevealState is the state of a Reveal. The only transition is
// RevealPending to RevealVisible.
type RevealState int32

const (
	// RevealPending means the target has not met the threshold yet.
	RevealPending RevealState = iota

	// RevealVisible means the target has been revealed. It is final.
	RevealVisible
)

// String returns the string representation of the reveal state.
func (s RevealState) String() string {
	switch s {
	case RevealPending:
		return "pending"
	case RevealVisible:
		return "visible"
	default:
		return "unknown"
	}
}
