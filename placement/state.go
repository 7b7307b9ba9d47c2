package placement

// State is the dome placement state.
type State int

const (
	// AwaitingInitialPlacement means the dome follows the pointer every tick.
	AwaitingInitialPlacement State = iota
	// Placed means the dome stays put until the next tap.
	Placed
)

func (s State) String() string {
	switch s {
	case AwaitingInitialPlacement:
		return "AwaitingInitialPlacement"
	case Placed:
		return "Placed"
	}
	return "Unknown"
}
