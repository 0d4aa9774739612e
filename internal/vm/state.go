package vm

// State is the execution state of an engine.
type State uint8

// Engine states. Halted is terminal.
const (
	Loading State = iota
	Running
	Blocked
	Halted
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Running:
		return "running"
	case Blocked:
		return "blocked"
	case Halted:
		return "halted"
	default:
		return "unknown"
	}
}
