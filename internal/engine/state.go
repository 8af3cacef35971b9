package engine

// State of the control loop. Running -> Closing -> Terminated.
type State int

const (
	Running State = iota
	Closing
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Closing:
		return "closing"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}
