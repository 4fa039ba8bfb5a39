package state

// LoopState represents whether the frame loop keeps requesting frames
type LoopState int

const (
	Stopped LoopState = iota
	Running
)

// String returns the string representation of the loop state
func (s LoopState) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Running:
		return "Running"
	default:
		return "Unknown"
	}
}
