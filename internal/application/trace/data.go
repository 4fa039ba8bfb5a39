package trace

// Kind identifies what happened in the frame loop
type Kind string

const (
	KindActivate Kind = "activate"
	KindSetup    Kind = "setup"
	KindStep     Kind = "step"
	KindStop     Kind = "stop"
	KindResume   Kind = "resume"
	KindMissing  Kind = "missing" // Activation of an unregistered key
)

// Event records one loop event
type Event struct {
	F     int    `json:"f"`               // Frame number (steps run before this event)
	Kind  Kind   `json:"kind"`
	Scene string `json:"scene,omitempty"`
	Err   string `json:"err,omitempty"`
}

// Data contains a recorded trace
type Data struct {
	Version   string  `json:"version"`
	StartTime string  `json:"startTime"`
	Events    []Event `json:"events"`
}
