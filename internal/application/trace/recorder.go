// Package trace records frame loop events for debugging scene flow.
package trace

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Recorder collects loop events in memory until saved
type Recorder struct {
	data      Data
	recording bool
	frame     int
}

// NewRecorder creates a new recorder
func NewRecorder() *Recorder {
	return &Recorder{
		data: Data{
			Version:   "1.0",
			StartTime: time.Now().Format(time.RFC3339),
			Events:    make([]Event, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// Record appends an event. Step events advance the frame counter.
func (r *Recorder) Record(kind Kind, scene string, err error) {
	if !r.recording {
		return
	}

	ev := Event{
		F:     r.frame,
		Kind:  kind,
		Scene: scene,
	}
	if err != nil {
		ev.Err = err.Error()
	}

	r.data.Events = append(r.data.Events, ev)
	if kind == KindStep {
		r.frame++
	}
}

// Save writes the trace to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Events) == 0 {
		return fmt.Errorf("no events to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode trace: %w", err)
	}

	return nil
}

// Load reads a trace written by Save
func Load(filename string) (Data, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return Data{}, fmt.Errorf("failed to read trace: %w", err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("failed to parse trace: %w", err)
	}

	return data, nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// EventCount returns the number of recorded events
func (r *Recorder) EventCount() int {
	return len(r.data.Events)
}

// FrameCount returns the number of recorded steps
func (r *Recorder) FrameCount() int {
	return r.frame
}

// GetData returns the trace data
func (r *Recorder) GetData() Data {
	return r.data
}

// Count returns how many events of each kind occurred
func Count(events []Event) map[Kind]int {
	counts := make(map[Kind]int)
	for _, ev := range events {
		counts[ev.Kind]++
	}
	return counts
}

// Failures returns the events that carry an error
func Failures(events []Event) []Event {
	var failed []Event
	for _, ev := range events {
		if ev.Err != "" {
			failed = append(failed, ev)
		}
	}
	return failed
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("trace_%s.json", time.Now().Format("20060102_150405"))
}
