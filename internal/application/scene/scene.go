// Package scene defines named scenes and the Manager that switches between them.
//
// Each scene has a setup procedure, run once per activation, and a step
// procedure, run once per frame while the scene is active. The Manager hands
// the active step to a loop.Controller which keeps requesting frames until
// stopped.
package scene

// Params carries the values a scene was activated with.
type Params map[string]any

// String returns the string stored under key, or def when missing or not a string.
func (p Params) String(key, def string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return def
}

// Float returns the number stored under key, or def when missing or not numeric.
// JSON numbers decode as float64; ints are accepted too.
func (p Params) Float(key string, def float64) float64 {
	switch v := p[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return def
}

// Func is a scene procedure. It receives the Manager (for the surface and
// scene switching) and the scene it belongs to (for its params).
type Func[S any] func(m *Manager[S], s *Scene[S]) error

// Scene represents one mode of the application.
//
// Key, setup and step are fixed at registration; params are rebound on every
// activation.
type Scene[S any] struct {
	key    string
	setup  Func[S]
	step   Func[S]
	params Params
}

// Key returns the scene's identifier.
func (s *Scene[S]) Key() string {
	return s.key
}

// Params returns the params of the most recent activation.
func (s *Scene[S]) Params() Params {
	return s.params
}
