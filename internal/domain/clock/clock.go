// Package clock provides the demo scene: the current local time drawn on a
// white background.
package clock

import (
	"fmt"
	"time"

	"github.com/fogleman/gg"
	xfont "golang.org/x/image/font"

	"github.com/younwookim/sceneloop/internal/application/scene"
	"github.com/younwookim/sceneloop/internal/infrastructure/font"
)

// Key is the scene key the clock registers under.
const Key = "clock"

// DefaultFont is used when the activation params carry no "font".
const DefaultFont = "30px sans-serif"

// TimeLayout matches a browser's toLocaleTimeString in en-US.
const TimeLayout = "3:04:05 PM"

// Text position, baseline-anchored
const (
	textX = 20
	textY = 50
)

// Clock draws the time every frame.
type Clock struct {
	now  func() time.Time
	spec string
	face xfont.Face
}

// New creates a Clock reading the system time.
func New() *Clock {
	return &Clock{now: time.Now}
}

// NewWithClock creates a Clock reading time from now (for testing).
func NewWithClock(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Register adds the clock scene to m.
func (c *Clock) Register(m *scene.Manager[*gg.Context]) {
	m.Register(Key, c.Setup, c.Step)
}

// Setup loads the face named by the "font" param and sets it on the surface.
func (c *Clock) Setup(m *scene.Manager[*gg.Context], s *scene.Scene[*gg.Context]) error {
	spec := s.Params().String("font", DefaultFont)
	face, err := font.Load(spec)
	if err != nil {
		return fmt.Errorf("clock font: %w", err)
	}

	c.spec = spec
	c.face = face
	m.Surface().SetFontFace(face)
	return nil
}

// Step clears the surface and draws the current time.
func (c *Clock) Step(m *scene.Manager[*gg.Context], s *scene.Scene[*gg.Context]) error {
	dc := m.Surface()

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0, 0, 0)
	dc.DrawString(c.Text(), textX, textY)
	return nil
}

// Text returns the string the next Step draws.
func (c *Clock) Text() string {
	return c.now().Format(TimeLayout)
}

// Font returns the font string read by the last Setup.
func (c *Clock) Font() string {
	return c.spec
}
