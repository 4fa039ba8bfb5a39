package loop

import "github.com/younwookim/sceneloop/internal/application/state"

// Controller owns the installed step and the running flag.
//
// Each Kick starts a new frame chain. Frames scheduled by an older chain are
// dropped when they fire, so re-activating while a frame is pending never
// leaves two chains running.
type Controller struct {
	sched   Scheduler
	step    StepFunc
	running bool
	chain   uint64
	frames  uint64
	err     error
}

// NewController creates a stopped Controller that requests frames from sched.
func NewController(sched Scheduler) *Controller {
	return &Controller{sched: sched}
}

// Install replaces the step run by future frames.
// A nil step makes pending frames do nothing.
func (c *Controller) Install(step StepFunc) {
	c.step = step
}

// Arm sets the running flag and clears the last step error without
// requesting a frame.
func (c *Controller) Arm() {
	c.running = true
	c.err = nil
}

// Kick starts a new frame chain and runs its first frame immediately.
func (c *Controller) Kick() {
	c.chain++
	c.err = nil
	c.frame(c.chain)
}

// Stop clears the running flag. A frame that is already scheduled still
// runs once more; it just does not request another.
func (c *Controller) Stop() {
	c.running = false
}

// Resume sets the running flag and runs one frame immediately with the
// installed step.
func (c *Controller) Resume() {
	c.running = true
	if c.step == nil {
		return
	}
	c.Kick()
}

// Running reports whether frames keep being requested.
func (c *Controller) Running() bool {
	return c.running
}

// State returns the running flag as a LoopState.
func (c *Controller) State() state.LoopState {
	if c.running {
		return state.Running
	}
	return state.Stopped
}

// Frames returns how many steps have run.
func (c *Controller) Frames() uint64 {
	return c.frames
}

// Err returns the error of the step that ended the last chain, if any.
func (c *Controller) Err() error {
	return c.err
}

// frame is the frame driver: run the step, then request the next frame while
// running and still the current chain.
func (c *Controller) frame(chain uint64) {
	if chain != c.chain || c.step == nil {
		return
	}

	c.frames++
	if err := c.step(); err != nil {
		// The step switched chains before failing; the new chain owns the state.
		if chain != c.chain {
			return
		}
		// A failed step ends the chain; Resume retries it.
		c.err = err
		c.running = false
		return
	}

	if c.running && chain == c.chain {
		c.sched.RequestFrame(func() { c.frame(chain) })
	}
}
