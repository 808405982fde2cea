package vehicle

import (
	"strconv"
	"sync"
	"time"

	"cabin/internal/intent"
)

// Controller owns the mock state. Apply runs one command to completion
// synchronously; the lock only guards against UI and IPC entry points
// arriving on different goroutines.
type Controller struct {
	mu    sync.Mutex
	state State

	city string
	now  func() time.Time
}

func New(defaultCity string) *Controller {
	if defaultCity == "" {
		defaultCity = "武汉"
	}
	return &Controller{
		state: Defaults(),
		city:  defaultCity,
		now:   time.Now,
	}
}

// State returns a snapshot copy.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Reset restores the factory defaults.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Defaults()
}

// Apply executes a classified command and returns the spoken reply.
func (c *Controller) Apply(cmd intent.Command) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch cmd.Category {
	case intent.CategoryMedia:
		return c.applyMedia(cmd)
	case intent.CategoryVehicle:
		return c.applyVehicle(cmd)
	case intent.CategorySystem:
		return c.applySystem(cmd)
	case intent.CategoryQuery:
		return c.applyQuery(cmd)
	}
	return success(Guidance)
}

// numValue reads the numeric param. ok is false when nothing was said or the
// recognizer produced something unparseable.
func numValue(cmd intent.Command) (int, bool) {
	raw, ok := cmd.Params[intent.ParamValue]
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
