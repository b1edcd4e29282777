// Package scene switches between the menu screens and the running
// simulation. Paused is pushed over Playing, so the simulation is kept but
// not ticked while the pause menu is up.
package scene

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/drift/internal/input"
	"github.com/tomz197/drift/internal/object"
)

// Mode is one layer of the scene stack.
type Mode int

const (
	Menu Mode = iota
	Settings
	Playing
	Paused
)

func (m Mode) String() string {
	switch m {
	case Menu:
		return "menu"
	case Settings:
		return "settings"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Simulation is the world driven while Playing is on the stack.
type Simulation interface {
	EnterSimulation()
	ExitSimulation()
	Tick(dt time.Duration, controls object.Controls, fire bool)
}

// DefaultPauseDebounce is both the minimum time spent paused before the
// toggle resumes and the time after resuming before it pauses again.
const DefaultPauseDebounce = 200 * time.Millisecond

var (
	menuItems  = []string{"Start", "Settings", "Quit"}
	pauseItems = []string{"Continue", "Quit to menu"}
)

// Controller owns the mode stack. The bottom of the stack is Menu or Playing.
type Controller struct {
	stack    []Mode
	sim      Simulation
	logger   *log.Logger
	selected int

	pauseDwell    object.Timer // Must finish before the toggle resumes
	pauseCooldown object.Timer // Must finish before the toggle pauses
}

// NewController creates a controller showing the main menu.
func NewController(sim Simulation, debounce time.Duration, logger *log.Logger) *Controller {
	return &Controller{
		stack:         []Mode{Menu},
		sim:           sim,
		logger:        logger,
		pauseDwell:    object.NewTimer(debounce),
		pauseCooldown: object.NewReadyTimer(debounce),
	}
}

// Mode returns the top of the stack.
func (c *Controller) Mode() Mode {
	return c.stack[len(c.stack)-1]
}

// Stack returns a copy of the mode stack, bottom first.
func (c *Controller) Stack() []Mode {
	return append([]Mode(nil), c.stack...)
}

// Items returns the selectable entries of the current screen.
func (c *Controller) Items() []string {
	switch c.Mode() {
	case Menu:
		return menuItems
	case Paused:
		return pauseItems
	}
	return nil
}

// Selected returns the index of the highlighted entry.
func (c *Controller) Selected() int {
	return c.selected
}

// Update applies one tick of input and, while playing, advances the
// simulation by dt. Returns true when the application should quit; the
// simulation has been exited by then.
func (c *Controller) Update(dt time.Duration, in input.Snapshot) (quit bool) {
	if in.Quit {
		c.Close()
		return true
	}

	switch c.Mode() {
	case Menu:
		return c.updateMenu(in)
	case Settings:
		if in.Confirm || in.JustPressed(input.PauseToggle) || in.Digit == 0 {
			c.replace(Menu)
		}
	case Playing:
		c.updatePlaying(dt, in)
	case Paused:
		c.updatePaused(dt, in)
	}
	return false
}

// Close exits the simulation if it is on the stack and returns to the menu.
func (c *Controller) Close() {
	if c.playing() {
		c.sim.ExitSimulation()
	}
	c.replace(Menu)
}

func (c *Controller) updateMenu(in input.Snapshot) bool {
	choice, ok := c.choose(in, len(menuItems))
	if !ok {
		return false
	}

	switch choice {
	case 0:
		c.sim.EnterSimulation()
		c.pauseCooldown = object.NewReadyTimer(c.pauseCooldown.Duration)
		c.replace(Playing)
	case 1:
		c.replace(Settings)
	case 2:
		return true
	}
	return false
}

func (c *Controller) updatePlaying(dt time.Duration, in input.Snapshot) {
	ready := c.pauseCooldown.Tick(dt)
	if ready && in.JustPressed(input.PauseToggle) {
		c.pauseDwell.Reset()
		c.push(Paused)
		return
	}

	controls := object.Controls{
		RotateLeft:    in.Held(input.RotateLeft),
		RotateRight:   in.Held(input.RotateRight),
		ThrustForward: in.Held(input.ThrustForward),
		ThrustBack:    in.Held(input.ThrustBack),
	}
	c.sim.Tick(dt, controls, in.Held(input.Fire))
}

func (c *Controller) updatePaused(dt time.Duration, in input.Snapshot) {
	dwelled := c.pauseDwell.Tick(dt)
	if dwelled && in.JustPressed(input.PauseToggle) {
		c.resume()
		return
	}

	choice, ok := c.choose(in, len(pauseItems))
	if !ok {
		return
	}
	switch choice {
	case 0:
		c.resume()
	case 1:
		c.sim.ExitSimulation()
		c.replace(Menu)
	}
}

func (c *Controller) resume() {
	c.pauseCooldown.Reset()
	c.pop()
}

// choose moves the highlight with the thrust keys and reports an activated
// entry. Digits pick entries directly, counting from 1.
func (c *Controller) choose(in input.Snapshot, n int) (int, bool) {
	if in.Digit >= 1 && in.Digit <= n {
		c.selected = in.Digit - 1
		return c.selected, true
	}
	if in.JustPressed(input.ThrustForward) {
		c.selected = (c.selected + n - 1) % n
	}
	if in.JustPressed(input.ThrustBack) {
		c.selected = (c.selected + 1) % n
	}
	if in.Confirm {
		return c.selected, true
	}
	return 0, false
}

func (c *Controller) playing() bool {
	for _, m := range c.stack {
		if m == Playing {
			return true
		}
	}
	return false
}

func (c *Controller) push(m Mode) {
	c.logger.Debug("scene push", "from", c.Mode(), "to", m)
	c.stack = append(c.stack, m)
	c.selected = 0
}

func (c *Controller) pop() {
	from := c.Mode()
	c.stack = c.stack[:len(c.stack)-1]
	c.selected = 0
	c.logger.Debug("scene pop", "from", from, "to", c.Mode())
}

func (c *Controller) replace(m Mode) {
	if len(c.stack) == 1 && c.stack[0] == m {
		return
	}
	c.logger.Debug("scene replace", "from", c.Mode(), "to", m)
	c.stack = append(c.stack[:0], m)
	c.selected = 0
}
