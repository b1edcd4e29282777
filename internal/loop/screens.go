package loop

import (
	"fmt"
	"strings"

	"github.com/tomz197/drift/internal/draw"
	"github.com/tomz197/drift/internal/input"
	"github.com/tomz197/drift/internal/loop/config"
	"github.com/tomz197/drift/internal/object"
	"github.com/tomz197/drift/internal/scene"
	"github.com/tomz197/drift/internal/world"
)

const title = "D R I F T"

// render draws the current frame: the world while a simulation is active,
// then the text overlay for the current screen.
func (s *Session) render() error {
	s.frame.Clear()
	s.canvas.Resize(clampTermSize(s.opts.TermSize()))
	s.canvas.Clear()

	if s.world.Active() {
		drawWorld(s.canvas, s.world, s.in.Held(input.ThrustForward) && s.scenes.Mode() == scene.Playing)
		if err := s.canvas.Render(s.frame); err != nil {
			return err
		}
	}

	s.drawUI()
	return s.frame.Flush()
}

// drawWorld draws the star field, asteroids, projectiles and the ship, in
// back to front order.
func drawWorld(c *draw.Canvas, w *world.World, thrusting bool) {
	v := draw.NewView(c, w.Camera().Position, config.ViewZoom)

	draw.Stars(c, v)
	w.Asteroids().Each(func(_ world.ID, a *object.Asteroid) {
		draw.Asteroid(c, v, *a)
	})
	w.Projectiles().Each(func(_ world.ID, p *object.Projectile) {
		draw.Laser(c, v, *p)
	})
	draw.Ship(c, v, w.Player().Transform, thrusting)
}

// drawUI draws the text overlay for the current screen.
func (s *Session) drawUI() {
	cols, rows := s.canvas.Cols(), s.canvas.Rows()
	centerX, centerY := cols/2, rows/2

	if !s.shutdown.IsZero() {
		s.centered(centerX, centerY-1, "SERVER SHUTTING DOWN")
		s.centered(centerX, centerY+1, "Thanks for playing! Press Q to leave.")
		return
	}

	switch s.scenes.Mode() {
	case scene.Menu:
		s.centered(centerX, centerY-4, title)
		s.drawItems(centerX, centerY-1)
		s.centered(centerX, centerY+5, "W/S or arrows to choose, ENTER to select, Q to quit")
	case scene.Settings:
		s.drawSettings(centerX, max(centerY-8, 1))
	case scene.Playing:
		s.drawHUD(cols)
	case scene.Paused:
		s.drawHUD(cols)
		s.centered(centerX, centerY-3, "P A U S E D")
		s.drawItems(centerX, centerY)
	}

	if s.idle {
		s.centered(centerX, rows-1, "Are you still there? Press any key to stay connected.")
	}
}

// drawHUD draws the score in the top-left and the asteroid count in the
// top-right corner.
func (s *Session) drawHUD(cols int) {
	s.frame.WriteAt(2, 1, fmt.Sprintf("Score: %d", s.world.Score()))

	count := fmt.Sprintf("Asteroids: %d/%d", s.world.Asteroids().Len(), s.world.Pacing().Target)
	s.frame.WriteAt(max(cols-len(count), 1), 1, count)
}

// drawItems lists the current screen's entries with the selection marked.
func (s *Session) drawItems(centerX, row int) {
	for i, item := range s.scenes.Items() {
		marker := "  "
		if i == s.scenes.Selected() {
			marker = "> "
		}
		s.centered(centerX, row+i*2, fmt.Sprintf("%s%d. %s", marker, i+1, item))
	}
}

// drawSettings lists the key bindings and simulation tuning.
func (s *Session) drawSettings(centerX, row int) {
	lines := []string{"S E T T I N G S", ""}
	for _, a := range input.Actions() {
		lines = append(lines, fmt.Sprintf("%-16s %s", a, keyNames(s.opts.Keymap.Keys(a))))
	}

	t := s.world.Tuning()
	lines = append(lines,
		"",
		fmt.Sprintf("thrust %.0f  damping %.2f  turn %.1f  max turn %.1f",
			t.Kinematics.Accel, t.Kinematics.LinearDamping, t.Kinematics.RotAccel, t.Kinematics.MaxRotRate),
		fmt.Sprintf("laser speed %.0f  cooldown %v  lifetime %v",
			t.Weapon.Speed, t.Weapon.Cooldown, t.Weapon.Lifetime),
		fmt.Sprintf("spawn every %v at %.0f-%.0f  cull beyond %.0f",
			t.Spawn.Interval, t.Spawn.Radius.Min, t.Spawn.Radius.Max, t.CullDistance),
		"",
		"ENTER or ESC to go back",
	)

	for i, line := range lines {
		s.centered(centerX, row+i, line)
	}
}

func (s *Session) centered(centerX, row int, text string) {
	s.frame.WriteAt(max(centerX-len(text)/2, 1), row, text)
}

// keyNames formats key bytes for display.
func keyNames(keys []byte) string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		switch k {
		case ' ':
			names = append(names, "SPACE")
		case '\x1b':
			names = append(names, "ESC")
		default:
			names = append(names, string(rune(k)))
		}
	}
	return strings.Join(names, " ")
}
