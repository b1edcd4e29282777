// Package world owns the simulated entities and advances them one frame at a
// time in a fixed system order.
package world

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/drift/internal/config"
	"github.com/tomz197/drift/internal/object"
)

// World is the entity store for one play session. The player, camera and
// spawn pacing exist only between EnterSimulation and ExitSimulation.
type World struct {
	tuning config.Tuning
	rng    object.Sampler
	logger *log.Logger

	player      *object.Player
	camera      *object.Camera
	pacing      *object.SpawnPacing
	asteroids   Arena[object.Asteroid]
	projectiles Arena[object.Projectile]
	toSpawn     []object.Projectile // Projectiles to add after the projectile system runs
}

// New creates an idle world. The tuning must already be validated.
func New(tuning config.Tuning, rng object.Sampler, logger *log.Logger) *World {
	return &World{
		tuning: tuning,
		rng:    rng,
		logger: logger,
	}
}

// EnterSimulation spawns the player and camera at the origin and starts
// asteroid pacing at its initial target. An already running simulation is
// torn down first.
func (w *World) EnterSimulation() {
	if w.Active() {
		w.ExitSimulation()
	}

	w.player = object.NewPlayer(w.tuning.Weapon)
	w.camera = object.NewCamera(w.tuning.CameraGain)
	w.pacing = object.NewSpawnPacing(w.tuning.Spawn)

	w.logger.Debug("simulation entered", "target", w.pacing.Target)
}

// ExitSimulation stops the fill, then destroys asteroids, projectiles and
// finally the player and camera. Does nothing when no simulation is active.
func (w *World) ExitSimulation() {
	if !w.Active() {
		return
	}

	w.pacing = nil
	asteroids := w.asteroids.Len()
	w.asteroids.Clear()
	projectiles := w.projectiles.Len()
	w.projectiles.Clear()
	w.toSpawn = w.toSpawn[:0]
	w.player = nil
	w.camera = nil

	w.logger.Debug("simulation exited", "asteroids", asteroids, "projectiles", projectiles)
}

// Active reports whether a simulation is running.
func (w *World) Active() bool {
	return w.player != nil
}

// Player returns the ship. Panics if no simulation is active.
func (w *World) Player() *object.Player {
	if w.player == nil {
		panic("world: Player called with no active simulation")
	}
	return w.player
}

// Camera returns the view camera. Panics if no simulation is active.
func (w *World) Camera() *object.Camera {
	if w.camera == nil {
		panic("world: Camera called with no active simulation")
	}
	return w.camera
}

// Pacing returns the spawn pacing, or nil if no simulation is active.
func (w *World) Pacing() *object.SpawnPacing {
	return w.pacing
}

// Asteroids returns the asteroid store.
func (w *World) Asteroids() *Arena[object.Asteroid] {
	return &w.asteroids
}

// Projectiles returns the projectile store.
func (w *World) Projectiles() *Arena[object.Projectile] {
	return &w.projectiles
}

// Score is the value shown on the HUD. Nothing awards points yet.
func (w *World) Score() int {
	return 0
}

// Tuning returns the constants the world was created with.
func (w *World) Tuning() config.Tuning {
	return w.tuning
}

// SpawnProjectile queues p to join the world once the projectile system has
// run, so a new shot is not advanced on the tick it was fired.
// Implements object.Spawner.
func (w *World) SpawnProjectile(p object.Projectile) {
	w.toSpawn = append(w.toSpawn, p)
}

func (w *World) flushSpawned() {
	for _, p := range w.toSpawn {
		w.projectiles.Insert(p)
	}
	w.toSpawn = w.toSpawn[:0]
}

// Tick advances the simulation by dt. Does nothing when no simulation is
// active.
func (w *World) Tick(dt time.Duration, controls object.Controls, fire bool) {
	if !w.Active() {
		return
	}

	p := w.player
	p.Integrate(dt, controls, w.tuning.Kinematics)
	w.camera.Follow(p.Position, dt)
	p.Weapon.Update(dt, fire, p.Transform, p.Velocity, w)

	w.projectiles.RemoveFunc(func(_ ID, pr *object.Projectile) bool {
		return pr.Advance(dt)
	})
	w.flushSpawned()

	w.asteroids.Each(func(_ ID, a *object.Asteroid) {
		a.Advance(dt)
	})

	if w.pacing.Advance(dt) {
		w.logger.Debug("difficulty raised", "target", w.pacing.Target)
	}
	w.fill()
	w.cull()
}

// fill spawns at most one asteroid per tick while the population is below
// target.
func (w *World) fill() {
	if !w.pacing.ShouldSpawn(w.asteroids.Len()) {
		return
	}
	w.asteroids.Insert(object.NewAsteroidAround(w.player.Position, w.rng, w.tuning.Spawn))
}

// cull removes asteroids that have drifted beyond the cull distance.
func (w *World) cull() {
	center := w.player.Position
	limit := w.tuning.CullDistance * w.tuning.CullDistance
	w.asteroids.RemoveFunc(func(_ ID, a *object.Asteroid) bool {
		return a.Position.Sub(center).LenSquared() > limit
	})
}
