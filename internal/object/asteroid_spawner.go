package object

import (
	"time"

	"github.com/tomz197/drift/internal/random"
)

// SpawnRules controls asteroid pacing and placement.
type SpawnRules struct {
	Interval      time.Duration // Time between target increments
	InitialTarget int           // Target population on scene entry
	Radius        random.Range  // Distance from the player
	Speed         random.Range  // Drift speed
	Jitter        random.Range  // Heading perturbation around "toward the player"
	Spin          random.Range  // Angular velocity
	Variants      int           // Cosmetic shapes to pick from
}

// DefaultSpawnRules returns the stock pacing: one more asteroid every five
// seconds, spawned 200–300 units out.
func DefaultSpawnRules() SpawnRules {
	return SpawnRules{
		Interval:      5 * time.Second,
		InitialTarget: 1,
		Radius:        random.Range{Min: 200, Max: 300},
		Speed:         random.Range{Min: 40, Max: 80},
		Jitter:        random.Range{Min: -0.5, Max: 0.5},
		Spin:          random.Range{Min: -0.7, Max: 0.7},
		Variants:      AsteroidVariants,
	}
}

// SpawnPacing tracks the asteroid population target. The live count is
// owned by the caller; the pacing only decides how many should exist.
type SpawnPacing struct {
	Target int
	timer  Timer
}

// NewSpawnPacing creates pacing at the initial target with a fresh interval.
func NewSpawnPacing(rules SpawnRules) *SpawnPacing {
	return &SpawnPacing{
		Target: rules.InitialTarget,
		timer:  NewTimer(rules.Interval),
	}
}

// Advance ticks the difficulty timer. Each time the interval elapses the
// target grows by exactly one and the interval restarts at its fixed length,
// so difficulty escalates linearly. Returns true if the target was raised.
func (s *SpawnPacing) Advance(dt time.Duration) bool {
	if !s.timer.Tick(dt) {
		return false
	}
	s.timer.Reset()
	s.Target++
	return true
}

// NextIn returns the time left until the next target increment.
func (s *SpawnPacing) NextIn() time.Duration {
	return s.timer.Remaining
}

// ShouldSpawn reports whether a live population of live is below target.
func (s *SpawnPacing) ShouldSpawn(live int) bool {
	return live < s.Target
}
