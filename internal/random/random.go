// Package random provides the process-wide sampling source used for spawn
// placement and velocity jitter.
package random

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"
)

// Range is a half-open interval [Min, Max) to sample from.
type Range struct {
	Min float64
	Max float64
}

// Validate reports whether the range is non-empty and well ordered.
func (r Range) Validate() error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return fmt.Errorf("range [%v, %v) has non-finite bounds", r.Min, r.Max)
	}
	if !(r.Min < r.Max) {
		return fmt.Errorf("range [%v, %v) is empty or inverted", r.Min, r.Max)
	}
	return nil
}

// Contains reports whether v lies in [Min, Max).
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v < r.Max
}

// Source is a seeded generator. It is not safe for concurrent use, so each
// simulation owns its own Source, seeded from the process Seeder.
type Source struct {
	rng *rand.Rand
}

// New creates a source with the given seed. A zero seed uses the current time.
func New(seed uint64) *Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Source{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Float64 returns a value in [0.0, 1.0).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// In returns a value sampled uniformly from r.
func (s *Source) In(r Range) float64 {
	v := r.Min + s.rng.Float64()*(r.Max-r.Min)
	if v >= r.Max {
		// Rounding can land exactly on Max for very wide ranges.
		v = math.Nextafter(r.Max, r.Min)
	}
	return v
}

// Angle returns an angle sampled uniformly from [0, 2π).
func (s *Source) Angle() float64 {
	return s.In(Range{Min: 0, Max: 2 * math.Pi})
}

// IntN returns a value in [0, n). Panics if n <= 0.
func (s *Source) IntN(n int) int {
	return s.rng.IntN(n)
}

// Uint64 returns a uniformly distributed 64-bit value.
func (s *Source) Uint64() uint64 {
	return s.rng.Uint64()
}

// Seeder is the process-wide generator, seeded once at startup. It hands
// each session a distinct seed so concurrent games never share a sequence.
// Safe for concurrent use.
type Seeder struct {
	mu  sync.Mutex
	src *Source
}

// NewSeeder creates the process generator. A zero seed uses the current time.
func NewSeeder(seed uint64) *Seeder {
	return &Seeder{src: New(seed)}
}

// Next returns the seed for a new session. Never zero.
func (s *Seeder) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		if n := s.src.Uint64(); n != 0 {
			return n
		}
	}
}
