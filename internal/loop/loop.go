// Package loop runs one terminal game session: Input → Update → Draw at a
// fixed frame rate until the player quits, goes idle, or the host shuts down.
package loop

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	gamecfg "github.com/tomz197/drift/internal/config"
	"github.com/tomz197/drift/internal/draw"
	"github.com/tomz197/drift/internal/input"
	"github.com/tomz197/drift/internal/loop/config"
	"github.com/tomz197/drift/internal/random"
	"github.com/tomz197/drift/internal/scene"
	"github.com/tomz197/drift/internal/world"
)

// Options configures a session. Zero durations take the loop/config defaults.
type Options struct {
	Tuning   gamecfg.Tuning // Must be validated
	Keymap   input.Keymap   // Must be validated
	Seed     uint64         // Session seed, see random.Seeder; zero seeds from the clock
	Logger   *log.Logger
	TermSize draw.TermSizeFunc

	FrameTime      time.Duration
	IdleWarn       time.Duration
	IdleDisconnect time.Duration
	ShutdownNotice time.Duration
}

func (o *Options) setDefaults() {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.TermSize == nil {
		o.TermSize = draw.StdoutSize
	}
	if o.FrameTime <= 0 {
		o.FrameTime = config.TargetFrameTime
	}
	if o.IdleWarn <= 0 {
		o.IdleWarn = config.InactivityWarn
	}
	if o.IdleDisconnect <= 0 {
		o.IdleDisconnect = config.InactivityDisconnect
	}
	if o.ShutdownNotice <= 0 {
		o.ShutdownNotice = config.ShutdownNotice
	}
}

// Session is a single player's game: its own world, scene stack and screen.
type Session struct {
	opts    Options
	logger  *log.Logger
	world   *world.World
	scenes  *scene.Controller
	tracker *input.Tracker
	stream  *input.Stream
	canvas  *draw.Canvas
	frame   *draw.Frame

	in        input.Snapshot // Input applied this frame
	lastInput time.Time
	idle      bool      // Inactivity warning showing
	shutdown  time.Time // When the shutdown notice ends, zero if not shutting down
}

// NewSession creates a session reading keys from r and drawing to w.
func NewSession(r *bufio.Reader, w io.Writer, opts Options) *Session {
	opts.setDefaults()

	wld := world.New(opts.Tuning, random.New(opts.Seed), opts.Logger)
	cols, rows := clampTermSize(opts.TermSize())

	return &Session{
		opts:    opts,
		logger:  opts.Logger,
		world:   wld,
		scenes:  scene.NewController(wld, scene.DefaultPauseDebounce, opts.Logger),
		tracker: input.NewTracker(opts.Keymap),
		stream:  input.StartStream(r),
		canvas:  draw.NewCanvas(cols, rows, config.ViewWidth, config.ViewHeight),
		frame:   draw.NewFrame(w),
	}
}

// Run is a convenience for NewSession(r, w, opts).Run(ctx).
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	return NewSession(r, w, opts).Run(ctx)
}

// Run drives the session until it ends. Cancelling ctx shows the shutdown
// notice and returns once it has been displayed.
func (s *Session) Run(ctx context.Context) error {
	s.frame.HideCursor()
	s.frame.Clear()
	defer func() {
		s.frame.Clear()
		s.frame.ShowCursor()
		_ = s.frame.Flush()
	}()

	last := time.Now()
	s.lastInput = last

	for {
		frameStart := time.Now()
		dt := clampDelta(frameStart.Sub(last))
		last = frameStart

		if done := s.update(ctx, frameStart, dt); done {
			return nil
		}
		if err := s.render(); err != nil {
			return err
		}

		// Once the shutdown notice is up, cancellation has been handled and
		// frames keep their normal pace.
		cancelled := ctx.Done()
		if !s.shutdown.IsZero() {
			cancelled = nil
		}

		wait := s.opts.FrameTime - time.Since(frameStart)
		if wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-cancelled:
				timer.Stop()
			}
		}
	}
}

// update applies one frame of input and simulation. Returns true when the
// session is over.
func (s *Session) update(ctx context.Context, now time.Time, dt time.Duration) bool {
	buf, ok := s.stream.Drain()
	if !ok {
		s.logger.Debug("input closed")
		s.scenes.Close()
		return true
	}
	s.in = s.tracker.Decode(buf, now)

	if !s.shutdown.IsZero() {
		return s.in.Quit || !now.Before(s.shutdown)
	}
	if ctx.Err() != nil {
		s.logger.Info("shutting down session")
		s.scenes.Close()
		s.shutdown = now.Add(s.opts.ShutdownNotice)
		return false
	}

	if s.checkIdle(now) {
		s.scenes.Close()
		return true
	}

	mode := s.scenes.Mode()
	quit := s.scenes.Update(dt, s.in)
	if s.scenes.Mode() != mode {
		// Keys held on the previous screen must not leak into the next.
		s.tracker.Reset()
	}
	return quit
}

// checkIdle tracks inactivity. Returns true once the session should be
// disconnected.
func (s *Session) checkIdle(now time.Time) bool {
	if s.in.Active() {
		s.lastInput = now
		s.idle = false
		return false
	}

	idleFor := now.Sub(s.lastInput)
	if idleFor > s.opts.IdleDisconnect {
		s.logger.Info("disconnecting idle session", "idle", idleFor.Round(time.Second))
		return true
	}
	s.idle = idleFor > s.opts.IdleWarn
	return false
}

// clampDelta bounds a frame delta so a stalled host does not teleport the
// simulation.
func clampDelta(dt time.Duration) time.Duration {
	return min(max(dt, 0), config.MaxFrameDelta)
}

// clampTermSize bounds the terminal size to the max render resolution.
func clampTermSize(cols, rows int, err error) (int, int) {
	if err != nil || cols <= 0 || rows <= 0 {
		return config.ViewWidth, config.ViewHeight / 2
	}
	return min(cols, config.MaxTermWidth), min(rows, config.MaxTermHeight)
}
