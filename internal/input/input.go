// Package input turns raw terminal bytes into per-tick action snapshots.
package input

import (
	"bufio"
	"fmt"
	"time"
)

// Action is a bindable game input.
type Action int

const (
	RotateLeft Action = iota
	RotateRight
	ThrustForward
	ThrustBack
	Fire
	PauseToggle
	NumActions // Number of bindable actions
)

var actionNames = [NumActions]string{
	RotateLeft:    "rotate_left",
	RotateRight:   "rotate_right",
	ThrustForward: "thrust_forward",
	ThrustBack:    "thrust_back",
	Fire:          "fire",
	PauseToggle:   "pause_toggle",
}

func (a Action) String() string {
	if a < 0 || a >= NumActions {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Actions returns every bindable action in declaration order.
func Actions() []Action {
	actions := make([]Action, NumActions)
	for i := range actions {
		actions[i] = Action(i)
	}
	return actions
}

// Snapshot is the input state for one tick.
type Snapshot struct {
	held    [NumActions]bool
	pressed [NumActions]bool
	Confirm bool   // Enter pressed this tick
	Quit    bool   // Quit key pressed this tick
	Digit   int    // Digit pressed this tick, -1 if none
	Pressed []byte // Raw bytes received this tick
}

// Held reports whether the action's key is currently held.
func (s Snapshot) Held(a Action) bool {
	return s.held[a]
}

// JustPressed reports whether the action's key arrived this tick.
func (s Snapshot) JustPressed(a Action) bool {
	return s.pressed[a]
}

// Active reports whether any key arrived this tick.
func (s Snapshot) Active() bool {
	return len(s.Pressed) > 0
}

// NewSnapshot builds a snapshot with the given actions held and pressed.
// Hosts that receive key state directly (and tests) use it instead of a Tracker.
func NewSnapshot(held, pressed []Action) Snapshot {
	s := Snapshot{Digit: -1}
	for _, a := range held {
		s.held[a] = true
	}
	for _, a := range pressed {
		s.held[a] = true
		s.pressed[a] = true
	}
	return s
}

// Tracker decodes bytes against a keymap. Terminals only report key presses
// (and auto-repeat), so a key counts as held until HoldWindow passes without
// seeing it again.
type Tracker struct {
	keymap   Keymap
	lastSeen [NumActions]time.Time
	pending  []byte // Escape prefix cut off at the end of the last read
}

// NewTracker creates a tracker for the given bindings.
func NewTracker(km Keymap) *Tracker {
	return &Tracker{keymap: km}
}

// Reset forgets every held key, e.g. across a scene change.
func (t *Tracker) Reset() {
	t.lastSeen = [NumActions]time.Time{}
	t.pending = nil
}

// Decode parses the bytes received since the last call and returns the
// snapshot at now. Handles escape sequences for arrow keys, including ones
// split across reads: a trailing ESC or ESC [ waits one call for the rest of
// the sequence and is read as a plain key if nothing follows.
func (t *Tracker) Decode(buf []byte, now time.Time) Snapshot {
	flush := len(buf) == 0
	if len(t.pending) > 0 {
		buf = append(t.pending, buf...)
		t.pending = nil
	}
	if !flush {
		buf = t.holdPartialEscape(buf)
	}

	s := Snapshot{Digit: -1, Pressed: buf}

	press := func(a Action) {
		t.lastSeen[a] = now
		s.pressed[a] = true
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if a, ok := arrowAction(buf[i+2]); ok {
				press(a)
				i += 2
				continue
			}
		}

		if a, ok := t.keymap.lookup(b); ok {
			press(a)
			continue
		}

		switch {
		case b == '\r' || b == '\n':
			s.Confirm = true
		case b == 'q' || b == 'Q' || b == 0x03:
			s.Quit = true
		case b >= '0' && b <= '9':
			s.Digit = int(b - '0')
		}
	}

	for a := range t.lastSeen {
		if !t.lastSeen[a].IsZero() && now.Sub(t.lastSeen[a]) < t.keymap.HoldWindow {
			s.held[a] = true
		}
	}
	return s
}

// holdPartialEscape moves an unfinished escape prefix at the end of buf into
// pending and returns the rest.
func (t *Tracker) holdPartialEscape(buf []byte) []byte {
	n := len(buf)
	switch {
	case n >= 1 && buf[n-1] == '\x1b':
		t.pending = append(t.pending[:0], buf[n-1:]...)
		return buf[:n-1]
	case n >= 2 && buf[n-2] == '\x1b' && buf[n-1] == '[':
		t.pending = append(t.pending[:0], buf[n-2:]...)
		return buf[:n-2]
	}
	return buf
}

// arrowAction maps the final byte of an arrow key sequence.
func arrowAction(code byte) (Action, bool) {
	switch code {
	case 'A': // Up arrow
		return ThrustForward, true
	case 'B': // Down arrow
		return ThrustBack, true
	case 'C': // Right arrow
		return RotateRight, true
	case 'D': // Left arrow
		return RotateLeft, true
	}
	return 0, false
}

// Stream delivers input bytes from a reader via a channel.
type Stream struct {
	ch     chan byte
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Drain returns all bytes received since the last call without blocking.
// ok is false once the reader has failed or hit EOF and the buffer is empty.
func (s *Stream) Drain() (buf []byte, ok bool) {
	for {
		select {
		case b, open := <-s.ch:
			if !open {
				s.closed = true
				return buf, len(buf) > 0
			}
			buf = append(buf, b)
		default:
			return buf, !s.closed || len(buf) > 0
		}
	}
}
