package input

import (
	"errors"
	"fmt"
	"time"
)

// DefaultHoldWindow is how long a key counts as held after its last byte.
// It has to bridge the gap between terminal auto-repeat events.
const DefaultHoldWindow = 60 * time.Millisecond

// reservedKeys cannot be bound: they quit, confirm, pick menu entries, or
// start escape sequences that are parsed before bindings.
var reservedKeys = []byte("qQ\r\n\x030123456789[")

// Keymap binds raw key bytes to actions.
type Keymap struct {
	keys       [NumActions][]byte
	HoldWindow time.Duration
}

// DefaultKeymap returns WASD steering, space to fire and p/Esc to pause.
// Arrow keys always steer in addition to these bindings.
func DefaultKeymap() Keymap {
	var km Keymap
	km.HoldWindow = DefaultHoldWindow
	km.Bind(RotateLeft, 'a', 'A')
	km.Bind(RotateRight, 'd', 'D')
	km.Bind(ThrustForward, 'w', 'W')
	km.Bind(ThrustBack, 's', 'S')
	km.Bind(Fire, ' ')
	km.Bind(PauseToggle, 'p', 'P', '\x1b')
	return km
}

// Bind replaces the keys bound to an action.
func (k *Keymap) Bind(a Action, keys ...byte) {
	k.keys[a] = append([]byte(nil), keys...)
}

// Keys returns the keys bound to an action.
func (k Keymap) Keys(a Action) []byte {
	return k.keys[a]
}

// Validate reports unbound actions, reserved keys and keys bound twice.
func (k Keymap) Validate() error {
	var errs []error
	owner := make(map[byte]Action)

	for _, a := range Actions() {
		if len(k.keys[a]) == 0 {
			errs = append(errs, fmt.Errorf("%s has no key bound", a))
		}
		for _, b := range k.keys[a] {
			if isReserved(b) {
				errs = append(errs, fmt.Errorf("%s: key %q is reserved", a, b))
				continue
			}
			if prev, ok := owner[b]; ok && prev != a {
				errs = append(errs, fmt.Errorf("key %q bound to both %s and %s", b, prev, a))
				continue
			}
			owner[b] = a
		}
	}
	if k.HoldWindow <= 0 {
		errs = append(errs, fmt.Errorf("hold window must be > 0, got %v", k.HoldWindow))
	}
	return errors.Join(errs...)
}

func (k Keymap) lookup(b byte) (Action, bool) {
	for a := range k.keys {
		for _, key := range k.keys[a] {
			if key == b {
				return Action(a), true
			}
		}
	}
	return 0, false
}

func isReserved(b byte) bool {
	for _, r := range reservedKeys {
		if b == r {
			return true
		}
	}
	return false
}
