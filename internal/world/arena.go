package world

// ID is a stable handle to an arena slot. A removed slot's ID never matches
// the entity that later reuses the slot.
type ID struct {
	index uint32
	gen   uint32
}

type slot[T any] struct {
	value T
	gen   uint32
	live  bool
}

// Arena stores entities of one kind in reusable slots.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	live  int
}

// Insert stores v and returns its handle.
func (a *Arena[T]) Insert(v T) ID {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{})
	}

	s := &a.slots[idx]
	s.value = v
	s.live = true
	a.live++
	return ID{index: idx, gen: s.gen}
}

// Get returns the entity for id, or false if it has been removed.
func (a *Arena[T]) Get(id ID) (*T, bool) {
	if int(id.index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[id.index]
	if !s.live || s.gen != id.gen {
		return nil, false
	}
	return &s.value, true
}

// Remove deletes the entity for id. Returns false if it was already gone.
func (a *Arena[T]) Remove(id ID) bool {
	if _, ok := a.Get(id); !ok {
		return false
	}
	a.release(id.index)
	return true
}

// Len returns the number of live entities.
func (a *Arena[T]) Len() int {
	return a.live
}

// Each calls fn for every live entity in slot order.
// fn must not insert or remove.
func (a *Arena[T]) Each(fn func(id ID, v *T)) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.live {
			fn(ID{index: uint32(i), gen: s.gen}, &s.value)
		}
	}
}

// RemoveFunc deletes every live entity for which fn returns true and reports
// how many were removed. fn may mutate the entity it is given.
func (a *Arena[T]) RemoveFunc(fn func(id ID, v *T) bool) int {
	removed := 0
	for i := range a.slots {
		s := &a.slots[i]
		if s.live && fn(ID{index: uint32(i), gen: s.gen}, &s.value) {
			a.release(uint32(i))
			removed++
		}
	}
	return removed
}

// Clear removes every entity. Outstanding IDs stay invalid.
func (a *Arena[T]) Clear() {
	for i := range a.slots {
		if a.slots[i].live {
			a.release(uint32(i))
		}
	}
}

func (a *Arena[T]) release(idx uint32) {
	s := &a.slots[idx]
	var zero T
	s.value = zero
	s.live = false
	s.gen++
	a.free = append(a.free, idx)
	a.live--
}
