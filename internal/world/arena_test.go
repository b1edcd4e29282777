package world

import "testing"

func TestArenaInsertGetRemove(t *testing.T) {
	var a Arena[string]
	first := a.Insert("a")
	second := a.Insert("b")

	if a.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", a.Len())
	}
	if v, ok := a.Get(first); !ok || *v != "a" {
		t.Errorf("Get(first) = %v, %v", v, ok)
	}

	if !a.Remove(first) {
		t.Fatal("Remove(first) = false")
	}
	if a.Remove(first) {
		t.Error("second Remove(first) = true")
	}
	if _, ok := a.Get(first); ok {
		t.Error("Get() found removed entity")
	}

	// The freed slot is reused but the stale handle stays dead.
	third := a.Insert("c")
	if third.index != first.index {
		t.Errorf("slot not reused: %v vs %v", third, first)
	}
	if _, ok := a.Get(first); ok {
		t.Error("stale ID resolved to the new occupant")
	}
	if v, ok := a.Get(second); !ok || *v != "b" {
		t.Errorf("Get(second) = %v, %v", v, ok)
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", a.Len())
	}
}

func TestArenaRemoveFunc(t *testing.T) {
	var a Arena[int]
	for i := range 6 {
		a.Insert(i)
	}

	removed := a.RemoveFunc(func(_ ID, v *int) bool { return *v%2 == 0 })
	if removed != 3 {
		t.Errorf("RemoveFunc() = %d, expected 3", removed)
	}

	var got []int
	a.Each(func(_ ID, v *int) { got = append(got, *v) })
	want := []int{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("Each() visited %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Each()[%d] = %d, expected %d", i, got[i], want[i])
		}
	}
}

func TestArenaClear(t *testing.T) {
	var a Arena[int]
	id := a.Insert(1)
	a.Insert(2)

	a.Clear()
	if a.Len() != 0 {
		t.Errorf("Len() = %d after Clear", a.Len())
	}
	if _, ok := a.Get(id); ok {
		t.Error("Get() found entity after Clear")
	}
	visited := 0
	a.Each(func(ID, *int) { visited++ })
	if visited != 0 {
		t.Errorf("Each() visited %d entities after Clear", visited)
	}
}

func TestArenaGetUnknownID(t *testing.T) {
	var a Arena[int]
	if _, ok := a.Get(ID{index: 5}); ok {
		t.Error("Get() resolved an out-of-range ID")
	}
}
