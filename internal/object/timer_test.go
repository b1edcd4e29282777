package object

import (
	"testing"
	"time"
)

func TestTimerTick(t *testing.T) {
	tm := NewTimer(200 * time.Millisecond)

	if tm.Tick(150 * time.Millisecond) {
		t.Fatal("Tick() finished early")
	}
	if tm.Remaining != 50*time.Millisecond {
		t.Fatalf("Remaining = %v, expected 50ms", tm.Remaining)
	}
	if !tm.Tick(time.Second) {
		t.Fatal("Tick() did not finish")
	}
	if tm.Remaining != 0 {
		t.Fatalf("Remaining = %v, expected floor at 0", tm.Remaining)
	}

	tm.Reset()
	if tm.Remaining != 200*time.Millisecond || tm.Finished() {
		t.Fatalf("Reset() left %v", tm.Remaining)
	}
}

func TestTimerIgnoresNonPositiveDelta(t *testing.T) {
	tm := NewTimer(time.Second)
	tm.Tick(0)
	tm.Tick(-time.Second)
	if tm.Remaining != time.Second {
		t.Errorf("Remaining = %v, expected unchanged", tm.Remaining)
	}
}

func TestReadyTimer(t *testing.T) {
	tm := NewReadyTimer(time.Second)
	if !tm.Finished() || !tm.Tick(0) {
		t.Error("ready timer should start finished")
	}
}
