package engine

import (
	"sync"
	"testing"
)

func TestSnapshotPressedAndHeld(t *testing.T) {
	cases := []struct {
		name        string
		events      []KeyEvent
		wantPressed []string
		wantHeld    []string
		wantAbsent  []string
	}{
		{
			name:        "single_press",
			events:      []KeyEvent{{Key: "Space", Down: true}},
			wantPressed: []string{"Space"},
			wantHeld:    []string{"Space"},
		},
		{
			name: "press_and_release_same_tick",
			events: []KeyEvent{
				{Key: "ArrowRight", Down: true},
				{Key: "ArrowRight", Down: false},
			},
			wantPressed: []string{"ArrowRight"},
			wantAbsent:  []string{"ArrowRight"},
		},
		{
			name: "repeat_down_is_one_press",
			events: []KeyEvent{
				{Key: "ArrowDown", Down: true},
				{Key: "ArrowDown", Down: true},
			},
			wantPressed: []string{"ArrowDown"},
			wantHeld:    []string{"ArrowDown"},
		},
		{
			name: "independent_keys",
			events: []KeyEvent{
				{Key: "Space", Down: true},
				{Key: "ArrowRight", Down: true},
			},
			wantPressed: []string{"Space", "ArrowRight"},
			wantHeld:    []string{"Space", "ArrowRight"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewSampler()
			for _, ev := range c.events {
				s.Push(ev)
			}
			snap := s.Snapshot()

			for _, k := range c.wantPressed {
				if !snap.Pressed(k) {
					t.Errorf("expected %s pressed", k)
				}
			}
			for _, k := range c.wantHeld {
				if !snap.Held(k) {
					t.Errorf("expected %s held", k)
				}
			}
			for _, k := range c.wantAbsent {
				if snap.Held(k) {
					t.Errorf("expected %s released", k)
				}
			}
		})
	}
}

func TestSnapshotDrainsExactlyOnce(t *testing.T) {
	s := NewSampler()
	s.Push(KeyEvent{Key: "Space", Down: true})

	first := s.Snapshot()
	second := s.Snapshot()

	if !first.Pressed("Space") {
		t.Fatalf("first snapshot must contain the press")
	}
	if second.Pressed("Space") {
		t.Fatalf("press must not appear in two snapshots")
	}
	// Held state carries forward; no key-up arrived.
	if !second.Held("Space") {
		t.Fatalf("held state must persist across snapshots")
	}
}

func TestHeldClearsOnKeyUp(t *testing.T) {
	s := NewSampler()
	s.Push(KeyEvent{Key: "Space", Down: true})
	s.Snapshot()

	s.Push(KeyEvent{Key: "Space", Down: false})
	snap := s.Snapshot()

	if snap.Held("Space") {
		t.Fatalf("key-up must clear held state")
	}
	if snap.Pressed("Space") {
		t.Fatalf("key-up must not count as a press")
	}

	// A fresh down after release is a new press.
	s.Push(KeyEvent{Key: "Space", Down: true})
	if !s.Snapshot().Pressed("Space") {
		t.Fatalf("press after release must register again")
	}
}

func TestPushConcurrentWithSnapshot(t *testing.T) {
	s := NewSampler()

	const events = 500
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < events; i++ {
			s.Push(KeyEvent{Key: "Space", Down: i%2 == 0})
		}
	}()

	// Drain concurrently; every event lands in exactly one snapshot, so the
	// final held state depends only on the last event (an up).
	for i := 0; i < 50; i++ {
		s.Snapshot()
	}
	wg.Wait()

	if s.Snapshot().Held("Space") {
		t.Fatalf("last event was a key-up; held must be false")
	}
}
