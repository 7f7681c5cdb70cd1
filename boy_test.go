package main

import (
	"testing"

	"github.com/colefleming/walkthedog/engine"
)

func pressedSnap(keys ...string) engine.Snapshot {
	s := engine.NewSampler()
	for _, k := range keys {
		s.Push(engine.KeyEvent{Key: k, Down: true})
	}
	return s.Snapshot()
}

func newTestBoy() *Boy {
	return NewBoy(fallbackBoySheet(), nil)
}

func runningBoy() *Boy {
	b := newTestBoy()
	b.HandleInput(pressedSnap("ArrowRight"))
	return b
}

func TestBoyInputTransitions(t *testing.T) {
	tests := []struct {
		name      string
		boy       func() *Boy
		keys      []string
		wantState string
	}{
		{
			name:      "idle ignores space",
			boy:       newTestBoy,
			keys:      []string{"Space"},
			wantState: "idle",
		},
		{
			name:      "arrow right starts running",
			boy:       newTestBoy,
			keys:      []string{"ArrowRight"},
			wantState: "running",
		},
		{
			name:      "arrow down slides",
			boy:       runningBoy,
			keys:      []string{"ArrowDown"},
			wantState: "sliding",
		},
		{
			name:      "space jumps",
			boy:       runningBoy,
			keys:      []string{"Space"},
			wantState: "jumping",
		},
		{
			name:      "sliding ignores input",
			boy: func() *Boy {
				b := runningBoy()
				b.HandleInput(pressedSnap("ArrowDown"))
				return b
			},
			keys:      []string{"Space"},
			wantState: "sliding",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.boy()
			b.HandleInput(pressedSnap(tt.keys...))
			if got := b.StateName(); got != tt.wantState {
				t.Fatalf("StateName() = %q, want %q", got, tt.wantState)
			}
		})
	}
}

func TestBoyRunningSpeed(t *testing.T) {
	b := runningBoy()
	if got := b.WalkingSpeed(); got != runningSpeed {
		t.Fatalf("WalkingSpeed() = %v, want %v", got, runningSpeed)
	}
}

func TestBoyTookJumpConsumes(t *testing.T) {
	b := runningBoy()
	b.HandleInput(pressedSnap("Space"))

	if !b.TookJump() {
		t.Fatal("TookJump() = false after jump input")
	}
	if b.TookJump() {
		t.Fatal("TookJump() = true twice for one jump")
	}
}

func TestBoySlideReturnsToRunning(t *testing.T) {
	b := runningBoy()
	b.HandleInput(pressedSnap("ArrowDown"))

	for i := 0; i < slidingFrames+1; i++ {
		b.Step()
	}
	if got := b.StateName(); got != "running" {
		t.Fatalf("StateName() after slide = %q, want %q", got, "running")
	}
}

func TestBoyJumpLandsOnFloor(t *testing.T) {
	b := runningBoy()
	b.HandleInput(pressedSnap("Space"))

	if got := b.VelocityY(); got != jumpSpeed {
		t.Fatalf("VelocityY() at takeoff = %v, want %v", got, jumpSpeed)
	}

	landed := false
	for i := 0; i < 120; i++ {
		b.Step()
		if b.StateName() == "running" {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatal("boy never landed")
	}
	if got := b.PosY(); got != floorY {
		t.Fatalf("PosY() after landing = %v, want %v", got, float64(floorY))
	}
	if got := b.VelocityY(); got != 0 {
		t.Fatalf("VelocityY() after landing = %v, want 0", got)
	}
}

func TestBoyKnockOut(t *testing.T) {
	b := runningBoy()
	b.KnockOut()

	if got := b.StateName(); got != "falling" {
		t.Fatalf("StateName() after knockout = %q, want %q", got, "falling")
	}
	if got := b.WalkingSpeed(); got != 0 {
		t.Fatalf("WalkingSpeed() after knockout = %v, want 0", got)
	}
	if b.Down() {
		t.Fatal("Down() = true while still falling")
	}

	for i := 0; i < fallingFrames; i++ {
		b.Step()
	}
	if !b.Down() {
		t.Fatal("Down() = false after fall animation finished")
	}
	if b.frame != fallingFrames {
		t.Fatalf("frame = %d after fall, want %d (kept, not reset)", b.frame, fallingFrames)
	}

	// A second hit changes nothing.
	b.KnockOut()
	if got := b.StateName(); got != "knockedout" {
		t.Fatalf("StateName() after repeated knockout = %q, want %q", got, "knockedout")
	}
}

func TestBoyKnockedOutSettlesOnFloor(t *testing.T) {
	b := runningBoy()
	b.LandOn(300)
	b.KnockOut()

	for i := 0; i < fallingFrames+60; i++ {
		b.Step()
		if got := b.VelocityY(); got > terminalVelocity {
			t.Fatalf("VelocityY() = %v, exceeds terminal %v", got, terminalVelocity)
		}
	}
	if got := b.PosY(); got != floorY {
		t.Fatalf("PosY() at rest = %v, want %v", got, float64(floorY))
	}
}

func TestBoyLandOn(t *testing.T) {
	t.Run("mid jump ends the jump", func(t *testing.T) {
		b := runningBoy()
		b.HandleInput(pressedSnap("Space"))
		b.LandOn(420)

		if got := b.StateName(); got != "running" {
			t.Fatalf("StateName() = %q, want %q", got, "running")
		}
		if got := b.PosY(); got != 420-boyHeight {
			t.Fatalf("PosY() = %v, want %v", got, float64(420-boyHeight))
		}
		if got := b.VelocityY(); got != 0 {
			t.Fatalf("VelocityY() = %v, want 0", got)
		}
	})

	t.Run("while running only adjusts height", func(t *testing.T) {
		b := runningBoy()
		b.LandOn(420)

		if got := b.StateName(); got != "running" {
			t.Fatalf("StateName() = %q, want %q", got, "running")
		}
		if got := b.PosY(); got != 420-boyHeight {
			t.Fatalf("PosY() = %v, want %v", got, float64(420-boyHeight))
		}
	})
}

func TestBoyFrameNames(t *testing.T) {
	b := newTestBoy()
	if got := b.frameName(); got != "Idle (1).png" {
		t.Fatalf("frameName() = %q, want %q", got, "Idle (1).png")
	}

	for i := 0; i < 3; i++ {
		b.Step()
	}
	if got := b.frameName(); got != "Idle (2).png" {
		t.Fatalf("frameName() after 3 steps = %q, want %q", got, "Idle (2).png")
	}

	// State changes reset the animation to its first frame.
	b.HandleInput(pressedSnap("ArrowRight"))
	if got := b.frameName(); got != "Run (1).png" {
		t.Fatalf("frameName() after transition = %q, want %q", got, "Run (1).png")
	}
}
