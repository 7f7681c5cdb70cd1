package engine

import (
	"errors"
	"testing"
)

type playCall struct {
	buf any
	at  float64
}

func readyHandle(payload any) *Handle {
	h := &Handle{url: "sfx.wav"}
	h.settle(payload, nil)
	return h
}

func failedHandle() *Handle {
	h := &Handle{url: "sfx.wav"}
	h.settle(nil, errors.New("decode blew up"))
	return h
}

func recordingSink(calls *[]playCall) Sink {
	return SinkFunc(func(buf any, at float64) error {
		*calls = append(*calls, playCall{buf: buf, at: at})
		return nil
	})
}

func TestScheduleReadiness(t *testing.T) {
	cases := []struct {
		name      string
		handle    *Handle
		wantErr   error
		wantPlays int
	}{
		{"ready", readyHandle([]byte{1}), nil, 1},
		{"pending", &Handle{url: "sfx.wav"}, ErrResourceNotReady, 0},
		{"failed", failedHandle(), ErrResourceFailed, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var calls []playCall
			s := NewScheduler(recordingSink(&calls), 1.0)
			s.Advance(10)

			err := s.Schedule(c.handle, 0.25, "tok")
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("expected %v, got %v", c.wantErr, err)
			}
			if len(calls) != c.wantPlays {
				t.Fatalf("expected %d playback calls, got %d", c.wantPlays, len(calls))
			}
		})
	}
}

func TestScheduleDeduplicatesToken(t *testing.T) {
	var calls []playCall
	s := NewScheduler(recordingSink(&calls), 1.0)
	s.Advance(0)

	h := readyHandle([]byte{1})
	if err := s.Schedule(h, 0.5, "jump-1"); err != nil {
		t.Fatalf("first schedule failed: %v", err)
	}
	if err := s.Schedule(h, 0.5, "jump-1"); !errors.Is(err, ErrDuplicateSchedule) {
		t.Fatalf("expected ErrDuplicateSchedule, got %v", err)
	}
	if len(calls) != 1 {
		t.Fatalf("duplicate must not re-trigger playback, got %d calls", len(calls))
	}

	// A different token is an independent trigger.
	if err := s.Schedule(h, 0.5, "jump-2"); err != nil {
		t.Fatalf("distinct token rejected: %v", err)
	}
}

func TestTokenRetiresAfterStartTime(t *testing.T) {
	var calls []playCall
	s := NewScheduler(recordingSink(&calls), 1.0)
	s.Advance(0)

	h := readyHandle([]byte{1})
	if err := s.Schedule(h, 0.5, "tok"); err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	if !s.Pending("tok") {
		t.Fatalf("token should be pending before its start time")
	}

	s.Advance(0.4)
	if !s.Pending("tok") {
		t.Fatalf("token retired too early")
	}

	s.Advance(0.5)
	if s.Pending("tok") {
		t.Fatalf("token should retire once its start time passes")
	}

	// Reusing the token after it fires is a fresh trigger.
	if err := s.Schedule(h, 0.1, "tok"); err != nil {
		t.Fatalf("reuse after firing rejected: %v", err)
	}
	if len(calls) != 2 {
		t.Fatalf("expected 2 playback calls, got %d", len(calls))
	}
}

func TestScheduleComputesAbsoluteStart(t *testing.T) {
	var calls []playCall
	s := NewScheduler(recordingSink(&calls), 2.0)
	s.Advance(41.5)

	h := readyHandle("pcm")
	if err := s.Schedule(h, 0.25, "tok"); err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	if calls[0].at != 41.75 {
		t.Fatalf("expected start at 41.75, got %v", calls[0].at)
	}
	if calls[0].buf != "pcm" {
		t.Fatalf("sink must receive the decoded payload, got %v", calls[0].buf)
	}

	// Delays beyond the lookahead clamp to it.
	if err := s.Schedule(h, 10, "far"); err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	if calls[1].at != 43.5 {
		t.Fatalf("expected clamped start at 43.5, got %v", calls[1].at)
	}
}
