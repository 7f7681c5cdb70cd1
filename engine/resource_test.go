package engine

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func waitState(t *testing.T, h *Handle, want State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.Poll() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("handle %s never reached %v, stuck at %v", h.URL(), want, h.Poll())
}

func TestLoaderRequestIsPendingImmediately(t *testing.T) {
	release := make(chan struct{})
	transport := TransportFunc(func(url string) ([]byte, error) {
		<-release
		return []byte("png"), nil
	})
	decoder := DecoderFunc(func(url string, data []byte) (any, error) {
		return "tex:" + url, nil
	})

	l := NewLoader(transport, decoder)
	h := l.Request("sprite.png")

	if got := h.Poll(); got != StatePending {
		t.Fatalf("expected pending before fetch completes, got %v", got)
	}
	if h.Payload() != nil {
		t.Fatalf("pending handle should have nil payload")
	}

	close(release)
	waitState(t, h, StateReady)

	if got := h.Payload(); got != "tex:sprite.png" {
		t.Fatalf("expected decoded payload, got %v", got)
	}
	if h.Err() != nil {
		t.Fatalf("ready handle should have nil error, got %v", h.Err())
	}
}

func TestLoaderFailures(t *testing.T) {
	cases := []struct {
		name     string
		fetchErr error
		decodeErr error
		want     error
	}{
		{"fetch_error", fmt.Errorf("connection refused"), nil, ErrFetch},
		{"decode_error", nil, fmt.Errorf("bad magic"), ErrDecode},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			transport := TransportFunc(func(url string) ([]byte, error) {
				return []byte("data"), c.fetchErr
			})
			decoder := DecoderFunc(func(url string, data []byte) (any, error) {
				return nil, c.decodeErr
			})

			l := NewLoader(transport, decoder)
			h := l.Request("boom.wav")
			waitState(t, h, StateFailed)

			if !errors.Is(h.Err(), c.want) {
				t.Fatalf("expected %v, got %v", c.want, h.Err())
			}
			if h.Payload() != nil {
				t.Fatalf("failed handle should have nil payload")
			}
		})
	}
}

func TestHandleSettlesAtMostOnce(t *testing.T) {
	h := &Handle{url: "once.png"}
	h.settle("first", nil)
	h.settle(nil, fmt.Errorf("late failure"))

	if got := h.Poll(); got != StateReady {
		t.Fatalf("second settle must not win, got state %v", got)
	}
	if got := h.Payload(); got != "first" {
		t.Fatalf("expected first payload to stick, got %v", got)
	}
}

func TestLoaderReRequestYieldsFreshHandle(t *testing.T) {
	calls := 0
	transport := TransportFunc(func(url string) ([]byte, error) {
		calls++
		if calls == 1 {
			return nil, fmt.Errorf("transient outage")
		}
		return []byte("ok"), nil
	})
	decoder := DecoderFunc(func(url string, data []byte) (any, error) {
		return string(data), nil
	})

	l := NewLoader(transport, decoder)

	h1 := l.Request("bg.png")
	waitState(t, h1, StateFailed)

	// Retry is caller policy: a new request, never a mutation of h1.
	h2 := l.Request("bg.png")
	waitState(t, h2, StateReady)

	if h1 == h2 {
		t.Fatalf("re-request must return a fresh handle")
	}
	if h1.Poll() != StateFailed {
		t.Fatalf("failed handle must stay failed after re-request")
	}
	if l.Requested() != 2 {
		t.Fatalf("expected 2 requests recorded, got %d", l.Requested())
	}
}
