package engine

import (
	"fmt"
	"sync/atomic"
)

// State is the lifecycle of a resource handle. A handle starts Pending and
// settles exactly once into Ready or Failed.
type State int

const (
	StatePending State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Transport fetches raw bytes for a URL or asset path.
type Transport interface {
	Fetch(url string) ([]byte, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(url string) ([]byte, error)

func (f TransportFunc) Fetch(url string) ([]byte, error) { return f(url) }

// Decoder turns fetched bytes into a ready-to-use payload (a texture, a
// PCM buffer, raw bytes for data files). The payload type is opaque to the
// engine; the renderer or sink that consumes it agrees on the concrete type
// with the decoder that produced it.
type Decoder interface {
	Decode(url string, data []byte) (any, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(url string, data []byte) (any, error)

func (f DecoderFunc) Decode(url string, data []byte) (any, error) { return f(url, data) }

type outcome struct {
	payload any
	err     error
}

// Handle is an opaque reference to a resource whose readiness is observed
// by polling, never awaited. The settled outcome is a write-once cell;
// after publication it is safe to read from any goroutine without locking.
type Handle struct {
	url  string
	cell atomic.Pointer[outcome]
}

func (h *Handle) URL() string { return h.url }

// Poll returns the current state without blocking.
func (h *Handle) Poll() State {
	o := h.cell.Load()
	switch {
	case o == nil:
		return StatePending
	case o.err != nil:
		return StateFailed
	default:
		return StateReady
	}
}

// Payload returns the decoded payload, or nil unless the handle is Ready.
func (h *Handle) Payload() any {
	if o := h.cell.Load(); o != nil {
		return o.payload
	}
	return nil
}

// Err returns the permanent failure reason, or nil unless the handle is Failed.
func (h *Handle) Err() error {
	if o := h.cell.Load(); o != nil {
		return o.err
	}
	return nil
}

// settle publishes the terminal outcome. Only the first call wins; a handle
// never transitions again after settling.
func (h *Handle) settle(payload any, err error) {
	h.cell.CompareAndSwap(nil, &outcome{payload: payload, err: err})
}

// Loader fetches and decodes resources off the tick path. Request returns
// immediately; completion is observed only through Handle.Poll. The loader
// never retries on its own and imposes no timeouts; both are caller policy.
type Loader struct {
	transport Transport
	decoder   Decoder
	requested atomic.Int64
}

func NewLoader(transport Transport, decoder Decoder) *Loader {
	return &Loader{transport: transport, decoder: decoder}
}

// Request starts an asynchronous fetch-and-decode and returns the pending
// handle. Re-requesting the same URL yields a fresh, independent handle.
func (l *Loader) Request(url string) *Handle {
	h := &Handle{url: url}
	l.requested.Add(1)
	go l.load(h)
	return h
}

// Requested reports how many loads have been requested so far.
func (l *Loader) Requested() int {
	return int(l.requested.Load())
}

func (l *Loader) load(h *Handle) {
	data, err := l.transport.Fetch(h.url)
	if err != nil {
		h.settle(nil, fmt.Errorf("%w: %s: %v", ErrFetch, h.url, err))
		return
	}
	payload, err := l.decoder.Decode(h.url, data)
	if err != nil {
		h.settle(nil, fmt.Errorf("%w: %s: %v", ErrDecode, h.url, err))
		return
	}
	h.settle(payload, nil)
}
