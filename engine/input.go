package engine

import "sync"

// KeyEvent is a discrete key edge delivered by the host. Down is true for
// key-down, false for key-up. When is the host timestamp in seconds.
type KeyEvent struct {
	Key  string
	Down bool
	When float64
}

// Sampler buffers key events as they arrive and produces one immutable
// Snapshot per tick. The queue is the only shared mutable state; Snapshot
// drains it atomically, so an event contributes to exactly one snapshot.
// Events arriving while a drain is underway land in the next snapshot.
type Sampler struct {
	mu    sync.Mutex
	queue []KeyEvent
	held  map[string]bool
}

func NewSampler() *Sampler {
	return &Sampler{held: make(map[string]bool)}
}

// Push appends a raw key event. Safe to call concurrently with Snapshot.
func (s *Sampler) Push(ev KeyEvent) {
	s.mu.Lock()
	s.queue = append(s.queue, ev)
	s.mu.Unlock()
}

// Snapshot drains the queue and folds it into the held set, returning the
// loop-consistent view for this tick. Only Snapshot drains; there is no
// other reader of the queue.
func (s *Sampler) Snapshot() Snapshot {
	s.mu.Lock()
	events := s.queue
	s.queue = nil

	pressed := make(map[string]struct{})
	for _, ev := range events {
		if ev.Down {
			if !s.held[ev.Key] {
				pressed[ev.Key] = struct{}{}
			}
			s.held[ev.Key] = true
		} else {
			delete(s.held, ev.Key)
		}
	}

	held := make(map[string]bool, len(s.held))
	for k := range s.held {
		held[k] = true
	}
	s.mu.Unlock()

	return Snapshot{held: held, pressed: pressed}
}

// Snapshot is a point-in-time view of input state. Held reports keys
// currently down; Pressed reports keys that went down since the previous
// snapshot. Snapshots are immutable once returned.
type Snapshot struct {
	held    map[string]bool
	pressed map[string]struct{}
}

func (sn Snapshot) Held(key string) bool {
	return sn.held[key]
}

func (sn Snapshot) Pressed(key string) bool {
	_, ok := sn.pressed[key]
	return ok
}
