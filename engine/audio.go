package engine

// Sink is the host audio capability: play a decoded buffer starting at an
// absolute clock time. Fire-and-forget; the engine never queries progress.
type Sink interface {
	Play(buf any, at float64) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(buf any, at float64) error

func (f SinkFunc) Play(buf any, at float64) error { return f(buf, at) }

type scheduled struct {
	at float64
}

// Scheduler queues decoded audio buffers for playback at future clock
// offsets, deduplicating play-tokens so the same trigger never fires twice.
// A token stays pending from Schedule until its start time passes; Advance
// retires fired tokens each tick. Start times are best-effort against host
// clock granularity and are never corrected once playback begins.
type Scheduler struct {
	sink      Sink
	lookahead float64
	now       float64
	pending   map[string]scheduled
}

// NewScheduler wraps the sink with a lookahead window in seconds. Delays
// beyond the lookahead are clamped to it, so every token retires within one
// lookahead of being scheduled.
func NewScheduler(sink Sink, lookahead float64) *Scheduler {
	return &Scheduler{
		sink:      sink,
		lookahead: lookahead,
		pending:   make(map[string]scheduled),
	}
}

// Advance moves the scheduler clock to now and retires tokens whose start
// time has passed. Called once per tick by the loop before any Schedule.
func (s *Scheduler) Advance(now float64) {
	s.now = now
	for token, sc := range s.pending {
		if sc.at <= now {
			delete(s.pending, token)
		}
	}
}

// Schedule queues the sound held by h to start delay seconds from the
// current clock. It reports ErrResourceNotReady or ErrResourceFailed
// without scheduling when the handle is not Ready, and ErrDuplicateSchedule
// when token is already pending; repeated calls with a pending token are
// no-ops. The buffer is handed to the sink immediately with its absolute
// start time.
func (s *Scheduler) Schedule(h *Handle, delay float64, token string) error {
	switch h.Poll() {
	case StatePending:
		return ErrResourceNotReady
	case StateFailed:
		return ErrResourceFailed
	}
	if _, ok := s.pending[token]; ok {
		return ErrDuplicateSchedule
	}

	if delay < 0 {
		delay = 0
	}
	if delay > s.lookahead {
		delay = s.lookahead
	}
	at := s.now + delay

	if err := s.sink.Play(h.Payload(), at); err != nil {
		return err
	}
	s.pending[token] = scheduled{at: at}
	return nil
}

// Pending reports whether token is still inside the lookahead window.
func (s *Scheduler) Pending(token string) bool {
	_, ok := s.pending[token]
	return ok
}
