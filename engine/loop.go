package engine

import "github.com/colefleming/walkthedog/common"

type loopPhase int

const (
	phaseUninitialized loopPhase = iota
	phaseRunning
	phaseStopped
)

// Loop is the driving control structure. The host invokes Tick once per
// display refresh with the current monotonic clock; the loop never
// schedules its own cadence. Ticks run one at a time on the host timeline;
// only the resource loader runs off it, observed purely by polling.
type Loop struct {
	game     Game
	renderer Renderer
	sampler  *Sampler
	loader   *Loader
	sched    *Scheduler

	maxStep float64
	phase   loopPhase
	prev    float64
	hasPrev bool

	watched []*Handle
}

// NewLoop wires the core components. maxStep is the clamp on simulated
// elapsed time per tick, so a stalled host (suspended window, long GC
// pause) cannot produce a runaway simulation step.
func NewLoop(game Game, renderer Renderer, sampler *Sampler, loader *Loader, sched *Scheduler, maxStep float64) *Loop {
	return &Loop{
		game:     game,
		renderer: renderer,
		sampler:  sampler,
		loader:   loader,
		sched:    sched,
		maxStep:  maxStep,
	}
}

// Load requests url through the loader and watches the handle so the game
// is told when it settles.
func (l *Loop) Load(url string) *Handle {
	h := l.loader.Request(url)
	l.watched = append(l.watched, h)
	return h
}

// Start moves the loop from uninitialized to running. The first resource
// batch must already have been requested; it need not be ready.
func (l *Loop) Start() error {
	if l.phase != phaseUninitialized {
		return ErrLoopStarted
	}
	if l.loader.Requested() == 0 {
		return ErrNoResources
	}
	l.phase = phaseRunning
	return nil
}

// Stop is terminal. No tick executes after it; in-flight loads settle
// harmlessly and are simply never polled again.
func (l *Loop) Stop() {
	l.phase = phaseStopped
}

func (l *Loop) Running() bool {
	return l.phase == phaseRunning
}

// Tick runs one frame: input snapshot, simulation advance with clamped
// elapsed time, readiness bookkeeping for newly-settled handles, draw, then
// audio scheduling. Strictly in that order, and only while running.
func (l *Loop) Tick(now float64) {
	if l.phase != phaseRunning {
		return
	}
	if !l.hasPrev {
		l.prev = now
		l.hasPrev = true
	}
	dt := common.Clamp(now-l.prev, 0, l.maxStep)
	l.prev = now

	l.sched.Advance(now)

	snap := l.sampler.Snapshot()
	l.game.Update(snap, dt)
	l.notifySettled()
	l.game.Draw(l.renderer)
	l.game.PlaySounds(l.sched)
}

// notifySettled reports each watched handle that left the pending state
// since the last tick, exactly once, then stops watching it.
func (l *Loop) notifySettled() {
	kept := l.watched[:0]
	for _, h := range l.watched {
		if h.Poll() == StatePending {
			kept = append(kept, h)
			continue
		}
		l.game.ResourceSettled(h)
	}
	l.watched = kept
}
