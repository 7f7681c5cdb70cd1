// Package engine is the real-time core: a host-driven frame loop that
// synchronizes rendering, audio scheduling, and input sampling while
// resources load asynchronously in the background. The host owns the
// capabilities (drawing surface, audio sink, input delivery, tick cadence);
// the engine owns the per-tick ordering and the readiness bookkeeping.
package engine

// Renderer is the drawing surface capability. The engine issues calls and
// never reads pixel state back. Texture payloads come from the Decoder that
// loaded them; the renderer asserts the concrete type.
type Renderer interface {
	Clear(r Rect)
	DrawImage(tex any, src, dst Rect)
	DrawText(s string, x, y float64)
}

// Game is the simulation driven by the Loop. All of its state is mutated
// only inside a tick, in the fixed step order documented on Loop.Tick.
type Game interface {
	// Update advances the simulation using this tick's input snapshot and
	// the clamped elapsed time in seconds.
	Update(snap Snapshot, dt float64)
	// ResourceSettled is called at most once per watched handle, on the
	// first tick after it left the pending state.
	ResourceSettled(h *Handle)
	// Draw issues draw calls for the current state. Only Ready resources
	// may be drawn; a Failed resource degrades to a skip or placeholder.
	Draw(r Renderer)
	// PlaySounds issues schedule calls for sound triggers produced by this
	// tick's Update. Schedule errors are expected to be handled by
	// skipping the sound.
	PlaySounds(s *Scheduler)
}
