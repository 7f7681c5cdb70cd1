package engine

import "errors"

var (
	// ErrFetch marks a transport-level load failure on a handle.
	ErrFetch = errors.New("engine: fetch failed")
	// ErrDecode marks a format-level load failure on a handle.
	ErrDecode = errors.New("engine: decode failed")

	// ErrResourceNotReady is returned by Scheduler.Schedule when the handle
	// is still pending. Expected and transient; callers skip the sound.
	ErrResourceNotReady = errors.New("engine: resource not ready")
	// ErrResourceFailed is returned by Scheduler.Schedule when the handle
	// settled in the failed state.
	ErrResourceFailed = errors.New("engine: resource failed")
	// ErrDuplicateSchedule is returned by Scheduler.Schedule when the
	// play-token is already pending inside the lookahead window.
	ErrDuplicateSchedule = errors.New("engine: duplicate schedule token")

	// ErrLoopStarted is returned by Loop.Start after the loop has left the
	// uninitialized state.
	ErrLoopStarted = errors.New("engine: loop already started")
	// ErrNoResources is returned by Loop.Start before the first resource
	// batch has been requested.
	ErrNoResources = errors.New("engine: no resources requested")
)
