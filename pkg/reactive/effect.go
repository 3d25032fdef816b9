package reactive

import (
	"sync/atomic"
)

// Effect is a re-runnable side-effecting computation. It runs immediately
// when created and re-runs, synchronously, whenever a signal it read
// during a previous run is written.
type Effect struct {
	id uint64

	// fn is the effect body. It may return a Cleanup to run before the
	// next run and on disposal.
	fn func() Cleanup

	// cleanup is the cleanup from the last run, if any.
	cleanup Cleanup

	// sources are the signals this effect is subscribed to, recorded so
	// Dispose can unsubscribe everywhere.
	sources []*signalBase

	// owner adopted this effect at creation time, if any.
	owner *Owner

	// depth counts synchronous re-entrant runs. An effect that writes a
	// signal it reads re-enters itself; past the configured limit the
	// run is refused with a reported re-entrancy error.
	depth int

	disposed atomic.Bool
}

// CreateEffect creates an effect, registers it with the current owner,
// and runs it immediately. A panic during any run (including the first)
// is contained at the effect boundary and reported, so one failing effect
// does not take down component construction or its siblings.
func CreateEffect(fn func() Cleanup) *Effect {
	e := &Effect{
		id: nextID(),
		fn: fn,
	}

	if owner := getCurrentOwner(); owner != nil {
		e.owner = owner
		owner.registerEffect(e)
	}

	e.run()
	return e
}

// Notify re-runs the effect. Implements the Listener interface.
func (e *Effect) Notify() {
	e.run()
}

// ID returns the unique identifier for this effect.
// Implements the Listener interface.
func (e *Effect) ID() uint64 {
	return e.id
}

// run executes the effect body with this effect installed as the current
// listener. The previous listener is restored afterwards, so nested
// effects do not corrupt the outer effect's dependency attribution.
func (e *Effect) run() {
	if e.disposed.Load() {
		return
	}

	if e.depth >= maxEffectDepth() {
		logger.Error(ErrEffectDepth.Error(),
			"code", "R001", "effect", e.id, "depth", e.depth)
		return
	}
	e.depth++
	defer func() { e.depth-- }()

	hookEffectRun()

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	if resetDependenciesOnRun() {
		e.unsubscribeAll()
	}

	old := setCurrentListener(e)
	defer setCurrentListener(old)

	defer func() {
		if r := recover(); r != nil {
			hookEffectPanic(r)
			logger.Error("effect body panic",
				"code", "R003", "effect", e.id, "error", r)
		}
	}()

	e.cleanup = e.fn()
}

// addSource records a subscription. Called by signals when read during
// this effect's run. Implements sourceTracker.
func (e *Effect) addSource(source *signalBase) {
	for _, s := range e.sources {
		if s == source {
			return
		}
	}
	e.sources = append(e.sources, source)
}

func (e *Effect) unsubscribeAll() {
	for _, source := range e.sources {
		source.unsubscribe(e)
	}
	e.sources = e.sources[:0]
}

// Dispose permanently stops the effect: it is removed from every signal's
// subscriber set and its pending cleanup runs. Safe to call twice.
func (e *Effect) Dispose() {
	if e.disposed.Swap(true) {
		return
	}

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	e.unsubscribeAll()
	e.sources = nil
}

// IsDisposed reports whether Dispose has been called.
func (e *Effect) IsDisposed() bool {
	return e.disposed.Load()
}

// OnCleanup registers fn to run when the current owner is disposed.
// With no current owner, fn is never invoked.
func OnCleanup(fn func()) {
	if owner := getCurrentOwner(); owner != nil {
		owner.OnCleanup(fn)
	}
}
