package reactive

import (
	"runtime"
	"sync"
)

// trackingContext holds the reactive state for a goroutine: the listener
// currently collecting dependencies and the owner that adopts newly
// created effects.
//
// The "current listener" is a save/restore slot, not a clear-on-exit one:
// a nested tracked run restores the previous listener when it finishes,
// so an outer effect that continues after a nested effect completes keeps
// tracking its own dependencies.
type trackingContext struct {
	currentListener Listener
	currentOwner    *Owner
}

// trackingContexts stores per-goroutine tracking contexts.
var trackingContexts sync.Map

// getGoroutineID extracts the current goroutine's id from the runtime
// stack header ("goroutine <id> ..."). Implementation detail; not exposed.
func getGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := 10; i < n; i++ { // Skip "goroutine "
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// getTrackingContext returns the tracking context for the current
// goroutine, creating one if needed.
func getTrackingContext() *trackingContext {
	gid := getGoroutineID()

	if ctx, ok := trackingContexts.Load(gid); ok {
		return ctx.(*trackingContext)
	}

	ctx := &trackingContext{}
	trackingContexts.Store(gid, ctx)
	return ctx
}

// getCurrentListener returns the listener currently collecting
// dependencies, or nil if reads are untracked.
func getCurrentListener() Listener {
	return getTrackingContext().currentListener
}

// setCurrentListener installs a listener and returns the previous one so
// the caller can restore it.
func setCurrentListener(l Listener) Listener {
	ctx := getTrackingContext()
	old := ctx.currentListener
	ctx.currentListener = l
	return old
}

// getCurrentOwner returns the owner adopting new effects, or nil.
func getCurrentOwner() *Owner {
	return getTrackingContext().currentOwner
}

// setCurrentOwner installs an owner and returns the previous one.
func setCurrentOwner(o *Owner) *Owner {
	ctx := getTrackingContext()
	old := ctx.currentOwner
	ctx.currentOwner = o
	return old
}

// WithOwner runs fn with owner installed as the current owner.
// Effects created inside fn are registered on (and disposed with) owner.
func WithOwner(owner *Owner, fn func()) {
	old := setCurrentOwner(owner)
	defer setCurrentOwner(old)
	fn()
}

// WithListener runs fn with l installed as the current listener.
// Signals read inside fn subscribe l. The previous listener is restored
// afterwards.
func WithListener(l Listener, fn func()) {
	old := setCurrentListener(l)
	defer setCurrentListener(old)
	fn()
}

// Untrack runs fn with dependency tracking suspended: signal reads inside
// fn do not subscribe the surrounding effect.
func Untrack(fn func()) {
	WithListener(nil, fn)
}
