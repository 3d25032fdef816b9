package dom

import "sync"

// The microtask queue defers work (mount callbacks, future deliveries)
// until after the current synchronous computation completes. The host
// drains it with Flush after each unit of work: the session server after
// every dispatched event, tests whenever they need the DOM to settle.

var (
	microMu sync.Mutex
	microQ  []func()
)

// QueueMicrotask schedules fn to run on the next Flush.
// Safe to call from any goroutine.
func QueueMicrotask(fn func()) {
	if fn == nil {
		return
	}
	microMu.Lock()
	microQ = append(microQ, fn)
	microMu.Unlock()
}

// Flush drains the microtask queue, including tasks queued while flushing.
// A panicking task is reported and does not stop the drain.
func Flush() {
	for {
		microMu.Lock()
		if len(microQ) == 0 {
			microMu.Unlock()
			return
		}
		fn := microQ[0]
		microQ = microQ[1:]
		microMu.Unlock()

		runMicrotask(fn)
	}
}

// PendingMicrotasks returns the number of queued tasks. Used by tests.
func PendingMicrotasks() int {
	microMu.Lock()
	defer microMu.Unlock()
	return len(microQ)
}

func runMicrotask(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("microtask panic", "error", r)
		}
	}()
	fn()
}
