package mount

import (
	"github.com/glint-ui/glint/pkg/dom"
	"github.com/glint-ui/glint/pkg/reactive"
)

// OnMount schedules fn to run as a microtask, after the enclosing
// synchronous computation has finished and the DOM has settled. A panic
// in fn is reported only.
func OnMount(fn func()) {
	if fn == nil {
		return
	}
	dom.QueueMicrotask(func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("onMount callback panic", "error", r)
			}
		}()
		fn()
	})
}

// OnUnmount registers fn to run when the current owner is disposed.
// Outside any owner scope fn is never invoked.
func OnUnmount(fn func()) {
	reactive.OnCleanup(fn)
}
