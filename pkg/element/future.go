package element

import (
	"fmt"

	"github.com/glint-ui/glint/pkg/dom"
)

// Future is a deferred child value. It is computed on the microtask
// queue, so resolution is ordered after the enclosing synchronous
// computation (and is observable after dom.Flush).
type Future struct {
	compute func() (any, error)
}

// Async wraps a computation as a Future child. fn runs once, as a
// microtask, when the future is bound into a tree.
func Async(fn func() (any, error)) *Future {
	return &Future{compute: fn}
}

// Resolved returns a future that yields value.
func Resolved(value any) *Future {
	return &Future{compute: func() (any, error) { return value, nil }}
}

// Rejected returns a future that fails with err.
func Rejected(err error) *Future {
	return &Future{compute: func() (any, error) { return nil, err }}
}

// deliver queues the computation and hands its outcome to done. A panic
// in the computation counts as a rejection.
func (f *Future) deliver(done func(result any, err error)) {
	dom.QueueMicrotask(func() {
		result, err := runCompute(f.compute)
		done(result, err)
	})
}

func runCompute(compute func() (any, error)) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return compute()
}
