package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNestedEffectRestoresOuterListener(t *testing.T) {
	outer := NewSignal(0)
	inner := NewSignal(0)
	after := NewSignal(0)
	outerRuns := 0
	innerRuns := 0

	CreateEffect(func() Cleanup {
		outer.Get()
		CreateEffect(func() Cleanup {
			inner.Get()
			innerRuns++
			return nil
		})
		// Reads after the nested effect must still be attributed to the
		// outer effect.
		after.Get()
		outerRuns++
		return nil
	})

	assert.Equal(t, 1, outerRuns)
	assert.Equal(t, 1, innerRuns)

	after.Set(1)
	assert.Equal(t, 2, outerRuns, "outer effect keeps tracking after nested effect completes")
}

func TestEffectPanicContained(t *testing.T) {
	s := NewSignal(0)
	otherRuns := 0

	// First run panics; creation must not propagate it.
	assert.NotPanics(t, func() {
		CreateEffect(func() Cleanup {
			s.Get()
			panic("construction failure")
		})
	})

	CreateEffect(func() Cleanup {
		s.Get()
		otherRuns++
		return nil
	})

	assert.NotPanics(t, func() { s.Set(1) })
	assert.Equal(t, 2, otherRuns)
}

func TestEffectPanicHook(t *testing.T) {
	var recovered any
	Configure(Config{Hooks: Hooks{OnEffectPanic: func(r any) { recovered = r }}})
	t.Cleanup(func() { Configure(Config{}) })

	CreateEffect(func() Cleanup {
		panic("observed")
	})

	assert.Equal(t, "observed", recovered)
}

func TestEffectCleanupRunsBeforeRerunAndOnDispose(t *testing.T) {
	s := NewSignal(0)
	var log []string

	e := CreateEffect(func() Cleanup {
		s.Get()
		log = append(log, "run")
		return func() { log = append(log, "cleanup") }
	})

	s.Set(1)
	e.Dispose()

	assert.Equal(t, []string{"run", "cleanup", "run", "cleanup"}, log)
}

func TestDisposeUnsubscribesEverywhere(t *testing.T) {
	a := NewSignal(0)
	b := NewSignal(0)
	runs := 0

	e := CreateEffect(func() Cleanup {
		a.Get()
		b.Get()
		runs++
		return nil
	})

	e.Dispose()
	a.Set(1)
	b.Set(1)

	assert.Equal(t, 1, runs, "disposed effect must never re-run")
	assert.Equal(t, 0, a.SubscriberCount())
	assert.Equal(t, 0, b.SubscriberCount())
	assert.True(t, e.IsDisposed())
}

func TestReentrantWriteIsBounded(t *testing.T) {
	Configure(Config{MaxEffectDepth: 8})
	t.Cleanup(func() { Configure(Config{}) })

	s := NewSignal(0)
	runs := 0

	// An effect that writes a signal it reads would recurse forever
	// without the depth guard.
	assert.NotPanics(t, func() {
		CreateEffect(func() Cleanup {
			s.Get()
			runs++
			s.Update(func(n int) int { return n + 1 })
			return nil
		})
	})

	assert.Equal(t, 8, runs, "recursion stops at the configured depth")
}

func TestWithListenerSavesAndRestores(t *testing.T) {
	s := NewSignal(0)

	fake := &fakeListener{id: nextID()}
	WithListener(fake, func() {
		s.Get()
	})

	assert.Equal(t, 1, s.SubscriberCount())
	s.Set(1)
	assert.Equal(t, 1, fake.notified)

	// Outside WithListener, reads are untracked again.
	s.Get()
	assert.Equal(t, 1, s.SubscriberCount())
}

type fakeListener struct {
	id       uint64
	notified int
}

func (f *fakeListener) Notify()    { f.notified++ }
func (f *fakeListener) ID() uint64 { return f.id }
