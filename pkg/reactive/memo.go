package reactive

// Memo is a derived read-only signal: a Signal plus an owning Effect that
// eagerly recomputes the value whenever a dependency of the compute
// function is written.
//
// If the compute function panics, the failure is contained at the owning
// effect's boundary and the memo keeps its last successfully computed
// value (the zero value if it never succeeded).
type Memo[T any] struct {
	sig    *Signal[T]
	effect *Effect
}

// NewMemo creates a memo and computes its value immediately.
func NewMemo[T any](compute func() T) *Memo[T] {
	var zero T
	m := &Memo[T]{
		sig: NewSignal(zero),
	}
	m.effect = CreateEffect(func() Cleanup {
		m.sig.Set(compute())
		return nil
	})
	return m
}

// Get returns the memo's value and subscribes the current listener.
func (m *Memo[T]) Get() T {
	return m.sig.Get()
}

// Peek returns the memo's value without subscribing.
func (m *Memo[T]) Peek() T {
	return m.sig.Peek()
}

// ID returns the unique identifier of the memo's underlying signal.
func (m *Memo[T]) ID() uint64 {
	return m.sig.ID()
}

// Dispose stops the owning effect. The memo keeps its last value but no
// longer recomputes.
func (m *Memo[T]) Dispose() {
	m.effect.Dispose()
}
