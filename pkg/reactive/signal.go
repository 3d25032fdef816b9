package reactive

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// signalBase provides type-erased subscriber management.
// It is embedded in Signal[T] so effects can hold source references
// without knowing the value type.
type signalBase struct {
	id uint64

	// subs is the deduplicated set of listeners subscribed to this
	// signal. The set is identity-keyed: subscribing twice is a no-op.
	subs mapset.Set[Listener]
}

func newSignalBase() signalBase {
	return signalBase{
		id:   nextID(),
		subs: mapset.NewSet[Listener](),
	}
}

// subscribe adds a listener to this signal's subscribers.
func (s *signalBase) subscribe(l Listener) {
	if l == nil {
		return
	}
	s.subs.Add(l)
}

// unsubscribe removes a listener from this signal's subscribers.
func (s *signalBase) unsubscribe(l Listener) {
	if l == nil {
		return
	}
	s.subs.Remove(l)
}

// notifySubscribers invokes every current subscriber exactly once, in no
// particular order, synchronously. A panicking subscriber is reported and
// does not prevent the remaining subscribers from running.
func (s *signalBase) notifySubscribers() {
	for _, sub := range s.subs.ToSlice() {
		notifyOne(sub)
	}
}

func notifyOne(sub Listener) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("subscriber panic during signal write",
				"code", "R002", "listener", sub.ID(), "error", r)
		}
	}()
	sub.Notify()
}

// SubscriberCount returns the current number of subscribers. Used by tests.
func (s *signalBase) SubscriberCount() int {
	return s.subs.Cardinality()
}

// sourceTracker is implemented by listeners that record which signals
// they are subscribed to, so disposal can unsubscribe them everywhere.
type sourceTracker interface {
	addSource(source *signalBase)
}

// Signal is a reactive value container. Reading it while an effect is
// running subscribes that effect; writing it synchronously re-runs every
// subscriber before the write returns. Writes never short-circuit on
// equality: setting an unchanged value still notifies.
type Signal[T any] struct {
	base  signalBase
	value T
}

// NewSignal creates a signal holding the given initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		base:  newSignalBase(),
		value: initial,
	}
}

// Get returns the current value and subscribes the current listener,
// if any. Subscription is implicit and per-read: only reads that actually
// execute during a tracked run are recorded.
func (s *Signal[T]) Get() T {
	if listener := getCurrentListener(); listener != nil {
		s.base.subscribe(listener)
		if tracker, ok := listener.(sourceTracker); ok {
			tracker.addSource(&s.base)
		}
	}
	return s.value
}

// Peek returns the current value without subscribing.
func (s *Signal[T]) Peek() T {
	return s.value
}

// Set replaces the value and notifies every subscriber.
// It returns the new value, which is valid even if subscribers panicked.
func (s *Signal[T]) Set(value T) T {
	hookSignalWrite()
	s.value = value
	s.base.notifySubscribers()
	return s.value
}

// Update replaces the value with fn applied to the previous value, then
// notifies every subscriber. Returns the new value.
func (s *Signal[T]) Update(fn func(T) T) T {
	hookSignalWrite()
	s.value = fn(s.value)
	s.base.notifySubscribers()
	return s.value
}

// ID returns the unique identifier for this signal.
func (s *Signal[T]) ID() uint64 {
	return s.base.id
}

// SubscriberCount returns the number of current subscribers. Used by tests.
func (s *Signal[T]) SubscriberCount() int {
	return s.base.SubscriberCount()
}
