package reactive

// Listener is anything that can be notified when a dependency is written.
// Effects implement it; tests provide fakes.
type Listener interface {
	// Notify tells the listener that one of its dependencies was written.
	// Notification is synchronous: for an effect this re-runs it before
	// the write call returns.
	Notify()

	// ID returns a unique identifier for this listener.
	// Used to deduplicate subscriptions.
	ID() uint64
}

// Cleanup is a function returned by effects to release resources.
// It runs before the effect re-runs and when the effect is disposed.
type Cleanup func()
