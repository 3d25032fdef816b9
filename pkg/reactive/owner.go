package reactive

import "sync/atomic"

// Owner is a scope that owns reactive primitives. Disposing an owner
// disposes its child owners, then its effects, then runs its cleanup
// functions, all in reverse creation order. Owners form a hierarchy
// mirroring the component tree.
type Owner struct {
	id uint64

	parent   *Owner
	children []*Owner

	effects  []*Effect
	cleanups []func()

	disposed atomic.Bool
}

// NewOwner creates an owner with the given parent (nil for a root owner).
// The new owner registers itself as a child of the parent.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{
		id:     nextID(),
		parent: parent,
	}
	if parent != nil {
		parent.children = append(parent.children, o)
	}
	return o
}

// ID returns the unique identifier for this owner.
func (o *Owner) ID() uint64 { return o.id }

// Parent returns the parent owner, or nil for a root owner.
func (o *Owner) Parent() *Owner { return o.parent }

// IsDisposed reports whether this owner has been disposed.
func (o *Owner) IsDisposed() bool { return o.disposed.Load() }

// registerEffect adopts an effect: it is disposed with this owner.
func (o *Owner) registerEffect(e *Effect) {
	if o.disposed.Load() {
		return
	}
	o.effects = append(o.effects, e)
}

// OnCleanup registers fn to run when this owner is disposed.
// Registering on an already disposed owner runs fn immediately.
func (o *Owner) OnCleanup(fn func()) {
	if fn == nil {
		return
	}
	if o.disposed.Load() {
		fn()
		return
	}
	o.cleanups = append(o.cleanups, fn)
}

// removeChild drops a child owner from the children list.
func (o *Owner) removeChild(child *Owner) {
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

// Dispose disposes this owner and everything it owns. Children are
// disposed first (last created first), then effects, then cleanups run in
// reverse registration order. Safe to call twice.
func (o *Owner) Dispose() {
	if o.disposed.Swap(true) {
		return
	}

	if o.parent != nil {
		o.parent.removeChild(o)
	}

	children := o.children
	o.children = nil
	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	effects := o.effects
	o.effects = nil
	for _, e := range effects {
		e.Dispose()
	}

	cleanups := o.cleanups
	o.cleanups = nil
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}
