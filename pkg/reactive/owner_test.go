package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnerAdoptsEffects(t *testing.T) {
	s := NewSignal(0)
	runs := 0

	owner := NewOwner(nil)
	WithOwner(owner, func() {
		CreateEffect(func() Cleanup {
			s.Get()
			runs++
			return nil
		})
	})

	s.Set(1)
	assert.Equal(t, 2, runs)

	owner.Dispose()
	s.Set(2)
	assert.Equal(t, 2, runs, "disposing the owner disposes its effects")
	assert.Equal(t, 0, s.SubscriberCount())
}

func TestOwnerDisposalOrder(t *testing.T) {
	var log []string

	root := NewOwner(nil)
	WithOwner(root, func() {
		OnCleanup(func() { log = append(log, "root-1") })
		OnCleanup(func() { log = append(log, "root-2") })

		child := NewOwner(getCurrentOwner())
		WithOwner(child, func() {
			OnCleanup(func() { log = append(log, "child") })
		})
	})

	root.Dispose()

	// Children first, then own cleanups in reverse registration order.
	assert.Equal(t, []string{"child", "root-2", "root-1"}, log)
}

func TestOnCleanupAfterDisposeRunsImmediately(t *testing.T) {
	owner := NewOwner(nil)
	owner.Dispose()

	ran := false
	owner.OnCleanup(func() { ran = true })
	assert.True(t, ran)
}

func TestDisposeIsIdempotent(t *testing.T) {
	calls := 0
	owner := NewOwner(nil)
	owner.OnCleanup(func() { calls++ })

	owner.Dispose()
	owner.Dispose()

	assert.Equal(t, 1, calls)
	assert.True(t, owner.IsDisposed())
}

func TestDisposedChildDetachesFromParent(t *testing.T) {
	parent := NewOwner(nil)
	child := NewOwner(parent)

	childCleanups := 0
	child.OnCleanup(func() { childCleanups++ })

	child.Dispose()
	parent.Dispose()

	assert.Equal(t, 1, childCleanups, "parent disposal must not re-dispose a dead child")
}

func TestRefSetAndClear(t *testing.T) {
	ref := NewRef[string]()
	assert.False(t, ref.IsSet())
	assert.Equal(t, "", ref.Current())

	ref.Set("node")
	assert.True(t, ref.IsSet())
	assert.Equal(t, "node", ref.Current())

	ref.Clear()
	assert.False(t, ref.IsSet())
	assert.Equal(t, "", ref.Current())
}
