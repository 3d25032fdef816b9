package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoComputesEagerly(t *testing.T) {
	a := NewSignal(2)
	b := NewSignal(3)
	computes := 0

	sum := NewMemo(func() int {
		computes++
		return a.Get() + b.Get()
	})

	assert.Equal(t, 5, sum.Get())
	assert.Equal(t, 1, computes, "memo computes once at creation")

	a.Set(10)
	assert.Equal(t, 13, sum.Get())
	assert.Equal(t, 2, computes)
}

func TestMemoIsConsistentWhenRead(t *testing.T) {
	// A reader must never observe the memo out of sync with its inputs.
	n := NewSignal(1)
	doubled := NewMemo(func() int { return n.Get() * 2 })

	var observed []int
	CreateEffect(func() Cleanup {
		observed = append(observed, doubled.Get())
		return nil
	})

	n.Set(2)
	n.Set(3)

	assert.Equal(t, []int{2, 4, 6}, observed)
}

func TestMemoChain(t *testing.T) {
	n := NewSignal(1)
	doubled := NewMemo(func() int { return n.Get() * 2 })
	quadrupled := NewMemo(func() int { return doubled.Get() * 2 })

	assert.Equal(t, 4, quadrupled.Get())

	n.Set(5)
	assert.Equal(t, 20, quadrupled.Get())
}

func TestMemoKeepsLastValueOnPanic(t *testing.T) {
	n := NewSignal(1)
	m := NewMemo(func() int {
		v := n.Get()
		if v < 0 {
			panic("negative input")
		}
		return v * 10
	})

	assert.Equal(t, 10, m.Get())

	assert.NotPanics(t, func() { n.Set(-1) })
	assert.Equal(t, 10, m.Get(), "failed recompute keeps the last good value")

	n.Set(4)
	assert.Equal(t, 40, m.Get(), "memo recovers on the next successful compute")
}

func TestMemoDisposeStopsRecomputation(t *testing.T) {
	n := NewSignal(1)
	m := NewMemo(func() int { return n.Get() })

	m.Dispose()
	n.Set(99)

	assert.Equal(t, 1, m.Peek(), "disposed memo keeps its last value")
	assert.Equal(t, 0, n.SubscriberCount())
}
