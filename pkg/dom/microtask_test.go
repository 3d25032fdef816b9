package dom

import "testing"

func TestFlushRunsQueuedTasksInOrder(t *testing.T) {
	var order []int
	QueueMicrotask(func() { order = append(order, 1) })
	QueueMicrotask(func() { order = append(order, 2) })

	Flush()

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("unexpected order: %v", order)
	}
	if PendingMicrotasks() != 0 {
		t.Error("queue should be empty after flush")
	}
}

func TestFlushDrainsNestedTasks(t *testing.T) {
	ran := false
	QueueMicrotask(func() {
		QueueMicrotask(func() { ran = true })
	})

	Flush()

	if !ran {
		t.Error("tasks queued during flush should also run")
	}
}

func TestFlushSurvivesPanic(t *testing.T) {
	ran := false
	QueueMicrotask(func() { panic("boom") })
	QueueMicrotask(func() { ran = true })

	Flush()

	if !ran {
		t.Error("a panicking task should not stop the drain")
	}
}
