package dom

import "strings"

// Event carries the payload of a dispatched DOM event.
// The fields mirror what a thin browser client forwards for the common
// event classes (input/change carry Value and Checked, keyboard events
// carry Key).
type Event struct {
	Type    string
	Target  *Node
	Value   string
	Checked bool
	Key     string
}

// EventListener handles a dispatched event.
type EventListener func(*Event)

// AddEventListener registers a listener for the given event type.
// Event names are case-insensitive; "Click" and "click" are the same event.
func (n *Node) AddEventListener(eventType string, fn EventListener) {
	if fn == nil {
		return
	}
	if n.listeners == nil {
		n.listeners = make(map[string][]EventListener)
	}
	key := strings.ToLower(eventType)
	n.listeners[key] = append(n.listeners[key], fn)
}

// ListenerCount returns how many listeners are registered for an event type.
func (n *Node) ListenerCount(eventType string) int {
	return len(n.listeners[strings.ToLower(eventType)])
}

// DispatchEvent invokes every listener registered for the event's type,
// in registration order. A panicking listener is reported and does not
// prevent the remaining listeners from running.
func (n *Node) DispatchEvent(ev *Event) {
	if ev == nil {
		return
	}
	if ev.Target == nil {
		ev.Target = n
	}
	for _, fn := range n.listeners[strings.ToLower(ev.Type)] {
		invokeListener(fn, ev)
	}
}

func invokeListener(fn EventListener, ev *Event) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("event listener panic",
				"event", ev.Type, "node", ev.Target.ID(), "error", r)
		}
	}()
	fn(ev)
}
