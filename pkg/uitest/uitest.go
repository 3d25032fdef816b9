package uitest

import (
	"strings"
	"testing"

	"github.com/glint-ui/glint/pkg/dom"
	"github.com/glint-ui/glint/pkg/mount"
	"github.com/glint-ui/glint/pkg/reactive"
	"github.com/glint-ui/glint/pkg/render"
)

// Harness bundles a document and a root owner for one test. The owner
// is disposed via t.Cleanup so effects never leak between tests.
type Harness struct {
	t     *testing.T
	doc   *dom.Document
	owner *reactive.Owner
}

// NewHarness creates an isolated document and owner for a test.
func NewHarness(t *testing.T) *Harness {
	t.Helper()
	h := &Harness{
		t:     t,
		doc:   dom.NewDocument(),
		owner: reactive.NewOwner(nil),
	}
	t.Cleanup(h.owner.Dispose)
	return h
}

// Document returns the harness document.
func (h *Harness) Document() *dom.Document { return h.doc }

// Body returns the document body.
func (h *Harness) Body() *dom.Node { return h.doc.Body() }

// Owner returns the root owner adopting mounted effects.
func (h *Harness) Owner() *reactive.Owner { return h.owner }

// Mount renders component into the document body and fails the test on
// a mount error.
func (h *Harness) Mount(component any) *dom.Node {
	h.t.Helper()
	node, err := mount.Render(component, h.doc.Body(), &mount.Options{
		Document: h.doc,
		Owner:    h.owner,
	})
	if err != nil {
		h.t.Fatalf("mount failed: %v", err)
	}
	return node
}

// Query resolves a selector ("#id" or tag name) against the document.
func (h *Harness) Query(selector string) *dom.Node {
	return h.doc.QuerySelector(selector)
}

// Click dispatches a click event on the first node matching selector,
// then flushes microtasks. Fails the test if nothing matches.
func (h *Harness) Click(selector string) {
	h.t.Helper()
	h.Dispatch(selector, &dom.Event{Type: "click"})
}

// Input dispatches an input event carrying value on the first node
// matching selector, and updates the node's live value first.
func (h *Harness) Input(selector, value string) {
	h.t.Helper()
	node := h.doc.QuerySelector(selector)
	if node == nil {
		h.t.Fatalf("no node matches %q", selector)
	}
	node.SetValue(value)
	node.DispatchEvent(&dom.Event{Type: "input", Target: node, Value: value})
	dom.Flush()
}

// Dispatch sends an arbitrary event to the first node matching selector
// and flushes microtasks.
func (h *Harness) Dispatch(selector string, event *dom.Event) {
	h.t.Helper()
	node := h.doc.QuerySelector(selector)
	if node == nil {
		h.t.Fatalf("no node matches %q", selector)
	}
	if event.Target == nil {
		event.Target = node
	}
	node.DispatchEvent(event)
	dom.Flush()
}

// Flush drains the microtask queue (onMount callbacks, async children).
func (h *Harness) Flush() {
	dom.Flush()
}

// RenderToString serializes a node to HTML for assertions. Returns ""
// on serialization failure.
func RenderToString(node *dom.Node) string {
	r := render.NewRenderer(render.Config{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that node's HTML contains the substring.
func ExpectContains(t *testing.T, node *dom.Node, want string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, want) {
		t.Errorf("rendered output missing %q:\n%s", want, html)
	}
}

// ExpectNotContains asserts that node's HTML does not contain the
// substring.
func ExpectNotContains(t *testing.T, node *dom.Node, unwanted string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unwanted) {
		t.Errorf("rendered output unexpectedly contains %q:\n%s", unwanted, html)
	}
}

// ExpectText asserts on a node's plain text content.
func ExpectText(t *testing.T, node *dom.Node, want string) {
	t.Helper()
	if got := node.TextContent(); got != want {
		t.Errorf("TextContent() = %q, want %q", got, want)
	}
}
