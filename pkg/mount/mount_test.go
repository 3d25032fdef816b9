package mount

import (
	"testing"

	"github.com/glint-ui/glint/pkg/dom"
	"github.com/glint-ui/glint/pkg/element"
	"github.com/glint-ui/glint/pkg/reactive"
)

func TestRenderToNode(t *testing.T) {
	doc := dom.NewDocument()

	node, err := Render(element.Build("h1", nil, "hello"), doc.Body(), nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if node == nil {
		t.Fatal("Render() returned nil node")
	}
	if got := doc.Body().TextContent(); got != "hello" {
		t.Errorf("body text = %q, want %q", got, "hello")
	}
}

func TestRenderToSelector(t *testing.T) {
	doc := dom.NewDocument()
	app := element.Build("div", element.Props{"id": "app"})
	doc.Body().AppendChild(app)

	_, err := Render(element.Build("p", nil, "mounted"), "#app", &Options{Document: doc})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := app.TextContent(); got != "mounted" {
		t.Errorf("app text = %q, want %q", got, "mounted")
	}
}

func TestRenderUnresolvedSelectorAborts(t *testing.T) {
	doc := dom.NewDocument()

	node, err := Render(element.Build("p", nil, "x"), "#missing", &Options{Document: doc})
	if err == nil {
		t.Fatal("Render() should fail for an unresolved selector")
	}
	if node != nil {
		t.Error("Render() should not mount anything on failure")
	}
	if got := doc.Body().ChildCount(); got != 0 {
		t.Errorf("body has %d children after aborted render, want 0", got)
	}
}

func TestRenderSelectorWithoutDocument(t *testing.T) {
	_, err := Render(element.Build("p", nil), "#app", nil)
	if err == nil {
		t.Fatal("Render() should fail when a selector has no document")
	}
}

func TestRenderClearsUnlessHydrate(t *testing.T) {
	doc := dom.NewDocument()
	doc.Body().AppendChild(dom.NewText("stale"))

	if _, err := Render(element.Build("p", nil, "fresh"), doc.Body(), nil); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := doc.Body().TextContent(); got != "fresh" {
		t.Errorf("body text = %q, want stale content cleared", got)
	}

	doc2 := dom.NewDocument()
	doc2.Body().AppendChild(dom.NewText("kept"))
	if _, err := Render(element.Build("p", nil, "more"), doc2.Body(), &Options{Hydrate: true}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := doc2.Body().TextContent(); got != "keptmore" {
		t.Errorf("hydrate body text = %q, want %q", got, "keptmore")
	}
}

func TestRenderBeforeRenderHook(t *testing.T) {
	doc := dom.NewDocument()
	order := []string{}

	component := func() *dom.Node {
		order = append(order, "component")
		return element.Build("p", nil)
	}

	_, err := Render(component, doc.Body(), &Options{
		BeforeRender: func() { order = append(order, "before") },
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(order) != 2 || order[0] != "before" || order[1] != "component" {
		t.Errorf("call order = %v, want [before component]", order)
	}
}

func TestRenderPanickingComponentShowsErrorElement(t *testing.T) {
	doc := dom.NewDocument()

	component := func() *dom.Node {
		panic("root blew up")
	}

	node, err := Render(component, doc.Body(), nil)
	if err != nil {
		t.Fatalf("Render() error = %v, component panics must not fail the call", err)
	}
	if node == nil {
		t.Fatal("Render() returned nil for a panicking component")
	}
	if got, _ := node.GetAttribute("class"); got != "glint-error" {
		t.Errorf("class = %q, want glint-error", got)
	}
	if doc.Body().ChildCount() == 0 {
		t.Error("page left blank after component panic")
	}
}

func TestCounterEndToEnd(t *testing.T) {
	doc := dom.NewDocument()
	count := reactive.NewSignal(0)

	counter := func() *dom.Node {
		return element.Build("button", nil, func() any { return count.Get() })
	}

	if _, err := Render(counter, doc.Body(), nil); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		count.Update(func(c int) int { return c + 1 })
	}

	button := doc.QuerySelector("button")
	if button == nil {
		t.Fatal("button not found")
	}
	if got := button.TextContent(); got != "3" {
		t.Errorf("button text = %q, want %q", got, "3")
	}
	if got := button.ChildCount(); got != 1 {
		t.Errorf("button has %d children, want exactly 1", got)
	}
}

func TestRenderListOutputEffectsDisposedWithOwner(t *testing.T) {
	doc := dom.NewDocument()
	owner := reactive.NewOwner(nil)
	sig := reactive.NewSignal("x")

	// List output takes the fragment fallback path; its reactive
	// children must be adopted by the mount owner all the same.
	component := func() any {
		return []any{func() any { return sig.Get() }}
	}

	if _, err := Render(component, doc.Body(), &Options{Owner: owner}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := sig.SubscriberCount(); got != 1 {
		t.Fatalf("SubscriberCount() after mount = %d, want 1", got)
	}

	owner.Dispose()

	if got := sig.SubscriberCount(); got != 0 {
		t.Errorf("SubscriberCount() after Dispose = %d, want 0", got)
	}
}

func TestRenderWithOwnerDisposesEffects(t *testing.T) {
	doc := dom.NewDocument()
	owner := reactive.NewOwner(nil)
	sig := reactive.NewSignal(0)

	component := func() *dom.Node {
		return element.Build("div", nil, func() any { return sig.Get() })
	}

	if _, err := Render(component, doc.Body(), &Options{Owner: owner}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	owner.Dispose()
	sig.Set(42)

	if got := doc.Body().TextContent(); got != "0" {
		t.Errorf("body text = %q, want %q (disposed effect must not rerun)", got, "0")
	}
	if got := sig.SubscriberCount(); got != 0 {
		t.Errorf("SubscriberCount() = %d, want 0 after dispose", got)
	}
}
