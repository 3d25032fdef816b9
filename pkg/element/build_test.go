package element

import (
	"testing"

	"github.com/glint-ui/glint/pkg/dom"
	"github.com/glint-ui/glint/pkg/reactive"
)

func TestBuildElement(t *testing.T) {
	node := Build("div", Props{"id": "app", "class": "container"},
		Build("h1", nil, "Hello"),
		"world",
	)

	if got := node.Tag(); got != "div" {
		t.Fatalf("Tag() = %q, want %q", got, "div")
	}
	if got := node.Namespace(); got != dom.NamespaceHTML {
		t.Errorf("Namespace() = %q, want HTML", got)
	}
	if got, _ := node.GetAttribute("id"); got != "app" {
		t.Errorf("id = %q, want %q", got, "app")
	}
	if got, _ := node.GetAttribute("class"); got != "container" {
		t.Errorf("class = %q, want %q", got, "container")
	}
	if got := node.ChildCount(); got != 2 {
		t.Fatalf("ChildCount() = %d, want 2", got)
	}
	if got := node.TextContent(); got != "Helloworld" {
		t.Errorf("TextContent() = %q, want %q", got, "Helloworld")
	}
}

func TestBuildSVGNamespace(t *testing.T) {
	circle := Build("circle", Props{"cx": 50, "cy": 50, "r": 40})
	if got := circle.Namespace(); got != dom.NamespaceSVG {
		t.Errorf("circle namespace = %q, want SVG", got)
	}
	if got, _ := circle.GetAttribute("cx"); got != "50" {
		t.Errorf("cx = %q, want %q", got, "50")
	}

	div := Build("div", Props{"cx": 50, "cy": 50, "r": 40})
	if got := div.Namespace(); got != dom.NamespaceHTML {
		t.Errorf("div namespace = %q, want HTML", got)
	}
}

func TestSVGNamespacedAttribute(t *testing.T) {
	use := Build("use", Props{"xlink:href": "#icon"})

	var found *dom.Attr
	for _, a := range use.Attrs() {
		if a.Key == "xlink:href" {
			a := a
			found = &a
		}
	}
	if found == nil {
		t.Fatal("xlink:href attribute not set")
	}
	if found.Namespace != dom.NamespaceXLink {
		t.Errorf("namespace = %q, want xlink", found.Namespace)
	}
	if found.Value != "#icon" {
		t.Errorf("value = %q, want %q", found.Value, "#icon")
	}
}

func TestBooleanAttributeToggling(t *testing.T) {
	on := Build("input", Props{"disabled": true})
	if got, ok := on.GetAttribute("disabled"); !ok || got != "" {
		t.Errorf("disabled=true: attr = (%q, %v), want (\"\", true)", got, ok)
	}

	off := Build("input", Props{"disabled": false})
	if off.HasAttribute("disabled") {
		t.Error("disabled=false: attribute should be absent")
	}
}

func TestValueIsLiveNotAttribute(t *testing.T) {
	input := Build("input", Props{"value": "initial"})

	if got := input.Value(); got != "initial" {
		t.Errorf("Value() = %q, want %q", got, "initial")
	}
	if input.HasAttribute("value") {
		t.Error("value prop must not become an attribute")
	}

	input.SetValue("edited")
	if got := input.Value(); got != "edited" {
		t.Errorf("Value() after edit = %q, want %q", got, "edited")
	}
}

func TestStyleMap(t *testing.T) {
	node := Build("div", Props{"style": map[string]string{
		"color":   "red",
		"display": "flex",
	}})

	got, _ := node.GetAttribute("style")
	want := "color: red; display: flex"
	if got != want {
		t.Errorf("style = %q, want %q", got, want)
	}
}

func TestDangerouslySetInnerHTML(t *testing.T) {
	node := Build("div", Props{
		"dangerouslySetInnerHTML": map[string]any{"__html": "<b>raw</b>"},
	})

	html, ok := node.InnerHTML()
	if !ok || html != "<b>raw</b>" {
		t.Errorf("InnerHTML() = (%q, %v), want (\"<b>raw</b>\", true)", html, ok)
	}
}

func TestRefDelivery(t *testing.T) {
	var viaFunc *dom.Node
	Build("span", Props{"ref": func(n *dom.Node) { viaFunc = n }})
	if viaFunc == nil || viaFunc.Tag() != "span" {
		t.Error("func ref was not invoked with the element")
	}

	ref := reactive.NewRef[*dom.Node]()
	Build("span", Props{"ref": ref})
	if !ref.IsSet() || ref.Current().Tag() != "span" {
		t.Error("container ref was not set")
	}
}

func TestEventListenerRegistration(t *testing.T) {
	clicks := 0
	btn := Build("button", Props{
		"onClick": func(*dom.Event) { clicks++ },
	})

	if got := btn.ListenerCount("click"); got != 1 {
		t.Fatalf("ListenerCount(click) = %d, want 1", got)
	}
	btn.DispatchEvent(&dom.Event{Type: "click"})
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestComponentDelegation(t *testing.T) {
	greeting := ComponentFunc(func(props Props, children ...any) *dom.Node {
		return Build("p", nil, "Hi, ", props["name"])
	})

	node := Build(greeting, Props{"name": "Ada"})
	if got := node.Tag(); got != "p" {
		t.Fatalf("Tag() = %q, want %q", got, "p")
	}
	if got := node.TextContent(); got != "Hi, Ada" {
		t.Errorf("TextContent() = %q, want %q", got, "Hi, Ada")
	}
}

func TestComponentPanicBecomesDiagnostic(t *testing.T) {
	broken := ComponentFunc(func(Props, ...any) *dom.Node {
		panic("component exploded")
	})

	node := Build(broken, nil)
	if node == nil {
		t.Fatal("Build returned nil for a panicking component")
	}
	if got := node.Kind(); got != dom.KindComment {
		t.Fatalf("Kind() = %v, want Comment", got)
	}
}

func TestErrorIsolationInFragment(t *testing.T) {
	broken := ComponentFunc(func(Props, ...any) *dom.Node {
		panic("boom")
	})

	frag := Build(Fragment, nil,
		Build("div", nil, "left"),
		Build(broken, nil),
		Build("div", nil, "right"),
	)

	children := frag.Children()
	if got := len(children); got != 3 {
		t.Fatalf("fragment has %d children, want 3", got)
	}
	if children[0].Tag() != "div" || children[2].Tag() != "div" {
		t.Error("sibling divs did not survive the failing component")
	}
	if children[1].Kind() != dom.KindComment {
		t.Errorf("middle child kind = %v, want diagnostic Comment", children[1].Kind())
	}
}

func TestNestedListChildrenFlatten(t *testing.T) {
	node := Build("ul", nil, []any{
		Build("li", nil, "a"),
		[]any{
			Build("li", nil, "b"),
			Build("li", nil, "c"),
		},
	})

	if got := node.ChildCount(); got != 3 {
		t.Fatalf("ChildCount() = %d, want 3", got)
	}
	if got := node.TextContent(); got != "abc" {
		t.Errorf("TextContent() = %q, want %q", got, "abc")
	}
}

func TestNilChildrenIgnored(t *testing.T) {
	node := Build("div", nil, nil, "text", nil)
	if got := node.ChildCount(); got != 1 {
		t.Errorf("ChildCount() = %d, want 1", got)
	}
}
