package element

import (
	"fmt"
	"sort"
	"strings"

	"github.com/glint-ui/glint/pkg/dom"
)

// Build constructs one DOM node from a declarative description.
//
// tag is a string tag name, a ComponentFunc, the Fragment marker, or nil
// (treated as a fragment). props may be nil. Children are bound through
// the dynamic child binder after flattening nested lists to any depth.
//
// Build never panics outward: any failure is reported and replaced with
// a diagnostic comment node so sibling construction continues.
func Build(tag any, props Props, children ...any) (node *dom.Node) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("element construction panic",
				"code", "B002", "tag", tagName(tag), "error", r)
			node = Diagnostic(fmt.Sprintf("glint error: %v", r))
		}
	}()

	switch t := tag.(type) {
	case ComponentFunc:
		return callComponent(t, props, children)
	case func(Props, ...any) *dom.Node:
		return callComponent(t, props, children)
	case nil, fragmentMarker:
		return buildFragment(props, children)
	case string:
		if t == "" {
			return buildFragment(props, children)
		}
		return buildElement(t, props, children)
	default:
		logger.Error("unsupported tag type",
			"code", "B002", "tag", fmt.Sprintf("%T", tag))
		return Diagnostic(fmt.Sprintf("glint error: unsupported tag type %T", tag))
	}
}

// Diagnostic returns the comment node substituted for content that
// failed to construct.
func Diagnostic(message string) *dom.Node {
	return dom.NewComment(message)
}

// callComponent delegates to a component function. A panicking component
// is reported and replaced with a diagnostic node; the failure never
// propagates to the caller's tree.
func callComponent(component ComponentFunc, props Props, children []any) (node *dom.Node) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("component function panic",
				"code", "B001", "error", r)
			node = Diagnostic(fmt.Sprintf("glint error: %v", r))
		}
	}()
	return component(props, children...)
}

func buildFragment(props Props, children []any) *dom.Node {
	frag := dom.NewFragment()
	// Fragments carry no attributes; a ref prop is still honored so
	// callers can capture the fragment before it empties on insert.
	if props != nil {
		applyRef(frag, props["ref"])
	}
	for _, child := range children {
		BindChild(frag, child)
	}
	return frag
}

func buildElement(tag string, props Props, children []any) *dom.Node {
	isSVG := IsSVGTag(tag)

	var el *dom.Node
	if isSVG {
		el = dom.NewElementNS(dom.NamespaceSVG, tag)
	} else {
		el = dom.NewElement(tag)
	}

	applyProps(el, props, isSVG)

	for _, child := range children {
		BindChild(el, child)
	}
	return el
}

// applyProps applies every prop to el. Keys are visited in sorted order
// so attribute insertion order (and therefore serialization) is
// deterministic. nil values are skipped.
func applyProps(el *dom.Node, props Props, isSVG bool) {
	if len(props) == 0 {
		return
	}

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		applyProp(el, key, props[key], isSVG)
	}
}

func applyProp(el *dom.Node, key string, value any, isSVG bool) {
	if value == nil {
		return
	}

	switch {
	case key == "value":
		// Live form-control value, not an attribute: it stays mutable
		// after construction.
		el.SetValue(stringify(value))

	case key == "class" || key == "className":
		el.SetAttribute("class", stringify(value))

	case key == "style":
		el.SetAttribute("style", styleString(value))

	case key == "dangerouslySetInnerHTML":
		if html, ok := rawHTML(value); ok {
			el.SetInnerHTML(html)
		}

	case key == "ref":
		applyRef(el, value)

	case strings.HasPrefix(key, "on") && len(key) > 2:
		applyListener(el, key, value)

	case isSVG && strings.Contains(key, ":"):
		prefix := key[:strings.Index(key, ":")]
		if ns, ok := attrNamespaces[prefix]; ok {
			el.SetAttributeNS(ns, key, stringify(value))
		} else {
			el.SetAttribute(key, stringify(value))
		}

	default:
		if b, ok := value.(bool); ok && !isSVG {
			// Boolean attributes toggle presence: true yields a
			// valueless attribute, false yields none.
			if b {
				el.SetAttribute(key, "")
			} else {
				el.RemoveAttribute(key)
			}
			return
		}
		el.SetAttribute(key, stringify(value))
	}
}

// applyRef delivers el to a ref prop: a RefSetter (or bare function) is
// invoked once, a container with a Set method receives the node.
func applyRef(el *dom.Node, ref any) {
	switch r := ref.(type) {
	case nil:
	case RefSetter:
		r(el)
	case func(*dom.Node):
		r(el)
	case nodeRef:
		r.Set(el)
	default:
		logger.Warn("unsupported ref type", "type", fmt.Sprintf("%T", ref))
	}
}

func applyListener(el *dom.Node, key string, value any) {
	event := strings.ToLower(key[2:])
	switch handler := value.(type) {
	case dom.EventListener:
		el.AddEventListener(event, handler)
	case func(*dom.Event):
		el.AddEventListener(event, handler)
	case func():
		el.AddEventListener(event, func(*dom.Event) { handler() })
	default:
		logger.Warn("event prop is not a handler",
			"event", event, "type", fmt.Sprintf("%T", value))
	}
}

// styleString renders a style prop: a map becomes "key: value"
// declarations in sorted key order, anything else passes through
// stringified.
func styleString(value any) string {
	var decls map[string]string

	switch v := value.(type) {
	case map[string]string:
		decls = v
	case map[string]any:
		decls = make(map[string]string, len(v))
		for k, item := range v {
			decls[k] = stringify(item)
		}
	default:
		return stringify(value)
	}

	keys := make([]string, 0, len(decls))
	for k := range decls {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(decls[k])
	}
	return b.String()
}

func rawHTML(value any) (string, bool) {
	switch v := value.(type) {
	case RawHTML:
		return v.HTML, true
	case *RawHTML:
		return v.HTML, true
	case map[string]any:
		if html, ok := v["__html"]; ok {
			return stringify(html), true
		}
	case map[string]string:
		if html, ok := v["__html"]; ok {
			return html, true
		}
	}
	logger.Warn("dangerouslySetInnerHTML without __html payload",
		"type", fmt.Sprintf("%T", value))
	return "", false
}

func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

func tagName(tag any) string {
	switch t := tag.(type) {
	case string:
		return t
	case nil:
		return "<fragment>"
	case fragmentMarker:
		return "<fragment>"
	default:
		return fmt.Sprintf("%T", tag)
	}
}
