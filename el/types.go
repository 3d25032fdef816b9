package el

import (
	"github.com/glint-ui/glint/pkg/dom"
	"github.com/glint-ui/glint/pkg/element"
)

// Props is re-exported so call sites can pass a raw property map.
type Props = element.Props

// Component is re-exported for defining subcomponents inline.
type Component = element.ComponentFunc

// Attr is one property produced by an attribute or event helper.
// Constructors fold Attr arguments into the element's Props.
type Attr struct {
	Key   string
	Value any
}

// build folds variadic DSL arguments into one Build call: Attr values
// and Props maps become properties, everything else is a child.
func build(tag string, args ...any) *dom.Node {
	var props element.Props
	children := make([]any, 0, len(args))

	for _, arg := range args {
		switch a := arg.(type) {
		case Attr:
			if props == nil {
				props = element.Props{}
			}
			props[a.Key] = a.Value
		case element.Props:
			if props == nil {
				props = element.Props{}
			}
			for k, v := range a {
				props[k] = v
			}
		default:
			children = append(children, arg)
		}
	}

	return element.Build(tag, props, children...)
}
