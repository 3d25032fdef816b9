package element

import "github.com/glint-ui/glint/pkg/dom"

// Props is the property map passed to Build and to component functions.
// A nil Props is valid and means "no properties".
type Props map[string]any

// ComponentFunc is a user component: it receives its props and children
// and returns the subtree it renders.
type ComponentFunc func(props Props, children ...any) *dom.Node

// fragmentMarker is the type of the Fragment sentinel.
type fragmentMarker struct{}

// Fragment is the tag sentinel for building a fragment: a grouping of
// sibling nodes with no wrapping element.
var Fragment = fragmentMarker{}

// RefSetter is a ref prop in callback form: it is invoked once with the
// element as soon as the element is constructed.
type RefSetter func(*dom.Node)

// nodeRef is satisfied by ref containers such as
// *reactive.Ref[*dom.Node]: the built element is stored via Set.
type nodeRef interface {
	Set(node *dom.Node)
}

// RawHTML marks a string as raw markup for the dangerouslySetInnerHTML
// prop. The markup is not sanitized; the caller is responsible for it.
type RawHTML struct {
	HTML string
}
