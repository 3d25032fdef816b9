package mount

import "github.com/glint-ui/glint/pkg/dom"

// RefAccessor is a combined get/set accessor over one node slot:
// called with an argument it stores the node, called with none it
// returns the stored node (nil until set).
type RefAccessor func(node ...*dom.Node) *dom.Node

// Set stores a node in the slot. This satisfies the ref-container shape
// the element builder recognizes, so an accessor can be passed directly
// as a `ref` prop.
func (r RefAccessor) Set(node *dom.Node) {
	r(node)
}

// SetRef creates a ref accessor. The setter form is typically passed as
// a `ref` prop; the getter form is used by application code afterwards.
func SetRef() RefAccessor {
	var slot *dom.Node
	return func(node ...*dom.Node) *dom.Node {
		if len(node) > 0 {
			slot = node[0]
		}
		return slot
	}
}
