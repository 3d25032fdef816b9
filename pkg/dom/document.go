package dom

import "strings"

// Document is the root of a live tree. It owns the node-id index used to
// address nodes over the wire and fans mutation records out to observers.
type Document struct {
	root      *Node
	body      *Node
	observers []MutationObserver
	nodes     map[uint64]*Node
}

// NewDocument creates a document with an empty <body>.
func NewDocument() *Document {
	d := &Document{
		nodes: make(map[uint64]*Node),
	}
	d.root = &Node{kind: KindDocument, id: nextID(), doc: d}
	d.nodes[d.root.id] = d.root

	d.body = NewElement("body")
	d.root.AppendChild(d.body)
	return d
}

// Root returns the document node itself.
func (d *Document) Root() *Node { return d.root }

// Body returns the document body element.
func (d *Document) Body() *Node { return d.body }

// CreateElement creates a detached element in the HTML namespace.
func (d *Document) CreateElement(tag string) *Node { return NewElement(tag) }

// CreateElementNS creates a detached element in the given namespace.
func (d *Document) CreateElementNS(namespace, tag string) *Node {
	return NewElementNS(namespace, tag)
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(text string) *Node { return NewText(text) }

// CreateComment creates a detached comment node.
func (d *Document) CreateComment(text string) *Node { return NewComment(text) }

// CreateFragment creates an empty fragment.
func (d *Document) CreateFragment() *Node { return NewFragment() }

// QuerySelector resolves a minimal selector against the tree:
// "#id" matches by id attribute, anything else matches by tag name.
// Returns the first match in document order, or nil.
func (d *Document) QuerySelector(selector string) *Node {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return nil
	}
	if strings.HasPrefix(selector, "#") {
		id := selector[1:]
		return d.find(d.root, func(n *Node) bool {
			v, ok := n.GetAttribute("id")
			return ok && v == id
		})
	}
	tag := strings.ToLower(selector)
	return d.find(d.root, func(n *Node) bool {
		return n.kind == KindElement && strings.ToLower(n.tag) == tag
	})
}

func (d *Document) find(n *Node, match func(*Node) bool) *Node {
	if n.kind == KindElement && match(n) {
		return n
	}
	for _, c := range n.children {
		if found := d.find(c, match); found != nil {
			return found
		}
	}
	return nil
}

// NodeByID returns the attached node with the given id, or nil.
func (d *Document) NodeByID(id uint64) *Node {
	return d.nodes[id]
}

// Observe registers a mutation observer. Observers are invoked
// synchronously for every mutation on an attached node.
func (d *Document) Observe(fn MutationObserver) {
	if fn != nil {
		d.observers = append(d.observers, fn)
	}
}

func (d *Document) emit(m Mutation) {
	for _, fn := range d.observers {
		fn(m)
	}
}

// register indexes a subtree when it becomes attached.
func (d *Document) register(n *Node) {
	d.nodes[n.id] = n
	for _, c := range n.children {
		d.register(c)
	}
}

// unregister drops a subtree from the index when it detaches.
func (d *Document) unregister(n *Node) {
	delete(d.nodes, n.id)
	for _, c := range n.children {
		d.unregister(c)
	}
}
