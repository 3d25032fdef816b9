package dom

import "strings"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
	KindComment              // Comment node (diagnostic nodes are comments)
	KindFragment             // Grouping without wrapper; empties on insert
	KindDocument             // Document root
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	case KindFragment:
		return "Fragment"
	case KindDocument:
		return "Document"
	default:
		return "Unknown"
	}
}

// Namespace URIs understood by the tree.
const (
	NamespaceHTML  = "http://www.w3.org/1999/xhtml"
	NamespaceSVG   = "http://www.w3.org/2000/svg"
	NamespaceXLink = "http://www.w3.org/1999/xlink"
	NamespaceXML   = "http://www.w3.org/XML/1998/namespace"
)

// Attr is a single attribute. Namespace is empty for plain attributes.
type Attr struct {
	Namespace string
	Key       string
	Value     string
}

// Node is a live DOM node. Unlike an immutable virtual node, a Node keeps
// parent/child links and is mutated in place by the runtime.
type Node struct {
	kind      Kind
	id        uint64
	tag       string
	namespace string

	parent   *Node
	children []*Node

	// text holds the content of KindText and KindComment nodes.
	text string

	// attrs are kept in insertion order for deterministic serialization.
	attrs []Attr

	// value is the live form-control value, distinct from the "value"
	// attribute: it reflects post-construction mutation.
	value    string
	hasValue bool

	// innerHTML, when set, overrides children with raw markup.
	innerHTML    string
	hasInnerHTML bool

	listeners map[string][]EventListener

	// doc is set only on the KindDocument node.
	doc *Document
}

// NewElement creates a detached element in the HTML namespace.
func NewElement(tag string) *Node {
	return NewElementNS(NamespaceHTML, tag)
}

// NewElementNS creates a detached element in the given namespace.
func NewElementNS(namespace, tag string) *Node {
	return &Node{
		kind:      KindElement,
		id:        nextID(),
		tag:       tag,
		namespace: namespace,
	}
}

// NewText creates a detached text node.
func NewText(text string) *Node {
	return &Node{kind: KindText, id: nextID(), text: text}
}

// NewComment creates a detached comment node.
func NewComment(text string) *Node {
	return &Node{kind: KindComment, id: nextID(), text: text}
}

// NewFragment creates an empty fragment. Inserting a fragment into the
// tree moves its children and leaves the fragment empty.
func NewFragment() *Node {
	return &Node{kind: KindFragment, id: nextID()}
}

// Kind returns the node type.
func (n *Node) Kind() Kind { return n.kind }

// ID returns the unique identifier for this node.
func (n *Node) ID() uint64 { return n.id }

// Tag returns the element tag name. Empty for non-elements.
func (n *Node) Tag() string { return n.tag }

// Namespace returns the element namespace URI.
func (n *Node) Namespace() string { return n.namespace }

// Parent returns the parent node, or nil if detached.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// ChildCount returns the number of children without copying.
func (n *Node) ChildCount() int { return len(n.children) }

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// LastChild returns the last child, or nil.
func (n *Node) LastChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// NextSibling returns the node immediately following this one within its
// parent, or nil.
func (n *Node) NextSibling() *Node {
	if n.parent == nil {
		return nil
	}
	siblings := n.parent.children
	for i, c := range siblings {
		if c == n {
			if i+1 < len(siblings) {
				return siblings[i+1]
			}
			return nil
		}
	}
	return nil
}

// IndexOf returns the index of child within this node, or -1.
func (n *Node) IndexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// AppendChild appends child as the last child of n.
// Appending an attached node moves it; appending a fragment moves the
// fragment's children and leaves the fragment empty.
func (n *Node) AppendChild(child *Node) {
	n.InsertBefore(child, nil)
}

// InsertBefore inserts child before ref. A nil ref appends.
func (n *Node) InsertBefore(child, ref *Node) {
	if child == nil || child == n {
		return
	}

	if child.kind == KindFragment {
		// Move the fragment's children one by one.
		for len(child.children) > 0 {
			n.InsertBefore(child.children[0], ref)
		}
		return
	}

	if child.parent != nil {
		child.parent.RemoveChild(child)
	}

	idx := len(n.children)
	if ref != nil {
		if i := n.IndexOf(ref); i >= 0 {
			idx = i
		}
	}

	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = child
	child.parent = n

	if doc := n.ownerDocument(); doc != nil {
		doc.register(child)
		doc.emit(Mutation{Op: OpInsertNode, Node: child, Parent: n, Index: idx})
	}
}

// RemoveChild detaches child from n. Unknown children are ignored.
func (n *Node) RemoveChild(child *Node) {
	idx := n.IndexOf(child)
	if idx < 0 {
		return
	}

	doc := n.ownerDocument()

	n.children = append(n.children[:idx], n.children[idx+1:]...)
	child.parent = nil

	if doc != nil {
		doc.emit(Mutation{Op: OpRemoveNode, Node: child, Parent: n, Index: idx})
		doc.unregister(child)
	}
}

// Remove detaches n from its parent, if any.
func (n *Node) Remove() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// RemoveAllChildren detaches every child of n.
func (n *Node) RemoveAllChildren() {
	for len(n.children) > 0 {
		n.RemoveChild(n.children[len(n.children)-1])
	}
}

// Text returns the content of a text or comment node.
func (n *Node) Text() string { return n.text }

// SetText replaces the content of a text or comment node.
func (n *Node) SetText(text string) {
	n.text = text
	if doc := n.ownerDocument(); doc != nil {
		doc.emit(Mutation{Op: OpSetText, Node: n, Value: text})
	}
}

// TextContent returns the concatenated text of this node's subtree.
func (n *Node) TextContent() string {
	switch n.kind {
	case KindText:
		return n.text
	case KindComment:
		return ""
	}
	var b strings.Builder
	for _, c := range n.children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// Attrs returns a copy of the attribute list in insertion order.
func (n *Node) Attrs() []Attr {
	out := make([]Attr, len(n.attrs))
	copy(out, n.attrs)
	return out
}

// GetAttribute returns the value of a plain attribute and whether it is set.
func (n *Node) GetAttribute(key string) (string, bool) {
	for _, a := range n.attrs {
		if a.Namespace == "" && a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttribute reports whether a plain attribute is present.
func (n *Node) HasAttribute(key string) bool {
	_, ok := n.GetAttribute(key)
	return ok
}

// SetAttribute sets a plain attribute.
func (n *Node) SetAttribute(key, value string) {
	n.setAttr(Attr{Key: key, Value: value})
}

// SetAttributeNS sets a namespace-qualified attribute.
func (n *Node) SetAttributeNS(namespace, key, value string) {
	n.setAttr(Attr{Namespace: namespace, Key: key, Value: value})
}

func (n *Node) setAttr(attr Attr) {
	for i, a := range n.attrs {
		if a.Namespace == attr.Namespace && a.Key == attr.Key {
			n.attrs[i].Value = attr.Value
			n.emitAttr(attr)
			return
		}
	}
	n.attrs = append(n.attrs, attr)
	n.emitAttr(attr)
}

func (n *Node) emitAttr(attr Attr) {
	if doc := n.ownerDocument(); doc != nil {
		doc.emit(Mutation{Op: OpSetAttr, Node: n, Key: attr.Key, Value: attr.Value})
	}
}

// RemoveAttribute removes a plain attribute if present.
func (n *Node) RemoveAttribute(key string) {
	for i, a := range n.attrs {
		if a.Namespace == "" && a.Key == key {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			if doc := n.ownerDocument(); doc != nil {
				doc.emit(Mutation{Op: OpRemoveAttr, Node: n, Key: key})
			}
			return
		}
	}
}

// Value returns the live form-control value.
func (n *Node) Value() string { return n.value }

// HasValue reports whether the live value has ever been set.
func (n *Node) HasValue() bool { return n.hasValue }

// SetValue sets the live form-control value. This does not touch the
// "value" attribute, mirroring DOM behavior where the property reflects
// runtime state.
func (n *Node) SetValue(value string) {
	n.value = value
	n.hasValue = true
	if doc := n.ownerDocument(); doc != nil {
		doc.emit(Mutation{Op: OpSetValue, Node: n, Value: value})
	}
}

// InnerHTML returns the raw markup override, if set.
func (n *Node) InnerHTML() (string, bool) {
	return n.innerHTML, n.hasInnerHTML
}

// SetInnerHTML replaces this element's content with raw markup.
// The markup is not parsed or sanitized; the caller is responsible for it.
func (n *Node) SetInnerHTML(html string) {
	n.RemoveAllChildren()
	n.innerHTML = html
	n.hasInnerHTML = true
	if doc := n.ownerDocument(); doc != nil {
		doc.emit(Mutation{Op: OpSetHTML, Node: n, Value: html})
	}
}

// ownerDocument walks up the tree to the document node, if attached.
func (n *Node) ownerDocument() *Document {
	for p := n; p != nil; p = p.parent {
		if p.kind == KindDocument {
			return p.doc
		}
	}
	return nil
}

// IsAttached reports whether this node is part of a document tree.
func (n *Node) IsAttached() bool {
	return n.ownerDocument() != nil
}
