package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/glint-ui/glint/pkg/dom"
)

// Config configures the HTML renderer.
type Config struct {
	// Pretty enables pretty-printed output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty
	// mode. Defaults to two spaces if not specified.
	Indent string

	// IncludeIDs emits each element's node id as a data-glint-id
	// attribute, so the client can address nodes in event frames.
	IncludeIDs bool
}

// Renderer serializes dom trees to HTML.
type Renderer struct {
	config Config
}

// NewRenderer creates a Renderer with the given configuration.
func NewRenderer(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a node tree to an HTML string.
func (r *Renderer) RenderToString(node *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a node tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *dom.Node) error {
	return r.renderNode(w, node, 0)
}

// RenderChildrenToString renders only a node's children, without the
// node's own tags. The server uses it to resync a mutated region.
func (r *Renderer) RenderChildrenToString(node *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.renderChildren(&buf, node, 0); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// renderNode dispatches on node kind.
func (r *Renderer) renderNode(w io.Writer, node *dom.Node, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind() {
	case dom.KindElement:
		return r.renderElement(w, node, depth)
	case dom.KindText:
		return r.renderText(w, node)
	case dom.KindComment:
		return r.renderComment(w, node)
	case dom.KindFragment, dom.KindDocument:
		return r.renderChildren(w, node, depth)
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind())
	}
}

// renderElement renders an element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *dom.Node, depth int) error {
	tag := node.Tag()

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}

	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	if r.config.IncludeIDs {
		if _, err := fmt.Fprintf(w, ` data-glint-id="%d"`, node.ID()); err != nil {
			return err
		}
	}

	// Void elements have no closing tag and no children.
	if isVoidElement(tag) {
		if _, err := w.Write([]byte{'>'}); err != nil {
			return err
		}
		if r.config.Pretty {
			w.Write([]byte{'\n'})
		}
		return nil
	}

	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	if html, ok := node.InnerHTML(); ok {
		// Raw markup passes through unescaped.
		if _, err := w.Write([]byte(html)); err != nil {
			return err
		}
	} else {
		hasBlockChildren := node.ChildCount() > 0 && !isInlineElement(tag)
		if r.config.Pretty && hasBlockChildren {
			w.Write([]byte{'\n'})
		}

		for _, child := range node.Children() {
			if err := r.renderNode(w, child, depth+1); err != nil {
				return err
			}
		}

		if r.config.Pretty && hasBlockChildren {
			r.writeIndent(w, depth)
		}
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		w.Write([]byte{'\n'})
	}

	return nil
}

// renderText renders a text node with HTML escaping.
func (r *Renderer) renderText(w io.Writer, node *dom.Node) error {
	_, err := w.Write([]byte(escapeHTML(node.Text())))
	return err
}

// renderComment renders a comment node. Comment text never contains the
// closing sequence; escapeComment strips it.
func (r *Renderer) renderComment(w io.Writer, node *dom.Node) error {
	_, err := fmt.Fprintf(w, "<!--%s-->", escapeComment(node.Text()))
	return err
}

func (r *Renderer) renderChildren(w io.Writer, node *dom.Node, depth int) error {
	for _, child := range node.Children() {
		if err := r.renderNode(w, child, depth); err != nil {
			return err
		}
	}
	return nil
}

// renderAttributes renders attributes in insertion order, followed by
// the live form-control value when one has been set.
func (r *Renderer) renderAttributes(w io.Writer, node *dom.Node) error {
	for _, attr := range node.Attrs() {
		// Boolean attributes with an empty value render bare.
		if attr.Value == "" && isBooleanAttr(attr.Key) {
			if _, err := fmt.Fprintf(w, " %s", attr.Key); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, attr.Key, escapeAttr(attr.Value)); err != nil {
			return err
		}
	}

	if node.HasValue() {
		if _, err := fmt.Fprintf(w, ` value="%s"`, escapeAttr(node.Value())); err != nil {
			return err
		}
	}

	return nil
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		w.Write([]byte(r.config.Indent))
	}
}
