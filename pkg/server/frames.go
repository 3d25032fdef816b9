package server

import (
	"encoding/json"

	"github.com/glint-ui/glint/pkg/dom"
	"github.com/glint-ui/glint/pkg/render"
)

// Frame types on the wire.
const (
	frameInit  = "init"
	framePatch = "patch"
	frameEvent = "event"
)

// eventFrame is a browser event forwarded by the thin client.
type eventFrame struct {
	Type    string `json:"type"`
	Node    uint64 `json:"node"`
	Event   string `json:"event"`
	Value   string `json:"value,omitempty"`
	Checked bool   `json:"checked,omitempty"`
	Key     string `json:"key,omitempty"`
}

// initFrame carries the initial rendering of the session tree. Root is
// the body's node id, which the client maps onto its mount container.
type initFrame struct {
	Type string `json:"type"`
	HTML string `json:"html"`
	Root uint64 `json:"root"`
}

// patchFrame carries the mutations produced by one event dispatch.
type patchFrame struct {
	Type string    `json:"type"`
	Ops  []patchOp `json:"ops"`
}

// patchOp is one DOM update in wire form.
//
// Attribute, value, and raw-HTML changes target an element directly by
// id. Structural and text changes instead sync the nearest ancestor
// element: text nodes (including empty anchors) are not addressable in
// serialized HTML, so the whole region is re-sent. That mirrors the
// runtime's replace-not-diff philosophy.
type patchOp struct {
	Op    string `json:"op"`
	Node  uint64 `json:"node"`
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
	HTML  string `json:"html,omitempty"`
}

const (
	opSetAttr    = "set-attr"
	opRemoveAttr = "remove-attr"
	opSetValue   = "set-value"
	opSetHTML    = "set-html"
	opSync       = "sync"
)

// patchEncoder turns buffered mutations into wire ops, coalescing
// repeated syncs of the same element within one flush.
type patchEncoder struct {
	renderer *render.Renderer
	ops      []patchOp
	synced   map[uint64]bool
}

func newPatchEncoder(renderer *render.Renderer) *patchEncoder {
	return &patchEncoder{
		renderer: renderer,
		synced:   make(map[uint64]bool),
	}
}

func (e *patchEncoder) add(m dom.Mutation) error {
	switch m.Op {
	case dom.OpSetAttr:
		e.ops = append(e.ops, patchOp{Op: opSetAttr, Node: m.Node.ID(), Key: m.Key, Value: m.Value})
	case dom.OpRemoveAttr:
		e.ops = append(e.ops, patchOp{Op: opRemoveAttr, Node: m.Node.ID(), Key: m.Key})
	case dom.OpSetValue:
		e.ops = append(e.ops, patchOp{Op: opSetValue, Node: m.Node.ID(), Value: m.Value})
	case dom.OpSetHTML:
		e.ops = append(e.ops, patchOp{Op: opSetHTML, Node: m.Node.ID(), Value: m.Value})
	case dom.OpInsertNode, dom.OpRemoveNode, dom.OpSetText:
		return e.sync(m)
	}
	return nil
}

// sync re-serializes the children of the nearest addressable element
// and sends them as one region update.
func (e *patchEncoder) sync(m dom.Mutation) error {
	el := nearestElement(m)
	if el == nil {
		return nil
	}
	if e.synced[el.ID()] {
		return nil
	}

	html, err := e.renderer.RenderChildrenToString(el)
	if err != nil {
		return err
	}
	e.synced[el.ID()] = true
	e.ops = append(e.ops, patchOp{Op: opSync, Node: el.ID(), HTML: html})
	return nil
}

// nearestElement walks to the element owning the mutated region.
func nearestElement(m dom.Mutation) *dom.Node {
	start := m.Parent
	if start == nil && m.Node != nil {
		start = m.Node.Parent()
	}
	for n := start; n != nil; n = n.Parent() {
		if n.Kind() == dom.KindElement {
			return n
		}
	}
	return nil
}

func marshalFrame(v any) ([]byte, error) {
	return json.Marshal(v)
}

func unmarshalFrame(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
