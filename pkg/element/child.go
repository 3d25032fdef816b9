package element

import (
	"fmt"
	"reflect"

	"github.com/glint-ui/glint/pkg/dom"
	"github.com/glint-ui/glint/pkg/reactive"
)

// childKind classifies a child value. Classification happens once at
// bind time; reruns of a reactive child re-classify only the function's
// result, never the child itself.
type childKind uint8

const (
	childNothing childKind = iota // nil: ignored
	childNode                     // *dom.Node: appended as-is
	childList                     // slice: flattened, each entry bound
	childFunc                     // niladic function: reactive region
	childFuture                   // *Future: resolved via microtask
	childText                     // anything else: stringified text node
)

func classifyChild(child any) childKind {
	switch child.(type) {
	case nil:
		return childNothing
	case *dom.Node:
		return childNode
	case []any, []*dom.Node, []string:
		return childList
	case func() any, func() *dom.Node, func() string:
		return childFunc
	case *Future:
		return childFuture
	}
	// Stringifying a function renders a pointer, never content; any
	// other function shape is still classified as reactive and either
	// adapted or rejected with a diagnostic when bound.
	if reflect.TypeOf(child).Kind() == reflect.Func {
		return childFunc
	}
	return childText
}

// reactiveFunc adapts a reactive child to the canonical func() any
// shape. Unsupported function signatures yield nil.
func reactiveFunc(child any) func() any {
	switch fn := child.(type) {
	case func() any:
		return fn
	case func() *dom.Node:
		return func() any { return fn() }
	case func() string:
		return func() any { return fn() }
	default:
		return nil
	}
}

// BindChild attaches one child value to parent. A panic during binding
// is reported and contained so sibling children still bind.
func BindChild(parent *dom.Node, child any) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("child binding panic",
				"code", "B003", "parent", parent.Tag(), "error", r)
		}
	}()

	switch classifyChild(child) {
	case childNothing:

	case childNode:
		parent.AppendChild(child.(*dom.Node))

	case childList:
		for _, item := range flattenList(child) {
			BindChild(parent, item)
		}

	case childFunc:
		fn := reactiveFunc(child)
		if fn == nil {
			logger.Error("unsupported function child signature",
				"code", "B003", "type", fmt.Sprintf("%T", child))
			return
		}
		bindReactiveChild(parent, fn)

	case childFuture:
		bindFutureChild(parent, child.(*Future))

	case childText:
		parent.AppendChild(dom.NewText(stringify(child)))
	}
}

func flattenList(child any) []any {
	switch list := child.(type) {
	case []any:
		return list
	case []*dom.Node:
		out := make([]any, len(list))
		for i, n := range list {
			out[i] = n
		}
		return out
	case []string:
		out := make([]any, len(list))
		for i, s := range list {
			out[i] = s
		}
		return out
	default:
		return nil
	}
}

// dynamicRegion is the live span owned by one reactive child: a stable
// empty-text anchor plus whatever nodes the last run inserted after it.
// The parent is resolved from the anchor on every update, not captured
// at bind time: a region bound inside a fragment moves with the anchor
// when the fragment's children are re-parented on insert.
type dynamicRegion struct {
	anchor *dom.Node
	nodes  []*dom.Node
}

// bindReactiveChild inserts the anchor at the current append position
// and registers an effect that rebuilds the anchored region on every
// dependency write. The region is replaced wholesale, never diffed.
func bindReactiveChild(parent *dom.Node, fn func() any) {
	region := &dynamicRegion{
		anchor: dom.NewText(""),
	}
	parent.AppendChild(region.anchor)

	reactive.CreateEffect(func() reactive.Cleanup {
		region.update(fn())
		return nil
	})
}

// update replaces the region's content with a new result. Exactly the
// nodes inserted by the previous run are removed; siblings outside the
// region are never touched.
func (r *dynamicRegion) update(result any) {
	for _, n := range r.nodes {
		n.Remove()
	}
	r.nodes = r.nodes[:0]

	switch v := result.(type) {
	case nil:
		r.anchor.SetText("")

	case *dom.Node:
		r.anchor.SetText("")
		r.insert(v)

	case []any, []*dom.Node, []string:
		r.anchor.SetText("")
		frag := dom.NewFragment()
		for _, item := range flattenList(v) {
			BindChild(frag, item)
		}
		r.insert(frag)

	default:
		// Plain values live in the anchor's own text content, so a
		// counter rerendering N times still occupies a single node.
		r.anchor.SetText(stringify(result))
	}
}

// insert places node immediately after the anchor (before the next
// static sibling) and records the inserted nodes for the next rebuild.
// A detached anchor has nowhere to insert; the update is skipped.
func (r *dynamicRegion) insert(node *dom.Node) {
	parent := r.anchor.Parent()
	if parent == nil {
		return
	}
	ref := r.anchor.NextSibling()
	if node.Kind() == dom.KindFragment {
		inserted := node.Children()
		parent.InsertBefore(node, ref)
		r.nodes = append(r.nodes, inserted...)
		return
	}
	parent.InsertBefore(node, ref)
	r.nodes = append(r.nodes, node)
}

// bindFutureChild inserts a placeholder and defers resolution to the
// microtask queue. On success the placeholder is replaced with the
// resolved node or its stringified text; on failure the placeholder's
// text becomes the error message. No retry, no cancellation.
func bindFutureChild(parent *dom.Node, future *Future) {
	placeholder := dom.NewText("")
	parent.AppendChild(placeholder)

	future.deliver(func(result any, err error) {
		if err != nil {
			logger.Error("async child rejected",
				"code", "A001", "error", err)
			placeholder.SetText(fmt.Sprintf("glint error: %v", err))
			return
		}
		if node, ok := result.(*dom.Node); ok {
			if p := placeholder.Parent(); p != nil {
				p.InsertBefore(node, placeholder)
			}
			placeholder.Remove()
			return
		}
		placeholder.SetText(stringify(result))
	})
}
