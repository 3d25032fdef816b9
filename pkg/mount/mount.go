package mount

import (
	"fmt"
	"log/slog"

	"github.com/glint-ui/glint/internal/errors"
	"github.com/glint-ui/glint/pkg/dom"
	"github.com/glint-ui/glint/pkg/element"
	"github.com/glint-ui/glint/pkg/reactive"
)

var logger = slog.Default()

// SetLogger replaces the package logger. Pass nil to restore the default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

// Options controls Render.
type Options struct {
	// Document resolves selector roots and is required when root is a
	// selector string.
	Document *dom.Document

	// Hydrate keeps the root's existing content instead of clearing it.
	Hydrate bool

	// BeforeRender runs after the root resolves, before the component.
	BeforeRender func()

	// Owner adopts every effect the component tree creates, so the
	// whole mount can be torn down with one Dispose. A nil Owner means
	// effects live for the life of the process.
	Owner *reactive.Owner
}

// Render invokes component and attaches its output to root.
//
// root is a *dom.Node or a selector string resolved against
// opts.Document. A selector that does not resolve aborts the render
// with a coded error — that is the one fatal path. A component that
// panics is contained and rendered as a visible error element instead,
// so the host page is never left blank.
//
// component is a *dom.Node (already-built content), a ComponentFunc, or
// a niladic function returning the content.
func Render(component any, root any, opts *Options) (*dom.Node, error) {
	if opts == nil {
		opts = &Options{}
	}

	target, err := resolveRoot(root, opts.Document)
	if err != nil {
		logger.Error("render aborted", "error", err)
		return nil, err
	}

	if !opts.Hydrate {
		target.RemoveAllChildren()
	}

	if opts.BeforeRender != nil {
		opts.BeforeRender()
	}

	// Binding runs inside the owner scope too: list/primitive output is
	// bound through the child binder, and any effects it creates must be
	// adopted by the mount owner just like the component's own.
	var node *dom.Node
	build := func() {
		result := invokeComponent(component)
		var ok bool
		if node, ok = result.(*dom.Node); !ok {
			// Lists and primitives are legal component output; bind them
			// under a fragment so a single node comes back to the caller.
			frag := dom.NewFragment()
			element.BindChild(frag, result)
			node = frag
		}
	}
	if opts.Owner != nil {
		reactive.WithOwner(opts.Owner, build)
	} else {
		build()
	}

	target.AppendChild(node)
	return node, nil
}

// resolveRoot turns the root argument into a concrete element.
func resolveRoot(root any, doc *dom.Document) (*dom.Node, error) {
	switch r := root.(type) {
	case *dom.Node:
		if r == nil {
			return nil, errors.New("M001")
		}
		return r, nil
	case string:
		if doc == nil {
			return nil, errors.New("M002").WithDetail("selector %q", r)
		}
		if node := doc.QuerySelector(r); node != nil {
			return node, nil
		}
		return nil, errors.New("M001").WithDetail("selector %q", r)
	default:
		return nil, errors.New("M003").WithDetail("got %T", root)
	}
}

// invokeComponent runs a component function, containing any panic and
// substituting a visible error element for its output.
func invokeComponent(component any) any {
	call := func(fn func() any) (out any) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("root component panic", "error", r)
				out = errorElement(r)
			}
		}()
		return fn()
	}

	switch c := component.(type) {
	case nil:
		return nil
	case *dom.Node:
		return c
	case element.ComponentFunc:
		return call(func() any { return c(nil) })
	case func(element.Props, ...any) *dom.Node:
		return call(func() any { return c(nil) })
	case func() *dom.Node:
		return call(func() any { return c() })
	case func() any:
		return call(c)
	default:
		return component
	}
}

// errorElement is the visible substitute for a failed root component.
func errorElement(reason any) *dom.Node {
	return element.Build("div",
		element.Props{
			"class": "glint-error",
			"style": map[string]string{"color": "red"},
		},
		fmt.Sprintf("glint error: %v", reason),
	)
}
