package el

import (
	"fmt"

	"github.com/glint-ui/glint/pkg/dom"
	"github.com/glint-ui/glint/pkg/element"
)

// Text creates a text node.
func Text(text string) *dom.Node {
	return dom.NewText(text)
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *dom.Node {
	return dom.NewText(fmt.Sprintf(format, args...))
}

// Fragment groups children without a wrapping element.
func Fragment(args ...any) *dom.Node {
	return element.Build(element.Fragment, nil, args...)
}

// Dyn marks a reactive child: fn is evaluated inside an effect and its
// region is rebuilt whenever a signal it reads is written.
func Dyn(fn func() any) func() any {
	return fn
}

// Await binds a deferred child computed on the microtask queue.
func Await(fn func() (any, error)) *element.Future {
	return element.Async(fn)
}

// If returns then when cond is true, otherwise nil (which binds to
// nothing).
func If(cond bool, then any) any {
	if cond {
		return then
	}
	return nil
}

// Map renders one child per item.
func Map[T any](items []T, render func(T) any) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = render(item)
	}
	return out
}
