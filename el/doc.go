// Package el provides the UI DSL for Glint.
//
// It wraps pkg/element with HTML element constructors, attribute
// helpers, and event helpers, so component code reads as markup:
//
//	import (
//	    "github.com/glint-ui/glint/pkg/reactive"
//	    . "github.com/glint-ui/glint/el"
//	)
//
//	count := reactive.NewSignal(0)
//	Button(
//	    OnClick(func(*dom.Event) { count.Update(func(c int) int { return c + 1 }) }),
//	    Dyn(func() any { return count.Get() }),
//	)
package el
