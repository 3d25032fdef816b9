// Event helpers for the el package.
package el

import "github.com/glint-ui/glint/pkg/dom"

func on(name string, handler func(*dom.Event)) Attr {
	return Attr{Key: "on" + name, Value: handler}
}

func OnClick(handler func(*dom.Event)) Attr    { return on("click", handler) }
func OnDblClick(handler func(*dom.Event)) Attr { return on("dblclick", handler) }
func OnInput(handler func(*dom.Event)) Attr    { return on("input", handler) }
func OnChange(handler func(*dom.Event)) Attr   { return on("change", handler) }
func OnSubmit(handler func(*dom.Event)) Attr   { return on("submit", handler) }
func OnKeyDown(handler func(*dom.Event)) Attr  { return on("keydown", handler) }
func OnKeyUp(handler func(*dom.Event)) Attr    { return on("keyup", handler) }
func OnFocus(handler func(*dom.Event)) Attr    { return on("focus", handler) }
func OnBlur(handler func(*dom.Event)) Attr     { return on("blur", handler) }
func OnMouseEnter(handler func(*dom.Event)) Attr {
	return on("mouseenter", handler)
}
func OnMouseLeave(handler func(*dom.Event)) Attr {
	return on("mouseleave", handler)
}
