// Attribute helpers for the el package.
package el

import (
	"fmt"
	"strings"
)

func ID(id string) Attr {
	return Attr{Key: "id", Value: id}
}
func Class(classes ...string) Attr {
	return Attr{Key: "class", Value: strings.Join(classes, " ")}
}
func StyleAttr(style string) Attr {
	return Attr{Key: "style", Value: style}
}
func Style(decls map[string]string) Attr {
	return Attr{Key: "style", Value: decls}
}
func Data(key, value string) Attr {
	return Attr{Key: "data-" + key, Value: value}
}
func Role(role string) Attr {
	return Attr{Key: "role", Value: role}
}
func AriaLabel(label string) Attr {
	return Attr{Key: "aria-label", Value: label}
}
func AriaHidden(hidden bool) Attr {
	return Attr{Key: "aria-hidden", Value: fmt.Sprint(hidden)}
}
func TabIndex(index int) Attr {
	return Attr{Key: "tabindex", Value: index}
}
func Type(t string) Attr {
	return Attr{Key: "type", Value: t}
}
func Name(name string) Attr {
	return Attr{Key: "name", Value: name}
}
func Value(value string) Attr {
	return Attr{Key: "value", Value: value}
}
func Placeholder(text string) Attr {
	return Attr{Key: "placeholder", Value: text}
}
func Href(url string) Attr {
	return Attr{Key: "href", Value: url}
}
func Src(url string) Attr {
	return Attr{Key: "src", Value: url}
}
func Alt(text string) Attr {
	return Attr{Key: "alt", Value: text}
}
func For(id string) Attr {
	return Attr{Key: "for", Value: id}
}
func TitleAttr(text string) Attr {
	return Attr{Key: "title", Value: text}
}
func Disabled(disabled bool) Attr {
	return Attr{Key: "disabled", Value: disabled}
}
func Checked(checked bool) Attr {
	return Attr{Key: "checked", Value: checked}
}
func ReadOnly(readonly bool) Attr {
	return Attr{Key: "readonly", Value: readonly}
}
func Required(required bool) Attr {
	return Attr{Key: "required", Value: required}
}
func Ref(ref any) Attr {
	return Attr{Key: "ref", Value: ref}
}
func XlinkHref(url string) Attr {
	return Attr{Key: "xlink:href", Value: url}
}
