// HTML element constructors for the el package.
package el

import "github.com/glint-ui/glint/pkg/dom"

func Html(args ...any) *dom.Node     { return build("html", args...) }
func Head(args ...any) *dom.Node     { return build("head", args...) }
func Body(args ...any) *dom.Node     { return build("body", args...) }
func Title(args ...any) *dom.Node    { return build("title", args...) }
func Meta(args ...any) *dom.Node     { return build("meta", args...) }
func Header(args ...any) *dom.Node   { return build("header", args...) }
func Footer(args ...any) *dom.Node   { return build("footer", args...) }
func Main(args ...any) *dom.Node     { return build("main", args...) }
func Nav(args ...any) *dom.Node      { return build("nav", args...) }
func Section(args ...any) *dom.Node  { return build("section", args...) }
func Article(args ...any) *dom.Node  { return build("article", args...) }
func Aside(args ...any) *dom.Node    { return build("aside", args...) }
func H1(args ...any) *dom.Node       { return build("h1", args...) }
func H2(args ...any) *dom.Node       { return build("h2", args...) }
func H3(args ...any) *dom.Node       { return build("h3", args...) }
func H4(args ...any) *dom.Node       { return build("h4", args...) }
func Div(args ...any) *dom.Node      { return build("div", args...) }
func P(args ...any) *dom.Node        { return build("p", args...) }
func Span(args ...any) *dom.Node     { return build("span", args...) }
func Pre(args ...any) *dom.Node      { return build("pre", args...) }
func Code(args ...any) *dom.Node     { return build("code", args...) }
func Ul(args ...any) *dom.Node       { return build("ul", args...) }
func Ol(args ...any) *dom.Node       { return build("ol", args...) }
func Li(args ...any) *dom.Node       { return build("li", args...) }
func Table(args ...any) *dom.Node    { return build("table", args...) }
func Thead(args ...any) *dom.Node    { return build("thead", args...) }
func Tbody(args ...any) *dom.Node    { return build("tbody", args...) }
func Tr(args ...any) *dom.Node       { return build("tr", args...) }
func Th(args ...any) *dom.Node       { return build("th", args...) }
func Td(args ...any) *dom.Node       { return build("td", args...) }
func Form(args ...any) *dom.Node     { return build("form", args...) }
func Label(args ...any) *dom.Node    { return build("label", args...) }
func Input(args ...any) *dom.Node    { return build("input", args...) }
func Textarea(args ...any) *dom.Node { return build("textarea", args...) }
func Select(args ...any) *dom.Node   { return build("select", args...) }
func Option(args ...any) *dom.Node   { return build("option", args...) }
func Button(args ...any) *dom.Node   { return build("button", args...) }
func A(args ...any) *dom.Node        { return build("a", args...) }
func Img(args ...any) *dom.Node      { return build("img", args...) }
func Em(args ...any) *dom.Node       { return build("em", args...) }
func Strong(args ...any) *dom.Node   { return build("strong", args...) }
func Small(args ...any) *dom.Node    { return build("small", args...) }
func Br(args ...any) *dom.Node       { return build("br", args...) }
func Hr(args ...any) *dom.Node       { return build("hr", args...) }

// SVG constructors. These pick up the SVG namespace automatically.

func Svg(args ...any) *dom.Node      { return build("svg", args...) }
func Path(args ...any) *dom.Node     { return build("path", args...) }
func Circle(args ...any) *dom.Node   { return build("circle", args...) }
func Rect(args ...any) *dom.Node     { return build("rect", args...) }
func Line(args ...any) *dom.Node     { return build("line", args...) }
func Polygon(args ...any) *dom.Node  { return build("polygon", args...) }
func Polyline(args ...any) *dom.Node { return build("polyline", args...) }
func Ellipse(args ...any) *dom.Node  { return build("ellipse", args...) }
func G(args ...any) *dom.Node        { return build("g", args...) }
func SvgText(args ...any) *dom.Node  { return build("text", args...) }
func Use(args ...any) *dom.Node      { return build("use", args...) }
