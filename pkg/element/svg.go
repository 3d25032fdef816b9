package element

import "github.com/glint-ui/glint/pkg/dom"

// svgTags is the fixed set of tag names built in the SVG namespace.
// Any other tag name gets the HTML namespace.
var svgTags = map[string]bool{
	"svg":            true,
	"path":           true,
	"circle":         true,
	"rect":           true,
	"line":           true,
	"polygon":        true,
	"polyline":       true,
	"ellipse":        true,
	"g":              true,
	"text":           true,
	"defs":           true,
	"filter":         true,
	"mask":           true,
	"marker":         true,
	"pattern":        true,
	"linearGradient": true,
	"radialGradient": true,
	"stop":           true,
	"use":            true,
	"clipPath":       true,
	"textPath":       true,
	"tspan":          true,
	"foreignObject":  true,
}

// IsSVGTag reports whether tag is built in the SVG namespace.
func IsSVGTag(tag string) bool {
	return svgTags[tag]
}

// attrNamespaces maps colon prefixes of SVG attribute names to their
// namespace URIs. Unrecognized prefixes fall back to plain attributes.
var attrNamespaces = map[string]string{
	"xlink": dom.NamespaceXLink,
	"xml":   dom.NamespaceXML,
}
