// Package element turns declarative Build calls into live DOM nodes.
//
// Build accepts a tag (string, component function, Fragment marker, or
// nil), a Props map, and any number of children, and produces one node.
// It never panics outward: construction failures surface as diagnostic
// comment nodes so a single broken component cannot take down its
// siblings.
//
// Children are bound through a five-shape dispatch resolved once at bind
// time: nothing, a node, a list, a reactive function, or a future.
// A function child gets a stable empty-text anchor and an effect that
// replaces the anchored region on every dependency write.
package element
