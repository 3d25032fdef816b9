// Package mount is the runtime entry point: Render invokes a root
// component and attaches its output to a container node, and OnMount /
// OnUnmount provide lifecycle hooks built on the reactive core.
package mount
