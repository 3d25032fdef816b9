// Package dom implements the live DOM tree that the Glint runtime renders
// into and mutates in place.
//
// It is the runtime's host boundary: node creation, namespace-aware
// attributes, event listener registration and dispatch, the microtask
// queue, and mutation records for streaming changes to a remote client.
//
// The tree is single-threaded and cooperative, matching the runtime's
// execution model: all access to a document must happen from one goroutine
// at a time (the session server serializes access per session). Only the
// microtask queue is safe to call from other goroutines.
package dom
