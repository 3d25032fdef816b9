// Package server hosts Glint applications over HTTP and WebSocket.
//
// Each WebSocket connection gets a Session: its own Document, a root
// Owner, and a mount of the application's root component. Browser
// events arrive as JSON frames, are dispatched into the live tree, and
// the resulting DOM mutations stream back as patch frames. All reactive
// work for a session runs on that session's read loop, preserving the
// runtime's single-threaded execution model.
package server
