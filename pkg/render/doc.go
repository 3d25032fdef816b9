// Package render serializes live DOM trees to HTML.
//
// The server uses it twice: once to produce the initial page shell sent
// on session handshake, and again to encode nodes inserted by patches.
// Output is deterministic: attributes keep their insertion order and
// text is escaped.
package render
