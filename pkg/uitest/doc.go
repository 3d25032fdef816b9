// Package uitest provides testing helpers for Glint components.
//
// A Harness owns a fresh document and a disposable owner, so each test
// mounts into isolation and tears everything down afterwards:
//
//	func TestCounter(t *testing.T) {
//	    h := uitest.NewHarness(t)
//	    h.Mount(Counter)
//	    h.Click("button")
//	    uitest.ExpectContains(t, h.Body(), "1")
//	}
//
// RenderToString and the Expect helpers assert on serialized HTML.
package uitest
