// Package errors provides structured, coded errors for the Glint runtime.
//
// Every stable failure mode has a registered code (R*, B*, M*, A*, S*, C*)
// with a category, a default message, and a documentation link. Runtime
// packages create instances with New(code) and enrich them with
// WithDetail/Wrap before reporting them through the diagnostics sink.
package errors
