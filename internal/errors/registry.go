package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Reactive errors (R001-R099)
	// ============================================

	"R001": {
		Category: CategoryReactive,
		Message:  "Effect re-entrancy depth exceeded",
		Detail:   "An effect wrote a signal it also reads, and the resulting synchronous re-runs exceeded the configured depth limit. Break the cycle or raise Config.MaxEffectDepth.",
		DocURL:   "https://glint-ui.dev/docs/errors/R001",
	},
	"R002": {
		Category: CategoryReactive,
		Message:  "Subscriber panicked during signal write",
		Detail:   "One of a signal's subscribers panicked while being notified. The remaining subscribers still ran.",
		DocURL:   "https://glint-ui.dev/docs/errors/R002",
	},
	"R003": {
		Category: CategoryReactive,
		Message:  "Effect body panicked",
		Detail:   "The effect function panicked. The failure was contained at the effect boundary; other effects are unaffected.",
		DocURL:   "https://glint-ui.dev/docs/errors/R003",
	},

	// ============================================
	// Build errors (B001-B099)
	// ============================================

	"B001": {
		Category: CategoryBuild,
		Message:  "Component function panicked",
		Detail:   "A component panicked while constructing its subtree. A diagnostic comment node was inserted in its place.",
		DocURL:   "https://glint-ui.dev/docs/errors/B001",
	},
	"B002": {
		Category: CategoryBuild,
		Message:  "Element construction failed",
		Detail:   "Building an element panicked. A diagnostic comment node was returned instead.",
		DocURL:   "https://glint-ui.dev/docs/errors/B002",
	},
	"B003": {
		Category: CategoryBuild,
		Message:  "Child binding failed",
		Detail:   "Binding a child value to its parent panicked. Sibling children were still bound.",
		DocURL:   "https://glint-ui.dev/docs/errors/B003",
	},

	// ============================================
	// Mount errors (M001-M099)
	// ============================================

	"M001": {
		Category: CategoryMount,
		Message:  "Mount root not found",
		Detail:   "The root selector did not resolve to an element in the document. Nothing was mounted.",
		DocURL:   "https://glint-ui.dev/docs/errors/M001",
	},
	"M002": {
		Category: CategoryMount,
		Message:  "Selector root requires a document",
		Detail:   "Render was given a selector string but no Document to resolve it against. Pass Options.Document or a *dom.Node root.",
		DocURL:   "https://glint-ui.dev/docs/errors/M002",
	},
	"M003": {
		Category: CategoryMount,
		Message:  "Unsupported root type",
		Detail:   "The mount root must be a *dom.Node or a selector string.",
		DocURL:   "https://glint-ui.dev/docs/errors/M003",
	},

	// ============================================
	// Async errors (A001-A099)
	// ============================================

	"A001": {
		Category: CategoryAsync,
		Message:  "Async child rejected",
		Detail:   "A future bound as a child completed with an error. The placeholder text was replaced with the error message.",
		DocURL:   "https://glint-ui.dev/docs/errors/A001",
	},

	// ============================================
	// Session errors (S001-S099)
	// ============================================

	"S001": {
		Category: CategorySession,
		Message:  "WebSocket upgrade failed",
		Detail:   "The HTTP connection could not be upgraded to a WebSocket.",
		DocURL:   "https://glint-ui.dev/docs/errors/S001",
	},
	"S002": {
		Category: CategorySession,
		Message:  "Event targets unknown node",
		Detail:   "A browser event referenced a node id that is no longer attached to the session document.",
		DocURL:   "https://glint-ui.dev/docs/errors/S002",
	},

	// ============================================
	// Config errors (C001-C099)
	// ============================================

	"C001": {
		Category: CategoryConfig,
		Message:  "Invalid glint.json",
		Detail:   "The project configuration file could not be parsed.",
		DocURL:   "https://glint-ui.dev/docs/errors/C001",
	},
}
