package reactive

import "errors"

// Sentinel errors reported by the runtime.
var (
	// ErrEffectDepth is reported when an effect's synchronous re-entrant
	// runs exceed Config.MaxEffectDepth.
	ErrEffectDepth = errors.New("reactive: effect re-entrancy depth exceeded")
)
