package reactive

import "sync"

// DefaultMaxEffectDepth bounds synchronous effect re-entrancy: an effect
// that writes a signal it also reads re-runs itself immediately, and
// without a bound that recursion would only stop at stack overflow.
const DefaultMaxEffectDepth = 64

// Hooks are instrumentation callbacks invoked by the runtime.
// The session server wires these to Prometheus counters.
type Hooks struct {
	// OnSignalWrite runs on every Set/Update, before fan-out.
	OnSignalWrite func()

	// OnEffectRun runs every time an effect body starts.
	OnEffectRun func()

	// OnEffectPanic runs when an effect body panics, with the recovered
	// value. The panic is already contained at the effect boundary.
	OnEffectPanic func(recovered any)
}

// Config controls runtime-wide reactive behavior.
type Config struct {
	// MaxEffectDepth is the re-entrancy limit for a single effect.
	// Zero means DefaultMaxEffectDepth.
	MaxEffectDepth int

	// ResetDependenciesOnRun unsubscribes an effect from all of its
	// sources before each run, so only the reads of the latest run are
	// tracked. Off by default: the reference behavior lets
	// subscriptions accumulate across runs.
	ResetDependenciesOnRun bool

	// Hooks are optional instrumentation callbacks.
	Hooks Hooks
}

var (
	configMu sync.RWMutex
	config   = Config{MaxEffectDepth: DefaultMaxEffectDepth}
)

// Configure replaces the runtime configuration.
func Configure(cfg Config) {
	if cfg.MaxEffectDepth <= 0 {
		cfg.MaxEffectDepth = DefaultMaxEffectDepth
	}
	configMu.Lock()
	config = cfg
	configMu.Unlock()
}

// CurrentConfig returns a copy of the runtime configuration.
func CurrentConfig() Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return config
}

func hookSignalWrite() {
	configMu.RLock()
	fn := config.Hooks.OnSignalWrite
	configMu.RUnlock()
	if fn != nil {
		fn()
	}
}

func hookEffectRun() {
	configMu.RLock()
	fn := config.Hooks.OnEffectRun
	configMu.RUnlock()
	if fn != nil {
		fn()
	}
}

func hookEffectPanic(recovered any) {
	configMu.RLock()
	fn := config.Hooks.OnEffectPanic
	configMu.RUnlock()
	if fn != nil {
		fn(recovered)
	}
}

func maxEffectDepth() int {
	configMu.RLock()
	defer configMu.RUnlock()
	return config.MaxEffectDepth
}

func resetDependenciesOnRun() bool {
	configMu.RLock()
	defer configMu.RUnlock()
	return config.ResetDependenciesOnRun
}
