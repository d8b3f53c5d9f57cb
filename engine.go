package weave

import (
	"errors"
	"log/slog"
)

// Builder configures an Engine before initialization.
// Use NewBuilder() to create a builder and chain configuration methods.
type Builder struct {
	cfg      *Config
	log      *slog.Logger
	loadouts LoadoutSource
	modules  []Module
}

// NewBuilder creates a new engine builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Config sets the balancing configuration. The defaults are used otherwise.
func (b *Builder) Config(cfg Config) *Builder {
	b.cfg = &cfg
	return b
}

// Logger sets the logger shared by the registry, executor and bridge.
func (b *Builder) Logger(log *slog.Logger) *Builder {
	b.log = log
	return b
}

// Loadouts sets the source of equipped loadouts used on impact.
func (b *Builder) Loadouts(src LoadoutSource) *Builder {
	b.loadouts = src
	return b
}

// Module adds modules registered after the built-in ones.
//
// Example:
//
//	builder.Module(&Frostbolt{}, &Homing{})
func (b *Builder) Module(mods ...Module) *Builder {
	b.modules = append(b.modules, mods...)
	return b
}

// Init registers the built-in and added modules, seals the registry and
// returns the engine. Duplicate identifiers are logged and skipped. Init
// panics on invalid modules, which are a programming error.
func (b *Builder) Init() *Engine {
	log := b.log
	if log == nil {
		log = slog.Default()
	}
	cfg := DefaultConfig()
	if b.cfg != nil {
		cfg = *b.cfg
	}
	cfg.normalize()

	reg := NewRegistry(log)
	for _, m := range append(BuiltinModules(), b.modules...) {
		if err := reg.Register(m); errors.Is(err, ErrInvalidModule) {
			panic("weave: failed to register module: " + err.Error())
		}
	}
	reg.Seal()

	e := &Engine{
		reg:  reg,
		cfg:  &cfg,
		exec: NewExecutor(log),
		log:  log,
	}
	e.bridge = NewBridge(reg, e.cfg, b.loadouts, log)

	log.Info("weave: engine initialized", "version", Version, "modules", reg.Len())
	return e
}

// Engine owns the registry, configuration, executor and impact bridge.
// It is safe for concurrent use once Init returned.
type Engine struct {
	reg    *Registry
	cfg    *Config
	exec   *Executor
	bridge *Bridge
	log    *slog.Logger
}

// Registry returns the sealed module registry.
func (e *Engine) Registry() *Registry {
	return e.reg
}

// Config returns the balancing configuration. It must not be modified.
func (e *Engine) Config() *Config {
	return e.cfg
}

// Logger returns the engine logger.
func (e *Engine) Logger() *slog.Logger {
	return e.log
}

// Cast resolves l and runs it as a pipeline for actor a in world w.
func (e *Engine) Cast(w World, a Actor, src Source, l Loadout) Result {
	ctx := e.NewContext(w, a, src, l)
	return e.exec.Run(l.Resolve(e.reg), ctx)
}

// NewContext creates a top-level context bound to the engine configuration.
func (e *Engine) NewContext(w World, a Actor, src Source, l Loadout) *Context {
	return NewContext(w, a, src).WithConfig(e.cfg).WithLoadout(l)
}

// Run executes mods against ctx.
func (e *Engine) Run(mods []Module, ctx *Context) Result {
	if ctx.config == nil {
		ctx.config = e.cfg
	}
	return e.exec.Run(mods, ctx)
}

// OnImpact forwards evt to the impact bridge.
func (e *Engine) OnImpact(evt ImpactEvent) ImpactResult {
	return e.bridge.OnImpact(evt)
}

// Estimate returns the summed stats of the modules of l.
func (e *Engine) Estimate(l Loadout) Stats {
	return Estimate(l.Resolve(e.reg), e.cfg)
}
