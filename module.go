package weave

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Module is a unit of spell behaviour.
//
// Modules are constructed once, registered in a Registry and never mutated
// afterwards. Any per-cast state belongs in the Context.
type Module interface {
	// ID returns the globally unique identifier.
	ID() ID
	// DisplayKey returns the translation key of the display name.
	DisplayKey() string
	// Tags returns the capability tags.
	Tags() Tags
	// Kind returns Producer or Modifier.
	Kind() Kind
	// Stats returns the base cost, cooldown and complexity under cfg.
	Stats(cfg *Config) Stats
	// Execute runs the module. For a Producer this performs the effect; for a
	// Modifier it is a bookkeeping step on the shared store.
	Execute(ctx *Context) error
}

// Stats holds the balancing attributes of a module.
type Stats struct {
	// Cost is the mana consumed by the module.
	Cost int
	// Cooldown is measured in ticks (1 second = 20 ticks).
	Cooldown int
	// Complexity contributes to the complexity of the whole spell.
	Complexity float64
}

// Add returns the component-wise sum of s and o.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Cost:       s.Cost + o.Cost,
		Cooldown:   s.Cooldown + o.Cooldown,
		Complexity: s.Complexity + o.Complexity,
	}
}

// ContextModifier is implemented by Modifier modules that alter the context
// before they execute.
type ContextModifier interface {
	ModifyContext(ctx *Context) error
}

// NextModifier is implemented by Modifier modules that influence the module
// immediately following them.
type NextModifier interface {
	ModifyNext(next Module, ctx *Context) error
}

// Cloner is implemented by Producer modules able to spawn another instance of
// their effect at an arbitrary origin and direction. Clone reports whether the
// request could be honoured.
type Cloner interface {
	Clone(ctx *Context, origin, direction mgl64.Vec3) bool
}

// Gate is implemented by modules that may decline to run in a given context.
type Gate interface {
	ShouldExecute(ctx *Context) bool
}

// PostExecutor is implemented by modules that need a callback after a
// successful Execute.
type PostExecutor interface {
	PostExecute(ctx *Context)
}

// AsCloner returns the clone capability of m. Modules that do not implement
// Cloner, and Modifier modules, do not support cloning.
func AsCloner(m Module) (Cloner, bool) {
	if m == nil || m.Kind() != Producer {
		return nil, false
	}
	c, ok := m.(Cloner)
	return c, ok
}

// Clone asks m to clone its effect. It returns false when m has no clone
// capability.
func Clone(m Module, ctx *Context, origin, direction mgl64.Vec3) bool {
	c, ok := AsCloner(m)
	if !ok {
		return false
	}
	return c.Clone(ctx, origin, direction)
}

// Meta is an embeddable helper that implements the descriptive part of Module.
type Meta struct {
	id   ID
	kind Kind
	tags Tags
}

// NewMeta creates module metadata.
func NewMeta(id ID, kind Kind, tags ...string) Meta {
	return Meta{id: id, kind: kind, tags: NewTags(tags...)}
}

// ID returns the module identifier.
func (m Meta) ID() ID { return m.id }

// Kind returns the module kind.
func (m Meta) Kind() Kind { return m.kind }

// Tags returns the module tags.
func (m Meta) Tags() Tags { return m.tags }

// DisplayKey returns "module.<namespace>.<path>".
func (m Meta) DisplayKey() string {
	return "module." + m.id.Namespace + "." + m.id.Path
}
