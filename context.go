package weave

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrModifierSpawn is returned when a Modifier tries to spawn an effect.
	ErrModifierSpawn = errors.New("modifier modules cannot spawn effects")
	// ErrNoWorld is returned when spawning without a world reference.
	ErrNoWorld = errors.New("context has no world")

	errNoActor = errors.New("context has no actor")
)

// Context is the mutable state of one pipeline run.
//
// A Context is owned by a single call stack and must not be shared between
// concurrent casts.
type Context struct {
	// World is the level the cast runs in.
	World World
	// Actor is the casting entity.
	Actor Actor
	// Source is what triggered the cast.
	Source Source

	// Direction is the cast direction, defaulting to the actor's facing.
	Direction mgl64.Vec3
	// Origin is the effect origin, defaulting to the actor's position.
	Origin mgl64.Vec3
	// Target is an optional target position.
	Target mgl64.Vec3

	// Store is the shared store for inter-module signalling.
	Store Store

	config  *Config
	loadout Loadout

	// control
	halted    bool
	skipNext  bool
	skipCount int
	index     int

	// derived is set on sub-contexts created for split effects
	derived bool
	// running is the module currently executing
	running Module
}

// NewContext creates a top-level context. The direction is the actor's
// current facing and the origin its position.
func NewContext(w World, a Actor, src Source) *Context {
	c := &Context{World: w, Actor: a, Source: src}
	if a != nil {
		c.Direction = a.Rotation().Vec3()
		c.Origin = a.Position()
	}
	return c
}

// NewDirectedContext creates a context with an explicit direction.
func NewDirectedContext(w World, a Actor, src Source, direction mgl64.Vec3) *Context {
	c := NewContext(w, a, src)
	c.Direction = direction
	return c
}

// WithConfig sets the configuration read by modules and returns c.
func (c *Context) WithConfig(cfg *Config) *Context {
	c.config = cfg
	return c
}

// WithLoadout records the loadout the context was built from and returns c.
func (c *Context) WithLoadout(l Loadout) *Context {
	c.loadout = l
	return c
}

// Config returns the balancing configuration, or the defaults if none is set.
func (c *Context) Config() *Config {
	if c.config == nil {
		cfg := DefaultConfig()
		c.config = &cfg
	}
	return c.config
}

// Loadout returns the loadout the cast was built from.
func (c *Context) Loadout() Loadout {
	return c.loadout
}

// Derive creates a sub-context for effects produced later, in response to an
// external notification. World, actor, source, direction, configuration and
// loadout are copied; control fields and the shared store are reset as in
// ResetForSubEntity.
func (c *Context) Derive() *Context {
	sub := NewDirectedContext(c.World, c.Actor, c.Source, c.Direction)
	sub.config = c.config
	sub.loadout = c.loadout
	sub.Store.Original = c.Store.Original
	sub.ResetForSubEntity()
	return sub
}

// ResetForSubEntity restores all control fields to their defaults and clears
// the shared store except Store.Original. Effects spawned through the context
// afterwards are marked as derived.
func (c *Context) ResetForSubEntity() {
	c.halted = false
	c.skipNext = false
	c.skipCount = 0
	c.index = 0
	c.running = nil
	c.Store.reset()
	c.derived = true
}

// Derived reports whether c is a sub-context.
func (c *Context) Derived() bool {
	return c.derived
}

// Stop halts the pipeline after the current module.
func (c *Context) Stop() {
	c.halted = true
}

// Continuing reports whether the pipeline may run further modules.
func (c *Context) Continuing() bool {
	return !c.halted
}

// SkipNext makes the executor skip exactly one upcoming module.
func (c *Context) SkipNext() {
	c.skipNext = true
}

// SkipNextPending reports whether a single skip is pending.
func (c *Context) SkipNextPending() bool {
	return c.skipNext
}

// Skip makes the executor skip the next n modules. Negative values are
// treated as zero.
func (c *Context) Skip(n int) {
	c.skipCount = max(n, 0)
}

// SkipCount returns the number of modules still to be skipped.
func (c *Context) SkipCount() int {
	return c.skipCount
}

// Index returns the index of the module currently executing.
func (c *Context) Index() int {
	return c.index
}

// Running returns the module currently executing, or nil.
func (c *Context) Running() Module {
	return c.running
}

// SpawnProjectile spawns p in the context's world.
//
// The projectile is marked as owned, and additionally as derived on
// sub-contexts. Missing owner, source and loadout default to the context's.
// The spawned effect is recorded as Store.Last, and as Store.Original when it
// is the first effect of the cast.
func (c *Context) SpawnProjectile(p Projectile) (Effect, error) {
	if c.running != nil && c.running.Kind() == Modifier {
		return Effect{}, fmt.Errorf("%w: %s", ErrModifierSpawn, c.running.ID())
	}
	if c.World == nil {
		return Effect{}, ErrNoWorld
	}

	p.Marks.Set(MarkOwned)
	if c.derived {
		p.Marks.Set(MarkDerived)
	}
	if p.Owner == nil {
		p.Owner = c.Actor
	}
	if p.Source == "" {
		p.Source = c.Source
	}
	if p.Loadout.Empty() {
		p.Loadout = c.loadout
	}

	e, err := c.World.SpawnProjectile(p)
	if err != nil {
		return Effect{}, fmt.Errorf("spawn projectile: %w", err)
	}

	c.Store.Last = &e
	if c.Store.Original == nil {
		original := e
		c.Store.Original = &original
	}
	return e, nil
}
