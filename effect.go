package weave

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// World is the level reference a cast runs against. Implementations own the
// rendering and physics of spawned effects; the dfweave package binds it to a
// Dragonfly transaction.
type World interface {
	// SpawnProjectile adds a projectile effect to the world.
	SpawnProjectile(p Projectile) (Effect, error)
	// Explode creates an area effect at pos.
	Explode(pos mgl64.Vec3, radius, damage float64) error
	// NearestActor returns the closest actor within radius of pos.
	NearestActor(pos mgl64.Vec3, radius float64) (Actor, bool)
}

// Projectile describes a projectile to spawn.
type Projectile struct {
	Module    ID
	Owner     Actor
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
	Speed     float64
	Damage    float64
	Marks     Marks
	Source    Source
	// Loadout is the module list the effect was cast with.
	Loadout Loadout
}

// Velocity returns the initial velocity of the projectile.
func (p Projectile) Velocity() mgl64.Vec3 {
	if p.Direction.Len() == 0 {
		return mgl64.Vec3{}
	}
	return p.Direction.Normalize().Mul(p.Speed)
}

// Effect identifies a spawned effect and carries its markers.
type Effect struct {
	ID      uuid.UUID
	Module  ID
	Marks   Marks
	Source  Source
	Loadout Loadout
}

// EffectOf returns the effect record for a projectile with a fresh identity.
func EffectOf(p Projectile) Effect {
	return Effect{
		ID:      uuid.New(),
		Module:  p.Module,
		Marks:   p.Marks,
		Source:  p.Source,
		Loadout: p.Loadout,
	}
}

// Triggers reports whether an impact of e may run the split/explode protocol.
// The effect must be owned by a pipeline and must not itself be derived.
func Triggers(e Effect) bool {
	return e.Marks.Has(MarkOwned) && !e.Marks.Has(MarkDerived)
}
