package dfweave

import (
	"errors"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/block/cube/trace"
	"github.com/df-mc/dragonfly/server/entity"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/df-mc/dragonfly/server/world/particle"
	"github.com/df-mc/dragonfly/server/world/sound"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oriumgames/weave"
)

var errNilTx = errors.New("nil transaction")

// World binds weave.World to a Dragonfly transaction.
//
// A World must only be used while its transaction is open. Projectiles it
// spawns report their impact to the engine in the transaction of the hit.
type World struct {
	tx  *world.Tx
	eng *weave.Engine
}

// NewWorld returns a weave.World for tx. Impacts are forwarded to eng.
func NewWorld(tx *world.Tx, eng *weave.Engine) *World {
	return &World{tx: tx, eng: eng}
}

// Compile-time check that World implements weave.World.
var _ weave.World = (*World)(nil)

// SpawnProjectile adds a gravity-free projectile travelling along p's
// direction.
func (w *World) SpawnProjectile(p weave.Projectile) (weave.Effect, error) {
	if w.tx == nil {
		return weave.Effect{}, errNilTx
	}
	eff := weave.EffectOf(p)

	var owner *world.EntityHandle
	if e, ok := p.Owner.(world.Entity); ok {
		owner = e.H()
	}

	conf := entity.ProjectileBehaviourConfig{
		Owner:   owner,
		Gravity: 0,
		Drag:    0,
		Damage:  p.Damage,
		Hit:     w.hit(eff, owner),
	}
	opts := world.EntitySpawnOpts{
		Position: p.Origin,
		Velocity: p.Velocity(),
		ID:       eff.ID,
	}
	w.tx.AddEntity(opts.New(entity.SnowballType, conf))
	return eff, nil
}

// hit returns the impact callback of a spawned projectile.
func (w *World) hit(eff weave.Effect, owner *world.EntityHandle) func(e *entity.Ent, tx *world.Tx, target trace.Result) {
	return func(e *entity.Ent, tx *world.Tx, target trace.Result) {
		if w.eng == nil {
			return
		}
		w.eng.OnImpact(weave.ImpactEvent{
			World:    NewWorld(tx, w.eng),
			Effect:   eff,
			Owner:    resolveOwner(tx, owner),
			Position: target.Position(),
		})
	}
}

// Explode creates a fire-free area effect that hurts living entities within
// radius. Blocks are left intact.
func (w *World) Explode(pos mgl64.Vec3, radius, damage float64) error {
	if w.tx == nil {
		return errNilTx
	}
	w.tx.AddParticle(pos, particle.HugeExplosion{})
	w.tx.PlaySound(pos, sound.Explosion{})

	for e := range w.tx.EntitiesWithin(areaBox(pos, radius)) {
		l, ok := e.(entity.Living)
		if !ok || l.Position().Sub(pos).Len() > radius {
			continue
		}
		l.Hurt(damage, entity.ExplosionDamageSource{})
	}
	return nil
}

// NearestActor returns the closest living entity within radius of pos.
func (w *World) NearestActor(pos mgl64.Vec3, radius float64) (weave.Actor, bool) {
	if w.tx == nil {
		return nil, false
	}
	var (
		nearest weave.Actor
		best    = radius
	)
	for e := range w.tx.EntitiesWithin(areaBox(pos, radius)) {
		if _, ok := e.(entity.Living); !ok {
			continue
		}
		if d := e.Position().Sub(pos).Len(); d <= best {
			nearest, best = e, d
		}
	}
	return nearest, nearest != nil
}

// resolveOwner returns the owner of a projectile if it is still a living
// entity in tx.
func resolveOwner(tx *world.Tx, h *world.EntityHandle) weave.Actor {
	if h == nil {
		return nil
	}
	e, ok := h.Entity(tx)
	if !ok {
		return nil
	}
	a, ok := Actor(e)
	if !ok {
		return nil
	}
	return a
}

func areaBox(pos mgl64.Vec3, radius float64) cube.BBox {
	return cube.Box(pos[0]-radius, pos[1]-radius, pos[2]-radius, pos[0]+radius, pos[1]+radius, pos[2]+radius)
}
