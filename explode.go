package weave

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ExplodeOnHitID identifies the explode-on-hit modifier.
var ExplodeOnHitID = NewID("explode_on_hit")

// ExplodeOnHit marks the cast so that the primary effect explodes where it
// hits. The explosion does not depend on the producer.
type ExplodeOnHit struct {
	Meta
}

// NewExplodeOnHit creates the explode-on-hit module.
func NewExplodeOnHit() *ExplodeOnHit {
	return &ExplodeOnHit{Meta: NewMeta(ExplodeOnHitID, Modifier, TagModifier, TagExplode, TagProjectile)}
}

// Stats returns the configured explosion stats.
func (e *ExplodeOnHit) Stats(cfg *Config) Stats {
	return Stats{
		Cost:       cfg.Explode.ManaConsumption,
		Cooldown:   cfg.Explode.Cooldown,
		Complexity: cfg.Explode.Complexity,
	}
}

// Execute records the pending explosion in the store.
func (e *ExplodeOnHit) Execute(ctx *Context) error {
	ctx.Store.ExplodeOnHit = true
	return nil
}

// CreateExplosion creates the configured area effect at pos.
func CreateExplosion(w World, pos mgl64.Vec3, cfg *Config) error {
	if w == nil {
		return ErrNoWorld
	}
	if err := w.Explode(pos, cfg.Explode.ExplosionRadius, cfg.Explode.Damage); err != nil {
		return fmt.Errorf("explode: %w", err)
	}
	return nil
}
