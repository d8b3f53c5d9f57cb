package weave

import (
	"github.com/go-gl/mathgl/mgl64"
)

// FireballID identifies the fireball producer.
var FireballID = NewID("fireball")

// Fireball launches a fire projectile from the caster's eyes along the cast
// direction. It supports cloning, which the split protocol uses to fan out
// smaller fireballs from an impact position.
type Fireball struct {
	Meta
}

// NewFireball creates the fireball module.
func NewFireball() *Fireball {
	return &Fireball{Meta: NewMeta(FireballID, Producer, TagBase, TagProjectile, TagFire)}
}

// Stats returns the configured fireball stats.
func (f *Fireball) Stats(cfg *Config) Stats {
	return Stats{
		Cost:       cfg.Fireball.ManaConsumption,
		Cooldown:   cfg.Fireball.Cooldown,
		Complexity: cfg.Fireball.Complexity,
	}
}

// Execute spawns the primary fireball.
func (f *Fireball) Execute(ctx *Context) error {
	if ctx.Actor == nil {
		return errNoActor
	}
	cfg := ctx.Config()
	_, err := ctx.SpawnProjectile(Projectile{
		Module:    f.ID(),
		Origin:    EyePosition(ctx.Actor),
		Direction: ctx.Direction,
		Speed:     cfg.Fireball.Speed,
		Damage:    cfg.Fireball.BaseDamage,
	})
	return err
}

// Clone spawns a split fireball at origin travelling along direction.
func (f *Fireball) Clone(ctx *Context, origin, direction mgl64.Vec3) bool {
	if ctx.World == nil {
		return false
	}
	cfg := ctx.Config()
	_, err := ctx.SpawnProjectile(Projectile{
		Module:    f.ID(),
		Origin:    origin,
		Direction: direction,
		Speed:     cfg.Fireball.Speed,
		Damage:    cfg.Fireball.SplitDamage,
		Marks:     MarksOf(MarkDerived),
	})
	return err == nil
}
