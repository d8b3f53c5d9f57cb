package weave

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SplitOnHitID identifies the split-on-hit modifier.
var SplitOnHitID = NewID("split_on_hit")

// SplitOnHit marks the cast so that the primary effect splits into several
// smaller ones when it hits something. Several split modifiers stack on the
// store counter.
type SplitOnHit struct {
	Meta
}

// NewSplitOnHit creates the split-on-hit module.
func NewSplitOnHit() *SplitOnHit {
	return &SplitOnHit{Meta: NewMeta(SplitOnHitID, Modifier, TagModifier, TagSplit, TagProjectile)}
}

// Stats returns the configured split stats.
func (s *SplitOnHit) Stats(cfg *Config) Stats {
	return Stats{
		Cost:       cfg.Split.ManaConsumption,
		Cooldown:   cfg.Split.Cooldown,
		Complexity: cfg.Split.Complexity,
	}
}

// Execute records the pending split in the store.
func (s *SplitOnHit) Execute(ctx *Context) error {
	ctx.Store.SplitOnHit = true
	ctx.Store.SplitCount++
	return nil
}

// SplitDirections returns n horizontal unit vectors, the i-th rotated by
// i*angle degrees around the vertical axis. The first points along +Z
// (yaw 0).
func SplitDirections(n int, angle float64) []mgl64.Vec3 {
	if n <= 0 {
		return nil
	}
	dirs := make([]mgl64.Vec3, n)
	for i := range dirs {
		yaw := mgl64.DegToRad(float64(i) * angle)
		dirs[i] = mgl64.Vec3{-math.Sin(yaw), 0, math.Cos(yaw)}.Normalize()
	}
	return dirs
}

// CreateSplit clones original from pos along the configured split directions
// using a sub-context derived from parent. It returns the number of clones
// spawned.
func CreateSplit(parent *Context, original Module, pos mgl64.Vec3) int {
	if parent == nil || original == nil {
		return 0
	}
	if _, ok := AsCloner(original); !ok {
		return 0
	}

	sub := parent.Derive()
	cfg := sub.Config()

	spawned := 0
	for _, dir := range SplitDirections(cfg.Split.SplitCount, cfg.Split.AngleBetweenShots) {
		if Clone(original, sub, pos, dir) {
			spawned++
		}
	}
	return spawned
}
