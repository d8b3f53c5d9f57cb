package weave

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// Actor is an entity that can cast spells.
// *player.Player satisfies this interface.
type Actor interface {
	Position() mgl64.Vec3
	Rotation() cube.Rotation
}

// eyeHeighter is implemented by actors with a defined eye height.
type eyeHeighter interface {
	EyeHeight() float64
}

// EyePosition returns the actor's eye position, or its feet position when the
// actor has no eye height.
func EyePosition(a Actor) mgl64.Vec3 {
	pos := a.Position()
	if e, ok := a.(eyeHeighter); ok {
		pos[1] += e.EyeHeight()
	}
	return pos
}

// Source identifies what triggered a cast.
type Source string

const (
	// SourceSpellCore is a cast from a held spell core item.
	SourceSpellCore Source = "spellcore"
	// SourceCommand is a cast triggered from a command.
	SourceCommand Source = "command"
	// SourceImpact is a sub-cast produced by the impact bridge.
	SourceImpact Source = "impact"
)
