package dfweave

import (
	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/entity"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oriumgames/weave"
)

// Command extracts the player from a command source.
// Returns nil if the source is not a player.
//
// Usage:
//
//	func (c MyCommand) Run(src cmd.Source, out *cmd.Output, tx *world.Tx) {
//	    p := dfweave.Command(src)
//	    if p == nil {
//	        out.Error("Player-only command")
//	        return
//	    }
//	}
func Command(src cmd.Source) *player.Player {
	p, _ := src.(*player.Player)
	return p
}

// Item extracts the player from an item user.
// Returns nil if the user is not a player.
func Item(user item.User) *player.Player {
	p, _ := user.(*player.Player)
	return p
}

// Actor returns e as a caster if it is a living entity.
func Actor(e world.Entity) (weave.Actor, bool) {
	if _, ok := e.(entity.Living); !ok {
		return nil, false
	}
	return e, true
}

// heldCore returns the main hand spell core of p and its loadout.
func heldCore(p *player.Player) (item.Stack, weave.Loadout, bool) {
	main, _ := p.HeldItems()
	l, ok := LoadoutFromStack(main)
	return main, l, ok
}

// setHeldCore replaces the main hand item of p, keeping the off hand.
func setHeldCore(p *player.Player, s item.Stack) {
	_, off := p.HeldItems()
	p.SetHeldItems(s, off)
}
