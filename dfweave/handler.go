package dfweave

import (
	"github.com/df-mc/dragonfly/server/player"
	"github.com/oriumgames/weave"
)

// Handler casts the held spell core when a player uses it.
//
// Concurrency:
// Handlers are executed synchronously by Dragonfly within the player's world
// transaction, so the cast runs with exclusive access to the world.
type Handler struct {
	player.NopHandler
	eng *weave.Engine
}

// NewHandler creates a player.Handler casting through eng.
func NewHandler(eng *weave.Engine) *Handler {
	return &Handler{eng: eng}
}

// Compile-time check that Handler implements player.Handler.
var _ player.Handler = (*Handler)(nil)

// HandleItemUse casts the held spell core and applies the loadout cooldown.
func (h *Handler) HandleItemUse(ctx *player.Context) {
	p := ctx.Val()
	main, l, ok := heldCore(p)
	if !ok {
		return
	}
	ctx.Cancel()

	if p.HasCooldown(main.Item()) {
		return
	}
	if l.Empty() {
		p.Message(T(p.Locale(), keyNoModules))
		return
	}

	res := h.eng.Cast(NewWorld(p.Tx(), h.eng), p, weave.SourceSpellCore, l)
	h.eng.Logger().Debug("weave: cast",
		"player", p.Name(), "loadout", l.String(), "state", res.State.String(),
		"executed", res.Executed, "skipped", res.Skipped, "failed", res.Failed)

	if res.Executed > 0 {
		p.SetCooldown(main.Item(), h.eng.Estimate(l).CooldownDuration())
	}
}

// HeldLoadouts resolves an actor's loadout from the spell core in its main
// hand. Only players are supported.
type HeldLoadouts struct{}

// Loadout returns the loadout of the held spell core.
func (HeldLoadouts) Loadout(a weave.Actor) (weave.Loadout, bool) {
	p, ok := a.(*player.Player)
	if !ok {
		return weave.Loadout{}, false
	}
	_, l, ok := heldCore(p)
	return l, ok
}
