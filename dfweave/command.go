package dfweave

import (
	"errors"
	"sync/atomic"

	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oriumgames/weave"
	"golang.org/x/text/language"
)

// engine is the engine the /spellcore command operates on. Commands are
// value types constructed by Dragonfly, so they cannot carry it themselves.
var engine atomic.Pointer[weave.Engine]

// RegisterCommands registers the /spellcore command bound to eng.
func RegisterCommands(eng *weave.Engine) {
	engine.Store(eng)
	cmd.Register(cmd.New("spellcore", "Edit the modules of the held spell core.", []string{"sc"},
		spellCoreAdd{},
		spellCoreRemove{},
		spellCoreClear{},
		spellCoreList{},
		spellCoreGive{},
	))
}

// moduleArg is a module identifier argument. Built-in modules are offered
// both with and without their namespace.
type moduleArg string

func (moduleArg) Type() string { return "Module" }

func (moduleArg) Options(cmd.Source) []string {
	eng := engine.Load()
	if eng == nil {
		return nil
	}
	ids := eng.Registry().ListIDs()
	opts := make([]string, 0, len(ids)*2)
	for _, id := range ids {
		if id.Namespace == weave.Namespace {
			opts = append(opts, id.Path)
		}
		opts = append(opts, id.String())
	}
	return opts
}

type spellCoreAdd struct {
	Add    cmd.SubCommand `cmd:"add"`
	Module moduleArg      `cmd:"module"`
}

func (c spellCoreAdd) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	withCore(src, o, func(p *player.Player, eng *weave.Engine, core item.Stack, l weave.Loadout) {
		loc := p.Locale()
		id, slot, err := addModule(eng.Registry(), &l, string(c.Module))
		switch {
		case errors.Is(err, weave.ErrMalformedID):
			o.Error(T(loc, keyInvalidID, string(c.Module)))
			return
		case errors.Is(err, weave.ErrModuleNotFound):
			o.Error(T(loc, keyNotFound, id.String()))
			return
		case errors.Is(err, weave.ErrLoadoutFull):
			o.Error(T(loc, keyFull))
			return
		}
		setHeldCore(p, WithLoadout(core, l, eng.Registry()))
		o.Print(T(loc, keyAdded, id.String(), slot+1))
	})
}

type spellCoreRemove struct {
	Remove cmd.SubCommand `cmd:"remove"`
	Slot   int            `cmd:"slot"`
}

func (c spellCoreRemove) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	withCore(src, o, func(p *player.Player, eng *weave.Engine, core item.Stack, l weave.Loadout) {
		loc := p.Locale()
		if err := l.Remove(c.Slot - 1); err != nil {
			o.Error(T(loc, keyBadSlot, weave.MaxSlots))
			return
		}
		setHeldCore(p, WithLoadout(core, l, eng.Registry()))
		o.Print(T(loc, keyRemoved, c.Slot))
	})
}

type spellCoreClear struct {
	Clear cmd.SubCommand `cmd:"clear"`
}

func (spellCoreClear) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	withCore(src, o, func(p *player.Player, eng *weave.Engine, core item.Stack, l weave.Loadout) {
		l.Clear()
		setHeldCore(p, WithLoadout(core, l, eng.Registry()))
		o.Print(T(p.Locale(), keyCleared))
	})
}

type spellCoreList struct {
	List cmd.SubCommand `cmd:"list"`
}

func (spellCoreList) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	withCore(src, o, func(p *player.Player, eng *weave.Engine, _ item.Stack, l weave.Loadout) {
		for _, line := range listLines(p.Locale(), eng, l) {
			o.Print(line)
		}
	})
}

type spellCoreGive struct {
	Give cmd.SubCommand `cmd:"give"`
}

func (spellCoreGive) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	p := Command(src)
	if p == nil {
		o.Error(T(language.English, keyPlayersOnly))
		return
	}
	if _, err := p.Inventory().AddItem(NewSpellCore()); err != nil {
		o.Error(T(p.Locale(), keyInventoryFull))
		return
	}
	o.Print(T(p.Locale(), keyGiven))
}

// withCore runs fn for a player holding a spell core, reporting the usual
// failures to o.
func withCore(src cmd.Source, o *cmd.Output, fn func(p *player.Player, eng *weave.Engine, core item.Stack, l weave.Loadout)) {
	p := Command(src)
	if p == nil {
		o.Error(T(language.English, keyPlayersOnly))
		return
	}
	eng := engine.Load()
	if eng == nil {
		return
	}
	core, l, ok := heldCore(p)
	if !ok {
		o.Error(T(p.Locale(), keyNotHolding))
		return
	}
	fn(p, eng, core, l)
}

// addModule validates s against reg and adds it to the first empty slot of
// l, returning the slot index. A bare path is placed in the default namespace.
func addModule(reg *weave.Registry, l *weave.Loadout, s string) (weave.ID, int, error) {
	id, err := weave.ParseID(s)
	if err != nil {
		return weave.ID{}, -1, err
	}
	if !reg.Contains(id) {
		return id, -1, weave.ErrModuleNotFound
	}
	slot, err := l.Add(id)
	return id, slot, err
}

// listLines renders the loadout listing with its cost estimate.
func listLines(loc language.Tag, eng *weave.Engine, l weave.Loadout) []string {
	if l.Empty() {
		return []string{T(loc, keyNoModules)}
	}
	lines := []string{T(loc, keyModulesList)}
	for i, s := range l {
		if s == "" {
			continue
		}
		name := s
		if m, err := eng.Registry().Lookup(s); err == nil {
			name = DisplayName(loc, m)
		}
		lines = append(lines, T(loc, keyListEntry, i+1, name, s))
	}
	st := eng.Estimate(l)
	return append(lines, T(loc, keyEstimate, st.Cost, st.Cooldown, st.Complexity))
}
