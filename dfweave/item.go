package dfweave

import (
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oriumgames/weave"
	"golang.org/x/text/language"
)

// Item stack value keys.
const (
	coreKey    = "weave:core"
	modulesKey = "weave:modules"
)

// CoreItem is the item used as spell core.
var CoreItem world.Item = item.BlazeRod{}

// NewSpellCore returns an empty spell core stack.
func NewSpellCore() item.Stack {
	return WithLoadout(item.NewStack(CoreItem, 1).WithValue(coreKey, true), weave.Loadout{}, nil)
}

// IsSpellCore reports whether s is a spell core.
func IsSpellCore(s item.Stack) bool {
	if s.Empty() {
		return false
	}
	v, ok := s.Value(coreKey)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// LoadoutFromStack returns the loadout stored on a spell core.
func LoadoutFromStack(s item.Stack) (weave.Loadout, bool) {
	if !IsSpellCore(s) {
		return weave.Loadout{}, false
	}
	v, ok := s.Value(modulesKey)
	if !ok {
		return weave.Loadout{}, true
	}
	str, _ := v.(string)
	return weave.ParseLoadout(str), true
}

// WithLoadout returns s with l stored on it. The custom name and lore are
// refreshed using the display names resolved through reg, which may be nil.
func WithLoadout(s item.Stack, l weave.Loadout, reg *weave.Registry) item.Stack {
	return s.WithValue(modulesKey, l.String()).
		WithCustomName(T(language.English, keyCoreName)).
		WithLore(lore(language.English, l, reg)...)
}

func lore(t language.Tag, l weave.Loadout, reg *weave.Registry) []string {
	if l.Empty() {
		return []string{T(t, keyEmptyCore), T(t, keyRemaining, weave.MaxSlots)}
	}
	lines := make([]string, 0, weave.MaxSlots+1)
	for _, s := range l {
		if s == "" {
			continue
		}
		name := s
		if m, err := reg.Lookup(s); err == nil {
			name = DisplayName(t, m)
		}
		lines = append(lines, "- "+name)
	}
	return append(lines, T(t, keyRemaining, weave.MaxSlots-l.Len()))
}
