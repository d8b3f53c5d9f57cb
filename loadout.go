package weave

import (
	"errors"
	"fmt"
	"strings"
)

// MaxSlots is the number of module slots on a spell core.
const MaxSlots = 3

var (
	// ErrLoadoutFull is returned when adding to a loadout without empty slots.
	ErrLoadoutFull = errors.New("loadout is full")
	// ErrSlotOutOfRange is returned for slot indexes outside [0, MaxSlots).
	ErrSlotOutOfRange = errors.New("slot out of range")
)

// Loadout is the ordered list of module identifiers persisted on a spell
// core. Empty slots hold the empty string.
type Loadout [MaxSlots]string

// ParseLoadout decodes the comma separated form written by String.
// Extra entries beyond MaxSlots are ignored.
func ParseLoadout(s string) Loadout {
	var l Loadout
	if s == "" {
		return l
	}
	for i, part := range strings.SplitN(s, ",", MaxSlots+1) {
		if i >= MaxSlots {
			break
		}
		l[i] = strings.TrimSpace(part)
	}
	return l
}

// String encodes the loadout, keeping empty slots so positions survive.
func (l Loadout) String() string {
	return strings.Join(l[:], ",")
}

// Empty reports whether every slot is empty.
func (l Loadout) Empty() bool {
	return l == Loadout{}
}

// Len returns the number of filled slots.
func (l Loadout) Len() int {
	n := 0
	for _, s := range l {
		if s != "" {
			n++
		}
	}
	return n
}

// Add places id in the first empty slot and returns the slot index.
func (l *Loadout) Add(id ID) (int, error) {
	for i, s := range l {
		if s == "" {
			l[i] = id.String()
			return i, nil
		}
	}
	return -1, ErrLoadoutFull
}

// Set places id in slot i, replacing its content.
func (l *Loadout) Set(i int, id ID) error {
	if i < 0 || i >= MaxSlots {
		return fmt.Errorf("%w: %d", ErrSlotOutOfRange, i)
	}
	l[i] = id.String()
	return nil
}

// Remove empties slot i. Other slots keep their positions.
func (l *Loadout) Remove(i int) error {
	if i < 0 || i >= MaxSlots {
		return fmt.Errorf("%w: %d", ErrSlotOutOfRange, i)
	}
	l[i] = ""
	return nil
}

// Clear empties every slot.
func (l *Loadout) Clear() {
	*l = Loadout{}
}

// Resolve returns the modules of the filled slots in order. Identifiers that
// are malformed or not registered are dropped.
func (l Loadout) Resolve(r *Registry) []Module {
	mods := make([]Module, 0, MaxSlots)
	for _, s := range l {
		if s == "" {
			continue
		}
		id, err := ParseID(s)
		if err != nil {
			continue
		}
		if m, ok := r.Get(id); ok {
			mods = append(mods, m)
		}
	}
	return mods
}

// LoadoutSource resolves the loadout an actor currently has equipped.
type LoadoutSource interface {
	Loadout(a Actor) (Loadout, bool)
}

// LoadoutFunc adapts a function to LoadoutSource.
type LoadoutFunc func(a Actor) (Loadout, bool)

// Loadout calls f(a).
func (f LoadoutFunc) Loadout(a Actor) (Loadout, bool) {
	return f(a)
}
