package weave

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
)

// FallbackCasterRadius is the radius searched for a substitute caster when
// the owner of an impacting effect cannot be resolved.
const FallbackCasterRadius = 3.0

// Impact skip reasons reported in ImpactResult.Reason.
const (
	ReasonUntracked  = "untracked"
	ReasonDerived    = "derived"
	ReasonNoWorld    = "no world"
	ReasonNoLoadout  = "no loadout"
	ReasonNoProducer = "no producer"
	ReasonNoCaster   = "no caster"
	ReasonPanic      = "panic"
)

// ImpactEvent reports that a spawned effect reached a terminal hit.
type ImpactEvent struct {
	// World is the level the impact happened in.
	World World
	// Effect is the impacting effect.
	Effect Effect
	// Owner is the living caster of the effect, or nil if it is gone.
	Owner Actor
	// Position is the impact position.
	Position mgl64.Vec3
}

// ImpactResult describes what the bridge did for an impact.
type ImpactResult struct {
	// Exploded is set when an explosion was created.
	Exploded bool
	// Splits is the number of derived effects spawned.
	Splits int
	// Reason explains why the protocol stopped early, if it did.
	Reason string
}

// Bridge runs the split and explode protocol for impact events.
type Bridge struct {
	reg      *Registry
	cfg      *Config
	loadouts LoadoutSource
	log      *slog.Logger
}

// NewBridge creates a bridge. loadouts may be nil, in which case the loadout
// snapshot carried by the effect is used. A nil logger uses slog.Default().
func NewBridge(reg *Registry, cfg *Config, loadouts LoadoutSource, log *slog.Logger) *Bridge {
	if cfg == nil {
		def := DefaultConfig()
		cfg = &def
	}
	if log == nil {
		log = slog.Default()
	}
	return &Bridge{reg: reg, cfg: cfg, loadouts: loadouts, log: log}
}

// OnImpact handles evt. Only owned, non-derived effects trigger the protocol.
// Every failure degrades to "no additional effect" and is reported through
// the result, never as an error.
func (b *Bridge) OnImpact(evt ImpactEvent) (res ImpactResult) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("weave: panic in impact handler", "effect", evt.Effect.ID.String(), "error", r)
			res.Reason = ReasonPanic
		}
	}()

	if !evt.Effect.Marks.Has(MarkOwned) {
		return ImpactResult{Reason: ReasonUntracked}
	}
	if !Triggers(evt.Effect) {
		return ImpactResult{Reason: ReasonDerived}
	}
	if evt.World == nil {
		return b.skip(evt, ReasonNoWorld)
	}

	loadout := b.loadoutFor(evt)
	mods := loadout.Resolve(b.reg)
	if len(mods) == 0 {
		return b.skip(evt, ReasonNoLoadout)
	}

	var (
		producer Module
		split    bool
		explode  bool
	)
	for _, m := range mods {
		switch {
		case m.Kind() == Producer:
			if producer == nil {
				producer = m
			}
		case m.ID() == SplitOnHitID:
			split = true
		case m.ID() == ExplodeOnHitID:
			explode = true
		}
	}

	if explode {
		if err := CreateExplosion(evt.World, evt.Position, b.cfg); err != nil {
			b.log.Debug("weave: explosion failed", "effect", evt.Effect.ID.String(), "error", err)
		} else {
			res.Exploded = true
		}
	}

	if !split {
		return res
	}
	if producer == nil {
		res.Reason = ReasonNoProducer
		b.log.Debug("weave: split skipped", "effect", evt.Effect.ID.String(), "reason", res.Reason)
		return res
	}

	caster := evt.Owner
	if caster == nil {
		var ok bool
		if caster, ok = evt.World.NearestActor(evt.Position, FallbackCasterRadius); !ok {
			res.Reason = ReasonNoCaster
			b.log.Debug("weave: split skipped", "effect", evt.Effect.ID.String(), "reason", res.Reason)
			return res
		}
	}

	parent := NewContext(evt.World, caster, SourceImpact).
		WithConfig(b.cfg).
		WithLoadout(loadout)
	original := evt.Effect
	parent.Store.Original = &original

	res.Splits = CreateSplit(parent, producer, evt.Position)
	b.log.Debug("weave: split created",
		"effect", evt.Effect.ID.String(), "module", producer.ID().String(), "splits", res.Splits)
	return res
}

// loadoutFor prefers the owner's currently equipped loadout and falls back to
// the snapshot taken at cast time.
func (b *Bridge) loadoutFor(evt ImpactEvent) Loadout {
	if evt.Owner != nil && b.loadouts != nil {
		if l, ok := b.loadouts.Loadout(evt.Owner); ok && !l.Empty() {
			return l
		}
	}
	return evt.Effect.Loadout
}

func (b *Bridge) skip(evt ImpactEvent, reason string) ImpactResult {
	b.log.Debug("weave: impact ignored", "effect", evt.Effect.ID.String(), "reason", reason)
	return ImpactResult{Reason: reason}
}
