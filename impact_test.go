package weave

import (
	"math"
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

func TestSplitDirections(t *testing.T) {
	dirs := SplitDirections(3, 120)
	if len(dirs) != 3 {
		t.Fatalf("len = %d, want 3", len(dirs))
	}
	if !vecApprox(dirs[0], mgl64.Vec3{0, 0, 1}) {
		t.Fatalf("first direction = %v, want yaw 0", dirs[0])
	}
	for i, d := range dirs {
		if d[1] != 0 {
			t.Fatalf("direction %d y = %v, want 0", i, d[1])
		}
		if math.Abs(d.Len()-1) > 1e-9 {
			t.Fatalf("direction %d length = %v, want 1", i, d.Len())
		}
		for j := i + 1; j < len(dirs); j++ {
			if dot := d.Dot(dirs[j]); math.Abs(dot-math.Cos(mgl64.DegToRad(120))) > 1e-9 {
				t.Fatalf("dot(%d, %d) = %v, want cos(120°)", i, j, dot)
			}
		}
	}
	if got := SplitDirections(0, 120); got != nil {
		t.Fatalf("SplitDirections(0) = %v, want nil", got)
	}
}

func newTestEngine(l Loadout) *Engine {
	return NewBuilder().
		Loadouts(LoadoutFunc(func(Actor) (Loadout, bool) { return l, true })).
		Init()
}

func TestFireballSplitEndToEnd(t *testing.T) {
	l := Loadout{"weave:fireball", "weave:split_on_hit"}
	eng := newTestEngine(l)
	w := &fakeWorld{}
	caster := &fakeActor{pos: mgl64.Vec3{0, 64, 0}, rot: cube.Rotation{0, 0}, eye: 1.62}

	res := eng.Cast(w, caster, SourceSpellCore, l)
	if res.State != Completed || res.Executed != 2 {
		t.Fatalf("cast = %+v, want 2 executed", res)
	}
	if len(w.spawned) != 1 {
		t.Fatalf("primary effects = %d, want 1", len(w.spawned))
	}
	primary := w.effects[0]
	if !Triggers(primary) {
		t.Fatalf("primary marks = %v, want owned", primary.Marks)
	}
	if got, want := w.spawned[0].Damage, eng.Config().Fireball.BaseDamage; got != want {
		t.Fatalf("primary damage = %v, want %v", got, want)
	}

	hit := mgl64.Vec3{5, 64, 5}
	ir := eng.OnImpact(ImpactEvent{World: w, Effect: primary, Owner: caster, Position: hit})
	if ir.Splits != 3 || ir.Exploded {
		t.Fatalf("impact = %+v, want 3 splits", ir)
	}
	if len(w.spawned) != 4 {
		t.Fatalf("effects = %d, want 4", len(w.spawned))
	}

	dirs := SplitDirections(3, 120)
	for i, p := range w.spawned[1:] {
		if p.Origin != hit {
			t.Fatalf("split %d origin = %v, want %v", i, p.Origin, hit)
		}
		if !vecApprox(p.Direction, dirs[i]) {
			t.Fatalf("split %d direction = %v, want %v", i, p.Direction, dirs[i])
		}
		if !p.Marks.Has(MarkOwned) || !p.Marks.Has(MarkDerived) {
			t.Fatalf("split %d marks = %v, want owned|derived", i, p.Marks)
		}
		if got, want := p.Damage, eng.Config().Fireball.SplitDamage; got != want {
			t.Fatalf("split %d damage = %v, want %v", i, got, want)
		}
	}

	for _, child := range w.effects[1:] {
		if r := eng.OnImpact(ImpactEvent{World: w, Effect: child, Owner: caster, Position: hit}); r.Reason != ReasonDerived {
			t.Fatalf("child impact reason = %q, want %q", r.Reason, ReasonDerived)
		}
	}
	if len(w.spawned) != 4 {
		t.Fatalf("effects after child impacts = %d, want 4", len(w.spawned))
	}
}

func TestImpactIgnoresUntracked(t *testing.T) {
	eng := newTestEngine(Loadout{"weave:fireball", "weave:split_on_hit"})
	w := &fakeWorld{}
	r := eng.OnImpact(ImpactEvent{World: w, Effect: Effect{Marks: MarksOf(MarkDerived)}})
	if r.Reason != ReasonUntracked {
		t.Fatalf("reason = %q, want %q", r.Reason, ReasonUntracked)
	}
	if len(w.spawned) != 0 {
		t.Fatalf("spawned = %d, want 0", len(w.spawned))
	}
}

func TestImpactExplode(t *testing.T) {
	l := Loadout{"weave:fireball", "weave:explode_on_hit"}
	eng := newTestEngine(l)
	w := &fakeWorld{}
	pos := mgl64.Vec3{1, 2, 3}

	r := eng.OnImpact(ImpactEvent{World: w, Effect: Effect{Marks: MarksOf(MarkOwned)}, Owner: &fakeActor{}, Position: pos})
	if !r.Exploded || r.Splits != 0 {
		t.Fatalf("impact = %+v, want explosion only", r)
	}
	want := explosion{pos: pos, radius: eng.Config().Explode.ExplosionRadius, damage: eng.Config().Explode.Damage}
	if len(w.explosions) != 1 || w.explosions[0] != want {
		t.Fatalf("explosions = %+v, want [%+v]", w.explosions, want)
	}
}

func TestImpactExplodeWithoutProducer(t *testing.T) {
	eng := newTestEngine(Loadout{"weave:explode_on_hit", "weave:split_on_hit"})
	w := &fakeWorld{}
	r := eng.OnImpact(ImpactEvent{World: w, Effect: Effect{Marks: MarksOf(MarkOwned)}, Owner: &fakeActor{}})
	if !r.Exploded || r.Splits != 0 || r.Reason != ReasonNoProducer {
		t.Fatalf("impact = %+v, want explosion without split", r)
	}
}

func TestImpactFallbackCaster(t *testing.T) {
	l := Loadout{"weave:fireball", "weave:split_on_hit"}
	eng := NewBuilder().Init()
	effect := Effect{Marks: MarksOf(MarkOwned), Loadout: l}

	w := &fakeWorld{}
	if r := eng.OnImpact(ImpactEvent{World: w, Effect: effect}); r.Reason != ReasonNoCaster || r.Splits != 0 {
		t.Fatalf("impact = %+v, want skipped for missing caster", r)
	}
	if len(w.spawned) != 0 {
		t.Fatalf("spawned = %d, want 0", len(w.spawned))
	}

	bystander := &fakeActor{pos: mgl64.Vec3{1, 0, 0}}
	w.nearby = bystander
	if r := eng.OnImpact(ImpactEvent{World: w, Effect: effect}); r.Splits != 3 {
		t.Fatalf("splits = %d, want 3", r.Splits)
	}
	for _, p := range w.spawned {
		if p.Owner != bystander {
			t.Fatalf("owner = %v, want fallback caster", p.Owner)
		}
	}
}

func TestImpactLoadoutResolution(t *testing.T) {
	eng := newTestEngine(Loadout{"weave:fireball"})
	w := &fakeWorld{}
	effect := Effect{Marks: MarksOf(MarkOwned), Loadout: Loadout{"weave:fireball", "weave:split_on_hit"}}

	// The equipped loadout wins over the snapshot.
	if r := eng.OnImpact(ImpactEvent{World: w, Effect: effect, Owner: &fakeActor{}}); r.Splits != 0 {
		t.Fatalf("splits = %d, want 0", r.Splits)
	}

	empty := NewBuilder().Init()
	if r := empty.OnImpact(ImpactEvent{World: w, Effect: Effect{Marks: MarksOf(MarkOwned)}}); r.Reason != ReasonNoLoadout {
		t.Fatalf("reason = %q, want %q", r.Reason, ReasonNoLoadout)
	}
}

func TestImpactNoWorld(t *testing.T) {
	eng := newTestEngine(Loadout{"weave:fireball", "weave:split_on_hit"})
	if r := eng.OnImpact(ImpactEvent{Effect: Effect{Marks: MarksOf(MarkOwned)}}); r.Reason != ReasonNoWorld {
		t.Fatalf("reason = %q, want %q", r.Reason, ReasonNoWorld)
	}
}

func TestSplitStacksInStore(t *testing.T) {
	eng := NewBuilder().Init()
	l := Loadout{"weave:split_on_hit", "weave:split_on_hit", "weave:explode_on_hit"}
	ctx := eng.NewContext(&fakeWorld{}, &fakeActor{}, SourceCommand, l)
	eng.Run(l.Resolve(eng.Registry()), ctx)
	if !ctx.Store.SplitOnHit || ctx.Store.SplitCount != 2 || !ctx.Store.ExplodeOnHit {
		t.Fatalf("store = %+v, want two splits and an explosion", ctx.Store)
	}
}

func TestCreateSplitRequiresCloner(t *testing.T) {
	var calls []string
	parent := NewContext(&fakeWorld{}, &fakeActor{}, SourceImpact)
	if n := CreateSplit(parent, newRec(&calls, "plain", Producer), mgl64.Vec3{}); n != 0 {
		t.Fatalf("clones = %d, want 0", n)
	}
	if n := CreateSplit(parent, NewSplitOnHit(), mgl64.Vec3{}); n != 0 {
		t.Fatalf("clones = %d, want 0", n)
	}
}
