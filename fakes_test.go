package weave

import (
	"bytes"
	"errors"
	"log/slog"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

type fakeActor struct {
	pos mgl64.Vec3
	rot cube.Rotation
	eye float64
}

func (a *fakeActor) Position() mgl64.Vec3    { return a.pos }
func (a *fakeActor) Rotation() cube.Rotation { return a.rot }
func (a *fakeActor) EyeHeight() float64      { return a.eye }

type explosion struct {
	pos            mgl64.Vec3
	radius, damage float64
}

type fakeWorld struct {
	spawned    []Projectile
	effects    []Effect
	explosions []explosion
	nearby     Actor
	spawnErr   error
}

func (w *fakeWorld) SpawnProjectile(p Projectile) (Effect, error) {
	if w.spawnErr != nil {
		return Effect{}, w.spawnErr
	}
	e := EffectOf(p)
	w.spawned = append(w.spawned, p)
	w.effects = append(w.effects, e)
	return e, nil
}

func (w *fakeWorld) Explode(pos mgl64.Vec3, radius, damage float64) error {
	w.explosions = append(w.explosions, explosion{pos: pos, radius: radius, damage: damage})
	return nil
}

func (w *fakeWorld) NearestActor(pos mgl64.Vec3, radius float64) (Actor, bool) {
	if w.nearby == nil {
		return nil, false
	}
	return w.nearby, true
}

var errBoom = errors.New("boom")

// recModule records its invocations in a shared log.
type recModule struct {
	Meta
	log     *[]string
	exec    func(ctx *Context) error
	modCtx  func(ctx *Context) error
	modNext func(next Module, ctx *Context) error
}

func newRec(log *[]string, path string, kind Kind) *recModule {
	return &recModule{Meta: NewMeta(NewID(path), kind), log: log}
}

func (m *recModule) Stats(*Config) Stats { return Stats{Cost: 1, Cooldown: 2, Complexity: 0.5} }

func (m *recModule) Execute(ctx *Context) error {
	*m.log = append(*m.log, m.ID().Path)
	if m.exec != nil {
		return m.exec(ctx)
	}
	return nil
}

func (m *recModule) ModifyContext(ctx *Context) error {
	*m.log = append(*m.log, m.ID().Path+".ctx")
	if m.modCtx != nil {
		return m.modCtx(ctx)
	}
	return nil
}

func (m *recModule) ModifyNext(next Module, ctx *Context) error {
	*m.log = append(*m.log, m.ID().Path+".next:"+next.ID().Path)
	if m.modNext != nil {
		return m.modNext(next, ctx)
	}
	return nil
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}
