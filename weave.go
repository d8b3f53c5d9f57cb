// Package weave provides a composable spell pipeline for Dragonfly servers.
//
// A player assembles a short ordered list of modules on a spell core. Casting
// runs that list through an Executor that lets modules:
//   - mutate a per-cast execution Context
//   - influence the module that follows them
//   - stop the pipeline or skip upcoming modules
//   - fail without aborting the rest of the cast
//
// Effects produced later, such as a projectile hitting something, re-enter the
// module protocol through the impact Bridge, which runs the split and explode
// modifiers on behalf of the original Producer.
//
// # Quick Start
//
//	cfg, err := weave.LoadConfig("config/weave/modules.json")
//	if err != nil {
//	    return err
//	}
//	eng := weave.NewBuilder().
//	    Config(cfg).
//	    Loadouts(dfweave.HeldLoadouts{}).
//	    Init()
//	dfweave.RegisterCommands(eng)
//
//	for p := range srv.Accept() {
//	    p.Handle(dfweave.NewHandler(eng))
//	}
//
// # Modules
//
// Modules are immutable singletons registered once at startup:
//
//	type Fireball struct{}
//
//	func (Fireball) ID() weave.ID         { return weave.NewID("fireball") }
//	func (Fireball) Kind() weave.Kind     { return weave.Producer }
//	func (Fireball) Execute(ctx *weave.Context) error { ... }
//
// Optional behaviour is expressed through capability interfaces:
//
//	ContextModifier  ModifyContext(ctx)          Modifier only
//	NextModifier     ModifyNext(next, ctx)       Modifier only
//	Cloner           Clone(ctx, origin, dir)     Producer only
//	Gate             ShouldExecute(ctx)          any
//	PostExecutor     PostExecute(ctx)            any
package weave

// Version is the weave version.
const Version = "0.3.0"

// Namespace is the default identifier namespace for built-in modules.
const Namespace = "weave"
