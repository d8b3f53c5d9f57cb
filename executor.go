package weave

import (
	"fmt"
	"log/slog"
)

// State is the state of a pipeline run.
type State int

const (
	// Running is the state while modules are being executed.
	Running State = iota
	// Halted is reached when a module stops the pipeline.
	Halted
	// Completed is reached when the end of the module list is reached.
	Completed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Halted:
		return "Halted"
	case Completed:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Result summarises one pipeline run.
type Result struct {
	// State is Halted or Completed.
	State State
	// Executed counts modules whose Execute returned without error.
	Executed int
	// Skipped counts modules skipped by directives, gates or nil entries.
	Skipped int
	// Failed counts modules whose hooks or Execute returned an error or panicked.
	Failed int
}

// Executor drives a module list through a Context.
//
// An Executor holds no per-run state and is safe for concurrent use, as long
// as each run has its own Context.
type Executor struct {
	log *slog.Logger
}

// NewExecutor creates an executor. A nil logger uses slog.Default().
func NewExecutor(log *slog.Logger) *Executor {
	if log == nil {
		log = slog.Default()
	}
	return &Executor{log: log}
}

// Run executes mods in order against ctx.
//
// Stop halts the run before the next module. SkipNext consumes exactly one
// upcoming module and Skip(n) consumes the next n. Errors and panics raised by
// a module are logged and the run proceeds with the next index.
func (e *Executor) Run(mods []Module, ctx *Context) Result {
	if len(mods) == 0 {
		e.log.Warn("weave: attempted to execute empty module list")
		return Result{State: Completed}
	}

	var res Result
	for i, m := range mods {
		if !ctx.Continuing() {
			res.State = Halted
			return res
		}
		if ctx.skipNext {
			ctx.skipNext = false
			res.Skipped++
			continue
		}
		if ctx.skipCount > 0 {
			ctx.skipCount--
			res.Skipped++
			continue
		}
		if m == nil {
			e.log.Warn("weave: nil module in pipeline", "index", i)
			res.Skipped++
			continue
		}

		ctx.index = i
		var next Module
		if i+1 < len(mods) {
			next = mods[i+1]
		}

		ran, err := e.step(m, next, ctx)
		switch {
		case err != nil:
			res.Failed++
			e.log.Error("weave: error executing module",
				"module", m.ID().String(), "index", i, "error", err)
		case ran:
			res.Executed++
		default:
			res.Skipped++
		}
	}

	if !ctx.Continuing() {
		res.State = Halted
	} else {
		res.State = Completed
	}
	return res
}

// step runs the hooks and Execute of one module with panic recovery.
// It reports false without error when a Gate declined the module.
func (e *Executor) step(m, next Module, ctx *Context) (ran bool, err error) {
	ctx.running = m
	defer func() {
		ctx.running = nil
		if r := recover(); r != nil {
			ran = false
			err = fmt.Errorf("panic in module %s: %v", m.ID(), r)
		}
	}()

	if g, ok := m.(Gate); ok && !g.ShouldExecute(ctx) {
		return false, nil
	}

	if m.Kind() == Modifier {
		if cm, ok := m.(ContextModifier); ok {
			if err := cm.ModifyContext(ctx); err != nil {
				return false, fmt.Errorf("modify context: %w", err)
			}
		}
		if nm, ok := m.(NextModifier); ok && next != nil {
			if err := nm.ModifyNext(next, ctx); err != nil {
				return false, fmt.Errorf("modify next: %w", err)
			}
		}
	}

	if err := m.Execute(ctx); err != nil {
		return false, err
	}

	if pe, ok := m.(PostExecutor); ok {
		pe.PostExecute(ctx)
	}
	return true, nil
}
