package weave

import (
	"slices"
	"strings"
	"testing"
)

func TestExecutorEmptyList(t *testing.T) {
	log, buf := bufferLogger()
	res := NewExecutor(log).Run(nil, NewContext(nil, nil, SourceCommand))
	if res.State != Completed {
		t.Fatalf("state = %v, want %v", res.State, Completed)
	}
	if res.Executed != 0 || res.Skipped != 0 || res.Failed != 0 {
		t.Fatalf("result = %+v, want zero counts", res)
	}
	if !strings.Contains(buf.String(), "empty module list") {
		t.Fatalf("log = %q, want empty list warning", buf.String())
	}
}

func TestExecutorFailuresDoNotHalt(t *testing.T) {
	var calls []string
	failing := newRec(&calls, "failing", Producer)
	failing.exec = func(*Context) error { return errBoom }
	panicking := newRec(&calls, "panicking", Producer)
	panicking.exec = func(*Context) error { panic("bad state") }
	last := newRec(&calls, "last", Producer)

	log, buf := bufferLogger()
	res := NewExecutor(log).Run([]Module{failing, panicking, last}, NewContext(nil, nil, SourceCommand))

	if want := []string{"failing", "panicking", "last"}; !slices.Equal(calls, want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	if res.State != Completed || res.Failed != 2 || res.Executed != 1 {
		t.Fatalf("result = %+v, want completed with 2 failed and 1 executed", res)
	}
	out := buf.String()
	if !strings.Contains(out, "weave:failing") || !strings.Contains(out, "weave:panicking") {
		t.Fatalf("log = %q, want both module ids", out)
	}
}

func TestExecutorSkipNext(t *testing.T) {
	var calls []string
	mod := newRec(&calls, "skipper", Modifier)
	mod.modCtx = func(ctx *Context) error {
		ctx.SkipNext()
		return nil
	}
	a := newRec(&calls, "a", Producer)
	b := newRec(&calls, "b", Producer)

	res := NewExecutor(nil).Run([]Module{mod, a, b}, NewContext(nil, nil, SourceCommand))

	want := []string{"skipper.ctx", "skipper.next:a", "skipper", "b"}
	if !slices.Equal(calls, want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	if res.Skipped != 1 {
		t.Fatalf("skipped = %d, want 1", res.Skipped)
	}
}

func TestExecutorSkipCount(t *testing.T) {
	tests := []struct {
		name string
		k    int
		want []string
	}{
		{name: "zero", k: 0, want: []string{"skipper", "a", "b", "c"}},
		{name: "one", k: 1, want: []string{"skipper", "b", "c"}},
		{name: "two", k: 2, want: []string{"skipper", "c"}},
		{name: "beyond end", k: 5, want: []string{"skipper"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []string
			skipper := newRec(&calls, "skipper", Producer)
			skipper.exec = func(ctx *Context) error {
				ctx.Skip(tt.k)
				return nil
			}
			mods := []Module{skipper, newRec(&calls, "a", Producer), newRec(&calls, "b", Producer), newRec(&calls, "c", Producer)}

			ctx := NewContext(nil, nil, SourceCommand)
			res := NewExecutor(nil).Run(mods, ctx)
			if !slices.Equal(calls, tt.want) {
				t.Fatalf("calls = %v, want %v", calls, tt.want)
			}
			if res.Skipped != min(tt.k, 3) {
				t.Fatalf("skipped = %d, want %d", res.Skipped, min(tt.k, 3))
			}
		})
	}
}

func TestExecutorStop(t *testing.T) {
	var calls []string
	a := newRec(&calls, "a", Producer)
	stopper := newRec(&calls, "stopper", Producer)
	stopper.exec = func(ctx *Context) error {
		ctx.Stop()
		return nil
	}
	c := newRec(&calls, "c", Producer)

	res := NewExecutor(nil).Run([]Module{a, stopper, c}, NewContext(nil, nil, SourceCommand))
	if want := []string{"a", "stopper"}; !slices.Equal(calls, want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	if res.State != Halted {
		t.Fatalf("state = %v, want %v", res.State, Halted)
	}
}

func TestExecutorStopByLastModule(t *testing.T) {
	var calls []string
	stopper := newRec(&calls, "stopper", Producer)
	stopper.exec = func(ctx *Context) error {
		ctx.Stop()
		return nil
	}
	res := NewExecutor(nil).Run([]Module{stopper}, NewContext(nil, nil, SourceCommand))
	if res.State != Halted {
		t.Fatalf("state = %v, want %v", res.State, Halted)
	}
}

func TestExecutorHooksOnlyForModifiers(t *testing.T) {
	var calls []string
	producer := newRec(&calls, "producer", Producer)
	modifier := newRec(&calls, "modifier", Modifier)

	NewExecutor(nil).Run([]Module{producer, modifier}, NewContext(nil, nil, SourceCommand))

	// The trailing modifier has no next module.
	want := []string{"producer", "modifier.ctx", "modifier"}
	if !slices.Equal(calls, want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
}

func TestExecutorHookFailureSkipsExecute(t *testing.T) {
	var calls []string
	modifier := newRec(&calls, "modifier", Modifier)
	modifier.modCtx = func(*Context) error { return errBoom }
	after := newRec(&calls, "after", Producer)

	res := NewExecutor(nil).Run([]Module{modifier, after}, NewContext(nil, nil, SourceCommand))
	if want := []string{"modifier.ctx", "after"}; !slices.Equal(calls, want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	if res.Failed != 1 || res.Executed != 1 {
		t.Fatalf("result = %+v, want 1 failed and 1 executed", res)
	}
}

func TestExecutorIndex(t *testing.T) {
	var calls, seen []string
	mods := make([]Module, 3)
	for i, name := range []string{"a", "b", "c"} {
		m := newRec(&calls, name, Producer)
		m.exec = func(ctx *Context) error {
			seen = append(seen, string(rune('0'+ctx.Index())))
			return nil
		}
		mods[i] = m
	}
	NewExecutor(nil).Run(mods, NewContext(nil, nil, SourceCommand))
	if want := []string{"0", "1", "2"}; !slices.Equal(seen, want) {
		t.Fatalf("indexes = %v, want %v", seen, want)
	}
}

type gatedModule struct {
	*recModule
	allow bool
	post  *int
}

func (g gatedModule) ShouldExecute(*Context) bool { return g.allow }
func (g gatedModule) PostExecute(*Context)        { *g.post++ }

func TestExecutorGateAndPostExecute(t *testing.T) {
	var calls []string
	var posts int
	closed := gatedModule{recModule: newRec(&calls, "closed", Producer), post: &posts}
	open := gatedModule{recModule: newRec(&calls, "open", Producer), allow: true, post: &posts}

	res := NewExecutor(nil).Run([]Module{closed, open}, NewContext(nil, nil, SourceCommand))
	if want := []string{"open"}; !slices.Equal(calls, want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	if posts != 1 {
		t.Fatalf("post executions = %d, want 1", posts)
	}
	if res.Skipped != 1 || res.Executed != 1 {
		t.Fatalf("result = %+v, want 1 skipped and 1 executed", res)
	}
}

func TestExecutorNilModule(t *testing.T) {
	var calls []string
	res := NewExecutor(nil).Run([]Module{nil, newRec(&calls, "a", Producer)}, NewContext(nil, nil, SourceCommand))
	if want := []string{"a"}; !slices.Equal(calls, want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	if res.Skipped != 1 {
		t.Fatalf("skipped = %d, want 1", res.Skipped)
	}
}

func TestStateString(t *testing.T) {
	if got := Halted.String(); got != "Halted" {
		t.Fatalf("Halted.String() = %q, want %q", got, "Halted")
	}
	if got := State(42).String(); got != "Unknown" {
		t.Fatalf("State(42).String() = %q, want %q", got, "Unknown")
	}
}
