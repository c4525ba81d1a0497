package resolution

import "testing"

// recordingResolver appends its own name to a shared log when resolved, and
// optionally pushes a further resolver onto the stack before returning.
type recordingResolver struct {
	name   string
	log    *[]string
	pushes []Resolver
	result ResolutionErrorCode
}

func (r *recordingResolver) Name() string { return r.name }
func (r *recordingResolver) Resolve(ctx *Context) ResolutionErrorCode {
	*r.log = append(*r.log, r.name)
	for _, p := range r.pushes {
		ctx.Stack.Push(p)
	}
	return r.result
}

func TestStackRunsLIFO(t *testing.T) {
	var log []string
	ctx := &Context{Stack: &Stack{}}
	ctx.Stack.Push(&recordingResolver{name: "first", log: &log})
	ctx.Stack.Push(&recordingResolver{name: "second", log: &log})

	ctx.Stack.Run(ctx)

	want := []string{"second", "first"}
	if len(log) != len(want) {
		t.Fatalf("got %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, log[i], want[i])
		}
	}
}

// TestStackPushedResolverRunsAfterPusherReturns is the deferred-continuation
// invariant: a resolver pushed mid-Resolve never runs nested inside its
// pusher — it runs only once the pusher's own Resolve call has returned.
func TestStackPushedResolverRunsAfterPusherReturns(t *testing.T) {
	var log []string
	ctx := &Context{Stack: &Stack{}}
	child := &recordingResolver{name: "child", log: &log}
	parent := &recordingResolver{name: "parent", log: &log, pushes: []Resolver{child}}
	ctx.Stack.Push(parent)

	ctx.Stack.Run(ctx)

	want := []string{"parent", "child"}
	if len(log) != len(want) {
		t.Fatalf("got %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, log[i], want[i])
		}
	}
}

func TestStackRecordsHistory(t *testing.T) {
	var log []string
	ctx := &Context{Stack: &Stack{}}
	ctx.Stack.Push(&recordingResolver{name: "ok", log: &log, result: Success})
	ctx.Stack.Push(&recordingResolver{name: "bad", log: &log, result: InvalidTarget})

	ctx.Stack.Run(ctx)

	if len(ctx.Stack.History) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(ctx.Stack.History))
	}
	if ctx.Stack.History[0].ResolverName != "bad" || ctx.Stack.History[0].Result != InvalidTarget {
		t.Errorf("unexpected first history entry: %+v", ctx.Stack.History[0])
	}
	if ctx.Stack.History[1].ResolverName != "ok" || ctx.Stack.History[1].Result != Success {
		t.Errorf("unexpected second history entry: %+v", ctx.Stack.History[1])
	}
}

func TestStackRunUnnamedResolverFallsBackToGenericName(t *testing.T) {
	ctx := &Context{Stack: &Stack{}}
	ctx.Stack.Push(&unnamedResolver{})
	ctx.Stack.Run(ctx)
	if ctx.Stack.History[0].ResolverName != "resolver" {
		t.Errorf("expected the generic fallback name, got %q", ctx.Stack.History[0].ResolverName)
	}
}

type unnamedResolver struct{}

func (u *unnamedResolver) Resolve(ctx *Context) ResolutionErrorCode { return Success }
