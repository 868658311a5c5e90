package kano_test

import (
	"strings"
	"testing"

	"github.com/Zero5620/Kano/pkg/kano"
	"github.com/Zero5620/Kano/pkg/kano/builtins"
	"github.com/Zero5620/Kano/pkg/kano/samples"
	"github.com/gkampitakis/go-snaps/snaps"
)

func runSample(t *testing.T, name string) string {
	t.Helper()
	scope, ok := samples.Get(name)
	if !ok {
		t.Fatalf("unknown sample %q", name)
	}

	r := kano.Build()
	var out strings.Builder
	builtins.RegisterPrint(r, &out)

	program, err := kano.Compile(r, scope)
	if err != nil {
		t.Fatalf("Compile(%s): %v", name, err)
	}
	if _, err := program.Run(kano.DefaultStackSize, kano.DefaultGlobalSize); err != nil {
		t.Fatalf("Run(%s): %v", name, err)
	}
	return out.String()
}

// TestFibonacci is spec.md §8 scenario 1: fib(10) printed via a ccall.
func TestFibonacci(t *testing.T) {
	if got, want := runSample(t, "fibonacci"), "55"; got != want {
		t.Errorf("fibonacci output = %q, want %q", got, want)
	}
}

// TestPointerArithmetic is spec.md §8 scenario 2: advancing a pointer two
// elements past &a[0] and writing through it only disturbs a[2].
func TestPointerArithmetic(t *testing.T) {
	if got, want := runSample(t, "pointers"), "10 20 7 40"; got != want {
		t.Errorf("pointers output = %q, want %q", got, want)
	}
}

// TestVariadicPrint is spec.md §8 scenario 4: a variadic print call
// concatenating mixed-type arguments with no separator.
func TestVariadicPrint(t *testing.T) {
	if got, want := runSample(t, "variadic-print"), "x=1 y=2.5"; got != want {
		t.Errorf("variadic-print output = %q, want %q", got, want)
	}
}

// TestLinkedList is spec.md §8 scenario 5: a struct with a self-referential
// pointer member, walked with a `node != null` pointer-comparison loop
// condition — grounding resolvePointerBinary's POINTER,POINTER overloads.
func TestLinkedList(t *testing.T) {
	if got, want := runSample(t, "linked-list"), "1 2 "; got != want {
		t.Errorf("linked-list output = %q, want %q", got, want)
	}
}

// TestAllSamplesSnapshot pins every built-in sample's output with go-snaps,
// so an unintentional change anywhere in the resolver/interpreter pipeline
// shows up as a snapshot diff even if no single assertion above catches it.
func TestAllSamplesSnapshot(t *testing.T) {
	for _, name := range samples.Names {
		t.Run(name, func(t *testing.T) {
			snaps.MatchSnapshot(t, name+"_output", runSample(t, name))
		})
	}
}
