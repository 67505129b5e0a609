package dfa_test

import (
	"errors"
	"testing"

	"github.com/coregx/linex/dfa"
	"github.com/coregx/linex/regexparse"
)

func TestCompileIsDeterministic(t *testing.T) {
	prog1, err := regexparse.Parse("(a|b)*c[0-9]+")
	if err != nil {
		t.Fatal(err)
	}
	prog2, err := regexparse.Parse("(a|b)*c[0-9]+")
	if err != nil {
		t.Fatal(err)
	}
	d1, err := dfa.Compile(&prog1)
	if err != nil {
		t.Fatal(err)
	}
	d2, err := dfa.Compile(&prog2)
	if err != nil {
		t.Fatal(err)
	}
	if d1.StateCount() != d2.StateCount() {
		t.Fatalf("state counts differ: %d vs %d", d1.StateCount(), d2.StateCount())
	}
	for i := 0; i < d1.StateCount(); i++ {
		if d1.States[i].Accept != d2.States[i].Accept {
			t.Fatalf("state %d accept flags differ", i)
		}
		if d1.States[i].Trans != d2.States[i].Trans {
			t.Fatalf("state %d transition rows differ", i)
		}
	}
}

func TestCompileTooComplexFails(t *testing.T) {
	// Eight sequential alternations need nine DFA states (one per consumed
	// position); a tiny cap makes that failure cheap to trigger in a test.
	prog, err := regexparse.Parse("(a|b)(a|b)(a|b)(a|b)(a|b)(a|b)(a|b)(a|b)")
	if err != nil {
		t.Fatal(err)
	}
	_, err = dfa.CompileWithLimit(&prog, 3)
	if !errors.Is(err, dfa.ErrTooComplex) {
		t.Fatalf("CompileWithLimit err = %v, want ErrTooComplex", err)
	}
}

func TestCompileNeverExceedsLimit(t *testing.T) {
	prog, err := regexparse.Parse("[a-z0-9_]+")
	if err != nil {
		t.Fatal(err)
	}
	d, err := dfa.CompileWithLimit(&prog, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if d.StateCount() > 1000 {
		t.Fatalf("state count %d exceeds limit 1000", d.StateCount())
	}
}
