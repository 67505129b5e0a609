// Package nfa implements the Thompson-construction NFA used by the regex
// core: a contiguous array of tagged states built up by [Builder] and later
// consumed by the subset-construction DFA compiler.
//
// States are indexed by integer rather than pointer-linked so that the
// back-edges induced by `*` and `+` are ordinary index stores: the graph
// is cyclic, and an array keeps serialization and debugging simple.
package nfa

import "github.com/coregx/linex/charclass"

// StateID indexes into a Program's state array.
type StateID uint32

// NoTransition is the sentinel for "not yet patched" or "no successor". It
// is distinct from state index 0, so a dangling transition can never be
// confused with a transition that legitimately targets the first state.
const NoTransition StateID = 0xFFFFFFFF

// Kind identifies which fields of a State are meaningful.
type Kind uint8

const (
	// KindEpsilon has up to two unconditional successors (Next1, Next2),
	// used for branch/join/repetition wiring. A trailing NoTransition in
	// either slot means that edge hasn't been patched yet.
	KindEpsilon Kind = iota
	// KindByteMatch consumes exactly one byte value, then continues to Next1.
	KindByteMatch
	// KindClassMatch consumes any byte in Class, then continues to Next1.
	KindClassMatch
	// KindAccept is terminal: reaching it means the pattern matched.
	KindAccept
)

// State is one node of the NFA graph.
type State struct {
	Kind  Kind
	Byte  byte            // valid when Kind == KindByteMatch
	Class charclass.Class // valid when Kind == KindClassMatch
	Next1 StateID
	Next2 StateID // valid when Kind == KindEpsilon
}

// Fragment is a partially-built piece of the NFA: Start is entered to run
// the fragment, End is the state whose dangling transition will be patched
// to whatever follows it in the surrounding construction.
type Fragment struct {
	Start StateID
	End   StateID
}

// Program is a compiled (fully patched) NFA: a start state and an
// immutable array of states, the last of which is always the accept state
// reached by a successful match.
type Program struct {
	States []State
	Start  StateID
	Accept StateID
}
