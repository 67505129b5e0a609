package nfa

import (
	"fmt"

	"github.com/coregx/linex/charclass"
	"github.com/coregx/linex/internal/conv"
)

// Builder constructs an NFA incrementally: each grammar production calls
// one of the AddXxx methods to create a state (or states) with dangling
// successors, then uses Patch and Concat to wire fragments together.
type Builder struct {
	states []State
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{states: make([]State, 0, 16)}
}

func (b *Builder) push(s State) StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, s)
	return id
}

// AddByteMatch creates a one-state fragment that consumes exactly byte c.
func (b *Builder) AddByteMatch(c byte) Fragment {
	id := b.push(State{Kind: KindByteMatch, Byte: c, Next1: NoTransition})
	return Fragment{Start: id, End: id}
}

// AddClassMatch creates a one-state fragment that consumes any byte in cls.
func (b *Builder) AddClassMatch(cls charclass.Class) Fragment {
	id := b.push(State{Kind: KindClassMatch, Class: cls, Next1: NoTransition})
	return Fragment{Start: id, End: id}
}

// AddEpsilonJoin creates a one-state fragment with both successors dangling,
// used as a join/anchor point with no consuming behavior of its own.
func (b *Builder) AddEpsilonJoin() Fragment {
	id := b.push(State{Kind: KindEpsilon, Next1: NoTransition, Next2: NoTransition})
	return Fragment{Start: id, End: id}
}

// addSplit creates an Epsilon state whose two successors are already known.
func (b *Builder) addSplit(next1, next2 StateID) StateID {
	return b.push(State{Kind: KindEpsilon, Next1: next1, Next2: next2})
}

// Patch writes target into the first empty (NoTransition) successor slot of
// state id: for an Epsilon state that's Next1 then Next2; for a
// ByteMatch/ClassMatch state, only Next1. It panics if id names an Accept
// state or if both slots are already filled — either indicates a
// construction bug, since the patch-once discipline must never overwrite a
// previously patched edge.
func (b *Builder) Patch(id StateID, target StateID) {
	s := &b.states[id]
	switch s.Kind {
	case KindAccept:
		panic("nfa: cannot patch an Accept state")
	case KindEpsilon:
		if s.Next1 == NoTransition {
			s.Next1 = target
			return
		}
		if s.Next2 == NoTransition {
			s.Next2 = target
			return
		}
		panic(fmt.Sprintf("nfa: state %d has no empty slot to patch", id))
	default: // ByteMatch, ClassMatch
		if s.Next1 != NoTransition {
			panic(fmt.Sprintf("nfa: state %d has no empty slot to patch", id))
		}
		s.Next1 = target
	}
}

// Concat patches a's dangling end to b's start and returns the combined
// fragment.
func (b *Builder) Concat(a, bFrag Fragment) Fragment {
	b.Patch(a.End, bFrag.Start)
	return Fragment{Start: a.Start, End: bFrag.End}
}

// Alternate builds the `a|b` fragment: a new split state branches to both
// starts, and a new join state is the patched target of both ends.
func (b *Builder) Alternate(a, bFrag Fragment) Fragment {
	join := b.AddEpsilonJoin()
	b.Patch(a.End, join.Start)
	b.Patch(bFrag.End, join.Start)
	split := b.addSplit(a.Start, bFrag.Start)
	return Fragment{Start: split, End: join.Start}
}

// Star builds the `a*` fragment. The split's first successor enters a,
// looped back from a's end; its second successor is left dangling as the
// fragment's exit, patched by whatever follows.
func (b *Builder) Star(a Fragment) Fragment {
	split := b.addSplit(a.Start, NoTransition)
	b.Patch(a.End, split)
	return Fragment{Start: split, End: split}
}

// Plus builds the `a+` fragment: a must be matched once before the loop is
// offered, so the fragment is entered at a.Start rather than at the split.
func (b *Builder) Plus(a Fragment) Fragment {
	split := b.addSplit(a.Start, NoTransition)
	b.Patch(a.End, split)
	return Fragment{Start: a.Start, End: split}
}

// Quest builds the `a?` fragment: a new join state is the common target for
// both "skip a" (the split's second successor) and "after a" (a.End,
// patched immediately). The fragment's own dangling slot is the join's.
func (b *Builder) Quest(a Fragment) Fragment {
	join := b.AddEpsilonJoin()
	b.Patch(a.End, join.Start)
	split := b.addSplit(a.Start, join.Start)
	return Fragment{Start: split, End: join.Start}
}

// AddAnchor builds the fragment for `^` or `$`: a plain epsilon, since
// this core already matches `Matches` anchored at both ends and treats
// `^`/`$` as structural no-ops rather than position assertions.
func (b *Builder) AddAnchor() Fragment {
	return b.AddEpsilonJoin()
}

// Finish patches end's dangling slot to a fresh Accept state and returns
// the completed Program.
func (b *Builder) Finish(top Fragment) Program {
	accept := b.push(State{Kind: KindAccept})
	b.Patch(top.End, accept)
	return Program{States: b.states, Start: top.Start, Accept: accept}
}
