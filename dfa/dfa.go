// Package dfa implements the regex core's deterministic finite automaton:
// subset construction from an NFA program (compile.go) and the two public
// matching operations over compiled state tables (this file).
package dfa

import "github.com/coregx/linex/charclass"

// StateID indexes into a DFA's State table.
type StateID uint32

// Dead is the sentinel transition value denoting the implicit dead state:
// the sink reached on any byte that can't extend a match.
const Dead StateID = 0xFFFFFFFF

// State is one row of the DFA: one transition target per ASCII byte, plus
// whether reaching this state means the input matched.
type State struct {
	Trans  [charclass.NumBytes]StateID
	Accept bool
}

// DFA is a compiled, immutable automaton. State index 0 is always the
// start state. It's safe for concurrent use: stepping only reads rows,
// never mutates them.
type DFA struct {
	States []State
}

// StateCount reports the number of states in the table: a diagnostic
// surface, not part of the matching contract.
func (d *DFA) StateCount() int {
	if d == nil {
		return 0
	}
	return len(d.States)
}

// IsEmpty reports whether compilation never completed: true iff the DFA
// has no states at all.
func (d *DFA) IsEmpty() bool {
	return d == nil || len(d.States) == 0
}

// Matches runs the DFA over the whole of text, anchored at offset 0: every
// byte must be consumed. A non-ASCII byte or a dead transition fails the
// attempt immediately. Returns the accept flag of the state reached after
// consuming all of text.
func (d *DFA) Matches(text []byte) bool {
	if d.IsEmpty() {
		return false
	}
	state := StateID(0)
	for _, c := range text {
		if c >= charclass.NumBytes {
			return false
		}
		state = d.States[state].Trans[c]
		if state == Dead {
			return false
		}
	}
	return d.States[state].Accept
}

// Search finds the leftmost occurrence of the regex in text: the smallest
// starting offset s for which some prefix of text[s:] drives the DFA to an
// accept state. It returns that offset, or (0, false) if no starting
// position matches.
//
// Each starting offset is scanned independently from state 0, so the worst
// case is O(len(text)²), e.g. a pattern like a*b over a long run of 'a'.
//
// If the start state is itself accepting (the empty-regex case), Search
// returns the starting offset immediately without consuming a byte — spec
// §4.8/§9.
func (d *DFA) Search(text []byte) (int, bool) {
	if d.IsEmpty() {
		return 0, false
	}
	for s := 0; s <= len(text); s++ {
		state := StateID(0)
		if d.States[state].Accept {
			return s, true
		}
		for _, c := range text[s:] {
			if c >= charclass.NumBytes {
				break
			}
			state = d.States[state].Trans[c]
			if state == Dead {
				break
			}
			if d.States[state].Accept {
				return s, true
			}
		}
	}
	return 0, false
}
