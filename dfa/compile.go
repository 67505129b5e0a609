package dfa

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/coregx/linex/charclass"
	"github.com/coregx/linex/internal/conv"
	"github.com/coregx/linex/nfa"
)

// ErrTooComplex is returned when subset construction would exceed the
// compile-time state cap. Compilation stops before the offending state
// is added, so a too-complex regex never produces a partial DFA.
var ErrTooComplex = errors.New("pattern too complex")

// DefaultMaxStates is the state cap used by [Compile] unless a caller
// supplies a smaller one via [CompileWithLimit].
const DefaultMaxStates = 10000

// Compile builds a DFA from prog via classical subset construction,
// capped at [DefaultMaxStates] states.
func Compile(prog *nfa.Program) (*DFA, error) {
	return CompileWithLimit(prog, DefaultMaxStates)
}

// CompileWithLimit is [Compile] with an explicit state cap.
func CompileWithLimit(prog *nfa.Program, maxStates int) (*DFA, error) {
	c := &compiler{prog: prog, maxStates: maxStates, index: make(map[string]StateID)}
	return c.run()
}

type compiler struct {
	prog      *nfa.Program
	maxStates int
	index     map[string]StateID
	subsets   [][]nfa.StateID
	states    []State
}

// run performs the breadth-first subset-construction sweep: the first-seen
// subset is registered as DFA state 0, and each subsequent subset reached
// while expanding the queue is assigned the next index in discovery order.
// Two compilations of the same program see the same canonical keys in the
// same order, so the resulting table is byte-identical across runs.
func (c *compiler) run() (*DFA, error) {
	start := c.prog.EpsilonClosure([]nfa.StateID{c.prog.Start})
	if _, err := c.register(start); err != nil {
		return nil, err
	}

	for next := StateID(0); int(next) < len(c.subsets); next++ {
		if err := c.expand(next); err != nil {
			return nil, err
		}
	}
	return &DFA{States: c.states}, nil
}

// register assigns subset a fresh DFA index if it hasn't been seen before,
// returning the existing index otherwise. It's the only place a new state
// row is appended, so it's the only place the state cap is enforced.
func (c *compiler) register(subset []nfa.StateID) (StateID, error) {
	key := canonicalKey(subset)
	if id, ok := c.index[key]; ok {
		return id, nil
	}
	if len(c.states) >= c.maxStates {
		return 0, fmt.Errorf("%w: exceeded %d states", ErrTooComplex, c.maxStates)
	}
	id := StateID(conv.IntToUint32(len(c.states)))
	c.index[key] = id
	c.subsets = append(c.subsets, subset)
	c.states = append(c.states, State{Accept: c.containsAccept(subset)})
	// Initialize every transition to the dead sentinel; expand fills in
	// the reachable ones.
	for b := range c.states[id].Trans {
		c.states[id].Trans[b] = Dead
	}
	return id, nil
}

func (c *compiler) containsAccept(subset []nfa.StateID) bool {
	for _, id := range subset {
		if id == c.prog.Accept {
			return true
		}
	}
	return false
}

// expand computes every byte transition out of the subset assigned to id.
func (c *compiler) expand(id StateID) error {
	subset := c.subsets[id]
	var image []nfa.StateID
	for b := 0; b < charclass.NumBytes; b++ {
		image = image[:0]
		for _, sid := range subset {
			s := &c.prog.States[sid]
			switch s.Kind {
			case nfa.KindByteMatch:
				if s.Byte == byte(b) {
					image = append(image, s.Next1)
				}
			case nfa.KindClassMatch:
				if s.Class.Contains(byte(b)) {
					image = append(image, s.Next1)
				}
			}
		}
		if len(image) == 0 {
			continue // leave Dead
		}
		closure := c.prog.EpsilonClosure(image)
		target, err := c.register(closure)
		if err != nil {
			return err
		}
		c.states[id].Trans[b] = target
	}
	return nil
}

// canonicalKey encodes a sorted subset of NFA state IDs as a string so it
// can key a map. EpsilonClosure already returns its result sorted, so this
// only needs to join it.
func canonicalKey(subset []nfa.StateID) string {
	if len(subset) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, id := range subset {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return sb.String()
}
