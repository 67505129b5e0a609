package nfa

// EpsilonClosure computes the set of states reachable from seeds via zero
// or more Epsilon transitions, seeds included. It's a work-list traversal
// that's idempotent and monotonic: repeated expansion of an already-closed
// set returns the same set.
//
// The result is returned as a sorted slice of distinct StateIDs, which
// doubles as the canonical key the DFA compiler uses to deduplicate
// subsets.
func (p *Program) EpsilonClosure(seeds []StateID) []StateID {
	seen := newStateSet(len(p.States))
	for _, s := range seeds {
		seen.Insert(s)
	}

	work := seen.Values()
	for i := 0; i < len(work); i++ {
		s := &p.States[work[i]]
		if s.Kind != KindEpsilon {
			continue
		}
		for _, next := range [2]StateID{s.Next1, s.Next2} {
			if next == NoTransition || seen.Contains(next) {
				continue
			}
			seen.Insert(next)
			work = seen.Values()
		}
	}

	out := append([]StateID(nil), seen.Values()...)
	sortStateIDs(out)
	return out
}

func sortStateIDs(ids []StateID) {
	// Insertion sort: closures are small (bounded by program size), and
	// this avoids pulling in sort just for a StateID slice.
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}
