package dfa

import (
	"github.com/ghallak/lexical-analyzer/automaton"
	"github.com/ghallak/lexical-analyzer/regex"
	"github.com/ghallak/lexical-analyzer/regextree"
)

type directWork struct {
	id  automaton.StateID
	set regextree.LeafSet
}

// FromAugmentedTree builds a DFA directly from t via the firstpos/followpos
// method, without ever constructing an NFA: each DFA state is a set of leaf
// positions, seeded from firstpos(root) and extended by the followpos
// relation. A state containing an EndMarker leaf is accepting, tagged with
// that leaf's end-marker token id. State ids are assigned in worklist
// insertion order, mirroring FromNFA's determinism guarantee.
func FromAugmentedTree(t *regextree.AugmentedRegexTree, opts ...Option) (*DFA, error) {
	o := applyOptions(opts)

	d := &DFA{FiniteAutomaton: automaton.New()}
	known := make(map[string]automaton.StateID)
	var worklist []directWork

	s0 := t.FirstposRoot()
	id0 := d.AddState()
	known[s0.Key()] = id0
	worklist = append(worklist, directWork{id: id0, set: s0})
	d.start = id0

	alphabet := directAlphabet(t)

	for len(worklist) > 0 {
		work := worklist[0]
		worklist = worklist[1:]

		winner, accepting := 0, false
		for _, pos := range work.set.Sorted() {
			if id, ok := t.Label(pos).EndMarkerID(); ok {
				if !accepting || id < winner {
					winner, accepting = id, true
				}
			}
		}
		if accepting {
			d.MarkAccepting(work.id, winner)
		}

		for _, sym := range alphabet {
			u := regextree.NewLeafSet()
			for pos := range work.set {
				if t.Label(pos) == sym {
					u.AddAll(t.Followpos(pos))
				}
			}
			if len(u) == 0 {
				continue
			}

			targetID, ok := known[u.Key()]
			if !ok {
				targetID = d.AddState()
				known[u.Key()] = targetID
				worklist = append(worklist, directWork{id: targetID, set: u})
			}
			d.AddTransition(work.id, targetID, sym)
		}
	}

	tracer().Debugf("direct construction produced %d DFA states from %d leaves", d.NumStates(), t.NumLeaves())

	if o.autoMinimize {
		return d.Minimize(), nil
	}
	return d, nil
}

// directAlphabet collects the non-EndMarker symbols labelling t's leaves,
// in left-to-right leaf discovery order, deduplicated on first sight.
func directAlphabet(t *regextree.AugmentedRegexTree) []regex.Symbol {
	var alphabet []regex.Symbol
	seen := make(map[regex.Symbol]bool)
	for _, leaf := range t.Leaves() {
		sym, err := leaf.Label()
		if err != nil {
			continue
		}
		if sym.IsEndMarker() || seen[sym] {
			continue
		}
		seen[sym] = true
		alphabet = append(alphabet, sym)
	}
	return alphabet
}
