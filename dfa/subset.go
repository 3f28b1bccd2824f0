package dfa

import (
	"github.com/ghallak/lexical-analyzer/automaton"
	"github.com/ghallak/lexical-analyzer/internal/iteratable"
	"github.com/ghallak/lexical-analyzer/nfa"
)

// nfaStateSet is the bit-vector eps-closures are expressed in. Its members,
// rendered as a sorted index slice, are keyed into `known` via
// iteratable.Key, so that equal sets (equal contents, regardless of how they
// were reached) collapse onto one DFA state.
type nfaStateSet []bool

func (s nfaStateSet) key() string {
	members := make([]int, 0, len(s))
	for i, in := range s {
		if in {
			members = append(members, i)
		}
	}
	return iteratable.Key(members)
}

func (s nfaStateSet) contains(id automaton.StateID) bool {
	return int(id) < len(s) && s[id]
}

func unionClosures(n *nfa.NFA, sets []nfaStateSet) nfaStateSet {
	u := make(nfaStateSet, n.NumStates())
	for _, s := range sets {
		for i, in := range s {
			if in {
				u[i] = true
			}
		}
	}
	return u
}

type subsetWork struct {
	id  automaton.StateID
	set nfaStateSet
}

// FromNFA determinizes n into a DFA by subset construction: each DFA state
// is a set of NFA states reachable together, built via a worklist seeded
// with the epsilon-closure of n's start state. Alphabet iteration follows
// n's cached alphabet order and state ids are assigned in worklist
// insertion order, so the resulting DFA is deterministic given n.
func FromNFA(n *nfa.NFA, opts ...Option) (*DFA, error) {
	o := applyOptions(opts)

	d := &DFA{FiniteAutomaton: automaton.New()}
	known := make(map[string]automaton.StateID)
	var worklist []subsetWork

	d0 := nfaStateSet(n.EpsClosure(n.Start()))
	id0 := d.AddState()
	known[d0.key()] = id0
	worklist = append(worklist, subsetWork{id: id0, set: d0})
	d.start = id0

	alphabet := n.Alphabet()

	for len(worklist) > 0 {
		work := worklist[0]
		worklist = worklist[1:]

		if work.set.contains(n.Accept()) {
			d.MarkAccepting(work.id, automaton.NoToken)
		}

		for _, sym := range alphabet {
			var moved []automaton.StateID
			for q := 0; q < n.NumStates(); q++ {
				if !work.set[q] {
					continue
				}
				for _, tr := range n.Transitions(automaton.StateID(q)) {
					if tr.Symbol == sym {
						moved = append(moved, tr.Target)
					}
				}
			}
			if len(moved) == 0 {
				continue
			}

			closures := make([]nfaStateSet, len(moved))
			for i, q := range moved {
				closures[i] = nfaStateSet(n.EpsClosure(q))
			}
			target := unionClosures(n, closures)

			targetID, ok := known[target.key()]
			if !ok {
				targetID = d.AddState()
				known[target.key()] = targetID
				worklist = append(worklist, subsetWork{id: targetID, set: target})
			}
			d.AddTransition(work.id, targetID, sym)
		}
	}

	tracer().Debugf("subset construction produced %d DFA states from %d NFA states", d.NumStates(), n.NumStates())

	if o.autoMinimize {
		return d.Minimize(), nil
	}
	return d, nil
}
