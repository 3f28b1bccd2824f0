/*
Package dfa determinizes an NFA into a DFA by subset construction, builds a
DFA directly from an AugmentedRegexTree via firstpos/followpos, and
minimizes a DFA by Hopcroft-style partition refinement.
*/
package dfa

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/ghallak/lexical-analyzer/automaton"
	"github.com/ghallak/lexical-analyzer/regex"
)

func tracer() tracing.Trace {
	return tracing.Select("lexan.dfa")
}

// DFA specializes automaton.FiniteAutomaton with the determinism invariant:
// a single start state and, at most, one transition per (state, symbol)
// pair.
type DFA struct {
	*automaton.FiniteAutomaton
	start automaton.StateID
}

// Start returns the DFA's unique start state.
func (d *DFA) Start() automaton.StateID { return d.start }

// Transition returns the state reached from id on sym, and true if that
// transition is defined.
func (d *DFA) Transition(id automaton.StateID, sym regex.Symbol) (automaton.StateID, bool) {
	for _, tr := range d.Transitions(id) {
		if tr.Symbol == sym {
			return tr.Target, true
		}
	}
	return 0, false
}

// options collects the functional-option settings shared by FromNFA and
// FromAugmentedTree.
type options struct {
	autoMinimize bool
}

// Option configures a DFA construction call.
type Option func(*options)

// WithAutoMinimize runs Minimize on the freshly constructed DFA before
// returning it, so callers who always minimize don't need a separate call.
func WithAutoMinimize() Option {
	return func(o *options) { o.autoMinimize = true }
}

func applyOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
