/*
Package automaton provides the state/transition substrate shared by the nfa
and dfa packages: dense state ids, a sparse (state, alphabet-index)
transition table, a cached alphabet built in first-seen discovery order,
and a set of accepting states each optionally tagged with a token id.
*/
package automaton

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/tracing"

	"github.com/ghallak/lexical-analyzer/internal/sparse"
	"github.com/ghallak/lexical-analyzer/regex"
)

func tracer() tracing.Trace {
	return tracing.Select("lexan.automaton")
}

// StateID identifies a state within a single FiniteAutomaton. Ids are dense
// and contiguous; a StateID is only meaningful relative to the automaton
// that issued it.
type StateID int

// NoToken marks an accepting state with no associated token id (the common
// case: a single, untagged accepted language).
const NoToken = -1

// Transition is an edge to a target state labelled by a Symbol. Symbol may
// be regex.Epsilon-kinded only within an NFA.
type Transition struct {
	Target StateID
	Symbol regex.Symbol
}

// FiniteAutomaton is the owning aggregate of states, transitions, the
// alphabet they're labelled with, and the set of accepting states.
// Non-epsilon transitions are stored in a sparse.IntMatrix keyed
// (state id, alphabet index): most (state, symbol) pairs have no
// transition at all, so a dense table would waste the bulk of its cells.
// Epsilon transitions (NFA only, never part of the alphabet) are kept in
// a side table instead, since they're naturally sparse per-state fan-out
// rather than a (state, symbol) matrix cell.
type FiniteAutomaton struct {
	numStates   int
	alphabet    []regex.Symbol
	symbolIndex map[regex.Symbol]int
	table       *sparse.IntMatrix
	epsilon     map[StateID][]StateID
	accept      map[StateID]int
}

// New returns an empty FiniteAutomaton.
func New() *FiniteAutomaton {
	return &FiniteAutomaton{
		symbolIndex: make(map[regex.Symbol]int),
		table:       sparse.NewIntMatrix(0, 0, sparse.DefaultNullValue),
		epsilon:     make(map[StateID][]StateID),
		accept:      make(map[StateID]int),
	}
}

// AddState creates a fresh state and returns its dense id.
func (fa *FiniteAutomaton) AddState() StateID {
	id := StateID(fa.numStates)
	fa.numStates++
	return id
}

// AddTransition adds an edge from -sym-> to. A non-epsilon sym is assigned
// a column in the transition table the first time it's seen, and recorded
// in the cached alphabet in that same order.
func (fa *FiniteAutomaton) AddTransition(from, to StateID, sym regex.Symbol) {
	if sym.IsEpsilon() {
		fa.epsilon[from] = append(fa.epsilon[from], to)
		return
	}
	col := fa.columnFor(sym)
	fa.table.Set(int(from), col, int32(to))
}

func (fa *FiniteAutomaton) columnFor(sym regex.Symbol) int {
	col, ok := fa.symbolIndex[sym]
	if !ok {
		col = len(fa.alphabet)
		fa.symbolIndex[sym] = col
		fa.alphabet = append(fa.alphabet, sym)
	}
	return col
}

// NumStates returns the number of states in fa.
func (fa *FiniteAutomaton) NumStates() int {
	return fa.numStates
}

// Transitions returns the outgoing transitions of state id: every epsilon
// transition first, then every alphabet-indexed transition in alphabet
// order, so the result is deterministic given fa's construction history.
func (fa *FiniteAutomaton) Transitions(id StateID) []Transition {
	var out []Transition
	for _, to := range fa.epsilon[id] {
		out = append(out, Transition{Target: to, Symbol: regex.NewEpsilon()})
	}
	for col, sym := range fa.alphabet {
		v := fa.table.Value(int(id), col)
		if v != fa.table.NullValue() {
			out = append(out, Transition{Target: StateID(v), Symbol: sym})
		}
	}
	return out
}

// Alphabet returns the automaton's cached alphabet (non-epsilon symbols
// seen on any transition), in first-seen discovery order.
func (fa *FiniteAutomaton) Alphabet() []regex.Symbol {
	return fa.alphabet
}

// MarkAccepting marks state id as accepting, reporting tokenID on
// acceptance (NoToken if the automaton doesn't distinguish token ids).
func (fa *FiniteAutomaton) MarkAccepting(id StateID, tokenID int) {
	fa.accept[id] = tokenID
}

// IsAccepting reports whether id is an accepting state.
func (fa *FiniteAutomaton) IsAccepting(id StateID) bool {
	_, ok := fa.accept[id]
	return ok
}

// AcceptTokenID returns the token id state id accepts with, and true if id
// is accepting.
func (fa *FiniteAutomaton) AcceptTokenID(id StateID) (int, bool) {
	tok, ok := fa.accept[id]
	return tok, ok
}

// AcceptingStates returns the accepting state ids in ascending order.
func (fa *FiniteAutomaton) AcceptingStates() []StateID {
	set := treeset.NewWith(func(a, b interface{}) int {
		return utils.IntComparator(int(a.(StateID)), int(b.(StateID)))
	})
	for id := range fa.accept {
		set.Add(id)
	}
	out := make([]StateID, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(StateID))
	}
	return out
}

// Absorb appends other's states to fa, renumbering them by the id offset
// fa.NumStates() had before the call, translating other's alphabet columns
// into fa's own (reusing a column when both automata share the symbol,
// assigning fa a fresh one otherwise). It returns that offset. other is
// left with a zeroed-out table and state count: the source corpus models
// this kind of merge as moving the donor's state vector into the
// recipient, and a moved-from value must not be read again, so Absorb
// enforces that rather than leaving other in a silently stale, still
// seemingly-usable state.
func (fa *FiniteAutomaton) Absorb(other *FiniteAutomaton) StateID {
	offset := StateID(fa.numStates)

	for i := 0; i < other.numStates; i++ {
		for col, target := range other.table.Row(i) {
			sym := other.alphabet[col]
			newCol := fa.columnFor(sym)
			fa.table.Set(int(StateID(i)+offset), newCol, target+int32(offset))
		}
	}
	for from, tos := range other.epsilon {
		shifted := make([]StateID, len(tos))
		for i, to := range tos {
			shifted[i] = to + offset
		}
		fa.epsilon[from+offset] = shifted
	}
	for id, tok := range other.accept {
		fa.accept[id+offset] = tok
	}
	fa.numStates += other.numStates

	other.numStates = 0
	other.alphabet = nil
	other.symbolIndex = nil
	other.table = nil
	other.epsilon = nil
	other.accept = nil

	tracer().Debugf("absorbed donor automaton at offset %d", offset)
	return offset
}
