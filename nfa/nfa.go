/*
Package nfa Thompson-constructs an epsilon-NFA from a regex.Regex, offering
concatenation, union and Kleene-star combinators plus epsilon-closure
queries.
*/
package nfa

import (
	"github.com/npillmayer/schuko/tracing"

	lexan "github.com/ghallak/lexical-analyzer"
	"github.com/ghallak/lexical-analyzer/automaton"
	"github.com/ghallak/lexical-analyzer/regex"
)

func tracer() tracing.Trace {
	return tracing.Select("lexan.nfa")
}

// NFA specializes automaton.FiniteAutomaton with the Thompson-construction
// invariant: a single start state and a single accept state.
type NFA struct {
	*automaton.FiniteAutomaton
	start  automaton.StateID
	accept automaton.StateID
}

// Start returns the NFA's unique start state.
func (n *NFA) Start() automaton.StateID { return n.start }

// Accept returns the NFA's unique accept state.
func (n *NFA) Accept() automaton.StateID { return n.accept }

func empty() *NFA {
	return &NFA{FiniteAutomaton: automaton.New(), start: -1, accept: -1}
}

func (n *NFA) isEmpty() bool {
	return n.start == -1
}

// fromSymbol builds the two-state, one-transition NFA for a single
// non-operator Symbol.
func fromSymbol(sym regex.Symbol) *NFA {
	n := &NFA{FiniteAutomaton: automaton.New()}
	n.start = n.AddState()
	n.accept = n.AddState()
	n.AddTransition(n.start, n.accept, sym)
	return n
}

// Concat absorbs rhs in place: an epsilon-transition from n's accept to
// rhs's start, and n's new accept becomes rhs's accept. Following
// concatenation, rhs must not be used again.
func (n *NFA) Concat(rhs *NFA) {
	if n.isEmpty() {
		*n = *rhs
		return
	}
	offset := n.Absorb(rhs.FiniteAutomaton)
	n.AddTransition(n.accept, rhs.start+offset, regex.NewEpsilon())
	n.accept = rhs.accept + offset
}

// Union absorbs rhs in place: a fresh start/accept pair, with epsilon
// transitions from the new start to both n's and rhs's starts, and from
// both accepts to the new accept. Following union, rhs must not be used
// again.
func (n *NFA) Union(rhs *NFA) {
	if n.isEmpty() {
		*n = *rhs
		return
	}
	oldStart, oldAccept := n.start, n.accept
	offset := n.Absorb(rhs.FiniteAutomaton)
	newStart := n.AddState()
	newAccept := n.AddState()
	eps := regex.NewEpsilon()
	n.AddTransition(newStart, oldStart, eps)
	n.AddTransition(newStart, rhs.start+offset, eps)
	n.AddTransition(oldAccept, newAccept, eps)
	n.AddTransition(rhs.accept+offset, newAccept, eps)
	n.start, n.accept = newStart, newAccept
}

// Star converts n in place into the Kleene-star closure of its own
// language: a fresh start/accept pair, with epsilon transitions allowing
// zero or arbitrarily many passes through n's original body.
func (n *NFA) Star() {
	oldStart, oldAccept := n.start, n.accept
	newStart := n.AddState()
	newAccept := n.AddState()
	eps := regex.NewEpsilon()
	n.AddTransition(oldAccept, oldStart, eps)
	n.AddTransition(oldAccept, newAccept, eps)
	n.AddTransition(newStart, oldStart, eps)
	n.AddTransition(newStart, newAccept, eps)
	n.start, n.accept = newStart, newAccept
}

// EpsClosure returns the set of states reachable from state by zero or
// more epsilon transitions, as a characteristic bit-vector indexed by
// StateID (state is always a member of its own closure).
func (n *NFA) EpsClosure(state automaton.StateID) []bool {
	inClosure := make([]bool, n.NumStates())
	queue := []automaton.StateID{state}
	inClosure[state] = true
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, tr := range n.Transitions(current) {
			if !tr.Symbol.IsEpsilon() {
				continue
			}
			if !inClosure[tr.Target] {
				inClosure[tr.Target] = true
				queue = append(queue, tr.Target)
			}
		}
	}
	return inClosure
}

// From constructs an NFA from a (non-augmented) Regex by Thompson
// construction, driving Concat/Union/Star over the Symbol sequence
// directly, mirroring the grammar regextree.New parses into a tree:
// alternation is lowest precedence, concatenation is juxtaposition, and
// Kleene star binds tightest as a postfix operator. Parenthesized groups
// are skipped over via a precomputed close-paren index so the scan stays
// linear in the number of symbols.
func From(r regex.Regex) (*NFA, error) {
	symbols := r.Symbols()
	if len(symbols) == 0 {
		return nil, lexan.NewError(lexan.EmptyExpression, "regex has no symbols")
	}
	closeIdx, err := closeIndex(symbols)
	if err != nil {
		return nil, err
	}
	n, err := construct(symbols, closeIdx, 0, len(symbols))
	if err != nil {
		return nil, err
	}
	tracer().Debugf("constructed NFA with %d states", n.NumStates())
	return n, nil
}

func construct(symbols []regex.Symbol, closeIdx []int, begin, end int) (*NFA, error) {
	current := empty()
	for i := begin; i < end; i++ {
		switch {
		case symbols[i].IsUnionOp():
			rhs, err := construct(symbols, closeIdx, i+1, end)
			if err != nil {
				return nil, err
			}
			current.Union(rhs)
			i = end

		case symbols[i].IsOpenParen():
			close := closeIdx[i]
			if close+1 < end && symbols[close+1].IsKleeneStar() {
				group, err := construct(symbols, closeIdx, i+1, close)
				if err != nil {
					return nil, err
				}
				group.Star()
				current.Concat(group)
				i = close + 1
			} else {
				group, err := construct(symbols, closeIdx, i+1, close)
				if err != nil {
					return nil, err
				}
				current.Concat(group)
				i = close
			}

		case i+1 < end && symbols[i+1].IsKleeneStar():
			leaf := fromSymbol(symbols[i])
			leaf.Star()
			current.Concat(leaf)
			i++

		default:
			current.Concat(fromSymbol(symbols[i]))
		}
	}
	return current, nil
}

func closeIndex(symbols []regex.Symbol) ([]int, error) {
	idx := make([]int, len(symbols))
	var stack []int
	for i, s := range symbols {
		switch {
		case s.IsOpenParen():
			stack = append(stack, i)
		case s.IsCloseParen():
			if len(stack) == 0 {
				return nil, lexan.NewError(lexan.UnbalancedParen, "unmatched ')' at position %d", i)
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			idx[top] = i
		}
	}
	if len(stack) != 0 {
		return nil, lexan.NewError(lexan.UnbalancedParen, "unmatched '(' at position %d", stack[len(stack)-1])
	}
	return idx, nil
}
