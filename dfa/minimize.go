package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ghallak/lexical-analyzer/automaton"
	"github.com/ghallak/lexical-analyzer/regex"
)

const deadBlock = -1

// Minimize returns a new DFA language-equivalent to d with the minimal
// state count for that language, by Hopcroft-style partition refinement
// followed by graph compaction. d itself is left untouched; this is the
// "rebuilds the state vector in place" step of the pipeline realised as
// "build a fresh, compacted automaton" rather than mutating d's storage,
// since Go gives no way to shrink d's backing slices without reallocating
// anyway.
//
// Block numbering after a split is not canonical (which sub-block keeps
// the parent's id, versus which gets a fresh one, is an implementation
// choice): only Myhill-Nerode minimality is guaranteed, matching language
// equivalence up to state relabelling.
func (d *DFA) Minimize() *DFA {
	blockOf := d.initialPartition()

	for {
		next, changed := d.refine(blockOf)
		blockOf = next
		if !changed {
			break
		}
	}

	return d.compact(blockOf)
}

// initialPartition groups accepting states by token id (each distinct
// token id its own block) and, if any state is non-accepting, puts them
// all in one further block.
func (d *DFA) initialPartition() []int {
	n := d.NumStates()
	blockOf := make([]int, n)

	tokenBlock := make(map[int]int)
	var tokens []int
	for id := 0; id < n; id++ {
		if tok, ok := d.AcceptTokenID(automaton.StateID(id)); ok {
			if _, seen := tokenBlock[tok]; !seen {
				tokenBlock[tok] = -1 // placeholder, assigned below
				tokens = append(tokens, tok)
			}
		}
	}
	sort.Ints(tokens)
	nextBlock := 0
	for _, tok := range tokens {
		tokenBlock[tok] = nextBlock
		nextBlock++
	}
	nonAcceptBlock := -1

	for id := 0; id < n; id++ {
		if tok, ok := d.AcceptTokenID(automaton.StateID(id)); ok {
			blockOf[id] = tokenBlock[tok]
		} else {
			if nonAcceptBlock == -1 {
				nonAcceptBlock = nextBlock
				nextBlock++
			}
			blockOf[id] = nonAcceptBlock
		}
	}
	return blockOf
}

// refine performs one pass: for every block, group its states by their
// per-symbol transition signature (the block containing δ(state,symbol),
// or deadBlock if undefined); a block whose states disagree on signature
// is split, the first signature group keeping the block's id and the rest
// receiving fresh ids.
func (d *DFA) refine(blockOf []int) ([]int, bool) {
	n := len(blockOf)
	alphabet := d.Alphabet()

	byBlock := make(map[int][]int)
	for id := 0; id < n; id++ {
		byBlock[blockOf[id]] = append(byBlock[blockOf[id]], id)
	}

	var blockIDs []int
	for b := range byBlock {
		blockIDs = append(blockIDs, b)
	}
	sort.Ints(blockIDs)

	next := make([]int, n)
	copy(next, blockOf)

	changed := false
	nextFreeBlock := 0
	for _, b := range blockIDs {
		if b >= nextFreeBlock {
			nextFreeBlock = b + 1
		}
	}

	for _, b := range blockIDs {
		members := byBlock[b]
		sigOf := make(map[int]string, len(members))
		for _, id := range members {
			sigOf[id] = signature(d, blockOf, automaton.StateID(id), alphabet)
		}

		groups := make(map[string][]int)
		var sigOrder []string
		for _, id := range members {
			sig := sigOf[id]
			if _, ok := groups[sig]; !ok {
				sigOrder = append(sigOrder, sig)
			}
			groups[sig] = append(groups[sig], id)
		}
		if len(groups) <= 1 {
			continue
		}
		sort.Strings(sigOrder)
		changed = true
		for i, sig := range sigOrder {
			blockID := b
			if i > 0 {
				blockID = nextFreeBlock
				nextFreeBlock++
			}
			for _, id := range groups[sig] {
				next[id] = blockID
			}
		}
	}

	return next, changed
}

func signature(d *DFA, blockOf []int, id automaton.StateID, alphabet []regex.Symbol) string {
	var b strings.Builder
	for _, sym := range alphabet {
		target := deadBlock
		for _, tr := range d.Transitions(id) {
			if tr.Symbol == sym {
				target = blockOf[tr.Target]
				break
			}
		}
		b.WriteString(strconv.Itoa(target))
		b.WriteByte('|')
	}
	return b.String()
}

// compact allocates one fresh state per surviving block, taking the first
// old state discovered (scanning old ids ascending) as that block's
// representative, rewrites transitions by block membership, and reassigns
// dense ids in the order blocks were first encountered.
func (d *DFA) compact(blockOf []int) *DFA {
	n := len(blockOf)

	representative := make(map[int]automaton.StateID)
	var order []int
	for old := 0; old < n; old++ {
		b := blockOf[old]
		if _, ok := representative[b]; !ok {
			representative[b] = automaton.StateID(old)
			order = append(order, b)
		}
	}

	newIDof := make(map[int]automaton.StateID, len(order))
	for i, b := range order {
		newIDof[b] = automaton.StateID(i)
	}

	out := automaton.New()
	for range order {
		out.AddState()
	}

	for _, b := range order {
		oldID := representative[b]
		newID := newIDof[b]
		for _, tr := range d.Transitions(oldID) {
			targetBlock := blockOf[tr.Target]
			out.AddTransition(newID, newIDof[targetBlock], tr.Symbol)
		}
		if tok, ok := d.AcceptTokenID(oldID); ok {
			out.MarkAccepting(newID, tok)
		}
	}

	newStart := newIDof[blockOf[d.start]]
	tracer().Debugf("minimize compacted %d states into %d", n, len(order))
	return &DFA{FiniteAutomaton: out, start: newStart}
}
