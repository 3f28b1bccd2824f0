/*
Package regextree parses a lexed regex.Regex into a RegexTree, and augments
one with nullable/firstpos/lastpos/followpos annotations for direct DFA
construction.
*/
package regextree

import (
	lexan "github.com/ghallak/lexical-analyzer"
	"github.com/ghallak/lexical-analyzer/regex"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("lexan.regextree")
}

// RegexTree is the parsed expression tree of a Regex. Leaf is assigned a
// discovery index in left-to-right order; Leaves returns them in that order.
type RegexTree struct {
	root   *Node
	leaves []*Node
}

// New parses r into a RegexTree.
func New(r regex.Regex) (*RegexTree, error) {
	symbols := r.Symbols()
	if len(symbols) == 0 {
		return nil, lexan.NewError(lexan.EmptyExpression, "regex has no symbols")
	}
	closeIdx, err := closeIndex(symbols)
	if err != nil {
		return nil, err
	}
	t := &RegexTree{}
	root, err := t.parse(symbols, closeIdx, 0, len(symbols))
	if err != nil {
		return nil, err
	}
	t.root = root
	tracer().Debugf("parsed regex tree with %d leaves", len(t.leaves))
	return t, nil
}

// Root returns the tree's root node.
func (t *RegexTree) Root() *Node { return t.root }

// Leaves returns the tree's leaf nodes in left-to-right discovery order;
// Leaves()[i].LeafPos() == i.
func (t *RegexTree) Leaves() []*Node { return t.leaves }

// closeIndex computes, for each '(' position, the index of its matching
// ')', via a single left-to-right stack pass.
func closeIndex(symbols []regex.Symbol) ([]int, error) {
	idx := make([]int, len(symbols))
	var stack []int
	for i, s := range symbols {
		switch {
		case s.IsOpenParen():
			stack = append(stack, i)
		case s.IsCloseParen():
			if len(stack) == 0 {
				return nil, lexan.NewError(lexan.UnbalancedParen,
					"unmatched ')' at position %d", i)
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			idx[top] = i
		}
	}
	if len(stack) != 0 {
		return nil, lexan.NewError(lexan.UnbalancedParen,
			"unmatched '(' at position %d", stack[len(stack)-1])
	}
	return idx, nil
}

// parse implements the grammar of the recursive-descent parser:
//
//	E  -> T ('|' T)*
//	T  -> F F*            (implicit concatenation)
//	F  -> A '*'?
//	A  -> Leaf | '(' E ')'
//
// realised directly over symbol index ranges rather than as four mutually
// recursive functions, using the precomputed close-paren index for O(1)
// group-skipping. A parenthesized group is special-cased up front only when
// it is starred and no top-level '|' follows it; otherwise it falls through
// to the union scan below, so a top-level '|' following a group (e.g.
// "(a)|(b)" or "(a)*b|c") is found instead of being mis-split by a premature
// concat on the close-paren boundary.
func (t *RegexTree) parse(symbols []regex.Symbol, closeIdx []int, begin, end int) (*Node, error) {
	if begin >= end {
		return nil, lexan.NewError(lexan.EmptyExpression,
			"empty expression in range [%d,%d)", begin, end)
	}
	if begin+1 == end {
		return t.newLeafAt(symbols[begin]), nil
	}

	if symbols[begin].IsOpenParen() {
		c := closeIdx[begin]
		unionAfter := false
		for j := c + 2; j < end && !unionAfter; j++ {
			if symbols[j].IsOpenParen() {
				j = closeIdx[j]
			} else if symbols[j].IsUnionOp() {
				unionAfter = true
			}
		}
		if c+1 < end && symbols[c+1].IsKleeneStar() && !unionAfter {
			if c+2 < end {
				left, err := t.parse(symbols, closeIdx, begin, c+2)
				if err != nil {
					return nil, err
				}
				right, err := t.parse(symbols, closeIdx, c+2, end)
				if err != nil {
					return nil, err
				}
				return newConcat(left, right), nil
			}
			child, err := t.parse(symbols, closeIdx, begin+1, c)
			if err != nil {
				return nil, err
			}
			return newStar(child), nil
		}
	}

	depth := 0
	for i := begin; i < end; i++ {
		if symbols[i].IsOpenParen() {
			depth++
		} else if symbols[i].IsCloseParen() {
			depth--
		} else if symbols[i].IsUnionOp() && depth == 0 {
			left, err := t.parse(symbols, closeIdx, begin, i)
			if err != nil {
				return nil, err
			}
			right, err := t.parse(symbols, closeIdx, i+1, end)
			if err != nil {
				return nil, err
			}
			return newUnion(left, right), nil
		}
	}

	if symbols[begin].IsOpenParen() {
		c := closeIdx[begin]
		if c+1 < end {
			left, err := t.parse(symbols, closeIdx, begin+1, c)
			if err != nil {
				return nil, err
			}
			right, err := t.parse(symbols, closeIdx, c+1, end)
			if err != nil {
				return nil, err
			}
			return newConcat(left, right), nil
		}
		return t.parse(symbols, closeIdx, begin+1, c)
	}

	if begin+1 < end && symbols[begin+1].IsKleeneStar() {
		if begin+2 < end {
			left, err := t.parse(symbols, closeIdx, begin, begin+2)
			if err != nil {
				return nil, err
			}
			right, err := t.parse(symbols, closeIdx, begin+2, end)
			if err != nil {
				return nil, err
			}
			return newConcat(left, right), nil
		}
		child, err := t.parse(symbols, closeIdx, begin, begin+1)
		if err != nil {
			return nil, err
		}
		return newStar(child), nil
	}

	left, err := t.parse(symbols, closeIdx, begin, begin+1)
	if err != nil {
		return nil, err
	}
	right, err := t.parse(symbols, closeIdx, begin+1, end)
	if err != nil {
		return nil, err
	}
	return newConcat(left, right), nil
}

func (t *RegexTree) newLeafAt(label regex.Symbol) *Node {
	n := newLeaf(label)
	n.leafPos = len(t.leaves)
	t.leaves = append(t.leaves, n)
	return n
}
