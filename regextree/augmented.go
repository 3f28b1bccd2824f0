package regextree

import (
	"github.com/ghallak/lexical-analyzer/regex"
)

// AugmentedRegexTree is a RegexTree annotated with nullable, firstpos,
// lastpos (per node) and followpos (per leaf), the Aho-Sethi-Ullman
// position-set annotations the direct DFA construction walks.
type AugmentedRegexTree struct {
	*RegexTree
}

// NewAugmented parses r (expected in `(r)#`-augmented form, see
// regex.Augment) into an AugmentedRegexTree and computes its annotations.
func NewAugmented(r regex.Regex) (*AugmentedRegexTree, error) {
	t, err := New(r)
	if err != nil {
		return nil, err
	}
	a := &AugmentedRegexTree{RegexTree: t}
	if err := a.annotate(a.root); err != nil {
		return nil, err
	}
	tracer().Debugf("augmented tree: firstpos(root)=%v", a.root.firstpos.Sorted())
	return a, nil
}

// FirstposRoot returns the firstpos set of the tree's root.
func (a *AugmentedRegexTree) FirstposRoot() LeafSet {
	return a.root.firstpos
}

// Followpos returns the followpos set of the leaf at position pos.
func (a *AugmentedRegexTree) Followpos(pos int) LeafSet {
	return a.leaves[pos].followpos
}

// Label returns the Symbol the leaf at position pos carries.
func (a *AugmentedRegexTree) Label(pos int) regex.Symbol {
	return a.leaves[pos].label
}

// NumLeaves returns the number of leaves in the tree.
func (a *AugmentedRegexTree) NumLeaves() int {
	return len(a.leaves)
}

// annotate fuses the three post-order passes (nullable, firstpos/lastpos,
// followpos) into one traversal per node, since each pass only reads
// annotations the earlier passes already computed for the same node.
func (a *AugmentedRegexTree) annotate(n *Node) error {
	switch n.kind {
	case Leaf:
		n.nullable = false
		n.firstpos = NewLeafSet(n.leafPos)
		n.lastpos = NewLeafSet(n.leafPos)
		n.followpos = NewLeafSet()
		return nil

	case Star:
		if err := a.annotate(n.child); err != nil {
			return err
		}
		n.nullable = true
		n.firstpos = n.child.firstpos
		n.lastpos = n.child.lastpos
		for p := range n.child.lastpos {
			a.leaves[p].followpos.AddAll(n.child.firstpos)
		}
		return nil

	case Union:
		if err := a.annotate(n.left); err != nil {
			return err
		}
		if err := a.annotate(n.right); err != nil {
			return err
		}
		n.nullable = n.left.nullable || n.right.nullable
		n.firstpos = n.left.firstpos.Union(n.right.firstpos)
		n.lastpos = n.left.lastpos.Union(n.right.lastpos)
		return nil

	case Concat:
		if err := a.annotate(n.left); err != nil {
			return err
		}
		if err := a.annotate(n.right); err != nil {
			return err
		}
		n.nullable = n.left.nullable && n.right.nullable

		if n.left.nullable {
			n.firstpos = n.left.firstpos.Union(n.right.firstpos)
		} else {
			n.firstpos = n.left.firstpos
		}
		if n.right.nullable {
			n.lastpos = n.left.lastpos.Union(n.right.lastpos)
		} else {
			n.lastpos = n.right.lastpos
		}

		for p := range n.left.lastpos {
			a.leaves[p].followpos.AddAll(n.right.firstpos)
		}
		return nil

	default:
		return errInvalidNodeKind(n)
	}
}

// TagAugmented parses r, already wrapped via regex.Augment(r, id), into an
// AugmentedRegexTree. It exists as a readable alias for the common case of
// building one tagged alternative of a larger union of tagged regexes (see
// dfa.FromAugmentedTree for how distinct end-marker ids surface as distinct
// token ids on the resulting DFA's accepting states); a caller assembling a
// union of several tagged regexes unions their already-augmented Regex
// sequences with a top-level '|' before calling NewAugmented once, same as
// any other union.
func TagAugmented(r regex.Regex, id int) (*AugmentedRegexTree, error) {
	return NewAugmented(regex.Augment(r, id))
}
