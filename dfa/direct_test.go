package dfa

import (
	"testing"

	"github.com/ghallak/lexical-analyzer/regex"
	"github.com/ghallak/lexical-analyzer/regextree"
)

func TestFromAugmentedTreeSingleRule(t *testing.T) {
	r := mustRegex(t, "a(b|c)*")
	aug, err := regextree.NewAugmented(regex.Augment(r, 0))
	if err != nil {
		t.Fatal(err)
	}
	d, err := FromAugmentedTree(aug)
	if err != nil {
		t.Fatal(err)
	}
	for _, word := range []string{"a", "ab", "ac", "abbc"} {
		if !accepts(d, word) {
			t.Errorf("direct DFA(\"a(b|c)*\") should accept %q", word)
		}
	}
	for _, word := range []string{"", "b", "ba"} {
		if accepts(d, word) {
			t.Errorf("direct DFA(\"a(b|c)*\") should reject %q", word)
		}
	}
}

// TestFromAugmentedTreeTaggedUnion exercises the union-of-tagged-regexes
// supplement: "(ab)#|(c)#" built from two independently tagged rules joined
// with regex.Or, each end-marker distinguishing which rule accepted.
func TestFromAugmentedTreeTaggedUnion(t *testing.T) {
	ab := regex.Augment(mustRegex(t, "ab"), 1)
	c := regex.Augment(mustRegex(t, "c"), 2)
	combined := regex.Or(ab, c)

	augTree, err := regextree.NewAugmented(combined)
	if err != nil {
		t.Fatal(err)
	}

	d, err := FromAugmentedTree(augTree)
	if err != nil {
		t.Fatal(err)
	}
	if !accepts(d, "ab") {
		t.Error("\"(ab)#|(c)#\" should accept \"ab\"")
	}
	if !accepts(d, "c") {
		t.Error("\"(ab)#|(c)#\" should accept \"c\"")
	}
	for _, word := range []string{"a", "b", ""} {
		if accepts(d, word) {
			t.Errorf("\"(ab)#|(c)#\" should reject %q", word)
		}
	}

	tokenAB, ok := tokenFor(d, "ab")
	if !ok || tokenAB != 1 {
		t.Errorf("token for \"ab\" = %v,%v, want 1,true", tokenAB, ok)
	}
	tokenC, ok := tokenFor(d, "c")
	if !ok || tokenC != 2 {
		t.Errorf("token for \"c\" = %v,%v, want 2,true", tokenC, ok)
	}
}

func tokenFor(d *DFA, input string) (int, bool) {
	state := d.Start()
	for i := 0; i < len(input); i++ {
		b := input[i]
		found := false
		for _, tr := range d.Transitions(state) {
			if tr.Symbol.Matches(b) {
				state, found = tr.Target, true
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return d.AcceptTokenID(state)
}
