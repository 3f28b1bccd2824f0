package dfa

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/ghallak/lexical-analyzer/automaton"
	"github.com/ghallak/lexical-analyzer/nfa"
	"github.com/ghallak/lexical-analyzer/regex"
)

func mustRegex(t *testing.T, s string) regex.Regex {
	t.Helper()
	r, err := regex.New(s)
	if err != nil {
		t.Fatalf("regex.New(%q): %v", s, err)
	}
	return r
}

// accepts runs d over input from its start state, consuming one byte at a
// time by looking up each Literal/Range transition manually (there is no
// execution engine in scope; this is purely a test helper).
func accepts(d *DFA, input string) bool {
	state := d.Start()
	for i := 0; i < len(input); i++ {
		b := input[i]
		var next automaton.StateID
		found := false
		for _, tr := range d.Transitions(state) {
			if tr.Symbol.Matches(b) {
				next, found = tr.Target, true
				break
			}
		}
		if !found {
			return false
		}
		state = next
	}
	return d.IsAccepting(state)
}

func TestFromNFASingleLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexan.dfa")
	defer teardown()

	n, err := nfa.From(mustRegex(t, "a"))
	if err != nil {
		t.Fatal(err)
	}
	d, err := FromNFA(n)
	if err != nil {
		t.Fatal(err)
	}
	if d.NumStates() != 2 {
		t.Errorf("DFA(\"a\") has %d states, want 2", d.NumStates())
	}
	if !accepts(d, "a") {
		t.Error("DFA(\"a\") should accept \"a\"")
	}
	if accepts(d, "") || accepts(d, "b") || accepts(d, "aa") {
		t.Error("DFA(\"a\") should reject \"\", \"b\", \"aa\"")
	}
}

func TestFromNFAStarredGroup(t *testing.T) {
	n, err := nfa.From(mustRegex(t, "a(b|c)*"))
	if err != nil {
		t.Fatal(err)
	}
	d, err := FromNFA(n)
	if err != nil {
		t.Fatal(err)
	}
	for _, word := range []string{"a", "ab", "ac", "abbc"} {
		if !accepts(d, word) {
			t.Errorf("DFA(\"a(b|c)*\") should accept %q", word)
		}
	}
	for _, word := range []string{"", "b", "ba"} {
		if accepts(d, word) {
			t.Errorf("DFA(\"a(b|c)*\") should reject %q", word)
		}
	}
}

func TestFromNFAUnionMinimizesToFiveStates(t *testing.T) {
	n, err := nfa.From(mustRegex(t, "fee|fie"))
	if err != nil {
		t.Fatal(err)
	}
	d, err := FromNFA(n)
	if err != nil {
		t.Fatal(err)
	}
	if d.NumStates() < 5 {
		t.Errorf("pre-minimization DFA(\"fee|fie\") has %d states, want >= 5", d.NumStates())
	}

	min := d.Minimize()
	if min.NumStates() != 5 {
		t.Errorf("minimized DFA(\"fee|fie\") has %d states, want 5", min.NumStates())
	}
	for _, word := range []string{"fee", "fie"} {
		if !accepts(min, word) {
			t.Errorf("minimized DFA(\"fee|fie\") should accept %q", word)
		}
	}
	for _, word := range []string{"fe", "fi", "feex", ""} {
		if accepts(min, word) {
			t.Errorf("minimized DFA(\"fee|fie\") should reject %q", word)
		}
	}
}

func TestFromNFAStarMinimizesToOneState(t *testing.T) {
	n, err := nfa.From(mustRegex(t, "a*"))
	if err != nil {
		t.Fatal(err)
	}
	d, err := FromNFA(n, WithAutoMinimize())
	if err != nil {
		t.Fatal(err)
	}
	if d.NumStates() != 1 {
		t.Errorf("minimized DFA(\"a*\") has %d states, want 1", d.NumStates())
	}
	if !d.IsAccepting(d.Start()) {
		t.Error("the single state of minimized DFA(\"a*\") should be both start and accepting")
	}
}

func TestFromNFARange(t *testing.T) {
	n, err := nfa.From(mustRegex(t, "a-c"))
	if err != nil {
		t.Fatal(err)
	}
	d, err := FromNFA(n)
	if err != nil {
		t.Fatal(err)
	}
	for _, word := range []string{"a", "b", "c"} {
		if !accepts(d, word) {
			t.Errorf("DFA(\"a-c\") should accept %q", word)
		}
	}
	if accepts(d, "d") {
		t.Error("DFA(\"a-c\") should reject \"d\"")
	}
}
