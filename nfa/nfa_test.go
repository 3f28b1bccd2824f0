package nfa

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/ghallak/lexical-analyzer/automaton"
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

func TestFromSingleLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexan.nfa")
	defer teardown()

	n, err := From(mustRegex(t, "a"))
	if err != nil {
		t.Fatal(err)
	}
	if n.NumStates() != 2 {
		t.Errorf("NFA(\"a\") has %d states, want 2", n.NumStates())
	}
	total := 0
	for id := automaton.StateID(0); int(id) < n.NumStates(); id++ {
		total += len(n.Transitions(id))
	}
	if total != 1 {
		t.Errorf("NFA(\"a\") has %d transitions, want 1", total)
	}
}

func TestEpsClosureContainsSelf(t *testing.T) {
	n, err := From(mustRegex(t, "a(b|c)*"))
	if err != nil {
		t.Fatal(err)
	}
	closure := n.EpsClosure(n.Start())
	if !closure[n.Start()] {
		t.Error("eps-closure must contain its argument")
	}
}

func TestEpsClosureIsFixedPoint(t *testing.T) {
	n, err := From(mustRegex(t, "a(b|c)*"))
	if err != nil {
		t.Fatal(err)
	}
	closure := n.EpsClosure(n.Start())
	for q, in := range closure {
		if !in {
			continue
		}
		reclosed := n.EpsClosure(automaton.StateID(q))
		for r, inR := range reclosed {
			if inR && !closure[r] {
				t.Errorf("eps-closure(%d) escapes the closure of start at state %d", q, r)
			}
		}
	}
}

func TestUnionAndConcat(t *testing.T) {
	n, err := From(mustRegex(t, "fee|fie"))
	if err != nil {
		t.Fatal(err)
	}
	if n.NumStates() == 0 {
		t.Error("expected a non-trivial NFA for \"fee|fie\"")
	}
	if n.Start() == n.Accept() {
		t.Error("start and accept should differ for a non-empty language")
	}
}
