package regex

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewLexesLiteralsAndOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexan.regex")
	defer teardown()

	r, err := New("a(b|c)*")
	if err != nil {
		t.Fatal(err)
	}
	want := []Symbol{
		NewLiteral('a'),
		NewOpenParen(),
		NewLiteral('b'),
		NewUnionOp(),
		NewLiteral('c'),
		NewCloseParen(),
		NewKleeneStar(),
	}
	got := r.Symbols()
	if len(got) != len(want) {
		t.Fatalf("lexed %d symbols, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("symbol %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNewLexesRange(t *testing.T) {
	r, err := New("a-c")
	if err != nil {
		t.Fatal(err)
	}
	got := r.Symbols()
	if len(got) != 1 || got[0] != NewRange('a', 'c') {
		t.Errorf("New(\"a-c\") = %v, want a single Range(a,c)", got)
	}
}

func TestNewRejectsInvertedRange(t *testing.T) {
	if _, err := New("c-a"); err == nil {
		t.Error("expected an error for an inverted range")
	}
}

func TestAugment(t *testing.T) {
	r, err := New("ab")
	if err != nil {
		t.Fatal(err)
	}
	aug := Augment(r, 5)
	want := []Symbol{NewOpenParen(), NewLiteral('a'), NewLiteral('b'), NewCloseParen(), NewEndMarker(5)}
	got := aug.Symbols()
	if len(got) != len(want) {
		t.Fatalf("Augment produced %d symbols, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("augmented symbol %d = %v, want %v", i, got[i], want[i])
		}
	}
}
