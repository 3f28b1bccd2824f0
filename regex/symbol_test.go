package regex

import "testing"

func TestSymbolPredicates(t *testing.T) {
	lit := NewLiteral('a')
	if !lit.IsLiteral() || lit.IsOperator() {
		t.Errorf("NewLiteral: got kind %v", lit.Kind())
	}
	b, ok := lit.Byte()
	if !ok || b != 'a' {
		t.Errorf("Byte() = %v, %v; want 'a', true", b, ok)
	}

	rng := NewRange('a', 'c')
	lo, hi, ok := rng.Bounds()
	if !ok || lo != 'a' || hi != 'c' {
		t.Errorf("Bounds() = %v,%v,%v; want a,c,true", lo, hi, ok)
	}
	if !rng.Matches('b') || rng.Matches('d') {
		t.Errorf("Range(a-c) matching is wrong")
	}

	em := NewEndMarker(3)
	id, ok := em.EndMarkerID()
	if !ok || id != 3 {
		t.Errorf("EndMarkerID() = %v,%v; want 3,true", id, ok)
	}

	for _, op := range []Symbol{NewOpenParen(), NewCloseParen(), NewKleeneStar(), NewUnionOp()} {
		if !op.IsOperator() {
			t.Errorf("%v should be an operator", op)
		}
	}
}

func TestSymbolEquality(t *testing.T) {
	if NewLiteral('a') != NewLiteral('a') {
		t.Error("equal literals should compare equal")
	}
	if NewLiteral('a') == NewLiteral('b') {
		t.Error("different literals should not compare equal")
	}
	if NewRange('a', 'z') != NewRange('a', 'z') {
		t.Error("equal ranges should compare equal")
	}
}

func TestSymbolRangePanicsOnBadBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected NewRange('c','a') to panic")
		}
	}()
	NewRange('c', 'a')
}

func TestSymbolString(t *testing.T) {
	cases := map[Symbol]string{
		NewEpsilon():      "ε",
		NewLiteral('x'):   "x",
		NewRange('a', 'c'): "a-c",
		NewOpenParen():    "(",
		NewCloseParen():   ")",
		NewKleeneStar():   "*",
		NewUnionOp():      "|",
		NewEndMarker(7):   "#7",
	}
	for sym, want := range cases {
		if got := sym.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", sym, got, want)
		}
	}
}
