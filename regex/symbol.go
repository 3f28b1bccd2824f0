/*
Package regex lexes a source string into a sequence of Symbols, the
smallest tokens the rest of the compiler operates on.
*/
package regex

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexan.regex'.
func tracer() tracing.Trace {
	return tracing.Select("lexan.regex")
}

// Kind tags the variant a Symbol carries.
type Kind uint8

const (
	Epsilon Kind = iota
	Literal
	Range
	OpenParen
	CloseParen
	KleeneStar
	UnionOp
	EndMarker
)

// Symbol is a tagged value modelling one token of the surface syntax. It is
// comparable (all fields are plain scalars), so Symbol values may key maps
// and sets directly without a separate hash function.
type Symbol struct {
	kind Kind
	lo   byte // Literal: the byte. Range: the low byte.
	hi   byte // Range: the high byte. Unused otherwise.
	tag  int  // EndMarker: the token-id this end-marker reports on acceptance.
}

// NewEpsilon returns the epsilon symbol.
func NewEpsilon() Symbol { return Symbol{kind: Epsilon} }

// NewLiteral returns a symbol matching exactly the byte b.
func NewLiteral(b byte) Symbol { return Symbol{kind: Literal, lo: b} }

// NewRange returns a symbol matching any byte in [lo,hi]. Panics if lo > hi;
// callers validate ordering before calling this (the lexer never swaps
// operands, so a violation here is a caller bug, not malformed input).
func NewRange(lo, hi byte) Symbol {
	if lo > hi {
		panic(fmt.Sprintf("regex: invalid range %q-%q", lo, hi))
	}
	return Symbol{kind: Range, lo: lo, hi: hi}
}

// NewOpenParen returns the '(' operator symbol.
func NewOpenParen() Symbol { return Symbol{kind: OpenParen} }

// NewCloseParen returns the ')' operator symbol.
func NewCloseParen() Symbol { return Symbol{kind: CloseParen} }

// NewKleeneStar returns the '*' operator symbol.
func NewKleeneStar() Symbol { return Symbol{kind: KleeneStar} }

// NewUnionOp returns the '|' operator symbol.
func NewUnionOp() Symbol { return Symbol{kind: UnionOp} }

// NewEndMarker returns the distinguished '#' symbol tagged with token id id.
// EndMarker symbols only ever occur in an AugmentedRegex; user input must not
// contain one.
func NewEndMarker(id int) Symbol { return Symbol{kind: EndMarker, tag: id} }

// Kind returns the symbol's variant tag.
func (s Symbol) Kind() Kind { return s.kind }

func (s Symbol) IsEpsilon() bool    { return s.kind == Epsilon }
func (s Symbol) IsLiteral() bool    { return s.kind == Literal }
func (s Symbol) IsRange() bool      { return s.kind == Range }
func (s Symbol) IsOpenParen() bool  { return s.kind == OpenParen }
func (s Symbol) IsCloseParen() bool { return s.kind == CloseParen }
func (s Symbol) IsKleeneStar() bool { return s.kind == KleeneStar }
func (s Symbol) IsUnionOp() bool    { return s.kind == UnionOp }
func (s Symbol) IsEndMarker() bool  { return s.kind == EndMarker }

// IsOperator reports whether s is one of the grouping/union/star operators,
// i.e. not a matchable symbol.
func (s Symbol) IsOperator() bool {
	switch s.kind {
	case OpenParen, CloseParen, KleeneStar, UnionOp:
		return true
	default:
		return false
	}
}

// Byte returns the literal byte s matches, and true if s is a Literal.
func (s Symbol) Byte() (byte, bool) {
	if s.kind != Literal {
		return 0, false
	}
	return s.lo, true
}

// Bounds returns the inclusive [lo,hi] byte range s matches, and true if s
// is a Range.
func (s Symbol) Bounds() (lo, hi byte, ok bool) {
	if s.kind != Range {
		return 0, 0, false
	}
	return s.lo, s.hi, true
}

// EndMarkerID returns the token-id s reports on acceptance, and true if s is
// an EndMarker.
func (s Symbol) EndMarkerID() (int, bool) {
	if s.kind != EndMarker {
		return 0, false
	}
	return s.tag, true
}

// Matches reports whether byte b satisfies a Literal or Range symbol. It is
// false for any operator, Epsilon, or EndMarker symbol.
func (s Symbol) Matches(b byte) bool {
	switch s.kind {
	case Literal:
		return b == s.lo
	case Range:
		return b >= s.lo && b <= s.hi
	default:
		return false
	}
}

// String renders s canonically; equal symbols always render identically,
// and the rendering is stable across process runs, so it doubles as a map
// key when a caller needs a string-keyed table instead of Symbol itself.
func (s Symbol) String() string {
	switch s.kind {
	case Epsilon:
		return "ε"
	case OpenParen:
		return "("
	case CloseParen:
		return ")"
	case KleeneStar:
		return "*"
	case UnionOp:
		return "|"
	case EndMarker:
		return fmt.Sprintf("#%d", s.tag)
	case Range:
		return fmt.Sprintf("%c-%c", s.lo, s.hi)
	case Literal:
		return string(s.lo)
	default:
		return "?"
	}
}
