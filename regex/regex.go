package regex

import (
	lexan "github.com/ghallak/lexical-analyzer"
)

// Regex is an ordered, finite sequence of Symbols preserving lexing order.
// It is constructed once from a source string and is immutable thereafter.
type Regex struct {
	symbols []Symbol
}

// New lexes source into a Regex. The lexer performs no validation beyond
// range-byte structure (exactly three bytes with a '-' in the middle) and
// rejecting an inverted range (lo > hi) with InvalidSymbol; parse-level
// validation (balanced parens, non-empty expression, ...) is
// the regextree parser's job.
func New(source string) (Regex, error) {
	syms := make([]Symbol, 0, len(source))
	for i := 0; i < len(source); {
		if i+2 < len(source) && source[i+1] == '-' {
			lo, hi := source[i], source[i+2]
			if lo > hi {
				return Regex{}, lexan.NewError(lexan.InvalidSymbol,
					"range %q-%q has lo > hi", lo, hi)
			}
			syms = append(syms, NewRange(lo, hi))
			i += 3
			continue
		}
		syms = append(syms, classify(source[i]))
		i++
	}
	tracer().Debugf("lexed %q into %d symbols", source, len(syms))
	return Regex{symbols: syms}, nil
}

func classify(b byte) Symbol {
	switch b {
	case '|':
		return NewUnionOp()
	case '*':
		return NewKleeneStar()
	case '(':
		return NewOpenParen()
	case ')':
		return NewCloseParen()
	default:
		return NewLiteral(b)
	}
}

// Symbols returns the lexed symbol sequence, in lexing order.
func (r Regex) Symbols() []Symbol {
	return r.symbols
}

// Len returns the number of symbols in r.
func (r Regex) Len() int {
	return len(r.symbols)
}

// Augment wraps r as `( r ) #`, with the end-marker tagged id. This is the
// form regextree.NewAugmented expects: a single parenthesized group followed
// by a distinguishing end-marker, so the direct DFA construction can map an
// accepting position back to the rule that accepted.
func Augment(r Regex, id int) Regex {
	syms := make([]Symbol, 0, len(r.symbols)+3)
	syms = append(syms, NewOpenParen())
	syms = append(syms, r.symbols...)
	syms = append(syms, NewCloseParen())
	syms = append(syms, NewEndMarker(id))
	return Regex{symbols: syms}
}

// Or joins two already-built Regex sequences with a top-level union
// operator: `a|b`. The common use is joining several Augment-ed
// alternatives into one multi-end-marker AugmentedRegex, so the direct DFA
// construction can report, per accepting state, which alternative matched.
func Or(a, b Regex) Regex {
	syms := make([]Symbol, 0, len(a.symbols)+len(b.symbols)+1)
	syms = append(syms, a.symbols...)
	syms = append(syms, NewUnionOp())
	syms = append(syms, b.symbols...)
	return Regex{symbols: syms}
}
