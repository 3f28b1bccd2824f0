/*
Package lexan is a regular-expression to finite-automaton compiler.

It accepts a regular expression over a byte alphabet and produces an
executable deterministic finite automaton, optionally minimized. Package
structure is as follows:

■ regex: lexes a source string into a sequence of Symbols.

■ regextree: parses a Symbol sequence into a RegexTree, and annotates an
AugmentedRegexTree with nullable/firstpos/lastpos/followpos.

■ nfa: Thompson-constructs an ε-NFA from a Regex.

■ automaton: the shared state/transition substrate underlying both NFA and
DFA.

■ dfa: determinizes an NFA by subset construction, or builds a DFA directly
from an AugmentedRegexTree via firstpos/followpos, and minimizes a DFA by
Hopcroft-style partition refinement.

The base package contains the error taxonomy shared by all of the above.
*/
package lexan
