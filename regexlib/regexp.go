// Package regexlib compiles a small regular expression language into
// finite automata. Patterns are matched whole, over an alphabet of
// lowercase letters, digits, and spaces, with union (|), repetition
// (* and +), grouping, and the \w and \d character classes. Compilation
// runs pattern -> tokens -> syntax tree -> NFA -> DFA; each stage is
// exported on its own so the intermediate automata can be inspected.
package regexlib

// Regex is a compiled regular expression.
type Regex struct {
	pattern string
	nfa     *NFA
	dfa     *DFA
}

// Compile builds the automata for a pattern.
func Compile(pattern string) (*Regex, error) {
	tokens, err := Tokenize(pattern)
	if err != nil {
		return nil, err
	}
	tree := NewAST()
	if _, err := Parse(tokens, tree); err != nil {
		return nil, err
	}
	nfa, err := ASTToNFA(tree)
	if err != nil {
		return nil, err
	}
	dfa, err := NFAToDFA(nfa)
	if err != nil {
		return nil, err
	}
	return &Regex{pattern: pattern, nfa: nfa, dfa: dfa}, nil
}

// MustCompile is Compile for patterns known to be valid; it panics if
// compilation fails.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Accepts reports whether the whole input matches the pattern.
func (r *Regex) Accepts(input string) bool {
	return r.dfa.Accepts(input)
}

// Pattern returns the source text the regex was compiled from.
func (r *Regex) Pattern() string {
	return r.pattern
}

// NFA returns the intermediate nondeterministic automaton.
func (r *Regex) NFA() *NFA {
	return r.nfa
}

// DFA returns the deterministic automaton used for matching.
func (r *Regex) DFA() *DFA {
	return r.dfa
}
