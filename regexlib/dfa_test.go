package regexlib

import (
	"testing"

	"github.com/ValorCat/csis-616-automata-theory/multimap"
)

// buildDFA compiles a pattern through the full pipeline.
func buildDFA(t *testing.T, pattern string) *DFA {
	t.Helper()
	dfa, err := NFAToDFA(buildNFA(t, pattern))
	if err != nil {
		t.Fatalf("NFAToDFA(%q) failed: %v", pattern, err)
	}
	return dfa
}

func TestDFADeterministicCopy(t *testing.T) {
	// ab has no nondeterminism, so every NFA state carries over as is
	dfa := buildDFA(t, "ab")
	if len(dfa.table) != 3 {
		t.Fatalf("expected 3 states, got %d", len(dfa.table))
	}
	if dfa.table[0]['a'] != 1 || dfa.table[1]['b'] != 2 {
		t.Errorf("transitions = %v, want 0-a->1 and 1-b->2", dfa.table)
	}
	if !dfa.acceptStates.Equal(multimap.NewSet[StateID](2)) {
		t.Errorf("accept states = %v, want {2}", dfa.acceptStates)
	}
}

func TestDFACompositeState(t *testing.T) {
	// in a|ab the start state maps a to both branch heads, so subset
	// construction must allocate a composite state past the NFA range
	dfa := buildDFA(t, "a|ab")
	if len(dfa.table) != 4 {
		t.Fatalf("expected 4 states, got %d", len(dfa.table))
	}
	composite := dfa.table[0]['a']
	if composite != 3 {
		t.Fatalf("expected the composite state to get id 3, got %d", composite)
	}
	if dfa.table[composite]['b'] != 1 {
		t.Errorf("the composite state should reach the accept on b, got %v", dfa.table[composite])
	}
	if !dfa.acceptStates.Has(composite) {
		t.Error("a composite containing an accept state must itself accept")
	}
	if !dfa.acceptStates.Has(1) {
		t.Error("the original accept state must still accept")
	}
}

func TestDFACompositeReuse(t *testing.T) {
	// a*a keeps mapping a to the set {0 1}, which must resolve to one
	// composite state, not a new one per scan
	dfa := buildDFA(t, "a*a")
	if len(dfa.table) != 3 {
		t.Fatalf("expected 3 states, got %d", len(dfa.table))
	}
	composite := dfa.table[0]['a']
	if composite != 2 {
		t.Fatalf("expected the composite state to get id 2, got %d", composite)
	}
	if dfa.table[composite]['a'] != composite {
		t.Errorf("the composite state should loop to itself, got %v", dfa.table[composite])
	}
	if !dfa.acceptStates.Equal(multimap.NewSet[StateID](1, 2)) {
		t.Errorf("accept states = %v, want {1 2}", dfa.acceptStates)
	}
}

func TestDFAAcceptsWalk(t *testing.T) {
	dfa := buildDFA(t, "ab")
	if !dfa.Accepts("ab") {
		t.Error("should accept ab")
	}
	for _, input := range []string{"", "a", "b", "ba", "abc", "ax"} {
		if dfa.Accepts(input) {
			t.Errorf("should reject %q", input)
		}
	}
}

func TestDFAAcceptStatesCopy(t *testing.T) {
	dfa := buildDFA(t, "a")
	accepts := dfa.AcceptStates()
	accepts.Add(0)
	if dfa.Accepts("") {
		t.Error("mutating the returned accept set should not affect the automaton")
	}
}
