package regexlib

import "testing"

// wordsUpTo enumerates every string over the alphabet up to the given
// length.
func wordsUpTo(maxLen int, alphabet string) []string {
	words := []string{""}
	previous := []string{""}
	for i := 0; i < maxLen; i++ {
		var next []string
		for _, w := range previous {
			for _, ch := range alphabet {
				next = append(next, w+string(ch))
			}
		}
		words = append(words, next...)
		previous = next
	}
	return words
}

func TestMinimizeMergesEquivalentStates(t *testing.T) {
	// the two middle states of aa|ba both lead straight to the accept
	// on a, so they collapse into one
	dfa := buildDFA(t, "aa|ba")
	if len(dfa.table) != 4 {
		t.Fatalf("expected 4 states before minimizing, got %d", len(dfa.table))
	}
	min := Minimize(dfa)
	if len(min.table) != 3 {
		t.Fatalf("expected 3 states after minimizing, got %d", len(min.table))
	}
	if min.table[0]['a'] != min.table[0]['b'] {
		t.Error("the merged middle states should be a single state")
	}
	checkWords := []string{"", "a", "b", "aa", "ba", "ab", "bb", "aaa", "baa"}
	for _, input := range checkWords {
		if min.Accepts(input) != dfa.Accepts(input) {
			t.Errorf("minimized automaton disagrees on %q", input)
		}
	}
}

func TestMinimizeKeepsStartAtZero(t *testing.T) {
	min := Minimize(buildDFA(t, "aa|ba"))
	if min.Accepts("") {
		t.Error("the start state should not accept")
	}
	if !min.Accepts("aa") {
		t.Error("walking from state 0 should still reach the accept")
	}
}

func TestMinimizePreservesLanguage(t *testing.T) {
	patterns := []string{"abab*", "(a|b)*abb", "a+b+", `\d\d*`, "a|ab|abb", "a*|b"}
	words := wordsUpTo(4, "ab01")
	for _, pattern := range patterns {
		dfa := buildDFA(t, pattern)
		min := Minimize(dfa)
		for _, input := range words {
			if dfa.Accepts(input) != min.Accepts(input) {
				t.Errorf("pattern %q: minimized automaton disagrees on %q", pattern, input)
			}
		}
	}
}

func TestMinimizeIdempotent(t *testing.T) {
	min := Minimize(buildDFA(t, "a|ab|abb"))
	again := Minimize(min)
	if len(again.table) != len(min.table) {
		t.Errorf("minimizing twice changed the state count from %d to %d",
			len(min.table), len(again.table))
	}
}

func TestMinimizeHandlesAllAcceptingStates(t *testing.T) {
	// a* compiles to a single accepting state looping on itself
	min := Minimize(buildDFA(t, "a*"))
	if len(min.table) != 1 {
		t.Fatalf("expected 1 state, got %d", len(min.table))
	}
	checkWords := []string{"", "a", "aaa"}
	for _, input := range checkWords {
		if !min.Accepts(input) {
			t.Errorf("should accept %q", input)
		}
	}
	if min.Accepts("b") {
		t.Error("should reject b")
	}
}
