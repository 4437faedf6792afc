package machine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// endsWithA is a two-state machine over {a, b} accepting every string
// that ends with an a.
func endsWithA() *DFA {
	return &DFA{
		Alphabet:    []string{"a", "b"},
		Start:       1,
		Accept:      []int{2},
		Transitions: [][]int{{2, 1}, {2, 1}},
		nStates:     2,
	}
}

func TestRunScenarios(t *testing.T) {
	dfa := endsWithA()
	accepts := []string{"a", "baa", "baba", "aba"}
	rejects := []string{"", "b", "ab", "abab"}
	for _, input := range accepts {
		if _, ok, err := dfa.Run(input); err != nil || !ok {
			t.Errorf("should accept %q (err %v)", input, err)
		}
	}
	for _, input := range rejects {
		if _, ok, err := dfa.Run(input); err != nil || ok {
			t.Errorf("should reject %q (err %v)", input, err)
		}
	}
}

func TestRunTrace(t *testing.T) {
	dfa := endsWithA()
	trace, ok, err := dfa.Run("ba")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !ok {
		t.Error("should accept ba")
	}
	want := []Step{
		{From: 1, Input: 'b', To: 1},
		{From: 1, Input: 'a', To: 2},
	}
	if len(trace) != len(want) {
		t.Fatalf("trace has %d steps, want %d", len(trace), len(want))
	}
	for i, step := range trace {
		if step != want[i] {
			t.Errorf("step %d = %+v, want %+v", i, step, want[i])
		}
	}
}

func TestRunRejectsNonAlphabetLetter(t *testing.T) {
	if _, _, err := endsWithA().Run("abc"); err == nil {
		t.Error("a letter outside the alphabet should be an error")
	}
}

func TestValidate(t *testing.T) {
	if err := endsWithA().Validate(); err != nil {
		t.Fatalf("a well-formed machine should validate: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*DFA)
		want   string
	}{
		{"bad start", func(d *DFA) { d.Start = 9 }, "unknown start state `9`"},
		{"zero start", func(d *DFA) { d.Start = 0 }, "unknown start state `0`"},
		{"bad accept", func(d *DFA) { d.Accept = []int{3} }, "unknown final state `3`"},
		{"short row", func(d *DFA) { d.Transitions[1] = []int{1} },
			"state `2` defines 1 transitions (should define 2)"},
		{"bad destination", func(d *DFA) { d.Transitions[0][1] = 7 },
			"state `1` cannot transition to unknown state `7`"},
	}
	for _, test := range tests {
		dfa := endsWithA()
		test.mutate(dfa)
		err := dfa.Validate()
		if err == nil {
			t.Errorf("%s: Validate should fail", test.name)
			continue
		}
		if err.Error() != test.want {
			t.Errorf("%s: error = %q, want %q", test.name, err, test.want)
		}
	}
}

func TestGraphviz(t *testing.T) {
	want := strings.Join([]string{
		"digraph {",
		"    rankdir=LR;",
		"    node [shape=point]; q0;",
		"    node [shape=doublecircle]; q2;",
		"    node [shape=circle];",
		"    q0 -> q1;",
		`    q1 -> q2 [label="a"];`,
		`    q1 -> q1 [label="b"];`,
		`    q2 -> q2 [label="a"];`,
		`    q2 -> q1 [label="b"];`,
		"}",
	}, "\n")
	if got := endsWithA().Graphviz(); got != want {
		t.Errorf("Graphviz() mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestLoadDFA(t *testing.T) {
	text := `alphabet:
  - a
  - b
start: 1
accept:
  - 2
transitions:
  - [2, 1]
  - [2, 1]
`
	path := filepath.Join(t.TempDir(), "machine.yaml")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	dfa, err := LoadDFA(path)
	if err != nil {
		t.Fatalf("LoadDFA failed: %v", err)
	}
	if err := dfa.Validate(); err != nil {
		t.Fatalf("loaded machine should validate: %v", err)
	}
	if dfa.nStates != 2 || dfa.Start != 1 || len(dfa.Alphabet) != 2 {
		t.Errorf("loaded machine = %+v", dfa)
	}
	if _, ok, err := dfa.Run("baa"); err != nil || !ok {
		t.Errorf("loaded machine should accept baa (err %v)", err)
	}
}

func TestLoadDFABadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "machine.yaml")
	if err := os.WriteFile(path, []byte("alphabet: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDFA(path); err == nil {
		t.Error("malformed yaml should be an error")
	}
}
