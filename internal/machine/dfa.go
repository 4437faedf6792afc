// Package machine loads and runs automata described by definition
// files: deterministic finite automata from YAML or the .machine DSL,
// and pushdown automata from YAML. Definitions number their states from
// 1; a synthetic q0 start marker appears only in rendered graphs.
package machine

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DFA is a deterministic finite automaton definition. Transitions holds
// one row per state and one destination per alphabet symbol, all
// 1-based.
type DFA struct {
	Alphabet    []string `yaml:"alphabet"`
	Start       int      `yaml:"start"`
	Accept      []int    `yaml:"accept"`
	Transitions [][]int  `yaml:"transitions"`

	nStates int
}

// Step records one transition taken while running an input string.
type Step struct {
	From  int
	Input rune
	To    int
}

// LoadDFA reads a machine definition from a YAML file.
func LoadDFA(filename string) (*DFA, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var dfa DFA
	if err := yaml.Unmarshal(data, &dfa); err != nil {
		return nil, fmt.Errorf("unable to parse yaml: %w", err)
	}
	dfa.nStates = len(dfa.Transitions)
	return &dfa, nil
}

// Validate checks that the definition is well formed: every state
// reference lands in the transition table and every row covers the
// alphabet.
func (d *DFA) Validate() error {
	if d.outOfRange(d.Start) {
		return fmt.Errorf("unknown start state `%d`", d.Start)
	}
	for _, final := range d.Accept {
		if d.outOfRange(final) {
			return fmt.Errorf("unknown final state `%d`", final)
		}
	}
	for state, destinations := range d.Transitions {
		if len(destinations) != len(d.Alphabet) {
			return fmt.Errorf("state `%d` defines %d transitions (should define %d)",
				state+1, len(destinations), len(d.Alphabet))
		}
		for _, dest := range destinations {
			if d.outOfRange(dest) {
				return fmt.Errorf("state `%d` cannot transition to unknown state `%d`",
					state+1, dest)
			}
		}
	}
	return nil
}

func (d *DFA) outOfRange(state int) bool {
	return state < 1 || state > d.nStates
}

// Run walks an input string through the machine from the start state.
// It returns the transitions taken and whether the machine ended on an
// accept state. A character outside the alphabet is an error.
func (d *DFA) Run(input string) ([]Step, bool, error) {
	state := d.Start
	var trace []Step
	for _, letter := range input {
		index := d.symbolIndex(letter)
		if index < 0 {
			return nil, false, fmt.Errorf("cannot parse string with non-alphabet letter `%c`", letter)
		}
		next := d.Transitions[state-1][index]
		trace = append(trace, Step{From: state, Input: letter, To: next})
		state = next
	}
	return trace, d.isAccept(state), nil
}

func (d *DFA) symbolIndex(letter rune) int {
	for i, symbol := range d.Alphabet {
		if symbol == string(letter) {
			return i
		}
	}
	return -1
}

func (d *DFA) isAccept(state int) bool {
	for _, s := range d.Accept {
		if s == state {
			return true
		}
	}
	return false
}

// Graphviz renders the machine as a dot graph. A point-shaped marker
// node q0 points at the start state; the machine's own states keep
// their 1-based numbering.
func (d *DFA) Graphviz() string {
	transitions := []string{fmt.Sprintf("q0 -> q%d", d.Start)}
	for state, destinations := range d.Transitions {
		for i, dest := range destinations {
			transitions = append(transitions, fmt.Sprintf("q%d -> q%d [label=%q]",
				state+1, dest, d.Alphabet[i]))
		}
	}
	ends := make([]string, len(d.Accept))
	for i, s := range d.Accept {
		ends[i] = fmt.Sprintf("q%d", s)
	}
	return fmt.Sprintf(`digraph {
    rankdir=LR;
    node [shape=point]; q0;
    node [shape=doublecircle]; %s;
    node [shape=circle];
    %s;
}`, strings.Join(ends, "; "), strings.Join(transitions, ";\n    "))
}
