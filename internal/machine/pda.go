package machine

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Transition is one pushdown automaton transition: consume an input
// symbol, pop a stack symbol, push a stack symbol, move to a state. An
// empty string in any symbol slot stands for epsilon.
type Transition struct {
	Input string
	Pop   string
	Push  string
	State int
}

// UnmarshalYAML decodes the compact 4-element sequence form used in
// machine files: [input, pop, push, state].
func (t *Transition) UnmarshalYAML(value *yaml.Node) error {
	var parts []yaml.Node
	if err := value.Decode(&parts); err != nil {
		return err
	}
	if len(parts) != 4 {
		return fmt.Errorf("transition needs 4 elements, got %d", len(parts))
	}
	if err := parts[0].Decode(&t.Input); err != nil {
		return err
	}
	if err := parts[1].Decode(&t.Pop); err != nil {
		return err
	}
	if err := parts[2].Decode(&t.Push); err != nil {
		return err
	}
	return parts[3].Decode(&t.State)
}

// PDA is a pushdown automaton definition. Transitions holds one row per
// state, each listing that state's outgoing transitions.
type PDA struct {
	Alphabet      []string       `yaml:"alphabet"`
	StackAlphabet []string       `yaml:"stack_alphabet"`
	Start         int            `yaml:"start"`
	Accept        []int          `yaml:"accept"`
	Transitions   [][]Transition `yaml:"transitions"`
}

// LoadPDA reads a pushdown automaton definition from a YAML file.
func LoadPDA(filename string) (*PDA, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var pda PDA
	if err := yaml.Unmarshal(data, &pda); err != nil {
		return nil, fmt.Errorf("unable to parse yaml: %w", err)
	}
	return &pda, nil
}

// Validate checks that every transition uses known symbols and states.
// The empty string is epsilon and always allowed.
func (p *PDA) Validate() error {
	numStates := len(p.Transitions)
	outOfRange := func(state int) bool { return state < 1 || state > numStates }
	if outOfRange(p.Start) {
		return fmt.Errorf("unknown start state `%d`", p.Start)
	}
	for _, final := range p.Accept {
		if outOfRange(final) {
			return fmt.Errorf("unknown final state `%d`", final)
		}
	}
	for state, transitions := range p.Transitions {
		for _, trans := range transitions {
			if !inAlphabet(trans.Input, p.Alphabet) {
				return fmt.Errorf("state %d cannot transition on unknown input character `%s`",
					state, trans.Input)
			}
			if !inAlphabet(trans.Pop, p.StackAlphabet) {
				return fmt.Errorf("state %d cannot pop unknown stack character `%s`",
					state, trans.Pop)
			}
			if !inAlphabet(trans.Push, p.StackAlphabet) {
				return fmt.Errorf("state %d cannot push unknown stack character `%s`",
					state, trans.Push)
			}
			if outOfRange(trans.State) {
				return fmt.Errorf("state %d cannot transition to unknown state `%d`",
					state, trans.State)
			}
		}
	}
	return nil
}

// inAlphabet reports whether a symbol belongs to the alphabet; the
// empty string stands for epsilon and is always in it.
func inAlphabet(symbol string, alphabet []string) bool {
	if symbol == "" {
		return true
	}
	for _, s := range alphabet {
		if s == symbol {
			return true
		}
	}
	return false
}

// Graphviz renders the automaton as a dot graph. Epsilon shows as the
// HTML entity so the labels survive dot's HTML-like label handling, and
// the synthetic q0 marker enters the start state on an all-epsilon
// transition.
func (p *PDA) Graphviz() string {
	transitions := []string{fmt.Sprintf(`q0 -> q%d [label="&epsilon;, &epsilon; &rarr; &epsilon;"]`, p.Start)}
	for state, row := range p.Transitions {
		for _, trans := range row {
			transitions = append(transitions, fmt.Sprintf(`q%d -> q%d [label="%s, %s &rarr; %s"]`,
				state+1, trans.State, symbolOrEpsilon(trans.Input),
				symbolOrEpsilon(trans.Pop), symbolOrEpsilon(trans.Push)))
		}
	}
	ends := make([]string, len(p.Accept))
	for i, s := range p.Accept {
		ends[i] = fmt.Sprintf("q%d", s)
	}
	return fmt.Sprintf("digraph {\nrankdir=LR;\nnode [shape=point]; q0;\nnode [shape=doublecircle]; %s;\nnode [shape=circle];\n%s;\n}",
		strings.Join(ends, "; "), strings.Join(transitions, ";\n"))
}

func symbolOrEpsilon(symbol string) string {
	if symbol == "" {
		return "&epsilon;"
	}
	return symbol
}
