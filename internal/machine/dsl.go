package machine

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The .machine DSL is a friendlier way to write the same DFA the YAML
// format describes:
//
//	alphabet "ab"
//	start 1
//	accept 2
//
//	state 1 { a -> 2; b -> 1 }
//	state 2 { a -> 2; b -> 1 }
//
// State blocks must be numbered consecutively from 1 and cover the
// whole alphabet, matching the YAML schema's dense transition table.

var dslLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Punct", Pattern: `[{};,]`},
})

type dslFile struct {
	Alphabet string     `parser:"'alphabet' @String"`
	Start    int        `parser:"'start' @Int"`
	Accept   []int      `parser:"'accept' @Int (',' @Int)*"`
	States   []dslState `parser:"@@*"`
}

type dslState struct {
	ID    int       `parser:"'state' @Int '{'"`
	Rules []dslRule `parser:"( @@ (';' @@)* )? '}'"`
}

type dslRule struct {
	Input string `parser:"@(Ident | Int)"`
	Dest  int    `parser:"Arrow @Int"`
}

var dslParser = participle.MustBuild[dslFile](
	participle.Lexer(dslLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.Unquote("String"),
)

// LoadDSL reads a .machine file and compiles it to a DFA definition.
func LoadDSL(filename string) (*DFA, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseDSL(filename, string(data))
}

// ParseDSL compiles .machine text into the same DFA shape the YAML
// loader produces. The name only labels parse errors.
func ParseDSL(name, text string) (*DFA, error) {
	file, err := dslParser.ParseString(name, text)
	if err != nil {
		return nil, err
	}

	alphabet := make([]string, 0, len(file.Alphabet))
	for _, symbol := range file.Alphabet {
		alphabet = append(alphabet, string(symbol))
	}

	transitions := make([][]int, len(file.States))
	for i, state := range file.States {
		if state.ID != i+1 {
			return nil, fmt.Errorf("state blocks must be numbered consecutively from 1, got state %d", state.ID)
		}
		row := make([]int, len(alphabet))
		for _, rule := range state.Rules {
			index := -1
			for k, symbol := range alphabet {
				if symbol == rule.Input {
					index = k
					break
				}
			}
			if index < 0 {
				return nil, fmt.Errorf("state %d transitions on `%s`, which is not in the alphabet", state.ID, rule.Input)
			}
			row[index] = rule.Dest
		}
		for k, dest := range row {
			if dest == 0 {
				return nil, fmt.Errorf("state %d is missing a transition on `%s`", state.ID, alphabet[k])
			}
		}
		transitions[i] = row
	}

	return &DFA{
		Alphabet:    alphabet,
		Start:       file.Start,
		Accept:      file.Accept,
		Transitions: transitions,
		nStates:     len(transitions),
	}, nil
}
