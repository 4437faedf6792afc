// Command dfa loads a machine definition (YAML, or the .machine DSL by
// extension) and either prints its GraphViz definition or traces input
// strings through it.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ValorCat/csis-616-automata-theory/internal/machine"
)

func main() {
	graphFlag := flag.Bool("graph", false, "print the GraphViz definition instead of tracing input")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: dfa [-graph] <machine file>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	filename := flag.Arg(0)

	dfa, err := load(filename)
	if err == nil {
		err = dfa.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse `%s`: %v\n", filename, err)
		os.Exit(1)
	}

	if *graphFlag {
		fmt.Println("\nGraphViz definition:")
		fmt.Println(dfa.Graphviz())
		fmt.Println("\nDebug printed graph structure:")
		fmt.Printf("%+v\n", dfa)
		return
	}

	fmt.Println("Enter strings to check if they are accepted or rejected:")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		trace, accepted, err := dfa.Run(scanner.Text())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for _, step := range trace {
			fmt.Printf("  δ(q%d, %c) → q%d\n", step.From, step.Input, step.To)
		}
		if accepted {
			fmt.Println("ACCEPT")
		} else {
			fmt.Println("REJECT")
		}
		fmt.Println()
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "Error reading from stdin:", err)
		os.Exit(1)
	}
}

// load picks the parser by file extension: .machine means the DSL,
// anything else is treated as YAML.
func load(filename string) (*machine.DFA, error) {
	if strings.HasSuffix(filename, ".machine") {
		return machine.LoadDSL(filename)
	}
	return machine.LoadDFA(filename)
}
