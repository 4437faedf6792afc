// Command pda loads a pushdown automaton definition from YAML and
// prints its GraphViz definition.
package main

import (
	"fmt"
	"os"

	"github.com/ValorCat/csis-616-automata-theory/internal/machine"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: pda <machine file>")
		os.Exit(2)
	}
	filename := os.Args[1]

	pda, err := machine.LoadPDA(filename)
	if err == nil {
		err = pda.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse `%s`: %v\n", filename, err)
		os.Exit(1)
	}

	fmt.Printf("\nGraphViz definition:\n\n")
	fmt.Println(pda.Graphviz())
	fmt.Printf("\nDebug printed graph structure:\n\n")
	fmt.Printf("%+v\n", pda)
}
