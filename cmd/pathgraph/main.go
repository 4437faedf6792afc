// Command pathgraph renders a linear path automaton as a GraphViz
// graph: the listed states are chained left to right, with the first as
// the start and the last accepting.
package main

import (
	"fmt"
	"os"
	"strings"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s q1,q2,q3,...\n", os.Args[0])
		return
	}
	fmt.Println(buildGraphDef(strings.Split(os.Args[1], ",")))
}

func buildGraphDef(nodes []string) string {
	var transitions strings.Builder
	for i := 0; i+1 < len(nodes); i++ {
		fmt.Fprintf(&transitions, "%s -> %s;\n    ", nodes[i], nodes[i+1])
	}
	return fmt.Sprintf(`digraph {
    rankdir=LR;
    node [shape=point]; start;
    node [shape=doublecircle]; %s;
    node [shape=circle];
    start -> %s;
    %s
}`, nodes[len(nodes)-1], nodes[0], strings.TrimRight(transitions.String(), " \n"))
}
