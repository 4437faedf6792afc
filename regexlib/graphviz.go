package regexlib

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ValorCat/csis-616-automata-theory/multimap"
)

// edge is one labeled transition prepared for rendering.
type edge struct {
	from, to StateID
	label    rune
}

// Graph returns the GraphViz (dot language) representation of the NFA.
// Epsilon transitions are never drawn; their effect is already folded
// into the labeled transitions and the accept set.
func (n *NFA) Graph() string {
	return generate(0, n.AcceptStates(), n.edges())
}

func (n *NFA) edges() []edge {
	var edges []edge
	for from, transitions := range n.table {
		for label, destinations := range transitions {
			for to := range destinations {
				edges = append(edges, edge{StateID(from), to, label})
			}
		}
	}
	return edges
}

// Graph returns the GraphViz representation of the DFA. Edges touching
// states unreachable from the start are dropped, since subset
// construction leaves the constituents of composite states behind.
func (d *DFA) Graph() string {
	return generate(0, d.acceptStates, d.edges())
}

func (d *DFA) edges() []edge {
	reachable := multimap.NewSet[StateID]()
	d.visitReachable(0, reachable)

	var edges []edge
	for from, transitions := range d.table {
		if !reachable.Has(StateID(from)) {
			continue
		}
		for label, to := range transitions {
			if reachable.Has(to) {
				edges = append(edges, edge{StateID(from), to, label})
			}
		}
	}
	return edges
}

func (d *DFA) visitReachable(state StateID, reachable multimap.Set[StateID]) {
	if reachable.Has(state) {
		return
	}
	reachable.Add(state)
	for _, neighbor := range d.table[state] {
		d.visitReachable(neighbor, reachable)
	}
}

// generate renders a dot graph for a start state, accept set, and edge
// list. Output order is fixed: accept ids ascending, then edges by
// source, label, and destination.
func generate(start StateID, accepts multimap.Set[StateID], edges []edge) string {
	ids := make([]int, 0, len(accepts))
	for state := range accepts {
		ids = append(ids, int(state))
	}
	sort.Ints(ids)

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].from != edges[j].from {
			return edges[i].from < edges[j].from
		}
		if edges[i].label != edges[j].label {
			return edges[i].label < edges[j].label
		}
		return edges[i].to < edges[j].to
	})

	var b strings.Builder
	b.WriteString("digraph {\n")
	b.WriteString("    rankdir=LR;\n")
	b.WriteString("    node [shape=point]; start;\n")
	b.WriteString("    node [shape=doublecircle]; ")
	for _, id := range ids {
		fmt.Fprintf(&b, "%d; ", id)
	}
	b.WriteString("\n    node [shape=circle];\n")
	fmt.Fprintf(&b, "    start -> %d;\n", start)
	for _, e := range edges {
		fmt.Fprintf(&b, "    %d -> %d [label=%q];\n", e.from, e.to, string(e.label))
	}
	b.WriteString("}")
	return b.String()
}
