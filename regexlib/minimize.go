package regexlib

import (
	"fmt"
	"strings"

	"github.com/ValorCat/csis-616-automata-theory/multimap"
)

// Minimize returns an equivalent DFA with indistinguishable states
// merged. Missing transitions are treated as moves to a shared implicit
// dead state, so partial tables minimize soundly. States are renumbered
// in order of first appearance, which keeps the start state at 0;
// unreachable states are merged like any others but not removed.
func Minimize(d *DFA) *DFA {
	if len(d.table) == 0 {
		return &DFA{acceptStates: d.acceptStates.Clone()}
	}
	alphabet := d.alphabet()

	// partition states by acceptance, then split any block whose
	// members disagree on the block some character leads to, until
	// no round splits further
	blocks := make([]int, len(d.table))
	accepting := 0
	for i := range d.table {
		if d.acceptStates.Has(StateID(i)) {
			blocks[i] = 1
			accepting++
		}
	}
	count := 1
	if accepting > 0 && accepting < len(d.table) {
		count = 2
	}
	for {
		next, refined := refine(d, alphabet, blocks)
		if refined == count {
			break
		}
		blocks, count = next, refined
	}

	// renumber blocks in order of first appearance; state 0's block
	// becomes the new state 0
	order := make(map[int]StateID, count)
	representatives := make([]int, 0, count)
	for state := range d.table {
		if _, ok := order[blocks[state]]; !ok {
			order[blocks[state]] = StateID(len(representatives))
			representatives = append(representatives, state)
		}
	}

	table := make([]map[rune]StateID, len(representatives))
	accepts := multimap.NewSet[StateID]()
	for id, rep := range representatives {
		transitions := make(map[rune]StateID, len(d.table[rep]))
		for label, target := range d.table[rep] {
			transitions[label] = order[blocks[target]]
		}
		table[id] = transitions
		if d.acceptStates.Has(StateID(rep)) {
			accepts.Add(StateID(id))
		}
	}
	return &DFA{table: table, acceptStates: accepts}
}

// refine reassigns each state to a block keyed by its current block and
// the blocks its transitions lead to, -1 standing for the dead state.
// Returns the new assignment and the number of distinct blocks.
func refine(d *DFA, alphabet []rune, blocks []int) ([]int, int) {
	ids := make(map[string]int)
	next := make([]int, len(d.table))
	for state, transitions := range d.table {
		var sig strings.Builder
		fmt.Fprintf(&sig, "%d", blocks[state])
		for _, label := range alphabet {
			if target, ok := transitions[label]; ok {
				fmt.Fprintf(&sig, " %d", blocks[target])
			} else {
				sig.WriteString(" -1")
			}
		}
		id, ok := ids[sig.String()]
		if !ok {
			id = len(ids)
			ids[sig.String()] = id
		}
		next[state] = id
	}
	return next, len(ids)
}
