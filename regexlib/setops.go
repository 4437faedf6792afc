package regexlib

import (
	"sort"

	"github.com/ValorCat/csis-616-automata-theory/multimap"
)

// Intersect returns a DFA accepting exactly the strings both automata
// accept. It walks reachable state pairs lazily; a character missing
// from either side's table is missing from the product, which is the
// correct reject for an intersection.
func Intersect(a, b *DFA) (*DFA, error) {
	type pair struct {
		a, b StateID
	}

	ids := map[pair]StateID{{0, 0}: 0}
	table := []map[rune]StateID{make(map[rune]StateID)}
	accepts := multimap.NewSet[StateID]()
	if a.acceptStates.Has(0) && b.acceptStates.Has(0) {
		accepts.Add(0)
	}

	queue := []pair{{0, 0}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		transitions := table[ids[current]]

		labels := make([]rune, 0, len(a.table[current.a]))
		for label := range a.table[current.a] {
			labels = append(labels, label)
		}
		sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

		for _, label := range labels {
			nextA := a.table[current.a][label]
			nextB, ok := b.table[current.b][label]
			if !ok {
				continue
			}
			next := pair{nextA, nextB}
			id, ok := ids[next]
			if !ok {
				if len(table) >= maxStates {
					return nil, ErrTooManyStates
				}
				id = StateID(len(table))
				ids[next] = id
				table = append(table, make(map[rune]StateID))
				if a.acceptStates.Has(nextA) && b.acceptStates.Has(nextB) {
					accepts.Add(id)
				}
				queue = append(queue, next)
			}
			transitions[label] = id
		}
	}
	return &DFA{table: table, acceptStates: accepts}, nil
}
