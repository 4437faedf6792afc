package regexlib

import (
	"sort"

	"github.com/ValorCat/csis-616-automata-theory/multimap"
)

// DFA is a deterministic finite automaton. The transition table is
// partial; a missing entry rejects the input. State 0 is the start
// state.
type DFA struct {
	table        []map[rune]StateID
	acceptStates multimap.Set[StateID]
}

// Accepts reports whether the automaton accepts the input string. The
// walk starts at state 0 and must end on an accept state.
func (d *DFA) Accepts(input string) bool {
	var state StateID
	for _, letter := range input {
		next, ok := d.table[state][letter]
		if !ok {
			return false
		}
		state = next
	}
	return d.acceptStates.Has(state)
}

// AcceptStates returns a copy of the automaton's accept state set.
func (d *DFA) AcceptStates() multimap.Set[StateID] {
	return d.acceptStates.Clone()
}

// NFAToDFA converts an NFA into an equivalent DFA by subset
// construction. Every NFA state carries over under its own id; fresh
// composite states are allocated past the original range only where a
// state actually maps one character to several destinations. Composite
// states are themselves scanned as they are appended, so the loop runs
// until no new sets appear.
func NFAToDFA(nfa *NFA) (*DFA, error) {
	current := 0
	highest := len(nfa.table) - 1
	composites := make(map[StateID]multimap.Set[StateID])
	var table []map[rune]StateID

	for current <= highest {
		var relation multimap.MultiMap[rune, StateID]
		if set, ok := composites[StateID(current)]; ok {
			members := make([]multimap.MultiMap[rune, StateID], 0, len(set))
			for state := range set {
				members = append(members, nfa.table[state])
			}
			relation = multimap.Union(members)
		} else {
			relation = nfa.table[current].Clone()
		}

		transitions := make(map[rune]StateID, len(relation))
		for _, label := range sortedLabels(relation) {
			destinations := relation[label]
			if len(destinations) == 1 {
				for state := range destinations {
					transitions[label] = state
				}
				continue
			}
			state, ok := findComposite(composites, destinations)
			if !ok {
				if highest+1 >= maxStates {
					return nil, ErrTooManyStates
				}
				highest++
				state = StateID(highest)
				composites[state] = destinations
			}
			transitions[label] = state
		}
		table = append(table, transitions)
		current++
	}

	acceptStates := nfa.AcceptStates()
	for state, members := range composites {
		if !members.Disjoint(acceptStates) {
			acceptStates.Add(state)
		}
	}
	return &DFA{table: table, acceptStates: acceptStates}, nil
}

// findComposite returns the id already assigned to exactly this set of
// NFA states, if any. A linear scan; each set is recorded only once.
func findComposite(composites map[StateID]multimap.Set[StateID], want multimap.Set[StateID]) (StateID, bool) {
	for state, set := range composites {
		if set.Equal(want) {
			return state, true
		}
	}
	return 0, false
}

// sortedLabels returns a relation's transition labels in ascending
// order, pinning down the order composite states are numbered in.
func sortedLabels(relation multimap.MultiMap[rune, StateID]) []rune {
	labels := make([]rune, 0, len(relation))
	for label := range relation {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}

// alphabet returns every label used in the transition table, sorted.
func (d *DFA) alphabet() []rune {
	seen := multimap.NewSet[rune]()
	for _, transitions := range d.table {
		for label := range transitions {
			seen.Add(label)
		}
	}
	labels := make([]rune, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}
