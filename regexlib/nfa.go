package regexlib

import (
	"errors"

	"github.com/ValorCat/csis-616-automata-theory/multimap"
)

// StateID numbers the states of an automaton.
type StateID uint16

// maxStates caps automaton size at the number of distinct StateID values.
const maxStates = 1 << 16

// ErrTooManyStates is returned when a construction would exceed the
// automaton state limit.
var ErrTooManyStates = errors.New("state limit exceeded during automaton construction")

// dummyTransition temporarily marks a state as having outgoing
// transitions while a union's branches are built. It must not be a
// character of the pattern language.
const dummyTransition = '_'

// NFA is a nondeterministic finite automaton with a single accept state.
// The epsilon table records, for each state, the set of states that
// reach it through epsilon transitions alone. Labeled transitions are
// copied onto those predecessors eagerly as they appear, so matching and
// conversion never need a separate closure pass.
type NFA struct {
	table        []multimap.MultiMap[rune, StateID]
	epsilonTable multimap.MultiMap[StateID, StateID]
	acceptState  StateID
}

func newNFA() *NFA {
	return &NFA{epsilonTable: multimap.New[StateID, StateID]()}
}

// AcceptStates returns the accept state plus every state that reaches it
// through epsilon transitions alone.
func (n *NFA) AcceptStates() multimap.Set[StateID] {
	states := n.epsilonTable.Get(n.acceptState)
	states.Add(n.acceptState)
	return states
}

// addState appends a fresh state with no transitions and returns its id.
func (n *NFA) addState() (StateID, error) {
	if len(n.table) >= maxStates {
		return 0, ErrTooManyStates
	}
	n.table = append(n.table, multimap.New[rune, StateID]())
	return StateID(len(n.table) - 1), nil
}

// getOrAddState returns the given state when the caller supplied one,
// otherwise a fresh state.
func (n *NFA) getOrAddState(state StateID, have bool) (StateID, error) {
	if have {
		return state, nil
	}
	return n.addState()
}

// reuseOrAddState returns the state itself when it has no outgoing
// transitions yet, otherwise a fresh state linked from it by an epsilon
// transition.
func (n *NFA) reuseOrAddState(state StateID) (StateID, error) {
	if n.isLeafState(state) {
		return state, nil
	}
	fresh, err := n.addState()
	if err != nil {
		return 0, err
	}
	n.addEpsilon(state, fresh)
	return fresh, nil
}

// isLeafState reports whether a state has no outgoing transitions.
func (n *NFA) isLeafState(state StateID) bool {
	return len(n.table[state]) == 0
}

// addTransition records a labeled transition and copies it onto every
// epsilon predecessor of the source state.
func (n *NFA) addTransition(from, to StateID, label rune) {
	n.table[from].Add(label, to)
	for state := range n.epsilonTable.Get(from) {
		n.table[state].Add(label, to)
	}
}

// addEpsilon records an epsilon transition. The destination inherits the
// source's epsilon predecessors, and every labeled transition already
// leaving the destination is copied back onto the states that now reach
// it silently.
func (n *NFA) addEpsilon(from, to StateID) {
	n.epsilonTable.Add(to, from)
	for state := range n.epsilonTable.Get(from) {
		n.epsilonTable.Add(to, state)
	}
	predecessors := n.epsilonTable.Get(to)
	for label, states := range n.table[to].Clone() {
		for state := range predecessors {
			n.table[state].AddAll(label, states)
		}
	}
}

// ASTToNFA lowers a syntax tree into an NFA. State 0 is the start state.
func ASTToNFA(tree *AST) (*NFA, error) {
	nfa := newNFA()
	start, err := nfa.addState()
	if err != nil {
		return nil, err
	}
	accept, err := nfa.build(tree, tree.Root(), start, 0, false)
	if err != nil {
		return nil, err
	}
	nfa.acceptState = accept
	return nfa, nil
}

// build adds the states and transitions for one syntax node. The node's
// fragment grows out of the input state; when haveOutput is set the
// fragment must end at output, otherwise build picks or creates an end
// state. Returns the state the fragment actually ended at.
func (n *NFA) build(tree *AST, id NodeID, input StateID, output StateID, haveOutput bool) (StateID, error) {
	nd := tree.get(id)
	switch nd.kind {
	case nodeLeaf:
		out, err := n.getOrAddState(output, haveOutput)
		if err != nil {
			return 0, err
		}
		n.addTransition(input, out, nd.ch)
		return out, nil

	case nodeLeafClass:
		out, err := n.getOrAddState(output, haveOutput)
		if err != nil {
			return 0, err
		}
		lo, hi := 'a', 'z'
		if nd.class == AllDigit {
			lo, hi = '0', '9'
		}
		for ch := lo; ch <= hi; ch++ {
			n.addTransition(input, out, ch)
		}
		return out, nil

	case nodeAnd:
		intermediate, err := n.build(tree, nd.left, input, 0, false)
		if err != nil {
			return 0, err
		}
		return n.build(tree, nd.right, intermediate, output, haveOutput)

	case nodeOr:
		// the dummy transition keeps a star or plus branch from
		// anchoring its loop on the shared input state
		n.table[input].Add(dummyTransition, input)
		newOutput, err := n.build(tree, nd.left, input, output, haveOutput)
		if err != nil {
			return 0, err
		}
		if _, err := n.build(tree, nd.right, input, newOutput, true); err != nil {
			return 0, err
		}
		n.table[input].Remove(dummyTransition)
		return newOutput, nil

	case nodeStar:
		anchor, err := n.reuseOrAddState(input)
		if err != nil {
			return 0, err
		}
		if _, err := n.build(tree, nd.left, anchor, anchor, true); err != nil {
			return 0, err
		}
		if haveOutput {
			n.addEpsilon(anchor, output)
			return output, nil
		}
		return anchor, nil

	case nodePlus:
		anchor, err := n.reuseOrAddState(input)
		if err != nil {
			return 0, err
		}
		loopOutput, err := n.build(tree, nd.left, anchor, 0, false)
		if err != nil {
			return 0, err
		}
		n.addEpsilon(loopOutput, anchor)
		if haveOutput {
			n.addEpsilon(loopOutput, output)
			return output, nil
		}
		return loopOutput, nil
	}
	panic("unknown syntax node")
}
