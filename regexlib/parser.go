package regexlib

import "fmt"

// ParseError reports a token sequence that matches no grammar rule.
type ParseError struct {
	Tokens []Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed regex: %v", e.Tokens)
}

// Parse builds the subtree for a token sequence and returns its root id.
// Operators are bound loosest first: the sequence is split at the first
// union, else at the first concatenation point, else before the first
// star or plus, recursing on the pieces. Nodes land in the arena bottom
// up, so after a whole pattern is parsed the tree's root is the last
// node added.
func Parse(tokens []Token, tree *AST) (NodeID, error) {
	if i := findToken(tokens, tokenUnion); i >= 0 {
		left, err := Parse(tokens[:i], tree)
		if err != nil {
			return 0, err
		}
		right, err := Parse(tokens[i+1:], tree)
		if err != nil {
			return 0, err
		}
		return tree.add(node{kind: nodeOr, left: left, right: right}), nil
	}
	if i, ok := findAdjacentValues(tokens); ok {
		left, err := Parse(tokens[:i], tree)
		if err != nil {
			return 0, err
		}
		right, err := Parse(tokens[i:], tree)
		if err != nil {
			return 0, err
		}
		return tree.add(node{kind: nodeAnd, left: left, right: right}), nil
	}
	if i := findToken(tokens, tokenStar); i >= 0 {
		child, err := Parse(tokens[:i], tree)
		if err != nil {
			return 0, err
		}
		return tree.add(node{kind: nodeStar, left: child}), nil
	}
	if i := findToken(tokens, tokenPlus); i >= 0 {
		child, err := Parse(tokens[:i], tree)
		if err != nil {
			return 0, err
		}
		return tree.add(node{kind: nodePlus, left: child}), nil
	}
	if len(tokens) == 1 {
		switch tok := tokens[0]; tok.kind {
		case tokenLetter:
			return tree.add(node{kind: nodeLeaf, ch: tok.ch}), nil
		case tokenAnyLetter:
			return tree.add(node{kind: nodeLeafClass, class: AllLetter}), nil
		case tokenAnyDigit:
			return tree.add(node{kind: nodeLeafClass, class: AllDigit}), nil
		case tokenGroup:
			// parens add no node of their own
			return Parse(tok.group, tree)
		}
	}
	return 0, &ParseError{Tokens: tokens}
}
