package regextree

import (
	lexan "github.com/ghallak/lexical-analyzer"
)

func (k NodeKind) String() string {
	switch k {
	case Concat:
		return "Concat"
	case Union:
		return "Union"
	case Star:
		return "Star"
	case Leaf:
		return "Leaf"
	default:
		return "UnknownNodeKind"
	}
}

func errInvalidChildAccess(n *Node, want string) error {
	return lexan.NewError(lexan.InvalidTreeChildAccess,
		"%s node has no %s", n.kind, want)
}

func errInvalidNodeKind(n *Node) error {
	return lexan.NewError(lexan.InvalidNodeType, "unrecognised node kind %s", n.kind)
}
