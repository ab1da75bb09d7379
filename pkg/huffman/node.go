package huffman

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Node is a vertex of a prefix-code tree: either a leaf holding one symbol,
// or a branch holding exactly two children. The first child is reached with
// a 0 bit and the second with a 1 bit.
type Node[S Symbol] struct {
	symbol S
	first  *Node[S]
	second *Node[S]
}

func NewLeaf[S Symbol](symbol S) *Node[S] {
	return &Node[S]{symbol: symbol}
}

// NewBranch takes ownership of both children.
func NewBranch[S Symbol](first, second *Node[S]) *Node[S] {
	assert.Assertf(first != nil && second != nil, "NewBranch needs two children, got %v and %v", first, second)
	return &Node[S]{first: first, second: second}
}

func (n *Node[S]) IsLeaf() bool {
	return n.first == nil
}

// Symbol returns the leaf's symbol, or the zero value for a branch.
func (n *Node[S]) Symbol() S {
	return n.symbol
}

// Children returns the 0 and 1 children of a branch, or nils for a leaf.
func (n *Node[S]) Children() (first, second *Node[S]) {
	return n.first, n.second
}

// Equal reports whether both trees have the same shape and leaves.
func (n *Node[S]) Equal(other *Node[S]) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.IsLeaf() != other.IsLeaf() {
		return false
	}
	if n.IsLeaf() {
		return n.symbol == other.symbol
	}
	return n.first.Equal(other.first) && n.second.Equal(other.second)
}

// Leaves is the number of leaves below n, n included.
func (n *Node[S]) Leaves() int {
	if n.IsLeaf() {
		return 1
	}
	return n.first.Leaves() + n.second.Leaves()
}

// Depth is the length of the longest codeword the tree produces.
func (n *Node[S]) Depth() int {
	if n.IsLeaf() {
		return 0
	}
	return 1 + max(n.first.Depth(), n.second.Depth())
}

// Validate checks a tree that did not come from the builder, e.g. one read
// back from storage: every branch must have two children and no symbol may
// appear on more than one leaf.
func (n *Node[S]) Validate() error {
	if n == nil {
		return fmt.Errorf("%w: missing tree", ErrMalformedContainer)
	}
	seen := make(map[S]struct{})
	var walk func(node *Node[S]) error
	walk = func(node *Node[S]) error {
		if (node.first == nil) != (node.second == nil) {
			return fmt.Errorf("%w: branch with a single child", ErrMalformedContainer)
		}
		if node.IsLeaf() {
			if _, dup := seen[node.symbol]; dup {
				return fmt.Errorf("%w: symbol %v appears on more than one leaf", ErrMalformedContainer, node.symbol)
			}
			seen[node.symbol] = struct{}{}
			return nil
		}
		if err := walk(node.first); err != nil {
			return err
		}
		return walk(node.second)
	}
	return walk(n)
}

// String renders the tree as an S-expression, e.g. "(A (C B))".
func (n *Node[S]) String() string {
	if n == nil {
		return "<nil>"
	}
	var sb strings.Builder
	n.writeTo(&sb)
	return sb.String()
}

func (n *Node[S]) writeTo(sb *strings.Builder) {
	if n.IsLeaf() {
		fmt.Fprintf(sb, "%v", n.symbol)
		return
	}
	sb.WriteByte('(')
	n.first.writeTo(sb)
	sb.WriteByte(' ')
	n.second.writeTo(sb)
	sb.WriteByte(')')
}

// compareNodes orders nodes of equal weight: branches before leaves, leaves
// by symbol, branches by their first children.
func compareNodes[S Symbol](a, b *Node[S]) int {
	for {
		switch {
		case a.IsLeaf() && b.IsLeaf():
			return cmp.Compare(a.symbol, b.symbol)
		case a.IsLeaf():
			return 1
		case b.IsLeaf():
			return -1
		}
		a, b = a.first, b.first
	}
}
