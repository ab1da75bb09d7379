package archive

import (
	"fmt"
	"unicode/utf8"

	"github.com/ei-projects/huffpack/pkg/huffman"
)

// wireNode is a tree node as stored: a leaf is {1: symbol} (an empty map for
// the zero symbol) and a branch is {2: [first, second]}.
type wireNode[S huffman.Symbol] struct {
	Symbol   S             `cbor:"1,keyasint,omitempty"`
	Children []wireNode[S] `cbor:"2,keyasint,omitempty"`
}

type wireContainer[S huffman.Symbol] struct {
	Tree     wireNode[S] `cbor:"1,keyasint"`
	Payload  []byte      `cbor:"2,keyasint"`
	BitCount uint64      `cbor:"3,keyasint"`
	Count    uint64      `cbor:"4,keyasint"`
}

func toWireNode[S huffman.Symbol](n *huffman.Node[S]) wireNode[S] {
	if n.IsLeaf() {
		return wireNode[S]{Symbol: n.Symbol()}
	}
	first, second := n.Children()
	return wireNode[S]{Children: []wireNode[S]{toWireNode(first), toWireNode(second)}}
}

func (wn *wireNode[S]) toNode() (*huffman.Node[S], error) {
	var zero S
	switch len(wn.Children) {
	case 0:
		if r, ok := any(wn.Symbol).(rune); ok && !utf8.ValidRune(r) {
			return nil, fmt.Errorf("%w: %w: invalid rune %#x",
				ErrInvalidData, huffman.ErrMalformedContainer, r)
		}
		return huffman.NewLeaf(wn.Symbol), nil
	case 2:
		if wn.Symbol != zero {
			return nil, fmt.Errorf("%w: %w: branch carries symbol %v",
				ErrInvalidData, huffman.ErrMalformedContainer, wn.Symbol)
		}
		first, err := wn.Children[0].toNode()
		if err != nil {
			return nil, err
		}
		second, err := wn.Children[1].toNode()
		if err != nil {
			return nil, err
		}
		return huffman.NewBranch(first, second), nil
	}
	return nil, fmt.Errorf("%w: %w: branch with %d children",
		ErrInvalidData, huffman.ErrMalformedContainer, len(wn.Children))
}

func toWireContainer[S huffman.Symbol](c *huffman.Container[S]) wireContainer[S] {
	return wireContainer[S]{
		Tree:     toWireNode(c.Tree),
		Payload:  c.Payload,
		BitCount: c.BitCount,
		Count:    c.Count,
	}
}

func (wc *wireContainer[S]) toContainer() (*huffman.Container[S], error) {
	tree, err := wc.Tree.toNode()
	if err != nil {
		return nil, err
	}
	return &huffman.Container[S]{
		Tree:     tree,
		Payload:  wc.Payload,
		BitCount: wc.BitCount,
		Count:    wc.Count,
	}, nil
}
