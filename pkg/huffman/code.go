package huffman

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Codeword is the sequence of bits, root to leaf, that encodes one symbol.
// false is a 0 bit and true is a 1 bit.
type Codeword []bool

func (cw Codeword) Len() int {
	return len(cw)
}

// HasPrefix reports whether prefix is a (not necessarily proper) prefix of cw.
func (cw Codeword) HasPrefix(prefix Codeword) bool {
	return len(prefix) <= len(cw) && slices.Equal(cw[:len(prefix)], prefix)
}

// String returns the quoted bits, e.g. "0110".
func (cw Codeword) String() string {
	var sb strings.Builder
	for _, bit := range cw {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Codeword{}

// CodeTable maps every symbol of a tree to its codeword.
type CodeTable[S Symbol] map[S]Codeword

// DeriveCodes walks root once and returns the codeword of every leaf. A tree
// made of a single leaf gives that symbol an empty codeword.
func DeriveCodes[S Symbol](root *Node[S]) CodeTable[S] {
	codes := make(CodeTable[S])
	if root == nil {
		return codes
	}

	var visit func(node *Node[S], prefix Codeword)
	visit = func(node *Node[S], prefix Codeword) {
		if node.IsLeaf() {
			codes[node.symbol] = prefix
			return
		}
		// Each branch gets its own copy so siblings never share a backing array.
		visit(node.first, append(slices.Clip(prefix), false))
		visit(node.second, append(slices.Clip(prefix), true))
	}
	visit(root, Codeword{})

	return codes
}

// Symbols returns the table's symbols in ascending order.
func (ct CodeTable[S]) Symbols() []S {
	return slices.Sorted(maps.Keys(ct))
}

// MinSize and MaxSize are the bit lengths of the shortest and longest codewords.
func (ct CodeTable[S]) MinSize() int {
	minSize := -1
	for _, cw := range ct {
		if minSize < 0 || cw.Len() < minSize {
			minSize = cw.Len()
		}
	}
	return max(minSize, 0)
}

func (ct CodeTable[S]) MaxSize() int {
	maxSize := 0
	for _, cw := range ct {
		maxSize = max(maxSize, cw.Len())
	}
	return maxSize
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ct CodeTable[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.MaxSize())
	for _, symbol := range ct.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%v) = %s\n", symbol, ct[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
