package huffman

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Decoder inverts an Encoder built from the same tree. The tree is only
// read, so it may be shared with the caller, and the Decoder may be reused.
type Decoder[S Symbol] struct {
	root *Node[S]
}

func NewDecoder[S Symbol](root *Node[S]) *Decoder[S] {
	assert.Assertf(root != nil, "NewDecoder needs a tree")
	return &Decoder[S]{root: root}
}

func (d *Decoder[S]) Tree() *Node[S] {
	return d.root
}

// Decode walks the tree once per symbol until exactly bitCount bits of data
// have been consumed.
//
// A tree made of a single leaf encodes every symbol with zero bits, so the
// number of symbols cannot be recovered from the bits alone; Decode returns
// ErrAmbiguousLength for it and DecodeN must be used instead.
func (d *Decoder[S]) Decode(data []byte, bitCount uint64) ([]S, error) {
	bs, err := NewBitString(data, bitCount)
	if err != nil {
		return nil, err
	}
	if d.root.IsLeaf() {
		if bitCount != 0 {
			return nil, fmt.Errorf("%w: %d bits for a zero-bit code", ErrTrailingBits, bitCount)
		}
		return nil, ErrAmbiguousLength
	}

	br := newBitsReader(bs)
	out := make([]S, 0, bitCount/uint64(max(d.root.Depth(), 1)))
	for !br.exhausted() {
		symbol, err := d.next(br)
		if err != nil {
			return nil, err
		}
		out = append(out, symbol)
	}
	return out, nil
}

// DecodeN decodes exactly n symbols and fails unless they use up exactly
// bitCount bits. For a single-leaf tree the result is n copies of its symbol
// and no bits are read, so callers decoding untrusted data should bound n.
func (d *Decoder[S]) DecodeN(data []byte, bitCount, n uint64) ([]S, error) {
	bs, err := NewBitString(data, bitCount)
	if err != nil {
		return nil, err
	}
	if d.root.IsLeaf() {
		if bitCount != 0 {
			return nil, fmt.Errorf("%w: %d bits for a zero-bit code", ErrTrailingBits, bitCount)
		}
		if n > math.MaxInt {
			return nil, fmt.Errorf("%w: %d symbols", ErrTooManySymbols, n)
		}
		out := make([]S, n)
		for i := range out {
			out[i] = d.root.symbol
		}
		return out, nil
	}

	// Every codeword of a multi-leaf tree is at least one bit long.
	if n > bitCount {
		return nil, fmt.Errorf("%w: %d symbols cannot fit in %d bits", ErrTruncatedCodeword, n, bitCount)
	}

	br := newBitsReader(bs)
	out := make([]S, 0, n)
	for i := uint64(0); i < n; i++ {
		symbol, err := d.next(br)
		if err != nil {
			return nil, err
		}
		out = append(out, symbol)
	}
	if !br.exhausted() {
		return nil, fmt.Errorf("%w: %d of %d bits unused", ErrTrailingBits, br.remaining, bitCount)
	}
	return out, nil
}

// next follows one codeword from the root down to a leaf.
func (d *Decoder[S]) next(br *bitsReader) (S, error) {
	node := d.root
	for !node.IsLeaf() {
		bit, err := br.readBit()
		if errors.Is(err, io.EOF) {
			var zero S
			return zero, ErrTruncatedCodeword
		}
		if err != nil {
			var zero S
			return zero, err
		}
		if bit {
			node = node.second
		} else {
			node = node.first
		}
	}
	return node.symbol, nil
}
