package huffman

import "fmt"

// Container is the self-describing form of a compressed symbol stream: the
// tree that produced the payload, the payload itself and the exact number
// of meaningful payload bits. Count, the number of encoded symbols, lets a
// single-symbol stream (whose codewords are empty) be restored as well.
type Container[S Symbol] struct {
	Tree     *Node[S]
	Payload  []byte
	BitCount uint64
	Count    uint64
}

// Pack bundles tree and the bits it produced for count symbols.
func Pack[S Symbol](tree *Node[S], bits BitString, count uint64) *Container[S] {
	return &Container[S]{
		Tree:     tree,
		Payload:  bits.Bytes(),
		BitCount: bits.Len(),
		Count:    count,
	}
}

// Compress builds a code for symbols, encodes them and packs the result.
func Compress[S Symbol](symbols []S) (*Container[S], error) {
	freqs := NewFrequencyTable[S]()
	freqs.AddSlice(symbols)
	tree := BuildTree(freqs)
	if tree == nil {
		return nil, ErrEmptyAlphabet
	}
	bits, err := NewEncoder(tree).Encode(symbols)
	if err != nil {
		return nil, err
	}
	return Pack(tree, bits, uint64(len(symbols))), nil
}

// Validate rejects containers that could not have been produced by Pack:
// a missing or malformed tree, a payload whose size does not match the bit
// count, or non-zero padding bits.
func (c *Container[S]) Validate() error {
	if err := c.Tree.Validate(); err != nil {
		return err
	}
	if want := (c.BitCount + 7) / 8; uint64(len(c.Payload)) != want {
		return fmt.Errorf("%w: %d payload bytes for %d bits, want %d",
			ErrMalformedContainer, len(c.Payload), c.BitCount, want)
	}
	bits := BitString{data: c.Payload, n: c.BitCount}
	if !bits.paddingIsZero() {
		return fmt.Errorf("%w: non-zero padding bits", ErrMalformedContainer)
	}
	if c.Tree.IsLeaf() && c.BitCount != 0 {
		return fmt.Errorf("%w: single-symbol tree with %d payload bits", ErrMalformedContainer, c.BitCount)
	}
	return nil
}

// Unpack validates the container and decodes its payload.
func (c *Container[S]) Unpack() ([]S, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	symbols, err := NewDecoder(c.Tree).DecodeN(c.Payload, c.BitCount, c.Count)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedContainer, err)
	}
	return symbols, nil
}
