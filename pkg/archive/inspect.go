package archive

import (
	"fmt"
	"strings"

	"github.com/ei-projects/huffpack/pkg/huffman"
)

// Info describes an archive without decoding its payload.
type Info struct {
	Header
	Tree     string
	Leaves   int
	Depth    int
	Count    uint64
	BitCount uint64
	Payload  []byte
	Codes    string
}

// Inspect decodes and validates an archive and describes its code.
func Inspect(data []byte) (*Info, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}
	switch h.Alphabet {
	case AlphabetByte:
		return inspect[byte](data)
	case AlphabetRune:
		return inspect[rune](data)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlphabet, h.Alphabet)
}

func inspect[S huffman.Symbol](data []byte) (*Info, error) {
	h, c, err := Unmarshal[S](data)
	if err != nil {
		return nil, err
	}

	var codes strings.Builder
	if _, err := huffman.DeriveCodes(c.Tree).Dump(&codes); err != nil {
		return nil, err
	}

	return &Info{
		Header:   h,
		Tree:     c.Tree.String(),
		Leaves:   c.Tree.Leaves(),
		Depth:    c.Tree.Depth(),
		Count:    c.Count,
		BitCount: c.BitCount,
		Payload:  c.Payload,
		Codes:    codes.String(),
	}, nil
}
