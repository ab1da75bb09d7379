package huffman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressUnpack(t *testing.T) {
	tests := []string{
		"ab",
		"abracadabra",
		"aaaaaaaaaaaaaaaa",
		"a",
		"Hello there! General Kenobi!!?",
		"\x00\x00\x00\xff",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			c, err := Compress([]byte(input))
			require.NoError(t, err)
			assert.Equal(t, uint64(len(input)), c.Count)
			assert.Equal(t, (c.BitCount+7)/8, uint64(len(c.Payload)))
			require.NoError(t, c.Validate())

			out, err := c.Unpack()
			require.NoError(t, err)
			assert.Equal(t, []byte(input), out)
		})
	}
}

func TestCompressGolden(t *testing.T) {
	c, err := Compress(symbolsOf("AABAACCAAAABA"))
	require.NoError(t, err)
	assert.Equal(t, "(A (C B))", c.Tree.String())
	assert.Equal(t, goldenPayload, c.Payload)
	assert.Equal(t, uint64(17), c.BitCount)
	assert.Equal(t, uint64(13), c.Count)
}

func TestCompressSingleSymbol(t *testing.T) {
	c, err := Compress([]byte("zzzzz"))
	require.NoError(t, err)
	assert.True(t, c.Tree.IsLeaf())
	assert.Zero(t, c.BitCount)
	assert.Empty(t, c.Payload)

	out, err := c.Unpack()
	require.NoError(t, err)
	assert.Equal(t, []byte("zzzzz"), out)
}

func TestCompressEmpty(t *testing.T) {
	_, err := Compress([]byte{})
	assert.ErrorIs(t, err, ErrEmptyAlphabet)
}

func TestPack(t *testing.T) {
	tree := treeFromCounts(map[string]uint64{"A": 10, "B": 2, "C": 2})
	bits, err := NewEncoder(tree).Encode(symbolsOf("CAB"))
	require.NoError(t, err)

	c := Pack(tree, bits, 3)
	assert.Same(t, tree, c.Tree)
	assert.Equal(t, uint64(5), c.BitCount)
	assert.Equal(t, []byte{0b10011000}, c.Payload)

	out, err := c.Unpack()
	require.NoError(t, err)
	assert.Equal(t, symbolsOf("CAB"), out)
}

func TestContainerValidate(t *testing.T) {
	good := func() *Container[string] {
		c, err := Compress(symbolsOf("AABAACCAAAABA"))
		require.NoError(t, err)
		return c
	}

	tests := []struct {
		name   string
		mutate func(c *Container[string])
	}{
		{"missing tree", func(c *Container[string]) { c.Tree = nil }},
		{"duplicate leaf", func(c *Container[string]) {
			c.Tree = NewBranch(NewLeaf("A"), NewBranch(NewLeaf("B"), NewLeaf("A")))
		}},
		{"half branch", func(c *Container[string]) { c.Tree = &Node[string]{first: NewLeaf("A")} }},
		{"payload too short", func(c *Container[string]) { c.Payload = c.Payload[:2] }},
		{"payload too long", func(c *Container[string]) { c.Payload = append(c.Payload, 0) }},
		{"bit count past payload", func(c *Container[string]) { c.BitCount = 25 }},
		{"dirty padding", func(c *Container[string]) { c.Payload = []byte{0b00110010, 0b10000011, 0b1} }},
		{"bits for single leaf", func(c *Container[string]) { c.Tree = NewLeaf("A") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := good()
			tt.mutate(c)
			assert.ErrorIs(t, c.Validate(), ErrMalformedContainer)
			_, err := c.Unpack()
			assert.ErrorIs(t, err, ErrMalformedContainer)
		})
	}
}

func TestContainerUnpackCountMismatch(t *testing.T) {
	c, err := Compress(symbolsOf("AABAACCAAAABA"))
	require.NoError(t, err)

	c.Count = 12
	_, err = c.Unpack()
	assert.ErrorIs(t, err, ErrMalformedContainer)
	assert.ErrorIs(t, err, ErrTrailingBits)
}
