// Package huffman builds Huffman prefix codes over an arbitrary ordered
// symbol type and uses them to pack symbol streams into bits and back.
//
// The usual flow is:
//
//	freqs := huffman.NewFrequencyTable[byte]()
//	freqs.AddSlice(data)
//	tree := huffman.BuildTree(freqs)
//	bits, err := huffman.NewEncoder(tree).Encode(data)
//	...
//	out, err := huffman.NewDecoder(tree).Decode(bits.Bytes(), bits.Len())
//
// Container bundles a tree with its packed payload so a compressed artifact
// can be restored later; see the archive package for its persisted form.
package huffman
