package huffman

import (
	"iter"
	"slices"
)

// Encoder turns symbol streams into bit strings using a fixed code table.
type Encoder[S Symbol] struct {
	codes CodeTable[S]
}

func NewEncoder[S Symbol](root *Node[S]) *Encoder[S] {
	return &Encoder[S]{codes: DeriveCodes(root)}
}

// NewEncoderFromCodes reuses a table derived earlier with DeriveCodes.
func NewEncoderFromCodes[S Symbol](codes CodeTable[S]) *Encoder[S] {
	return &Encoder[S]{codes: codes}
}

func (e *Encoder[S]) Codes() CodeTable[S] {
	return e.codes
}

func (e *Encoder[S]) Codeword(symbol S) (Codeword, bool) {
	cw, ok := e.codes[symbol]
	return cw, ok
}

// Encode concatenates the codewords of symbols.
func (e *Encoder[S]) Encode(symbols []S) (BitString, error) {
	return e.EncodeSeq(slices.Values(symbols))
}

// EncodeSeq concatenates the codewords of every symbol yielded by seq. It
// stops at the first symbol missing from the table and returns an
// *UnknownSymbolError carrying it, with no partial output.
func (e *Encoder[S]) EncodeSeq(seq iter.Seq[S]) (BitString, error) {
	bw := newBitsWriter()
	for symbol := range seq {
		cw, ok := e.codes[symbol]
		if !ok {
			return BitString{}, &UnknownSymbolError[S]{Symbol: symbol}
		}
		if err := bw.writeCodeword(cw); err != nil {
			return BitString{}, err
		}
	}
	return bw.finish()
}
