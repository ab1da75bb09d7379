package huffman

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyAlphabet      = errors.New("no symbols to build a code from")
	ErrUnknownSymbol      = errors.New("symbol is not part of the code")
	ErrMalformedContainer = errors.New("malformed container")
	ErrBitCountOverflow   = errors.New("bit count exceeds the payload size")
	ErrTruncatedCodeword  = errors.New("bit stream ends in the middle of a codeword")
	ErrTrailingBits       = errors.New("bit stream has bits left after the last symbol")
	ErrAmbiguousLength    = errors.New("single-symbol code carries no length, symbol count is required")
	ErrTooManySymbols     = errors.New("symbol count exceeds the limit")
)

// UnknownSymbolError is returned by Encoder when it meets a symbol that has
// no codeword. It matches ErrUnknownSymbol.
type UnknownSymbolError[S Symbol] struct {
	Symbol S
}

func (e *UnknownSymbolError[S]) Error() string {
	return fmt.Sprintf("%s: %v", ErrUnknownSymbol, e.Symbol)
}

func (e *UnknownSymbolError[S]) Is(target error) bool {
	return target == ErrUnknownSymbol
}
