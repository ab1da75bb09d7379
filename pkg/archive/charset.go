package archive

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultCharset is used for AlphabetRune when no charset is given.
const DefaultCharset = "utf-8"

var (
	ErrUnknownCharset = errors.New("unknown charset")
	ErrNotText        = errors.New("input is not valid text in the charset")
)

// lookupCharset resolves a WHATWG encoding label such as "utf-8", "latin1"
// or "windows-1251" and returns its canonical name.
func lookupCharset(label string) (encoding.Encoding, string, error) {
	if label == "" {
		label = DefaultCharset
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownCharset, label)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		name = label
	}
	return enc, name, nil
}

// decodeText converts data to characters. Decoders replace malformed input
// instead of failing, so the result is encoded back and compared with data.
func decodeText(enc encoding.Encoding, data []byte) ([]rune, error) {
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotText, err)
	}
	reencoded, err := enc.NewEncoder().Bytes(decoded)
	if err != nil || !bytes.Equal(reencoded, data) {
		return nil, ErrNotText
	}
	return []rune(string(decoded)), nil
}

func encodeText(enc encoding.Encoding, text []rune) ([]byte, error) {
	out, err := enc.NewEncoder().Bytes([]byte(string(text)))
	if err != nil {
		return nil, fmt.Errorf("failed to encode text: %w", err)
	}
	return out, nil
}
