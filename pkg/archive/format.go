package archive

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/ei-projects/huffpack/pkg/huffman"
)

const (
	formatMagic   = "HUFP"
	formatVersion = 1

	// Each tree level costs two nesting levels on the wire (node map and
	// children array).
	maxNestedLevels = 1024
	maxTreeDepth    = (maxNestedLevels - 8) / 2
)

var (
	ErrInvalidData         = errors.New("invalid data")
	ErrUnsupportedAlphabet = errors.New("unsupported alphabet")
	ErrAlphabetMismatch    = errors.New("archive holds a different alphabet")
	ErrTreeTooDeep         = errors.New("code tree is too deep to be stored")
)

// Alphabet names the symbol type of an archive's code.
type Alphabet string

const (
	// AlphabetByte codes raw bytes. It is lossless for any input.
	AlphabetByte Alphabet = "byte"
	// AlphabetRune codes the characters of text decoded with a charset.
	AlphabetRune Alphabet = "rune"
)

// Header describes the payload of an archive.
type Header struct {
	Version  uint
	Alphabet Alphabet
	// Charset is the name of the text encoding of the original input, for
	// AlphabetRune archives only.
	Charset string
}

type envelope struct {
	Magic    string          `cbor:"1,keyasint"`
	Version  uint            `cbor:"2,keyasint"`
	Alphabet Alphabet        `cbor:"3,keyasint"`
	Charset  string          `cbor:"4,keyasint,omitempty"`
	Body     cbor.RawMessage `cbor:"5,keyasint"`
}

var (
	encMode = mustEncMode()
	decMode = mustDecMode()
)

func mustEncMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

func mustDecMode() cbor.DecMode {
	dm, err := cbor.DecOptions{
		MaxNestedLevels: maxNestedLevels,
		DupMapKey:       cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}

func alphabetOf[S huffman.Symbol]() Alphabet {
	var zero S
	switch any(zero).(type) {
	case byte:
		return AlphabetByte
	case rune:
		return AlphabetRune
	}
	return ""
}

// Marshal encodes c into an archive. The alphabet is taken from S, which
// must be byte or rune; the version is filled in.
func Marshal[S huffman.Symbol](h Header, c *huffman.Container[S]) ([]byte, error) {
	h.Version = formatVersion
	h.Alphabet = alphabetOf[S]()
	if h.Alphabet == "" {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedAlphabet, *new(S))
	}
	if h.Alphabet != AlphabetRune {
		h.Charset = ""
	}
	if c.Tree == nil {
		return nil, fmt.Errorf("%w: missing tree", huffman.ErrMalformedContainer)
	}
	if depth := c.Tree.Depth(); depth > maxTreeDepth {
		return nil, fmt.Errorf("%w: %d levels, max %d", ErrTreeTooDeep, depth, maxTreeDepth)
	}

	body, err := encMode.Marshal(toWireContainer(c))
	if err != nil {
		return nil, fmt.Errorf("failed to encode container: %w", err)
	}
	return encMode.Marshal(envelope{
		Magic:    formatMagic,
		Version:  h.Version,
		Alphabet: h.Alphabet,
		Charset:  h.Charset,
		Body:     body,
	})
}

// ReadHeader decodes only the header of an archive, which tells the caller
// which symbol type to pass to Unmarshal.
func ReadHeader(data []byte) (Header, error) {
	env, err := readEnvelope(data)
	if err != nil {
		return Header{}, err
	}
	return env.header(), nil
}

// Unmarshal decodes an archive and validates its container.
func Unmarshal[S huffman.Symbol](data []byte) (Header, *huffman.Container[S], error) {
	env, err := readEnvelope(data)
	if err != nil {
		return Header{}, nil, err
	}
	if want := alphabetOf[S](); env.Alphabet != want {
		return Header{}, nil, fmt.Errorf("%w: %q, want %q", ErrAlphabetMismatch, env.Alphabet, want)
	}

	var wc wireContainer[S]
	if err := decMode.Unmarshal(env.Body, &wc); err != nil {
		return Header{}, nil, fmt.Errorf("%w: container: %v", ErrInvalidData, err)
	}
	c, err := wc.toContainer()
	if err != nil {
		return Header{}, nil, err
	}
	if err := c.Validate(); err != nil {
		return Header{}, nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	if c.Count == 0 {
		return Header{}, nil, fmt.Errorf("%w: no symbols", ErrInvalidData)
	}
	return env.header(), c, nil
}

func readEnvelope(data []byte) (*envelope, error) {
	var env envelope
	if err := decMode.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	if env.Magic != formatMagic {
		return nil, fmt.Errorf("%w: invalid magic %q", ErrInvalidData, env.Magic)
	}
	if env.Version != formatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidData, env.Version)
	}
	switch env.Alphabet {
	case AlphabetByte, AlphabetRune:
	default:
		return nil, fmt.Errorf("%w: %w %q", ErrInvalidData, ErrUnsupportedAlphabet, env.Alphabet)
	}
	if len(env.Body) == 0 {
		return nil, fmt.Errorf("%w: missing body", ErrInvalidData)
	}
	return &env, nil
}

func (env *envelope) header() Header {
	return Header{Version: env.Version, Alphabet: env.Alphabet, Charset: env.Charset}
}
