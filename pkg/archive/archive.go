// Package archive stores Huffman containers as self-describing files.
//
// An archive is a CBOR map holding a magic string, a format version, the
// alphabet of the code and, for text, the charset of the original input,
// followed by the encoded container (tree, packed payload, bit count and
// symbol count).
package archive

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ei-projects/huffpack/pkg/huffman"
)

// Options control how Compress builds an archive.
type Options struct {
	// Alphabet defaults to AlphabetByte.
	Alphabet Alphabet
	// Charset is the encoding of the input for AlphabetRune, DefaultCharset
	// when empty.
	Charset string
}

// Compress builds a Huffman code for data and returns the archive. Empty
// data cannot be compressed and yields huffman.ErrEmptyAlphabet.
func Compress(data []byte, opts Options) ([]byte, error) {
	switch opts.Alphabet {
	case "", AlphabetByte:
		c, err := huffman.Compress(data)
		if err != nil {
			return nil, err
		}
		return Marshal(Header{}, c)

	case AlphabetRune:
		enc, name, err := lookupCharset(opts.Charset)
		if err != nil {
			return nil, err
		}
		text, err := decodeText(enc, data)
		if err != nil {
			return nil, err
		}
		c, err := huffman.Compress(text)
		if err != nil {
			return nil, err
		}
		return Marshal(Header{Charset: name}, c)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlphabet, opts.Alphabet)
}

// DefaultMaxSymbols bounds the symbol count Decompress accepts. A
// single-symbol archive stores its length in a few bytes, so the count alone
// decides how much memory decoding takes.
const DefaultMaxSymbols = 1 << 30

// Decompress restores the original bytes from an archive of at most
// DefaultMaxSymbols symbols.
func Decompress(data []byte) ([]byte, error) {
	return DecompressLimit(data, DefaultMaxSymbols)
}

// DecompressLimit is Decompress with a caller-chosen symbol limit. Archives
// holding more than maxSymbols symbols fail with huffman.ErrTooManySymbols
// before anything is decoded.
func DecompressLimit(data []byte, maxSymbols uint64) ([]byte, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}

	switch h.Alphabet {
	case AlphabetByte:
		_, c, err := Unmarshal[byte](data)
		if err != nil {
			return nil, err
		}
		if err := checkCount(c.Count, maxSymbols); err != nil {
			return nil, err
		}
		out, err := c.Unpack()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
		}
		return out, nil

	case AlphabetRune:
		enc, _, err := lookupCharset(h.Charset)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
		}
		_, c, err := Unmarshal[rune](data)
		if err != nil {
			return nil, err
		}
		if err := checkCount(c.Count, maxSymbols); err != nil {
			return nil, err
		}
		text, err := c.Unpack()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
		}
		return encodeText(enc, text)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlphabet, h.Alphabet)
}

func checkCount(count, maxSymbols uint64) error {
	if count > maxSymbols {
		return fmt.Errorf("%w: %w: %d symbols, max %d",
			ErrInvalidData, huffman.ErrTooManySymbols, count, maxSymbols)
	}
	return nil
}

type archiveWriter struct {
	writer io.Writer
	opts   Options
	buf    bytes.Buffer
	closed bool
}

// NewWriter returns a writer that collects everything written to it and
// writes the archive to w on Close. The whole input is needed to build the
// code, so nothing reaches w before Close.
func NewWriter(w io.Writer, opts Options) io.WriteCloser {
	return &archiveWriter{writer: w, opts: opts}
}

func (aw *archiveWriter) Write(p []byte) (int, error) {
	if aw.closed {
		return 0, io.ErrClosedPipe
	}
	return aw.buf.Write(p)
}

func (aw *archiveWriter) Close() error {
	if aw.closed {
		return nil
	}
	aw.closed = true

	packed, err := Compress(aw.buf.Bytes(), aw.opts)
	if err != nil {
		return err
	}
	n, err := aw.writer.Write(packed)
	if err != nil {
		return err
	}
	if n != len(packed) {
		return io.ErrShortWrite
	}
	return nil
}

type archiveReader struct {
	reader     io.Reader
	maxSymbols uint64
	data       *bytes.Reader
	err        error
}

// NewReader returns a reader of the original bytes of the archive read from
// r. The archive is read and decoded in full on the first Read.
func NewReader(r io.Reader) io.Reader {
	return NewLimitedReader(r, DefaultMaxSymbols)
}

// NewLimitedReader is NewReader with the symbol limit of DecompressLimit.
func NewLimitedReader(r io.Reader, maxSymbols uint64) io.Reader {
	return &archiveReader{reader: r, maxSymbols: maxSymbols}
}

func (ar *archiveReader) init() bool {
	packed, err := io.ReadAll(ar.reader)
	if err != nil {
		ar.err = err
		return false
	}
	out, err := DecompressLimit(packed, ar.maxSymbols)
	if err != nil {
		ar.err = err
		return false
	}
	ar.data = bytes.NewReader(out)
	return true
}

func (ar *archiveReader) Read(p []byte) (int, error) {
	if ar.err != nil || ar.data == nil && !ar.init() {
		return 0, ar.err
	}
	return ar.data.Read(p)
}
