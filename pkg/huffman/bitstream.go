package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/icza/bitio"
)

// BitString is a sequence of bits packed 8 per byte, most significant bit
// first, with the unused low bits of the last byte set to zero.
type BitString struct {
	data []byte
	n    uint64
}

// NewBitString wraps the first n bits of data. data is not copied.
func NewBitString(data []byte, n uint64) (BitString, error) {
	if n > uint64(len(data))*8 {
		return BitString{}, fmt.Errorf("%w: %d bits in %d bytes", ErrBitCountOverflow, n, len(data))
	}
	return BitString{data: data, n: n}, nil
}

// Len is the number of meaningful bits.
func (bs BitString) Len() uint64 {
	return bs.n
}

// Bytes returns the packed bits, padding included.
func (bs BitString) Bytes() []byte {
	return bs.data
}

// At returns bit i. It panics if i is out of range.
func (bs BitString) At(i uint64) bool {
	if i >= bs.n {
		panic(fmt.Sprintf("bit index %d out of range [0, %d)", i, bs.n))
	}
	return bs.data[i/8]&(0x80>>(i%8)) != 0
}

// String returns the bits as a string of '0' and '1'.
func (bs BitString) String() string {
	var sb strings.Builder
	sb.Grow(int(bs.n))
	for i := uint64(0); i < bs.n; i++ {
		if bs.At(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// paddingIsZero reports whether the bits after Len in the last byte are 0.
func (bs BitString) paddingIsZero() bool {
	if bs.n%8 == 0 || uint64(len(bs.data)) != (bs.n+7)/8 {
		return true
	}
	return bs.data[len(bs.data)-1]&(0xFF>>(bs.n%8)) == 0
}

type bitsWriter struct {
	buf bytes.Buffer
	w   *bitio.Writer
	n   uint64
}

func newBitsWriter() *bitsWriter {
	bw := new(bitsWriter)
	bw.w = bitio.NewWriter(&bw.buf)
	return bw
}

func (bw *bitsWriter) writeCodeword(cw Codeword) error {
	for _, bit := range cw {
		if err := bw.w.WriteBool(bit); err != nil {
			return err
		}
	}
	bw.n += uint64(len(cw))
	return nil
}

// finish pads the last byte with zeros and returns everything written.
func (bw *bitsWriter) finish() (BitString, error) {
	if err := bw.w.Close(); err != nil {
		return BitString{}, err
	}
	return BitString{data: bw.buf.Bytes(), n: bw.n}, nil
}

type bitsReader struct {
	r         *bitio.Reader
	remaining uint64
}

func newBitsReader(bs BitString) *bitsReader {
	return &bitsReader{
		r:         bitio.NewReader(bytes.NewReader(bs.data)),
		remaining: bs.n,
	}
}

// readBit returns io.EOF once all meaningful bits have been read, even if
// padding bits remain in the last byte.
func (br *bitsReader) readBit() (bool, error) {
	if br.remaining == 0 {
		return false, io.EOF
	}
	bit, err := br.r.ReadBool()
	if err != nil {
		return false, err
	}
	br.remaining--
	return bit, nil
}

func (br *bitsReader) exhausted() bool {
	return br.remaining == 0
}
