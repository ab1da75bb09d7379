package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/ei-projects/huffpack/pkg/archive"
	"github.com/ei-projects/huffpack/pkg/huffman"
)

func execute(t *testing.T, stdin []byte, args ...string) ([]byte, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(bytes.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.Bytes(), err
}

func TestCompressDecompressStdio(t *testing.T) {
	input := []byte("AABAACCAAAABA")

	packed, err := execute(t, input, "-c")
	require.NoError(t, err)
	require.NotEmpty(t, packed)

	out, err := execute(t, packed, "--decompress", "-")
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestCompressDecompressFiles(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "input.txt")
	packedPath := filepath.Join(dir, "input.huf")
	outPath := filepath.Join(dir, "output.txt")

	input := bytes.Repeat([]byte("She sells sea shells by the sea shore. "), 50)
	require.NoError(t, os.WriteFile(inPath, input, 0o644))

	stdout, err := execute(t, nil, "--compress", "--verbose", inPath, packedPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	packed, err := os.ReadFile(packedPath)
	require.NoError(t, err)
	assert.Less(t, len(packed), len(input))

	_, err = execute(t, nil, "-d", "--log-format", "json", packedPath, outPath)
	require.NoError(t, err)

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestCompressText(t *testing.T) {
	input, err := charmap.Windows1251.NewEncoder().Bytes([]byte("Тише едешь, дальше будешь."))
	require.NoError(t, err)

	packed, err := execute(t, input, "-c", "--alphabet", "rune", "--charset", "windows-1251")
	require.NoError(t, err)

	h, err := archive.ReadHeader(packed)
	require.NoError(t, err)
	assert.Equal(t, archive.AlphabetRune, h.Alphabet)
	assert.Equal(t, "windows-1251", h.Charset)

	out, err := execute(t, packed, "-d")
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestCompressEmpty(t *testing.T) {
	_, err := execute(t, nil, "-c")
	assert.ErrorIs(t, err, errNothingToCompress)

	dir := t.TempDir()
	inPath := filepath.Join(dir, "empty")
	outPath := filepath.Join(dir, "empty.huf")
	require.NoError(t, os.WriteFile(inPath, nil, 0o644))

	_, err = execute(t, nil, "-c", inPath, outPath)
	assert.ErrorIs(t, err, errNothingToCompress)
	assert.NoFileExists(t, outPath)
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin []byte
		args  []string
	}{
		{"no mode", []byte("abc"), nil},
		{"both modes", []byte("abc"), []string{"-c", "-d"}},
		{"too many args", []byte("abc"), []string{"-c", "a", "b", "c"}},
		{"missing input", nil, []string{"-c", filepath.Join(t.TempDir(), "missing")}},
		{"bad alphabet", []byte("abc"), []string{"-c", "--alphabet", "word"}},
		{"bad charset", []byte("abc"), []string{"-c", "--alphabet", "rune", "--charset", "klingon"}},
		{"not text", []byte{0xff, 0xfe}, []string{"-c", "--alphabet", "rune"}},
		{"bad log format", []byte("abc"), []string{"-c", "--log-format", "xml"}},
		{"not an archive", []byte("abc"), []string{"-d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.stdin, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestDecompressInvalid(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out")

	_, err := execute(t, []byte("definitely not an archive"), "-d", "-", outPath)
	assert.ErrorIs(t, err, archive.ErrInvalidData)
	assert.NoFileExists(t, outPath)
}

func TestDecompressMaxSymbols(t *testing.T) {
	packed, err := execute(t, []byte("zzzzzzzz"), "-c")
	require.NoError(t, err)

	_, err = execute(t, packed, "-d", "--max-symbols", "7")
	assert.ErrorIs(t, err, huffman.ErrTooManySymbols)

	out, err := execute(t, packed, "-d", "--max-symbols", "8")
	require.NoError(t, err)
	assert.Equal(t, []byte("zzzzzzzz"), out)
}

func TestInspect(t *testing.T) {
	packed, err := execute(t, []byte("AABAACCAAAABA"), "-c")
	require.NoError(t, err)

	out, err := execute(t, packed, "inspect")
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, "Alphabet: byte\n")
	assert.Contains(t, text, "Charset:  -\n")
	assert.Contains(t, text, "Symbols:  13\n")
	assert.Contains(t, text, "Bits:     17\n")
	assert.Contains(t, text, "Tree:     (65 (67 66))\n")
	assert.Contains(t, text, "\tEncode(66) = \"11\"\n")
	assert.Contains(t, text, "Payload (3 of 3 bytes):\n00000000  32 83 00 ")

	out, err = execute(t, packed, "inspect", "--payload-bytes", "1")
	require.NoError(t, err)
	assert.Contains(t, string(out), "Payload (1 of 3 bytes):\n00000000  32 ")

	_, err = execute(t, []byte("junk"), "inspect")
	assert.ErrorIs(t, err, archive.ErrInvalidData)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, nil, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", string(out))
}

func TestGetHexDump(t *testing.T) {
	assert.Equal(t, "00000000\n", getHexDump(nil))

	want := "00000000  41 42 00 " + strings.Repeat(" ", 40) + " |AB.|\n" +
		"00000003\n"
	assert.Equal(t, want, getHexDump([]byte("AB\x00")))

	data := []byte("0123456789abcdef\x7fZ")
	want = "00000000  30 31 32 33 34 35 36 37  38 39 61 62 63 64 65 66  |0123456789abcdef|\n" +
		"00000010  7F 5A " + strings.Repeat(" ", 43) + " |.Z|\n" +
		"00000012\n"
	assert.Equal(t, want, getHexDump(data))
}
