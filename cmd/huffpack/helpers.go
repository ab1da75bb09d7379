package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func isStdStream(path string) bool {
	return path == "" || path == "-"
}

func describePath(path string) string {
	if isStdStream(path) {
		return "-"
	}
	return path
}

func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if isStdStream(path) {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}

// output is the destination of a command. A file is removed again if the
// command fails, so no truncated output is left behind.
type output struct {
	io.Writer
	file *os.File
}

func createOutput(cmd *cobra.Command, path string) (*output, error) {
	if isStdStream(path) {
		return &output{Writer: cmd.OutOrStdout()}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output: %w", err)
	}
	return &output{Writer: f, file: f}, nil
}

func (o *output) Close() error {
	if o.file == nil {
		return nil
	}
	return o.file.Close()
}

func (o *output) discard() {
	if o.file == nil {
		return
	}
	o.file.Close()
	if err := os.Remove(o.file.Name()); err != nil {
		log.Warnf("Failed to remove %s: %s", o.file.Name(), err)
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}

func encodeASCII(src []byte) string {
	var sb strings.Builder
	for _, b := range src {
		if b < 32 || b > 126 {
			sb.WriteByte('.')
		} else {
			sb.WriteByte(b)
		}
	}
	return sb.String()
}

// getHexDump formats data as 16 bytes per line: offset, hex bytes in two
// groups of eight and the printable characters.
func getHexDump(data []byte) string {
	var sb strings.Builder
	offset := 0
	for offset < len(data) {
		chunk := data[offset:min(offset+16, len(data))]
		var hex strings.Builder
		for i, b := range chunk {
			if i > 0 && i%8 == 0 {
				hex.WriteByte(' ')
			}
			fmt.Fprintf(&hex, "%02X ", b)
		}
		fmt.Fprintf(&sb, "%08X  %-49s |%s|\n", offset, hex.String(), encodeASCII(chunk))
		offset += len(chunk)
	}
	fmt.Fprintf(&sb, "%08X\n", offset)
	return sb.String()
}
