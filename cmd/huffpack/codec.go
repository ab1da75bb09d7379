package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ei-projects/huffpack/pkg/archive"
	"github.com/ei-projects/huffpack/pkg/huffman"
)

var errNothingToCompress = errors.New("nothing to compress: input is empty")

type codecOptions struct {
	compress   bool
	decompress bool
	alphabet   string
	charset    string
	maxSymbols uint64
}

func newCodecOptions() *codecOptions {
	return &codecOptions{
		alphabet:   string(archive.AlphabetByte),
		charset:    archive.DefaultCharset,
		maxSymbols: archive.DefaultMaxSymbols,
	}
}

func (o *codecOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&o.compress, "compress", "c", false, "Compress input")
	cmd.Flags().BoolVarP(&o.decompress, "decompress", "d", false, "Decompress input")
	cmd.Flags().StringVar(&o.alphabet, "alphabet", o.alphabet,
		"Symbols to code when compressing: byte, or rune for text in --charset")
	cmd.Flags().StringVar(&o.charset, "charset", o.charset,
		"Charset of the input for --alphabet rune, e.g. utf-8 or windows-1251")
	cmd.Flags().Uint64Var(&o.maxSymbols, "max-symbols", o.maxSymbols,
		"Refuse to decompress archives holding more symbols than this")
	cmd.MarkFlagsMutuallyExclusive("compress", "decompress")
	cmd.MarkFlagsOneRequired("compress", "decompress")
}

func (o *codecOptions) archiveOptions() archive.Options {
	return archive.Options{
		Alphabet: archive.Alphabet(o.alphabet),
		Charset:  o.charset,
	}
}

func runCodec(cmd *cobra.Command, opts *codecOptions, inPath, outPath string) error {
	in, err := openInput(cmd, inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := createOutput(cmd, outPath)
	if err != nil {
		return err
	}

	var read, written int64
	if opts.decompress {
		read, written, err = decompress(in, out, opts.maxSymbols)
	} else {
		read, written, err = compress(in, out, opts.archiveOptions())
	}
	if err != nil {
		out.discard()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"in":      describePath(inPath),
		"out":     describePath(outPath),
		"read":    read,
		"written": written,
	}).Debug("Done")
	return nil
}

func compress(r io.Reader, w io.Writer, opts archive.Options) (int64, int64, error) {
	cw := &countingWriter{w: w}
	aw := archive.NewWriter(cw, opts)
	read, err := io.Copy(aw, r)
	if err != nil {
		return read, cw.n, fmt.Errorf("failed to read input: %w", err)
	}
	log.Debugf("Compressing %d bytes as %s", read, describeOptions(opts))

	err = aw.Close()
	if errors.Is(err, huffman.ErrEmptyAlphabet) {
		return read, cw.n, errNothingToCompress
	}
	if err != nil {
		return read, cw.n, fmt.Errorf("failed to compress: %w", err)
	}
	return read, cw.n, nil
}

func decompress(r io.Reader, w io.Writer, maxSymbols uint64) (int64, int64, error) {
	cr := &countingReader{r: r}
	written, err := io.Copy(w, archive.NewLimitedReader(cr, maxSymbols))
	if err != nil {
		return cr.n, written, fmt.Errorf("failed to decompress: %w", err)
	}
	return cr.n, written, nil
}

func describeOptions(opts archive.Options) string {
	if opts.Alphabet == archive.AlphabetRune {
		return fmt.Sprintf("%s text", opts.Charset)
	}
	return "bytes"
}
