package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ei-projects/huffpack/pkg/archive"
)

func newInspectCmd() *cobra.Command {
	payloadBytes := 256

	var cmdInspect = &cobra.Command{
		Use:   "inspect [input]",
		Short: "Print the header, code tree and code table of an archive",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, argAt(args, 0))
			if err != nil {
				return err
			}
			defer in.Close()

			data, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			info, err := archive.Inspect(data)
			if err != nil {
				return err
			}
			log.Debugf("Inspected %d bytes from %s", len(data), describePath(argAt(args, 0)))

			_, err = io.WriteString(cmd.OutOrStdout(), formatInfo(info, payloadBytes))
			return err
		},
	}
	cmdInspect.Flags().IntVar(&payloadBytes, "payload-bytes", payloadBytes,
		"Dump at most this many payload bytes, all of them if negative")
	return cmdInspect
}

func formatInfo(info *archive.Info, payloadBytes int) string {
	charset := info.Charset
	if charset == "" {
		charset = "-"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Version:  %d\n", info.Version)
	fmt.Fprintf(&sb, "Alphabet: %s\n", info.Alphabet)
	fmt.Fprintf(&sb, "Charset:  %s\n", charset)
	fmt.Fprintf(&sb, "Symbols:  %d\n", info.Count)
	fmt.Fprintf(&sb, "Bits:     %d\n", info.BitCount)
	fmt.Fprintf(&sb, "Leaves:   %d\n", info.Leaves)
	fmt.Fprintf(&sb, "Depth:    %d\n", info.Depth)
	fmt.Fprintf(&sb, "Tree:     %s\n", info.Tree)
	sb.WriteString(info.Codes)

	payload := info.Payload
	if payloadBytes >= 0 && len(payload) > payloadBytes {
		payload = payload[:payloadBytes]
	}
	fmt.Fprintf(&sb, "Payload (%d of %d bytes):\n", len(payload), len(info.Payload))
	sb.WriteString(getHexDump(payload))
	return sb.String()
}
