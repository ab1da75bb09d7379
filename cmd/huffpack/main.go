package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version string = "master" // Replaced by linker: -ldflags "-X main.version=..."
var log = logrus.New()

type logOptions struct {
	verbose bool
	format  string
}

func (o *logOptions) apply() error {
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.InfoLevel)
	if o.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	switch o.format {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q, want text or json", o.format)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	logOpts := logOptions{format: "text"}
	codecOpts := newCodecOptions()

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print version of huffpack",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:   "huffpack (-c | -d) [input] [output]",
		Short: "huffpack compresses files with a static Huffman code",
		Long: "huffpack compresses files with a static Huffman code built from the\n" +
			"symbol frequencies of the whole input. Input and output default to\n" +
			"stdin and stdout; \"-\" names them explicitly.",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logOpts.apply()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCodec(cmd, codecOpts, argAt(args, 0), argAt(args, 1))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&logOpts.verbose, "verbose", "v", false, "Log debug messages")
	rootCmd.PersistentFlags().StringVar(&logOpts.format, "log-format", logOpts.format, "Log format: text or json")
	codecOpts.register(rootCmd)

	rootCmd.AddCommand(newInspectCmd(), cmdVersion)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
