package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fqload/fastq"
)

const VERSION = "0.3.0"

// Define color functions
var (
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

// exitFunc is replaced in tests
var exitFunc = os.Exit

var (
	version bool
	verbose bool
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		fmt.Fprintln(os.Stderr, red("Try 'fqload --help' for more information"))
		exitFunc(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fqload",
		Short:         bold("Load FASTQ files and summarize reads"),
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			if version {
				fmt.Fprintf(cmd.OutOrStdout(), "fqload %s\n", VERSION)
				return
			}
			helpFunc(cmd, args)
		},
	}

	rootCmd.SetHelpFunc(helpFunc)
	rootCmd.Flags().BoolVarP(&version, "version", "v", false, "Show version information")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Report skipped lines and dropped records on stderr")

	rootCmd.AddCommand(StatsCommand())
	rootCmd.AddCommand(IDsCommand())
	rootCmd.AddCommand(MetaCommand())

	return rootCmd
}

// loadFastq reads a whole FASTQ file, reporting parser notes on stderr
// when --verbose is set
func loadFastq(inFile string, opts fastq.Options) (*fastq.FastQ, error) {
	if verbose {
		opts.Logf = func(format string, args ...any) {
			fmt.Fprintln(os.Stderr, yellow(fmt.Sprintf(format, args...)))
		}
	}
	f, err := fastq.Read(inFile, opts)
	if err != nil {
		return nil, fmt.Errorf("error loading FASTQ: %w", err)
	}
	return f, nil
}
