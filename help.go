package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Custom help function used
// It provides nicely formatted help messages for the root command and other subcommands
func helpFunc(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	// Specialized help for subcommands
	switch cmd.Name() {
	case "stats":
		fmt.Fprintf(out, `
%s

%s
  Load a FASTQ file and report the number of reads and bases. With
  --quals, quality lines are decoded (Phred+33) and the mean of the
  chosen quality metric across reads is reported as well.

%s
  %s
  %s
  %s
  %s
  %s

%s
  %s
  %s

`,
			bold(cyan("fqload stats")+" - Count reads and bases"),
			bold(yellow("Description:")),
			bold(yellow("Flags:")),
			cyan("-i, --in")+" <string>     : Input FASTQ file (default, '-' for stdin)",
			cyan("-o, --out")+" <string>    : Output file (default, '-' for stdout)",
			cyan("-q, --quals")+" <bool>    : Decode quality scores and report a mean quality metric",
			cyan("-s, --metric")+" <string> : Quality metric (avgphred, maxee, meep, lqcount, lqpercent) (default, 'avgphred')",
			cyan("-p, --minphred")+" <int>  : Quality threshold for 'lqcount' and 'lqpercent' metrics (default, 15)",
			bold(yellow("Examples:")),
			cyan("fqload stats -i reads.fq.gz"),
			cyan("fqload stats -i reads.fq.gz --quals --metric maxee"),
		)
		return
	case "ids":
		fmt.Fprintf(out, `
%s

%s
  %s
  %s
  %s

%s
  %s

`,
			bold(cyan("fqload ids")+" - List read identifiers"),
			bold(yellow("Flags:")),
			cyan("-i, --in")+" <string>   : Input FASTQ file (default, '-' for stdin)",
			cyan("-o, --out")+" <string>  : Output file (default, '-' for stdout)",
			cyan("-n, --natural")+" <bool> : Sort identifiers in natural order (default, file order)",
			bold(yellow("Examples:")),
			cyan("fqload ids -i reads.fq.gz --natural -o ids.txt"),
		)
		return
	case "meta":
		fmt.Fprintf(out, `
%s

%s
  Export "key=value" annotations from identifier lines as a table
  (e.g., "@read1 size=12 barcode=ACGT"). Tokens with no "=" or with
  more than one "=" are ignored.

%s
  %s
  %s
  %s
  %s

%s
  %s

`,
			bold(cyan("fqload meta")+" - Export identifier-line metadata"),
			bold(yellow("Description:")),
			bold(yellow("Flags:")),
			cyan("-i, --in")+" <string>   : Input FASTQ file (default, '-' for stdin)",
			cyan("-o, --out")+" <string>  : Output file (default, '-' for stdout)",
			cyan("-k, --keys")+" <string> : Comma-separated metadata keys to export (default, all keys)",
			cyan("--no-int")+" <bool>     : Keep all-digit values as strings",
			bold(yellow("Examples:")),
			cyan("fqload meta -i reads.fq -k size,barcode -o meta.tsv"),
		)
		return
	}

	fmt.Fprintf(out, `
%s

%s
  Reads are loaded fully into memory. Blank lines and bare "+" lines are
  skipped; lines before a record that do not start with "@" are ignored;
  a record missing its quality line at the end of the file is dropped.

%s
  %s
  %s
  %s

%s
  %s
  %s
  %s

%s
  %s
  %s
  %s

`,
		bold(cyan("fqload")+" v."+VERSION+" - Load FASTQ files and summarize reads"),
		bold(yellow("Description:")),
		bold(yellow("Subcommands:")),
		cyan("stats")+" : Count reads and bases, optionally summarize qualities",
		cyan("ids")+"   : List read identifiers",
		cyan("meta")+"  : Export identifier-line metadata as a table",
		bold(yellow("Flags:")),
		cyan("-V, --verbose")+" : Report skipped lines and dropped records on stderr",
		cyan("-h, --help")+"    : Show help message",
		cyan("-v, --version")+" : Show version information",
		bold(yellow("Usage examples:")),
		cyan("fqload stats -i reads.fq.gz --quals"),
		cyan("cat reads.fq | fqload ids -n"),
		cyan("fqload meta -i reads.fq -k size"),
	)
}
