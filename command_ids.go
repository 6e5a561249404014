// Subcommand (`fqload ids`) listing read identifiers

package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/maruel/natural"
	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"

	"fqload/fastq"
)

// IDsCommand creates the `ids` subcommand, which prints one read identifier
// per line, in file order or in natural order ("read2" before "read10")
func IDsCommand() *cobra.Command {
	var (
		inFile      string
		outFile     string
		naturalSort bool
	)

	cmd := &cobra.Command{
		Use:   "ids",
		Short: "List read identifiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadFastq(inFile, fastq.DefaultOptions())
			if err != nil {
				return err
			}

			outfh, err := xopen.Wopen(outFile)
			if err != nil {
				return fmt.Errorf("error creating output file: %v", err)
			}
			defer outfh.Close()

			return writeIDs(outfh, f, naturalSort)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&inFile, "in", "i", "-", "Input FASTQ file (default: stdin)")
	flags.StringVarP(&outFile, "out", "o", "-", "Output file (default: stdout)")
	flags.BoolVarP(&naturalSort, "natural", "n", false, "Sort identifiers in natural order")

	return cmd
}

func writeIDs(w io.Writer, f *fastq.FastQ, naturalSort bool) error {
	ids := f.Keys()
	if naturalSort {
		sort.Slice(ids, func(i, j int) bool { return natural.Less(ids[i], ids[j]) })
	}
	for _, id := range ids {
		if _, err := fmt.Fprintln(w, id); err != nil {
			return err
		}
	}
	return nil
}
