// Subcommand (`fqload stats`) for read and base counts with optional quality summary

package main

import (
	"fmt"
	"io"

	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"

	"fqload/fastq"
)

// StatsCommand creates the `stats` subcommand, which loads a FASTQ file and
// reports the number of reads and bases. With --quals the quality lines are
// decoded and the mean of the chosen quality metric across reads is added
func StatsCommand() *cobra.Command {
	var (
		inFile   string
		outFile  string
		quals    bool
		metric   string
		minPhred int
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count reads and bases (optionally summarize base qualities)",
		RunE: func(cmd *cobra.Command, args []string) error {
			qualityMetric, err := fastq.ParseQualityMetric(metric)
			if err != nil {
				return err
			}

			opts := fastq.DefaultOptions()
			opts.SkipQuals = !quals
			f, err := loadFastq(inFile, opts)
			if err != nil {
				return err
			}

			outfh, err := xopen.Wopen(outFile)
			if err != nil {
				return fmt.Errorf("error creating output file: %v", err)
			}
			defer outfh.Close()

			return writeStats(outfh, inFile, f, quals, qualityMetric, minPhred)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&inFile, "in", "i", "-", "Input FASTQ file (default: stdin)")
	flags.StringVarP(&outFile, "out", "o", "-", "Output file (default: stdout)")
	flags.BoolVarP(&quals, "quals", "q", false, "Decode quality scores and report the mean quality metric")
	flags.StringVarP(&metric, "metric", "s", "avgphred", "Quality metric (avgphred, maxee, meep, lqcount, lqpercent)")
	flags.IntVarP(&minPhred, "minphred", "p", fastq.DEFAULT_MIN_PHRED, "Quality threshold for 'lqcount' and 'lqpercent' metrics")

	return cmd
}

// writeStats writes a two-line TSV (header and values) for one file
func writeStats(w io.Writer, name string, f *fastq.FastQ, quals bool, metric fastq.QualityMetric, minPhred int) error {
	header := "file\treads\tbases"
	values := fmt.Sprintf("%s\t%d\t%d", name, f.NumLines(), f.NumBases())
	if quals {
		header += "\tmean_" + metric.String()
		values += fmt.Sprintf("\t%.6f", f.MeanQuality(metric, minPhred))
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", header, values)
	return err
}
