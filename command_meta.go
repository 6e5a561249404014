// Subcommand (`fqload meta`) exporting key=value annotations from identifier lines

package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"

	"fqload/fastq"
)

// MetaCommand creates the `meta` subcommand, which writes a TSV with one row
// per read: the identifier followed by the values of the requested metadata
// keys. Without --keys, every key seen in the file is used (sorted by name).
// Reads lacking a key get an empty cell
func MetaCommand() *cobra.Command {
	var (
		inFile  string
		outFile string
		keys    string
		noInt   bool
	)

	cmd := &cobra.Command{
		Use:   "meta",
		Short: "Export identifier-line metadata (key=value pairs) as a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedKeys := parseKeyList(keys)

			opts := fastq.DefaultOptions()
			opts.ConvertInt = !noInt
			f, err := loadFastq(inFile, opts)
			if err != nil {
				return err
			}

			outfh, err := xopen.Wopen(outFile)
			if err != nil {
				return fmt.Errorf("error creating output file: %v", err)
			}
			defer outfh.Close()

			return writeMetadata(outfh, f, parsedKeys)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&inFile, "in", "i", "-", "Input FASTQ file (default: stdin)")
	flags.StringVarP(&outFile, "out", "o", "-", "Output file (default: stdout)")
	flags.StringVarP(&keys, "keys", "k", "", "Comma-separated list of metadata keys to export (default: all)")
	flags.BoolVar(&noInt, "no-int", false, "Keep all-digit values as strings")

	return cmd
}

// parseKeyList splits a comma-separated key list, dropping blanks.
// Returns nil for an empty string
//
// Example:
//
//	parseKeyList(" size , barcode,,") // []string{"size", "barcode"}
func parseKeyList(keys string) []string {
	if keys == "" {
		return nil
	}

	parts := strings.Split(keys, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		result = append(result, p)
	}
	return result
}

// allMetadataKeys collects every metadata key present in the collection, sorted
func allMetadataKeys(f *fastq.FastQ) []string {
	seen := make(map[string]struct{})
	for _, id := range f.Keys() {
		md, _ := f.Metadata(id)
		for k := range md {
			seen[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func writeMetadata(w io.Writer, f *fastq.FastQ, keys []string) error {
	if len(keys) == 0 {
		keys = allMetadataKeys(f)
	}

	if _, err := fmt.Fprintln(w, strings.Join(append([]string{"id"}, keys...), "\t")); err != nil {
		return err
	}

	row := make([]string, len(keys)+1)
	for _, id := range f.Keys() {
		md, _ := f.Metadata(id)
		row[0] = id
		for i, k := range keys {
			row[i+1] = ""
			if v, ok := md[k]; ok {
				row[i+1] = fmt.Sprint(v)
			}
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
