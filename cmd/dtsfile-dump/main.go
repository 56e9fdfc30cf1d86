// The dtsfile-dump command displays the records of a DTS file in a readable
// format.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/siegetools/dtsfile/dts"
	"github.com/siegetools/dtsfile/internal/config"
)

const usage = `usage: dtsfile-dump [-lax] [-v] [INPUT] [OUTPUT]

Reads a DTS shape file or a DML material list file from INPUT, and dumps to
OUTPUT a readable representation of its records.

INPUT and OUTPUT are paths to files. If INPUT is "-" or unspecified, then stdin
is used. If OUTPUT is "-" or unspecified, then stdout is used. Warnings and
errors are written to stderr.
`

func main() {
	var input io.Reader = os.Stdin
	var output io.Writer = os.Stdout

	lax := flag.Bool("lax", false, "accept nested records with unexpected class names")
	verbose := flag.Bool("v", false, "log decoding details")
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()

	log, err := config.NewLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("create logger: %w", err))
		return
	}
	defer log.Sync()
	dts.SetLogger(log)

	args := flag.Args()
	if len(args) >= 1 && args[0] != "-" {
		in, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("open input: %w", err))
			return
		}
		input = in
		defer in.Close()
	}
	if len(args) >= 2 && args[1] != "-" {
		out, err := os.Create(args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("create output: %w", err))
			return
		}
		defer out.Close()
		defer func() {
			err := out.Sync()
			if err != nil {
				fmt.Fprintln(os.Stderr, fmt.Errorf("sync output: %w", err))
				return
			}
		}()
		output = out
	}

	b, err := io.ReadAll(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("read input: %w", err))
		return
	}

	warn, err := dts.Decoder{LaxClassNames: *lax}.Dump(output, b)
	if warn != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("warning: %w", warn))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("error: %w", err))
	}
}
